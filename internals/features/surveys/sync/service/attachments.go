package service

import (
	"bytes"
	"context"
	"log"

	"palika_backend/internals/configs"
	"palika_backend/internals/constants"
	"palika_backend/internals/features/odk"
	syncModel "palika_backend/internals/features/surveys/sync/model"
	helper "palika_backend/internals/helpers"

	"gorm.io/gorm/clause"
)

/* ====================== ATTACHMENT TRANSFER ====================== */

// objectKey prefixes the original filename with the last 7 characters of the
// submission id — default camera filenames like "image.jpg" collide across
// submissions otherwise.
func objectKey(submissionID, filename string) string {
	tail := submissionID
	if len(tail) > 7 {
		tail = tail[len(tail)-7:]
	}
	return tail + "_" + filename
}

// TransferAttachments moves every configured attachment of one submission
// into object storage. Each field is best-effort: a failed download or upload
// is logged and the rest of the fields — and the owning record — carry on.
func (s *Syncer) TransferAttachments(ctx context.Context, cfg configs.SurveyFormConfig, token string, sub odk.Submission) {
	for _, spec := range cfg.Attachments {
		name := helper.PathString(sub.Data, spec.Path)
		if name == "" {
			// optional attachment not filled in — normal, not an error
			continue
		}
		if err := s.transferOne(ctx, cfg, token, sub.InstanceID, name, spec.Type); err != nil {
			log.Printf("[ATTACH ERROR] submission=%s field=%s: %v", sub.InstanceID, spec.Path, err)
		}
	}
}

func (s *Syncer) transferOne(ctx context.Context, cfg configs.SurveyFormConfig, token, submissionID, name, semanticType string) error {
	key := objectKey(submissionID, name)

	// dedup gate: windows overlap between runs, so most attachments have
	// already been moved
	var n int64
	if err := s.DB.Model(&syncModel.SurveyAttachmentModel{}).
		Where("submission_id = ? AND attachment_name = ?", submissionID, key).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	data, err := s.ODK.DownloadAttachment(ctx, cfg.Endpoint, cfg.ProjectID, cfg.FormID, submissionID, name, token)
	if err != nil {
		return err
	}

	if err := s.Storage.Put(ctx, key, bytes.NewReader(data), constants.DetectContentType(name)); err != nil {
		return err
	}

	// OnConflict absorbs the race with a concurrent run
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&syncModel.SurveyAttachmentModel{
		SubmissionID:   submissionID,
		AttachmentName: key,
		AttachmentType: semanticType,
	}).Error
}
