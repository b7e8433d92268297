package model

import "time"

// SurveyAttachmentModel links a submission to one stored object. The unique
// index on (submission_id, attachment_name) keeps re-scanned date windows from
// re-downloading the same binary.
type SurveyAttachmentModel struct {
	AttachmentID   uint      `json:"attachment_id" gorm:"column:attachment_id;primaryKey;autoIncrement"`
	SubmissionID   string    `json:"submission_id" gorm:"column:submission_id;size:64;not null;uniqueIndex:uq_survey_attachment"`
	AttachmentName string    `json:"attachment_name" gorm:"column:attachment_name;size:160;not null;uniqueIndex:uq_survey_attachment"`
	AttachmentType string    `json:"attachment_type" gorm:"column:attachment_type;size:48;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
}

func (SurveyAttachmentModel) TableName() string {
	return "survey_attachments"
}
