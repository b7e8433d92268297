package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"palika_backend/internals/configs"
	"palika_backend/internals/features/odk"

	"gorm.io/gorm"
)

/* ====================== ERROR KINDS ====================== */

var (
	// ErrUnknownForm: the form config names a kind no mapper handles.
	ErrUnknownForm = errors.New("sync: unknown form kind")
	// ErrNotStaged: promotion was attempted before ingestion — an ordering
	// bug, surfaced loudly instead of swallowed.
	ErrNotStaged = errors.New("sync: record not staged")
)

// ObjectStorage is the slice of the OSS service the pipeline needs. Tests
// substitute an in-memory fake.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
}

// Syncer wires the whole ingestion pipeline: fetch from ODK Central, stage,
// transfer attachments, resolve cross-references, promote, advance area
// status. Handles are injected once; no package-level state.
type Syncer struct {
	DB      *gorm.DB
	ODK     *odk.Client
	Storage ObjectStorage
}

func NewSyncer(db *gorm.DB, client *odk.Client, storage ObjectStorage) *Syncer {
	return &Syncer{DB: db, ODK: client, Storage: storage}
}

/* ====================== RUN LOOP ====================== */

// RunForm executes one sync cycle for one form. Auth and fetch failures abort
// the cycle (nothing downstream can proceed); everything per-submission is
// logged and skipped so one broken submission never starves the batch.
func (s *Syncer) RunForm(ctx context.Context, cfg configs.SurveyFormConfig, window odk.Window) error {
	token, err := s.ODK.Authenticate(ctx, cfg.Endpoint, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("form %s: %w", cfg.FormID, err)
	}

	subs, err := s.ODK.FetchSubmissions(ctx, cfg.Endpoint, cfg.ProjectID, cfg.FormID, token, window)
	if err != nil {
		return fmt.Errorf("form %s: %w", cfg.FormID, err)
	}

	var failed int
	for _, sub := range subs {
		if sub.InstanceID == "" {
			log.Printf("[SYNC] form=%s skipping submission without instance id", cfg.FormID)
			continue
		}
		if err := s.processSubmission(ctx, cfg, token, sub); err != nil {
			failed++
			log.Printf("[SYNC ERROR] form=%s submission=%s: %v", cfg.FormID, sub.InstanceID, err)
		}
	}
	log.Printf("[SYNC] form=%s done: %d submission(s), %d failed", cfg.FormID, len(subs), failed)
	return nil
}

// processSubmission runs the staged -> validated -> promoted sequence for a
// single submission. Attachment transfer is best-effort relative to the
// record it describes.
func (s *Syncer) processSubmission(ctx context.Context, cfg configs.SurveyFormConfig, token string, sub odk.Submission) error {
	refs, err := s.Ingest(cfg.FormKind, sub)
	if err != nil {
		return err
	}

	s.TransferAttachments(ctx, cfg, token, sub)

	result := s.ValidateCrossRefs(refs)

	if err := s.Promote(cfg.FormKind, sub.InstanceID, result); err != nil {
		return err
	}

	s.AdvanceAreaStatus(result)
	return nil
}
