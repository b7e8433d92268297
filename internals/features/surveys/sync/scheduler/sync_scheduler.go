package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"palika_backend/internals/configs"
	"palika_backend/internals/features/odk"
	"palika_backend/internals/features/surveys/sync/service"
)

// StartSurveySyncScheduler runs the ingestion pipeline for every configured
// form on a fixed interval. The fetch window always reaches back a full day,
// so runs overlap on purpose — every downstream step is idempotent.
func StartSurveySyncScheduler(syncer *service.Syncer, cfgs []configs.SurveyFormConfig) {
	if len(cfgs) == 0 {
		log.Println("[SYNC] no survey forms configured, scheduler not started")
		return
	}

	go func() {
		intervalHours := 6
		if val := os.Getenv("SURVEY_SYNC_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			window := odk.DefaultWindow(time.Now())
			for _, cfg := range cfgs {
				log.Printf("[SYNC] running form=%s kind=%s...", cfg.FormID, cfg.FormKind)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
				if err := syncer.RunForm(ctx, cfg, window); err != nil {
					// auth/fetch failure for one form must not starve the others
					log.Printf("[SYNC ERROR] form=%s: %v", cfg.FormID, err)
				}
				cancel()
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
