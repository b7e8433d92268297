package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

// AttachmentFieldSpec points at one attachment field inside the submission
// payload, e.g. {"path": "enumerator_introduction.monitoring_audio", "type": "audio_monitoring"}.
type AttachmentFieldSpec struct {
	Path string `json:"path" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// SurveyFormConfig is the per-form sync configuration maintained by the admin
// side. FormKind decides which staging mapper handles the submissions.
type SurveyFormConfig struct {
	FormKind    string                `json:"form_kind" validate:"required,oneof=building business family"`
	Endpoint    string                `json:"endpoint" validate:"required,url"`
	ProjectID   int                   `json:"project_id" validate:"required,min=1"`
	FormID      string                `json:"form_id" validate:"required"`
	Email       string                `json:"email" validate:"required,email"`
	Password    string                `json:"password" validate:"required"`
	Attachments []AttachmentFieldSpec `json:"attachments" validate:"dive"`
}

var formValidate = validator.New()

// LoadSurveyFormConfigs reads the JSON config file pointed to by
// SURVEY_FORMS_CONFIG. Missing file is not fatal — the scheduler simply has
// nothing to sync.
func LoadSurveyFormConfigs() ([]SurveyFormConfig, error) {
	path := strings.TrimSpace(GetEnv("SURVEY_FORMS_CONFIG", "survey_forms.json"))
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read form config: %w", err)
	}

	var cfgs []SurveyFormConfig
	if err := sonic.Unmarshal(raw, &cfgs); err != nil {
		return nil, fmt.Errorf("parse form config: %w", err)
	}
	for i := range cfgs {
		if err := formValidate.Struct(&cfgs[i]); err != nil {
			return nil, fmt.Errorf("form config [%d] (%s): %w", i, cfgs[i].FormID, err)
		}
	}
	return cfgs, nil
}
