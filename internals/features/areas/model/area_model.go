package model

import (
	"time"

	"github.com/google/uuid"
)

/* ====================== AREA STATUS ====================== */

// Area survey lifecycle. The sync pipeline only ever performs
// AreaStatusNewlyAssigned -> AreaStatusOngoingSurvey; everything else is
// driven by the area-management workflow in the dashboard.
const (
	AreaStatusNewlyAssigned            = "newly_assigned"
	AreaStatusOngoingSurvey            = "ongoing_survey"
	AreaStatusRevision                 = "revision"
	AreaStatusAskedForCompletion       = "asked_for_completion"
	AreaStatusAskedForRevisionComplete = "asked_for_revision_completion"
	AreaStatusAskedForWithdrawal       = "asked_for_withdrawal"
	AreaStatusCompleted                = "completed"
)

type AreaModel struct {
	AreaID         uuid.UUID  `json:"area_id" gorm:"column:area_id;type:uuid;primaryKey"`
	AreaCode       string     `json:"area_code" gorm:"column:area_code;size:48;not null;uniqueIndex"`
	AreaWardNumber int        `json:"area_ward_number" gorm:"column:area_ward_number;not null"`
	AreaAssignedTo *uuid.UUID `json:"area_assigned_to,omitempty" gorm:"column:area_assigned_to;type:uuid;index"`
	AreaStatus     string     `json:"area_status" gorm:"column:area_status;size:40;not null;default:newly_assigned"`
	CreatedAt      time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (AreaModel) TableName() string {
	return "areas"
}
