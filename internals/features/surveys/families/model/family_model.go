package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyModel is the promoted production counterpart of a staged family
// submission. Child rows (individuals, crops, animals, ...) reference it via
// their parent_id column.
type FamilyModel struct {
	FamilyID             string     `json:"family_id" gorm:"column:family_id;size:64;primaryKey"`
	FamilySurveyDate     *time.Time `json:"family_survey_date" gorm:"column:family_survey_date"`
	FamilyEnumeratorName string     `json:"family_enumerator_name" gorm:"column:family_enumerator_name;size:120"`
	FamilyEnumeratorID   *uuid.UUID `json:"family_enumerator_id,omitempty" gorm:"column:family_enumerator_id;type:uuid;index"`
	FamilyWardID         *int       `json:"family_ward_id,omitempty" gorm:"column:family_ward_id;index"`
	FamilyAreaID         *uuid.UUID `json:"family_area_id,omitempty" gorm:"column:family_area_id;type:uuid;index"`
	FamilyAreaCode       string     `json:"family_area_code" gorm:"column:family_area_code;size:48"`
	FamilyBuildingToken  *string    `json:"family_building_token,omitempty" gorm:"column:family_building_token;size:48"`
	FamilyLocality       string     `json:"family_locality" gorm:"column:family_locality;size:120"`
	FamilyHeadName       string     `json:"family_head_name" gorm:"column:family_head_name;size:120"`
	FamilyHeadPhone      string     `json:"family_head_phone" gorm:"column:family_head_phone;size:24"`
	FamilyTotalMembers   *int       `json:"family_total_members" gorm:"column:family_total_members"`
	FamilyIsSanitized    *bool      `json:"family_is_sanitized" gorm:"column:family_is_sanitized"`
	FamilyWaterSource    string     `json:"family_water_source" gorm:"column:family_water_source;size:80"`
	FamilyToiletType     string     `json:"family_toilet_type" gorm:"column:family_toilet_type;size:80"`
	FamilySolidWaste     string     `json:"family_solid_waste" gorm:"column:family_solid_waste;size:80"`
	FamilyCookingFuel    string     `json:"family_cooking_fuel" gorm:"column:family_cooking_fuel;size:80"`
	FamilyEnergySource   string     `json:"family_energy_source" gorm:"column:family_energy_source;size:80"`
	FamilyHasFarmland    *bool      `json:"family_has_farmland" gorm:"column:family_has_farmland"`
	FamilyHasLivestock   *bool      `json:"family_has_livestock" gorm:"column:family_has_livestock"`
	FamilyGPSLatitude    *float64   `json:"family_gps_latitude" gorm:"column:family_gps_latitude"`
	FamilyGPSLongitude   *float64   `json:"family_gps_longitude" gorm:"column:family_gps_longitude"`
	FamilyGPSAccuracy    *float64   `json:"family_gps_accuracy" gorm:"column:family_gps_accuracy"`
	IsWardValid          bool       `json:"is_ward_valid" gorm:"column:is_ward_valid;not null;default:false"`
	IsAreaValid          bool       `json:"is_area_valid" gorm:"column:is_area_valid;not null;default:false"`
	IsEnumeratorValid    bool       `json:"is_enumerator_valid" gorm:"column:is_enumerator_valid;not null;default:false"`
	IsBuildingTokenValid bool       `json:"is_building_token_valid" gorm:"column:is_building_token_valid;not null;default:false"`
	FamilyStatus         string     `json:"family_status" gorm:"column:family_status;size:24;not null;default:pending"`
	CreatedAt            time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (FamilyModel) TableName() string {
	return "families"
}
