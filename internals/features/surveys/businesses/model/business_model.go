package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel is the promoted production counterpart of a staged business
// submission. Validity flags mirror the building table so dashboard filters
// work the same way across survey kinds.
type BusinessModel struct {
	BusinessID                  string     `json:"business_id" gorm:"column:business_id;size:64;primaryKey"`
	BusinessSurveyDate          *time.Time `json:"business_survey_date" gorm:"column:business_survey_date"`
	BusinessEnumeratorName      string     `json:"business_enumerator_name" gorm:"column:business_enumerator_name;size:120"`
	BusinessEnumeratorID        *uuid.UUID `json:"business_enumerator_id,omitempty" gorm:"column:business_enumerator_id;type:uuid;index"`
	BusinessWardID              *int       `json:"business_ward_id,omitempty" gorm:"column:business_ward_id;index"`
	BusinessAreaID              *uuid.UUID `json:"business_area_id,omitempty" gorm:"column:business_area_id;type:uuid;index"`
	BusinessAreaCode            string     `json:"business_area_code" gorm:"column:business_area_code;size:48"`
	BusinessToken               *string    `json:"business_token,omitempty" gorm:"column:business_token;size:48"`
	BusinessName                string     `json:"business_name" gorm:"column:business_name;size:160"`
	BusinessNature              string     `json:"business_nature" gorm:"column:business_nature;size:80"`
	BusinessType                string     `json:"business_type" gorm:"column:business_type;size:80"`
	BusinessOperatorName        string     `json:"business_operator_name" gorm:"column:business_operator_name;size:120"`
	BusinessOperatorPhone       string     `json:"business_operator_phone" gorm:"column:business_operator_phone;size:24"`
	BusinessOperatorGender      string     `json:"business_operator_gender" gorm:"column:business_operator_gender;size:16"`
	BusinessRegistrationStatus  string     `json:"business_registration_status" gorm:"column:business_registration_status;size:60"`
	BusinessPANStatus           string     `json:"business_pan_status" gorm:"column:business_pan_status;size:40"`
	BusinessPANNumber           string     `json:"business_pan_number" gorm:"column:business_pan_number;size:24"`
	BusinessInvestmentAmount    *float64   `json:"business_investment_amount" gorm:"column:business_investment_amount"`
	BusinessLocality            string     `json:"business_locality" gorm:"column:business_locality;size:120"`
	BusinessTotalPartners       *int       `json:"business_total_partners" gorm:"column:business_total_partners"`
	BusinessTotalInvolvedMale   *int       `json:"business_total_involved_male" gorm:"column:business_total_involved_male"`
	BusinessTotalInvolvedFemale *int       `json:"business_total_involved_female" gorm:"column:business_total_involved_female"`
	BusinessGPSLatitude         *float64   `json:"business_gps_latitude" gorm:"column:business_gps_latitude"`
	BusinessGPSLongitude        *float64   `json:"business_gps_longitude" gorm:"column:business_gps_longitude"`
	BusinessGPSAccuracy         *float64   `json:"business_gps_accuracy" gorm:"column:business_gps_accuracy"`
	IsWardValid                 bool       `json:"is_ward_valid" gorm:"column:is_ward_valid;not null;default:false"`
	IsAreaValid                 bool       `json:"is_area_valid" gorm:"column:is_area_valid;not null;default:false"`
	IsEnumeratorValid           bool       `json:"is_enumerator_valid" gorm:"column:is_enumerator_valid;not null;default:false"`
	IsBuildingTokenValid        bool       `json:"is_building_token_valid" gorm:"column:is_building_token_valid;not null;default:false"`
	BusinessStatus              string     `json:"business_status" gorm:"column:business_status;size:24;not null;default:pending"`
	CreatedAt                   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                   *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (BusinessModel) TableName() string {
	return "businesses"
}
