package model

import (
	"time"

	"gorm.io/datatypes"
)

// StagingBusinessModel is the flat projection of one business submission,
// insert-if-absent keyed by submission id.
type StagingBusinessModel struct {
	ID                  string         `json:"id" gorm:"column:id;size:64;primaryKey"`
	SurveyDate          *time.Time     `json:"survey_date" gorm:"column:survey_date"`
	EnumeratorName      string         `json:"enumerator_name" gorm:"column:enumerator_name;size:120"`
	EnumeratorID        string         `json:"enumerator_id" gorm:"column:enumerator_id;size:64"`
	WardNumber          *int           `json:"ward_number" gorm:"column:ward_number"`
	AreaCode            string         `json:"area_code" gorm:"column:area_code;size:48"`
	BuildingToken       string         `json:"building_token" gorm:"column:building_token;size:64"`
	BusinessName        string         `json:"business_name" gorm:"column:business_name;size:160"`
	BusinessNature      string         `json:"business_nature" gorm:"column:business_nature;size:80"`
	BusinessType        string         `json:"business_type" gorm:"column:business_type;size:80"`
	OperatorName        string         `json:"operator_name" gorm:"column:operator_name;size:120"`
	OperatorPhone       string         `json:"operator_phone" gorm:"column:operator_phone;size:24"`
	OperatorGender      string         `json:"operator_gender" gorm:"column:operator_gender;size:16"`
	RegistrationStatus  string         `json:"registration_status" gorm:"column:registration_status;size:60"`
	PANStatus           string         `json:"pan_status" gorm:"column:pan_status;size:40"`
	PANNumber           string         `json:"pan_number" gorm:"column:pan_number;size:24"`
	InvestmentAmount    *float64       `json:"investment_amount" gorm:"column:investment_amount"`
	Locality            string         `json:"locality" gorm:"column:locality;size:120"`
	TotalPartners       *int           `json:"total_partners" gorm:"column:total_partners"`
	TotalInvolvedMale   *int           `json:"total_involved_male" gorm:"column:total_involved_male"`
	TotalInvolvedFemale *int           `json:"total_involved_female" gorm:"column:total_involved_female"`
	GPSLatitude         *float64       `json:"gps_latitude" gorm:"column:gps_latitude"`
	GPSLongitude        *float64       `json:"gps_longitude" gorm:"column:gps_longitude"`
	GPSAccuracy         *float64       `json:"gps_accuracy" gorm:"column:gps_accuracy"`
	Raw                 datatypes.JSON `json:"raw" gorm:"column:raw"`
	CreatedAt           time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (StagingBusinessModel) TableName() string {
	return "staging_businesses"
}
