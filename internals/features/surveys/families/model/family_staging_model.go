package model

import (
	"time"

	"gorm.io/datatypes"
)

// StagingFamilyModel is the flat projection of one family (household)
// submission. Repeating groups inside the payload land in the staging_* child
// tables below, keyed "{submissionID}_{seq}".
type StagingFamilyModel struct {
	ID                   string         `json:"id" gorm:"column:id;size:64;primaryKey"`
	SurveyDate           *time.Time     `json:"survey_date" gorm:"column:survey_date"`
	EnumeratorName       string         `json:"enumerator_name" gorm:"column:enumerator_name;size:120"`
	EnumeratorID         string         `json:"enumerator_id" gorm:"column:enumerator_id;size:64"`
	WardNumber           *int           `json:"ward_number" gorm:"column:ward_number"`
	AreaCode             string         `json:"area_code" gorm:"column:area_code;size:48"`
	BuildingToken        string         `json:"building_token" gorm:"column:building_token;size:64"`
	Locality             string         `json:"locality" gorm:"column:locality;size:120"`
	HeadName             string         `json:"head_name" gorm:"column:head_name;size:120"`
	HeadPhone            string         `json:"head_phone" gorm:"column:head_phone;size:24"`
	TotalMembers         *int           `json:"total_members" gorm:"column:total_members"`
	IsSanitized          *bool          `json:"is_sanitized" gorm:"column:is_sanitized"`
	WaterSource          string         `json:"water_source" gorm:"column:water_source;size:80"`
	ToiletType           string         `json:"toilet_type" gorm:"column:toilet_type;size:80"`
	SolidWaste           string         `json:"solid_waste" gorm:"column:solid_waste;size:80"`
	PrimaryCookingFuel   string         `json:"primary_cooking_fuel" gorm:"column:primary_cooking_fuel;size:80"`
	PrimaryEnergySource  string         `json:"primary_energy_source" gorm:"column:primary_energy_source;size:80"`
	HaveAgriculturalLand *bool          `json:"have_agricultural_land" gorm:"column:have_agricultural_land"`
	HaveAnimalHusbandry  *bool          `json:"have_animal_husbandry" gorm:"column:have_animal_husbandry"`
	GPSLatitude          *float64       `json:"gps_latitude" gorm:"column:gps_latitude"`
	GPSLongitude         *float64       `json:"gps_longitude" gorm:"column:gps_longitude"`
	GPSAccuracy          *float64       `json:"gps_accuracy" gorm:"column:gps_accuracy"`
	Raw                  datatypes.JSON `json:"raw" gorm:"column:raw"`
	CreatedAt            time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (StagingFamilyModel) TableName() string {
	return "staging_families"
}
