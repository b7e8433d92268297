package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// StagingBuildingModel is the flat, unvalidated projection of one building
// submission. Rows are insert-if-absent keyed by the submission id and never
// updated in place.
type StagingBuildingModel struct {
	ID               string         `json:"id" gorm:"column:id;size:64;primaryKey"`
	SurveyDate       *time.Time     `json:"survey_date" gorm:"column:survey_date"`
	EnumeratorName   string         `json:"enumerator_name" gorm:"column:enumerator_name;size:120"`
	EnumeratorID     string         `json:"enumerator_id" gorm:"column:enumerator_id;size:64"`
	WardNumber       *int           `json:"ward_number" gorm:"column:ward_number"`
	AreaCode         string         `json:"area_code" gorm:"column:area_code;size:48"`
	Locality         string         `json:"locality" gorm:"column:locality;size:120"`
	BuildingToken    string         `json:"building_token" gorm:"column:building_token;size:64"`
	OwnerName        string         `json:"owner_name" gorm:"column:owner_name;size:120"`
	OwnerPhone       string         `json:"owner_phone" gorm:"column:owner_phone;size:24"`
	TotalFamilies    *int           `json:"total_families" gorm:"column:total_families"`
	TotalBusinesses  *int           `json:"total_businesses" gorm:"column:total_businesses"`
	OwnershipStatus  string         `json:"ownership_status" gorm:"column:ownership_status;size:60"`
	Base             string         `json:"base" gorm:"column:base;size:60"`
	OuterWall        string         `json:"outer_wall" gorm:"column:outer_wall;size:60"`
	Roof             string         `json:"roof" gorm:"column:roof;size:60"`
	Floor            string         `json:"floor" gorm:"column:floor;size:60"`
	MapStatus        string         `json:"map_status" gorm:"column:map_status;size:60"`
	NaturalDisasters pq.StringArray `json:"natural_disasters" gorm:"column:natural_disasters;type:text[]"`
	TimeToMarket     string         `json:"time_to_market" gorm:"column:time_to_market;size:40"`
	TimeToHealthOrg  string         `json:"time_to_health_org" gorm:"column:time_to_health_org;size:40"`
	GPSLatitude      *float64       `json:"gps_latitude" gorm:"column:gps_latitude"`
	GPSLongitude     *float64       `json:"gps_longitude" gorm:"column:gps_longitude"`
	GPSAltitude      *float64       `json:"gps_altitude" gorm:"column:gps_altitude"`
	GPSAccuracy      *float64       `json:"gps_accuracy" gorm:"column:gps_accuracy"`
	Raw              datatypes.JSON `json:"raw" gorm:"column:raw"`
	CreatedAt        time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (StagingBuildingModel) TableName() string {
	return "staging_buildings"
}
