package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BuildingModel is the promoted production counterpart of a staged building
// submission, enriched with resolved foreign keys and validity flags. The
// validity flags are real booleans, never null, so dashboard filters stay
// deterministic.
type BuildingModel struct {
	BuildingID               string         `json:"building_id" gorm:"column:building_id;size:64;primaryKey"`
	BuildingSurveyDate       *time.Time     `json:"building_survey_date" gorm:"column:building_survey_date"`
	BuildingEnumeratorName   string         `json:"building_enumerator_name" gorm:"column:building_enumerator_name;size:120"`
	BuildingEnumeratorID     *uuid.UUID     `json:"building_enumerator_id,omitempty" gorm:"column:building_enumerator_id;type:uuid;index"`
	BuildingWardID           *int           `json:"building_ward_id,omitempty" gorm:"column:building_ward_id;index"`
	BuildingAreaID           *uuid.UUID     `json:"building_area_id,omitempty" gorm:"column:building_area_id;type:uuid;index"`
	BuildingAreaCode         string         `json:"building_area_code" gorm:"column:building_area_code;size:48"`
	BuildingLocality         string         `json:"building_locality" gorm:"column:building_locality;size:120"`
	BuildingToken            *string        `json:"building_token,omitempty" gorm:"column:building_token;size:48"`
	BuildingOwnerName        string         `json:"building_owner_name" gorm:"column:building_owner_name;size:120"`
	BuildingOwnerPhone       string         `json:"building_owner_phone" gorm:"column:building_owner_phone;size:24"`
	BuildingTotalFamilies    *int           `json:"building_total_families" gorm:"column:building_total_families"`
	BuildingTotalBusinesses  *int           `json:"building_total_businesses" gorm:"column:building_total_businesses"`
	BuildingOwnershipStatus  string         `json:"building_ownership_status" gorm:"column:building_ownership_status;size:60"`
	BuildingBase             string         `json:"building_base" gorm:"column:building_base;size:60"`
	BuildingOuterWall        string         `json:"building_outer_wall" gorm:"column:building_outer_wall;size:60"`
	BuildingRoof             string         `json:"building_roof" gorm:"column:building_roof;size:60"`
	BuildingFloor            string         `json:"building_floor" gorm:"column:building_floor;size:60"`
	BuildingMapStatus        string         `json:"building_map_status" gorm:"column:building_map_status;size:60"`
	BuildingNaturalDisasters pq.StringArray `json:"building_natural_disasters" gorm:"column:building_natural_disasters;type:text[]"`
	BuildingTimeToMarket     string         `json:"building_time_to_market" gorm:"column:building_time_to_market;size:40"`
	BuildingTimeToHealthOrg  string         `json:"building_time_to_health_org" gorm:"column:building_time_to_health_org;size:40"`
	BuildingGPSLatitude      *float64       `json:"building_gps_latitude" gorm:"column:building_gps_latitude"`
	BuildingGPSLongitude     *float64       `json:"building_gps_longitude" gorm:"column:building_gps_longitude"`
	BuildingGPSAltitude      *float64       `json:"building_gps_altitude" gorm:"column:building_gps_altitude"`
	BuildingGPSAccuracy      *float64       `json:"building_gps_accuracy" gorm:"column:building_gps_accuracy"`
	IsWardValid              bool           `json:"is_ward_valid" gorm:"column:is_ward_valid;not null;default:false"`
	IsAreaValid              bool           `json:"is_area_valid" gorm:"column:is_area_valid;not null;default:false"`
	IsEnumeratorValid        bool           `json:"is_enumerator_valid" gorm:"column:is_enumerator_valid;not null;default:false"`
	IsBuildingTokenValid     bool           `json:"is_building_token_valid" gorm:"column:is_building_token_valid;not null;default:false"`
	BuildingStatus           string         `json:"building_status" gorm:"column:building_status;size:24;not null;default:pending"`
	CreatedAt                time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt                *time.Time     `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}
