package model

import "time"

/* ====================== TOKEN STATUS ====================== */

// Allocation is monotonic: the pipeline flips unallocated -> allocated on the
// first valid use and never reverses it.
const (
	TokenStatusUnallocated = "unallocated"
	TokenStatusAllocated   = "allocated"
)

type BuildingTokenModel struct {
	Token           string     `json:"token" gorm:"column:token;size:48;primaryKey"`
	TokenAreaCode   string     `json:"token_area_code" gorm:"column:token_area_code;size:48;index"`
	TokenWardNumber int        `json:"token_ward_number" gorm:"column:token_ward_number"`
	TokenStatus     string     `json:"token_status" gorm:"column:token_status;size:20;not null;default:unallocated"`
	AllocatedAt     *time.Time `json:"allocated_at,omitempty" gorm:"column:allocated_at"`
	CreatedAt       time.Time  `json:"created_at" gorm:"column:created_at"`
}

func (BuildingTokenModel) TableName() string {
	return "building_tokens"
}
