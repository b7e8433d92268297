package model

import "time"

type WardModel struct {
	WardNumber     int       `json:"ward_number" gorm:"column:ward_number;primaryKey;autoIncrement:false"`
	WardAreaCode   string    `json:"ward_area_code" gorm:"column:ward_area_code;size:48"`
	WardOfficeName string    `json:"ward_office_name" gorm:"column:ward_office_name;size:120"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
}

func (WardModel) TableName() string {
	return "wards"
}
