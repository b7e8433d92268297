package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel covers dashboard users and field enumerators. The collection app
// embeds only the first 8 characters of the user id inside a submission, so
// lookups against this table are prefix lookups.
type UserModel struct {
	UserID       uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`
	UserName     string     `json:"user_name" gorm:"column:user_name;size:80;not null;uniqueIndex"`
	UserFullName string     `json:"user_full_name" gorm:"column:user_full_name;size:120"`
	UserPhone    string     `json:"user_phone" gorm:"column:user_phone;size:24"`
	UserRole     string     `json:"user_role" gorm:"column:user_role;size:24;not null;default:enumerator"`
	UserWard     *int       `json:"user_ward,omitempty" gorm:"column:user_ward"`
	UserIsActive bool       `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
