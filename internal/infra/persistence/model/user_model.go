package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// GoogleID is a pointer so that accounts without a linked Google identity store
// NULL instead of colliding on the unique index.
type UserModel struct {
	baseColumns
	Email          string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string  `gorm:"type:varchar(255)"`
	FullName       string  `gorm:"type:varchar(100);not null"`
	IsActive       bool    `gorm:"not null;default:true"`
	IsVerified     bool    `gorm:"not null;default:false"`
	Role           string  `gorm:"type:varchar(20);not null;default:user"`
	ProfileImage   string  `gorm:"type:varchar(500)"`
	Bio            string  `gorm:"type:text"`
	EmailFrequency string  `gorm:"type:varchar(20);not null;default:daily"`
	EmailTimeHour  int     `gorm:"not null;default:9"`
	GoogleID       *string `gorm:"type:varchar(255);uniqueIndex"`

	Preference *UserPreferenceModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserPreferenceModel mirrors the 'user_preferences' table. UserID references users.id (UUID).
type UserPreferenceModel struct {
	baseColumns
	UserID              uuid.UUID                   `gorm:"type:uuid;uniqueIndex;not null"`
	PreferredCategories datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	SummaryLength       string                      `gorm:"type:varchar(20);not null;default:medium"`
	Language            string                      `gorm:"type:varchar(10);not null;default:ko"`
	PushNotification    bool                        `gorm:"not null;default:true"`
	EmailNotification   bool                        `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
