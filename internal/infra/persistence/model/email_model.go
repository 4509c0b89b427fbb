package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmailTemplateModel mirrors the 'email_templates' table.
type EmailTemplateModel struct {
	baseColumns
	Name            string `gorm:"type:varchar(100);uniqueIndex;not null"`
	EmailType       string `gorm:"type:varchar(30);not null;index"`
	SubjectTemplate string `gorm:"type:varchar(500);not null"`
	HTMLTemplate    string `gorm:"type:text;not null"`
	TextTemplate    string `gorm:"type:text"`
	IsActive        bool   `gorm:"not null;default:true"`
	Version         string `gorm:"type:varchar(20);not null;default:1.0"`
	Language        string `gorm:"type:varchar(10);not null;default:ko"`
}

// TableName explicitly sets the table name for GORM.
func (EmailTemplateModel) TableName() string {
	return "email_templates"
}

// EmailLogModel mirrors the 'email_logs' table. UserID is a pointer because
// the recipient may not be a member; deleting a user keeps their logs with a
// NULL user_id. MessageID is a pointer so unsent logs do not collide on the
// unique index.
type EmailLogModel struct {
	baseColumns
	UserID           *uuid.UUID `gorm:"type:uuid;index"`
	RecipientEmail   string     `gorm:"type:varchar(255);not null;index"`
	RecipientName    string     `gorm:"type:varchar(100)"`
	EmailType        string     `gorm:"type:varchar(30);not null;index"`
	Subject          string     `gorm:"type:varchar(500);not null"`
	HTMLContent      string     `gorm:"type:text"`
	TextContent      string     `gorm:"type:text"`
	Status           string     `gorm:"type:varchar(20);not null;default:pending;index"`
	SentAt           *time.Time
	OpenedAt         *time.Time
	ClickedAt        *time.Time
	BounceReason     string  `gorm:"type:text"`
	MessageID        *string `gorm:"type:varchar(255);uniqueIndex"`
	ProviderResponse string  `gorm:"type:text"`
	RetryCount       int     `gorm:"not null;default:0"`
	LastError        string  `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (EmailLogModel) TableName() string {
	return "email_logs"
}

// EmailDigestModel mirrors the 'email_digests' table. The article snapshot and
// category statistics are JSONB documents frozen at assembly time.
type EmailDigestModel struct {
	baseColumns
	DigestDate      time.Time                          `gorm:"not null;index"`
	DigestType      string                             `gorm:"type:varchar(20);not null;index"`
	Title           string                             `gorm:"type:varchar(500);not null"`
	Summary         string                             `gorm:"type:text"`
	ArticleIDs      datatypes.JSONSlice[uuid.UUID]     `gorm:"type:jsonb"`
	TotalArticles   int                                `gorm:"not null;default:0"`
	TotalRecipients int                                `gorm:"not null;default:0"`
	SentCount       int                                `gorm:"not null;default:0"`
	FailedCount     int                                `gorm:"not null;default:0"`
	CategoryStats   datatypes.JSONType[map[string]int] `gorm:"type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (EmailDigestModel) TableName() string {
	return "email_digests"
}
