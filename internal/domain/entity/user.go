// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailFrequency represents how often a user receives digest emails.
type EmailFrequency string

const (
	// EmailFrequencyDaily delivers a digest every day.
	EmailFrequencyDaily EmailFrequency = "daily"
	// EmailFrequencyWeekly delivers a digest once a week.
	EmailFrequencyWeekly EmailFrequency = "weekly"
	// EmailFrequencyMonthly delivers a digest once a month.
	EmailFrequencyMonthly EmailFrequency = "monthly"
	// EmailFrequencyDisabled turns digest delivery off entirely.
	EmailFrequencyDisabled EmailFrequency = "disabled"
)

// String returns the string representation of the EmailFrequency.
func (f EmailFrequency) String() string {
	return string(f)
}

// IsValid checks if the EmailFrequency is a valid value.
func (f EmailFrequency) IsValid() bool {
	switch f {
	case EmailFrequencyDaily, EmailFrequencyWeekly, EmailFrequencyMonthly, EmailFrequencyDisabled:
		return true
	default:
		return false
	}
}

// SummaryLength represents how long a generated summary should be.
type SummaryLength string

const (
	// SummaryLengthShort is a few sentences at most.
	SummaryLengthShort SummaryLength = "short"
	// SummaryLengthMedium is roughly a paragraph.
	SummaryLengthMedium SummaryLength = "medium"
	// SummaryLengthLong keeps most of the detail of the source article.
	SummaryLengthLong SummaryLength = "long"
)

// String returns the string representation of the SummaryLength.
func (l SummaryLength) String() string {
	return string(l)
}

// IsValid checks if the SummaryLength is a valid value.
func (l SummaryLength) IsValid() bool {
	switch l {
	case SummaryLengthShort, SummaryLengthMedium, SummaryLengthLong:
		return true
	default:
		return false
	}
}

// User is the core entity in the system, representing a unique "person" or "account".
// It holds identity, account state and the digest delivery settings.
type User struct {
	ID             uuid.UUID       // The Global Unique Identifier (GUID) for the user.
	Email          string          // The user's primary contact email, used as the login identifier.
	PasswordHash   string          // The bcrypt-hashed password. Empty for accounts created through Google sign-in only.
	FullName       string          // The user's display name or real name.
	IsActive       bool            // Whether the account is allowed to sign in.
	IsVerified     bool            // Whether the user has confirmed their email address.
	Role           Role            // The user's role, controlling access to admin-only operations.
	ProfileImage   string          // URL of the user's profile image. Empty when none was uploaded.
	Bio            string          // A short self-description. Empty when not set.
	EmailFrequency EmailFrequency  // How often digest emails are delivered to this user.
	EmailTimeHour  int             // The hour of day (0-23) at which digests should be delivered.
	GoogleID       string          // The Google account identifier (the ID token's 'sub' claim). Empty unless linked.
	Preference     *UserPreference // A pointer to the personalization settings. Nil when not loaded or not yet created.
	CreatedAt      time.Time       // Timestamp of when this user account was created.
	UpdatedAt      time.Time       // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether password login is possible for this account.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// IsAdmin reports whether the user may perform content-management operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPreference holds per-user personalization of news selection and notifications.
type UserPreference struct {
	ID                  uuid.UUID      // The unique ID for this preference record itself.
	UserID              uuid.UUID      // Links these settings to the User they belong to.
	PreferredCategories []NewsCategory // The news categories the user wants in their digest. Empty means all categories.
	SummaryLength       SummaryLength  // The preferred length of generated summaries.
	Language            string         // BCP 47 style language code for summaries and emails, e.g. "ko", "en".
	PushNotification    bool           // Whether push notifications are enabled.
	EmailNotification   bool           // Whether notification emails (outside digests) are enabled.
	CreatedAt           time.Time      // Timestamp of when this preference record was created.
	UpdatedAt           time.Time      // Timestamp of the last modification.
}
