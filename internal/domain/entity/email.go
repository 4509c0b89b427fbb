// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the delivery state of a single email.
type EmailStatus string

const (
	// EmailStatusPending means the email is queued and not yet handed to the provider.
	EmailStatusPending EmailStatus = "pending"
	// EmailStatusProcessing means delivery is in progress.
	EmailStatusProcessing EmailStatus = "processing"
	// EmailStatusSent means the provider accepted the email.
	EmailStatusSent EmailStatus = "sent"
	// EmailStatusFailed means delivery failed after retries.
	EmailStatusFailed EmailStatus = "failed"
	// EmailStatusBounced means the recipient server rejected the email.
	EmailStatusBounced EmailStatus = "bounced"
	// EmailStatusOpened means the recipient opened the email.
	EmailStatusOpened EmailStatus = "opened"
	// EmailStatusClicked means the recipient clicked a link in the email.
	EmailStatusClicked EmailStatus = "clicked"
)

// String returns the string representation of the EmailStatus.
func (s EmailStatus) String() string {
	return string(s)
}

// IsValid checks if the EmailStatus is a valid value.
func (s EmailStatus) IsValid() bool {
	switch s {
	case EmailStatusPending, EmailStatusProcessing, EmailStatusSent,
		EmailStatusFailed, EmailStatusBounced, EmailStatusOpened, EmailStatusClicked:
		return true
	default:
		return false
	}
}

// EmailType represents the kind of email being sent.
type EmailType string

const (
	// EmailTypeDailyDigest is the daily news digest.
	EmailTypeDailyDigest EmailType = "daily_digest"
	// EmailTypeWeeklyDigest is the weekly news digest.
	EmailTypeWeeklyDigest EmailType = "weekly_digest"
	// EmailTypeMonthlyDigest is the monthly news digest.
	EmailTypeMonthlyDigest EmailType = "monthly_digest"
	// EmailTypeBreakingNews is a breaking-news alert.
	EmailTypeBreakingNews EmailType = "breaking_news"
	// EmailTypeWelcome is sent once after registration.
	EmailTypeWelcome EmailType = "welcome"
	// EmailTypeVerification carries the email-verification link.
	EmailTypeVerification EmailType = "verification"
	// EmailTypePasswordReset carries the password-reset link.
	EmailTypePasswordReset EmailType = "password_reset"
	// EmailTypeNotification is a general notification email.
	EmailTypeNotification EmailType = "notification"
)

// String returns the string representation of the EmailType.
func (t EmailType) String() string {
	return string(t)
}

// IsValid checks if the EmailType is a valid value.
func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeDailyDigest, EmailTypeWeeklyDigest, EmailTypeMonthlyDigest,
		EmailTypeBreakingNews, EmailTypeWelcome, EmailTypeVerification,
		EmailTypePasswordReset, EmailTypeNotification:
		return true
	default:
		return false
	}
}

// DigestType represents the cadence of a news digest.
type DigestType string

const (
	// DigestTypeDaily is a digest covering one day.
	DigestTypeDaily DigestType = "daily"
	// DigestTypeWeekly is a digest covering one week.
	DigestTypeWeekly DigestType = "weekly"
	// DigestTypeMonthly is a digest covering one month.
	DigestTypeMonthly DigestType = "monthly"
)

// String returns the string representation of the DigestType.
func (d DigestType) String() string {
	return string(d)
}

// IsValid checks if the DigestType is a valid value.
func (d DigestType) IsValid() bool {
	switch d {
	case DigestTypeDaily, DigestTypeWeekly, DigestTypeMonthly:
		return true
	default:
		return false
	}
}

// EmailType returns the email type used when sending a digest of this cadence.
func (d DigestType) EmailType() EmailType {
	switch d {
	case DigestTypeWeekly:
		return EmailTypeWeeklyDigest
	case DigestTypeMonthly:
		return EmailTypeMonthlyDigest
	default:
		return EmailTypeDailyDigest
	}
}

// Frequency returns the delivery frequency whose subscribers receive digests
// of this cadence.
func (d DigestType) Frequency() EmailFrequency {
	switch d {
	case DigestTypeWeekly:
		return EmailFrequencyWeekly
	case DigestTypeMonthly:
		return EmailFrequencyMonthly
	default:
		return EmailFrequencyDaily
	}
}

// DigestTypeForFrequency maps a user's delivery frequency to the digest
// cadence it subscribes to. The second result is false for disabled delivery.
func DigestTypeForFrequency(f EmailFrequency) (DigestType, bool) {
	switch f {
	case EmailFrequencyDaily:
		return DigestTypeDaily, true
	case EmailFrequencyWeekly:
		return DigestTypeWeekly, true
	case EmailFrequencyMonthly:
		return DigestTypeMonthly, true
	default:
		return "", false
	}
}

// EmailTemplate is a reusable template for one email type and language.
type EmailTemplate struct {
	ID              uuid.UUID // The unique ID for this template.
	Name            string    // The template name. Unique across all templates.
	EmailType       EmailType // The kind of email this template renders.
	SubjectTemplate string    // The subject line template.
	HTMLTemplate    string    // The HTML body template.
	TextTemplate    string    // The plain-text body template. Empty when HTML-only.
	IsActive        bool      // Whether the template may be used for new sends.
	Version         string    // Template version, e.g. "1.0".
	Language        string    // Language code of the template content.
	CreatedAt       time.Time // Timestamp of when this template was created.
	UpdatedAt       time.Time // Timestamp of the last modification.
}

// EmailLog records a single email send attempt and its delivery tracking.
type EmailLog struct {
	ID               uuid.UUID   // The unique ID for this log record.
	UserID           *uuid.UUID  // The recipient's user ID. Nil for non-member recipients.
	RecipientEmail   string      // The recipient email address.
	RecipientName    string      // The recipient display name. Empty when unknown.
	EmailType        EmailType   // The kind of email that was sent.
	Subject          string      // The rendered subject line.
	HTMLContent      string      // The rendered HTML body. Empty when text-only.
	TextContent      string      // The rendered plain-text body. Empty when HTML-only.
	Status           EmailStatus // The current delivery state.
	SentAt           *time.Time  // When the provider accepted the email. Nil until sent.
	OpenedAt         *time.Time  // When the recipient opened the email. Nil until opened.
	ClickedAt        *time.Time  // When the recipient clicked a link. Nil until clicked.
	BounceReason     string      // Why the email bounced. Empty unless bounced.
	MessageID        string      // The provider's message identifier. Unique when set.
	ProviderResponse string      // Raw provider response for debugging.
	RetryCount       int         // Number of delivery retries so far.
	LastError        string      // The most recent delivery error. Empty on success.
	CreatedAt        time.Time   // Timestamp of when this record was created.
	UpdatedAt        time.Time   // Timestamp of the last modification.
}

// EmailDigest is one assembled news digest and its send statistics.
type EmailDigest struct {
	ID              uuid.UUID            // The unique ID for this digest.
	DigestDate      time.Time            // The date the digest covers.
	DigestType      DigestType           // The cadence of the digest.
	Title           string               // The digest headline.
	Summary         string               // An overall summary of the period. Empty when not generated.
	ArticleIDs      []uuid.UUID          // The articles included in the digest.
	TotalArticles   int                  // Number of articles included.
	TotalRecipients int                  // Number of users the digest was addressed to.
	SentCount       int                  // Number of successful sends.
	FailedCount     int                  // Number of failed sends.
	CategoryStats   map[NewsCategory]int // Article counts per category.
	CreatedAt       time.Time            // Timestamp of when this digest was created.
	UpdatedAt       time.Time            // Timestamp of the last modification.
}
