package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsbite/internal/domain/entity"
)

// --- Input DTOs ---

// ListEmailLogsInput narrows and pages the email log listing.
type ListEmailLogsInput struct {
	EmailType string `query:"email_type"`
	Status    string `query:"status"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// ListDigestsInput narrows and pages the digest listing.
type ListDigestsInput struct {
	DigestType string `query:"digest_type"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	PageSize   int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// BuildDigestInput selects the cadence and the date a digest should cover.
// Date defaults to today when empty.
type BuildDigestInput struct {
	DigestType string `json:"digest_type" validate:"required,oneof=daily weekly monthly"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// --- Output DTOs ---

// EmailLogOutput is the public view of one email send record.
type EmailLogOutput struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	RecipientEmail string     `json:"recipient_email"`
	EmailType      string     `json:"email_type"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	RetryCount     int        `json:"retry_count"`
	LastError      string     `json:"last_error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DigestOutput is the public view of an assembled digest.
type DigestOutput struct {
	ID              uuid.UUID      `json:"id"`
	DigestDate      time.Time      `json:"digest_date"`
	DigestType      string         `json:"digest_type"`
	Title           string         `json:"title"`
	Summary         string         `json:"summary,omitempty"`
	ArticleIDs      []uuid.UUID    `json:"article_ids"`
	TotalArticles   int            `json:"total_articles"`
	TotalRecipients int            `json:"total_recipients"`
	SentCount       int            `json:"sent_count"`
	FailedCount     int            `json:"failed_count"`
	CategoryStats   map[string]int `json:"category_stats,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// EmailLogListOutput is one page of the email log listing.
type EmailLogListOutput struct {
	Logs     []*EmailLogOutput `json:"logs"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// DigestListOutput is one page of the digest listing.
type DigestListOutput struct {
	Digests  []*DigestOutput `json:"digests"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// NewEmailLogOutput maps an email log entity onto its public view. Rendered
// bodies and provider internals stay out of it.
func NewEmailLogOutput(log *entity.EmailLog) *EmailLogOutput {
	return &EmailLogOutput{
		ID:             log.ID,
		UserID:         log.UserID,
		RecipientEmail: log.RecipientEmail,
		EmailType:      log.EmailType.String(),
		Subject:        log.Subject,
		Status:         log.Status.String(),
		SentAt:         log.SentAt,
		RetryCount:     log.RetryCount,
		LastError:      log.LastError,
		CreatedAt:      log.CreatedAt,
	}
}

// NewDigestOutput maps a digest entity onto its public view.
func NewDigestOutput(digest *entity.EmailDigest) *DigestOutput {
	stats := make(map[string]int, len(digest.CategoryStats))
	for category, count := range digest.CategoryStats {
		stats[category.String()] = count
	}

	return &DigestOutput{
		ID:              digest.ID,
		DigestDate:      digest.DigestDate,
		DigestType:      digest.DigestType.String(),
		Title:           digest.Title,
		Summary:         digest.Summary,
		ArticleIDs:      digest.ArticleIDs,
		TotalArticles:   digest.TotalArticles,
		TotalRecipients: digest.TotalRecipients,
		SentCount:       digest.SentCount,
		FailedCount:     digest.FailedCount,
		CategoryStats:   stats,
		CreatedAt:       digest.CreatedAt,
	}
}

// EmailUsecase defines the interface for email delivery tracking and digest
// assembly. All operations are admin only.
type EmailUsecase interface {
	// ListLogs returns one page of email send records matching the filter.
	ListLogs(ctx context.Context, requesterID uuid.UUID, input *ListEmailLogsInput) (*EmailLogListOutput, error)

	// ListDigests returns one page of assembled digests matching the filter.
	ListDigests(ctx context.Context, requesterID uuid.UUID, input *ListDigestsInput) (*DigestListOutput, error)

	// BuildDigest assembles a digest for the given cadence and date, queues
	// one email per subscribed recipient and announces the result on the
	// event bus.
	BuildDigest(ctx context.Context, requesterID uuid.UUID, input *BuildDigestInput) (*DigestOutput, error)
}
