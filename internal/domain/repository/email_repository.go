// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"newsbite/internal/domain/entity"
	"newsbite/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for email persistence.
var (
	// ErrTemplateNotFound is returned when an email template is not found.
	ErrTemplateNotFound = errors.New("email template not found")
	// ErrEmailLogNotFound is returned when an email log record is not found.
	ErrEmailLogNotFound = errors.New("email log not found")
	// ErrDigestNotFound is returned when an email digest is not found.
	ErrDigestNotFound = errors.New("email digest not found")
)

// EmailLogFilter narrows down email log listings. Zero values mean "no filter".
type EmailLogFilter struct {
	UserID    *uuid.UUID         // Only logs addressed to this user.
	EmailType entity.EmailType   // Only logs of this email type.
	Status    entity.EmailStatus // Only logs in this delivery state.
	Limit     int                // Maximum number of rows to return.
	Offset    int                // Number of rows to skip.
}

// DigestFilter narrows down digest listings. Zero values mean "no filter".
type DigestFilter struct {
	DigestType entity.DigestType // Only digests of this cadence.
	Limit      int               // Maximum number of rows to return.
	Offset     int               // Number of rows to skip.
}

// EmailRepository defines the interface for template, log and digest persistence.
type EmailRepository interface {
	// CreateTemplate persists a new email template.
	CreateTemplate(ctx context.Context, tmpl *entity.EmailTemplate) error

	// FindTemplateByName retrieves a template by its unique name.
	FindTemplateByName(ctx context.Context, name string) (*entity.EmailTemplate, error)

	// FindActiveTemplate retrieves the active template for an email type and
	// language. Returns ErrTemplateNotFound when none is active.
	FindActiveTemplate(ctx context.Context, emailType entity.EmailType, language string) (*entity.EmailTemplate, error)

	// CreateLog persists a new email send record.
	CreateLog(ctx context.Context, log *entity.EmailLog) error

	// UpdateLog modifies an existing email send record, e.g. after delivery
	// callbacks.
	UpdateLog(ctx context.Context, log *entity.EmailLog) error

	// ListLogs retrieves a page of email logs matching the filter, newest
	// first, along with the total number of matches.
	ListLogs(ctx context.Context, filter EmailLogFilter) ([]*entity.EmailLog, int64, error)

	// CreateDigest persists a newly assembled digest.
	CreateDigest(ctx context.Context, digest *entity.EmailDigest) error

	// FindDigestByID retrieves a digest by its unique ID.
	FindDigestByID(ctx context.Context, id uuid.UUID) (*entity.EmailDigest, error)

	// UpdateDigest modifies an existing digest, e.g. to record send statistics.
	UpdateDigest(ctx context.Context, digest *entity.EmailDigest) error

	// ListDigests retrieves a page of digests matching the filter, newest
	// digest date first, along with the total number of matches.
	ListDigests(ctx context.Context, filter DigestFilter) ([]*entity.EmailDigest, int64, error)
}
