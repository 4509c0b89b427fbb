// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"newsbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPreferenceNotFound is returned when a user has no preference record yet.
	ErrPreferenceNotFound = errors.New("user preference not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves a single user by their linked Google account ID.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// FindPreferenceByUserID retrieves the personalization settings of a user.
	// Returns ErrPreferenceNotFound when the user never saved any.
	FindPreferenceByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserPreference, error)

	// SavePreference creates or replaces the personalization settings of a user.
	SavePreference(ctx context.Context, pref *entity.UserPreference) error

	// FindDigestRecipients retrieves all active users subscribed to the given
	// delivery frequency, with their preferences preloaded.
	FindDigestRecipients(ctx context.Context, frequency entity.EmailFrequency) ([]*entity.User, error)
}
