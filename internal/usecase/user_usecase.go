package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsbite/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput carries the profile fields a user may change. Nil fields
// are left untouched.
type UpdateProfileInput struct {
	FullName       *string `json:"full_name" validate:"omitempty,max=100"`
	ProfileImage   *string `json:"profile_image" validate:"omitempty,url,max=500"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	EmailFrequency *string `json:"email_frequency" validate:"omitempty,oneof=daily weekly monthly disabled"`
	EmailTimeHour  *int    `json:"email_time_hour" validate:"omitempty,min=0,max=23"`
}

// UpdatePreferencesInput carries the digest preference fields. Nil fields are
// left untouched.
type UpdatePreferencesInput struct {
	Categories        []string `json:"categories" validate:"omitempty,dive,required"`
	SummaryLength     *string  `json:"summary_length" validate:"omitempty,oneof=short medium long"`
	Language          *string  `json:"language" validate:"omitempty,min=2,max=8"`
	PushNotification  *bool    `json:"push_notification"`
	EmailNotification *bool    `json:"email_notification"`
}

// --- Output DTOs ---

// UserOutput is the public view of an account. Credentials and provider
// identifiers never leave the usecase layer.
type UserOutput struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	IsVerified     bool      `json:"is_verified"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	EmailFrequency string    `json:"email_frequency"`
	EmailTimeHour  int       `json:"email_time_hour"`
	CreatedAt      time.Time `json:"created_at"`
}

// PreferencesOutput is the public view of a user's digest preferences.
type PreferencesOutput struct {
	Categories        []string `json:"categories"`
	SummaryLength     string   `json:"summary_length"`
	Language          string   `json:"language"`
	PushNotification  bool     `json:"push_notification"`
	EmailNotification bool     `json:"email_notification"`
}

// NewUserOutput maps a user entity onto its public view.
func NewUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           string(user.Role),
		IsActive:       user.IsActive,
		IsVerified:     user.IsVerified,
		ProfileImage:   user.ProfileImage,
		Bio:            user.Bio,
		EmailFrequency: string(user.EmailFrequency),
		EmailTimeHour:  user.EmailTimeHour,
		CreatedAt:      user.CreatedAt,
	}
}

// NewPreferencesOutput maps a preference entity onto its public view.
func NewPreferencesOutput(pref *entity.UserPreference) *PreferencesOutput {
	categories := make([]string, 0, len(pref.PreferredCategories))
	for _, c := range pref.PreferredCategories {
		categories = append(categories, c.String())
	}
	return &PreferencesOutput{
		Categories:        categories,
		SummaryLength:     pref.SummaryLength.String(),
		Language:          pref.Language,
		PushNotification:  pref.PushNotification,
		EmailNotification: pref.EmailNotification,
	}
}

// UserUsecase defines the interface for profile and preference operations.
type UserUsecase interface {
	// GetProfile returns the account identified by userID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserOutput, error)

	// UpdateProfile applies the non-nil fields of input to the account.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserOutput, error)

	// GetPreferences returns the stored digest preferences, or the defaults
	// when the user has never saved any.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesOutput, error)

	// UpdatePreferences applies the non-nil fields of input on top of the
	// stored (or default) preferences and persists the result.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*PreferencesOutput, error)
}
