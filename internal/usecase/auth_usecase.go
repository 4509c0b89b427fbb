// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=100"`
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginInput carries the Google ID token obtained by the client.
type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshInput carries the refresh token to exchange for a new access token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// PasswordResetRequestInput identifies the account asking for a reset.
type PasswordResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmInput carries a reset token and the replacement password.
type PasswordResetConfirmInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// EmailVerificationRequestInput identifies the account asking for a new
// verification email.
type EmailVerificationRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// EmailVerificationConfirmInput carries the verification token.
type EmailVerificationConfirmInput struct {
	Token string `json:"token" validate:"required"`
}

// --- Output DTOs ---

// TokenPairOutput returns the generated tokens after a successful login.
type TokenPairOutput struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"` // Access token lifetime in seconds.
	User         *UserOutput `json:"user"`
}

// RefreshOutput returns the replacement access token. The refresh token
// remains unchanged.
type RefreshOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// RegisterOutput returns the newly created account's public information.
type RegisterOutput struct {
	User *UserOutput `json:"user"`
}

// AuthUsecase defines the interface for account and token flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with default preferences and queues the
	// verification email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// GoogleLogin verifies a Google ID token and signs the asserted identity
	// in, linking or creating the account as needed.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*TokenPairOutput, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// RequestPasswordReset queues a password-reset email. It reports success
	// whether or not the account exists.
	RequestPasswordReset(ctx context.Context, input *PasswordResetRequestInput) error

	// ConfirmPasswordReset verifies a reset token and stores the new password.
	ConfirmPasswordReset(ctx context.Context, input *PasswordResetConfirmInput) error

	// RequestEmailVerification queues a verification email. It reports success
	// whether or not the account exists.
	RequestEmailVerification(ctx context.Context, input *EmailVerificationRequestInput) error

	// ConfirmEmailVerification verifies the token and marks the email address
	// as confirmed.
	ConfirmEmailVerification(ctx context.Context, input *EmailVerificationConfirmInput) error
}
