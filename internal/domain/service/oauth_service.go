package service

import (
	"context"
)

// GoogleUser represents the identity asserted by a verified Google ID token.
type GoogleUser struct {
	ID            string // Google's stable user ID (the token's 'sub' claim).
	Email         string // The account email address.
	Name          string // The display name, when the token carries one.
	Picture       string // URL of the profile picture, when the token carries one.
	EmailVerified bool   // Whether Google has verified the email address.
}

// OAuthAuthService defines the interface for OAuth ID-token verification.
// This is specifically for Google Sign-In where the client sends an ID token directly.
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns the asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
