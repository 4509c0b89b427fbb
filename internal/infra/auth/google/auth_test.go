package google

import (
	"context"
	"log/slog"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbite/config"
	"newsbite/internal/errors"
)

type fakeVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	return f.token, f.err
}

func TestNewAuthService_Unconfigured(t *testing.T) {
	// Without a firebase section the service is absent, not broken.
	svc, err := NewAuthService(&config.Config{}, slog.Default())
	assert.NoError(t, err)
	assert.Nil(t, svc)
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	token := &firebaseauth.Token{
		UID: "google-uid-123",
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"picture":        "https://example.com/p.png",
		},
	}
	svc := &AuthServiceImpl{verifier: &fakeVerifier{token: token}, logger: slog.Default()}

	user, err := svc.VerifyIDToken(context.Background(), "a-verified-token")
	require.NoError(t, err)
	assert.Equal(t, "google-uid-123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "https://example.com/p.png", user.Picture)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDTokenPartialClaims(t *testing.T) {
	token := &firebaseauth.Token{
		UID:    "google-uid-123",
		Claims: map[string]any{"email": "test@example.com"},
	}
	svc := &AuthServiceImpl{verifier: &fakeVerifier{token: token}, logger: slog.Default()}

	user, err := svc.VerifyIDToken(context.Background(), "a-verified-token")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Empty(t, user.Name)
	assert.Empty(t, user.Picture)
	assert.False(t, user.EmailVerified)
}

func TestAuthService_VerifyIDTokenRejected(t *testing.T) {
	svc := &AuthServiceImpl{
		verifier: &fakeVerifier{err: errors.New("ID token has invalid signature")},
		logger:   slog.Default(),
	}

	user, err := svc.VerifyIDToken(context.Background(), "forged-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid ID token")
}
