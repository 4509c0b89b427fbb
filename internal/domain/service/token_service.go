package service

import (
	"time"

	"newsbite/internal/errors"
)

// TokenPurpose tags a token with the single flow it may be used for.
type TokenPurpose string

const (
	// TokenPurposeAccess authorizes API requests.
	TokenPurposeAccess TokenPurpose = "access"
	// TokenPurposeRefresh obtains a new access token.
	TokenPurposeRefresh TokenPurpose = "refresh"
	// TokenPurposePasswordReset authorizes a password-reset confirmation.
	TokenPurposePasswordReset TokenPurpose = "password_reset"
	// TokenPurposeEmailVerification authorizes an email-verification confirmation.
	TokenPurposeEmailVerification TokenPurpose = "email_verification"
)

// String returns the string representation of the TokenPurpose.
func (p TokenPurpose) String() string {
	return string(p)
}

// IsValid checks if the TokenPurpose is a valid value.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case TokenPurposeAccess, TokenPurposeRefresh, TokenPurposePasswordReset, TokenPurposeEmailVerification:
		return true
	default:
		return false
	}
}

// ErrInvalidToken is returned by Verify for every rejected token. Malformed
// encoding, a bad signature, expiry, a not-yet-valid token and a purpose
// mismatch are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and verifying the signed,
// time-bounded tokens that drive the authentication flows. Tokens are
// self-contained; nothing is stored server-side and there is no revocation.
type TokenService interface {
	// Issue creates a token for the subject using the purpose's configured
	// lifetime. An empty subject or unknown purpose is a caller error.
	Issue(subject string, purpose TokenPurpose) (string, error)

	// IssueWithTTL creates a token with an explicit lifetime instead of the
	// purpose's configured one.
	IssueWithTTL(subject string, purpose TokenPurpose, ttl time.Duration) (string, error)

	// Verify checks the token and returns the embedded subject. It returns
	// ErrInvalidToken when the token is unusable for any reason, including
	// carrying a purpose other than expected.
	Verify(token string, expected TokenPurpose) (string, error)

	// TTL returns the configured lifetime for a purpose.
	TTL(purpose TokenPurpose) time.Duration
}
