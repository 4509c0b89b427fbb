// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsbite/config"
	"newsbite/internal/domain/service"
	"newsbite/internal/errors"
)

// Default token lifetimes, used when the configuration leaves them zero.
const (
	defaultAccessTTL            = time.Minute * 60
	defaultRefreshTTL           = time.Hour * 24 * 7
	defaultPasswordResetTTL     = time.Hour
	defaultEmailVerificationTTL = time.Hour * 24
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed with the single process-wide secret; validity is a
// pure function of signature and clock, nothing is kept server-side.
type jwtService struct {
	secret []byte                                 // Secret key for signing all tokens.
	ttls   map[service.TokenPurpose]time.Duration // Lifetime per token purpose.
	now    func() time.Time                       // Clock source, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret fails here, at startup, never per call.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	ttls := map[service.TokenPurpose]time.Duration{
		service.TokenPurposeAccess:            defaultAccessTTL,
		service.TokenPurposeRefresh:           defaultRefreshTTL,
		service.TokenPurposePasswordReset:     defaultPasswordResetTTL,
		service.TokenPurposeEmailVerification: defaultEmailVerificationTTL,
	}
	if cfg.Token.AccessTTL > 0 {
		ttls[service.TokenPurposeAccess] = cfg.Token.AccessTTL
	}
	if cfg.Token.RefreshTTL > 0 {
		ttls[service.TokenPurposeRefresh] = cfg.Token.RefreshTTL
	}
	if cfg.Token.PasswordResetTTL > 0 {
		ttls[service.TokenPurposePasswordReset] = cfg.Token.PasswordResetTTL
	}
	if cfg.Token.EmailVerificationTTL > 0 {
		ttls[service.TokenPurposeEmailVerification] = cfg.Token.EmailVerificationTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey),
		ttls:   ttls,
		now:    time.Now,
	}, nil
}

// Issue creates a token for the subject using the purpose's configured lifetime.
func (s *jwtService) Issue(subject string, purpose service.TokenPurpose) (string, error) {
	return s.IssueWithTTL(subject, purpose, s.TTL(purpose))
}

// IssueWithTTL creates a token with an explicit lifetime.
// An empty subject or unknown purpose is a programming error at the call
// site and is reported as such, not as an invalid-token condition.
func (s *jwtService) IssueWithTTL(subject string, purpose service.TokenPurpose, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}
	if !purpose.IsValid() {
		return "", errors.Errorf("unknown token purpose %q", purpose)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  subject,             // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": purpose.String(),    // The single flow this token is valid for
	}
	// Single-use flow tokens also carry a not-before to blunt replay across
	// skewed clocks.
	if purpose == service.TokenPurposePasswordReset || purpose == service.TokenPurposeEmailVerification {
		claims["nbf"] = now.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token and returns the embedded subject.
// Every rejection reason collapses into service.ErrInvalidToken so callers
// cannot distinguish a forged token from an expired one.
func (s *jwtService) Verify(tokenString string, expected service.TokenPurpose) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", service.ErrInvalidToken
	}
	if purpose, _ := claims["type"].(string); purpose != expected.String() {
		return "", service.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", service.ErrInvalidToken
	}

	return subject, nil
}

// TTL returns the configured lifetime for a purpose.
func (s *jwtService) TTL(purpose service.TokenPurpose) time.Duration {
	return s.ttls[purpose]
}
