// Package google verifies Google-issued ID tokens for the Google sign-in flow.
package google

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"newsbite/config"
	"newsbite/internal/domain/service"
	"newsbite/internal/errors"
)

// idTokenVerifier is the part of the Firebase auth client this service uses.
// Narrowed to an interface so tests can substitute the verifier.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// AuthServiceImpl implements service.OAuthAuthService on top of the Firebase
// Admin SDK, which caches and rotates Google's signing certificates.
type AuthServiceImpl struct {
	verifier idTokenVerifier
	logger   *slog.Logger
}

// NewAuthService creates the Google sign-in verifier from configuration.
// When Firebase is not configured the service is nil and Google sign-in is
// disabled; a present but unusable configuration is a startup error.
func NewAuthService(cfg *config.Config, logger *slog.Logger) (service.OAuthAuthService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Info("firebase not configured, google sign-in disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase auth client")
	}

	return &AuthServiceImpl{verifier: client, logger: logger}, nil
}

// VerifyIDToken implements service.OAuthAuthService.
// The Firebase client checks signature, issuer, audience and expiry; this
// method only maps the verified claims onto the domain shape.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.GoogleUser{ID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}
	if name, ok := token.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		user.Picture = picture
	}

	s.logger.Info("Google ID token verified successfully",
		slog.String("userID", user.ID),
		slog.String("email", user.Email))

	return user, nil
}
