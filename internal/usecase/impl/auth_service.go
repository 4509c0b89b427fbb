// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "newsbite/internal/delivery/context"
	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"
	"newsbite/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	tokenTypeBearer = "bearer"

	defaultDigestHour = 9
	defaultLanguage   = "ko"

	verificationEmailSubject = "Confirm your NewsBite email address"
	verificationEmailBody    = "Welcome to NewsBite! Confirm your email address by opening: /api/v1/auth/verify-email/confirm?token=%s"

	passwordResetEmailSubject = "Reset your NewsBite password"
	passwordResetEmailBody    = "A password reset was requested for your account. Open /api/v1/auth/password-reset/confirm with token: %s"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	emailRepo         repository.EmailRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	EmailRepo         repository.EmailRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		emailRepo:         params.EmailRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with default preferences and queues the
// verification email in the same transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash the password outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	// The token subject is the email address; confirmation resolves it back
	// to the account, so the token can be issued before the user row exists.
	verifyToken, err := srv.tokenService.Issue(input.Email, service.TokenPurposeEmailVerification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification token")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		emailRepo := repoFactory.NewEmailRepository()

		newUser := buildNewUserEntity(input)
		newUser.PasswordHash = hashedPassword

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		if err := emailRepo.CreateLog(ctx, buildVerificationEmailLog(newUser, verifyToken)); err != nil {
			return errors.Wrap(err, "failed to queue verification email")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: usecase.NewUserOutput(registeredUser)}, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound). Google-only
	// accounts have no hash and fail the same way as a wrong password.
	if !user.HasPassword() || !srv.hasher.Verify(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Deactivated accounts answer exactly like bad credentials.
	if !user.IsActive {
		srv.log(ctx).Warn("Login attempt on deactivated account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueTokenPair(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// GoogleLogin verifies a Google ID token and signs the asserted identity in,
// linking or creating the account as needed.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	if srv.googleAuthService == nil {
		return nil, domainerrors.ErrExternalService.WrapMessage("google sign-in is not configured")
	}

	googleUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGoogleTokenInvalid, "failed to verify google id token")
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory.NewUserRepository(), googleUser)
		if err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute google sign-in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google sign-in transaction")
	}

	if !loggedInUser.IsActive {
		srv.log(ctx).Warn("Google sign-in on deactivated account", slog.Any("userID", loggedInUser.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "google sign-in failed")
	}

	output, err := srv.issueTokenPair(loggedInUser)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens during google sign-in", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Google sign-in completed", slog.Any("userID", loggedInUser.ID))

	return output, nil
}

// findOrCreateGoogleUser resolves the asserted Google identity to a local
// account: by Google ID first, then by linking an existing email account,
// finally by creating a fresh one.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, userRepo repository.UserRepository, googleUser *service.GoogleUser) (*entity.User, error) {
	user, err := userRepo.FindByGoogleID(ctx, googleUser.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	user, err = userRepo.FindByEmail(ctx, googleUser.Email)
	if err == nil {
		return srv.linkGoogleAccount(ctx, userRepo, user, googleUser)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return srv.createGoogleUser(ctx, userRepo, googleUser)
}

// linkGoogleAccount attaches the Google identity to an account that was
// registered with the same email address.
func (srv *authService) linkGoogleAccount(ctx context.Context, userRepo repository.UserRepository, user *entity.User, googleUser *service.GoogleUser) (*entity.User, error) {
	user.GoogleID = googleUser.ID
	if googleUser.EmailVerified {
		user.IsVerified = true
	}
	if user.FullName == "" {
		user.FullName = googleUser.Name
	}
	if user.ProfileImage == "" {
		user.ProfileImage = googleUser.Picture
	}

	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to link google account")
	}

	srv.log(ctx).Info("Linked Google account to existing user", slog.Any("userID", user.ID))

	return user, nil
}

// createGoogleUser creates a new account from the asserted Google identity.
func (srv *authService) createGoogleUser(ctx context.Context, userRepo repository.UserRepository, googleUser *service.GoogleUser) (*entity.User, error) {
	srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", googleUser.Email))

	newUser := &entity.User{
		Email:          googleUser.Email,
		FullName:       googleUser.Name,
		Role:           entity.RoleUser,
		IsActive:       true,
		IsVerified:     googleUser.EmailVerified,
		ProfileImage:   googleUser.Picture,
		GoogleID:       googleUser.ID,
		EmailFrequency: entity.EmailFrequencyDaily,
		EmailTimeHour:  defaultDigestHour,
		Preference:     defaultPreference(),
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for google sign-in")
	}

	return newUser, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself stays valid until it expires; nothing is stored or revoked.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Refreshing access token")

	subject, err := srv.tokenService.Verify(input.RefreshToken, service.TokenPurposeRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "failed to verify refresh token")
	}

	accessToken, err := srv.tokenService.Issue(subject, service.TokenPurposeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int(srv.tokenService.TTL(service.TokenPurposeAccess).Seconds()),
	}, nil
}

// RequestPasswordReset queues a password-reset email. Unknown addresses get
// the same answer as registered ones so the endpoint cannot be used to probe
// which emails exist.
func (srv *authService) RequestPasswordReset(ctx context.Context, input *usecase.PasswordResetRequestInput) error {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset for unknown email", slog.String("email", input.Email))

			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	token, err := srv.tokenService.Issue(user.Email, service.TokenPurposePasswordReset)
	if err != nil {
		return errors.Wrap(err, "failed to issue password reset token")
	}

	resetLog := &entity.EmailLog{
		UserID:         &user.ID,
		RecipientEmail: user.Email,
		RecipientName:  user.FullName,
		EmailType:      entity.EmailTypePasswordReset,
		Subject:        passwordResetEmailSubject,
		TextContent:    fmt.Sprintf(passwordResetEmailBody, token),
		Status:         entity.EmailStatusPending,
	}
	if err := srv.emailRepo.CreateLog(ctx, resetLog); err != nil {
		return errors.Wrap(err, "failed to queue password reset email")
	}

	return nil
}

// ConfirmPasswordReset verifies a reset token and stores the new password.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input *usecase.PasswordResetConfirmInput) error {
	email, err := srv.tokenService.Verify(input.Token, service.TokenPurposePasswordReset)
	if err != nil {
		srv.log(ctx).Warn("Password reset token rejected", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrTokenInvalid, "failed to verify password reset token")
	}

	// Hash the replacement outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// The account disappeared after the token was issued.
				return errors.Wrap(domainerrors.ErrTokenInvalid, "password reset subject no longer exists")
			}

			return errors.Wrap(err, "failed to load user for password reset")
		}

		user.PasswordHash = hashedPassword

		return errors.Wrap(userRepo.Update(ctx, user), "failed to store new password")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", email))

	return nil
}

// RequestEmailVerification queues a verification email. Unknown addresses and
// already-verified accounts both get a silent success.
func (srv *authService) RequestEmailVerification(ctx context.Context, input *usecase.EmailVerificationRequestInput) error {
	srv.log(ctx).Info("Email verification requested", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Email verification for unknown email", slog.String("email", input.Email))

			return nil
		}

		return errors.Wrap(err, "failed to load user for email verification")
	}

	if user.IsVerified {
		srv.log(ctx).Debug("Email already verified", slog.Any("userID", user.ID))

		return nil
	}

	token, err := srv.tokenService.Issue(user.Email, service.TokenPurposeEmailVerification)
	if err != nil {
		return errors.Wrap(err, "failed to issue verification token")
	}

	if err := srv.emailRepo.CreateLog(ctx, buildVerificationEmailLog(user, token)); err != nil {
		return errors.Wrap(err, "failed to queue verification email")
	}

	return nil
}

// ConfirmEmailVerification verifies the token and marks the email address as
// confirmed. Confirming an already-verified account is a no-op.
func (srv *authService) ConfirmEmailVerification(ctx context.Context, input *usecase.EmailVerificationConfirmInput) error {
	email, err := srv.tokenService.Verify(input.Token, service.TokenPurposeEmailVerification)
	if err != nil {
		srv.log(ctx).Warn("Email verification token rejected", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrTokenInvalid, "failed to verify email verification token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "verification subject no longer exists")
			}

			return errors.Wrap(err, "failed to load user for email verification")
		}

		if user.IsVerified {
			return nil
		}

		user.IsVerified = true

		return errors.Wrap(userRepo.Update(ctx, user), "failed to mark email verified")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute email verification transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	srv.log(ctx).Info("Email verified", slog.String("email", email))

	return nil
}

// issueTokenPair creates the access/refresh pair handed out after any
// successful sign-in.
func (srv *authService) issueTokenPair(user *entity.User) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenService.Issue(user.ID.String(), service.TokenPurposeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.Issue(user.ID.String(), service.TokenPurposeRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int(srv.tokenService.TTL(service.TokenPurposeAccess).Seconds()),
		User:         usecase.NewUserOutput(user),
	}, nil
}

func buildNewUserEntity(input *usecase.RegisterInput) *entity.User {
	return &entity.User{
		Email:          input.Email,
		FullName:       input.FullName,
		Role:           entity.RoleUser,
		IsActive:       true,
		EmailFrequency: entity.EmailFrequencyDaily,
		EmailTimeHour:  defaultDigestHour,
		Preference:     defaultPreference(),
	}
}

func defaultPreference() *entity.UserPreference {
	return &entity.UserPreference{
		SummaryLength:     entity.SummaryLengthMedium,
		Language:          defaultLanguage,
		PushNotification:  true,
		EmailNotification: true,
	}
}

func buildVerificationEmailLog(user *entity.User, token string) *entity.EmailLog {
	return &entity.EmailLog{
		UserID:         &user.ID,
		RecipientEmail: user.Email,
		RecipientName:  user.FullName,
		EmailType:      entity.EmailTypeVerification,
		Subject:        verificationEmailSubject,
		TextContent:    fmt.Sprintf(verificationEmailBody, token),
		Status:         entity.EmailStatusPending,
	}
}
