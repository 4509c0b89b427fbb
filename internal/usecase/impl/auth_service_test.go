package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"
	mockRepo "newsbite/internal/mocks/repository"
	mockSvc "newsbite/internal/mocks/service"
	"newsbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service           usecase.AuthUsecase
	txManager         *mockRepo.MockTransactionManager
	userRepo          *mockRepo.MockUserRepository
	emailRepo         *mockRepo.MockEmailRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	emailRepo := mockRepo.NewMockEmailRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		EmailRepo:         emailRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Logger:            logger,
	})

	return authServiceFixtures{
		service:           svc,
		txManager:         txManager,
		userRepo:          userRepo,
		emailRepo:         emailRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

func activeTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "reader@example.com",
		PasswordHash: "stored-hash",
		FullName:     "Test Reader",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "reader@example.com",
		Password: "Password123!",
		FullName: "Test Reader",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.tokenService.EXPECT().
		Issue(input.Email, service.TokenPurposeEmailVerification).
		Return("verify-token", nil)

	var queuedLog *entity.EmailLog
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockEmailRepo := mockRepo.NewMockEmailRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewEmailRepository().Return(mockEmailRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockEmailRepo.EXPECT().
				CreateLog(ctx, mock.AnythingOfType("*entity.EmailLog")).
				Run(func(ctx context.Context, log *entity.EmailLog) {
					queuedLog = log
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, string(entity.RoleUser), output.User.Role)

	require.NotNil(t, queuedLog)
	assert.Equal(t, entity.EmailTypeVerification, queuedLog.EmailType)
	assert.Equal(t, input.Email, queuedLog.RecipientEmail)
	assert.Contains(t, queuedLog.TextContent, "verify-token")
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("weak").Return("", errors.New("bcrypt: cost out of range"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "reader@example.com",
		Password: "weak",
		FullName: "Test Reader",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Verify("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		Issue(user.ID.String(), service.TokenPurposeAccess).
		Return("access-token", nil)
	fx.tokenService.EXPECT().
		Issue(user.ID.String(), service.TokenPurposeRefresh).
		Return("refresh-token", nil)
	fx.tokenService.EXPECT().TTL(service.TokenPurposeAccess).Return(15 * time.Minute)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, 900, output.ExpiresIn)
	assert.Equal(t, user.Email, output.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Verify("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// unknown email answers exactly like a wrong password
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_GoogleOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.PasswordHash = ""
	user.GoogleID = "google-sub-1"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.IsActive = false

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Verify("Password123!", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GoogleLogin_CreatesNewUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	googleUser := &service.GoogleUser{
		ID:            "google-sub-1",
		Email:         "reader@example.com",
		Name:          "Test Reader",
		EmailVerified: true,
	}

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByGoogleID(ctx, googleUser.ID).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, googleUser.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, googleUser.ID, user.GoogleID)
					assert.True(t, user.IsVerified)
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("string"), service.TokenPurposeAccess).
		Return("access-token", nil)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("string"), service.TokenPurposeRefresh).
		Return("refresh-token", nil)
	fx.tokenService.EXPECT().TTL(service.TokenPurposeAccess).Return(15 * time.Minute)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, googleUser.Email, output.User.Email)
}

func TestAuthService_GoogleLogin_LinksExistingAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := activeTestUser()
	googleUser := &service.GoogleUser{
		ID:            "google-sub-1",
		Email:         existing.Email,
		Name:          "Google Name",
		EmailVerified: true,
	}

	fx.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByGoogleID(ctx, googleUser.ID).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, googleUser.Email).
				Return(existing, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, googleUser.ID, user.GoogleID)
					assert.True(t, user.IsVerified)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		Issue(existing.ID.String(), service.TokenPurposeAccess).
		Return("access-token", nil)
	fx.tokenService.EXPECT().
		Issue(existing.ID.String(), service.TokenPurposeRefresh).
		Return("refresh-token", nil)
	fx.tokenService.EXPECT().TTL(service.TokenPurposeAccess).Return(15 * time.Minute)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, existing.Email, output.User.Email)
}

func TestAuthService_GoogleLogin_InvalidIDToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("invalid token"))

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "bad-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	subject := uuid.New().String()

	fx.tokenService.EXPECT().
		Verify("refresh-token", service.TokenPurposeRefresh).
		Return(subject, nil)
	fx.tokenService.EXPECT().
		Issue(subject, service.TokenPurposeAccess).
		Return("new-access-token", nil)
	fx.tokenService.EXPECT().TTL(service.TokenPurposeAccess).Return(15 * time.Minute)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, 900, output.ExpiresIn)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		Verify("stale-token", service.TokenPurposeRefresh).
		Return("", service.ErrInvalidToken)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{
		Email: "ghost@example.com",
	})

	// the endpoint must not reveal whether the address is registered
	require.NoError(t, err)
}

func TestAuthService_RequestPasswordReset_QueuesEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().
		Issue(user.Email, service.TokenPurposePasswordReset).
		Return("reset-token", nil)

	var queuedLog *entity.EmailLog
	fx.emailRepo.EXPECT().
		CreateLog(ctx, mock.AnythingOfType("*entity.EmailLog")).
		Run(func(ctx context.Context, log *entity.EmailLog) {
			queuedLog = log
		}).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{
		Email: user.Email,
	})

	require.NoError(t, err)
	require.NotNil(t, queuedLog)
	assert.Equal(t, entity.EmailTypePasswordReset, queuedLog.EmailType)
	assert.Contains(t, queuedLog.TextContent, "reset-token")
}

func TestAuthService_ConfirmPasswordReset_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.tokenService.EXPECT().
		Verify("reset-token", service.TokenPurposePasswordReset).
		Return(user.Email, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, "new_hash", updated.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ConfirmPasswordReset(ctx, &usecase.PasswordResetConfirmInput{
		Token:       "reset-token",
		NewPassword: "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestAuthService_ConfirmPasswordReset_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().
		Verify("forged-token", service.TokenPurposePasswordReset).
		Return("", service.ErrInvalidToken)

	err := fx.service.ConfirmPasswordReset(ctx, &usecase.PasswordResetConfirmInput{
		Token:       "forged-token",
		NewPassword: "NewPassword123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_RequestEmailVerification_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.IsVerified = true

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	err := fx.service.RequestEmailVerification(ctx, &usecase.EmailVerificationRequestInput{
		Email: user.Email,
	})

	require.NoError(t, err)
}

func TestAuthService_ConfirmEmailVerification_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.tokenService.EXPECT().
		Verify("verify-token", service.TokenPurposeEmailVerification).
		Return(user.Email, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.True(t, updated.IsVerified)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ConfirmEmailVerification(ctx, &usecase.EmailVerificationConfirmInput{
		Token: "verify-token",
	})

	require.NoError(t, err)
}
