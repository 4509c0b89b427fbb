package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	mockRepo "newsbite/internal/mocks/repository"
	"newsbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Email, output.Email)
	assert.Equal(t, user.FullName, output.FullName)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetProfile(ctx, id)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, updated *entity.User) {
					assert.Equal(t, "New Name", updated.FullName)
					assert.Equal(t, entity.EmailFrequencyWeekly, updated.EmailFrequency)
					assert.Equal(t, 7, updated.EmailTimeHour)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		FullName:       strPtr("New Name"),
		EmailFrequency: strPtr(string(entity.EmailFrequencyWeekly)),
		EmailTimeHour:  intPtr(7),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", output.FullName)
}

func TestUserService_UpdateProfile_UnknownFrequency(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		EmailFrequency: strPtr("hourly"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetPreferences_DefaultsWhenUnset(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.Preference = nil

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetPreferences(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, string(entity.SummaryLengthMedium), output.SummaryLength)
	assert.Equal(t, defaultLanguage, output.Language)
	assert.True(t, output.EmailNotification)
}

func TestUserService_GetPreferences_Stored(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.Preference = &entity.UserPreference{
		PreferredCategories: []entity.NewsCategory{entity.NewsCategoryIT},
		SummaryLength:       entity.SummaryLengthShort,
		Language:            "en",
		EmailNotification:   true,
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetPreferences(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{entity.NewsCategoryIT.String()}, output.Categories)
	assert.Equal(t, string(entity.SummaryLengthShort), output.SummaryLength)
	assert.Equal(t, "en", output.Language)
}

func TestUserService_UpdatePreferences_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()
	user.Preference = &entity.UserPreference{
		UserID:            user.ID,
		SummaryLength:     entity.SummaryLengthMedium,
		Language:          "ko",
		EmailNotification: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				SavePreference(ctx, mock.AnythingOfType("*entity.UserPreference")).
				Run(func(_ context.Context, pref *entity.UserPreference) {
					assert.Equal(t, []entity.NewsCategory{entity.NewsCategoryEconomy, entity.NewsCategoryIT}, pref.PreferredCategories)
					assert.Equal(t, entity.SummaryLengthLong, pref.SummaryLength)
					assert.False(t, pref.PushNotification)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdatePreferences(ctx, user.ID, &usecase.UpdatePreferencesInput{
		Categories:       []string{entity.NewsCategoryEconomy.String(), entity.NewsCategoryIT.String()},
		SummaryLength:    strPtr(string(entity.SummaryLengthLong)),
		PushNotification: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.SummaryLengthLong), output.SummaryLength)
	assert.False(t, output.PushNotification)
}

func TestUserService_UpdatePreferences_UnknownCategory(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdatePreferences(ctx, user.ID, &usecase.UpdatePreferencesInput{
		Categories: []string{"astrology"},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
