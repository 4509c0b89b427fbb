package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"newsbite/config"
	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"
	mockRepo "newsbite/internal/mocks/repository"
	mockSvc "newsbite/internal/mocks/service"
	"newsbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// emailServiceFixtures holds all test dependencies for email service tests.
type emailServiceFixtures struct {
	service        usecase.EmailUsecase
	txManager      *mockRepo.MockTransactionManager
	emailRepo      *mockRepo.MockEmailRepository
	userRepo       *mockRepo.MockUserRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestEmailService(t *testing.T) emailServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	emailRepo := mockRepo.NewMockEmailRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Pagination: &config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}

	svc := NewEmailService(EmailServiceParams{
		TxManager:      txManager,
		EmailRepo:      emailRepo,
		UserRepo:       userRepo,
		EventPublisher: eventPublisher,
		Config:         cfg,
		Logger:         logger,
	})

	return emailServiceFixtures{
		service:        svc,
		txManager:      txManager,
		emailRepo:      emailRepo,
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
	}
}

func TestEmailService_ListLogs_Success(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	var captured repository.EmailLogFilter
	fx.emailRepo.EXPECT().
		ListLogs(ctx, mock.AnythingOfType("repository.EmailLogFilter")).
		Run(func(_ context.Context, filter repository.EmailLogFilter) {
			captured = filter
		}).
		Return([]*entity.EmailLog{{ID: uuid.New(), RecipientEmail: "reader@example.com"}}, int64(1), nil)

	output, err := fx.service.ListLogs(ctx, admin.ID, &usecase.ListEmailLogsInput{
		EmailType: string(entity.EmailTypeDailyDigest),
		Status:    string(entity.EmailStatusPending),
	})

	require.NoError(t, err)
	require.Len(t, output.Logs, 1)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, entity.EmailTypeDailyDigest, captured.EmailType)
	assert.Equal(t, entity.EmailStatusPending, captured.Status)
	assert.Equal(t, 20, captured.Limit)
}

func TestEmailService_ListLogs_RequiresAdmin(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.ListLogs(ctx, user.ID, &usecase.ListEmailLogsInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEmailService_ListLogs_UnknownEmailType(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	output, err := fx.service.ListLogs(ctx, admin.ID, &usecase.ListEmailLogsInput{
		EmailType: "carrier_pigeon",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmailService_ListDigests_Success(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.emailRepo.EXPECT().
		ListDigests(ctx, mock.AnythingOfType("repository.DigestFilter")).
		Return([]*entity.EmailDigest{{ID: uuid.New(), DigestType: entity.DigestTypeDaily}}, int64(1), nil)

	output, err := fx.service.ListDigests(ctx, admin.ID, &usecase.ListDigestsInput{
		DigestType: string(entity.DigestTypeDaily),
	})

	require.NoError(t, err)
	require.Len(t, output.Digests, 1)
	assert.Equal(t, int64(1), output.Total)
}

func TestEmailService_BuildDigest_Success(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	article := testArticle()
	article.Status = entity.NewsStatusSummarized
	recipient := activeTestUser()
	recipient.EmailFrequency = entity.EmailFrequencyDaily

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	var queuedLogs []*entity.EmailLog
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsRepo := mockRepo.NewMockNewsRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockEmailRepo := mockRepo.NewMockEmailRepository(t)

			mockFactory.EXPECT().NewNewsRepository().Return(mockNewsRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewEmailRepository().Return(mockEmailRepo)

			mockNewsRepo.EXPECT().
				FindDigestArticles(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), digestArticleLimit).
				Return([]*entity.NewsArticle{article}, nil)
			mockUserRepo.EXPECT().
				FindDigestRecipients(ctx, entity.EmailFrequencyDaily).
				Return([]*entity.User{recipient}, nil)
			mockEmailRepo.EXPECT().
				CreateDigest(ctx, mock.AnythingOfType("*entity.EmailDigest")).
				Run(func(_ context.Context, digest *entity.EmailDigest) {
					digest.ID = uuid.New()
				}).
				Return(nil)
			mockEmailRepo.EXPECT().
				CreateLog(ctx, mock.AnythingOfType("*entity.EmailLog")).
				Run(func(_ context.Context, log *entity.EmailLog) {
					queuedLogs = append(queuedLogs, log)
				}).
				Return(nil)
			mockNewsRepo.EXPECT().
				UpdateArticle(ctx, mock.AnythingOfType("*entity.NewsArticle")).
				Run(func(_ context.Context, updated *entity.NewsArticle) {
					assert.Equal(t, entity.NewsStatusPublished, updated.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	var published *service.DigestBuiltEvent
	fx.eventPublisher.EXPECT().
		PublishDigestBuilt(ctx, mock.AnythingOfType("*service.DigestBuiltEvent")).
		Run(func(_ context.Context, event *service.DigestBuiltEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.BuildDigest(ctx, admin.ID, &usecase.BuildDigestInput{
		DigestType: string(entity.DigestTypeDaily),
		Date:       "2025-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.DigestTypeDaily), output.DigestType)
	assert.Equal(t, 1, output.TotalArticles)
	assert.Equal(t, 1, output.TotalRecipients)

	require.Len(t, queuedLogs, 1)
	assert.Equal(t, recipient.Email, queuedLogs[0].RecipientEmail)
	assert.Equal(t, entity.EmailTypeDailyDigest, queuedLogs[0].EmailType)
	assert.Equal(t, entity.EmailStatusPending, queuedLogs[0].Status)

	require.NotNil(t, published)
	assert.Equal(t, string(entity.DigestTypeDaily), published.DigestType)
	assert.Equal(t, 1, published.TotalRecipients)
}

func TestEmailService_BuildDigest_NoArticles(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsRepo := mockRepo.NewMockNewsRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockEmailRepo := mockRepo.NewMockEmailRepository(t)

			mockFactory.EXPECT().NewNewsRepository().Return(mockNewsRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewEmailRepository().Return(mockEmailRepo)

			mockNewsRepo.EXPECT().
				FindDigestArticles(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), digestArticleLimit).
				Return([]*entity.NewsArticle{}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.BuildDigest(ctx, admin.ID, &usecase.BuildDigestInput{
		DigestType: string(entity.DigestTypeDaily),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEmailService_BuildDigest_UnknownType(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	output, err := fx.service.BuildDigest(ctx, admin.ID, &usecase.BuildDigestInput{
		DigestType: "hourly",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmailService_BuildDigest_BadDate(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	output, err := fx.service.BuildDigest(ctx, admin.ID, &usecase.BuildDigestInput{
		DigestType: string(entity.DigestTypeDaily),
		Date:       "June 1st",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDigestWindow(t *testing.T) {
	date := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	from, to := digestWindow(entity.DigestTypeDaily, date)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), to)

	from, to = digestWindow(entity.DigestTypeWeekly, date)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), to)

	from, to = digestWindow(entity.DigestTypeMonthly, date)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), to)
}
