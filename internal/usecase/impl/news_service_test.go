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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newsServiceFixtures holds all test dependencies for news service tests.
type newsServiceFixtures struct {
	service        usecase.NewsUsecase
	txManager      *mockRepo.MockTransactionManager
	newsRepo       *mockRepo.MockNewsRepository
	userRepo       *mockRepo.MockUserRepository
	articleCache   *mockSvc.MockArticleCache
	eventPublisher *mockSvc.MockEventPublisher
	objectStorage  *mockSvc.MockObjectStorage
	cfg            *config.Config
}

func createTestNewsService(t *testing.T) newsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	newsRepo := mockRepo.NewMockNewsRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	articleCache := mockSvc.NewMockArticleCache(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	objectStorage := mockSvc.NewMockObjectStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Pagination: &config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Storage:    &config.StorageConfig{MaxUploadSize: 5 << 20},
	}

	svc := NewNewsService(NewsServiceParams{
		TxManager:      txManager,
		NewsRepo:       newsRepo,
		UserRepo:       userRepo,
		ArticleCache:   articleCache,
		EventPublisher: eventPublisher,
		ObjectStorage:  objectStorage,
		Config:         cfg,
		Logger:         logger,
	})

	return newsServiceFixtures{
		service:        svc,
		txManager:      txManager,
		newsRepo:       newsRepo,
		userRepo:       userRepo,
		articleCache:   articleCache,
		eventPublisher: eventPublisher,
		objectStorage:  objectStorage,
		cfg:            cfg,
	}
}

func adminTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Email:    "editor@example.com",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
}

func testArticle() *entity.NewsArticle {
	return &entity.NewsArticle{
		ID:          uuid.New(),
		Title:       "Rate decision expected this week",
		Content:     "Full article body",
		URL:         "https://news.example.com/rates",
		Source:      "example-wire",
		Category:    entity.NewsCategoryEconomy,
		PublishedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Status:      entity.NewsStatusCrawled,
	}
}

func TestNewsService_ListArticles_CacheHit(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	article := testArticle()

	fx.articleCache.EXPECT().
		GetPage(ctx, entity.NewsCategoryEconomy).
		Return(&service.CachedArticlePage{Articles: []*entity.NewsArticle{article}, Total: 1}, nil)

	output, err := fx.service.ListArticles(ctx, &usecase.ListArticlesInput{
		Category: entity.NewsCategoryEconomy.String(),
	})

	require.NoError(t, err)
	require.Len(t, output.Articles, 1)
	assert.Equal(t, article.Title, output.Articles[0].Title)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.PageSize)
	// the cache answered; the database was never touched
	fx.newsRepo.AssertNotCalled(t, "ListArticles")
}

func TestNewsService_ListArticles_CacheMissFillsCache(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	article := testArticle()

	fx.articleCache.EXPECT().GetPage(ctx, entity.NewsCategory("")).Return(nil, nil)
	fx.newsRepo.EXPECT().
		ListArticles(ctx, mock.AnythingOfType("repository.ArticleFilter")).
		Return([]*entity.NewsArticle{article}, int64(1), nil)
	fx.articleCache.EXPECT().
		SetPage(ctx, entity.NewsCategory(""), mock.AnythingOfType("*service.CachedArticlePage")).
		Return(nil)

	output, err := fx.service.ListArticles(ctx, &usecase.ListArticlesInput{})

	require.NoError(t, err)
	require.Len(t, output.Articles, 1)
	assert.Equal(t, int64(1), output.Total)
}

func TestNewsService_ListArticles_CacheErrorFallsBack(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()

	fx.articleCache.EXPECT().
		GetPage(ctx, entity.NewsCategory("")).
		Return(nil, errors.New("connection refused"))
	fx.newsRepo.EXPECT().
		ListArticles(ctx, mock.AnythingOfType("repository.ArticleFilter")).
		Return([]*entity.NewsArticle{}, int64(0), nil)
	fx.articleCache.EXPECT().
		SetPage(ctx, entity.NewsCategory(""), mock.AnythingOfType("*service.CachedArticlePage")).
		Return(nil)

	output, err := fx.service.ListArticles(ctx, &usecase.ListArticlesInput{})

	require.NoError(t, err)
	assert.Empty(t, output.Articles)
}

func TestNewsService_ListArticles_UnknownCategory(t *testing.T) {
	fx := createTestNewsService(t)

	output, err := fx.service.ListArticles(context.Background(), &usecase.ListArticlesInput{
		Category: "weather",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewsService_ListArticles_ClampsPaging(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()

	var captured repository.ArticleFilter
	fx.newsRepo.EXPECT().
		ListArticles(ctx, mock.AnythingOfType("repository.ArticleFilter")).
		Run(func(_ context.Context, filter repository.ArticleFilter) {
			captured = filter
		}).
		Return([]*entity.NewsArticle{}, int64(0), nil)

	// an oversized page size skips the cache entirely
	output, err := fx.service.ListArticles(ctx, &usecase.ListArticlesInput{
		Page:     3,
		PageSize: 1000,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, captured.Limit)
	assert.Equal(t, 200, captured.Offset)
	assert.Equal(t, 3, output.Page)
	assert.Equal(t, 100, output.PageSize)
}

func TestNewsService_GetArticle_Success(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	article := testArticle()
	article.ViewCount = 7

	fx.newsRepo.EXPECT().FindArticleByID(ctx, article.ID).Return(article, nil)
	fx.newsRepo.EXPECT().IncrementViewCount(ctx, article.ID).Return(nil)

	output, err := fx.service.GetArticle(ctx, article.ID)

	require.NoError(t, err)
	assert.Equal(t, article.Title, output.Title)
	assert.Equal(t, article.Content, output.Content)
	assert.Equal(t, 8, output.ViewCount)
}

func TestNewsService_GetArticle_CounterFailureStillServes(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	article := testArticle()

	fx.newsRepo.EXPECT().FindArticleByID(ctx, article.ID).Return(article, nil)
	fx.newsRepo.EXPECT().
		IncrementViewCount(ctx, article.ID).
		Return(errors.New("deadlock detected"))

	output, err := fx.service.GetArticle(ctx, article.ID)

	require.NoError(t, err)
	assert.Equal(t, article.Title, output.Title)
}

func TestNewsService_GetArticle_NotFound(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.newsRepo.EXPECT().FindArticleByID(ctx, id).Return(nil, repository.ErrArticleNotFound)

	output, err := fx.service.GetArticle(ctx, id)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}

func TestNewsService_IngestArticle_Success(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.newsRepo.EXPECT().
		CreateArticle(ctx, mock.AnythingOfType("*entity.NewsArticle")).
		Run(func(_ context.Context, article *entity.NewsArticle) {
			assert.Equal(t, entity.NewsStatusCrawled, article.Status)
			article.ID = uuid.New()
		}).
		Return(nil)
	fx.articleCache.EXPECT().InvalidatePage(ctx, entity.NewsCategoryEconomy).Return(nil)

	output, err := fx.service.IngestArticle(ctx, admin.ID, &usecase.IngestArticleInput{
		Title:       "Rate decision expected this week",
		Content:     "Full article body",
		URL:         "https://news.example.com/rates",
		Source:      "example-wire",
		Category:    entity.NewsCategoryEconomy.String(),
		PublishedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.NewsCategoryEconomy.String(), output.Category)
}

func TestNewsService_IngestArticle_RequiresAdmin(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	user := activeTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.IngestArticle(ctx, user.ID, &usecase.IngestArticleInput{
		Title:    "Anything",
		Content:  "Body",
		URL:      "https://news.example.com/a",
		Source:   "example-wire",
		Category: entity.NewsCategoryEconomy.String(),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNewsService_AttachSummary_Success(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	admin := adminTestUser()
	article := testArticle()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNewsRepo := mockRepo.NewMockNewsRepository(t)

			mockFactory.EXPECT().NewNewsRepository().Return(mockNewsRepo)

			mockNewsRepo.EXPECT().FindArticleByID(ctx, article.ID).Return(article, nil)
			mockNewsRepo.EXPECT().
				CreateSummary(ctx, mock.AnythingOfType("*entity.NewsSummary")).
				Run(func(_ context.Context, summary *entity.NewsSummary) {
					summary.ID = uuid.New()
				}).
				Return(nil)
			mockNewsRepo.EXPECT().
				UpdateArticle(ctx, mock.AnythingOfType("*entity.NewsArticle")).
				Run(func(_ context.Context, updated *entity.NewsArticle) {
					assert.Equal(t, entity.NewsStatusSummarized, updated.Status)
					assert.Equal(t, "Two lines of summary.", updated.Summary)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	var published *service.ArticleSummarizedEvent
	fx.eventPublisher.EXPECT().
		PublishArticleSummarized(ctx, mock.AnythingOfType("*service.ArticleSummarizedEvent")).
		Run(func(_ context.Context, event *service.ArticleSummarizedEvent) {
			published = event
		}).
		Return(nil)
	fx.articleCache.EXPECT().InvalidatePage(ctx, entity.NewsCategoryEconomy).Return(nil)

	output, err := fx.service.AttachSummary(ctx, admin.ID, article.ID, &usecase.AttachSummaryInput{
		Content:   "Two lines of summary.",
		KeyPoints: []string{"interest rates", " inflation ", ""},
	})

	require.NoError(t, err)
	assert.Equal(t, article.ID, output.ArticleID)
	assert.Equal(t, string(entity.SummaryLengthMedium), output.SummaryType)

	require.NotNil(t, published)
	assert.Equal(t, article.ID.String(), published.ArticleID)
	assert.Equal(t, entity.NewsCategoryEconomy.String(), published.Category)
	// blank key points are dropped before publishing
	assert.Equal(t, []string{"interest rates", "inflation"}, published.KeyPoints)
}

func TestNewsService_AttachSummary_UnknownSummaryType(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	output, err := fx.service.AttachSummary(ctx, admin.ID, uuid.New(), &usecase.AttachSummaryInput{
		Content:     "Two lines of summary.",
		SummaryType: "gigantic",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewsService_GetTrendingKeywords_ClampsLimit(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	keyword := &entity.NewsKeyword{Keyword: "inflation", Frequency: 12, TrendScore: 6.5}

	fx.newsRepo.EXPECT().
		ListTrendingKeywords(ctx, 50).
		Return([]*entity.NewsKeyword{keyword}, nil)

	outputs, err := fx.service.GetTrendingKeywords(ctx, 500)

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "inflation", outputs[0].Keyword)
	assert.InDelta(t, 6.5, outputs[0].TrendScore, 1e-9)
}

func TestNewsService_GetTrendingKeywords_DefaultLimit(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	fx.newsRepo.EXPECT().ListTrendingKeywords(ctx, 10).Return([]*entity.NewsKeyword{}, nil)

	outputs, err := fx.service.GetTrendingKeywords(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestNewsService_PresignThumbnailUpload_Success(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	admin := adminTestUser()
	article := testArticle()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.newsRepo.EXPECT().FindArticleByID(ctx, article.ID).Return(article, nil)
	fx.objectStorage.EXPECT().
		PresignUpload(ctx, mock.AnythingOfType("string"), "image/png", thumbnailUploadTTL).
		Return(&service.UploadTarget{
			UploadURL: "https://bucket.s3.amazonaws.com/upload?sig=abc",
			ObjectURL: "https://bucket.s3.amazonaws.com/thumbnails/x.png",
			Key:       "thumbnails/x.png",
			ExpiresIn: thumbnailUploadTTL,
		}, nil)
	fx.newsRepo.EXPECT().
		UpdateArticle(ctx, mock.AnythingOfType("*entity.NewsArticle")).
		Run(func(_ context.Context, updated *entity.NewsArticle) {
			assert.Equal(t, "https://bucket.s3.amazonaws.com/thumbnails/x.png", updated.ThumbnailURL)
		}).
		Return(nil)
	fx.articleCache.EXPECT().InvalidatePage(ctx, entity.NewsCategoryEconomy).Return(nil)

	output, err := fx.service.PresignThumbnailUpload(ctx, admin.ID, article.ID, &usecase.PresignThumbnailInput{
		FileName: "cover.png",
		FileSize: 1 << 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/upload?sig=abc", output.UploadURL)
	assert.Equal(t, int(thumbnailUploadTTL.Seconds()), output.ExpiresIn)
}

func TestNewsService_PresignThumbnailUpload_RejectsExtension(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	output, err := fx.service.PresignThumbnailUpload(ctx, admin.ID, uuid.New(), &usecase.PresignThumbnailInput{
		FileName: "malware.exe",
		FileSize: 1024,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewsService_PresignThumbnailUpload_AcceptsConfiguredExtensions(t *testing.T) {
	fx := createTestNewsService(t)
	// Configured lists carry no leading dot, unlike filepath.Ext output.
	fx.cfg.Storage.AllowedExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

	ctx := context.Background()
	admin := adminTestUser()
	article := testArticle()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.newsRepo.EXPECT().FindArticleByID(ctx, article.ID).Return(article, nil)
	fx.objectStorage.EXPECT().
		PresignUpload(ctx, mock.AnythingOfType("string"), "image/jpeg", thumbnailUploadTTL).
		Return(&service.UploadTarget{
			UploadURL: "https://bucket.s3.amazonaws.com/upload?sig=def",
			ObjectURL: "https://bucket.s3.amazonaws.com/thumbnails/y.jpg",
			Key:       "thumbnails/y.jpg",
			ExpiresIn: thumbnailUploadTTL,
		}, nil)
	fx.newsRepo.EXPECT().UpdateArticle(ctx, mock.AnythingOfType("*entity.NewsArticle")).Return(nil)
	fx.articleCache.EXPECT().InvalidatePage(ctx, entity.NewsCategoryEconomy).Return(nil)

	output, err := fx.service.PresignThumbnailUpload(ctx, admin.ID, article.ID, &usecase.PresignThumbnailInput{
		FileName: "Cover.JPG",
		FileSize: 1 << 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/thumbnails/y.jpg", output.ThumbnailURL)
}

func TestNewsService_PresignThumbnailUpload_RejectsOversizedFile(t *testing.T) {
	fx := createTestNewsService(t)

	ctx := context.Background()
	admin := adminTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	output, err := fx.service.PresignThumbnailUpload(ctx, admin.ID, uuid.New(), &usecase.PresignThumbnailInput{
		FileName: "cover.png",
		FileSize: fx.cfg.Storage.MaxUploadSize + 1,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
