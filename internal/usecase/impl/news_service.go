package impl

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"newsbite/config"
	deliverycontext "newsbite/internal/delivery/context"
	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"
	"newsbite/internal/usecase"
	"newsbite/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTrendingLimit = 10
	maxTrendingLimit     = 50

	thumbnailUploadTTL = 15 * time.Minute
)

// defaultThumbnailExtensions applies when the storage config lists none.
var defaultThumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// newsService implements the NewsUsecase interface.
type newsService struct {
	txManager      repository.TransactionManager
	newsRepo       repository.NewsRepository
	userRepo       repository.UserRepository
	articleCache   service.ArticleCache
	eventPublisher service.EventPublisher
	objectStorage  service.ObjectStorage
	cfg            *config.Config
	logger         *slog.Logger
}

// NewsServiceParams holds dependencies for NewsService, injected by Fx.
type NewsServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	NewsRepo       repository.NewsRepository
	UserRepo       repository.UserRepository
	ArticleCache   service.ArticleCache
	EventPublisher service.EventPublisher
	ObjectStorage  service.ObjectStorage
	Config         *config.Config
	Logger         *slog.Logger
}

// NewNewsService is the constructor for newsService. It receives all dependencies as interfaces.
func NewNewsService(params NewsServiceParams) usecase.NewsUsecase {
	return &newsService{
		txManager:      params.TxManager,
		newsRepo:       params.NewsRepo,
		userRepo:       params.UserRepo,
		articleCache:   params.ArticleCache,
		eventPublisher: params.EventPublisher,
		objectStorage:  params.ObjectStorage,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListArticles returns one page of articles matching the filter. The first
// default-sized page per category is served from the cache when possible; any
// cache trouble falls back to the database.
func (srv *newsService) ListArticles(ctx context.Context, input *usecase.ListArticlesInput) (*usecase.ArticleListOutput, error) {
	filter, page, err := srv.buildArticleFilter(input)
	if err != nil {
		return nil, err
	}

	category := entity.NewsCategory(input.Category)

	cacheable := page == 1 &&
		filter.Limit == srv.cfg.Pagination.DefaultPageSize &&
		filter.Status == "" && filter.Source == ""

	if cacheable {
		if cached := srv.cachedArticlePage(ctx, category); cached != nil {
			return buildArticleListOutput(cached.Articles, cached.Total, page, filter.Limit), nil
		}
	}

	articles, total, err := srv.newsRepo.ListArticles(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	if cacheable {
		pageToCache := &service.CachedArticlePage{Articles: articles, Total: total}
		if err := srv.articleCache.SetPage(ctx, category, pageToCache); err != nil {
			srv.log(ctx).Warn("Failed to cache article page", slog.String("category", input.Category), slog.Any("error", err))
		}
	}

	return buildArticleListOutput(articles, total, page, filter.Limit), nil
}

// cachedArticlePage reads the cache and treats every failure as a miss. The
// cache is advisory; the database stays the source of truth.
func (srv *newsService) cachedArticlePage(ctx context.Context, category entity.NewsCategory) *service.CachedArticlePage {
	cached, err := srv.articleCache.GetPage(ctx, category)
	if err != nil {
		srv.log(ctx).Warn("Failed to read article page cache", slog.String("category", category.String()), slog.Any("error", err))

		return nil
	}

	return cached
}

// buildArticleFilter validates the listing input and clamps its paging to the
// configured bounds. It returns the filter and the resolved page number.
func (srv *newsService) buildArticleFilter(input *usecase.ListArticlesInput) (repository.ArticleFilter, int, error) {
	var filter repository.ArticleFilter

	if input.Category != "" {
		category := entity.NewsCategory(input.Category)
		if !category.IsValid() {
			return filter, 0, domainerrors.ErrValidationFailed.WrapMessage("unknown news category: " + input.Category)
		}
		filter.Category = category
	}
	if input.Status != "" {
		status := entity.NewsStatus(input.Status)
		if !status.IsValid() {
			return filter, 0, domainerrors.ErrValidationFailed.WrapMessage("unknown article status: " + input.Status)
		}
		filter.Status = status
	}
	filter.Source = input.Source

	page, pageSize := clampPaging(srv.cfg, input.Page, input.PageSize)
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	return filter, page, nil
}

// clampPaging resolves the requested paging against the configured bounds.
func clampPaging(cfg *config.Config, page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = cfg.Pagination.DefaultPageSize
	}
	if pageSize > cfg.Pagination.MaxPageSize {
		pageSize = cfg.Pagination.MaxPageSize
	}

	return page, pageSize
}

func buildArticleListOutput(articles []*entity.NewsArticle, total int64, page, pageSize int) *usecase.ArticleListOutput {
	items := make([]*usecase.ArticleOutput, 0, len(articles))
	for _, article := range articles {
		items = append(items, usecase.NewArticleListItemOutput(article))
	}

	return &usecase.ArticleListOutput{
		Articles: items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// GetArticle returns the article detail and bumps its view counter. A failed
// bump is logged but never hides the article.
func (srv *newsService) GetArticle(ctx context.Context, id uuid.UUID) (*usecase.ArticleOutput, error) {
	article, err := srv.newsRepo.FindArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArticleNotFound, "article not found")
		}

		return nil, errors.Wrap(err, "failed to load article")
	}

	if err := srv.newsRepo.IncrementViewCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to increment view count", slog.Any("articleID", id), slog.Any("error", err))
	} else {
		article.ViewCount++
	}

	return usecase.NewArticleOutput(article), nil
}

// IngestArticle stores a crawled article. Admin only.
func (srv *newsService) IngestArticle(ctx context.Context, adminID uuid.UUID, input *usecase.IngestArticleInput) (*usecase.ArticleOutput, error) {
	if err := requireAdmin(ctx, srv.userRepo, adminID); err != nil {
		return nil, err
	}

	category := entity.NewsCategory(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown news category: " + input.Category)
	}

	article := &entity.NewsArticle{
		Title:           input.Title,
		Content:         input.Content,
		URL:             input.URL,
		Source:          input.Source,
		Author:          input.Author,
		Category:        category,
		Tags:            input.Tags,
		PublishedAt:     input.PublishedAt,
		CrawledAt:       time.Now(),
		Status:          entity.NewsStatusCrawled,
		ImportanceScore: input.ImportanceScore,
	}

	// The unique index on url keeps ingestion idempotent; a duplicate comes
	// back as a conflict from the repository.
	if err := srv.newsRepo.CreateArticle(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to ingest article")
	}

	srv.invalidateArticlePages(ctx, category)

	srv.log(ctx).Info("Article ingested", slog.Any("articleID", article.ID), slog.String("category", category.String()))

	return usecase.NewArticleOutput(article), nil
}

// AttachSummary stores a generated summary, marks the article summarized and
// announces the result on the event bus. Admin only.
func (srv *newsService) AttachSummary(ctx context.Context, adminID, articleID uuid.UUID, input *usecase.AttachSummaryInput) (*usecase.SummaryOutput, error) {
	if err := requireAdmin(ctx, srv.userRepo, adminID); err != nil {
		return nil, err
	}

	summary, err := buildSummaryEntity(articleID, input)
	if err != nil {
		return nil, err
	}

	var category entity.NewsCategory
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newsRepo := repoFactory.NewNewsRepository()

		article, err := newsRepo.FindArticleByID(ctx, articleID)
		if err != nil {
			if errors.Is(err, repository.ErrArticleNotFound) {
				return errors.Wrap(domainerrors.ErrArticleNotFound, "article not found")
			}

			return errors.Wrap(err, "failed to load article for summary")
		}

		if err := newsRepo.CreateSummary(ctx, summary); err != nil {
			return errors.Wrap(err, "failed to create summary")
		}

		article.Summary = summary.Content
		article.Status = entity.NewsStatusSummarized
		if err := newsRepo.UpdateArticle(ctx, article); err != nil {
			return errors.Wrap(err, "failed to mark article summarized")
		}

		category = article.Category

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute summary transaction", slog.Any("articleID", articleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute summary transaction")
	}

	srv.publishArticleSummarized(ctx, summary, category)
	srv.invalidateArticlePages(ctx, category)

	srv.log(ctx).Info("Summary attached", slog.Any("articleID", articleID), slog.Any("summaryID", summary.ID))

	return usecase.NewSummaryOutput(summary), nil
}

// publishArticleSummarized hands the event to the bus. Publishing is fire and
// forget; the summary is already committed.
func (srv *newsService) publishArticleSummarized(ctx context.Context, summary *entity.NewsSummary, category entity.NewsCategory) {
	event := &service.ArticleSummarizedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ArticleID: summary.ArticleID.String(),
		Category:  category.String(),
		KeyPoints: summary.KeyPoints,
	}
	if err := srv.eventPublisher.PublishArticleSummarized(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish article summarized event", slog.Any("articleID", summary.ArticleID), slog.Any("error", err))
	}
}

// GetTrendingKeywords returns up to limit keywords ordered by trend score.
func (srv *newsService) GetTrendingKeywords(ctx context.Context, limit int) ([]*usecase.KeywordOutput, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	if limit > maxTrendingLimit {
		limit = maxTrendingLimit
	}

	keywords, err := srv.newsRepo.ListTrendingKeywords(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending keywords")
	}

	outputs := make([]*usecase.KeywordOutput, 0, len(keywords))
	for _, keyword := range keywords {
		outputs = append(outputs, usecase.NewKeywordOutput(keyword))
	}

	return outputs, nil
}

// PresignThumbnailUpload returns a presigned URL for uploading an article
// thumbnail and records the object URL on the article. Admin only.
func (srv *newsService) PresignThumbnailUpload(ctx context.Context, adminID, articleID uuid.UUID, input *usecase.PresignThumbnailInput) (*usecase.ThumbnailUploadOutput, error) {
	if err := requireAdmin(ctx, srv.userRepo, adminID); err != nil {
		return nil, err
	}

	if srv.objectStorage == nil {
		return nil, domainerrors.ErrExternalService.WrapMessage("object storage is not configured")
	}

	ext, err := srv.checkThumbnailFile(input)
	if err != nil {
		return nil, err
	}

	article, err := srv.newsRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrArticleNotFound, "article not found")
		}

		return nil, errors.Wrap(err, "failed to load article for thumbnail upload")
	}

	key := fmt.Sprintf("thumbnails/%s/%s%s", time.Now().UTC().Format("2006/01/02"), uuid.NewString(), ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	target, err := srv.objectStorage.PresignUpload(ctx, key, contentType, thumbnailUploadTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to presign thumbnail upload", slog.Any("articleID", articleID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrExternalService, "failed to presign thumbnail upload")
	}

	// Record the object URL right away; the client uploads directly to the
	// store and the URL only resolves once that PUT lands.
	article.ThumbnailURL = target.ObjectURL
	if err := srv.newsRepo.UpdateArticle(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to record thumbnail url")
	}

	srv.invalidateArticlePages(ctx, article.Category)

	return &usecase.ThumbnailUploadOutput{
		UploadURL:    target.UploadURL,
		ThumbnailURL: target.ObjectURL,
		Key:          target.Key,
		ExpiresIn:    int(target.ExpiresIn.Seconds()),
	}, nil
}

// checkThumbnailFile validates the announced file name and size against the
// storage limits and returns the lowercased extension.
func (srv *newsService) checkThumbnailFile(input *usecase.PresignThumbnailInput) (string, error) {
	ext := strings.ToLower(filepath.Ext(input.FileName))
	if ext == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("file name has no extension")
	}

	allowed := defaultThumbnailExtensions
	if srv.cfg.Storage != nil && len(srv.cfg.Storage.AllowedExtensions) > 0 {
		allowed = srv.cfg.Storage.AllowedExtensions
	}
	// Config lists extensions without the dot; normalize both sides.
	permitted := false
	for _, candidate := range allowed {
		if strings.EqualFold(strings.TrimPrefix(candidate, "."), strings.TrimPrefix(ext, ".")) {
			permitted = true

			break
		}
	}
	if !permitted {
		return "", domainerrors.ErrValidationFailed.
			WithDetails("allowed extensions: " + strings.Join(allowed, ", ")).
			WrapMessage("file type not allowed: " + ext)
	}

	if srv.cfg.Storage != nil && srv.cfg.Storage.MaxUploadSize > 0 && input.FileSize > srv.cfg.Storage.MaxUploadSize {
		return "", domainerrors.ErrValidationFailed.
			WithDetails("maximum upload size is " + util.FormatBytes(srv.cfg.Storage.MaxUploadSize)).
			WrapMessage("file too large")
	}

	return ext, nil
}

// invalidateArticlePages drops the cached listing pages touched by a content
// change. Failures are logged; the entries expire on their own.
func (srv *newsService) invalidateArticlePages(ctx context.Context, category entity.NewsCategory) {
	if err := srv.articleCache.InvalidatePage(ctx, category); err != nil {
		srv.log(ctx).Warn("Failed to invalidate article page cache", slog.String("category", category.String()), slog.Any("error", err))
	}
}

// requireAdmin loads the acting user and rejects everyone without the admin
// role. A principal that no longer exists is rejected the same way.
func requireAdmin(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) error {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrForbidden, "acting account no longer exists")
		}

		return errors.Wrap(err, "failed to load acting user")
	}

	if !user.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "admin role required")
	}

	return nil
}

func buildSummaryEntity(articleID uuid.UUID, input *usecase.AttachSummaryInput) (*entity.NewsSummary, error) {
	summaryType := entity.SummaryLengthMedium
	if input.SummaryType != "" {
		summaryType = entity.SummaryLength(input.SummaryType)
		if !summaryType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown summary length: " + input.SummaryType)
		}
	}

	language := input.Language
	if language == "" {
		language = defaultLanguage
	}

	keyPoints := make([]string, 0, len(input.KeyPoints))
	for _, point := range input.KeyPoints {
		point = strings.TrimSpace(point)
		if point == "" {
			continue
		}
		keyPoints = append(keyPoints, point)
	}

	return &entity.NewsSummary{
		ArticleID:       articleID,
		Title:           input.Title,
		Content:         input.Content,
		KeyPoints:       keyPoints,
		SummaryType:     summaryType,
		ModelName:       input.ModelName,
		ModelVersion:    input.ModelVersion,
		ConfidenceScore: input.ConfidenceScore,
		Language:        language,
	}, nil
}
