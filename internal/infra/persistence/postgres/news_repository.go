// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"newsbite/internal/domain/entity"
	domainerrors "newsbite/internal/domain/errors"
	"newsbite/internal/domain/repository"
	"newsbite/internal/errors"
	"newsbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// newsRepository implements the domain repository.NewsRepository interface using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

// CreateArticle persists a newly ingested article.
func (repo *newsRepository) CreateArticle(ctx context.Context, article *entity.NewsArticle) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrArticleAlreadyExists.WrapMessage("article url already stored")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required article information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// FindArticleByID retrieves an article by its unique ID, preloading its summaries.
func (repo *newsRepository) FindArticleByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	var articleM model.NewsArticleModel
	err := repo.db.WithContext(ctx).
		Preload("Summaries").
		Where("id = ?", id).
		First(&articleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by id")
	}

	return toArticleDomain(&articleM), nil
}

// FindArticleByURL retrieves an article by its canonical source URL.
func (repo *newsRepository) FindArticleByURL(ctx context.Context, url string) (*entity.NewsArticle, error) {
	var articleM model.NewsArticleModel
	err := repo.db.WithContext(ctx).
		Where("url = ?", url).
		First(&articleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by url")
	}

	return toArticleDomain(&articleM), nil
}

// ListArticles retrieves a page of articles matching the filter, newest
// published first, along with the total number of matches.
func (repo *newsRepository) ListArticles(ctx context.Context, filter repository.ArticleFilter) ([]*entity.NewsArticle, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.NewsArticleModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count articles")
	}

	var articleModels []*model.NewsArticleModel
	err := query.
		Order("published_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&articleModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list articles")
	}

	articles := make([]*entity.NewsArticle, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles, total, nil
}

// UpdateArticle modifies an existing article record. Summaries are persisted
// through CreateSummary, so associations are omitted.
func (repo *newsRepository) UpdateArticle(ctx context.Context, article *entity.NewsArticle) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Omit("Summaries").Save(articleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrArticleAlreadyExists.WrapMessage("article url already stored")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update article")
	}

	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// IncrementViewCount atomically bumps the view counter of an article.
func (repo *newsRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NewsArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment view count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// FindDigestArticles retrieves up to limit digest-ready articles published
// inside [from, to), most important first.
func (repo *newsRepository) FindDigestArticles(ctx context.Context, from, to time.Time, limit int) ([]*entity.NewsArticle, error) {
	var articleModels []*model.NewsArticleModel
	err := repo.db.WithContext(ctx).
		Where("status IN ?", []string{entity.NewsStatusSummarized.String(), entity.NewsStatusPublished.String()}).
		Where("published_at >= ? AND published_at < ?", from, to).
		Order("importance_score DESC, published_at DESC").
		Limit(limit).
		Find(&articleModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find digest articles")
	}

	articles := make([]*entity.NewsArticle, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles, nil
}

// CreateSummary persists a generated summary for an article.
func (repo *newsRepository) CreateSummary(ctx context.Context, summary *entity.NewsSummary) error {
	summaryM := fromSummaryDomain(summary)

	if err := repo.db.WithContext(ctx).Create(summaryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrArticleNotFound.WrapMessage("article no longer exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required summary information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create summary")
	}

	summary.ID = summaryM.ID
	summary.CreatedAt = summaryM.CreatedAt
	summary.UpdatedAt = summaryM.UpdatedAt

	return nil
}

// FindSummariesByArticleID retrieves all summaries generated for an article,
// newest first.
func (repo *newsRepository) FindSummariesByArticleID(ctx context.Context, articleID uuid.UUID) ([]*entity.NewsSummary, error) {
	var summaryModels []*model.NewsSummaryModel
	err := repo.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&summaryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find summaries by article id")
	}

	summaries := make([]*entity.NewsSummary, 0, len(summaryModels))
	for _, summaryM := range summaryModels {
		summaries = append(summaries, toSummaryDomain(summaryM))
	}

	return summaries, nil
}

// FindKeywordByText retrieves a keyword record by its text.
func (repo *newsRepository) FindKeywordByText(ctx context.Context, keyword string) (*entity.NewsKeyword, error) {
	var keywordM model.NewsKeywordModel
	err := repo.db.WithContext(ctx).
		Where("keyword = ?", keyword).
		First(&keywordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeywordNotFound
		}

		return nil, errors.Wrap(err, "failed to find keyword")
	}

	return toKeywordDomain(&keywordM), nil
}

// SaveKeyword creates the keyword record or replaces an existing one with the
// same text.
func (repo *newsRepository) SaveKeyword(ctx context.Context, keyword *entity.NewsKeyword) error {
	keywordM := fromKeywordDomain(keyword)

	if err := repo.db.WithContext(ctx).Save(keywordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("keyword already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save keyword")
	}

	keyword.ID = keywordM.ID
	keyword.CreatedAt = keywordM.CreatedAt
	keyword.UpdatedAt = keywordM.UpdatedAt

	return nil
}

// ListTrendingKeywords retrieves up to limit trending keywords ordered by
// descending trend score.
func (repo *newsRepository) ListTrendingKeywords(ctx context.Context, limit int) ([]*entity.NewsKeyword, error) {
	var keywordModels []*model.NewsKeywordModel
	err := repo.db.WithContext(ctx).
		Where("is_trending = ?", true).
		Order("trend_score DESC").
		Limit(limit).
		Find(&keywordModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending keywords")
	}

	keywords := make([]*entity.NewsKeyword, 0, len(keywordModels))
	for _, keywordM := range keywordModels {
		keywords = append(keywords, toKeywordDomain(keywordM))
	}

	return keywords, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toArticleDomain converts a GORM NewsArticleModel to a domain NewsArticle entity.
func toArticleDomain(data *model.NewsArticleModel) *entity.NewsArticle {
	if data == nil {
		return nil
	}

	summaries := make([]entity.NewsSummary, 0, len(data.Summaries))
	for i := range data.Summaries {
		summaries = append(summaries, *toSummaryDomain(&data.Summaries[i]))
	}

	return &entity.NewsArticle{
		ID:              data.ID,
		Title:           data.Title,
		Content:         data.Content,
		Summary:         data.Summary,
		URL:             data.URL,
		Source:          data.Source,
		Author:          data.Author,
		Category:        entity.NewsCategory(data.Category),
		Tags:            []string(data.Tags),
		PublishedAt:     data.PublishedAt,
		CrawledAt:       data.CrawledAt,
		Status:          entity.NewsStatus(data.Status),
		Sentiment:       entity.SentimentType(data.Sentiment),
		SentimentScore:  data.SentimentScore,
		ImportanceScore: data.ImportanceScore,
		ViewCount:       data.ViewCount,
		ShareCount:      data.ShareCount,
		ThumbnailURL:    data.ThumbnailURL,
		Summaries:       summaries,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromArticleDomain converts a domain NewsArticle entity to a GORM NewsArticleModel.
func fromArticleDomain(data *entity.NewsArticle) *model.NewsArticleModel {
	if data == nil {
		return nil
	}

	articleM := &model.NewsArticleModel{
		Title:           data.Title,
		Content:         data.Content,
		Summary:         data.Summary,
		URL:             data.URL,
		Source:          data.Source,
		Author:          data.Author,
		Category:        data.Category.String(),
		Tags:            pq.StringArray(data.Tags),
		PublishedAt:     data.PublishedAt,
		CrawledAt:       data.CrawledAt,
		Status:          data.Status.String(),
		Sentiment:       data.Sentiment.String(),
		SentimentScore:  data.SentimentScore,
		ImportanceScore: data.ImportanceScore,
		ViewCount:       data.ViewCount,
		ShareCount:      data.ShareCount,
		ThumbnailURL:    data.ThumbnailURL,
	}
	articleM.ID = data.ID
	articleM.CreatedAt = data.CreatedAt
	articleM.UpdatedAt = data.UpdatedAt

	return articleM
}

// toSummaryDomain converts a GORM NewsSummaryModel to a domain NewsSummary entity.
func toSummaryDomain(data *model.NewsSummaryModel) *entity.NewsSummary {
	if data == nil {
		return nil
	}

	return &entity.NewsSummary{
		ID:              data.ID,
		ArticleID:       data.ArticleID,
		Title:           data.Title,
		Content:         data.Content,
		KeyPoints:       []string(data.KeyPoints),
		SummaryType:     entity.SummaryLength(data.SummaryType),
		ModelName:       data.ModelName,
		ModelVersion:    data.ModelVersion,
		ConfidenceScore: data.ConfidenceScore,
		Language:        data.Language,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSummaryDomain converts a domain NewsSummary entity to a GORM NewsSummaryModel.
func fromSummaryDomain(data *entity.NewsSummary) *model.NewsSummaryModel {
	if data == nil {
		return nil
	}

	summaryM := &model.NewsSummaryModel{
		ArticleID:       data.ArticleID,
		Title:           data.Title,
		Content:         data.Content,
		KeyPoints:       pq.StringArray(data.KeyPoints),
		SummaryType:     data.SummaryType.String(),
		ModelName:       data.ModelName,
		ModelVersion:    data.ModelVersion,
		ConfidenceScore: data.ConfidenceScore,
		Language:        data.Language,
	}
	summaryM.ID = data.ID
	summaryM.CreatedAt = data.CreatedAt
	summaryM.UpdatedAt = data.UpdatedAt

	return summaryM
}

// toKeywordDomain converts a GORM NewsKeywordModel to a domain NewsKeyword entity.
func toKeywordDomain(data *model.NewsKeywordModel) *entity.NewsKeyword {
	if data == nil {
		return nil
	}

	raw := data.CategoryFrequency.Data()
	categoryFrequency := make(map[entity.NewsCategory]int, len(raw))
	for category, count := range raw {
		categoryFrequency[entity.NewsCategory(category)] = count
	}

	return &entity.NewsKeyword{
		ID:                data.ID,
		Keyword:           data.Keyword,
		Frequency:         data.Frequency,
		CategoryFrequency: categoryFrequency,
		IsTrending:        data.IsTrending,
		TrendScore:        data.TrendScore,
		LastSeen:          data.LastSeen,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromKeywordDomain converts a domain NewsKeyword entity to a GORM NewsKeywordModel.
func fromKeywordDomain(data *entity.NewsKeyword) *model.NewsKeywordModel {
	if data == nil {
		return nil
	}

	categoryFrequency := make(map[string]int, len(data.CategoryFrequency))
	for category, count := range data.CategoryFrequency {
		categoryFrequency[category.String()] = count
	}

	keywordM := &model.NewsKeywordModel{
		Keyword:           data.Keyword,
		Frequency:         data.Frequency,
		CategoryFrequency: datatypes.NewJSONType(categoryFrequency),
		IsTrending:        data.IsTrending,
		TrendScore:        data.TrendScore,
		LastSeen:          data.LastSeen,
	}
	keywordM.ID = data.ID
	keywordM.CreatedAt = data.CreatedAt
	keywordM.UpdatedAt = data.UpdatedAt

	return keywordM
}
