// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"newsbite/internal/domain/entity"
	"newsbite/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for news persistence.
var (
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("news article not found")
	// ErrSummaryNotFound is returned when a summary is not found.
	ErrSummaryNotFound = errors.New("news summary not found")
	// ErrKeywordNotFound is returned when a keyword is not found.
	ErrKeywordNotFound = errors.New("news keyword not found")
)

// ArticleFilter narrows down article listings. Zero values mean "no filter".
type ArticleFilter struct {
	Category entity.NewsCategory // Only articles in this category.
	Status   entity.NewsStatus   // Only articles in this pipeline state.
	Source   string              // Only articles from this outlet.
	Limit    int                 // Maximum number of rows to return.
	Offset   int                 // Number of rows to skip.
}

// NewsRepository defines the interface for article, summary and keyword persistence.
type NewsRepository interface {
	// CreateArticle persists a newly ingested article.
	CreateArticle(ctx context.Context, article *entity.NewsArticle) error

	// FindArticleByID retrieves an article by its unique ID.
	FindArticleByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error)

	// FindArticleByURL retrieves an article by its canonical source URL.
	// Used to keep ingestion idempotent.
	FindArticleByURL(ctx context.Context, url string) (*entity.NewsArticle, error)

	// ListArticles retrieves a page of articles matching the filter, newest
	// published first, along with the total number of matches.
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*entity.NewsArticle, int64, error)

	// UpdateArticle modifies an existing article record.
	UpdateArticle(ctx context.Context, article *entity.NewsArticle) error

	// IncrementViewCount atomically bumps the view counter of an article.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// FindDigestArticles retrieves up to limit digest-ready articles published
	// inside [from, to), most important first.
	FindDigestArticles(ctx context.Context, from, to time.Time, limit int) ([]*entity.NewsArticle, error)

	// CreateSummary persists a generated summary for an article.
	CreateSummary(ctx context.Context, summary *entity.NewsSummary) error

	// FindSummariesByArticleID retrieves all summaries generated for an article.
	FindSummariesByArticleID(ctx context.Context, articleID uuid.UUID) ([]*entity.NewsSummary, error)

	// FindKeywordByText retrieves a keyword record by its text.
	FindKeywordByText(ctx context.Context, keyword string) (*entity.NewsKeyword, error)

	// SaveKeyword creates the keyword record or replaces an existing one with
	// the same text.
	SaveKeyword(ctx context.Context, keyword *entity.NewsKeyword) error

	// ListTrendingKeywords retrieves up to limit trending keywords ordered by
	// descending trend score.
	ListTrendingKeywords(ctx context.Context, limit int) ([]*entity.NewsKeyword, error)
}
