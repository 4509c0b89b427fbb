package service

import (
	"context"

	"newsbite/internal/domain/entity"
)

// CachedArticlePage is the cached form of the default first article page for
// one category, together with the total match count it was served with.
type CachedArticlePage struct {
	Articles []*entity.NewsArticle `json:"articles"`
	Total    int64                 `json:"total"`
}

// ArticleCache defines the interface for the short-lived article list cache.
// Only the unfiltered default first page per category is cached; everything
// else goes straight to the database.
type ArticleCache interface {
	// GetPage retrieves the cached first page for a category. An empty
	// category addresses the unfiltered listing. A nil page with a nil error
	// is a cache miss.
	GetPage(ctx context.Context, category entity.NewsCategory) (*CachedArticlePage, error)

	// SetPage stores the first page for a category.
	SetPage(ctx context.Context, category entity.NewsCategory, page *CachedArticlePage) error

	// InvalidatePage drops the cached pages an article in the given category
	// can appear on, i.e. that category's page and the unfiltered one.
	InvalidatePage(ctx context.Context, category entity.NewsCategory) error
}
