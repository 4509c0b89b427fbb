package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"newsbite/config"
	"newsbite/internal/domain/entity"
	"newsbite/internal/domain/service"
	"newsbite/internal/errors"
)

const (
	articleCacheKeyPrefix = "news:articles:"
	defaultArticleTTL     = time.Hour
)

// articleCache implements the domain service.ArticleCache interface on Redis.
// Pages are stored as JSON under one key per category, so invalidation is a
// plain DEL of at most two keys.
type articleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewArticleCache is the constructor for articleCache.
func NewArticleCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.ArticleCache {
	ttl := defaultArticleTTL
	if cfg.Redis != nil && cfg.Redis.TTL > 0 {
		ttl = cfg.Redis.TTL
	}

	return &articleCache{client: client, ttl: ttl, logger: logger}
}

// GetPage retrieves the cached first page for a category.
func (c *articleCache) GetPage(ctx context.Context, category entity.NewsCategory) (*service.CachedArticlePage, error) {
	payload, err := c.client.Get(ctx, articleCacheKey(category)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read article page from cache")
	}

	var page service.CachedArticlePage
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached article page")
	}

	return &page, nil
}

// SetPage stores the first page for a category.
func (c *articleCache) SetPage(ctx context.Context, category entity.NewsCategory, page *service.CachedArticlePage) error {
	payload, err := json.Marshal(page)
	if err != nil {
		return errors.Wrap(err, "failed to encode article page for cache")
	}

	if err := c.client.Set(ctx, articleCacheKey(category), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write article page to cache")
	}

	return nil
}

// InvalidatePage drops the category's page and the unfiltered one.
func (c *articleCache) InvalidatePage(ctx context.Context, category entity.NewsCategory) error {
	keys := []string{articleCacheKey("")}
	if category != "" {
		keys = append(keys, articleCacheKey(category))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate article page cache")
	}

	c.logger.Debug("article page cache invalidated", slog.String("category", category.String()))

	return nil
}

// articleCacheKey addresses one category's cached page. The empty category is
// the unfiltered listing.
func articleCacheKey(category entity.NewsCategory) string {
	if category == "" {
		return articleCacheKeyPrefix + "all"
	}

	return articleCacheKeyPrefix + category.String()
}
