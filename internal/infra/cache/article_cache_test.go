package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsbite/internal/domain/entity"
)

func TestArticleCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		category entity.NewsCategory
		want     string
	}{
		{name: "unfiltered listing", category: "", want: "news:articles:all"},
		{name: "politics", category: entity.NewsCategoryPolitics, want: "news:articles:politics"},
		{name: "it", category: entity.NewsCategoryIT, want: "news:articles:it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, articleCacheKey(tt.category))
		})
	}
}
