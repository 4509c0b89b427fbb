package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// NewsArticleModel mirrors the 'news_articles' table. Tags live in a native
// text[] column, matching what the crawler writes.
type NewsArticleModel struct {
	baseColumns
	Title           string         `gorm:"type:varchar(500);not null"`
	Content         string         `gorm:"type:text;not null"`
	Summary         string         `gorm:"type:text"`
	URL             string         `gorm:"type:varchar(1000);uniqueIndex;not null"`
	Source          string         `gorm:"type:varchar(100);not null"`
	Author          string         `gorm:"type:varchar(100)"`
	Category        string         `gorm:"type:varchar(50);not null;index"`
	Tags            pq.StringArray `gorm:"type:text[]"`
	PublishedAt     time.Time      `gorm:"not null;index"`
	CrawledAt       time.Time      `gorm:"not null"`
	Status          string         `gorm:"type:varchar(20);not null;default:crawled;index"`
	Sentiment       string         `gorm:"type:varchar(20)"`
	SentimentScore  *float64
	ImportanceScore float64 `gorm:"not null;default:0"`
	ViewCount       int     `gorm:"not null;default:0"`
	ShareCount      int     `gorm:"not null;default:0"`
	ThumbnailURL    string  `gorm:"type:varchar(1000)"`

	Summaries []NewsSummaryModel `gorm:"foreignKey:ArticleID"`
}

// TableName explicitly sets the table name for GORM.
func (NewsArticleModel) TableName() string {
	return "news_articles"
}

// NewsSummaryModel mirrors the 'news_summaries' table. ArticleID references news_articles.id (UUID).
type NewsSummaryModel struct {
	baseColumns
	ArticleID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title           string         `gorm:"type:varchar(500);not null"`
	Content         string         `gorm:"type:text;not null"`
	KeyPoints       pq.StringArray `gorm:"type:text[]"`
	SummaryType     string         `gorm:"type:varchar(20);not null;default:medium"`
	ModelName       string         `gorm:"type:varchar(100)"`
	ModelVersion    string         `gorm:"type:varchar(50)"`
	ConfidenceScore *float64
	Language        string `gorm:"type:varchar(10);not null;default:ko"`
}

// TableName explicitly sets the table name for GORM.
func (NewsSummaryModel) TableName() string {
	return "news_summaries"
}

// NewsKeywordModel mirrors the 'news_keywords' table. Per-category counts are
// kept as a JSONB document keyed by category name.
type NewsKeywordModel struct {
	baseColumns
	Keyword           string                             `gorm:"type:varchar(100);uniqueIndex;not null"`
	Frequency         int                                `gorm:"not null;default:1"`
	CategoryFrequency datatypes.JSONType[map[string]int] `gorm:"type:jsonb"`
	IsTrending        bool                               `gorm:"not null;default:false;index"`
	TrendScore        float64                            `gorm:"not null;default:0"`
	LastSeen          time.Time                          `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NewsKeywordModel) TableName() string {
	return "news_keywords"
}
