// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsCategory represents the editorial category of a news article.
type NewsCategory string

const (
	// NewsCategoryPolitics covers government, elections and policy.
	NewsCategoryPolitics NewsCategory = "politics"
	// NewsCategoryEconomy covers markets, finance and business.
	NewsCategoryEconomy NewsCategory = "economy"
	// NewsCategorySociety covers domestic social affairs.
	NewsCategorySociety NewsCategory = "society"
	// NewsCategoryCulture covers arts and culture.
	NewsCategoryCulture NewsCategory = "culture"
	// NewsCategoryInternational covers world news.
	NewsCategoryInternational NewsCategory = "international"
	// NewsCategorySports covers sports news.
	NewsCategorySports NewsCategory = "sports"
	// NewsCategoryEntertainment covers celebrity and entertainment news.
	NewsCategoryEntertainment NewsCategory = "entertainment"
	// NewsCategoryIT covers technology and science.
	NewsCategoryIT NewsCategory = "it"
	// NewsCategoryHealth covers health and medicine.
	NewsCategoryHealth NewsCategory = "health"
	// NewsCategoryEducation covers schools and education policy.
	NewsCategoryEducation NewsCategory = "education"
)

// String returns the string representation of the NewsCategory.
func (c NewsCategory) String() string {
	return string(c)
}

// IsValid checks if the NewsCategory is a valid value.
func (c NewsCategory) IsValid() bool {
	switch c {
	case NewsCategoryPolitics, NewsCategoryEconomy, NewsCategorySociety,
		NewsCategoryCulture, NewsCategoryInternational, NewsCategorySports,
		NewsCategoryEntertainment, NewsCategoryIT, NewsCategoryHealth,
		NewsCategoryEducation:
		return true
	default:
		return false
	}
}

// NewsStatus represents where an article is in the ingestion pipeline.
type NewsStatus string

const (
	// NewsStatusCrawled means the raw article has been stored.
	NewsStatusCrawled NewsStatus = "crawled"
	// NewsStatusProcessing means summarization is in progress.
	NewsStatusProcessing NewsStatus = "processing"
	// NewsStatusSummarized means at least one summary has been generated.
	NewsStatusSummarized NewsStatus = "summarized"
	// NewsStatusFailed means summarization failed.
	NewsStatusFailed NewsStatus = "failed"
	// NewsStatusPublished means the article went out in a digest.
	NewsStatusPublished NewsStatus = "published"
)

// String returns the string representation of the NewsStatus.
func (s NewsStatus) String() string {
	return string(s)
}

// IsValid checks if the NewsStatus is a valid value.
func (s NewsStatus) IsValid() bool {
	switch s {
	case NewsStatusCrawled, NewsStatusProcessing, NewsStatusSummarized,
		NewsStatusFailed, NewsStatusPublished:
		return true
	default:
		return false
	}
}

// SentimentType represents the result of sentiment analysis on an article.
type SentimentType string

const (
	// SentimentPositive marks articles with an overall positive tone.
	SentimentPositive SentimentType = "positive"
	// SentimentNegative marks articles with an overall negative tone.
	SentimentNegative SentimentType = "negative"
	// SentimentNeutral marks articles without a clear tone.
	SentimentNeutral SentimentType = "neutral"
)

// String returns the string representation of the SentimentType.
func (s SentimentType) String() string {
	return string(s)
}

// IsValid checks if the SentimentType is a valid value.
func (s SentimentType) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

// NewsArticle is a crawled news article together with its processing state
// and the analysis results accumulated by the pipeline.
type NewsArticle struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the article.
	Title           string        // The article headline.
	Content         string        // The full article body.
	Summary         string        // The short machine-generated summary. Empty until summarization ran.
	URL             string        // The canonical source URL. Unique across all articles.
	Source          string        // The publishing outlet, e.g. "Yonhap News".
	Author          string        // The reporter's byline. Empty when unknown.
	Category        NewsCategory  // The editorial category assigned at ingestion.
	Tags            []string      // Free-form tags attached by the crawler.
	PublishedAt     time.Time     // When the outlet published the article.
	CrawledAt       time.Time     // When the crawler stored the article.
	Status          NewsStatus    // Where the article is in the processing pipeline.
	Sentiment       SentimentType // Result of sentiment analysis. Empty until analyzed.
	SentimentScore  *float64      // Sentiment score in [-1.0, 1.0]. Nil until analyzed.
	ImportanceScore float64       // Editorial importance in [0.0, 1.0], used for digest ranking.
	ViewCount       int           // Number of times the article detail was viewed.
	ShareCount      int           // Number of times the article was shared.
	ThumbnailURL    string        // URL of the thumbnail image. Empty when none was uploaded.
	Summaries       []NewsSummary // Generated summaries for this article. Loaded on demand.
	CreatedAt       time.Time     // Timestamp of when this record was created.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}

// NewsSummary is one generated summary of an article. An article can carry
// several, e.g. one per length or language.
type NewsSummary struct {
	ID              uuid.UUID     // The unique ID for this summary record.
	ArticleID       uuid.UUID     // Links the summary to the article it condenses.
	Title           string        // The summary headline.
	Content         string        // The summary text.
	KeyPoints       []string      // Bullet-point highlights extracted from the article.
	SummaryType     SummaryLength // The length class this summary was generated for.
	ModelName       string        // Name of the model that produced the summary. Empty when unknown.
	ModelVersion    string        // Version of that model. Empty when unknown.
	ConfidenceScore *float64      // Model confidence in [0.0, 1.0]. Nil when the model reports none.
	Language        string        // Language code of the summary text.
	CreatedAt       time.Time     // Timestamp of when this summary was stored.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}

// NewsKeyword tracks how often a keyword appears across articles and whether
// it currently counts as trending.
type NewsKeyword struct {
	ID                uuid.UUID            // The unique ID for this keyword record.
	Keyword           string               // The keyword itself. Unique across all records.
	Frequency         int                  // Total number of appearances across articles.
	CategoryFrequency map[NewsCategory]int // Appearances broken down by category.
	IsTrending        bool                 // Whether the keyword is currently trending.
	TrendScore        float64              // Score used to rank trending keywords.
	LastSeen          time.Time            // When the keyword last appeared in an article.
	CreatedAt         time.Time            // Timestamp of when this record was created.
	UpdatedAt         time.Time            // Timestamp of the last modification.
}
