package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsbite/internal/domain/entity"
)

// --- Input DTOs ---

// ListArticlesInput narrows and pages the article listing. Zero values mean
// "no filter" and the configured defaults.
type ListArticlesInput struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	Source   string `query:"source"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// IngestArticleInput carries a crawled article into the pipeline.
type IngestArticleInput struct {
	Title           string    `json:"title" validate:"required,max=500"`
	Content         string    `json:"content" validate:"required"`
	URL             string    `json:"url" validate:"required,url,max=1000"`
	Source          string    `json:"source" validate:"required,max=100"`
	Author          string    `json:"author" validate:"omitempty,max=100"`
	Category        string    `json:"category" validate:"required"`
	Tags            []string  `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	PublishedAt     time.Time `json:"published_at" validate:"required"`
	ImportanceScore float64   `json:"importance_score" validate:"omitempty,min=0,max=1"`
}

// AttachSummaryInput carries a generated summary for an article.
type AttachSummaryInput struct {
	Title           string   `json:"title" validate:"omitempty,max=500"`
	Content         string   `json:"content" validate:"required"`
	KeyPoints       []string `json:"key_points" validate:"omitempty,max=10,dive,max=200"`
	SummaryType     string   `json:"summary_type" validate:"omitempty,oneof=short medium long"`
	ModelName       string   `json:"model_name" validate:"omitempty,max=100"`
	ModelVersion    string   `json:"model_version" validate:"omitempty,max=50"`
	ConfidenceScore *float64 `json:"confidence_score" validate:"omitempty,min=0,max=1"`
	Language        string   `json:"language" validate:"omitempty,min=2,max=8"`
}

// PresignThumbnailInput describes the thumbnail file about to be uploaded.
type PresignThumbnailInput struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	FileSize int64  `json:"file_size" validate:"required,min=1"`
}

// --- Output DTOs ---

// ArticleOutput is the public view of an article. Content and summaries are
// only carried on detail views.
type ArticleOutput struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Content         string           `json:"content,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	URL             string           `json:"url"`
	Source          string           `json:"source"`
	Author          string           `json:"author,omitempty"`
	Category        string           `json:"category"`
	Tags            []string         `json:"tags,omitempty"`
	PublishedAt     time.Time        `json:"published_at"`
	Status          string           `json:"status"`
	Sentiment       string           `json:"sentiment,omitempty"`
	SentimentScore  *float64         `json:"sentiment_score,omitempty"`
	ImportanceScore float64          `json:"importance_score"`
	ViewCount       int              `json:"view_count"`
	ShareCount      int              `json:"share_count"`
	ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
	Summaries       []*SummaryOutput `json:"summaries,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// SummaryOutput is the public view of a generated summary.
type SummaryOutput struct {
	ID              uuid.UUID `json:"id"`
	ArticleID       uuid.UUID `json:"article_id"`
	Title           string    `json:"title,omitempty"`
	Content         string    `json:"content"`
	KeyPoints       []string  `json:"key_points,omitempty"`
	SummaryType     string    `json:"summary_type"`
	ModelName       string    `json:"model_name,omitempty"`
	ModelVersion    string    `json:"model_version,omitempty"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
}

// KeywordOutput is the public view of a trending keyword.
type KeywordOutput struct {
	Keyword    string    `json:"keyword"`
	Frequency  int       `json:"frequency"`
	TrendScore float64   `json:"trend_score"`
	LastSeen   time.Time `json:"last_seen"`
}

// ArticleListOutput is one page of the article listing.
type ArticleListOutput struct {
	Articles []*ArticleOutput `json:"articles"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ThumbnailUploadOutput tells the client where to upload a thumbnail and
// where the object will be served from afterwards.
type ThumbnailUploadOutput struct {
	UploadURL    string `json:"upload_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Key          string `json:"key"`
	ExpiresIn    int    `json:"expires_in"` // Upload URL lifetime in seconds.
}

// NewArticleOutput maps an article entity onto its full detail view.
func NewArticleOutput(article *entity.NewsArticle) *ArticleOutput {
	out := NewArticleListItemOutput(article)
	out.Content = article.Content
	if len(article.Summaries) > 0 {
		out.Summaries = make([]*SummaryOutput, 0, len(article.Summaries))
		for i := range article.Summaries {
			out.Summaries = append(out.Summaries, NewSummaryOutput(&article.Summaries[i]))
		}
	}

	return out
}

// NewArticleListItemOutput maps an article entity onto its listing view,
// which leaves out the full content and the summary records.
func NewArticleListItemOutput(article *entity.NewsArticle) *ArticleOutput {
	return &ArticleOutput{
		ID:              article.ID,
		Title:           article.Title,
		Summary:         article.Summary,
		URL:             article.URL,
		Source:          article.Source,
		Author:          article.Author,
		Category:        article.Category.String(),
		Tags:            article.Tags,
		PublishedAt:     article.PublishedAt,
		Status:          article.Status.String(),
		Sentiment:       article.Sentiment.String(),
		SentimentScore:  article.SentimentScore,
		ImportanceScore: article.ImportanceScore,
		ViewCount:       article.ViewCount,
		ShareCount:      article.ShareCount,
		ThumbnailURL:    article.ThumbnailURL,
		CreatedAt:       article.CreatedAt,
	}
}

// NewSummaryOutput maps a summary entity onto its public view.
func NewSummaryOutput(summary *entity.NewsSummary) *SummaryOutput {
	return &SummaryOutput{
		ID:              summary.ID,
		ArticleID:       summary.ArticleID,
		Title:           summary.Title,
		Content:         summary.Content,
		KeyPoints:       summary.KeyPoints,
		SummaryType:     summary.SummaryType.String(),
		ModelName:       summary.ModelName,
		ModelVersion:    summary.ModelVersion,
		ConfidenceScore: summary.ConfidenceScore,
		Language:        summary.Language,
		CreatedAt:       summary.CreatedAt,
	}
}

// NewKeywordOutput maps a keyword entity onto its public view.
func NewKeywordOutput(keyword *entity.NewsKeyword) *KeywordOutput {
	return &KeywordOutput{
		Keyword:    keyword.Keyword,
		Frequency:  keyword.Frequency,
		TrendScore: keyword.TrendScore,
		LastSeen:   keyword.LastSeen,
	}
}

// NewsUsecase defines the interface for article browsing and the
// content-management operations behind the pipeline.
type NewsUsecase interface {
	// ListArticles returns one page of articles matching the filter.
	ListArticles(ctx context.Context, input *ListArticlesInput) (*ArticleListOutput, error)

	// GetArticle returns the article detail and bumps its view counter.
	GetArticle(ctx context.Context, id uuid.UUID) (*ArticleOutput, error)

	// IngestArticle stores a crawled article. Admin only.
	IngestArticle(ctx context.Context, adminID uuid.UUID, input *IngestArticleInput) (*ArticleOutput, error)

	// AttachSummary stores a generated summary, marks the article summarized
	// and announces the result on the event bus. Admin only.
	AttachSummary(ctx context.Context, adminID, articleID uuid.UUID, input *AttachSummaryInput) (*SummaryOutput, error)

	// GetTrendingKeywords returns up to limit keywords ordered by trend score.
	GetTrendingKeywords(ctx context.Context, limit int) ([]*KeywordOutput, error)

	// PresignThumbnailUpload returns a presigned URL for uploading an article
	// thumbnail and records the object URL on the article. Admin only.
	PresignThumbnailUpload(ctx context.Context, adminID, articleID uuid.UUID, input *PresignThumbnailInput) (*ThumbnailUploadOutput, error)
}
