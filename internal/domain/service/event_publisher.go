package service

import (
	"context"
	"encoding/json"
)

// Event names carried in the envelope's type field.
const (
	// EventArticleSummarized is emitted after a summary is attached to an article.
	EventArticleSummarized = "article.summarized"
	// EventDigestBuilt is emitted after a digest and its recipient logs are assembled.
	EventDigestBuilt = "digest.built"
)

// EventEnvelope wraps every published event so consumers can dispatch on the
// event name before decoding the payload.
type EventEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ArticleSummarizedEvent notifies the digest worker that an article gained a summary.
type ArticleSummarizedEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	ArticleID string   `json:"article_id"`
	Category  string   `json:"category"`
	KeyPoints []string `json:"key_points"`
}

// DigestBuiltEvent notifies downstream consumers that a digest was assembled
// and its recipient email logs are waiting for dispatch.
type DigestBuiltEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	DigestID        string `json:"digest_id"`
	DigestType      string `json:"digest_type"`
	TotalRecipients int    `json:"total_recipients"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishArticleSummarized publishes an article.summarized event for async processing
	PublishArticleSummarized(ctx context.Context, event *ArticleSummarizedEvent) error

	// PublishDigestBuilt publishes a digest.built event for async processing
	PublishDigestBuilt(ctx context.Context, event *DigestBuiltEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
