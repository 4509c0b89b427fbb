// Package handler processes the Pub/Sub push messages delivered to the
// digest worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"newsbite/config"
	deliverycontext "newsbite/internal/delivery/context"
	"newsbite/internal/domain/constants"
	"newsbite/internal/domain/entity"
	"newsbite/internal/domain/repository"
	"newsbite/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	// trendHalfLife controls how fast a keyword's score decays when it stops
	// appearing in fresh summaries.
	trendHalfLife = 24 * time.Hour

	// trendingThreshold is the score at which a keyword counts as trending.
	trendingThreshold = 5.0
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for keyword trend processing
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	newsRepo       repository.NewsRepository
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	NewsRepo repository.NewsRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google-signed pushes are verified everywhere except development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		newsRepo:       params.NewsRepo,
		now:            time.Now,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Transient store failures
// answer 503 so Pub/Sub redelivers; malformed payloads are acked with 200 so
// a poison message cannot loop forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data; undecodable payloads are acked
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	var envelope service.EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse event envelope", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	// Extract request_id for distributed tracing and build a scoped logger
	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event_type", envelope.Type),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processEvent(ctx, reqLogger, &envelope); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event_type", envelope.Type),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, falls back to
// the request context, and finally generates a fresh one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent dispatches on the envelope type. Unknown event types are acked
// and ignored so new producers can roll out ahead of the worker.
func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, envelope *service.EventEnvelope) error {
	switch envelope.Type {
	case service.EventArticleSummarized:
		var event service.ArticleSummarizedEvent
		if err := json.Unmarshal(envelope.Data, &event); err != nil {
			return errors.Wrap(err, "failed to parse article summarized event")
		}

		return h.processArticleSummarized(ctx, logger, &event)
	case service.EventDigestBuilt:
		var event service.DigestBuiltEvent
		if err := json.Unmarshal(envelope.Data, &event); err != nil {
			return errors.Wrap(err, "failed to parse digest built event")
		}

		logger.Info("[Worker] Digest built",
			slog.String("digest_id", event.DigestID),
			slog.String("digest_type", event.DigestType),
			slog.Int("total_recipients", event.TotalRecipients),
		)

		return nil
	default:
		logger.Warn("[Worker] Unknown event type", slog.String("event_type", envelope.Type))

		return nil
	}
}

// processArticleSummarized records the summary's key points into the keyword
// trend table. Redelivery after a partial failure may count a key point
// twice; trend scores tolerate that.
func (h *PushHandler) processArticleSummarized(ctx context.Context, logger *slog.Logger, event *service.ArticleSummarizedEvent) error {
	category := entity.NewsCategory(event.Category)
	if !category.IsValid() {
		logger.Warn("[Worker] Event carries unknown category",
			slog.String("article_id", event.ArticleID),
			slog.String("category", event.Category),
		)

		return nil
	}

	recorded := 0
	for _, keyPoint := range event.KeyPoints {
		keywordText := normalizeKeyword(keyPoint)
		if keywordText == "" {
			continue
		}

		if err := h.recordKeyword(ctx, keywordText, category); err != nil {
			return err
		}
		recorded++
	}

	logger.Info("[Worker] Keyword trends recorded",
		slog.String("article_id", event.ArticleID),
		slog.String("category", event.Category),
		slog.Int("keywords", recorded),
	)

	return nil
}

// recordKeyword bumps one keyword's counters and recomputes its trend score.
func (h *PushHandler) recordKeyword(ctx context.Context, keywordText string, category entity.NewsCategory) error {
	now := h.now()

	keyword, err := h.newsRepo.FindKeywordByText(ctx, keywordText)
	if err != nil {
		if !errors.Is(err, repository.ErrKeywordNotFound) {
			return newRetryableError(errors.Wrap(err, "failed to load keyword"))
		}

		keyword = &entity.NewsKeyword{
			Keyword:           keywordText,
			CategoryFrequency: make(map[entity.NewsCategory]int),
		}
	}
	if keyword.CategoryFrequency == nil {
		keyword.CategoryFrequency = make(map[entity.NewsCategory]int)
	}

	keyword.Frequency++
	keyword.CategoryFrequency[category]++
	keyword.TrendScore = decayedScore(keyword.TrendScore, keyword.LastSeen, now) + 1
	keyword.IsTrending = keyword.TrendScore >= trendingThreshold
	keyword.LastSeen = now

	if err := h.newsRepo.SaveKeyword(ctx, keyword); err != nil {
		return newRetryableError(errors.Wrap(err, "failed to save keyword"))
	}

	return nil
}

// decayedScore halves the previous trend score for every half-life elapsed
// since the keyword was last seen, so stale keywords drop off the trending
// list without a sweeper job.
func decayedScore(score float64, lastSeen, now time.Time) float64 {
	if score <= 0 || lastSeen.IsZero() || !now.After(lastSeen) {
		return score
	}

	elapsed := now.Sub(lastSeen)

	return score * math.Pow(0.5, elapsed.Hours()/trendHalfLife.Hours())
}

// normalizeKeyword folds a key point into its canonical keyword form.
func normalizeKeyword(keyPoint string) string {
	return strings.ToLower(strings.TrimSpace(keyPoint))
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
