package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"newsbite/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishArticleSummarized publishes an article.summarized event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishArticleSummarized(ctx context.Context, event *service.ArticleSummarizedEvent) error {
	return p.publishEnvelope(ctx, service.EventArticleSummarized, event.RequestID, event)
}

// PublishDigestBuilt publishes a digest.built event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishDigestBuilt(ctx context.Context, event *service.DigestBuiltEvent) error {
	return p.publishEnvelope(ctx, service.EventDigestBuilt, event.RequestID, event)
}

// publishEnvelope wraps the payload in an EventEnvelope and publishes it.
func (p *googlePubSubPublisher) publishEnvelope(ctx context.Context, eventType, requestID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(service.EventEnvelope{Type: eventType, Data: data})
	if err != nil {
		return errors.WithStack(err)
	}

	// Attributes allow subscription-side filtering without decoding the body
	attributes := map[string]string{
		"event_type": eventType,
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	msg := &pubsub.Message{
		Data:       body,
		Attributes: attributes,
	}

	p.logger.Info("[GooglePubSub] Publishing event",
		slog.String("event_type", eventType),
	)

	// Publish message and wait for the server acknowledgement
	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published successfully",
		slog.String("event_type", eventType),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
