package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"loyalty/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// cloudPublisher sends loyalty events to a Google Cloud Pub/Sub topic. Events
// of one card share an ordering key, so a subscriber with ordering enabled
// sees a card's points, upgrades and redemptions in commit order.
type cloudPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewCloudPublisher connects to the topic and fails fast when it does not exist.
func NewCloudPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topicName := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "loyalty event topic %s is not reachable", topicName)
	}

	topic := client.Publisher(topicID)
	topic.EnableMessageOrdering = true

	logger.Info("Loyalty events publish to Google Pub/Sub", slog.String("topic", topicName))

	return &cloudPublisher{client: client, topic: topic, logger: logger}, nil
}

// encodeMessage builds the wire message shared by every provider.
func encodeMessage(event *service.LoyaltyEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode loyalty event")
	}

	return &pubsub.Message{
		Data:        data,
		Attributes:  messageAttributes(event),
		OrderingKey: orderingKey(event),
	}, nil
}

// PublishLoyaltyEvent blocks until the server acknowledges the message.
func (p *cloudPublisher) PublishLoyaltyEvent(ctx context.Context, event *service.LoyaltyEvent) error {
	msg, err := encodeMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		if msg.OrderingKey != "" {
			p.topic.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.Debug("Loyalty event acknowledged",
		slog.String("eventID", event.ID),
		slog.String("eventType", string(event.Type)),
		slog.String("serverID", serverID))

	return nil
}

// Close flushes pending messages before dropping the client.
func (p *cloudPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
