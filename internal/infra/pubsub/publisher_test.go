package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.LoyaltyEvent {
	return &service.LoyaltyEvent{
		ID:           "evt-1",
		Type:         service.EventPointsEarned,
		RequestID:    "req-42",
		RestaurantID: "rest-1",
		CardID:       "card-1",
		OccurredAt:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Attributes:   map[string]string{"points": "12"},
	}
}

func TestLocalHTTPPublisher_PublishLoyaltyEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishLoyaltyEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "points.earned", received.Message.Attributes["event_type"])
	assert.Equal(t, "card-1", received.Message.Attributes["card_id"])
	assert.Equal(t, "card-1", received.Message.OrderingKey)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.LoyaltyEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "12", decoded.Attributes["points"])
}

func TestEncodeMessage(t *testing.T) {
	msg, err := encodeMessage(sampleEvent())
	require.NoError(t, err)

	assert.Equal(t, "card-1", msg.OrderingKey)
	assert.Equal(t, "req-42", msg.Attributes["request_id"])
	assert.Equal(t, "rest-1", msg.Attributes["restaurant_id"])

	var decoded service.LoyaltyEvent
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, service.EventPointsEarned, decoded.Type)

	unrouted := sampleEvent()
	unrouted.CardID = ""
	unrouted.RequestID = ""
	msg, err = encodeMessage(unrouted)
	require.NoError(t, err)
	assert.Empty(t, msg.OrderingKey)
	assert.NotContains(t, msg.Attributes, "request_id")
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishLoyaltyEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", pubsub: nil},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/events"}},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
