package service

import (
	"context"
	"time"
)

// LoyaltyEventType names an event emitted after a ledger commit.
type LoyaltyEventType string

const (
	EventPointsEarned    LoyaltyEventType = "points.earned"
	EventTierUpgraded    LoyaltyEventType = "tier.upgraded"
	EventRewardAvailable LoyaltyEventType = "reward.available"
	EventRewardRedeemed  LoyaltyEventType = "reward.redeemed"
)

// LoyaltyEvent is the payload handed to notification and analytics consumers.
type LoyaltyEvent struct {
	ID           string            `json:"id"`
	Type         LoyaltyEventType  `json:"type"`
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	RestaurantID string            `json:"restaurant_id"`
	CardID       string            `json:"card_id"`
	OccurredAt   time.Time         `json:"occurred_at"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLoyaltyEvent publishes one event. Callers treat failures as non-fatal.
	PublishLoyaltyEvent(ctx context.Context, event *LoyaltyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
