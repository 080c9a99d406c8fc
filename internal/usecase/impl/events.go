package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes loyalty events once the ledger change is committed.
// Failures are logged and never reach the caller.
type eventEmitter struct {
	publisher service.EventPublisher
	timeout   time.Duration
	clock     service.Clock
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, timeout time.Duration, clock service.Clock, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{
		publisher: publisher,
		timeout:   timeout,
		clock:     clock,
		logger:    logger,
	}
}

func (e *eventEmitter) emit(ctx context.Context, eventType service.LoyaltyEventType, card *entity.GuestCard, attrs map[string]string) {
	if e == nil || e.publisher == nil || card == nil {
		return
	}

	event := &service.LoyaltyEvent{
		ID:           uuid.NewString(),
		Type:         eventType,
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		RestaurantID: card.RestaurantID.String(),
		CardID:       card.ID.String(),
		OccurredAt:   e.clock.Now(),
		Attributes:   attrs,
	}

	// The request may already be finished; the publish still gets its own budget.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	if err := e.publisher.PublishLoyaltyEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish loyalty event",
			slog.String("eventType", string(eventType)),
			slog.String("eventID", event.ID),
			slog.Any("cardID", card.ID),
			slog.Any("error", err))
	}
}

func (e *eventEmitter) pointsEarned(ctx context.Context, card *entity.GuestCard, txnID uuid.UUID, points int64) {
	e.emit(ctx, service.EventPointsEarned, card, map[string]string{
		"transaction_id": txnID.String(),
		"points":         strconv.FormatInt(points, 10),
		"balance":        strconv.FormatInt(card.CurrentPoints, 10),
	})
}

func (e *eventEmitter) tierUpgraded(ctx context.Context, card *entity.GuestCard, change *tierChange) {
	attrs := map[string]string{
		"to_tier_id":   change.To.ID.String(),
		"to_tier_name": change.To.Name,
	}
	if change.From != nil {
		attrs["from_tier_id"] = change.From.ID.String()
		attrs["from_tier_name"] = change.From.Name
	}

	e.emit(ctx, service.EventTierUpgraded, card, attrs)
}

func (e *eventEmitter) rewardsAvailable(ctx context.Context, card *entity.GuestCard, rewards []*entity.Reward) {
	for _, reward := range rewards {
		e.emit(ctx, service.EventRewardAvailable, card, map[string]string{
			"reward_id":       reward.ID.String(),
			"reward_name":     reward.Name,
			"points_required": strconv.FormatInt(reward.PointsRequired, 10),
		})
	}
}

func (e *eventEmitter) rewardRedeemed(ctx context.Context, card *entity.GuestCard, redemption *entity.RewardRedemption) {
	e.emit(ctx, service.EventRewardRedeemed, card, map[string]string{
		"redemption_id": redemption.ID.String(),
		"reward_id":     redemption.RewardID.String(),
		"points_spent":  strconv.FormatInt(redemption.PointsSpent, 10),
		"expires_at":    redemption.ExpiresAt.Format(time.RFC3339),
	})
}
