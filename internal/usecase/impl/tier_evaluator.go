package impl

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tierChange describes a tier assignment made by the evaluator.
type tierChange struct {
	From *entity.LoyaltyTier
	To   *entity.LoyaltyTier
}

// Upgraded reports whether the card moved to a higher level than before.
func (c *tierChange) Upgraded() bool {
	return c != nil && c.From != nil && c.To != nil && c.To.Level > c.From.Level
}

// tierEvaluator assigns the tier a balance qualifies for. It runs inside the
// caller's unit of work and is a no-op when the tier already matches.
type tierEvaluator struct {
	clock   service.Clock
	metrics service.LoyaltyMetrics
}

// evaluate moves the card to the tier its points qualify for, in either
// direction, and returns the change or nil when nothing moved. A tier set by an
// admin is a floor: the card only leaves it upwards, which clears the override.
func (e *tierEvaluator) evaluate(ctx context.Context, repos repository.RepositoryFactory, card *entity.GuestCard, points int64) (*tierChange, error) {
	tiers, err := repos.TierRepo().ListByRestaurant(ctx, card.RestaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	target := loyalty.FindTierForPoints(tiers, points)
	if target == nil || (card.CurrentTierID != nil && *card.CurrentTierID == target.ID) {
		return nil, nil
	}

	from := findTier(tiers, card.CurrentTierID)
	if card.TierOverride && from != nil && target.Level <= from.Level {
		return nil, nil
	}

	now := e.clock.Now()
	assignment := entity.TierAssignment{TierID: &target.ID, CheckedAt: now}
	if err := repos.GuestCardRepo().UpdateTier(ctx, card.ID, assignment); err != nil {
		return nil, errors.Wrap(err, "failed to update card tier")
	}

	// A first assignment is initialisation, not a tier change.
	if card.CurrentTierID != nil {
		history := &entity.TierUpgradeHistory{
			CardID:       card.ID,
			FromTierID:   card.CurrentTierID,
			ToTierID:     target.ID,
			TriggerType:  entity.TierTriggerPointsThreshold,
			TriggerValue: &points,
			UpgradedAt:   now,
		}
		if err := repos.TierRepo().CreateHistory(ctx, history); err != nil {
			return nil, errors.Wrap(err, "failed to record tier history")
		}
		e.metrics.TierChanged(string(entity.TierTriggerPointsThreshold))
	}

	card.CurrentTierID = &target.ID
	card.TierOverride = false
	card.LastTierCheckAt = &now

	return &tierChange{From: from, To: target}, nil
}

// currentTier returns the card's tier row, or nil when it has none.
func currentTier(ctx context.Context, repos repository.RepositoryFactory, card *entity.GuestCard) (*entity.LoyaltyTier, error) {
	if card.CurrentTierID == nil {
		return nil, nil
	}

	tier, err := repos.TierRepo().FindByID(ctx, *card.CurrentTierID)
	if err != nil {
		if errors.Is(err, repository.ErrTierNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load card tier")
	}

	return tier, nil
}

func findTier(tiers []*entity.LoyaltyTier, id *uuid.UUID) *entity.LoyaltyTier {
	if id == nil {
		return nil
	}
	for _, tier := range tiers {
		if tier.ID == *id {
			return tier
		}
	}

	return nil
}

func tierName(tier *entity.LoyaltyTier) string {
	if tier == nil {
		return ""
	}

	return tier.Name
}
