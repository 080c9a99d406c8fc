package loyalty

import (
	"fmt"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// FindTierForPoints picks the active tier with the highest threshold the points
// reach, preferring the higher level on equal thresholds. When nothing qualifies
// the default tier is returned, which may be nil.
func FindTierForPoints(tiers []*entity.LoyaltyTier, points int64) *entity.LoyaltyTier {
	var best, fallback *entity.LoyaltyTier

	for _, tier := range tiers {
		if tier == nil || !tier.IsActive {
			continue
		}
		if tier.IsDefault && fallback == nil {
			fallback = tier
		}
		if tier.MinPointsRequired > points {
			continue
		}
		if best == nil ||
			tier.MinPointsRequired > best.MinPointsRequired ||
			(tier.MinPointsRequired == best.MinPointsRequired && tier.Level > best.Level) {
			best = tier
		}
	}

	if best != nil {
		return best
	}

	return fallback
}

// MultiplierOf returns the tier's multiplier, or 1 without a tier.
func MultiplierOf(tier *entity.LoyaltyTier) decimal.Decimal {
	if tier == nil || !tier.PointsMultiplier.IsPositive() {
		return decimal.NewFromInt(1)
	}

	return tier.PointsMultiplier
}

// ValidateTierPlacement checks a new tier against the restaurant's existing ladder:
// its level must be free, its threshold strictly above every lower level and not
// above any higher level.
func ValidateTierPlacement(existing []*entity.LoyaltyTier, candidate *entity.LoyaltyTier) error {
	if candidate.MinPointsRequired < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("minPointsRequired must be non-negative")
	}
	if candidate.PointsMultiplier.LessThan(decimal.NewFromInt(1)) {
		return domainerrors.ErrValidationFailed.WithDetails("pointsMultiplier must be at least 1")
	}

	for _, tier := range existing {
		switch {
		case tier.Level == candidate.Level:
			return domainerrors.ErrTierLevelTaken.WithDetails(fmt.Sprintf("level %d is used by %q", tier.Level, tier.Name))
		case tier.Level < candidate.Level && tier.MinPointsRequired >= candidate.MinPointsRequired:
			return domainerrors.ErrTierOrdering.WithDetails(
				fmt.Sprintf("level %d needs more than %d points (level %d requires %d)",
					candidate.Level, tier.MinPointsRequired, tier.Level, tier.MinPointsRequired))
		case tier.Level > candidate.Level && tier.MinPointsRequired < candidate.MinPointsRequired:
			return domainerrors.ErrTierOrdering.WithDetails(
				fmt.Sprintf("level %d may require at most %d points (level %d requires %d)",
					candidate.Level, tier.MinPointsRequired, tier.Level, tier.MinPointsRequired))
		}
	}

	return nil
}

// DefaultTier returns the restaurant's default tier from a ladder, or nil.
func DefaultTier(tiers []*entity.LoyaltyTier) *entity.LoyaltyTier {
	for _, tier := range tiers {
		if tier.IsDefault {
			return tier
		}
	}

	return nil
}
