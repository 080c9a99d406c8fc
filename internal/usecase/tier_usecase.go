package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTierInput defines a new rung of a restaurant's tier ladder.
type CreateTierInput struct {
	RestaurantID      uuid.UUID
	Name              string
	Level             int
	MinPointsRequired int64
	PointsMultiplier  decimal.Decimal
	IsDefault         bool
	Perks             string
}

// ManualUpgradeInput moves a card to a tier regardless of its balance.
type ManualUpgradeInput struct {
	CardID    uuid.UUID
	NewTierID uuid.UUID
	Reason    string
	AdminID   uuid.UUID
}

// TierUsecase manages tier ladders and card tier assignment.
type TierUsecase interface {
	CreateTier(ctx context.Context, input CreateTierInput) (*entity.LoyaltyTier, error)
	DeleteTier(ctx context.Context, tierID uuid.UUID) error
	ListTiers(ctx context.Context, restaurantID uuid.UUID) ([]*entity.LoyaltyTier, error)

	// CheckAndUpgrade assigns the tier the points qualify for. Repeated calls with
	// the same points change nothing.
	CheckAndUpgrade(ctx context.Context, cardID uuid.UUID, currentPoints int64) (*entity.GuestCard, error)

	// ManualUpgrade bypasses thresholds and always records history.
	ManualUpgrade(ctx context.Context, input ManualUpgradeInput) (*entity.GuestCard, error)

	GetTierHistory(ctx context.Context, cardID uuid.UUID) ([]*entity.TierUpgradeHistory, error)
}
