package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// TierRepository persists tier ladders and the tier change history.
type TierRepository interface {
	// Create returns ErrDuplicateTierLevel when the level is taken.
	Create(ctx context.Context, tier *entity.LoyaltyTier) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyTier, error)

	// ListByRestaurant returns every tier of the restaurant ordered by level.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.LoyaltyTier, error)

	// FindDefault returns ErrTierNotFound when the restaurant has no default tier.
	FindDefault(ctx context.Context, restaurantID uuid.UUID) (*entity.LoyaltyTier, error)

	Delete(ctx context.Context, id uuid.UUID) error

	CreateHistory(ctx context.Context, history *entity.TierUpgradeHistory) error

	// ListHistoryByCard returns the card's tier changes, newest first.
	ListHistoryByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.TierUpgradeHistory, error)
}
