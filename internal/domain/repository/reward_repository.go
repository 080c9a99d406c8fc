package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// RewardRepository persists the reward catalogue and its stock counter.
type RewardRepository interface {
	Create(ctx context.Context, reward *entity.Reward) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)

	LockByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)

	// ReserveUnit increments quantity_redeemed only while stock remains and
	// reports whether a unit was taken.
	ReserveUnit(ctx context.Context, id uuid.UUID) (bool, error)

	// ReleaseUnit gives a reserved unit back.
	ReleaseUnit(ctx context.Context, id uuid.UUID) error

	// ListCrossedThreshold returns active rewards whose points_required lies in (from, to].
	ListCrossedThreshold(ctx context.Context, restaurantID uuid.UUID, from, to int64) ([]*entity.Reward, error)
}
