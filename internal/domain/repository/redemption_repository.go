package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// RedemptionRepository persists claimed rewards.
type RedemptionRepository interface {
	// Create returns ErrDuplicateRedemption when the redemption code is taken.
	Create(ctx context.Context, redemption *entity.RewardRedemption) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.RewardRedemption, error)

	LockByID(ctx context.Context, id uuid.UUID) (*entity.RewardRedemption, error)

	LockByCode(ctx context.Context, code string) (*entity.RewardRedemption, error)

	// LockPendingByCardAndReward locks the card's PENDING redemptions of the reward.
	LockPendingByCardAndReward(ctx context.Context, cardID, rewardID uuid.UUID) ([]*entity.RewardRedemption, error)

	// Update writes the status fields of the redemption.
	Update(ctx context.Context, redemption *entity.RewardRedemption) error

	// ListExpiredPendingIDs returns PENDING redemptions whose expiry is before now.
	// A nil restaurantID scans every restaurant.
	ListExpiredPendingIDs(ctx context.Context, restaurantID *uuid.UUID, now time.Time, limit int) ([]uuid.UUID, error)
}
