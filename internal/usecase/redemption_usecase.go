package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRewardInput adds a reward to a restaurant's catalogue.
type CreateRewardInput struct {
	RestaurantID   uuid.UUID
	Name           string
	Description    string
	PointsRequired int64
	Quantity       *int64
	MinTierLevel   *int
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	RedeemDeadline *time.Time
}

// RedeemResult is the claim a guest shows at the counter.
type RedeemResult struct {
	RedemptionID uuid.UUID
	Code         string
	ExpiresAt    time.Time
	PointsSpent  int64
	NewBalance   int64
}

// UseRedemptionResult reports the status a redemption ended in.
type UseRedemptionResult struct {
	RedemptionID uuid.UUID
	RewardID     uuid.UUID
	Status       entity.RedemptionStatus
}

// RedemptionUsecase converts points into claimable rewards.
type RedemptionUsecase interface {
	CreateReward(ctx context.Context, input CreateRewardInput) (*entity.Reward, error)
	GetReward(ctx context.Context, rewardID uuid.UUID) (*entity.Reward, error)

	Redeem(ctx context.Context, cardID, rewardID uuid.UUID) (*RedeemResult, error)
	UseRedemption(ctx context.Context, code string, staffID uuid.UUID) (*UseRedemptionResult, error)
	CancelRedemption(ctx context.Context, redemptionID uuid.UUID, reason string) (*entity.RewardRedemption, error)

	// ExpireRedemptions refunds pending redemptions past their expiry. A nil
	// restaurantID sweeps every restaurant. Safe to run repeatedly.
	ExpireRedemptions(ctx context.Context, restaurantID *uuid.UUID) (int, error)
}
