package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reward is something a guest can claim with points.
type Reward struct {
	ID               uuid.UUID  `json:"id"`
	RestaurantID     uuid.UUID  `json:"restaurant_id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	PointsRequired   int64      `json:"points_required"`
	Quantity         *int64     `json:"quantity,omitempty"` // nil means unlimited stock.
	QuantityRedeemed int64      `json:"quantity_redeemed"`
	MinTierLevel     *int       `json:"min_tier_level,omitempty"`
	IsActive         bool       `json:"is_active"`
	ValidFrom        *time.Time `json:"valid_from,omitempty"`
	ValidUntil       *time.Time `json:"valid_until,omitempty"`
	RedeemDeadline   *time.Time `json:"redeem_deadline,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsAvailableAt reports whether the reward is active and inside its validity window.
func (r *Reward) IsAvailableAt(now time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && now.After(*r.ValidUntil) {
		return false
	}

	return true
}

// HasStock reports whether another unit can be redeemed.
func (r *Reward) HasStock() bool {
	return r.Quantity == nil || r.QuantityRedeemed < *r.Quantity
}

// RedemptionStatus is the lifecycle state of a claimed reward.
type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "PENDING"
	RedemptionStatusUsed      RedemptionStatus = "USED"
	RedemptionStatusExpired   RedemptionStatus = "EXPIRED"
	RedemptionStatusCancelled RedemptionStatus = "CANCELLED"
)

// RewardRedemption is a claimed reward waiting to be used at the counter.
type RewardRedemption struct {
	ID           uuid.UUID        `json:"id"`
	CardID       uuid.UUID        `json:"card_id"`
	RewardID     uuid.UUID        `json:"reward_id"`
	RestaurantID uuid.UUID        `json:"restaurant_id"`
	PointsSpent  int64            `json:"points_spent"`
	Code         string           `json:"code"`
	Status       RedemptionStatus `json:"status"`
	ExpiresAt    time.Time        `json:"expires_at"`
	UsedAt       *time.Time       `json:"used_at,omitempty"`
	UsedBy       *uuid.UUID       `json:"used_by,omitempty"`
	CancelledAt  *time.Time       `json:"cancelled_at,omitempty"`
	CancelReason string           `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// IsExpiredAt reports whether a pending redemption has run out at the given instant.
func (rr *RewardRedemption) IsExpiredAt(now time.Time) bool {
	return rr.Status == RedemptionStatusPending && !now.Before(rr.ExpiresAt)
}
