package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardModel mirrors the 'rewards' table.
type RewardModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	PointsRequired   int64     `gorm:"not null"`
	Quantity         *int64
	QuantityRedeemed int64 `gorm:"not null;default:0"`
	MinTierLevel     *int
	IsActive         bool `gorm:"not null"`
	ValidFrom        *time.Time
	ValidUntil       *time.Time
	RedeemDeadline   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}

// RewardRedemptionModel mirrors the 'reward_redemptions' table. The partial
// unique index allows one PENDING redemption per card and reward.
type RewardRedemptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reward_redemptions_one_pending,unique,where:status = 'PENDING'"`
	RewardID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reward_redemptions_one_pending,unique,where:status = 'PENDING'"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index:idx_reward_redemptions_status_expiry"`
	PointsSpent  int64     `gorm:"not null"`
	Code         string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status       string    `gorm:"type:varchar(16);not null;index:idx_reward_redemptions_status_expiry"`
	ExpiresAt    time.Time `gorm:"not null;index:idx_reward_redemptions_status_expiry"`
	UsedAt       *time.Time
	UsedBy       *uuid.UUID `gorm:"type:uuid"`
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardRedemptionModel) TableName() string {
	return "reward_redemptions"
}
