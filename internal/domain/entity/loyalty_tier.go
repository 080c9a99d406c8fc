package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyTier is one level of a restaurant's tier ladder.
type LoyaltyTier struct {
	ID                uuid.UUID       `json:"id"`
	RestaurantID      uuid.UUID       `json:"restaurant_id"`
	Name              string          `json:"name"`
	Level             int             `json:"level"`
	MinPointsRequired int64           `json:"min_points_required"`
	PointsMultiplier  decimal.Decimal `json:"points_multiplier"`
	IsDefault         bool            `json:"is_default"`
	IsActive          bool            `json:"is_active"`
	Perks             string          `json:"perks,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TierTrigger records what caused a tier change.
type TierTrigger string

const (
	TierTriggerPointsThreshold TierTrigger = "POINTS_THRESHOLD"
	TierTriggerAdminUpgrade    TierTrigger = "ADMIN_UPGRADE"
)

// TierUpgradeHistory is an append-only record of a card's tier changes.
type TierUpgradeHistory struct {
	ID           uuid.UUID   `json:"id"`
	CardID       uuid.UUID   `json:"card_id"`
	FromTierID   *uuid.UUID  `json:"from_tier_id,omitempty"`
	ToTierID     uuid.UUID   `json:"to_tier_id"`
	TriggerType  TierTrigger `json:"trigger_type"`
	TriggerValue *int64      `json:"trigger_value,omitempty"`
	Reason       string      `json:"reason,omitempty"`
	UpgradedBy   *uuid.UUID  `json:"upgraded_by,omitempty"`
	UpgradedAt   time.Time   `json:"upgraded_at"`
}
