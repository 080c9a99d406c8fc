package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyTierModel mirrors the 'loyalty_tiers' table.
type LoyaltyTierModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_loyalty_tiers_restaurant_level;index:idx_loyalty_tiers_one_default,unique,where:is_default = true"`
	Name              string          `gorm:"type:varchar(100);not null"`
	Level             int             `gorm:"not null;uniqueIndex:idx_loyalty_tiers_restaurant_level"`
	MinPointsRequired int64           `gorm:"not null;default:0"`
	PointsMultiplier  decimal.Decimal `gorm:"type:numeric(6,3);not null;default:1"`
	IsDefault         bool            `gorm:"not null;default:false"`
	IsActive          bool            `gorm:"not null"`
	Perks             string          `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyTierModel) TableName() string {
	return "loyalty_tiers"
}

// TierUpgradeHistoryModel mirrors the append-only 'tier_upgrade_histories' table.
type TierUpgradeHistoryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CardID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromTierID   *uuid.UUID `gorm:"type:uuid"`
	ToTierID     uuid.UUID  `gorm:"type:uuid;not null"`
	TriggerType  string     `gorm:"type:varchar(32);not null"`
	TriggerValue *int64
	Reason       string     `gorm:"type:text"`
	UpgradedBy   *uuid.UUID `gorm:"type:uuid"`
	UpgradedAt   time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TierUpgradeHistoryModel) TableName() string {
	return "tier_upgrade_histories"
}
