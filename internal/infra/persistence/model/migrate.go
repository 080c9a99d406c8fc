package model

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// All lists every persisted model in dependency order.
func All() []any {
	return []any{
		&RestaurantModel{},
		&LoyaltyTierModel{},
		&GuestCardModel{},
		&CardIdentifierModel{},
		&PointLogModel{},
		&TransactionModel{},
		&TierUpgradeHistoryModel{},
		&RewardModel{},
		&RewardRedemptionModel{},
	}
}

// AutoMigrate creates or updates the loyalty schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return errors.Wrap(err, "failed to migrate loyalty schema")
	}

	return nil
}
