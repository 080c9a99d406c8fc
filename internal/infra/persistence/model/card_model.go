package model

import (
	"time"

	"github.com/google/uuid"
)

// GuestCardModel mirrors the 'guest_cards' table.
type GuestCardModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_guest_cards_user_restaurant"`
	RestaurantID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_guest_cards_user_restaurant;index"`
	CurrentPoints     int64      `gorm:"not null;default:0"`
	TotalPointsEarned int64      `gorm:"not null;default:0"`
	LedgerVersion     int64      `gorm:"not null;default:0"`
	CurrentTierID     *uuid.UUID `gorm:"type:uuid;index"`
	TierOverride      bool       `gorm:"not null;default:false"`
	Status            string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	LastUsedAt        *time.Time
	LastTierCheckAt   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestCardModel) TableName() string {
	return "guest_cards"
}

// CardIdentifierModel mirrors the 'card_identifiers' table. The partial unique
// index keeps at most one active identifier per card.
type CardIdentifierModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID       uuid.UUID `gorm:"type:uuid;not null;index:idx_card_identifiers_one_active,unique,where:is_active = true"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_card_identifiers_code_restaurant;index:idx_card_identifiers_restaurant_active"`
	Code         string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_card_identifiers_code_restaurant"`
	Signature    string    `gorm:"type:varchar(128);not null"`
	CodeVersion  int       `gorm:"not null;default:1"`
	IsActive     bool      `gorm:"not null;index:idx_card_identifiers_restaurant_active"`
	UsageCount   int64     `gorm:"not null;default:0"`
	LastUsedAt   *time.Time
	// PreviousUsedAt holds last_used_at as it was before the latest scan.
	PreviousUsedAt *time.Time
	ExpiresAt    *time.Time
	RotatedAt    *time.Time
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (CardIdentifierModel) TableName() string {
	return "card_identifiers"
}
