package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PointLogModel mirrors the append-only 'point_logs' table. The (card_id, sequence)
// unique index rejects a second entry at the same chain position.
type PointLogModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CardID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_point_logs_card_sequence"`
	Sequence      int64      `gorm:"not null;uniqueIndex:idx_point_logs_card_sequence"`
	Delta         int64      `gorm:"not null"`
	Reason        string     `gorm:"type:varchar(32);not null"`
	BalanceBefore int64      `gorm:"not null"`
	BalanceAfter  int64      `gorm:"not null"`
	ReferenceID   *uuid.UUID `gorm:"type:uuid;index"`
	Note          string     `gorm:"type:text"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PointLogModel) TableName() string {
	return "point_logs"
}

// TransactionModel mirrors the 'transactions' table. A purchase can be reversed
// once, enforced by the unique reference column.
type TransactionModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CardID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	StaffID                *uuid.UUID      `gorm:"type:uuid"`
	Type                   string          `gorm:"type:varchar(16);not null"`
	Amount                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PointsEarned           int64           `gorm:"not null"`
	BasePoints             int64           `gorm:"not null;default:0"`
	Multiplier             decimal.Decimal `gorm:"type:numeric(6,3);not null;default:1"`
	Status                 string          `gorm:"type:varchar(16);not null"`
	ReferenceTransactionID *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	FlaggedForReview       bool            `gorm:"not null;default:false"`
	Reason                 string          `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
