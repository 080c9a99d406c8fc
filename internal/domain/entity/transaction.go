package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of a transaction row.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	// TransactionStatusFailed marks a scan of a valid code that was refused
	// because of the card's state. It never carries points.
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
	TransactionStatusDisputed  TransactionStatus = "DISPUTED"
)

// IsValid checks if the TransactionStatus is a known value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled, TransactionStatusDisputed:
		return true
	default:
		return false
	}
}

// IsVoided reports whether the purchase was reversed in place.
func (s TransactionStatus) IsVoided() bool {
	return s == TransactionStatusCancelled || s == TransactionStatusDisputed
}

// TransactionType separates purchases from their compensating refunds.
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "PURCHASE"
	TransactionTypeRefund   TransactionType = "REFUND"
)

// Transaction records a purchase scan or a refund of one.
type Transaction struct {
	ID                     uuid.UUID         `json:"id"`
	CardID                 uuid.UUID         `json:"card_id"`
	RestaurantID           uuid.UUID         `json:"restaurant_id"`
	StaffID                *uuid.UUID        `json:"staff_id,omitempty"`
	Type                   TransactionType   `json:"type"`
	Amount                 decimal.Decimal   `json:"amount"`
	PointsEarned           int64             `json:"points_earned"`
	BasePoints             int64             `json:"base_points"`
	Multiplier             decimal.Decimal   `json:"multiplier"`
	Status                 TransactionStatus `json:"status"`
	ReferenceTransactionID *uuid.UUID        `json:"reference_transaction_id,omitempty"`
	FlaggedForReview       bool              `json:"flagged_for_review"`
	Reason                 string            `json:"reason,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}
