package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// PurchaseInput is one scanned purchase at a terminal.
type PurchaseInput struct {
	RestaurantID uuid.UUID
	ScannedCode  string
	Amount       decimal.Decimal
	StaffID      *uuid.UUID
}

// RefundInput reverses a completed purchase with a new refund row.
type RefundInput struct {
	TransactionID uuid.UUID
	Reason        string
	StaffID       *uuid.UUID
}

// CancelInput voids a completed purchase in place.
type CancelInput struct {
	TransactionID uuid.UUID
	Reason        string
	StaffID       *uuid.UUID
}

// DisputeInput flags a completed purchase as contested and takes its points back.
type DisputeInput struct {
	TransactionID uuid.UUID
	Reason        string
	StaffID       *uuid.UUID
}

// --- Output DTOs ---

// PurchaseResult reports the credit applied for a purchase.
type PurchaseResult struct {
	TransactionID       uuid.UUID
	CardID              uuid.UUID
	BasePoints          int64
	PointsEarned        int64
	NewBalance          int64
	TierName            string
	DuplicateUseWarning bool
}

// ReversalResult reports the compensating debit of a refund or cancellation.
type ReversalResult struct {
	OriginalTransactionID uuid.UUID
	// RefundTransactionID is nil for cancellations and disputes, which reuse the original row.
	RefundTransactionID *uuid.UUID
	PointsReversed      int64
	NewBalance          int64
	TierName            string
}

// TransactionUsecase turns scans into ledger credits and reverses them.
type TransactionUsecase interface {
	RecordPurchase(ctx context.Context, input PurchaseInput) (*PurchaseResult, error)
	ProcessRefund(ctx context.Context, input RefundInput) (*ReversalResult, error)
	CancelTransaction(ctx context.Context, input CancelInput) (*ReversalResult, error)
	DisputeTransaction(ctx context.Context, input DisputeInput) (*ReversalResult, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
}
