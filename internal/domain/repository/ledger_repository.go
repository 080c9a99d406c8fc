package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerResult is the outcome of one applied point change.
type LedgerResult struct {
	Entry *entity.PointLogEntry
	Card  *entity.GuestCard
}

// LedgerRepository is the only writer of card balances.
type LedgerRepository interface {
	// ApplyChange locks the card row, appends a point log entry with the balance
	// before and after, and updates current_points, total_points_earned and
	// ledger_version in the same transaction. Must run inside TransactionManager.Execute.
	ApplyChange(ctx context.Context, change entity.PointChange) (*LedgerResult, error)

	// ListByCard returns the card's entries in sequence order.
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.PointLogEntry, error)
}
