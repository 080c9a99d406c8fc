package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionRepository persists purchase and refund rows.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// LockByID reads the row with SELECT ... FOR UPDATE.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error

	// FindReversalOf returns the refund row referencing the original, or ErrTransactionNotFound.
	FindReversalOf(ctx context.Context, originalID uuid.UUID) (*entity.Transaction, error)
}
