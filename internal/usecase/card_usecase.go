package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// AdjustPointsInput is an operator credit or debit.
type AdjustPointsInput struct {
	CardID  uuid.UUID
	Delta   int64
	Reason  entity.PointReason
	AdminID uuid.UUID
	Note    string
}

// IssueCardOutput is a new card with its first code.
type IssueCardOutput struct {
	Card       *entity.GuestCard
	Identifier *entity.CardIdentifier
}

// LedgerChangeOutput is the entry written by an adjustment and the card after it.
type LedgerChangeOutput struct {
	Entry *entity.PointLogEntry
	Card  *entity.GuestCard
}

// LedgerReport is the result of replaying a card's chain.
type LedgerReport struct {
	CardID          uuid.UUID
	EntryCount      int
	ReplayedBalance int64
	CurrentPoints   int64
	Consistent      bool
	Problems        []string
}

// CardUsecase manages guest card lifecycle and manual ledger operations.
type CardUsecase interface {
	IssueCard(ctx context.Context, userID, restaurantID uuid.UUID) (*IssueCardOutput, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*entity.GuestCard, error)
	UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status entity.CardStatus) (*entity.GuestCard, error)
	AdjustPoints(ctx context.Context, input AdjustPointsInput) (*LedgerChangeOutput, error)
	GetLedger(ctx context.Context, cardID uuid.UUID) ([]*entity.PointLogEntry, error)
	ReconcileCard(ctx context.Context, cardID uuid.UUID) (*LedgerReport, error)
}
