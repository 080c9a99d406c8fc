package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// GuestCardRepository persists membership cards. Balances are only ever changed
// through LedgerRepository.ApplyChange.
type GuestCardRepository interface {
	// Create returns ErrDuplicateCard when the guest already has a card at the restaurant.
	Create(ctx context.Context, card *entity.GuestCard) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.GuestCard, error)

	// LockByID reads the card with SELECT ... FOR UPDATE. Only meaningful inside a transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.GuestCard, error)

	FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.GuestCard, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CardStatus) error

	// UpdateTier assigns a tier, sets the override flag and stamps last_tier_check_at.
	UpdateTier(ctx context.Context, id uuid.UUID, assignment entity.TierAssignment) error

	// CountByTier returns how many cards currently sit in the tier.
	CountByTier(ctx context.Context, tierID uuid.UUID) (int64, error)
}
