package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// UsageRecord is what one counted scan observed. PreviousUsedAt comes from the
// same write as Count, so concurrent scans each see the one before them.
type UsageRecord struct {
	Count          int64
	PreviousUsedAt *time.Time
}

// CardIdentifierRepository persists scannable card codes.
type CardIdentifierRepository interface {
	// Create inserts a new identifier. A (code, restaurant) collision returns ErrDuplicateIdentifier.
	Create(ctx context.Context, identifier *entity.CardIdentifier) error

	// FindByCode looks a code up within one restaurant, active or not.
	FindByCode(ctx context.Context, restaurantID uuid.UUID, code string) (*entity.CardIdentifier, error)

	// FindActiveByCard returns the card's single active identifier.
	FindActiveByCard(ctx context.Context, cardID uuid.UUID) (*entity.CardIdentifier, error)

	// DeactivateActiveForCard rotates out whatever identifier is currently active for the card.
	DeactivateActiveForCard(ctx context.Context, cardID uuid.UUID, rotatedAt time.Time) (int64, error)

	// RecordUsage atomically increments usage_count on an active identifier and
	// returns the new count with the last_used_at the increment replaced.
	// A rotated identifier yields ErrIdentifierNotFound.
	RecordUsage(ctx context.Context, id uuid.UUID, usedAt time.Time) (*UsageRecord, error)

	// ListActiveByRestaurant returns every active identifier of the restaurant.
	ListActiveByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.CardIdentifier, error)

	// ListStaleInactiveIDs returns up to limit inactive identifiers older than the
	// keep newest inactive ones of the restaurant.
	ListStaleInactiveIDs(ctx context.Context, restaurantID uuid.UUID, keep, limit int) ([]uuid.UUID, error)

	// DeleteInactiveByIDs removes the given identifiers, skipping any that are active.
	DeleteInactiveByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
