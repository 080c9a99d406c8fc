package entity

import (
	"time"

	"github.com/google/uuid"
)

// CardStatus is the lifecycle state of a guest card.
type CardStatus string

const (
	CardStatusActive    CardStatus = "ACTIVE"
	CardStatusInactive  CardStatus = "INACTIVE"
	CardStatusSuspended CardStatus = "SUSPENDED"
	CardStatusBlocked   CardStatus = "BLOCKED"
)

// IsValid checks if the CardStatus is a known value.
func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusActive, CardStatusInactive, CardStatusSuspended, CardStatusBlocked:
		return true
	default:
		return false
	}
}

// CanTransact reports whether points may move on a card in this state.
func (s CardStatus) CanTransact() bool {
	return s == CardStatusActive
}

// GuestCard is a guest's membership at one restaurant.
type GuestCard struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	RestaurantID      uuid.UUID  `json:"restaurant_id"`
	CurrentPoints     int64      `json:"current_points"`      // Equals the fold of the card's point log.
	TotalPointsEarned int64      `json:"total_points_earned"` // Sum of earning deltas, never decreases.
	LedgerVersion     int64      `json:"ledger_version"`      // Sequence of the newest point log entry.
	CurrentTierID     *uuid.UUID `json:"current_tier_id,omitempty"`
	TierOverride      bool       `json:"tier_override"` // Set by an admin; the evaluator never moves the card down from it.
	Status            CardStatus `json:"status"`
	LastUsedAt        *time.Time `json:"last_used_at,omitempty"`
	LastTierCheckAt   *time.Time `json:"last_tier_check_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TierAssignment is a tier change written to a card.
type TierAssignment struct {
	TierID    *uuid.UUID
	Override  bool
	CheckedAt time.Time
}
