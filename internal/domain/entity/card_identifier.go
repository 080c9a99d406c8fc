package entity

import (
	"time"

	"github.com/google/uuid"
)

// CardIdentifier is a scannable, signed code bound to one card. A card has at most
// one active identifier; rotation deactivates the previous one.
type CardIdentifier struct {
	ID           uuid.UUID  `json:"id"`
	CardID       uuid.UUID  `json:"card_id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Code         string     `json:"code"`
	Signature    string     `json:"-"`
	CodeVersion  int        `json:"code_version"`
	IsActive     bool       `json:"is_active"`
	UsageCount   int64      `json:"usage_count"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	RotatedAt    *time.Time `json:"rotated_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IsExpiredAt reports whether the identifier's expiry has passed at the given instant.
func (ci *CardIdentifier) IsExpiredAt(now time.Time) bool {
	return ci.ExpiresAt != nil && !now.Before(*ci.ExpiresAt)
}

// CodeRejectReason names why a presented code was not accepted.
type CodeRejectReason string

const (
	RejectCodeNotFound     CodeRejectReason = "CODE_NOT_FOUND"
	RejectCodeRotated      CodeRejectReason = "CODE_ROTATED"
	RejectCodeExpired      CodeRejectReason = "CODE_EXPIRED"
	RejectInvalidSignature CodeRejectReason = "INVALID_SIGNATURE"
)
