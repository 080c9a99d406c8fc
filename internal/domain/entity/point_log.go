package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointReason classifies a ledger entry.
type PointReason string

const (
	PointReasonPurchase        PointReason = "PURCHASE"
	PointReasonPurchaseRefund  PointReason = "PURCHASE_REFUND"
	PointReasonRefund          PointReason = "REFUND"
	PointReasonRedemption      PointReason = "REDEMPTION"
	PointReasonBonus           PointReason = "BONUS"
	PointReasonAdminAdjustment PointReason = "ADMIN_ADJUSTMENT"
	PointReasonExpiredRefund   PointReason = "EXPIRED_REFUND"
)

// IsValid checks if the PointReason is a known value.
func (r PointReason) IsValid() bool {
	switch r {
	case PointReasonPurchase, PointReasonPurchaseRefund, PointReasonRefund, PointReasonRedemption,
		PointReasonBonus, PointReasonAdminAdjustment, PointReasonExpiredRefund:
		return true
	default:
		return false
	}
}

// IsManual reports whether the reason may be used for operator adjustments.
func (r PointReason) IsManual() bool {
	return r == PointReasonBonus || r == PointReasonAdminAdjustment
}

// CountsAsEarned reports whether a positive delta with this reason adds to a
// card's lifetime earnings. Refunds only hand back points earned before.
func (r PointReason) CountsAsEarned() bool {
	switch r {
	case PointReasonPurchase, PointReasonBonus, PointReasonAdminAdjustment:
		return true
	default:
		return false
	}
}

// PointLogEntry is one immutable row of a card's ledger. For consecutive entries
// of a card, BalanceBefore(n+1) == BalanceAfter(n).
type PointLogEntry struct {
	ID            uuid.UUID   `json:"id"`
	CardID        uuid.UUID   `json:"card_id"`
	Sequence      int64       `json:"sequence"`
	Delta         int64       `json:"delta"`
	Reason        PointReason `json:"reason"`
	BalanceBefore int64       `json:"balance_before"`
	BalanceAfter  int64       `json:"balance_after"`
	ReferenceID   *uuid.UUID  `json:"reference_id,omitempty"`
	Note          string      `json:"note,omitempty"`
	CreatedBy     *uuid.UUID  `json:"created_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// EarnedBy returns what the entry adds to lifetime earnings.
func (e *PointLogEntry) EarnedBy() int64 {
	if e.Delta > 0 && e.Reason.CountsAsEarned() {
		return e.Delta
	}

	return 0
}

// PointChange describes a ledger mutation to apply under the card lock.
type PointChange struct {
	CardID      uuid.UUID
	Delta       int64
	Reason      PointReason
	ReferenceID *uuid.UUID
	Note        string
	CreatedBy   *uuid.UUID
	// RequireNonNegative rejects the change when the resulting balance would drop below zero.
	RequireNonNegative bool
	// TouchLastUsed stamps the card's last_used_at with the entry time.
	TouchLastUsed bool
	At            time.Time
}
