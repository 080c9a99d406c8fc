// Package loyalty holds the pure rules of the program: point arithmetic, tier
// selection and card code construction. Nothing here touches storage.
package loyalty

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PointsQuote is the breakdown of points credited for one purchase.
type PointsQuote struct {
	BasePoints   int64
	Multiplier   decimal.Decimal
	PointsEarned int64
}

// ComputePoints credits floor(amount * pointsPerPurchase / 100) base points and
// applies the tier multiplier, rounding half away from zero. A non-positive
// multiplier counts as 1.
func ComputePoints(amount decimal.Decimal, pointsPerPurchase int, multiplier decimal.Decimal) PointsQuote {
	if !multiplier.IsPositive() {
		multiplier = decimal.NewFromInt(1)
	}

	base := amount.Mul(decimal.NewFromInt(int64(pointsPerPurchase))).Div(hundred).Floor()
	if base.IsNegative() {
		base = decimal.Zero
	}

	return PointsQuote{
		BasePoints:   base.IntPart(),
		Multiplier:   multiplier,
		PointsEarned: base.Mul(multiplier).Round(0).IntPart(),
	}
}

// Fold replays ledger deltas from a zero balance.
func Fold(deltas []int64) int64 {
	var balance int64
	for _, d := range deltas {
		balance += d
	}

	return balance
}
