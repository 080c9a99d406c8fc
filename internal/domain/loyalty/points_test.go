package loyalty

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		ppp        int
		multiplier string
		wantBase   int64
		wantEarned int64
	}{
		{name: "no tier", amount: "50.00", ppp: 10, multiplier: "1", wantBase: 5, wantEarned: 5},
		{name: "silver multiplier rounds half up", amount: "50.00", ppp: 10, multiplier: "1.5", wantBase: 5, wantEarned: 8},
		{name: "base floors fractional points", amount: "19.99", ppp: 10, multiplier: "1", wantBase: 1, wantEarned: 1},
		{name: "gold multiplier", amount: "120.00", ppp: 5, multiplier: "2", wantBase: 6, wantEarned: 12},
		{name: "zero amount", amount: "0", ppp: 10, multiplier: "3", wantBase: 0, wantEarned: 0},
		{name: "zero multiplier treated as one", amount: "100", ppp: 10, multiplier: "0", wantBase: 10, wantEarned: 10},
		{name: "multiplier rounds down below half", amount: "30", ppp: 10, multiplier: "1.1", wantBase: 3, wantEarned: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := ComputePoints(decimal.RequireFromString(tt.amount), tt.ppp, decimal.RequireFromString(tt.multiplier))

			assert.Equal(t, tt.wantBase, quote.BasePoints)
			assert.Equal(t, tt.wantEarned, quote.PointsEarned)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, int64(0), Fold(nil))
	assert.Equal(t, int64(-3), Fold([]int64{5, 3, -8, -3}))
}
