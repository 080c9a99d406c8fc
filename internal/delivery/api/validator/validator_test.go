package validator

import (
	"testing"

	domainerrors "loyalty/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseBody struct {
	Code   string          `json:"code" validate:"required,loyaltycode"`
	Amount decimal.Decimal `json:"amount" validate:"nonnegdecimal"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&purchaseBody{Code: " abc123-def456 ", Amount: decimal.NewFromInt(12)}))

	err := v.Validate(&purchaseBody{Code: "   ", Amount: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	appErr, ok := err.(*domainerrors.BaseError)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "code failed loyaltycode")
	assert.Contains(t, appErr.Details(), "amount failed nonnegdecimal")
}
