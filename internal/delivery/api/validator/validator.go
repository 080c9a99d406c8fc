// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names and knows the
// loyalty-specific tags.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// loyaltycode rejects input that cannot be a card or claim code after normalisation.
	_ = v.RegisterValidation("loyaltycode", func(fl validator.FieldLevel) bool {
		code := loyalty.NormalizeCode(fl.Field().String())

		return code != "" && len(code) <= 32
	})

	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			return amount.String()
		}

		return nil
	}, decimal.Decimal{})

	// nonnegdecimal accepts decimal amounts of zero or more.
	_ = v.RegisterValidation("nonnegdecimal", func(fl validator.FieldLevel) bool {
		amount, err := decimal.NewFromString(fl.Field().String())

		return err == nil && !amount.IsNegative()
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Failures come back as ErrValidationFailed
// listing the offending fields.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Field()+" failed "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}
