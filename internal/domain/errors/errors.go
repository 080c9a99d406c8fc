package errors

import (
	"net/http"

	"loyalty/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// An error with a parent also matches the parent's kind under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	parent    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// newKindError creates an error that specializes parent.
func newKindError(parent *BaseError, httpCode int, errorCode, message string) *BaseError {
	err := NewBaseError(httpCode, errorCode, message, "")
	err.parent = parent

	return err
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors with the same business code, walking up the parent chain.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	for cur := e; cur != nil; cur = cur.parent {
		if cur.errorCode == t.errorCode {
			return true
		}
	}

	return false
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the top-level error this one specializes.
func (e *BaseError) Kind() *BaseError {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    e.parent,
	}
}

// Error kinds. Every business failure matches exactly one of these.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// ErrInvalidCode never carries the internal rejection reason.
	ErrInvalidCode = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_CODE",
		InvalidCodeMessage,
		"",
	)

	ErrCardState = NewBaseError(
		http.StatusForbidden,
		"CARD_STATE",
		"card is not active",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// InvalidCodeMessage is the only text terminals see for a rejected code.
const InvalidCodeMessage = "invalid code"

// Not found errors
var (
	ErrRestaurantNotFound  = newKindError(ErrNotFound, http.StatusNotFound, "RESTAURANT_NOT_FOUND", "restaurant not found")
	ErrCardNotFound        = newKindError(ErrNotFound, http.StatusNotFound, "CARD_NOT_FOUND", "card not found")
	ErrIdentifierNotFound  = newKindError(ErrNotFound, http.StatusNotFound, "IDENTIFIER_NOT_FOUND", "card has no active code")
	ErrTierNotFound        = newKindError(ErrNotFound, http.StatusNotFound, "TIER_NOT_FOUND", "tier not found")
	ErrRewardNotFound      = newKindError(ErrNotFound, http.StatusNotFound, "REWARD_NOT_FOUND", "reward not found")
	ErrRedemptionNotFound  = newKindError(ErrNotFound, http.StatusNotFound, "REDEMPTION_NOT_FOUND", "redemption not found")
	ErrTransactionNotFound = newKindError(ErrNotFound, http.StatusNotFound, "TRANSACTION_NOT_FOUND", "transaction not found")

	// ErrSigningSecretNotConfigured is returned when a restaurant has no code signing secret.
	ErrSigningSecretNotConfigured = newKindError(ErrNotFound, http.StatusNotFound, "SIGNING_SECRET_NOT_CONFIGURED", "restaurant has no code signing secret")
)

// Conflict errors
var (
	ErrDuplicateCode            = newKindError(ErrConflict, http.StatusConflict, "DUPLICATE_CODE", "could not allocate a unique code")
	ErrCardAlreadyExists        = newKindError(ErrConflict, http.StatusConflict, "CARD_ALREADY_EXISTS", "guest already holds a card at this restaurant")
	ErrAlreadyRefunded          = newKindError(ErrConflict, http.StatusConflict, "TRANSACTION_ALREADY_REVERSED", "transaction has already been refunded or cancelled")
	ErrTransactionNotReversible = newKindError(ErrConflict, http.StatusConflict, "TRANSACTION_NOT_REVERSIBLE", "only completed purchases can be reversed")
	ErrTierLevelTaken           = newKindError(ErrConflict, http.StatusConflict, "TIER_LEVEL_TAKEN", "a tier with this level already exists")
	ErrTierOrdering             = newKindError(ErrConflict, http.StatusConflict, "TIER_ORDERING", "tier thresholds must increase with level")
	ErrDefaultTierExists        = newKindError(ErrConflict, http.StatusConflict, "DEFAULT_TIER_EXISTS", "restaurant already has a default tier")
	ErrTierInUse                = newKindError(ErrConflict, http.StatusConflict, "TIER_IN_USE", "tier still has cards assigned")
	ErrRewardUnavailable        = newKindError(ErrConflict, http.StatusConflict, "REWARD_UNAVAILABLE", "reward is not available")
	ErrRewardSoldOut            = newKindError(ErrConflict, http.StatusConflict, "REWARD_SOLD_OUT", "reward is sold out")
	ErrDuplicateRedemption      = newKindError(ErrConflict, http.StatusConflict, "DUPLICATE_REDEMPTION", "an unused redemption of this reward already exists")
	ErrRedemptionExpired        = newKindError(ErrConflict, http.StatusConflict, "REDEMPTION_EXPIRED", "redemption has expired")
	ErrRedemptionClosed         = newKindError(ErrConflict, http.StatusConflict, "REDEMPTION_CLOSED", "redemption is no longer pending")

	ErrInsufficientPoints = newKindError(ErrConflict, http.StatusConflict, "INSUFFICIENT_POINTS", "not enough points")
	ErrTierIneligible     = newKindError(ErrConflict, http.StatusForbidden, "TIER_INELIGIBLE", "card tier is too low for this reward")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
