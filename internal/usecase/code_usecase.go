// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// ValidationResult is the outcome of checking a scanned card code. An invalid
// code is a result, not an error.
type ValidationResult struct {
	Valid               bool
	CardID              *uuid.UUID
	IdentifierID        *uuid.UUID
	DuplicateUseWarning bool
	UsageCount          int64
	// Reason is for logs and metrics only; terminals get domainerrors.InvalidCodeMessage.
	Reason entity.CodeRejectReason
}

// CodeIdentifierUsecase manages the scannable codes of guest cards.
type CodeIdentifierUsecase interface {
	// GenerateCode issues a new signed code for the card, rotating out the active one.
	GenerateCode(ctx context.Context, cardID, restaurantID uuid.UUID) (*entity.CardIdentifier, error)

	// ValidateCode checks a scanned code and counts the use when it is accepted.
	ValidateCode(ctx context.Context, code string, restaurantID uuid.UUID) (*ValidationResult, error)

	// RotateAllCodes regenerates every active code of the restaurant and returns the number rotated.
	RotateAllCodes(ctx context.Context, restaurantID uuid.UUID) (int, error)

	// CleanupIdentifiers deletes inactive codes beyond the keepCount newest and returns the number deleted.
	CleanupIdentifiers(ctx context.Context, restaurantID uuid.UUID, keepCount int) (int, error)

	// GetActiveCode returns the card's current code.
	GetActiveCode(ctx context.Context, cardID uuid.UUID) (*entity.CardIdentifier, error)

	// RenderCodeQR returns the card's current code as a PNG QR image.
	RenderCodeQR(ctx context.Context, cardID uuid.UUID) ([]byte, error)
}
