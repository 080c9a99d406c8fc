package impl

import (
	"context"
	"log/slog"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
)

const validResult = "VALID"

// codeValidator checks scanned codes against the identifier table. It is shared
// by the code manager and the purchase flow so both see the same rules.
type codeValidator struct {
	clock       service.Clock
	fraudWindow time.Duration
	metrics     service.LoyaltyMetrics
}

// validate inspects the code and counts the scan. Rejections are results;
// only faults and missing secrets are errors.
func (v *codeValidator) validate(ctx context.Context, repos repository.RepositoryFactory, restaurant *entity.Restaurant, code string, logger *slog.Logger) (*usecase.ValidationResult, error) {
	identifier, rejected, err := v.inspect(ctx, repos, restaurant, code, logger)
	if err != nil || rejected != nil {
		return rejected, err
	}

	return v.recordUse(ctx, repos, restaurant, identifier, logger)
}

// inspect runs the read-only checks in order: not found, rotated, expired,
// signature. It takes no row locks, so callers may lock the card before
// recordUse writes the identifier.
func (v *codeValidator) inspect(ctx context.Context, repos repository.RepositoryFactory, restaurant *entity.Restaurant, code string, logger *slog.Logger) (*entity.CardIdentifier, *usecase.ValidationResult, error) {
	if !restaurant.HasSigningSecret() {
		return nil, nil, domainerrors.ErrSigningSecretNotConfigured
	}

	identifier, err := repos.CardIdentifierRepo().FindByCode(ctx, restaurant.ID, loyalty.NormalizeCode(code))
	if err != nil && !errors.Is(err, repository.ErrIdentifierNotFound) {
		return nil, nil, errors.Wrap(err, "failed to look up card code")
	}

	var reason entity.CodeRejectReason
	switch {
	case identifier == nil:
		reason = entity.RejectCodeNotFound
	case !identifier.IsActive:
		reason = entity.RejectCodeRotated
	case identifier.IsExpiredAt(v.clock.Now()):
		reason = entity.RejectCodeExpired
	case !loyalty.VerifyCodeSignature(restaurant.QRCodeSecret, identifier.Code, identifier.CreatedAt, identifier.Signature):
		reason = entity.RejectInvalidSignature
	default:
		return identifier, nil, nil
	}

	return nil, v.reject(restaurant, identifier, reason, logger), nil
}

// recordUse counts the scan and raises the duplicate-use warning when the
// previous scan happened inside the fraud window.
func (v *codeValidator) recordUse(ctx context.Context, repos repository.RepositoryFactory, restaurant *entity.Restaurant, identifier *entity.CardIdentifier, logger *slog.Logger) (*usecase.ValidationResult, error) {
	now := v.clock.Now()
	usage, err := repos.CardIdentifierRepo().RecordUsage(ctx, identifier.ID, now)
	if err != nil {
		// Rotated between lookup and increment.
		if errors.Is(err, repository.ErrIdentifierNotFound) {
			return v.reject(restaurant, identifier, entity.RejectCodeRotated, logger), nil
		}

		return nil, errors.Wrap(err, "failed to record card code usage")
	}

	warning := usage.PreviousUsedAt != nil && now.Sub(*usage.PreviousUsedAt) < v.fraudWindow
	if warning {
		logger.Warn("Card code scanned again inside fraud window",
			slog.Any("restaurantID", restaurant.ID),
			slog.Any("cardID", identifier.CardID),
			slog.Int64("usageCount", usage.Count))
		v.metrics.DuplicateScan(restaurant.ID.String())
	}
	v.metrics.CodeValidated(validResult)

	return &usecase.ValidationResult{
		Valid:               true,
		CardID:              &identifier.CardID,
		IdentifierID:        &identifier.ID,
		DuplicateUseWarning: warning,
		UsageCount:          usage.Count,
	}, nil
}

func (v *codeValidator) reject(restaurant *entity.Restaurant, identifier *entity.CardIdentifier, reason entity.CodeRejectReason, logger *slog.Logger) *usecase.ValidationResult {
	logger.Info("Card code rejected",
		slog.Any("restaurantID", restaurant.ID),
		slog.String("reason", string(reason)))
	v.metrics.CodeValidated(string(reason))

	result := &usecase.ValidationResult{Reason: reason}
	if identifier != nil {
		result.CardID = &identifier.CardID
		result.IdentifierID = &identifier.ID
	}

	return result
}
