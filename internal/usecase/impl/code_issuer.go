package impl

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// codeIssuer mints signed card codes. It is shared by code rotation and card issuance.
type codeIssuer struct {
	clock  service.Clock
	config *config.LoyaltyConfig
	random io.Reader
	logger *slog.Logger
}

func newCodeIssuer(clock service.Clock, cfg *config.LoyaltyConfig, logger *slog.Logger) *codeIssuer {
	return &codeIssuer{
		clock:  clock,
		config: cfg,
		random: rand.Reader,
		logger: logger,
	}
}

// issue rotates out the card's active code and inserts a new one, retrying
// on code collisions. The caller holds the card lock.
func (ci *codeIssuer) issue(ctx context.Context, repoFactory repository.RepositoryFactory, restaurant *entity.Restaurant, cardID uuid.UUID) (*entity.CardIdentifier, error) {
	now := ci.clock.Now()
	if _, err := repoFactory.CardIdentifierRepo().DeactivateActiveForCard(ctx, cardID, now); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate active card code")
	}

	for attempt := 1; attempt <= ci.config.MaxGenerateAttempts; attempt++ {
		code, err := loyalty.NewCardCode(ci.random)
		if err != nil {
			return nil, err
		}

		identifier := &entity.CardIdentifier{
			ID:           uuid.New(),
			CardID:       cardID,
			RestaurantID: restaurant.ID,
			Code:         code,
			Signature:    loyalty.SignCode(restaurant.QRCodeSecret, code, now),
			CodeVersion:  restaurant.QRCodeVersion,
			IsActive:     true,
			CreatedAt:    now,
		}
		if ci.config.CodeTTL > 0 {
			expiresAt := now.Add(ci.config.CodeTTL)
			identifier.ExpiresAt = &expiresAt
		}

		err = repoFactory.CardIdentifierRepo().Create(ctx, identifier)
		if err == nil {
			return identifier, nil
		}
		if !errors.Is(err, repository.ErrDuplicateIdentifier) {
			return nil, errors.Wrap(err, "failed to create card code")
		}

		deliverycontext.GetLoggerOrDefault(ctx, ci.logger).Debug("Card code collision, retrying", slog.Int("attempt", attempt))
	}

	return nil, domainerrors.ErrDuplicateCode
}
