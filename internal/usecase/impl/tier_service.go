package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type tierService struct {
	txManager repository.TransactionManager
	tierRepo  repository.TierRepository
	evaluator *tierEvaluator
	metrics   service.LoyaltyMetrics
	clock     service.Clock
	logger    *slog.Logger
}

// TierServiceParams holds dependencies for TierService, injected by Fx.
type TierServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TierRepo  repository.TierRepository
	Metrics   service.LoyaltyMetrics
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewTierService creates a new tier service instance
func NewTierService(params TierServiceParams) usecase.TierUsecase {
	return &tierService{
		txManager: params.TxManager,
		tierRepo:  params.TierRepo,
		evaluator: &tierEvaluator{clock: params.Clock, metrics: params.Metrics},
		metrics:   params.Metrics,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTier places a new tier on the restaurant's ladder. The first tier of a
// restaurant becomes its default.
func (srv *tierService) CreateTier(ctx context.Context, input usecase.CreateTierInput) (*entity.LoyaltyTier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Level < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("level must be non-negative")
	}

	multiplier := input.PointsMultiplier
	if multiplier.IsZero() {
		multiplier = loyalty.MultiplierOf(nil)
	}

	now := srv.clock.Now()
	tier := &entity.LoyaltyTier{
		ID:                uuid.New(),
		RestaurantID:      input.RestaurantID,
		Name:              name,
		Level:             input.Level,
		MinPointsRequired: input.MinPointsRequired,
		PointsMultiplier:  multiplier,
		IsDefault:         input.IsDefault,
		IsActive:          true,
		Perks:             input.Perks,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.RestaurantRepo().FindByID(ctx, input.RestaurantID); err != nil {
			return mapRepoError(err, "failed to find restaurant")
		}

		existing, err := repoFactory.TierRepo().ListByRestaurant(ctx, input.RestaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to list tiers")
		}
		if err := loyalty.ValidateTierPlacement(existing, tier); err != nil {
			return err
		}

		switch current := loyalty.DefaultTier(existing); {
		case current != nil && tier.IsDefault:
			return domainerrors.ErrDefaultTierExists.WithDetails("default tier is " + current.Name)
		case len(existing) == 0:
			tier.IsDefault = true
		}

		return mapRepoError(repoFactory.TierRepo().Create(ctx, tier), "failed to create tier")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create tier", slog.Any("restaurantID", input.RestaurantID), slog.Int("level", input.Level), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Tier created", slog.Any("tierID", tier.ID), slog.String("name", tier.Name), slog.Int("level", tier.Level))

	return tier, nil
}

// DeleteTier removes a tier no card sits in. The default goes last.
func (srv *tierService) DeleteTier(ctx context.Context, tierID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tier, err := repoFactory.TierRepo().FindByID(ctx, tierID)
		if err != nil {
			return mapRepoError(err, "failed to find tier")
		}

		count, err := repoFactory.GuestCardRepo().CountByTier(ctx, tierID)
		if err != nil {
			return errors.Wrap(err, "failed to count cards in tier")
		}
		if count > 0 {
			return domainerrors.ErrTierInUse
		}

		if tier.IsDefault {
			siblings, err := repoFactory.TierRepo().ListByRestaurant(ctx, tier.RestaurantID)
			if err != nil {
				return errors.Wrap(err, "failed to list tiers")
			}
			if len(siblings) > 1 {
				return domainerrors.ErrTierInUse.WithDetails("the default tier can only be deleted last")
			}
		}

		return mapRepoError(repoFactory.TierRepo().Delete(ctx, tierID), "failed to delete tier")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete tier", slog.Any("tierID", tierID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Tier deleted", slog.Any("tierID", tierID))

	return nil
}

// ListTiers returns the restaurant's ladder ordered by level.
func (srv *tierService) ListTiers(ctx context.Context, restaurantID uuid.UUID) ([]*entity.LoyaltyTier, error) {
	tiers, err := srv.tierRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	return tiers, nil
}

// CheckAndUpgrade assigns the tier the given points qualify for.
func (srv *tierService) CheckAndUpgrade(ctx context.Context, cardID uuid.UUID, currentPoints int64) (*entity.GuestCard, error) {
	var card *entity.GuestCard
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		card, err = repoFactory.GuestCardRepo().LockByID(ctx, cardID)
		if err != nil {
			return mapRepoError(err, "failed to lock guest card")
		}

		change, err := srv.evaluator.evaluate(ctx, repoFactory, card, currentPoints)
		if err != nil {
			return err
		}
		if change != nil {
			srv.log(ctx).Info("Card tier changed",
				slog.Any("cardID", cardID),
				slog.String("from", tierName(change.From)),
				slog.String("to", change.To.Name))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// ManualUpgrade moves the card to any tier of its restaurant and always records
// history. The chosen tier holds until the card's points earn a higher one.
func (srv *tierService) ManualUpgrade(ctx context.Context, input usecase.ManualUpgradeInput) (*entity.GuestCard, error) {
	var card *entity.GuestCard
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		card, err = repoFactory.GuestCardRepo().LockByID(ctx, input.CardID)
		if err != nil {
			return mapRepoError(err, "failed to lock guest card")
		}

		tier, err := repoFactory.TierRepo().FindByID(ctx, input.NewTierID)
		if err != nil {
			return mapRepoError(err, "failed to find tier")
		}
		if tier.RestaurantID != card.RestaurantID {
			return domainerrors.ErrTierNotFound
		}

		now := srv.clock.Now()
		assignment := entity.TierAssignment{TierID: &tier.ID, Override: true, CheckedAt: now}
		if err := repoFactory.GuestCardRepo().UpdateTier(ctx, card.ID, assignment); err != nil {
			return mapRepoError(err, "failed to update card tier")
		}

		history := &entity.TierUpgradeHistory{
			CardID:      card.ID,
			FromTierID:  card.CurrentTierID,
			ToTierID:    tier.ID,
			TriggerType: entity.TierTriggerAdminUpgrade,
			Reason:      input.Reason,
			UpgradedBy:  &input.AdminID,
			UpgradedAt:  now,
		}
		if err := repoFactory.TierRepo().CreateHistory(ctx, history); err != nil {
			return errors.Wrap(err, "failed to record tier history")
		}

		card.CurrentTierID = &tier.ID
		card.TierOverride = true
		card.LastTierCheckAt = &now

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Manual tier change failed", slog.Any("cardID", input.CardID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.TierChanged(string(entity.TierTriggerAdminUpgrade))
	srv.log(ctx).Info("Card tier set by admin",
		slog.Any("cardID", input.CardID),
		slog.Any("tierID", input.NewTierID),
		slog.Any("adminID", input.AdminID))

	return card, nil
}

// GetTierHistory returns the card's tier changes, newest first.
func (srv *tierService) GetTierHistory(ctx context.Context, cardID uuid.UUID) ([]*entity.TierUpgradeHistory, error) {
	history, err := srv.tierRepo.ListHistoryByCard(ctx, cardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tier history")
	}

	return history, nil
}
