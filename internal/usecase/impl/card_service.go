package impl

import (
	"context"
	"fmt"
	"log/slog"

	"loyalty/config"
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

type cardService struct {
	txManager  repository.TransactionManager
	cardRepo   repository.GuestCardRepository
	ledgerRepo repository.LedgerRepository
	issuer     *codeIssuer
	evaluator  *tierEvaluator
	events     *eventEmitter
	metrics    service.LoyaltyMetrics
	clock      service.Clock
	logger     *slog.Logger
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CardRepo       repository.GuestCardRepository
	LedgerRepo     repository.LedgerRepository
	EventPublisher service.EventPublisher
	Metrics        service.LoyaltyMetrics
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCardService creates a new card service instance
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	cfg := loyaltyConfig(params.Config)

	return &cardService{
		txManager:  params.TxManager,
		cardRepo:   params.CardRepo,
		ledgerRepo: params.LedgerRepo,
		issuer:     newCodeIssuer(params.Clock, cfg, params.Logger),
		evaluator:  &tierEvaluator{clock: params.Clock, metrics: params.Metrics},
		events:     newEventEmitter(params.EventPublisher, cfg.PublishTimeout, params.Clock, params.Logger),
		metrics:    params.Metrics,
		clock:      params.Clock,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCard opens a membership with zero points, the default tier and a first code.
func (srv *cardService) IssueCard(ctx context.Context, userID, restaurantID uuid.UUID) (*usecase.IssueCardOutput, error) {
	var output *usecase.IssueCardOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurant, err := loadSigningRestaurant(ctx, repoFactory, restaurantID)
		if err != nil {
			return err
		}
		if !restaurant.IsActive {
			return domainerrors.ErrRestaurantNotFound.WithDetails("restaurant is inactive")
		}

		now := srv.clock.Now()
		card := &entity.GuestCard{
			ID:           uuid.New(),
			UserID:       userID,
			RestaurantID: restaurantID,
			Status:       entity.CardStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		defaultTier, err := repoFactory.TierRepo().FindDefault(ctx, restaurantID)
		switch {
		case err == nil:
			card.CurrentTierID = &defaultTier.ID
			card.LastTierCheckAt = &now
		case !errors.Is(err, repository.ErrTierNotFound):
			return errors.Wrap(err, "failed to find default tier")
		}

		if err := repoFactory.GuestCardRepo().Create(ctx, card); err != nil {
			return mapRepoError(err, "failed to create guest card")
		}

		identifier, err := srv.issuer.issue(ctx, repoFactory, restaurant, card.ID)
		if err != nil {
			return err
		}

		output = &usecase.IssueCardOutput{Card: card, Identifier: identifier}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to issue card", slog.Any("userID", userID), slog.Any("restaurantID", restaurantID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.CodeGenerated(restaurantID.String())
	srv.log(ctx).Info("Card issued", slog.Any("cardID", output.Card.ID), slog.Any("userID", userID))

	return output, nil
}

// GetCard returns a card with its current balance.
func (srv *cardService) GetCard(ctx context.Context, cardID uuid.UUID) (*entity.GuestCard, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find guest card")
	}

	return card, nil
}

// UpdateCardStatus suspends, blocks or reactivates a card.
func (srv *cardService) UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status entity.CardStatus) (*entity.GuestCard, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown card status " + string(status))
	}

	var card *entity.GuestCard
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		card, err = repoFactory.GuestCardRepo().LockByID(ctx, cardID)
		if err != nil {
			return mapRepoError(err, "failed to lock guest card")
		}

		if err := repoFactory.GuestCardRepo().UpdateStatus(ctx, cardID, status); err != nil {
			return mapRepoError(err, "failed to update guest card status")
		}
		card.Status = status

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Card status changed", slog.Any("cardID", cardID), slog.String("status", string(status)))

	return card, nil
}

// AdjustPoints books an operator credit or debit. The result may not go below zero.
func (srv *cardService) AdjustPoints(ctx context.Context, input usecase.AdjustPointsInput) (*usecase.LedgerChangeOutput, error) {
	if !input.Reason.IsManual() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reason must be BONUS or ADMIN_ADJUSTMENT")
	}
	if input.Delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delta must be non-zero")
	}

	var (
		output *usecase.LedgerChangeOutput
		change *tierChange
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledger, err := repoFactory.LedgerRepo().ApplyChange(ctx, entity.PointChange{
			CardID:             input.CardID,
			Delta:              input.Delta,
			Reason:             input.Reason,
			Note:               input.Note,
			CreatedBy:          &input.AdminID,
			RequireNonNegative: true,
			At:                 srv.clock.Now(),
		})
		if err != nil {
			return mapRepoError(err, "failed to adjust points")
		}

		change, err = srv.evaluator.evaluate(ctx, repoFactory, ledger.Card, ledger.Card.CurrentPoints)
		if err != nil {
			return err
		}

		output = &usecase.LedgerChangeOutput{Entry: ledger.Entry, Card: ledger.Card}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Point adjustment rejected", slog.Any("cardID", input.CardID), slog.Int64("delta", input.Delta), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.LedgerChange(string(input.Reason), input.Delta)
	if change.Upgraded() {
		srv.events.tierUpgraded(ctx, output.Card, change)
	}
	srv.log(ctx).Info("Points adjusted",
		slog.Any("cardID", input.CardID),
		slog.Int64("delta", input.Delta),
		slog.String("reason", string(input.Reason)),
		slog.Any("adminID", input.AdminID))

	return output, nil
}

// GetLedger returns the card's point log in sequence order.
func (srv *cardService) GetLedger(ctx context.Context, cardID uuid.UUID) ([]*entity.PointLogEntry, error) {
	if _, err := srv.cardRepo.FindByID(ctx, cardID); err != nil {
		return nil, mapRepoError(err, "failed to find guest card")
	}

	entries, err := srv.ledgerRepo.ListByCard(ctx, cardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list point log")
	}

	return entries, nil
}

// ReconcileCard replays the chain from zero and checks it against the card.
func (srv *cardService) ReconcileCard(ctx context.Context, cardID uuid.UUID) (*usecase.LedgerReport, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find guest card")
	}

	entries, err := srv.ledgerRepo.ListByCard(ctx, cardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list point log")
	}

	report := &usecase.LedgerReport{
		CardID:        cardID,
		EntryCount:    len(entries),
		CurrentPoints: card.CurrentPoints,
	}

	deltas := make([]int64, 0, len(entries))
	var balance, earned int64
	for i, entry := range entries {
		if want := int64(i + 1); entry.Sequence != want {
			report.Problems = append(report.Problems, fmt.Sprintf("entry %s has sequence %d, expected %d", entry.ID, entry.Sequence, want))
		}
		if entry.BalanceBefore != balance {
			report.Problems = append(report.Problems, fmt.Sprintf("sequence %d starts at %d, previous balance was %d", entry.Sequence, entry.BalanceBefore, balance))
		}
		if entry.BalanceAfter != entry.BalanceBefore+entry.Delta {
			report.Problems = append(report.Problems, fmt.Sprintf("sequence %d: %d %+d != %d", entry.Sequence, entry.BalanceBefore, entry.Delta, entry.BalanceAfter))
		}

		balance = entry.BalanceAfter
		deltas = append(deltas, entry.Delta)
		earned += entry.EarnedBy()
	}

	report.ReplayedBalance = loyalty.Fold(deltas)
	if report.ReplayedBalance != card.CurrentPoints {
		report.Problems = append(report.Problems, fmt.Sprintf("replayed balance %d differs from current points %d", report.ReplayedBalance, card.CurrentPoints))
	}
	if earned != card.TotalPointsEarned {
		report.Problems = append(report.Problems, fmt.Sprintf("replayed earnings %d differ from total points earned %d", earned, card.TotalPointsEarned))
	}
	if int64(len(entries)) != card.LedgerVersion {
		report.Problems = append(report.Problems, fmt.Sprintf("card ledger version %d but %d entries", card.LedgerVersion, len(entries)))
	}
	report.Consistent = len(report.Problems) == 0

	if !report.Consistent {
		srv.log(ctx).Error("Ledger inconsistency detected", slog.Any("cardID", cardID), slog.Any("problems", report.Problems))
	}

	return report, nil
}
