package impl

import (
	"context"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type transactionService struct {
	txManager repository.TransactionManager
	txnRepo   repository.TransactionRepository
	validator *codeValidator
	evaluator *tierEvaluator
	events    *eventEmitter
	metrics   service.LoyaltyMetrics
	clock     service.Clock
	logger    *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	TxnRepo        repository.TransactionRepository
	EventPublisher service.EventPublisher
	Metrics        service.LoyaltyMetrics
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTransactionService creates a new transaction service instance
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	cfg := loyaltyConfig(params.Config)

	return &transactionService{
		txManager: params.TxManager,
		txnRepo:   params.TxnRepo,
		validator: &codeValidator{
			clock:       params.Clock,
			fraudWindow: cfg.FraudWindow,
			metrics:     params.Metrics,
		},
		evaluator: &tierEvaluator{clock: params.Clock, metrics: params.Metrics},
		events:    newEventEmitter(params.EventPublisher, cfg.PublishTimeout, params.Clock, params.Logger),
		metrics:   params.Metrics,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// purchaseOutcome carries what the committed purchase needs to announce.
// A refused scan commits its FAILED row and reports rejection instead.
type purchaseOutcome struct {
	result        *usecase.PurchaseResult
	card          *entity.GuestCard
	tierChange    *tierChange
	crossedReward []*entity.Reward
	rejection     error
}

// RecordPurchase validates the scan, credits the card and re-evaluates its tier
// in one unit of work. Events go out after commit.
func (srv *transactionService) RecordPurchase(ctx context.Context, input usecase.PurchaseInput) (*usecase.PurchaseResult, error) {
	if input.Amount.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be non-negative")
	}
	if loyalty.NormalizeCode(input.ScannedCode) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scannedCode is required")
	}

	srv.log(ctx).Debug("Recording purchase", slog.Any("restaurantID", input.RestaurantID), slog.String("amount", input.Amount.String()))

	var outcome *purchaseOutcome
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		outcome, err = srv.recordPurchase(ctx, repoFactory, input)

		return err
	})
	if err == nil && outcome.rejection != nil {
		err = outcome.rejection
	}
	if err != nil {
		srv.log(ctx).Warn("Purchase rejected", slog.Any("restaurantID", input.RestaurantID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.LedgerChange(string(entity.PointReasonPurchase), outcome.result.PointsEarned)

	srv.events.pointsEarned(ctx, outcome.card, outcome.result.TransactionID, outcome.result.PointsEarned)
	if outcome.tierChange.Upgraded() {
		srv.events.tierUpgraded(ctx, outcome.card, outcome.tierChange)
	}
	srv.events.rewardsAvailable(ctx, outcome.card, outcome.crossedReward)

	srv.log(ctx).Info("Purchase recorded",
		slog.Any("transactionID", outcome.result.TransactionID),
		slog.Any("cardID", outcome.card.ID),
		slog.Int64("pointsEarned", outcome.result.PointsEarned),
		slog.Bool("duplicateUseWarning", outcome.result.DuplicateUseWarning))

	return outcome.result, nil
}

func (srv *transactionService) recordPurchase(ctx context.Context, repoFactory repository.RepositoryFactory, input usecase.PurchaseInput) (*purchaseOutcome, error) {
	restaurant, err := loadSigningRestaurant(ctx, repoFactory, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	identifier, rejected, err := srv.validator.inspect(ctx, repoFactory, restaurant, input.ScannedCode, srv.log(ctx))
	if err != nil {
		return nil, err
	}
	if rejected != nil {
		return nil, domainerrors.ErrInvalidCode
	}

	// Card before identifier, the same order code rotation locks them in.
	card, err := repoFactory.GuestCardRepo().LockByID(ctx, identifier.CardID)
	if err != nil {
		return nil, mapRepoError(err, "failed to lock guest card")
	}

	validation, err := srv.validator.recordUse(ctx, repoFactory, restaurant, identifier, srv.log(ctx))
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return nil, domainerrors.ErrInvalidCode
	}
	now := srv.clock.Now()
	if !card.Status.CanTransact() {
		rejection := domainerrors.ErrCardState.WithDetails("card is " + string(card.Status))
		failed := &entity.Transaction{
			ID:               uuid.New(),
			CardID:           card.ID,
			RestaurantID:     restaurant.ID,
			StaffID:          input.StaffID,
			Type:             entity.TransactionTypePurchase,
			Amount:           input.Amount,
			Multiplier:       decimal.NewFromInt(1),
			Status:           entity.TransactionStatusFailed,
			FlaggedForReview: validation.DuplicateUseWarning,
			Reason:           rejection.Details(),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := repoFactory.TransactionRepo().Create(ctx, failed); err != nil {
			return nil, errors.Wrap(err, "failed to record refused purchase")
		}

		return &purchaseOutcome{card: card, rejection: rejection}, nil
	}

	tier, err := currentTier(ctx, repoFactory, card)
	if err != nil {
		return nil, err
	}
	quote := loyalty.ComputePoints(input.Amount, restaurant.PointsPerPurchase, loyalty.MultiplierOf(tier))

	txn := &entity.Transaction{
		ID:               uuid.New(),
		CardID:           card.ID,
		RestaurantID:     restaurant.ID,
		StaffID:          input.StaffID,
		Type:             entity.TransactionTypePurchase,
		Amount:           input.Amount,
		PointsEarned:     quote.PointsEarned,
		BasePoints:       quote.BasePoints,
		Multiplier:       quote.Multiplier,
		Status:           entity.TransactionStatusCompleted,
		FlaggedForReview: validation.DuplicateUseWarning,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := repoFactory.TransactionRepo().Create(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to create purchase transaction")
	}

	ledger, err := repoFactory.LedgerRepo().ApplyChange(ctx, entity.PointChange{
		CardID:        card.ID,
		Delta:         quote.PointsEarned,
		Reason:        entity.PointReasonPurchase,
		ReferenceID:   &txn.ID,
		CreatedBy:     input.StaffID,
		TouchLastUsed: true,
		At:            now,
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to credit purchase points")
	}

	updated := ledger.Card
	change, err := srv.evaluator.evaluate(ctx, repoFactory, updated, updated.CurrentPoints)
	if err != nil {
		return nil, err
	}
	if change != nil {
		tier = change.To
	}

	crossed, err := repoFactory.RewardRepo().ListCrossedThreshold(ctx, restaurant.ID, ledger.Entry.BalanceBefore, ledger.Entry.BalanceAfter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unlocked rewards")
	}

	return &purchaseOutcome{
		result: &usecase.PurchaseResult{
			TransactionID:       txn.ID,
			CardID:              card.ID,
			BasePoints:          quote.BasePoints,
			PointsEarned:        quote.PointsEarned,
			NewBalance:          updated.CurrentPoints,
			TierName:            tierName(tier),
			DuplicateUseWarning: validation.DuplicateUseWarning,
		},
		card:          updated,
		tierChange:    change,
		crossedReward: crossed,
	}, nil
}

// ProcessRefund books a REFUND row against a completed purchase and debits its points.
// The original row keeps its COMPLETED status.
func (srv *transactionService) ProcessRefund(ctx context.Context, input usecase.RefundInput) (*usecase.ReversalResult, error) {
	var result *usecase.ReversalResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		original, err := srv.lockReversible(ctx, repoFactory, input.TransactionID)
		if err != nil {
			return err
		}

		now := srv.clock.Now()
		refund := &entity.Transaction{
			ID:                     uuid.New(),
			CardID:                 original.CardID,
			RestaurantID:           original.RestaurantID,
			StaffID:                input.StaffID,
			Type:                   entity.TransactionTypeRefund,
			Amount:                 original.Amount.Neg(),
			PointsEarned:           -original.PointsEarned,
			BasePoints:             -original.BasePoints,
			Multiplier:             original.Multiplier,
			Status:                 entity.TransactionStatusCompleted,
			ReferenceTransactionID: &original.ID,
			Reason:                 input.Reason,
			CreatedAt:              now,
			UpdatedAt:              now,
		}
		if err := repoFactory.TransactionRepo().Create(ctx, refund); err != nil {
			return mapRepoError(err, "failed to create refund transaction")
		}

		result, err = srv.reverse(ctx, repoFactory, original, &refund.ID, input.Reason, input.StaffID)
		if err != nil {
			return err
		}
		result.RefundTransactionID = &refund.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refund rejected", slog.Any("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.LedgerChange(string(entity.PointReasonPurchaseRefund), -result.PointsReversed)
	srv.log(ctx).Info("Purchase refunded", slog.Any("transactionID", input.TransactionID), slog.Int64("pointsReversed", result.PointsReversed))

	return result, nil
}

// CancelTransaction voids a completed purchase in place with the same compensating debit.
func (srv *transactionService) CancelTransaction(ctx context.Context, input usecase.CancelInput) (*usecase.ReversalResult, error) {
	result, err := srv.voidInPlace(ctx, input.TransactionID, entity.TransactionStatusCancelled, input.Reason, input.StaffID)
	if err != nil {
		srv.log(ctx).Warn("Cancellation rejected", slog.Any("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Purchase cancelled", slog.Any("transactionID", input.TransactionID), slog.Int64("pointsReversed", result.PointsReversed))

	return result, nil
}

// DisputeTransaction marks a completed purchase as contested and debits its points
// until the dispute is settled outside the ledger.
func (srv *transactionService) DisputeTransaction(ctx context.Context, input usecase.DisputeInput) (*usecase.ReversalResult, error) {
	result, err := srv.voidInPlace(ctx, input.TransactionID, entity.TransactionStatusDisputed, input.Reason, input.StaffID)
	if err != nil {
		srv.log(ctx).Warn("Dispute rejected", slog.Any("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Purchase disputed", slog.Any("transactionID", input.TransactionID), slog.Int64("pointsReversed", result.PointsReversed))

	return result, nil
}

// voidInPlace moves the purchase row to status and books the compensating entry.
func (srv *transactionService) voidInPlace(ctx context.Context, transactionID uuid.UUID, status entity.TransactionStatus, reason string, staffID *uuid.UUID) (*usecase.ReversalResult, error) {
	var result *usecase.ReversalResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		original, err := srv.lockReversible(ctx, repoFactory, transactionID)
		if err != nil {
			return err
		}

		if err := repoFactory.TransactionRepo().UpdateStatus(ctx, original.ID, status); err != nil {
			return mapRepoError(err, "failed to void transaction")
		}

		result, err = srv.reverse(ctx, repoFactory, original, &original.ID, reason, staffID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.LedgerChange(string(entity.PointReasonPurchaseRefund), -result.PointsReversed)

	return result, nil
}

// lockReversible locks a completed purchase that has not been reversed yet.
func (srv *transactionService) lockReversible(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) (*entity.Transaction, error) {
	original, err := repoFactory.TransactionRepo().LockByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to lock transaction")
	}
	if original.Type != entity.TransactionTypePurchase {
		return nil, domainerrors.ErrTransactionNotReversible
	}

	switch {
	case original.Status == entity.TransactionStatusCompleted:
	case original.Status.IsVoided():
		return nil, domainerrors.ErrAlreadyRefunded
	default:
		return nil, domainerrors.ErrTransactionNotReversible
	}

	_, err = repoFactory.TransactionRepo().FindReversalOf(ctx, original.ID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrAlreadyRefunded
	case !errors.Is(err, repository.ErrTransactionNotFound):
		return nil, errors.Wrap(err, "failed to look up refund")
	}

	return original, nil
}

// reverse debits the purchase's points and re-evaluates the tier. The balance may go negative.
func (srv *transactionService) reverse(ctx context.Context, repoFactory repository.RepositoryFactory, original *entity.Transaction, referenceID *uuid.UUID, reason string, staffID *uuid.UUID) (*usecase.ReversalResult, error) {
	ledger, err := repoFactory.LedgerRepo().ApplyChange(ctx, entity.PointChange{
		CardID:      original.CardID,
		Delta:       -original.PointsEarned,
		Reason:      entity.PointReasonPurchaseRefund,
		ReferenceID: referenceID,
		Note:        reason,
		CreatedBy:   staffID,
		At:          srv.clock.Now(),
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to debit refunded points")
	}

	change, err := srv.evaluator.evaluate(ctx, repoFactory, ledger.Card, ledger.Card.CurrentPoints)
	if err != nil {
		return nil, err
	}

	var tier *entity.LoyaltyTier
	if change != nil {
		tier = change.To
	} else if tier, err = currentTier(ctx, repoFactory, ledger.Card); err != nil {
		return nil, err
	}

	return &usecase.ReversalResult{
		OriginalTransactionID: original.ID,
		PointsReversed:        original.PointsEarned,
		NewBalance:            ledger.Card.CurrentPoints,
		TierName:              tierName(tier),
	}, nil
}

// GetTransaction returns a purchase or refund row.
func (srv *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := srv.txnRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to find transaction")
	}

	return txn, nil
}
