package impl

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"strings"
	"time"

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

const expireBatchSize = 200

type redemptionService struct {
	txManager  repository.TransactionManager
	rewardRepo repository.RewardRepository
	events     *eventEmitter
	metrics    service.LoyaltyMetrics
	clock      service.Clock
	config     *config.LoyaltyConfig
	random     io.Reader
	logger     *slog.Logger
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RewardRepo     repository.RewardRepository
	EventPublisher service.EventPublisher
	Metrics        service.LoyaltyMetrics
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRedemptionService creates a new redemption service instance
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	cfg := loyaltyConfig(params.Config)

	return &redemptionService{
		txManager:  params.TxManager,
		rewardRepo: params.RewardRepo,
		events:     newEventEmitter(params.EventPublisher, cfg.PublishTimeout, params.Clock, params.Logger),
		metrics:    params.Metrics,
		clock:      params.Clock,
		config:     cfg,
		random:     rand.Reader,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReward adds a reward to the restaurant's catalogue.
func (srv *redemptionService) CreateReward(ctx context.Context, input usecase.CreateRewardInput) (*entity.Reward, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.PointsRequired <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("pointsRequired must be positive")
	case input.Quantity != nil && *input.Quantity < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be non-negative")
	case input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom):
		return nil, domainerrors.ErrValidationFailed.WithDetails("validUntil must not precede validFrom")
	}

	now := srv.clock.Now()
	reward := &entity.Reward{
		ID:             uuid.New(),
		RestaurantID:   input.RestaurantID,
		Name:           name,
		Description:    input.Description,
		PointsRequired: input.PointsRequired,
		Quantity:       input.Quantity,
		MinTierLevel:   input.MinTierLevel,
		IsActive:       true,
		ValidFrom:      input.ValidFrom,
		ValidUntil:     input.ValidUntil,
		RedeemDeadline: input.RedeemDeadline,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.RestaurantRepo().FindByID(ctx, input.RestaurantID); err != nil {
			return mapRepoError(err, "failed to find restaurant")
		}

		return mapRepoError(repoFactory.RewardRepo().Create(ctx, reward), "failed to create reward")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reward created", slog.Any("rewardID", reward.ID), slog.Int64("pointsRequired", reward.PointsRequired))

	return reward, nil
}

// GetReward returns a reward of the catalogue.
func (srv *redemptionService) GetReward(ctx context.Context, rewardID uuid.UUID) (*entity.Reward, error) {
	reward, err := srv.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find reward")
	}

	return reward, nil
}

// Redeem debits the reward's price and issues a claim code. Card and reward are
// locked in that order for the whole unit of work.
func (srv *redemptionService) Redeem(ctx context.Context, cardID, rewardID uuid.UUID) (*usecase.RedeemResult, error) {
	var (
		result *usecase.RedeemResult
		card   *entity.GuestCard
		issued *entity.RewardRedemption
		lapsed int
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		card, err = repoFactory.GuestCardRepo().LockByID(ctx, cardID)
		if err != nil {
			return mapRepoError(err, "failed to lock guest card")
		}
		if !card.Status.CanTransact() {
			return domainerrors.ErrCardState.WithDetails("card is " + string(card.Status))
		}

		reward, err := repoFactory.RewardRepo().LockByID(ctx, rewardID)
		if err != nil {
			return mapRepoError(err, "failed to lock reward")
		}

		now := srv.clock.Now()
		lapsed, err = srv.closeLapsedClaims(ctx, repoFactory, card.ID, reward.ID, now)
		if err != nil {
			return err
		}
		if lapsed > 0 {
			// The refunds moved the balance and the stock.
			if card, err = repoFactory.GuestCardRepo().LockByID(ctx, cardID); err != nil {
				return mapRepoError(err, "failed to reload guest card")
			}
			if reward, err = repoFactory.RewardRepo().LockByID(ctx, rewardID); err != nil {
				return mapRepoError(err, "failed to reload reward")
			}
		}

		if err := srv.checkEligibility(ctx, repoFactory, card, reward); err != nil {
			return err
		}

		redemption := &entity.RewardRedemption{
			ID:           uuid.New(),
			CardID:       card.ID,
			RewardID:     reward.ID,
			RestaurantID: reward.RestaurantID,
			PointsSpent:  reward.PointsRequired,
			Status:       entity.RedemptionStatusPending,
			ExpiresAt:    srv.expiryFor(reward, now),
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		ledger, err := repoFactory.LedgerRepo().ApplyChange(ctx, entity.PointChange{
			CardID:             card.ID,
			Delta:              -reward.PointsRequired,
			Reason:             entity.PointReasonRedemption,
			ReferenceID:        &redemption.ID,
			RequireNonNegative: true,
			TouchLastUsed:      true,
			At:                 now,
		})
		if err != nil {
			return mapRepoError(err, "failed to debit redemption points")
		}
		card = ledger.Card

		if err := srv.createWithFreshCode(ctx, repoFactory, redemption); err != nil {
			return err
		}

		reserved, err := repoFactory.RewardRepo().ReserveUnit(ctx, reward.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reserve reward stock")
		}
		if !reserved {
			return domainerrors.ErrRewardSoldOut
		}

		issued = redemption
		result = &usecase.RedeemResult{
			RedemptionID: redemption.ID,
			Code:         redemption.Code,
			ExpiresAt:    redemption.ExpiresAt,
			PointsSpent:  redemption.PointsSpent,
			NewBalance:   ledger.Card.CurrentPoints,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Redemption rejected", slog.Any("cardID", cardID), slog.Any("rewardID", rewardID), slog.Any("error", err))

		return nil, err
	}

	for range lapsed {
		srv.metrics.RedemptionTransition(string(entity.RedemptionStatusExpired))
	}
	srv.metrics.LedgerChange(string(entity.PointReasonRedemption), -result.PointsSpent)
	srv.metrics.RedemptionTransition(string(entity.RedemptionStatusPending))
	srv.events.rewardRedeemed(ctx, card, issued)
	srv.log(ctx).Info("Reward redeemed", slog.Any("redemptionID", result.RedemptionID), slog.Any("cardID", cardID))

	return result, nil
}

// closeLapsedClaims expires and refunds the card's overdue claims on the reward.
// A claim that is still valid blocks a second one.
func (srv *redemptionService) closeLapsedClaims(ctx context.Context, repoFactory repository.RepositoryFactory, cardID, rewardID uuid.UUID, now time.Time) (int, error) {
	pending, err := repoFactory.RedemptionRepo().LockPendingByCardAndReward(ctx, cardID, rewardID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check pending redemptions")
	}

	lapsed := 0
	for _, redemption := range pending {
		if !redemption.IsExpiredAt(now) {
			return 0, domainerrors.ErrDuplicateRedemption
		}
		if err := srv.expire(ctx, repoFactory, redemption, now); err != nil {
			return 0, err
		}
		lapsed++
	}

	return lapsed, nil
}

// checkEligibility applies the reward rules that do not depend on the balance.
func (srv *redemptionService) checkEligibility(ctx context.Context, repoFactory repository.RepositoryFactory, card *entity.GuestCard, reward *entity.Reward) error {
	if reward.RestaurantID != card.RestaurantID {
		return domainerrors.ErrRewardNotFound
	}
	if !reward.IsAvailableAt(srv.clock.Now()) {
		return domainerrors.ErrRewardUnavailable
	}
	if !reward.HasStock() {
		return domainerrors.ErrRewardSoldOut
	}

	if reward.MinTierLevel != nil {
		tier, err := currentTier(ctx, repoFactory, card)
		if err != nil {
			return err
		}
		if tier == nil || tier.Level < *reward.MinTierLevel {
			return domainerrors.ErrTierIneligible
		}
	}

	if card.CurrentPoints < reward.PointsRequired {
		return domainerrors.ErrInsufficientPoints
	}

	return nil
}

func (srv *redemptionService) expiryFor(reward *entity.Reward, now time.Time) time.Time {
	if reward.RedeemDeadline != nil {
		return *reward.RedeemDeadline
	}

	return now.Add(srv.config.RedemptionValidity)
}

// createWithFreshCode inserts the redemption, drawing a new code on collision.
func (srv *redemptionService) createWithFreshCode(ctx context.Context, repoFactory repository.RepositoryFactory, redemption *entity.RewardRedemption) error {
	for attempt := 1; attempt <= srv.config.MaxGenerateAttempts; attempt++ {
		code, err := loyalty.NewRedemptionCode(srv.random)
		if err != nil {
			return err
		}
		redemption.Code = code

		err = repoFactory.RedemptionRepo().Create(ctx, redemption)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateRedemption) {
			return errors.Wrap(err, "failed to create redemption")
		}
	}

	return domainerrors.ErrDuplicateCode
}

// UseRedemption marks a pending claim as used at the counter. An expired claim
// is closed and refunded, and the expiry is reported to the caller.
func (srv *redemptionService) UseRedemption(ctx context.Context, code string, staffID uuid.UUID) (*usecase.UseRedemptionResult, error) {
	code = loyalty.NormalizeCode(code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("code is required")
	}

	var (
		result  *usecase.UseRedemptionResult
		expired bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		redemption, err := repoFactory.RedemptionRepo().LockByCode(ctx, code)
		if err != nil {
			return mapRepoError(err, "failed to lock redemption")
		}
		if redemption.Status != entity.RedemptionStatusPending {
			return domainerrors.ErrRedemptionClosed.WithDetails("redemption is " + string(redemption.Status))
		}

		now := srv.clock.Now()
		if redemption.IsExpiredAt(now) {
			if err := srv.expire(ctx, repoFactory, redemption, now); err != nil {
				return err
			}
			expired = true
		} else {
			redemption.Status = entity.RedemptionStatusUsed
			redemption.UsedAt = &now
			redemption.UsedBy = &staffID
			redemption.UpdatedAt = now
			if err := repoFactory.RedemptionRepo().Update(ctx, redemption); err != nil {
				return mapRepoError(err, "failed to mark redemption used")
			}
		}

		result = &usecase.UseRedemptionResult{
			RedemptionID: redemption.ID,
			RewardID:     redemption.RewardID,
			Status:       redemption.Status,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.RedemptionTransition(string(result.Status))
	if expired {
		srv.log(ctx).Info("Expired redemption presented", slog.Any("redemptionID", result.RedemptionID))

		return nil, domainerrors.ErrRedemptionExpired
	}

	srv.log(ctx).Info("Redemption used", slog.Any("redemptionID", result.RedemptionID), slog.Any("staffID", staffID))

	return result, nil
}

// CancelRedemption refunds a pending claim and returns its stock.
func (srv *redemptionService) CancelRedemption(ctx context.Context, redemptionID uuid.UUID, reason string) (*entity.RewardRedemption, error) {
	var cancelled *entity.RewardRedemption
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		redemption, err := repoFactory.RedemptionRepo().LockByID(ctx, redemptionID)
		if err != nil {
			return mapRepoError(err, "failed to lock redemption")
		}
		if redemption.Status != entity.RedemptionStatusPending {
			return domainerrors.ErrRedemptionClosed.WithDetails("redemption is " + string(redemption.Status))
		}

		now := srv.clock.Now()
		if err := srv.refund(ctx, repoFactory, redemption, entity.PointReasonRefund, reason, now); err != nil {
			return err
		}

		redemption.Status = entity.RedemptionStatusCancelled
		redemption.CancelledAt = &now
		redemption.CancelReason = reason
		redemption.UpdatedAt = now
		if err := repoFactory.RedemptionRepo().Update(ctx, redemption); err != nil {
			return mapRepoError(err, "failed to cancel redemption")
		}

		cancelled = redemption

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Redemption cancel rejected", slog.Any("redemptionID", redemptionID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.RedemptionTransition(string(entity.RedemptionStatusCancelled))
	srv.log(ctx).Info("Redemption cancelled", slog.Any("redemptionID", redemptionID))

	return cancelled, nil
}

// ExpireRedemptions closes and refunds overdue pending claims. Each claim is
// handled in its own unit of work and re-checked under lock.
func (srv *redemptionService) ExpireRedemptions(ctx context.Context, restaurantID *uuid.UUID) (int, error) {
	now := srv.clock.Now()
	var expired, failed int
	seen := make(map[uuid.UUID]struct{})

	for {
		ids, err := srv.listExpired(ctx, restaurantID, now)
		if err != nil {
			return expired, err
		}

		fresh := 0
		for _, id := range ids {
			if _, done := seen[id]; done {
				continue
			}
			seen[id] = struct{}{}
			fresh++

			ok, err := srv.expireOne(ctx, id, now)
			switch {
			case err != nil:
				failed++
				srv.log(ctx).Error("Failed to expire redemption", slog.Any("redemptionID", id), slog.Any("error", err))
			case ok:
				expired++
			}
		}

		if fresh == 0 || len(ids) < expireBatchSize {
			break
		}
	}

	srv.metrics.BatchProcessed("expire_redemptions", expired, failed)
	srv.log(ctx).Info("Redemption expiry finished", slog.Int("expired", expired), slog.Int("failed", failed))

	return expired, nil
}

func (srv *redemptionService) listExpired(ctx context.Context, restaurantID *uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		ids, err = repoFactory.RedemptionRepo().ListExpiredPendingIDs(ctx, restaurantID, now, expireBatchSize)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expired redemptions")
	}

	return ids, nil
}

// expireOne reports false when the claim was used or cancelled since it was listed.
func (srv *redemptionService) expireOne(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	var changed bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		redemption, err := repoFactory.RedemptionRepo().LockByID(ctx, id)
		if err != nil {
			return mapRepoError(err, "failed to lock redemption")
		}
		if !redemption.IsExpiredAt(now) {
			return nil
		}

		changed = true

		return srv.expire(ctx, repoFactory, redemption, now)
	})
	if err == nil && changed {
		srv.metrics.RedemptionTransition(string(entity.RedemptionStatusExpired))
	}

	return changed, err
}

// expire flips a locked pending claim to EXPIRED and gives the points back.
func (srv *redemptionService) expire(ctx context.Context, repoFactory repository.RepositoryFactory, redemption *entity.RewardRedemption, now time.Time) error {
	if err := srv.refund(ctx, repoFactory, redemption, entity.PointReasonExpiredRefund, "redemption expired", now); err != nil {
		return err
	}

	redemption.Status = entity.RedemptionStatusExpired
	redemption.UpdatedAt = now

	return mapRepoError(repoFactory.RedemptionRepo().Update(ctx, redemption), "failed to expire redemption")
}

// refund credits the spent points back and releases the reserved unit.
func (srv *redemptionService) refund(ctx context.Context, repoFactory repository.RepositoryFactory, redemption *entity.RewardRedemption, reason entity.PointReason, note string, now time.Time) error {
	if _, err := repoFactory.LedgerRepo().ApplyChange(ctx, entity.PointChange{
		CardID:      redemption.CardID,
		Delta:       redemption.PointsSpent,
		Reason:      reason,
		ReferenceID: &redemption.ID,
		Note:        note,
		At:          now,
	}); err != nil {
		return mapRepoError(err, "failed to refund redemption points")
	}
	srv.metrics.LedgerChange(string(reason), redemption.PointsSpent)

	if err := repoFactory.RewardRepo().ReleaseUnit(ctx, redemption.RewardID); err != nil {
		return errors.Wrap(err, "failed to release reward stock")
	}

	return nil
}
