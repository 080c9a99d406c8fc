package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *serviceFixture) createReward(t *testing.T, input usecase.CreateRewardInput) *entity.Reward {
	t.Helper()

	input.RestaurantID = f.restaurant.ID
	if input.Name == "" {
		input.Name = "Free coffee"
	}
	reward, err := f.redemptions.CreateReward(context.Background(), input)
	require.NoError(t, err)

	return reward
}

func (f *serviceFixture) redemption(t *testing.T, id uuid.UUID) *entity.RewardRedemption {
	t.Helper()

	redemption, err := postgres.NewRedemptionRepository(f.db).FindByID(context.Background(), id)
	require.NoError(t, err)

	return redemption
}

func (f *serviceFixture) balance(t *testing.T, cardID uuid.UUID) int64 {
	t.Helper()

	card, err := f.cards.GetCard(context.Background(), cardID)
	require.NoError(t, err)

	return card.CurrentPoints
}

func TestRedemptionService_CreateRewardValidation(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	past := testNow.Add(-time.Hour)
	negative := int64(-1)

	tests := []struct {
		name  string
		input usecase.CreateRewardInput
		want  error
	}{
		{name: "blank name", input: usecase.CreateRewardInput{RestaurantID: f.restaurant.ID, PointsRequired: 10}, want: domainerrors.ErrValidationFailed},
		{name: "free reward", input: usecase.CreateRewardInput{RestaurantID: f.restaurant.ID, Name: "Tea"}, want: domainerrors.ErrValidationFailed},
		{name: "negative stock", input: usecase.CreateRewardInput{RestaurantID: f.restaurant.ID, Name: "Tea", PointsRequired: 10, Quantity: &negative}, want: domainerrors.ErrValidationFailed},
		{name: "inverted window", input: usecase.CreateRewardInput{RestaurantID: f.restaurant.ID, Name: "Tea", PointsRequired: 10, ValidFrom: &testNow, ValidUntil: &past}, want: domainerrors.ErrValidationFailed},
		{name: "unknown restaurant", input: usecase.CreateRewardInput{RestaurantID: uuid.New(), Name: "Tea", PointsRequired: 10}, want: domainerrors.ErrRestaurantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.redemptions.CreateReward(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRedemptionService_RedeemAndUse(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 30})
	f.credit(t, issued.Card.ID, 50)

	result, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), result.PointsSpent)
	assert.Equal(t, int64(20), result.NewBalance)
	assert.Equal(t, testNow.Add(30*24*time.Hour), result.ExpiresAt)
	assert.NotEmpty(t, result.Code)
	assert.Contains(t, f.publishedTypes(), service.EventRewardRedeemed)

	staffID := uuid.New()
	used, err := f.redemptions.UseRedemption(ctx, "  "+strings.ToLower(result.Code)+" ", staffID)
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionStatusUsed, used.Status)
	assert.Equal(t, reward.ID, used.RewardID)

	stored := f.redemption(t, result.RedemptionID)
	assert.Equal(t, staffID, *stored.UsedBy)
	require.NotNil(t, stored.UsedAt)

	_, err = f.redemptions.UseRedemption(ctx, result.Code, staffID)
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionClosed))

	_, err = f.redemptions.UseRedemption(ctx, "RDM-NOPE", staffID)
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionNotFound))

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, entity.PointReasonRedemption, ledger[1].Reason)
	assert.Equal(t, result.RedemptionID, *ledger[1].ReferenceID)

	f.mustReconcile(t, issued.Card.ID)
}

func TestRedemptionService_RedeemDeadline(t *testing.T) {
	f := createTestServices(t)
	deadline := testNow.Add(48 * time.Hour)
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 5, RedeemDeadline: &deadline})
	f.credit(t, issued.Card.ID, 5)

	result, err := f.redemptions.Redeem(context.Background(), issued.Card.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, deadline, result.ExpiresAt)
	assert.Zero(t, result.NewBalance)
}

func TestRedemptionService_SoldOut(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	one := int64(1)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 10, Quantity: &one})

	first := f.issueCard(t)
	f.credit(t, first.Card.ID, 10)
	_, err := f.redemptions.Redeem(ctx, first.Card.ID, reward.ID)
	require.NoError(t, err)

	second := f.issueCard(t)
	f.credit(t, second.Card.ID, 1000)
	_, err = f.redemptions.Redeem(ctx, second.Card.ID, reward.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRewardSoldOut))
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	assert.Equal(t, int64(1000), f.balance(t, second.Card.ID))

	stored, err := f.redemptions.GetReward(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.QuantityRedeemed)
}

func TestRedemptionService_Rejections(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.createTier(t, "Bronze", 1, 0, "1")
	f.createTier(t, "Gold", 2, 500, "1")
	gold := 2
	expired := testNow.Add(-time.Minute)

	plain := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 20})
	goldOnly := f.createReward(t, usecase.CreateRewardInput{Name: "Chef's table", PointsRequired: 20, MinTierLevel: &gold})
	retired := f.createReward(t, usecase.CreateRewardInput{Name: "Summer dessert", PointsRequired: 20, ValidUntil: &expired})

	issued := f.issueCard(t)
	f.credit(t, issued.Card.ID, 15)

	_, err := f.redemptions.Redeem(ctx, issued.Card.ID, plain.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))
	assert.Equal(t, int64(15), f.balance(t, issued.Card.ID))

	f.credit(t, issued.Card.ID, 100)

	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, goldOnly.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrTierIneligible))

	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, retired.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRewardUnavailable))

	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrRewardNotFound))

	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, plain.ID)
	require.NoError(t, err)
	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, plain.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRedemption))
	assert.Equal(t, int64(95), f.balance(t, issued.Card.ID))

	_, err = f.cards.UpdateCardStatus(ctx, issued.Card.ID, entity.CardStatusSuspended)
	require.NoError(t, err)
	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, goldOnly.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCardState))

	f.mustReconcile(t, issued.Card.ID)
}

func TestRedemptionService_UseExpiredRefunds(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	one := int64(1)
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 40, Quantity: &one})
	f.credit(t, issued.Card.ID, 40)

	result, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)

	f.clock.Advance(31 * 24 * time.Hour)
	_, err = f.redemptions.UseRedemption(ctx, result.Code, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionExpired))

	assert.Equal(t, entity.RedemptionStatusExpired, f.redemption(t, result.RedemptionID).Status)
	assert.Equal(t, int64(40), f.balance(t, issued.Card.ID))

	stored, err := f.redemptions.GetReward(ctx, reward.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.QuantityRedeemed)

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PointReasonExpiredRefund, ledger[len(ledger)-1].Reason)

	_, err = f.redemptions.UseRedemption(ctx, result.Code, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionClosed))

	f.mustReconcile(t, issued.Card.ID)
}

func TestRedemptionService_CancelRedemption(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	one := int64(1)
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 25, Quantity: &one})
	f.credit(t, issued.Card.ID, 25)

	result, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)

	cancelled, err := f.redemptions.CancelRedemption(ctx, result.RedemptionID, "guest changed mind")
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionStatusCancelled, cancelled.Status)
	assert.Equal(t, "guest changed mind", cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, int64(25), f.balance(t, issued.Card.ID))

	_, err = f.redemptions.CancelRedemption(ctx, result.RedemptionID, "again")
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionClosed))

	other := f.issueCard(t)
	f.credit(t, other.Card.ID, 25)
	_, err = f.redemptions.Redeem(ctx, other.Card.ID, reward.ID)
	require.NoError(t, err)

	_, err = f.redemptions.CancelRedemption(ctx, uuid.New(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionNotFound))

	f.mustReconcile(t, issued.Card.ID)
}

func TestRedemptionService_ExpireRedemptions(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 10})

	var cardIDs []uuid.UUID
	for range 3 {
		issued := f.issueCard(t)
		f.credit(t, issued.Card.ID, 10)
		_, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
		require.NoError(t, err)
		cardIDs = append(cardIDs, issued.Card.ID)
	}

	count, err := f.redemptions.ExpireRedemptions(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	f.clock.Advance(31 * 24 * time.Hour)

	otherRestaurant := uuid.New()
	count, err = f.redemptions.ExpireRedemptions(ctx, &otherRestaurant)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = f.redemptions.ExpireRedemptions(ctx, &f.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = f.redemptions.ExpireRedemptions(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	for _, cardID := range cardIDs {
		assert.Equal(t, int64(10), f.balance(t, cardID))
		f.mustReconcile(t, cardID)
	}
}

func TestRedemptionService_RedeemAfterLapsedClaim(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	one := int64(1)
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 40, Quantity: &one})
	f.credit(t, issued.Card.ID, 40)

	first, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)

	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRedemption))

	f.clock.Advance(31 * 24 * time.Hour)
	f.resetEvents()
	second, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.RedemptionID, second.RedemptionID)
	assert.Zero(t, second.NewBalance)

	assert.Equal(t, entity.RedemptionStatusExpired, f.redemption(t, first.RedemptionID).Status)
	assert.Equal(t, entity.RedemptionStatusPending, f.redemption(t, second.RedemptionID).Status)
	assert.Contains(t, f.publishedTypes(), service.EventRewardRedeemed)

	stored, err := f.redemptions.GetReward(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.QuantityRedeemed)

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	reasons := make([]entity.PointReason, 0, len(ledger))
	for _, entry := range ledger {
		reasons = append(reasons, entry.Reason)
	}
	assert.Equal(t, []entity.PointReason{
		entity.PointReasonBonus,
		entity.PointReasonRedemption,
		entity.PointReasonExpiredRefund,
		entity.PointReasonRedemption,
	}, reasons)

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), card.TotalPointsEarned)
	f.mustReconcile(t, issued.Card.ID)
}

func TestRedemptionService_RefundsDoNotCountAsEarned(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 50})
	f.credit(t, issued.Card.ID, 100)

	cancelled, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)
	_, err = f.redemptions.CancelRedemption(ctx, cancelled.RedemptionID, "")
	require.NoError(t, err)

	lapsed, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)
	f.clock.Advance(31 * 24 * time.Hour)
	_, err = f.redemptions.UseRedemption(ctx, lapsed.Code, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionExpired))

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), card.CurrentPoints)
	assert.Equal(t, int64(100), card.TotalPointsEarned)
	f.mustReconcile(t, issued.Card.ID)
}
