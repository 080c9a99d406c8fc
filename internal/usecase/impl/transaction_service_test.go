package impl

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/model"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchase(code string, restaurantID uuid.UUID, amount string) usecase.PurchaseInput {
	return usecase.PurchaseInput{
		RestaurantID: restaurantID,
		ScannedCode:  code,
		Amount:       decimal.RequireFromString(amount),
	}
}

func TestTransactionService_RecordPurchase_NoTier(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	result, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "50"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.BasePoints)
	assert.Equal(t, int64(5), result.PointsEarned)
	assert.Equal(t, int64(5), result.NewBalance)
	assert.Empty(t, result.TierName)
	assert.False(t, result.DuplicateUseWarning)

	txn, err := f.txns.GetTransaction(ctx, result.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, txn.Status)
	assert.Equal(t, entity.TransactionTypePurchase, txn.Type)
	assert.True(t, decimal.NewFromInt(1).Equal(txn.Multiplier))

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), card.CurrentPoints)
	require.NotNil(t, card.LastUsedAt)

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, entity.PointReasonPurchase, ledger[0].Reason)
	assert.Equal(t, int64(0), ledger[0].BalanceBefore)
	assert.Equal(t, int64(5), ledger[0].BalanceAfter)
	assert.Equal(t, result.TransactionID, *ledger[0].ReferenceID)

	assert.Equal(t, []service.LoyaltyEventType{service.EventPointsEarned}, f.publishedTypes())
}

func TestTransactionService_RecordPurchase_TierMultiplier(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.createTier(t, "Bronze", 1, 0, "1")
	f.createTier(t, "Gold", 2, 10, "1.5")
	issued := f.issueCard(t)
	f.credit(t, issued.Card.ID, 10)

	result, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "100"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.BasePoints)
	assert.Equal(t, int64(15), result.PointsEarned)
	assert.Equal(t, int64(25), result.NewBalance)
	assert.Equal(t, "Gold", result.TierName)

	txn, err := f.txns.GetTransaction(ctx, result.TransactionID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.5").Equal(txn.Multiplier))

	f.mustReconcile(t, issued.Card.ID)
}

func TestTransactionService_RecordPurchase_UpgradeAndRewardEvents(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.createTier(t, "Bronze", 1, 0, "1")
	gold := f.createTier(t, "Gold", 2, 20, "2")
	_, err := f.redemptions.CreateReward(ctx, usecase.CreateRewardInput{
		RestaurantID:   f.restaurant.ID,
		Name:           "Free dumplings",
		PointsRequired: 15,
	})
	require.NoError(t, err)
	issued := f.issueCard(t)

	result, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "200"))
	require.NoError(t, err)
	assert.Equal(t, int64(20), result.PointsEarned)
	assert.Equal(t, "Gold", result.TierName)

	assert.ElementsMatch(t, []service.LoyaltyEventType{
		service.EventPointsEarned,
		service.EventTierUpgraded,
		service.EventRewardAvailable,
	}, f.publishedTypes())

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, gold.ID, *card.CurrentTierID)

	history, err := f.tiers.GetTierHistory(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.TierTriggerPointsThreshold, history[0].TriggerType)
	assert.Equal(t, int64(20), *history[0].TriggerValue)
}

func TestTransactionService_RecordPurchase_Rejections(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	_, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "-1"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.txns.RecordPurchase(ctx, purchase("", f.restaurant.ID, "10"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.txns.RecordPurchase(ctx, purchase("NOPE00-NOPE00", f.restaurant.ID, "10"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
	assert.Equal(t, domainerrors.InvalidCodeMessage, err.Error())

	_, err = f.cards.UpdateCardStatus(ctx, issued.Card.ID, entity.CardStatusSuspended)
	require.NoError(t, err)
	_, err = f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "10"))
	assert.True(t, errors.Is(err, domainerrors.ErrCardState))

	var rows []model.TransactionModel
	require.NoError(t, f.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, string(entity.TransactionStatusFailed), string(rows[0].Status))
	assert.Zero(t, rows[0].PointsEarned)
	assert.Equal(t, issued.Card.ID, rows[0].CardID)

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Zero(t, card.CurrentPoints)
	assert.Empty(t, f.publishedTypes())

	_, err = f.txns.CancelTransaction(ctx, usecase.CancelInput{TransactionID: rows[0].ID})
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotReversible))
}

func TestTransactionService_RecordPurchase_InactiveCard(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	_, err := f.cards.UpdateCardStatus(ctx, issued.Card.ID, entity.CardStatusInactive)
	require.NoError(t, err)
	_, err = f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "10"))
	assert.True(t, errors.Is(err, domainerrors.ErrCardState))

	_, err = f.cards.UpdateCardStatus(ctx, issued.Card.ID, entity.CardStatusActive)
	require.NoError(t, err)
	bought, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "10"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), bought.PointsEarned)
	f.mustReconcile(t, issued.Card.ID)
}

func TestTransactionService_RecordPurchase_FlagsDuplicateScan(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	_, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "30"))
	require.NoError(t, err)

	f.clock.Advance(10 * time.Second)
	result, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "30"))
	require.NoError(t, err)
	assert.True(t, result.DuplicateUseWarning)

	txn, err := f.txns.GetTransaction(ctx, result.TransactionID)
	require.NoError(t, err)
	assert.True(t, txn.FlaggedForReview)
	assert.Equal(t, int64(6), result.NewBalance)
}

func TestTransactionService_ProcessRefund(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	bought, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "80"))
	require.NoError(t, err)

	refund, err := f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: bought.TransactionID, Reason: "wrong order"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), refund.PointsReversed)
	assert.Zero(t, refund.NewBalance)
	require.NotNil(t, refund.RefundTransactionID)

	refundTxn, err := f.txns.GetTransaction(ctx, *refund.RefundTransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeRefund, refundTxn.Type)
	assert.Equal(t, int64(-8), refundTxn.PointsEarned)
	assert.True(t, decimal.NewFromInt(-80).Equal(refundTxn.Amount))
	assert.Equal(t, bought.TransactionID, *refundTxn.ReferenceTransactionID)

	original, err := f.txns.GetTransaction(ctx, bought.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, original.Status)

	_, err = f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRefunded))

	_, err = f.txns.CancelTransaction(ctx, usecase.CancelInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRefunded))

	_, err = f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: *refund.RefundTransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotReversible))

	_, err = f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))

	f.mustReconcile(t, issued.Card.ID)
}

func TestTransactionService_RefundMayGoNegative(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	f.createTier(t, "Bronze", 1, 0, "1")
	reward, err := f.redemptions.CreateReward(ctx, usecase.CreateRewardInput{
		RestaurantID:   f.restaurant.ID,
		Name:           "Tea",
		PointsRequired: 10,
	})
	require.NoError(t, err)

	bought, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "100"))
	require.NoError(t, err)
	_, err = f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)
	require.NoError(t, err)

	refund, err := f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: bought.TransactionID})
	require.NoError(t, err)
	assert.Equal(t, int64(-10), refund.NewBalance)

	f.mustReconcile(t, issued.Card.ID)
}

func TestTransactionService_CancelTransaction(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	bought, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "40"))
	require.NoError(t, err)

	cancelled, err := f.txns.CancelTransaction(ctx, usecase.CancelInput{TransactionID: bought.TransactionID, Reason: "void"})
	require.NoError(t, err)
	assert.Nil(t, cancelled.RefundTransactionID)
	assert.Equal(t, int64(4), cancelled.PointsReversed)
	assert.Zero(t, cancelled.NewBalance)

	txn, err := f.txns.GetTransaction(ctx, bought.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCancelled, txn.Status)

	_, err = f.txns.CancelTransaction(ctx, usecase.CancelInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRefunded))
	_, err = f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, entity.PointReasonPurchaseRefund, ledger[1].Reason)
	assert.Equal(t, int64(-4), ledger[1].Delta)
}

func TestTransactionService_RefundDowngradesTier(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	bronze := f.createTier(t, "Bronze", 1, 0, "1")
	f.createTier(t, "Gold", 2, 20, "1")
	issued := f.issueCard(t)

	bought, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "250"))
	require.NoError(t, err)
	assert.Equal(t, "Gold", bought.TierName)

	refund, err := f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: bought.TransactionID})
	require.NoError(t, err)
	assert.Equal(t, "Bronze", refund.TierName)

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, bronze.ID, *card.CurrentTierID)

	history, err := f.tiers.GetTierHistory(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestTransactionService_DisputeTransaction(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	bought, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "60"))
	require.NoError(t, err)

	disputed, err := f.txns.DisputeTransaction(ctx, usecase.DisputeInput{TransactionID: bought.TransactionID, Reason: "chargeback"})
	require.NoError(t, err)
	assert.Nil(t, disputed.RefundTransactionID)
	assert.Equal(t, int64(6), disputed.PointsReversed)
	assert.Zero(t, disputed.NewBalance)

	txn, err := f.txns.GetTransaction(ctx, bought.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusDisputed, txn.Status)

	_, err = f.txns.DisputeTransaction(ctx, usecase.DisputeInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRefunded))
	_, err = f.txns.CancelTransaction(ctx, usecase.CancelInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRefunded))
	_, err = f.txns.ProcessRefund(ctx, usecase.RefundInput{TransactionID: bought.TransactionID})
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRefunded))

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, entity.PointReasonPurchaseRefund, ledger[1].Reason)
	assert.Equal(t, bought.TransactionID, *ledger[1].ReferenceID)

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), card.TotalPointsEarned)
	f.mustReconcile(t, issued.Card.ID)
}
