package impl

import (
	"context"
	"testing"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/model"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardService_IssueCard(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	bronze := f.createTier(t, "Bronze", 1, 0, "1")
	userID := uuid.New()

	issued, err := f.cards.IssueCard(ctx, userID, f.restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusActive, issued.Card.Status)
	assert.Equal(t, bronze.ID, *issued.Card.CurrentTierID)
	assert.Zero(t, issued.Card.CurrentPoints)
	assert.Equal(t, issued.Card.ID, issued.Identifier.CardID)
	assert.True(t, issued.Identifier.IsActive)

	active, err := f.codes.GetActiveCode(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, issued.Identifier.Code, active.Code)

	_, err = f.cards.IssueCard(ctx, userID, f.restaurant.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCardAlreadyExists))

	_, err = f.cards.IssueCard(ctx, userID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrSigningSecretNotConfigured))
}

func TestCardService_IssueCardRequiresActiveRestaurant(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()

	closed := &entity.Restaurant{Name: "Closed", QRCodeSecret: "k", PointsPerPurchase: 5, IsActive: false}
	require.NoError(t, postgres.NewRestaurantRepository(f.db).Create(ctx, closed))
	require.NoError(t, f.db.Model(&model.RestaurantModel{}).Where("id = ?", closed.ID).Update("is_active", false).Error)

	_, err := f.cards.IssueCard(ctx, uuid.New(), closed.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))

	var cards int64
	require.NoError(t, f.db.Model(&model.GuestCardModel{}).Count(&cards).Error)
	assert.Zero(t, cards)
}

func TestCardService_UpdateCardStatus(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	card, err := f.cards.UpdateCardStatus(ctx, issued.Card.ID, entity.CardStatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusBlocked, card.Status)

	stored, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusBlocked, stored.Status)

	_, err = f.cards.UpdateCardStatus(ctx, issued.Card.ID, entity.CardStatus("LOST"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.cards.UpdateCardStatus(ctx, uuid.New(), entity.CardStatusActive)
	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
}

func TestCardService_AdjustPoints(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	f.createTier(t, "Bronze", 1, 0, "1")
	f.createTier(t, "Silver", 2, 100, "1")
	issued := f.issueCard(t)
	adminID := uuid.New()

	output, err := f.cards.AdjustPoints(ctx, usecase.AdjustPointsInput{
		CardID:  issued.Card.ID,
		Delta:   120,
		Reason:  entity.PointReasonBonus,
		AdminID: adminID,
		Note:    "grand opening",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), output.Card.CurrentPoints)
	assert.Equal(t, int64(120), output.Entry.BalanceAfter)
	assert.Equal(t, adminID, *output.Entry.CreatedBy)
	assert.Equal(t, "grand opening", output.Entry.Note)
	assert.Equal(t, []service.LoyaltyEventType{service.EventTierUpgraded}, f.publishedTypes())

	tests := []struct {
		name  string
		input usecase.AdjustPointsInput
		want  error
	}{
		{name: "zero delta", input: usecase.AdjustPointsInput{CardID: issued.Card.ID, Reason: entity.PointReasonBonus, AdminID: adminID}, want: domainerrors.ErrValidationFailed},
		{name: "system reason", input: usecase.AdjustPointsInput{CardID: issued.Card.ID, Delta: 5, Reason: entity.PointReasonPurchase, AdminID: adminID}, want: domainerrors.ErrValidationFailed},
		{name: "overdraw", input: usecase.AdjustPointsInput{CardID: issued.Card.ID, Delta: -121, Reason: entity.PointReasonAdminAdjustment, AdminID: adminID}, want: domainerrors.ErrInsufficientPoints},
		{name: "unknown card", input: usecase.AdjustPointsInput{CardID: uuid.New(), Delta: 5, Reason: entity.PointReasonBonus, AdminID: adminID}, want: domainerrors.ErrCardNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.cards.AdjustPoints(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	output, err = f.cards.AdjustPoints(ctx, usecase.AdjustPointsInput{
		CardID:  issued.Card.ID,
		Delta:   -30,
		Reason:  entity.PointReasonAdminAdjustment,
		AdminID: adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(90), output.Card.CurrentPoints)

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), card.TotalPointsEarned)

	f.mustReconcile(t, issued.Card.ID)
}

func TestCardService_GetLedger(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Empty(t, ledger)

	f.credit(t, issued.Card.ID, 10)
	f.credit(t, issued.Card.ID, 20)

	ledger, err = f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, int64(1), ledger[0].Sequence)
	assert.Equal(t, int64(2), ledger[1].Sequence)
	assert.Equal(t, ledger[0].BalanceAfter, ledger[1].BalanceBefore)

	_, err = f.cards.GetLedger(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
}

func TestCardService_ReconcileCardDetectsDrift(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	f.credit(t, issued.Card.ID, 40)
	f.mustReconcile(t, issued.Card.ID)

	require.NoError(t, f.db.Model(&model.GuestCardModel{}).
		Where("id = ?", issued.Card.ID).
		Update("current_points", 400).Error)

	report, err := f.cards.ReconcileCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.False(t, report.Consistent)
	assert.Equal(t, int64(40), report.ReplayedBalance)
	assert.Equal(t, int64(400), report.CurrentPoints)
	assert.Len(t, report.Problems, 1)

	require.NoError(t, f.db.Model(&model.PointLogModel{}).
		Where("card_id = ?", issued.Card.ID).
		Update("balance_after", 41).Error)

	report, err = f.cards.ReconcileCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Len(t, report.Problems, 2)

	_, err = f.cards.ReconcileCard(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
}
