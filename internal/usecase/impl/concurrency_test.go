package impl

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentPurchasesAndRedemptionsKeepLedgerConsistent(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	f.credit(t, issued.Card.ID, 20)

	const purchases = 8
	rewards := make([]*entity.Reward, 4)
	for i := range rewards {
		rewards[i] = f.createReward(t, usecase.CreateRewardInput{Name: fmt.Sprintf("Side %d", i), PointsRequired: 5})
	}

	var g errgroup.Group
	for range purchases {
		g.Go(func() error {
			_, err := f.txns.RecordPurchase(ctx, purchase(issued.Identifier.Code, f.restaurant.ID, "30"))

			return err
		})
	}
	for _, reward := range rewards {
		g.Go(func() error {
			_, err := f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)

			return err
		})
	}
	require.NoError(t, g.Wait())

	card, err := f.cards.GetCard(ctx, issued.Card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20+purchases*3-len(rewards)*5), card.CurrentPoints)
	assert.Equal(t, int64(20+purchases*3), card.TotalPointsEarned)

	ledger, err := f.cards.GetLedger(ctx, issued.Card.ID)
	require.NoError(t, err)
	require.Len(t, ledger, 1+purchases+len(rewards))
	var sum int64
	for i, entry := range ledger {
		sum += entry.Delta
		if i > 0 {
			assert.Equal(t, ledger[i-1].BalanceAfter, entry.BalanceBefore)
		}
	}
	assert.Equal(t, card.CurrentPoints, sum)

	f.mustReconcile(t, issued.Card.ID)
}

func TestConcurrentRedeemsOfOneRewardIssueOneClaim(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	issued := f.issueCard(t)
	reward := f.createReward(t, usecase.CreateRewardInput{PointsRequired: 10})
	f.credit(t, issued.Card.ID, 100)

	const attempts = 5
	results := make([]error, attempts)
	var g errgroup.Group
	for i := range attempts {
		g.Go(func() error {
			_, results[i] = f.redemptions.Redeem(ctx, issued.Card.ID, reward.ID)

			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(90), f.balance(t, issued.Card.ID))
	f.mustReconcile(t, issued.Card.ID)
}

func TestConcurrentValidateCodeCountsEveryScan(t *testing.T) {
	f := createTestServices(t)
	ctx := context.Background()
	code := f.issueCard(t).Identifier.Code

	const scans = 6
	results := make([]*usecase.ValidationResult, scans)
	g, gctx := errgroup.WithContext(ctx)
	for i := range scans {
		g.Go(func() error {
			result, err := f.codes.ValidateCode(gctx, code, f.restaurant.ID)
			results[i] = result

			return err
		})
	}
	require.NoError(t, g.Wait())

	counts := make([]int64, 0, scans)
	warnings := 0
	cardIDs := map[uuid.UUID]struct{}{}
	for _, result := range results {
		require.True(t, result.Valid)
		counts = append(counts, result.UsageCount)
		cardIDs[*result.CardID] = struct{}{}
		if result.DuplicateUseWarning {
			warnings++
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] < counts[j] })
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, counts)
	// The clock is frozen, so every scan after the first lands inside the window.
	assert.Equal(t, scans-1, warnings)
	assert.Len(t, cardIDs, 1)

	active, err := f.codes.GetActiveCode(ctx, *results[0].CardID)
	require.NoError(t, err)
	assert.Equal(t, int64(scans), active.UsageCount)
}
