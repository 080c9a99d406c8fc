package impl

import (
	"context"
	"testing"

	"loyalty/config"
	domainerrors "loyalty/internal/domain/errors"
	mockUC "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJobService(t *testing.T) (usecase.JobUsecase, *mockUC.MockCodeIdentifierUsecase, *mockUC.MockRedemptionUsecase) {
	t.Helper()

	codes := mockUC.NewMockCodeIdentifierUsecase(t)
	redemptions := mockUC.NewMockRedemptionUsecase(t)
	jobs := NewJobService(JobServiceParams{
		CodeUC:       codes,
		RedemptionUC: redemptions,
		Config:       &config.Config{Loyalty: config.DefaultLoyaltyConfig()},
		Logger:       newDiscardLogger(),
	})

	return jobs, codes, redemptions
}

func TestJobService_Run(t *testing.T) {
	ctx := context.Background()
	restaurantID := uuid.New()

	t.Run("rotate codes", func(t *testing.T) {
		jobs, codes, _ := newTestJobService(t)
		codes.EXPECT().RotateAllCodes(ctx, restaurantID).Return(7, nil)

		result, err := jobs.Run(ctx, usecase.JobCommand{Job: usecase.JobRotateCodes, RestaurantID: &restaurantID})
		require.NoError(t, err)
		assert.Equal(t, 7, result.Affected)
	})

	t.Run("cleanup uses configured keep count", func(t *testing.T) {
		jobs, codes, _ := newTestJobService(t)
		codes.EXPECT().CleanupIdentifiers(ctx, restaurantID, 100).Return(3, nil)

		result, err := jobs.Run(ctx, usecase.JobCommand{Job: usecase.JobCleanupIdentifiers, RestaurantID: &restaurantID})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Affected)
	})

	t.Run("cleanup keep count override", func(t *testing.T) {
		jobs, codes, _ := newTestJobService(t)
		keep := 2
		codes.EXPECT().CleanupIdentifiers(ctx, restaurantID, 2).Return(0, nil)

		_, err := jobs.Run(ctx, usecase.JobCommand{Job: usecase.JobCleanupIdentifiers, RestaurantID: &restaurantID, KeepCount: &keep})
		require.NoError(t, err)
	})

	t.Run("expire sweeps every restaurant", func(t *testing.T) {
		jobs, _, redemptions := newTestJobService(t)
		redemptions.EXPECT().ExpireRedemptions(ctx, (*uuid.UUID)(nil)).Return(4, nil)

		result, err := jobs.Run(ctx, usecase.JobCommand{Job: usecase.JobExpireRedemptions})
		require.NoError(t, err)
		assert.Equal(t, usecase.JobExpireRedemptions, result.Job)
		assert.Equal(t, 4, result.Affected)
	})

	t.Run("code jobs need a restaurant", func(t *testing.T) {
		jobs, _, _ := newTestJobService(t)

		_, err := jobs.Run(ctx, usecase.JobCommand{Job: usecase.JobRotateCodes})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown job", func(t *testing.T) {
		jobs, _, _ := newTestJobService(t)

		_, err := jobs.Run(ctx, usecase.JobCommand{Job: "reindex"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		jobs, _, redemptions := newTestJobService(t)
		boom := errors.New("db down")
		redemptions.EXPECT().ExpireRedemptions(ctx, &restaurantID).Return(0, boom)

		_, err := jobs.Run(ctx, usecase.JobCommand{Job: usecase.JobExpireRedemptions, RestaurantID: &restaurantID})
		assert.ErrorIs(t, err, boom)
	})
}
