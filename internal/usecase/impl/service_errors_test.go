package impl

import (
	"context"
	"testing"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/postgres"
	mockRepo "loyalty/internal/mocks/repository"
	mockSvc "loyalty/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runInMockTx makes the mocked manager call fn with the given factory.
func runInMockTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestTransactionService_PublishFailureIsNotSurfaced(t *testing.T) {
	f := createTestServices(t)
	issued := f.issueCard(t)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishLoyaltyEvent(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	txns := NewTransactionService(TransactionServiceParams{
		TxManager:      postgres.NewTransactionManager(f.db),
		TxnRepo:        postgres.NewTransactionRepository(f.db),
		EventPublisher: publisher,
		Metrics:        service.NopMetrics{},
		Clock:          f.clock,
		Config:         &config.Config{Loyalty: config.DefaultLoyaltyConfig()},
		Logger:         newDiscardLogger(),
	})

	result, err := txns.RecordPurchase(context.Background(), purchase(issued.Identifier.Code, f.restaurant.ID, "20"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.NewBalance)
	publisher.AssertNumberOfCalls(t, "PublishLoyaltyEvent", 1)
}

func TestTransactionService_RecordPurchase_StoreFailure(t *testing.T) {
	restaurantID := uuid.New()
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	restaurants := mockRepo.NewMockRestaurantRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	runInMockTx(txManager, factory)
	factory.EXPECT().RestaurantRepo().Return(restaurants)
	restaurants.EXPECT().FindByID(mock.Anything, restaurantID).Return(nil, errors.New("connection reset"))

	txns := NewTransactionService(TransactionServiceParams{
		TxManager:      txManager,
		TxnRepo:        mockRepo.NewMockTransactionRepository(t),
		EventPublisher: publisher,
		Metrics:        service.NopMetrics{},
		Clock:          &fixedClock{now: testNow},
		Logger:         newDiscardLogger(),
	})

	_, err := txns.RecordPurchase(context.Background(), purchase("ABC123-DEF456", restaurantID, "10"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCode))
	publisher.AssertNotCalled(t, "PublishLoyaltyEvent", mock.Anything, mock.Anything)
}

func TestCardService_IssueCard_IdentifierCollisions(t *testing.T) {
	restaurantID := uuid.New()
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	restaurants := mockRepo.NewMockRestaurantRepository(t)
	tiers := mockRepo.NewMockTierRepository(t)
	cards := mockRepo.NewMockGuestCardRepository(t)
	identifiers := mockRepo.NewMockCardIdentifierRepository(t)

	runInMockTx(txManager, factory)
	factory.EXPECT().RestaurantRepo().Return(restaurants)
	factory.EXPECT().TierRepo().Return(tiers)
	factory.EXPECT().GuestCardRepo().Return(cards)
	factory.EXPECT().CardIdentifierRepo().Return(identifiers)

	restaurants.EXPECT().FindByID(mock.Anything, restaurantID).Return(&entity.Restaurant{
		ID:                restaurantID,
		QRCodeSecret:      "s3cret",
		QRCodeVersion:     1,
		PointsPerPurchase: 10,
		IsActive:          true,
	}, nil)
	tiers.EXPECT().FindDefault(mock.Anything, restaurantID).Return(nil, repository.ErrTierNotFound)
	cards.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	identifiers.EXPECT().DeactivateActiveForCard(mock.Anything, mock.Anything, testNow).Return(0, nil)
	identifiers.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateIdentifier)

	cfg := &config.Config{Loyalty: config.DefaultLoyaltyConfig()}
	cardSvc := NewCardService(CardServiceParams{
		TxManager:      txManager,
		CardRepo:       mockRepo.NewMockGuestCardRepository(t),
		LedgerRepo:     mockRepo.NewMockLedgerRepository(t),
		EventPublisher: mockSvc.NewMockEventPublisher(t),
		Metrics:        service.NopMetrics{},
		Clock:          &fixedClock{now: testNow},
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	_, err := cardSvc.IssueCard(context.Background(), uuid.New(), restaurantID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCode))
	identifiers.AssertNumberOfCalls(t, "Create", cfg.Loyalty.MaxGenerateAttempts)
}

func TestRedemptionService_ExpireRedemptions_ListFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("database is down"))

	redemptions := NewRedemptionService(RedemptionServiceParams{
		TxManager:      txManager,
		RewardRepo:     mockRepo.NewMockRewardRepository(t),
		EventPublisher: mockSvc.NewMockEventPublisher(t),
		Metrics:        service.NopMetrics{},
		Clock:          &fixedClock{now: testNow},
		Logger:         newDiscardLogger(),
	})

	count, err := redemptions.ExpireRedemptions(context.Background(), nil)
	require.Error(t, err)
	assert.Zero(t, count)
}
