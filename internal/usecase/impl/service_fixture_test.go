package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/persistence/sqlitetest"
	"loyalty/internal/infra/qrcode"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// serviceFixture wires every service against one in-memory database.
type serviceFixture struct {
	db         *gorm.DB
	clock      *fixedClock
	publisher  *mockSvc.MockEventPublisher
	restaurant *entity.Restaurant

	codes       usecase.CodeIdentifierUsecase
	txns        usecase.TransactionUsecase
	tiers       usecase.TierUsecase
	redemptions usecase.RedemptionUsecase
	cards       usecase.CardUsecase

	mu     sync.Mutex
	events []*service.LoyaltyEvent
}

func createTestServices(t *testing.T) *serviceFixture {
	t.Helper()

	db := sqlitetest.Open(t)
	f := &serviceFixture{
		db:        db,
		clock:     &fixedClock{now: testNow},
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.publisher.EXPECT().
		PublishLoyaltyEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.LoyaltyEvent) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, event)
		}).
		Return(nil).
		Maybe()

	cfg := &config.Config{Loyalty: config.DefaultLoyaltyConfig()}
	txManager := postgres.NewTransactionManager(db)
	logger := newDiscardLogger()
	metrics := service.NopMetrics{}

	f.codes = NewCodeIdentifierService(CodeIdentifierServiceParams{
		TxManager:      txManager,
		RestaurantRepo: postgres.NewRestaurantRepository(db),
		IdentifierRepo: postgres.NewCardIdentifierRepository(db),
		QRCodeService:  qrcode.NewQRCodeService(128, "medium"),
		Metrics:        metrics,
		Clock:          f.clock,
		Config:         cfg,
		Logger:         logger,
	})
	f.txns = NewTransactionService(TransactionServiceParams{
		TxManager:      txManager,
		TxnRepo:        postgres.NewTransactionRepository(db),
		EventPublisher: f.publisher,
		Metrics:        metrics,
		Clock:          f.clock,
		Config:         cfg,
		Logger:         logger,
	})
	f.tiers = NewTierService(TierServiceParams{
		TxManager: txManager,
		TierRepo:  postgres.NewTierRepository(db),
		Metrics:   metrics,
		Clock:     f.clock,
		Logger:    logger,
	})
	f.redemptions = NewRedemptionService(RedemptionServiceParams{
		TxManager:      txManager,
		RewardRepo:     postgres.NewRewardRepository(db),
		EventPublisher: f.publisher,
		Metrics:        metrics,
		Clock:          f.clock,
		Config:         cfg,
		Logger:         logger,
	})
	f.cards = NewCardService(CardServiceParams{
		TxManager:      txManager,
		CardRepo:       postgres.NewGuestCardRepository(db),
		LedgerRepo:     postgres.NewLedgerRepository(db),
		EventPublisher: f.publisher,
		Metrics:        metrics,
		Clock:          f.clock,
		Config:         cfg,
		Logger:         logger,
	})

	f.restaurant = &entity.Restaurant{
		Name:              "Noodle Bar",
		QRCodeSecret:      "s3cret",
		QRCodeVersion:     1,
		PointsPerPurchase: 10,
		IsActive:          true,
	}
	require.NoError(t, postgres.NewRestaurantRepository(db).Create(context.Background(), f.restaurant))

	return f
}

func (f *serviceFixture) issueCard(t *testing.T) *usecase.IssueCardOutput {
	t.Helper()

	output, err := f.cards.IssueCard(context.Background(), uuid.New(), f.restaurant.ID)
	require.NoError(t, err)

	return output
}

func (f *serviceFixture) createTier(t *testing.T, name string, level int, minPoints int64, multiplier string) *entity.LoyaltyTier {
	t.Helper()

	tier, err := f.tiers.CreateTier(context.Background(), usecase.CreateTierInput{
		RestaurantID:      f.restaurant.ID,
		Name:              name,
		Level:             level,
		MinPointsRequired: minPoints,
		PointsMultiplier:  decimal.RequireFromString(multiplier),
	})
	require.NoError(t, err)

	return tier
}

// credit books a bonus so tests can start from a known balance.
func (f *serviceFixture) credit(t *testing.T, cardID uuid.UUID, points int64) *entity.GuestCard {
	t.Helper()

	output, err := f.cards.AdjustPoints(context.Background(), usecase.AdjustPointsInput{
		CardID:  cardID,
		Delta:   points,
		Reason:  entity.PointReasonBonus,
		AdminID: uuid.New(),
	})
	require.NoError(t, err)

	return output.Card
}

func (f *serviceFixture) publishedTypes() []service.LoyaltyEventType {
	f.mu.Lock()
	defer f.mu.Unlock()

	types := make([]service.LoyaltyEventType, 0, len(f.events))
	for _, event := range f.events {
		types = append(types, event.Type)
	}

	return types
}

func (f *serviceFixture) resetEvents() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = nil
}

func (f *serviceFixture) mustReconcile(t *testing.T, cardID uuid.UUID) {
	t.Helper()

	report, err := f.cards.ReconcileCard(context.Background(), cardID)
	require.NoError(t, err)
	require.Truef(t, report.Consistent, "ledger problems: %v", report.Problems)
}
