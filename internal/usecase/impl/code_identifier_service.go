package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

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
	"golang.org/x/sync/errgroup"
)

const cleanupBatchSize = 500

type codeIdentifierService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	identifierRepo repository.CardIdentifierRepository
	qrcodeService  service.QRCodeService
	issuer         *codeIssuer
	validator      *codeValidator
	metrics        service.LoyaltyMetrics
	config         *config.LoyaltyConfig
	logger         *slog.Logger
}

// CodeIdentifierServiceParams holds dependencies for CodeIdentifierService, injected by Fx.
type CodeIdentifierServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	IdentifierRepo repository.CardIdentifierRepository
	QRCodeService  service.QRCodeService
	Metrics        service.LoyaltyMetrics
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCodeIdentifierService creates a new code identifier service instance
func NewCodeIdentifierService(params CodeIdentifierServiceParams) usecase.CodeIdentifierUsecase {
	cfg := loyaltyConfig(params.Config)

	return &codeIdentifierService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		identifierRepo: params.IdentifierRepo,
		qrcodeService:  params.QRCodeService,
		issuer:         newCodeIssuer(params.Clock, cfg, params.Logger),
		validator: &codeValidator{
			clock:       params.Clock,
			fraudWindow: cfg.FraudWindow,
			metrics:     params.Metrics,
		},
		metrics: params.Metrics,
		config:  cfg,
		logger:  params.Logger,
	}
}

// loyaltyConfig returns the loyalty section, defaulted when absent.
func loyaltyConfig(cfg *config.Config) *config.LoyaltyConfig {
	if cfg == nil || cfg.Loyalty == nil {
		return config.DefaultLoyaltyConfig()
	}

	return cfg.Loyalty
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *codeIdentifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateCode issues a fresh code and deactivates the previous one in the same unit of work.
func (srv *codeIdentifierService) GenerateCode(ctx context.Context, cardID, restaurantID uuid.UUID) (*entity.CardIdentifier, error) {
	var identifier *entity.CardIdentifier
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurant, err := loadSigningRestaurant(ctx, repoFactory, restaurantID)
		if err != nil {
			return err
		}

		card, err := repoFactory.GuestCardRepo().LockByID(ctx, cardID)
		if err != nil {
			return mapRepoError(err, "failed to lock guest card")
		}
		if card.RestaurantID != restaurantID {
			return domainerrors.ErrCardNotFound
		}

		identifier, err = srv.issuer.issue(ctx, repoFactory, restaurant, card.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to generate card code", slog.Any("cardID", cardID), slog.Any("restaurantID", restaurantID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.CodeGenerated(restaurantID.String())
	srv.log(ctx).Debug("Card code generated", slog.Any("cardID", cardID), slog.Int("codeVersion", identifier.CodeVersion))

	return identifier, nil
}

// ValidateCode checks a scanned code. The usage increment runs in its own unit of work.
func (srv *codeIdentifierService) ValidateCode(ctx context.Context, code string, restaurantID uuid.UUID) (*usecase.ValidationResult, error) {
	if loyalty.NormalizeCode(code) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("code is required")
	}

	var result *usecase.ValidationResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurant, err := loadSigningRestaurant(ctx, repoFactory, restaurantID)
		if err != nil {
			return err
		}

		result, err = srv.validator.validate(ctx, repoFactory, restaurant, code, srv.log(ctx))

		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RotateAllCodes regenerates each active code independently; failures are logged and skipped.
func (srv *codeIdentifierService) RotateAllCodes(ctx context.Context, restaurantID uuid.UUID) (int, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return 0, mapRepoError(err, "failed to find restaurant")
	}
	if !restaurant.HasSigningSecret() {
		return 0, domainerrors.ErrSigningSecretNotConfigured
	}

	active, err := srv.identifierRepo.ListActiveByRestaurant(ctx, restaurantID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list active card codes")
	}

	srv.log(ctx).Info("Starting code rotation", slog.Any("restaurantID", restaurantID), slog.Int("count", len(active)))

	var rotated, failed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(srv.config.RotationWorkers)

	for _, identifier := range active {
		group.Go(func() error {
			if _, err := srv.GenerateCode(groupCtx, identifier.CardID, restaurantID); err != nil {
				failed.Add(1)
				srv.log(ctx).Error("Failed to rotate card code", slog.Any("cardID", identifier.CardID), slog.Any("error", err))

				return nil
			}
			rotated.Add(1)

			return nil
		})
	}
	_ = group.Wait()

	srv.metrics.BatchProcessed("rotate_codes", int(rotated.Load()), int(failed.Load()))
	srv.log(ctx).Info("Code rotation finished",
		slog.Any("restaurantID", restaurantID),
		slog.Int64("rotated", rotated.Load()),
		slog.Int64("failed", failed.Load()))

	return int(rotated.Load()), nil
}

// CleanupIdentifiers deletes inactive codes beyond the keepCount newest, in batches.
func (srv *codeIdentifierService) CleanupIdentifiers(ctx context.Context, restaurantID uuid.UUID, keepCount int) (int, error) {
	if keepCount < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("keepCount must be non-negative")
	}

	var deleted int
	for {
		ids, err := srv.identifierRepo.ListStaleInactiveIDs(ctx, restaurantID, keepCount, cleanupBatchSize)
		if err != nil {
			return deleted, errors.Wrap(err, "failed to list stale card codes")
		}
		if len(ids) == 0 {
			break
		}

		n, err := srv.identifierRepo.DeleteInactiveByIDs(ctx, ids)
		if err != nil {
			srv.metrics.BatchProcessed("cleanup_identifiers", deleted, len(ids))

			return deleted, errors.Wrap(err, "failed to delete stale card codes")
		}
		deleted += int(n)

		if n == 0 || len(ids) < cleanupBatchSize {
			break
		}
	}

	srv.metrics.BatchProcessed("cleanup_identifiers", deleted, 0)
	srv.log(ctx).Info("Card code cleanup finished",
		slog.Any("restaurantID", restaurantID),
		slog.Int("keepCount", keepCount),
		slog.Int("deleted", deleted))

	return deleted, nil
}

// GetActiveCode returns the card's current code.
func (srv *codeIdentifierService) GetActiveCode(ctx context.Context, cardID uuid.UUID) (*entity.CardIdentifier, error) {
	identifier, err := srv.identifierRepo.FindActiveByCard(ctx, cardID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find active card code")
	}

	return identifier, nil
}

// RenderCodeQR renders the card's current code for the guest app.
func (srv *codeIdentifierService) RenderCodeQR(ctx context.Context, cardID uuid.UUID) ([]byte, error) {
	identifier, err := srv.GetActiveCode(ctx, cardID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.RenderCardCode(identifier.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render card code QR")
	}

	return png, nil
}

// loadSigningRestaurant reads the restaurant and requires its signing secret.
func loadSigningRestaurant(ctx context.Context, repoFactory repository.RepositoryFactory, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := repoFactory.RestaurantRepo().FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrSigningSecretNotConfigured
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if !restaurant.HasSigningSecret() {
		return nil, domainerrors.ErrSigningSecretNotConfigured
	}

	return restaurant, nil
}
