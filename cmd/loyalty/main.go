package main

import (
	"context"
	"log/slog"
	"os"

	"loyalty/config"
	"loyalty/internal/delivery"
	"loyalty/internal/delivery/api"
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/auth"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/metrics"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRegistry,
			metrics.NewLoyaltyMetrics,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewRestaurantRepository,
			postgres.NewCardIdentifierRepository,
			postgres.NewGuestCardRepository,
			postgres.NewLedgerRepository,
			postgres.NewTransactionRepository,
			postgres.NewTierRepository,
			postgres.NewRewardRepository,
			postgres.NewRedemptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			service.NewSystemClock,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCodeIdentifierService,
			impl.NewTransactionService,
			impl.NewTierService,
			impl.NewRedemptionService,
			impl.NewCardService,
			impl.NewJobService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCardHandler,
			handler.NewCodeHandler,
			handler.NewTransactionHandler,
			handler.NewTierHandler,
			handler.NewRedemptionHandler,
			handler.NewJobHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
