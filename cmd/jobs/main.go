package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"loyalty/config"
	"loyalty/internal/domain/service"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/metrics"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/usecase"
	"loyalty/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - rotate-codes:        Regenerate every active code of a restaurant
// - cleanup-identifiers: Delete old inactive codes beyond a keep count
// - expire-redemptions:  Refund pending redemptions past their expiry

type runJobParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

func main() {
	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(2)
	}

	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Supply(cmd),
		fx.Invoke(runJob),
	).Run()
}

// parseCommand turns a subcommand and its flags into a job command.
func parseCommand(args []string) (usecase.JobCommand, error) {
	if len(args) < 1 {
		return usecase.JobCommand{}, errors.New("missing subcommand")
	}

	job := usecase.JobName(args[0])
	if !job.IsValid() {
		return usecase.JobCommand{}, errors.Errorf("unknown subcommand %q", args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	restaurant := fs.String("restaurant", "", "Restaurant ID")
	keep := fs.Int("keep", -1, "Inactive codes to keep per card (cleanup-identifiers, default from config)")
	if err := fs.Parse(args[1:]); err != nil {
		return usecase.JobCommand{}, errors.WithStack(err)
	}

	cmd := usecase.JobCommand{Job: job}
	if *restaurant != "" {
		restaurantID, err := uuid.Parse(*restaurant)
		if err != nil {
			return usecase.JobCommand{}, errors.Wrap(err, "invalid -restaurant")
		}
		cmd.RestaurantID = &restaurantID
	}
	if job != usecase.JobExpireRedemptions && cmd.RestaurantID == nil {
		return usecase.JobCommand{}, errors.Errorf("%s requires -restaurant", job)
	}
	if *keep >= 0 {
		cmd.KeepCount = keep
	}

	return cmd, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  jobs rotate-codes -restaurant <id>")
	fmt.Fprintln(os.Stderr, "  jobs cleanup-identifiers -restaurant <id> [-keep <n>]")
	fmt.Fprintln(os.Stderr, "  jobs expire-redemptions [-restaurant <id>]")
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
			postgres.NewRewardRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			func(cfg *config.Config) service.QRCodeService {
				return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
			},
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCodeIdentifierService,
			impl.NewRedemptionService,
			impl.NewJobService,
		),
	)
}

// runJob starts the job once every OnStart hook has run and shuts the app
// down with the job's exit code.
func runJob(cmd usecase.JobCommand, params runJobParams) {
	jobCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0

				result, err := params.JobUC.Run(jobCtx, cmd)
				if err != nil {
					params.Logger.Error("Job failed", slog.String("job", string(cmd.Job)), slog.Any("error", err))
					exitCode = 1
				} else {
					fmt.Fprintf(os.Stdout, "%s: %d\n", result.Job, result.Affected)
				}

				if shutdownErr := params.Shutdown(fx.ExitCode(exitCode)); shutdownErr != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
