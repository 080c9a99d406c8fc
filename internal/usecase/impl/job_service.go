package impl

import (
	"context"
	"log/slog"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type jobService struct {
	codeUC       usecase.CodeIdentifierUsecase
	redemptionUC usecase.RedemptionUsecase
	config       *config.LoyaltyConfig
	logger       *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	CodeUC       usecase.CodeIdentifierUsecase
	RedemptionUC usecase.RedemptionUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewJobService creates the maintenance job runner shared by the API, worker and CLI.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		codeUC:       params.CodeUC,
		redemptionUC: params.RedemptionUC,
		config:       loyaltyConfig(params.Config),
		logger:       params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Run dispatches cmd to the usecase owning the job.
func (srv *jobService) Run(ctx context.Context, cmd usecase.JobCommand) (*usecase.JobResult, error) {
	if !cmd.Job.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown job " + string(cmd.Job))
	}

	var (
		affected int
		err      error
	)

	switch cmd.Job {
	case usecase.JobRotateCodes:
		if cmd.RestaurantID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("restaurant_id is required")
		}
		affected, err = srv.codeUC.RotateAllCodes(ctx, *cmd.RestaurantID)

	case usecase.JobCleanupIdentifiers:
		if cmd.RestaurantID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("restaurant_id is required")
		}
		keepCount := srv.config.IdentifierKeepCount
		if cmd.KeepCount != nil {
			keepCount = *cmd.KeepCount
		}
		affected, err = srv.codeUC.CleanupIdentifiers(ctx, *cmd.RestaurantID, keepCount)

	case usecase.JobExpireRedemptions:
		affected, err = srv.redemptionUC.ExpireRedemptions(ctx, cmd.RestaurantID)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "run job %s", cmd.Job)
	}

	srv.log(ctx).InfoContext(ctx, "job finished",
		slog.String("job", string(cmd.Job)),
		slog.Int("affected", affected))

	return &usecase.JobResult{Job: cmd.Job, Affected: affected}, nil
}
