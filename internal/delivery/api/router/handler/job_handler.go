package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler lets a scheduler trigger maintenance jobs over HTTP
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// RunJobRequest represents the optional job arguments
type RunJobRequest struct {
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	KeepCount    *int       `json:"keep_count,omitempty" validate:"omitnil,gte=0"`
}

// RotateCodes handles a rotate-codes trigger
func (h *JobHandler) RotateCodes(c echo.Context) error {
	return h.run(c, usecase.JobRotateCodes)
}

// CleanupIdentifiers handles a cleanup-identifiers trigger
func (h *JobHandler) CleanupIdentifiers(c echo.Context) error {
	return h.run(c, usecase.JobCleanupIdentifiers)
}

// ExpireRedemptions handles an expire-redemptions trigger
func (h *JobHandler) ExpireRedemptions(c echo.Context) error {
	return h.run(c, usecase.JobExpireRedemptions)
}

func (h *JobHandler) run(c echo.Context, job usecase.JobName) error {
	var req RunJobRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	result, err := h.jobUC.Run(c.Request().Context(), usecase.JobCommand{
		Job:          job,
		RestaurantID: req.RestaurantID,
		KeepCount:    req.KeepCount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
