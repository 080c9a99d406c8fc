package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/api/response"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CodeHandlerParams holds dependencies for CodeHandler, injected by Fx.
type CodeHandlerParams struct {
	fx.In

	CodeUC usecase.CodeIdentifierUsecase
	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CodeHandler serves card code generation, rendering and validation.
type CodeHandler struct {
	codeUC usecase.CodeIdentifierUsecase
	access cardAccess
	logger *slog.Logger
}

// NewCodeHandler is the constructor for CodeHandler
func NewCodeHandler(params CodeHandlerParams) *CodeHandler {
	return &CodeHandler{
		codeUC: params.CodeUC,
		access: cardAccess{cardUC: params.CardUC},
		logger: params.Logger,
	}
}

// ValidateCodeRequest represents a terminal scan
type ValidateCodeRequest struct {
	Code string `json:"code" validate:"required,loyaltycode"`
}

// ValidateCodeResponse is what a terminal learns about an accepted code
type ValidateCodeResponse struct {
	Valid               bool      `json:"valid"`
	CardID              uuid.UUID `json:"card_id"`
	DuplicateUseWarning bool      `json:"duplicate_use_warning"`
	UsageCount          int64     `json:"usage_count"`
}

// GenerateCode handles rotating a card to a fresh code
func (h *CodeHandler) GenerateCode(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	identifier, err := h.codeUC.GenerateCode(c.Request().Context(), card.ID, card.RestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, identifier)
}

// GetActiveCode handles reading a card's current code
func (h *CodeHandler) GetActiveCode(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	identifier, err := h.codeUC.GetActiveCode(c.Request().Context(), card.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, identifier)
}

// RenderQR handles returning the card's current code as a PNG
func (h *CodeHandler) RenderQR(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.codeUC.RenderCodeQR(c.Request().Context(), card.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ValidateCode handles a terminal checking a scanned code
func (h *CodeHandler) ValidateCode(c echo.Context) error {
	restaurantID, err := uuidParam(c, "rid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ValidateCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidCode)
	}

	result, err := h.codeUC.ValidateCode(c.Request().Context(), req.Code, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Valid {
		h.logger.DebugContext(c.Request().Context(), "code rejected",
			slog.String("restaurant_id", restaurantID.String()),
			slog.String("reason", string(result.Reason)))

		return response.HandleAppError(c, domainerrors.ErrInvalidCode)
	}

	return response.Success(c, http.StatusOK, ValidateCodeResponse{
		Valid:               true,
		CardID:              *result.CardID,
		DuplicateUseWarning: result.DuplicateUseWarning,
		UsageCount:          result.UsageCount,
	})
}
