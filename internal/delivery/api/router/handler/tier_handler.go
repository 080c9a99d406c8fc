package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// TierHandlerParams holds dependencies for TierHandler, injected by Fx.
type TierHandlerParams struct {
	fx.In

	TierUC usecase.TierUsecase
	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// TierHandler serves tier ladders and card tier assignment
type TierHandler struct {
	tierUC usecase.TierUsecase
	access cardAccess
	logger *slog.Logger
}

// NewTierHandler is the constructor for TierHandler
func NewTierHandler(params TierHandlerParams) *TierHandler {
	return &TierHandler{
		tierUC: params.TierUC,
		access: cardAccess{cardUC: params.CardUC},
		logger: params.Logger,
	}
}

// CreateTierRequest represents a new rung of the tier ladder
type CreateTierRequest struct {
	Name              string          `json:"name" validate:"required,max=100"`
	Level             int             `json:"level" validate:"gte=0"`
	MinPointsRequired int64           `json:"min_points_required" validate:"gte=0"`
	PointsMultiplier  decimal.Decimal `json:"points_multiplier" validate:"nonnegdecimal"`
	IsDefault         bool            `json:"is_default"`
	Perks             string          `json:"perks" validate:"max=2000"`
}

// ManualUpgradeRequest represents an admin moving a card to a tier
type ManualUpgradeRequest struct {
	TierID uuid.UUID `json:"tier_id" validate:"required"`
	Reason string    `json:"reason" validate:"required,max=500"`
}

// ListTiers handles listing a restaurant's tiers by level
func (h *TierHandler) ListTiers(c echo.Context) error {
	restaurantID, err := uuidParam(c, "rid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tiers, err := h.tierUC.ListTiers(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tiers)
}

// CreateTier handles adding a tier
func (h *TierHandler) CreateTier(c echo.Context) error {
	restaurantID, err := uuidParam(c, "rid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateTierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tier, err := h.tierUC.CreateTier(c.Request().Context(), usecase.CreateTierInput{
		RestaurantID:      restaurantID,
		Name:              req.Name,
		Level:             req.Level,
		MinPointsRequired: req.MinPointsRequired,
		PointsMultiplier:  req.PointsMultiplier,
		IsDefault:         req.IsDefault,
		Perks:             req.Perks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tier)
}

// DeleteTier handles removing an unused tier
func (h *TierHandler) DeleteTier(c echo.Context) error {
	tierID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.tierUC.DeleteTier(c.Request().Context(), tierID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// EvaluateTier handles re-checking a card's tier against its balance
func (h *TierHandler) EvaluateTier(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.tierUC.CheckAndUpgrade(c.Request().Context(), card.ID, card.CurrentPoints)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// ManualUpgrade handles an admin override of a card's tier
func (h *TierHandler) ManualUpgrade(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cardID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ManualUpgradeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	card, err := h.tierUC.ManualUpgrade(c.Request().Context(), usecase.ManualUpgradeInput{
		CardID:    cardID,
		NewTierID: req.TierID,
		Reason:    req.Reason,
		AdminID:   adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// GetTierHistory handles listing a card's tier changes, newest first
func (h *TierHandler) GetTierHistory(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history, err := h.tierUC.GetTierHistory(c.Request().Context(), card.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}
