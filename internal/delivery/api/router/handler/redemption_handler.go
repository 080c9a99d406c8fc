package handler

import (
	"log/slog"
	"net/http"
	"time"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	CardUC       usecase.CardUsecase
	Logger       *slog.Logger
}

// RedemptionHandler serves the reward catalogue and redemption claims
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	access       cardAccess
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		access:       cardAccess{cardUC: params.CardUC},
		logger:       params.Logger,
	}
}

// CreateRewardRequest represents a reward added to the catalogue
type CreateRewardRequest struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Description    string     `json:"description" validate:"max=2000"`
	PointsRequired int64      `json:"points_required" validate:"gt=0"`
	Quantity       *int64     `json:"quantity,omitempty" validate:"omitnil,gte=0"`
	MinTierLevel   *int       `json:"min_tier_level,omitempty" validate:"omitnil,gte=0"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	RedeemDeadline *time.Time `json:"redeem_deadline,omitempty"`
}

// RedeemRequest names the reward a card spends points on
type RedeemRequest struct {
	RewardID uuid.UUID `json:"reward_id" validate:"required"`
}

// UseRedemptionRequest represents staff marking a claim as used
type UseRedemptionRequest struct {
	Code string `json:"code" validate:"required,loyaltycode"`
}

// CancelRedemptionRequest represents voiding a pending claim
type CancelRedemptionRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// RedeemResponse is the claim a guest shows at the counter
type RedeemResponse struct {
	RedemptionID uuid.UUID `json:"redemption_id"`
	Code         string    `json:"code"`
	ExpiresAt    time.Time `json:"expires_at"`
	PointsSpent  int64     `json:"points_spent"`
	NewBalance   int64     `json:"new_balance"`
}

// UseRedemptionResponse reports the status a claim ended in
type UseRedemptionResponse struct {
	RedemptionID uuid.UUID               `json:"redemption_id"`
	RewardID     uuid.UUID               `json:"reward_id"`
	Status       entity.RedemptionStatus `json:"status"`
}

// CreateReward handles adding a reward
func (h *RedemptionHandler) CreateReward(c echo.Context) error {
	restaurantID, err := uuidParam(c, "rid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateRewardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	reward, err := h.redemptionUC.CreateReward(c.Request().Context(), usecase.CreateRewardInput{
		RestaurantID:   restaurantID,
		Name:           req.Name,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Quantity:       req.Quantity,
		MinTierLevel:   req.MinTierLevel,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		RedeemDeadline: req.RedeemDeadline,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reward)
}

// GetReward handles reading a reward
func (h *RedemptionHandler) GetReward(c echo.Context) error {
	rewardID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reward, err := h.redemptionUC.GetReward(c.Request().Context(), rewardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reward)
}

// Redeem handles a card spending points on a reward
func (h *RedemptionHandler) Redeem(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RedeemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.redemptionUC.Redeem(c.Request().Context(), card.ID, req.RewardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RedeemResponse{
		RedemptionID: result.RedemptionID,
		Code:         result.Code,
		ExpiresAt:    result.ExpiresAt,
		PointsSpent:  result.PointsSpent,
		NewBalance:   result.NewBalance,
	})
}

// UseRedemption handles staff honouring a claim code
func (h *RedemptionHandler) UseRedemption(c echo.Context) error {
	staffID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UseRedemptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.redemptionUC.UseRedemption(c.Request().Context(), req.Code, staffID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UseRedemptionResponse{
		RedemptionID: result.RedemptionID,
		RewardID:     result.RewardID,
		Status:       result.Status,
	})
}

// CancelRedemption handles voiding a pending claim and refunding its points
func (h *RedemptionHandler) CancelRedemption(c echo.Context) error {
	redemptionID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CancelRedemptionRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	redemption, err := h.redemptionUC.CancelRedemption(c.Request().Context(), redemptionID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, redemption)
}
