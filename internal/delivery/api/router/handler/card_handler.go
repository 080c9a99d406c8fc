package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/response"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler serves guest card lifecycle and ledger routes
type CardHandler struct {
	cardUC usecase.CardUsecase
	access cardAccess
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		access: cardAccess{cardUC: params.CardUC},
		logger: params.Logger,
	}
}

// IssueCardRequest represents the request body for issuing a card. Guests
// issue for themselves; admins may name the user.
type IssueCardRequest struct {
	RestaurantID uuid.UUID  `json:"restaurant_id" validate:"required"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
}

// IssueCardResponse is a new card with its first scannable code
type IssueCardResponse struct {
	Card *entity.GuestCard      `json:"card"`
	Code *entity.CardIdentifier `json:"code"`
}

// UpdateCardStatusRequest represents the request body for changing a card's status
type UpdateCardStatusRequest struct {
	Status entity.CardStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED BLOCKED"`
}

// AdjustPointsRequest represents an operator credit or debit
type AdjustPointsRequest struct {
	Delta  int64              `json:"delta" validate:"required"`
	Reason entity.PointReason `json:"reason" validate:"required,oneof=BONUS ADMIN_ADJUSTMENT"`
	Note   string             `json:"note" validate:"max=500"`
}

// LedgerChangeResponse is the entry an adjustment wrote and the card after it
type LedgerChangeResponse struct {
	Entry *entity.PointLogEntry `json:"entry"`
	Card  *entity.GuestCard     `json:"card"`
}

// LedgerReportResponse is the outcome of replaying a card's ledger
type LedgerReportResponse struct {
	CardID          uuid.UUID `json:"card_id"`
	EntryCount      int       `json:"entry_count"`
	ReplayedBalance int64     `json:"replayed_balance"`
	CurrentPoints   int64     `json:"current_points"`
	Consistent      bool      `json:"consistent"`
	Problems        []string  `json:"problems,omitempty"`
}

// IssueCard handles card issuance
func (h *CardHandler) IssueCard(c echo.Context) error {
	caller, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req IssueCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	userID := caller
	if req.UserID != nil && *req.UserID != caller {
		if !middleware.HasRole(c, entity.RoleAdmin) {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}
		userID = *req.UserID
	}

	output, err := h.cardUC.IssueCard(c.Request().Context(), userID, req.RestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, IssueCardResponse{Card: output.Card, Code: output.Identifier})
}

// GetCard handles retrieving a card
func (h *CardHandler) GetCard(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// UpdateCardStatus handles suspending, blocking or reactivating a card
func (h *CardHandler) UpdateCardStatus(c echo.Context) error {
	cardID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCardStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	card, err := h.cardUC.UpdateCardStatus(c.Request().Context(), cardID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// AdjustPoints handles operator credits and debits
func (h *CardHandler) AdjustPoints(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cardID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AdjustPointsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.cardUC.AdjustPoints(c.Request().Context(), usecase.AdjustPointsInput{
		CardID:  cardID,
		Delta:   req.Delta,
		Reason:  req.Reason,
		AdminID: adminID,
		Note:    req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, LedgerChangeResponse{Entry: output.Entry, Card: output.Card})
}

// GetLedger handles listing a card's point log
func (h *CardHandler) GetLedger(c echo.Context) error {
	card, err := h.access.load(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entries, err := h.cardUC.GetLedger(c.Request().Context(), card.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// ReconcileCard handles replaying a card's ledger against its balance
func (h *CardHandler) ReconcileCard(c echo.Context) error {
	cardID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.cardUC.ReconcileCard(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LedgerReportResponse{
		CardID:          report.CardID,
		EntryCount:      report.EntryCount,
		ReplayedBalance: report.ReplayedBalance,
		CurrentPoints:   report.CurrentPoints,
		Consistent:      report.Consistent,
		Problems:        report.Problems,
	})
}
