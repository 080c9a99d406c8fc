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

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler serves purchase scans and their reversals
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// RecordPurchaseRequest represents a scanned purchase
type RecordPurchaseRequest struct {
	Code   string          `json:"code" validate:"required,loyaltycode"`
	Amount decimal.Decimal `json:"amount" validate:"nonnegdecimal"`
}

// ReverseTransactionRequest represents a refund or cancellation
type ReverseTransactionRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// PurchaseResponse reports the credit applied for a purchase
type PurchaseResponse struct {
	TransactionID       uuid.UUID `json:"transaction_id"`
	CardID              uuid.UUID `json:"card_id"`
	BasePoints          int64     `json:"base_points"`
	PointsEarned        int64     `json:"points_earned"`
	NewBalance          int64     `json:"new_balance"`
	TierName            string    `json:"tier_name,omitempty"`
	DuplicateUseWarning bool      `json:"duplicate_use_warning"`
}

// ReversalResponse reports the debit of a refund or cancellation
type ReversalResponse struct {
	OriginalTransactionID uuid.UUID  `json:"original_transaction_id"`
	RefundTransactionID   *uuid.UUID `json:"refund_transaction_id,omitempty"`
	PointsReversed        int64      `json:"points_reversed"`
	NewBalance            int64      `json:"new_balance"`
	TierName              string     `json:"tier_name,omitempty"`
}

// RecordPurchase handles a terminal crediting a purchase
func (h *TransactionHandler) RecordPurchase(c echo.Context) error {
	restaurantID, err := uuidParam(c, "rid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecordPurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.transactionUC.RecordPurchase(c.Request().Context(), usecase.PurchaseInput{
		RestaurantID: restaurantID,
		ScannedCode:  req.Code,
		Amount:       req.Amount,
		StaffID:      optionalActorID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, PurchaseResponse{
		TransactionID:       result.TransactionID,
		CardID:              result.CardID,
		BasePoints:          result.BasePoints,
		PointsEarned:        result.PointsEarned,
		NewBalance:          result.NewBalance,
		TierName:            result.TierName,
		DuplicateUseWarning: result.DuplicateUseWarning,
	})
}

// ProcessRefund handles refunding a purchase with a compensating row
func (h *TransactionHandler) ProcessRefund(c echo.Context) error {
	transactionID, req, err := h.bindReversal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.transactionUC.ProcessRefund(c.Request().Context(), usecase.RefundInput{
		TransactionID: transactionID,
		Reason:        req.Reason,
		StaffID:       optionalActorID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReversalResponse(result))
}

// CancelTransaction handles voiding a purchase
func (h *TransactionHandler) CancelTransaction(c echo.Context) error {
	transactionID, req, err := h.bindReversal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.transactionUC.CancelTransaction(c.Request().Context(), usecase.CancelInput{
		TransactionID: transactionID,
		Reason:        req.Reason,
		StaffID:       optionalActorID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReversalResponse(result))
}

// DisputeTransaction handles flagging a purchase as contested
func (h *TransactionHandler) DisputeTransaction(c echo.Context) error {
	transactionID, req, err := h.bindReversal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.transactionUC.DisputeTransaction(c.Request().Context(), usecase.DisputeInput{
		TransactionID: transactionID,
		Reason:        req.Reason,
		StaffID:       optionalActorID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReversalResponse(result))
}

// GetTransaction handles reading a transaction
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, txn)
}

func (h *TransactionHandler) bindReversal(c echo.Context) (uuid.UUID, ReverseTransactionRequest, error) {
	var req ReverseTransactionRequest

	transactionID, err := uuidParam(c, "id")
	if err != nil {
		return uuid.Nil, req, err
	}

	// An empty body is a reversal without a reason.
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return uuid.Nil, req, err
		}
	}

	return transactionID, req, nil
}

func toReversalResponse(result *usecase.ReversalResult) ReversalResponse {
	return ReversalResponse{
		OriginalTransactionID: result.OriginalTransactionID,
		RefundTransactionID:   result.RefundTransactionID,
		PointsReversed:        result.PointsReversed,
		NewBalance:            result.NewBalance,
		TierName:              result.TierName,
	}
}
