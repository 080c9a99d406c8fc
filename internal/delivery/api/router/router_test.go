package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/response"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/delivery/api/validator"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/sqlitetest"
	mockSvc "loyalty/internal/mocks/service"
	mockUC "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo         *echo.Echo
	cards        *mockUC.MockCardUsecase
	codes        *mockUC.MockCodeIdentifierUsecase
	transactions *mockUC.MockTransactionUsecase
	tiers        *mockUC.MockTierUsecase
	redemptions  *mockUC.MockRedemptionUsecase
	jobs         *mockUC.MockJobUsecase

	guestID      uuid.UUID
	restaurantID uuid.UUID
	otherID      uuid.UUID
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &testAPI{
		cards:        mockUC.NewMockCardUsecase(t),
		codes:        mockUC.NewMockCodeIdentifierUsecase(t),
		transactions: mockUC.NewMockTransactionUsecase(t),
		tiers:        mockUC.NewMockTierUsecase(t),
		redemptions:  mockUC.NewMockRedemptionUsecase(t),
		jobs:         mockUC.NewMockJobUsecase(t),
		guestID:      uuid.New(),
		restaurantID: uuid.New(),
		otherID:      uuid.New(),
	}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("guest").Return(&service.Claims{ActorID: api.guestID, Roles: []string{"guest"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("staff").Return(&service.Claims{ActorID: uuid.New(), RestaurantID: &api.restaurantID, Roles: []string{"staff"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("admin").Return(&service.Claims{ActorID: uuid.New(), Roles: []string{"admin"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken("scheduler").Return(&service.Claims{ActorID: uuid.New(), Roles: []string{"scheduler"}}, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CardHandler:        handler.NewCardHandler(handler.CardHandlerParams{CardUC: api.cards, Logger: logger}),
		CodeHandler:        handler.NewCodeHandler(handler.CodeHandlerParams{CodeUC: api.codes, CardUC: api.cards, Logger: logger}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{TransactionUC: api.transactions, Logger: logger}),
		TierHandler:        handler.NewTierHandler(handler.TierHandlerParams{TierUC: api.tiers, CardUC: api.cards, Logger: logger}),
		RedemptionHandler:  handler.NewRedemptionHandler(handler.RedemptionHandlerParams{RedemptionUC: api.redemptions, CardUC: api.cards, Logger: logger}),
		JobHandler:         handler.NewJobHandler(handler.JobHandlerParams{JobUC: api.jobs, Logger: logger}),
		HealthHandler:      handler.NewHealthHandler(sqlitetest.Open(t)),
		AuthMiddleware:     apimiddleware.NewAuthMiddleware(tokens),
	})
	r.RegisterRoutes(e)
	api.echo = e

	return api
}

func (api *testAPI) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestRouter_Health(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health/ready", "", "").Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/cards/"+uuid.NewString(), "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Code)
}

func TestRouter_GuestCardOwnership(t *testing.T) {
	api := newTestAPI(t)
	own := &entity.GuestCard{ID: uuid.New(), UserID: api.guestID, RestaurantID: api.restaurantID, CurrentPoints: 40}
	foreign := &entity.GuestCard{ID: uuid.New(), UserID: uuid.New(), RestaurantID: api.restaurantID}
	api.cards.EXPECT().GetCard(mock.Anything, own.ID).Return(own, nil)
	api.cards.EXPECT().GetCard(mock.Anything, foreign.ID).Return(foreign, nil)

	rec := api.do(http.MethodGet, "/api/v1/cards/"+own.ID.String(), "guest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(40), decodeData[entity.GuestCard](t, rec).CurrentPoints)

	rec = api.do(http.MethodGet, "/api/v1/cards/"+foreign.ID.String(), "guest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CARD_NOT_FOUND", decodeError(t, rec).Code)

	rec = api.do(http.MethodGet, "/api/v1/cards/not-a-uuid", "guest", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_IssueCard(t *testing.T) {
	api := newTestAPI(t)
	card := &entity.GuestCard{ID: uuid.New(), UserID: api.guestID, RestaurantID: api.restaurantID}
	api.cards.EXPECT().IssueCard(mock.Anything, api.guestID, api.restaurantID).
		Return(&usecase.IssueCardOutput{Card: card, Identifier: &entity.CardIdentifier{Code: "ABCD2345EFGH"}}, nil)

	rec := api.do(http.MethodPost, "/api/v1/cards", "guest", `{"restaurant_id":"`+api.restaurantID.String()+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ABCD2345EFGH", decodeData[handler.IssueCardResponse](t, rec).Code.Code)

	// Guests cannot issue for someone else.
	rec = api.do(http.MethodPost, "/api/v1/cards", "guest",
		`{"restaurant_id":"`+api.restaurantID.String()+`","user_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ValidateCode(t *testing.T) {
	api := newTestAPI(t)
	cardID := uuid.New()
	path := "/api/v1/restaurants/" + api.restaurantID.String() + "/codes/validate"

	api.codes.EXPECT().ValidateCode(mock.Anything, "GOODCODE", api.restaurantID).
		Return(&usecase.ValidationResult{Valid: true, CardID: &cardID, UsageCount: 2}, nil)
	api.codes.EXPECT().ValidateCode(mock.Anything, "OLDCODE", api.restaurantID).
		Return(&usecase.ValidationResult{Reason: entity.CodeRejectReason("SIGNATURE_MISMATCH")}, nil)

	rec := api.do(http.MethodPost, path, "staff", `{"code":"GOODCODE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[handler.ValidateCodeResponse](t, rec)
	assert.Equal(t, cardID, got.CardID)
	assert.Equal(t, int64(2), got.UsageCount)

	rec = api.do(http.MethodPost, path, "staff", `{"code":"OLDCODE"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, domainerrors.InvalidCodeMessage, errInfo.Message)
	assert.Nil(t, errInfo.Details)
	assert.NotContains(t, rec.Body.String(), "SIGNATURE")

	// Malformed input looks like any other bad code.
	rec = api.do(http.MethodPost, path, "staff", `{"code":"   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Staff bound to one restaurant cannot scan at another.
	rec = api.do(http.MethodPost, "/api/v1/restaurants/"+api.otherID.String()+"/codes/validate", "staff", `{"code":"GOODCODE"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodPost, path, "guest", `{"code":"GOODCODE"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_RecordPurchase(t *testing.T) {
	api := newTestAPI(t)
	path := "/api/v1/restaurants/" + api.restaurantID.String() + "/purchases"
	txnID := uuid.New()

	api.transactions.EXPECT().
		RecordPurchase(mock.Anything, mock.MatchedBy(func(in usecase.PurchaseInput) bool {
			return in.RestaurantID == api.restaurantID && in.Amount.Equal(decimal.RequireFromString("12.50")) && in.StaffID != nil
		})).
		Return(&usecase.PurchaseResult{TransactionID: txnID, BasePoints: 1, PointsEarned: 1, NewBalance: 11}, nil)

	rec := api.do(http.MethodPost, path, "staff", `{"code":"ABCD2345EFGH","amount":"12.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[handler.PurchaseResponse](t, rec)
	assert.Equal(t, txnID, got.TransactionID)
	assert.Equal(t, int64(11), got.NewBalance)

	rec = api.do(http.MethodPost, path, "staff", `{"code":"ABCD2345EFGH","amount":"-3"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestRouter_RefundConflict(t *testing.T) {
	api := newTestAPI(t)
	txnID := uuid.New()
	api.transactions.EXPECT().ProcessRefund(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAlreadyRefunded)

	rec := api.do(http.MethodPost, "/api/v1/transactions/"+txnID.String()+"/refund", "staff", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "TRANSACTION_ALREADY_REVERSED", decodeError(t, rec).Code)
}

func TestRouter_DisputeRequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	txnID := uuid.New()
	body := `{"reason":"chargeback"}`

	rec := api.do(http.MethodPost, "/api/v1/transactions/"+txnID.String()+"/dispute", "staff", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	api.transactions.EXPECT().DisputeTransaction(mock.Anything, mock.MatchedBy(func(in usecase.DisputeInput) bool {
		return in.TransactionID == txnID && in.Reason == "chargeback"
	})).Return(&usecase.ReversalResult{OriginalTransactionID: txnID, PointsReversed: 30, NewBalance: 0}, nil)

	rec = api.do(http.MethodPost, "/api/v1/transactions/"+txnID.String()+"/dispute", "admin", body)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[handler.ReversalResponse](t, rec)
	assert.Equal(t, int64(30), got.PointsReversed)
	assert.Nil(t, got.RefundTransactionID)
}

func TestRouter_AdminOnlyRoutes(t *testing.T) {
	api := newTestAPI(t)
	cardID := uuid.New()
	body := `{"delta":50,"reason":"BONUS","note":"birthday"}`

	rec := api.do(http.MethodPost, "/api/v1/cards/"+cardID.String()+"/adjustments", "staff", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	api.cards.EXPECT().AdjustPoints(mock.Anything, mock.MatchedBy(func(in usecase.AdjustPointsInput) bool {
		return in.CardID == cardID && in.Delta == 50 && in.Reason == entity.PointReasonBonus
	})).Return(&usecase.LedgerChangeOutput{
		Entry: &entity.PointLogEntry{Delta: 50, BalanceAfter: 50},
		Card:  &entity.GuestCard{ID: cardID, CurrentPoints: 50},
	}, nil)

	rec = api.do(http.MethodPost, "/api/v1/cards/"+cardID.String()+"/adjustments", "admin", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(50), decodeData[handler.LedgerChangeResponse](t, rec).Card.CurrentPoints)

	rec = api.do(http.MethodPost, "/api/v1/cards/"+cardID.String()+"/adjustments", "admin", `{"delta":5,"reason":"PURCHASE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RenderQR(t *testing.T) {
	api := newTestAPI(t)
	card := &entity.GuestCard{ID: uuid.New(), UserID: api.guestID, RestaurantID: api.restaurantID}
	api.cards.EXPECT().GetCard(mock.Anything, card.ID).Return(card, nil)
	api.codes.EXPECT().RenderCodeQR(mock.Anything, card.ID).Return([]byte("\x89PNG"), nil)

	rec := api.do(http.MethodGet, "/api/v1/cards/"+card.ID.String()+"/code/qr", "guest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestRouter_Redeem(t *testing.T) {
	api := newTestAPI(t)
	card := &entity.GuestCard{ID: uuid.New(), UserID: api.guestID, RestaurantID: api.restaurantID}
	rewardID := uuid.New()
	api.cards.EXPECT().GetCard(mock.Anything, card.ID).Return(card, nil).Twice()
	api.redemptions.EXPECT().Redeem(mock.Anything, card.ID, rewardID).
		Return(&usecase.RedeemResult{RedemptionID: uuid.New(), Code: "K7M2Q9XR", PointsSpent: 100, NewBalance: 20}, nil).Once()
	api.redemptions.EXPECT().Redeem(mock.Anything, card.ID, rewardID).
		Return(nil, domainerrors.ErrRewardSoldOut).Once()

	body := `{"reward_id":"` + rewardID.String() + `"}`
	rec := api.do(http.MethodPost, "/api/v1/cards/"+card.ID.String()+"/redemptions", "guest", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "K7M2Q9XR", decodeData[handler.RedeemResponse](t, rec).Code)

	rec = api.do(http.MethodPost, "/api/v1/cards/"+card.ID.String()+"/redemptions", "guest", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "REWARD_SOLD_OUT", decodeError(t, rec).Code)
}

func TestRouter_Jobs(t *testing.T) {
	api := newTestAPI(t)
	keep := 10
	api.jobs.EXPECT().Run(mock.Anything, usecase.JobCommand{
		Job:          usecase.JobCleanupIdentifiers,
		RestaurantID: &api.restaurantID,
		KeepCount:    &keep,
	}).Return(&usecase.JobResult{Job: usecase.JobCleanupIdentifiers, Affected: 6}, nil)

	body := `{"restaurant_id":"` + api.restaurantID.String() + `","keep_count":10}`
	rec := api.do(http.MethodPost, "/internal/jobs/cleanup-identifiers", "admin", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodPost, "/internal/jobs/cleanup-identifiers", "scheduler", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, decodeData[usecase.JobResult](t, rec).Affected)
}
