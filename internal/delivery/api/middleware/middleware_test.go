package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"loyalty/internal/delivery/api/response"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"
	mockSvc "loyalty/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(tokenSvc service.TokenService) (*echo.Echo, *AuthMiddleware) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e, NewAuthMiddleware(tokenSvc)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthMiddleware(t *testing.T) {
	staffRestaurant := uuid.New()
	staffID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("staff-token").Return(&service.Claims{
		ActorID:      staffID,
		RestaurantID: &staffRestaurant,
		Roles:        []string{"staff"},
	}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("admin-token").Return(&service.Claims{
		ActorID: uuid.New(),
		Roles:   []string{"admin", "unknown"},
	}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("expired")).Maybe()

	e, auth := newTestEcho(tokenSvc)
	group := e.Group("/restaurants/:rid", auth.Authenticate, auth.RequireRole(entity.RoleStaff, entity.RoleAdmin), auth.RestaurantScope("rid"))
	group.GET("/whoami", func(c echo.Context) error {
		actorID, ok := GetActorID(c)
		require.True(t, ok)

		return c.String(http.StatusOK, actorID.String())
	})
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
		auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", path: "/admin", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "not bearer", path: "/admin", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "invalid token", path: "/admin", header: "Bearer bad-token", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "wrong role", path: "/admin", header: "Bearer staff-token", wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "admin", path: "/admin", header: "Bearer admin-token", wantStatus: http.StatusNoContent},
		{name: "own restaurant", path: "/restaurants/" + staffRestaurant.String() + "/whoami", header: "Bearer staff-token", wantStatus: http.StatusOK},
		{name: "other restaurant", path: "/restaurants/" + uuid.NewString() + "/whoami", header: "Bearer staff-token", wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "admin any restaurant", path: "/restaurants/" + uuid.NewString() + "/whoami", header: "Bearer admin-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestErrorMiddleware(t *testing.T) {
	e, _ := newTestEcho(nil)
	e.GET("/invalid-code", func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrInvalidCode, "record purchase")
	})
	e.GET("/sold-out", func(echo.Context) error {
		return domainerrors.ErrRewardSoldOut.WithDetails("reward r1 has no stock left")
	})
	e.GET("/forbidden", func(echo.Context) error {
		return domainerrors.ErrTierIneligible.WithDetails("requires level 3")
	})
	e.GET("/boom", func(echo.Context) error {
		return errors.New("pq: connection refused")
	})
	e.GET("/echo", func(echo.Context) error {
		return echo.ErrMethodNotAllowed
	})

	tests := []struct {
		path        string
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{path: "/invalid-code", wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_CODE", wantMessage: domainerrors.InvalidCodeMessage},
		{path: "/sold-out", wantStatus: http.StatusConflict, wantCode: "REWARD_SOLD_OUT", wantMessage: "reward is sold out", wantDetails: "reward r1 has no stock left"},
		{path: "/forbidden", wantStatus: http.StatusForbidden, wantCode: "TIER_INELIGIBLE", wantMessage: "card tier is too low for this reward"},
		{path: "/boom", wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR", wantMessage: "Internal server error, please try again later"},
		{path: "/echo", wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR", wantMessage: "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantMessage, info.Message)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}
