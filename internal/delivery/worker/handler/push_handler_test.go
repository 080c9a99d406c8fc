package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loyalty/config"
	domainerrors "loyalty/internal/domain/errors"
	mockUC "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, data string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(data))
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "sched-42"}

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockJobUsecase) {
	t.Helper()

	jobs := mockUC.NewMockJobUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		JobUC:  jobs,
	}), jobs
}

func push(h *PushHandler, body string) int {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec.Code
}

func TestPushHandler_HandlePush(t *testing.T) {
	restaurantID := uuid.New()
	command := `{"job":"rotate-codes","restaurant_id":"` + restaurantID.String() + `"}`

	t.Run("runs the job", func(t *testing.T) {
		h, jobs := newTestPushHandler(t)
		jobs.EXPECT().
			Run(mock.Anything, usecase.JobCommand{Job: usecase.JobRotateCodes, RestaurantID: &restaurantID}).
			Return(&usecase.JobResult{Job: usecase.JobRotateCodes, Affected: 12}, nil)

		assert.Equal(t, http.StatusOK, push(h, pushBody(t, command)))
	})

	t.Run("database outage is retried", func(t *testing.T) {
		h, jobs := newTestPushHandler(t)
		jobs.EXPECT().Run(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "list cards"), "run job"))

		assert.Equal(t, http.StatusServiceUnavailable, push(h, pushBody(t, command)))
	})

	t.Run("rejected command is acknowledged", func(t *testing.T) {
		h, jobs := newTestPushHandler(t)
		jobs.EXPECT().Run(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("restaurant_id is required"))

		assert.Equal(t, http.StatusOK, push(h, pushBody(t, `{"job":"rotate-codes"}`)))
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		assert.Equal(t, http.StatusBadRequest, push(h, pushBody(t, "not json")))
		assert.Equal(t, http.StatusBadRequest, push(h, `{"message":{"data":"%%%"}}`))
	})

	t.Run("push token is checked", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.WithTokenVerifier(func(*http.Request) error { return errors.New("bad audience") })

		assert.Equal(t, http.StatusUnauthorized, push(h, pushBody(t, command)))
	})
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = "develop"
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.False(t, h.verifyPushAuth)
}
