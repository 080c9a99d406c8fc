package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestAcceptableRequestID(t *testing.T) {
	assert.True(t, AcceptableRequestID("abc"))
	assert.False(t, AcceptableRequestID(""))
	assert.False(t, AcceptableRequestID(strings.Repeat("x", 129)))
}

func TestLoggerAndActor(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))

	actorID := uuid.New()
	got, ok := GetActorIDFromContext(WithActorID(ctx, actorID))
	assert.True(t, ok)
	assert.Equal(t, actorID, got)

	_, ok = GetActorIDFromContext(ctx)
	assert.False(t, ok)
}

func TestTerminalID(t *testing.T) {
	assert.Empty(t, GetTerminalIDFromContext(context.Background()))

	ctx := WithTerminalID(context.Background(), "till-1")
	assert.Equal(t, "till-1", GetTerminalIDFromContext(ctx))
}
