package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "loyalty/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// correlation is what every log line and published event of a request shares.
type correlation struct {
	requestID  string
	terminalID string
}

func (c correlation) attrs() []any {
	attrs := []any{slog.String("request_id", c.requestID)}
	if c.terminalID != "" {
		attrs = append(attrs, slog.String("terminal_id", c.terminalID))
	}

	return attrs
}

// RequestContext stamps each request with its correlation fields and a logger
// that carries them. Services read both back from the request context.
type RequestContext struct {
	base  *slog.Logger
	newID func() string
}

// NewRequestContext creates the middleware around the process logger.
func NewRequestContext(logger *slog.Logger) *RequestContext {
	return &RequestContext{
		base:  logger,
		newID: func() string { return uuid.New().String() },
	}
}

// Handle must run before the logger middleware so access logs carry the ID.
func (m *RequestContext) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		fields := m.resolve(c.Request())

		deliverycontext.SetRequestID(c, fields.requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, fields.requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), fields.requestID)
		if fields.terminalID != "" {
			ctx = deliverycontext.WithTerminalID(ctx, fields.terminalID)
		}
		ctx = deliverycontext.WithLogger(ctx, m.base.With(fields.attrs()...))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolve keeps caller IDs within the accepted length and mints one otherwise.
// An oversized terminal ID is dropped rather than replaced.
func (m *RequestContext) resolve(req *http.Request) correlation {
	fields := correlation{requestID: req.Header.Get(deliverycontext.HeaderXRequestID)}
	if !deliverycontext.AcceptableRequestID(fields.requestID) {
		fields.requestID = m.newID()
	}
	if terminal := req.Header.Get(deliverycontext.HeaderXTerminalID); deliverycontext.AcceptableRequestID(terminal) {
		fields.terminalID = terminal
	}

	return fields
}
