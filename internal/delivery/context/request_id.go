// Package context carries request-scoped values between the transports and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyActorID is the key for the authenticated actor (staff, admin or guest).
	KeyActorID ContextKey = "actor_id"

	// KeyTerminalID is the key for the scanning terminal that sent the request.
	KeyTerminalID ContextKey = "terminal_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXTerminalID names the point-of-sale terminal behind a scan.
	HeaderXTerminalID = "X-Terminal-Id"

	maxRequestIDLength = 128
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// AcceptableRequestID reports whether a caller-supplied ID can be propagated as is.
func AcceptableRequestID(requestID string) bool {
	return requestID != "" && len(requestID) <= maxRequestIDLength
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithActorID returns a new context carrying the authenticated actor.
func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyActorID, actorID)
}

// GetActorIDFromContext returns the authenticated actor, if any.
func GetActorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyActorID).(uuid.UUID)

	return id, ok
}

// WithTerminalID returns a new context carrying the scanning terminal.
func WithTerminalID(ctx context.Context, terminalID string) context.Context {
	return context.WithValue(ctx, KeyTerminalID, terminalID)
}

// GetTerminalIDFromContext returns the scanning terminal, or "" for requests
// that did not come from one.
func GetTerminalIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyTerminalID).(string)

	return id
}
