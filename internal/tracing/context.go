package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// TraceIDKey is the context key for trace ID
	TraceIDKey ContextKey = "trace_id"
	// SessionIDKey is the context key for the export session ID
	SessionIDKey ContextKey = "session_id"
)

// NewSessionID generates a new export session ID
func NewSessionID() string {
	return uuid.New().String()
}

// WithTraceID adds a trace ID to the context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSessionID adds an export session ID to the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetTraceID retrieves the trace ID from the context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// GetSessionID retrieves the export session ID from the context
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

// PropagateToLogger adds tracing context to a zerolog logger
func PropagateToLogger(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if traceID := GetTraceID(ctx); traceID != "" {
		logger = logger.With().Str("trace_id", traceID).Logger()
	}
	if sessionID := GetSessionID(ctx); sessionID != "" {
		logger = logger.With().Str("session_id", sessionID).Logger()
	}
	return logger
}
