package shared

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID back to the caller.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, generateTraceID())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random 32-character hex trace ID.
func generateTraceID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
