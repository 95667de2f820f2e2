package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.NotEmpty(t, traceID, "Expected non-empty trace ID after setting")
	assert.Len(t, traceID, 32, "Expected trace ID length to be 32 hex characters (16 bytes)")

	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc123")
	assert.Equal(t, "abc123", GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID when context has invalid type")
}

func TestGenerateTraceID(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		assert.Len(t, id, 32, "Expected all trace IDs to be 32 hex characters")
		_, err := hex.DecodeString(id)
		assert.NoError(t, err, "Expected valid hex string")
		assert.False(t, seen[id], "Expected all trace IDs to be unique")
		seen[id] = true
	}

	assert.Len(t, seen, iterations, "Expected all generated trace IDs to be unique")
}
