package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRequestIDFromContext_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
}

func TestGetRequestIDFromContext_MissingReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault_PrefersContextLogger(t *testing.T) {
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestGetLoggerOrDefault_FallsBack(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
