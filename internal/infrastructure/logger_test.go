package infrastructure

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = ContextWithTraceID(ctx)
	traceID := GetTraceID(ctx)
	require.NotEmpty(t, traceID)

	// Attaching again with an explicit ID replaces it
	ctx = WithTraceID(ctx, "fixed-id")
	assert.Equal(t, "fixed-id", GetTraceID(ctx))
}

func TestGenerateTraceID_Unique(t *testing.T) {
	a := GenerateTraceID()
	b := GenerateTraceID()
	assert.NotEqual(t, a, b)
}

func TestTraceHandler_InjectsTraceID(t *testing.T) {
	var buf bytes.Buffer
	handler := &traceHandler{Handler: slog.NewJSONHandler(&buf, nil)}
	logger := slog.New(handler)

	ctx := WithTraceID(context.Background(), "run-123")
	logger.InfoContext(ctx, "processing sheet", slog.String("sheet", "Journal"))

	assert.Contains(t, buf.String(), `"trace_id":"run-123"`)
	assert.Contains(t, buf.String(), `"sheet":"Journal"`)
}

func TestTraceHandler_NoTraceID(t *testing.T) {
	var buf bytes.Buffer
	handler := &traceHandler{Handler: slog.NewJSONHandler(&buf, nil)}
	logger := slog.New(handler)

	logger.Info("no trace")

	assert.NotContains(t, buf.String(), "trace_id")
}
