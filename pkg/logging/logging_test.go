package logging_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/seedmap/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestNewLoggerFromConfigWritesFile(t *testing.T) {
	original := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(original) })

	path := filepath.Join(t.TempDir(), "seedmap.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "debug",
		Format: "json",
		Output: path,
		Fields: map[string]any{"service": "seedmap"},
	})
	logger.Info().Int("records", 3).Msg("dataset loaded")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"dataset loaded"`)
	assert.Contains(t, string(content), `"service":"seedmap"`)
	assert.Contains(t, string(content), `"records":3`)
}

func TestContextHelpers(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRequestID(ctx, "req-1")
	ctx = logging.WithStartup(ctx, "Acme AI")
	ctx = logging.WithDataset(ctx, "data/seeds.json")
	ctx = logging.WithOperation(ctx, "detail")
	ctx = logging.WithError(ctx, errors.New("boom"))

	logging.FromContext(ctx).Info().Msg("rendered")

	assert.Equal(t, "req-1", logging.RequestID(ctx))
	for _, want := range []string{`"request_id":"req-1"`, `"startup":"Acme AI"`, `"dataset":"data/seeds.json"`, `"operation":"detail"`, `"error":"boom"`} {
		tl.AssertContains(t, want)
	}
	assert.Len(t, tl.Lines(), 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Equal(t, "", logging.RequestID(context.Background()))
}

func TestWithErrorNil(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, logging.WithError(ctx, nil))
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Info().Str("filter", "AI").Msg("grid rendered")
	tl.AssertContains(t, "grid rendered")
	tl.AssertNotContains(t, "detail rendered")
}
