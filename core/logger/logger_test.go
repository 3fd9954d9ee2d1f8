package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hedns/core/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	log := logger.New()
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewWithOutputAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("lookup retry", logger.RetryCount(2))

	out := buf.String()
	assert.Contains(t, out, "lookup retry")
	assert.Contains(t, out, "retry_count=2")
}

func TestNewJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
	)

	log.Info("record created", logger.Component("henet"), logger.RecordID("445566"))

	out := buf.String()
	assert.Contains(t, out, `"component":"henet"`)
	assert.Contains(t, out, `"record_id":"445566"`)
}

func TestNewWithAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(logger.RunID("b6dce2f1")),
	)

	log.Info("starting")

	assert.Contains(t, buf.String(), `"run_id":"b6dce2f1"`)
}

func TestWithDevelopment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("certbot-he-hook"),
		logger.WithOutput(&buf),
	)

	log.Debug("debug enabled")

	out := buf.String()
	assert.Contains(t, out, "debug enabled")
	assert.Contains(t, out, "app=certbot-he-hook")
}

func TestWithProduction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("certbot-he-hook"),
		logger.WithOutput(&buf),
	)

	log.Debug("should be suppressed")
	log.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "should be suppressed")
	assert.Contains(t, out, `"app":"certbot-he-hook"`)
	assert.Contains(t, out, `"visible"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DEBUG", slog.LevelDebug},
		{"padded", "  info  ", slog.LevelInfo},
		{"unknown falls back to info", "verbose", slog.LevelInfo},
		{"empty falls back to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}
