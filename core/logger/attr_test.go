package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hedns/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("record", slog.String("id", "445566"), slog.String("name", "_acme-challenge.example"))
	require.Equal(t, "record", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "name", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Performance and Timing Tests
// ============================================================================

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

// ============================================================================
// DNS Domain Tests
// ============================================================================

func TestZone(t *testing.T) {
	t.Parallel()
	attr := logger.Zone("adammiller.io")
	require.Equal(t, "zone", attr.Key)
	assert.Equal(t, "adammiller.io", attr.Value.String())

	empty := logger.Zone("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestZoneID(t *testing.T) {
	t.Parallel()
	attr := logger.ZoneID("123321")
	require.Equal(t, "zone_id", attr.Key)
	assert.Equal(t, "123321", attr.Value.String())

	empty := logger.ZoneID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRecordID(t *testing.T) {
	t.Parallel()
	attr := logger.RecordID("445566")
	require.Equal(t, "record_id", attr.Key)
	assert.Equal(t, "445566", attr.Value.String())

	empty := logger.RecordID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRecordName(t *testing.T) {
	t.Parallel()
	attr := logger.RecordName("_acme-challenge.example")
	require.Equal(t, "record_name", attr.Key)
	assert.Equal(t, "_acme-challenge.example", attr.Value.String())

	empty := logger.RecordName("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomain(t *testing.T) {
	t.Parallel()
	attr := logger.Domain("example.adammiller.io")
	require.Equal(t, "domain", attr.Key)
	assert.Equal(t, "example.adammiller.io", attr.Value.String())

	empty := logger.Domain("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Generic Identifier and Metadata Tests
// ============================================================================

func TestID(t *testing.T) {
	t.Parallel()

	attr := logger.ID("zone_id", "123321")
	require.Equal(t, "zone_id", attr.Key)
	assert.Equal(t, "123321", attr.Value.Any())

	empty := logger.ID("zone_id", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRunID(t *testing.T) {
	t.Parallel()
	attr := logger.RunID("b6dce2f1")
	require.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "b6dce2f1", attr.Value.String())

	empty := logger.RunID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("henet")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "henet", attr.Value.String())
}

func TestRetryCount(t *testing.T) {
	t.Parallel()
	attr := logger.RetryCount(3)
	require.Equal(t, "retry_count", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestKey(t *testing.T) {
	t.Parallel()

	attr := logger.Key("ttl", 300)
	require.Equal(t, "ttl", attr.Key)
	assert.Equal(t, int64(300), attr.Value.Int64())

	empty := logger.Key("ttl", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}
