package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"Warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSlogLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(Config{Level: LevelWarn, Format: "json", Output: &buf})

	l.Info("dropped")
	l.Warn("kept", Int("count", 2))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, float64(2), entries[0]["count"])
	assert.Equal(t, LevelWarn, l.Level())
}

func TestWithContextAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	base := NewSlogLogger(Config{Level: LevelDebug, Format: "json", Output: &buf})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithDeviceID(ctx, "C0:F5:35:ED:FD:25")
	ctx = WithLogger(ctx, base)

	Ctx(ctx).Error("fetch failed", Err(errors.New("boom")), Component("report"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "user-1", entries[0]["user_id"])
	assert.Equal(t, "C0:F5:35:ED:FD:25", entries[0]["device_id"])
	assert.Equal(t, "boom", entries[0]["error"])
	assert.Equal(t, "report", entries[0]["component"])
}

func TestWithRequestIDGeneratesWhenEmpty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	assert.Len(t, RequestIDFromContext(ctx), 36)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(Config{Level: LevelInfo, Format: "text", Output: &buf})
	SetDefault(l)
	t.Cleanup(func() { SetDefault(nil) })

	FromContext(context.Background()).Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}
