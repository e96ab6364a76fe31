package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(t.Context(), expected)

		actual := FromContext(ctx)

		require.NotNil(t, actual)
		assert.Equal(t, expected, actual)
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(t.Context())

		require.NotNil(t, l)
		assert.Equal(t, GetDefault(), l)
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, "not a logger")

		l := FromContext(ctx)

		require.NotNil(t, l)
		assert.Equal(t, GetDefault(), l)
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("Should accept known level names in any case", func(t *testing.T) {
		for in, want := range map[string]LogLevel{
			"debug":    DebugLevel,
			"INFO":     InfoLevel,
			" Warn ":   WarnLevel,
			"error":    ErrorLevel,
			"disabled": DisabledLevel,
		} {
			got, ok := ParseLevel(in)
			assert.True(t, ok, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("Should reject unknown level names", func(t *testing.T) {
		got, ok := ParseLevel("verbose")
		assert.False(t, ok)
		assert.Equal(t, InfoLevel, got)
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should convert all log levels to charm log levels", func(t *testing.T) {
		testCases := []struct {
			level    LogLevel
			expected int
		}{
			{DebugLevel, -4},
			{InfoLevel, 0},
			{WarnLevel, 4},
			{ErrorLevel, 8},
			{DisabledLevel, 1000},
			{LogLevel("unknown"), 0},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, int(tc.level.ToCharmlogLevel()), "level %s", tc.level)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write text output", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.Info("dataset written", "records", 3)

		assert.Contains(t, buf.String(), "dataset written")
		assert.Contains(t, buf.String(), "records=3")
	})

	t.Run("Should write JSON output when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true, TimeFormat: "15:04:05"})

		l.Info("dataset written", "records", 3)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
		assert.Equal(t, "dataset written", entry["msg"])
		assert.EqualValues(t, 3, entry["records"])
	})

	t.Run("Should filter messages below the level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: WarnLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.Debug("debug message")
		l.Info("info message")
		l.Warn("warn message")
		l.Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})

	t.Run("Should discard everything when disabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: DisabledLevel, Output: &buf})

		l.Error("error message")

		assert.Empty(t, buf.String())
	})
}

func TestLogger_With(t *testing.T) {
	t.Run("Should add fields to every entry", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})

		l.With("component", "dataset").Info("started")

		out := buf.String()
		assert.True(t, strings.Contains(out, "component=dataset"), out)
		assert.Contains(t, out, "started")
	})
}

func TestInit(t *testing.T) {
	t.Run("Should route package level calls to the new default", func(t *testing.T) {
		prev := GetDefault()
		t.Cleanup(func() { defaultLogger = prev })

		var buf bytes.Buffer
		Init(&Config{Level: DebugLevel, Output: &buf, TimeFormat: "15:04:05"})

		Debug("debug message", "key", "value")
		Error("error message")

		assert.NotSame(t, prev, GetDefault())
		assert.Equal(t, GetDefault(), FromContext(t.Context()))
		out := buf.String()
		assert.Contains(t, out, "debug message")
		assert.Contains(t, out, "key=value")
		assert.Contains(t, out, "error message")
	})
}
