package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muliwe/go-textmath/internal/runner"
)

func newJSONLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: FormatJSON, Output: &buf})
	require.NoError(t, err)
	return l, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("DefaultConfig().Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != FormatConsole {
		t.Errorf("DefaultConfig().Format = %q, want %q", cfg.Format, FormatConsole)
	}
	if cfg.Output == nil {
		t.Error("DefaultConfig().Output should not be nil")
	}
}

func TestLoggerNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "loud", Format: FormatJSON})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestLogResult_Failure(t *testing.T) {
	result := runner.New(runner.DefaultConfig()).Run(runner.OpCalc, []string{"10", "/", "0"})

	l, buf := newJSONLogger(t, "info")
	l.LogResult(result, 3*time.Millisecond)
	assert.Empty(t, buf.String(), "failures are not logged at info level")

	l, buf = newJSONLogger(t, "debug")
	l.LogResult(result, 3*time.Millisecond)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, result.RequestID, entry["request_id"])
	assert.Equal(t, runner.OpCalc, entry["operation"])
	assert.Equal(t, []any{"10", "/", "0"}, entry["args"])
	assert.Equal(t, float64(3), entry["duration_ms"])
	assert.Contains(t, entry["error"], "Division by zero")
	assert.Contains(t, entry, "time")
}

func TestLogResult_SuccessIsDebug(t *testing.T) {
	r := runner.New(runner.DefaultConfig())
	result := r.Run(runner.OpFactorial, []string{"5"})

	l, buf := newJSONLogger(t, "info")
	l.LogResult(result, 0)
	assert.Empty(t, buf.String(), "success should not be logged at info level")

	l, buf = newJSONLogger(t, "debug")
	l.LogResult(result, 0)
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "120", entries[0]["output"])
}

func TestLoggerConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: FormatConsole, Output: &buf})
	require.NoError(t, err)

	l.Info().Str("operation", "reverse").Msg("ready")

	out := buf.String()
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "operation=")
}

func TestNop(t *testing.T) {
	l := Nop()
	result := runner.New(runner.DefaultConfig()).Run("missing", nil)
	l.LogResult(result, time.Second)
	l.Error().Msg("discarded")
}
