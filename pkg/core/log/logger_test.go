package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "error", lines[1]["level"])
}

func TestLogger_JSONFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithField("demo", "factory").
		WithCorrelationID("run-1").
		Info("demo started", Int("step", 2))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "demo started", lines[0]["message"])
	assert.Equal(t, "test", lines[0]["logger"])
	assert.Equal(t, "factory", lines[0]["demo"])
	assert.Equal(t, "run-1", lines[0]["correlation_id"])
	assert.Equal(t, float64(2), lines[0]["step"])
}

func TestLogger_DerivedLoggersAreIndependent(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	child := logger.WithField("child", true)
	logger.Info("parent")
	child.Info("child")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	_, parentHasField := lines[0]["child"]
	assert.False(t, parentHasField)
	assert.Equal(t, true, lines[1]["child"])
}

func TestLogger_LogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"low severity is info", errors.NotFound("demo.Lookup", "demo", "x"), "info"},
		{"medium severity is warn", errors.New("odd"), "warn"},
		{"high severity is error", errors.New("bad").WithSeverity(errors.SeverityHigh), "error"},
		{"plain error is error", fmt.Errorf("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.expected, lines[0]["level"])
		})
	}
}

func TestLogger_LogErrorDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(errors.NotFound("store.Catalog.Book", "book", 7))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "NOT_FOUND", lines[0]["error_code"])
	assert.Equal(t, "store.Catalog.Book", lines[0]["error_operation"])
	assert.Equal(t, float64(7), lines[0]["error_id"])
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger

	assert.NotPanics(t, func() {
		logger.Info("ignored")
		logger.WithField("k", "v").Debug("ignored")
		logger.LogError(errors.New("ignored"))
		logger.StartTimer("op").Stop()
	})
	assert.False(t, logger.IsLevelEnabled(LevelFatal))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.IsLevelEnabled(LevelFatal))
}

func TestTextFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("command executed", Fields{"b": 2, "a": "x"})

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "[INF] {test} command executed [a=x b=2]")
}

func TestConsoleFormatter_NoColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, err := f.Format(&Entry{Level: LevelWarn, Message: "careful", Fields: Fields{}})
	require.NoError(t, err)
	assert.Equal(t, "[WRN] careful\n", string(out))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("console")
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, f)

	_, err = ParseFormat("xml")
	assert.EqualError(t, err, "invalid format: xml")
}

func TestLevel_Strings(t *testing.T) {
	for _, level := range AllLevels() {
		assert.NotEqual(t, "unknown", level.String())
		assert.NotEqual(t, "???", level.ShortString())
	}
	assert.Equal(t, "unknown", Level(99).String())
}

func TestTimer_StopLogsOnce(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("demo factory").WithField("demo", "factory")
	timer.Stop()
	assert.Zero(t, timer.Stop())

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "demo factory completed", lines[0]["message"])
	assert.Equal(t, "factory", lines[0]["demo"])
	assert.Contains(t, lines[0], "duration_ms")
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("demo store").StopWithError(fmt.Errorf("boom"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "demo store failed", lines[0]["message"])
	assert.Equal(t, "boom", lines[0]["error"])
	assert.Equal(t, false, lines[0]["success"])
}
