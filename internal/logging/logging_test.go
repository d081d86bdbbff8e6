package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithWriter_Formats(t *testing.T) {
	var text, js bytes.Buffer
	NewLoggerWithWriter(slog.LevelInfo, "text", &text).Info("solved", "rounds", 3)
	NewLoggerWithWriter(slog.LevelInfo, "JSON", &js).Info("solved", "rounds", 3)

	assert.Contains(t, text.String(), "msg=solved")
	assert.Contains(t, text.String(), "rounds=3")
	assert.Contains(t, js.String(), `"msg":"solved"`)
	assert.Contains(t, js.String(), `"rounds":3`)
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerWithWriter_ChildLogger(t *testing.T) {
	var buf bytes.Buffer
	child := NewLoggerWithWriter(slog.LevelDebug, "text", &buf).With("run_id", "abc")
	child.Debug("attempt", "k", 2)

	assert.Contains(t, buf.String(), "run_id=abc")
	assert.Contains(t, buf.String(), "k=2")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, KnownLevel("Info"))
	assert.False(t, KnownLevel("verbose"))
	assert.True(t, KnownFormat("json"))
	assert.False(t, KnownFormat("xml"))
}
