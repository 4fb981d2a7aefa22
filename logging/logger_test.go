package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	check.True(t, IsValidLevel(""))
	check.True(t, IsValidLevel("trace"))
	check.True(t, IsValidLevel("Info"))
	check.False(t, IsValidLevel("verbose"))
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logAtDebug bool
		logAtTrace bool
	}{
		{"info filters debug", "info", false, false},
		{"debug passes debug", "debug", true, false},
		{"trace passes everything", "trace", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			logger.Debug("debug message")
			check.Equal(t, tt.logAtDebug, strings.Contains(buf.String(), "debug message"))

			buf.Reset()
			logger.Log(t.Context(), LevelTrace, "trace message")
			check.Equal(t, tt.logAtTrace, strings.Contains(buf.String(), "trace message"))

			buf.Reset()
			logger.Info("info message")
			check.True(t, strings.Contains(buf.String(), "info message"))
		})
	}
}

func TestNewLogger_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)

	logger.Log(t.Context(), LevelTrace, "snapshot")

	check.True(t, strings.Contains(buf.String(), "level=TRACE"))
}
