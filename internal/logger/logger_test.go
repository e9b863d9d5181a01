package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/DeafMist/nlp-console/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{raw: "", want: slog.LevelInfo},
		{raw: "debug", want: slog.LevelDebug},
		{raw: " WARN ", want: slog.LevelWarn},
		{raw: "warning", want: slog.LevelWarn},
		{raw: "error", want: slog.LevelError},
		{raw: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, logger.ParseLevel(tt.raw))
		})
	}
}

func TestNewWithWriterTagsService(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "console")
	log.Debug("hello", slog.Int("tokens", 3))

	out := buf.String()
	require.Contains(t, out, "service=console")
	require.Contains(t, out, "msg=hello")
	require.Contains(t, out, "tokens=3")
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "console")
	log.Info("dropped")

	require.Empty(t, buf.String())
}
