package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Sloozu/SchoolManagerCase/types"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	t.Helper()
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *SlogLogger)
		want string
	}{
		{"debug", func(l *SlogLogger) { l.Debug("debug message", "pupil_id", 10) }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info("info message", "class_id", 1) }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn("warn message") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error("error message", "error", "boom") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			logger := NewSlog(slog.New(handler))

			tt.log(logger)

			require.Contains(t, buf.String(), tt.want)
			require.Contains(t, buf.String(), tt.name+" message")
		})
	}
}
