package zipstat

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger records events. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger returns a Logger that discards every event.
func NopLogger() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewLogger creates a structured logger appending to the file at path, or
// writing to standard error when path is empty. The returned function closes
// the log file.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func NewLogger(path, level, format string) (*slog.Logger, func() error, error) {
	w, closeFn, err := openLogOutput(path)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(w, level, format), closeFn, nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // log path comes from the user
	if err != nil {
		return nil, nil, NewErrorContext("open log", path).Error(err)
	}
	return f, f.Close, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
