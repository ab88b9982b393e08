package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Field keys shared by every package that logs.
const (
	FieldMatchID   = "match_id"
	FieldTaskID    = "task_id"
	FieldTarget    = "target"
	FieldRequestID = "request_id"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldSource    = "source"
)

// NewLogger returns a text logger on stdout. level is one of debug, info, warn, error.
func NewLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Debug logs when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Error logs when a logger is configured, attaching err if non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
