package simspace

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simspace-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSpace adds the space description to the logger.
func (l *Logger) WithSpace(desc string) *Logger {
	return &Logger{
		Logger: l.Logger.With("space", desc),
	}
}

// WithPath adds a dataset path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogParseFailure logs a malformed record before the error is
// propagated to the caller. The dataset path is carried by a WithPath
// logger.
func (l *Logger) LogParseFailure(line int, content string, err error) {
	l.Error("record parse failed",
		"line", line,
		"content", content,
		"error", err,
	)
}

// LogDatasetRead logs the outcome of a dataset load.
func (l *Logger) LogDatasetRead(count int, err error) {
	if err != nil {
		l.Error("dataset read failed",
			"objects", count,
			"error", err,
		)
	} else {
		l.Debug("dataset read completed",
			"objects", count,
		)
	}
}

// LogDatasetWrite logs the outcome of a dataset write.
func (l *Logger) LogDatasetWrite(count int, err error) {
	if err != nil {
		l.Error("dataset write failed",
			"objects", count,
			"error", err,
		)
	} else {
		l.Debug("dataset write completed",
			"objects", count,
		)
	}
}
