package queens

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with queens-specific context.
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

// WithShape adds grid shape fields to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// WithRegions adds a region count field to the logger.
func (l *Logger) WithRegions(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("regions", n),
	}
}

// LogParse logs a puzzle parse operation.
func (l *Logger) LogParse(ctx context.Context, rows, cols, regions int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parse failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parse completed",
			"rows", rows,
			"cols", cols,
			"regions", regions,
		)
	}
}

// LogSolve logs a solve run.
func (l *Logger) LogSolve(ctx context.Context, outcome string, attempts uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"attempts", attempts,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "solve completed",
			"outcome", outcome,
			"attempts", attempts,
		)
	}
}
