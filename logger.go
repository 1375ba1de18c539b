package invert

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/invert/selector"
)

// Logger wraps slog.Logger with resolver-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithArg adds the argument index to the logger.
func (l *Logger) WithArg(i int) *Logger {
	return &Logger{Logger: l.Logger.With("arg", i)}
}

// WithSelector adds the selector kind and rank to the logger.
func (l *Logger) WithSelector(sel selector.Selector) *Logger {
	return &Logger{Logger: l.Logger.With("kind", sel.Kind().String(), "rank", sel.Rank())}
}

// LogResolve logs the outcome of resolving an argument list.
func (l *Logger) LogResolve(args int, linear bool, err error) {
	if err != nil {
		l.Error("resolve failed",
			"args", args,
			"linear", linear,
			"error", err,
		)
		return
	}
	l.Debug("resolve completed",
		"args", args,
		"linear", linear,
	)
}

// LogSelection logs a resolved inverted index.
func (l *Logger) LogSelection(picks, skips, remaining int) {
	l.Debug("inverted index resolved",
		"picks", picks,
		"skips", skips,
		"remaining", remaining,
	)
}
