package hypernull

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hypernull-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSteps adds a steps field to the logger.
func (l *Logger) WithSteps(steps int) *Logger {
	return &Logger{
		Logger: l.Logger.With("steps", steps),
	}
}

// WithLabeling adds a labeling field to the logger.
func (l *Logger) WithLabeling(labeling string) *Logger {
	return &Logger{
		Logger: l.Logger.With("labeling", labeling),
	}
}

// LogBuild logs construction of an instance.
func (l *Logger) LogBuild(ctx context.Context, nodes, edges int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "build completed",
			"nodes", nodes,
			"edges", edges,
		)
	}
}

// LogRandomize logs a randomization run.
func (l *Logger) LogRandomize(ctx context.Context, steps int, rep Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "randomization failed",
			"steps", steps,
			"taken", rep.StepsTaken,
			"rejected", rep.StepsRejected,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "randomization completed",
			"steps", steps,
			"taken", rep.StepsTaken,
			"rejected", rep.StepsRejected,
			"epochs", rep.Epochs,
		)
	}
}
