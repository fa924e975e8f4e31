// Package log provides the structured logging interface used across farefit.
//
// The Logger interface is deliberately small and slog-shaped: a message plus
// alternating key/value fields. The production implementation is backed by
// zerolog (see NewZerologLogger); tests use TestLogger to capture JSON lines.
//
// Example usage:
//
//	logger := log.GetLogger().With(log.ComponentKey, "linear")
//	logger.Info("Fit completed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 6,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface.
//
// Fields are alternating key/value pairs. For Error, an error value passed as
// the first field is treated specially: its message and, if it was created
// through pkg/errors, its stack trace are attached to the record.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	//
	// Example:
	//   logger.Error("Fit failed",
	//       err,
	//       log.OperationKey, log.OperationFit,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. Values are compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
