package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/YuminosukeSato/farefit/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewZerologLogger(os.Stderr, LevelWarn)
)

// SetupLogger configures the package-level logger to write human-readable
// lines to stderr at the given level ("debug", "info", "warn", "error").
func SetupLogger(loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	SetLogger(NewZerologLogger(out, level))
	return nil
}

// GetLogger returns the package-level logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the package-level logger.
func SetLogger(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// ParseLevel converts a level name to a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, errors.NewValidationError("log-level", "must be one of debug, info, warn, error", level)
	}
}

// zerologLogger adapts zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger returns a Logger writing JSON records to w.
// Wrap w in zerolog.ConsoleWriter for human-readable output.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

// Error attaches the message, structured details and stack trace of a leading
// error field before the remaining key/value pairs.
func (l *zerologLogger) Error(msg string, fields ...any) {
	event := l.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = event.Str(ErrorKey, err.Error())
			var details zerolog.LogObjectMarshaler
			if errors.As(err, &details) {
				event = event.Object("error.details", details)
			}
			if st := errors.Stacktrace(err); st != "" {
				event = event.Str(StacktraceKey, st)
			}
			fields = fields[1:]
		}
	}
	event.Fields(fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return l.zl.GetLevel() <= toZerologLevel(level)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
