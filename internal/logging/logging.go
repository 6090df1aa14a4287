// Package logging provides a leveled logger backed by zerolog.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// ParseLevel parses a log level string. Unknown values map to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled printf-style logger.
type Logger struct {
	mu        sync.Mutex
	level     Level
	output    io.Writer
	component string
	zl        zerolog.Logger
}

// New creates a new logger writing to stderr.
func New(level Level) *Logger {
	l := &Logger{
		level:  level,
		output: os.Stderr,
	}
	l.rebuild()
	return l
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return &Logger{
		level:  LevelError + 1, // Higher than any level
		output: io.Discard,
		zl:     zerolog.Nop(),
	}
}

// rebuild must be called with mu held (or before the logger is shared).
func (l *Logger) rebuild() {
	w := zerolog.ConsoleWriter{
		Out:        l.output,
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	}
	ctx := zerolog.New(w).Level(l.level.zerolog()).With().Timestamp()
	if l.component != "" {
		ctx = ctx.Str("component", l.component)
	}
	l.zl = ctx.Logger()
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild()
}

// With returns a child logger tagging every line with the component name.
func (l *Logger) With(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	child := &Logger{
		level:     l.level,
		output:    l.output,
		component: component,
	}
	child.rebuild()
	return child
}

func (l *Logger) logger() *zerolog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	zl := l.zl
	return &zl
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logger().Debug().Msgf(format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger().Info().Msgf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logger().Warn().Msgf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger().Error().Msgf(format, args...)
}
