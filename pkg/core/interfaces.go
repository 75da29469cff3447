package core

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Level represents log verbosity ordering.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel converts a flag value into a Level
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", raw)
	}
}

// LevelLogger writes leveled log lines to an io.Writer. Printf logs at info.
type LevelLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

// NewLevelLogger creates a logger that drops messages below level
func NewLevelLogger(out io.Writer, level Level) *LevelLogger {
	return &LevelLogger{out: out, level: level}
}

// Printf implements Logger
func (l *LevelLogger) Printf(format string, args ...interface{}) {
	l.log(InfoLevel, format, args...)
}

// Debugf logs at debug level
func (l *LevelLogger) Debugf(format string, args ...interface{}) {
	l.log(DebugLevel, format, args...)
}

// Warnf logs at warn level
func (l *LevelLogger) Warnf(format string, args ...interface{}) {
	l.log(WarnLevel, format, args...)
}

// Errorf logs at error level
func (l *LevelLogger) Errorf(format string, args ...interface{}) {
	l.log(ErrorLevel, format, args...)
}

// Enabled reports whether messages at level would be written
func (l *LevelLogger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *LevelLogger) log(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] %s\n", level, msg)
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}

// Debugf logs a debug message if the logger supports levels
func Debugf(logger Logger, format string, args ...interface{}) {
	if l, ok := logger.(interface {
		Debugf(string, ...interface{})
	}); ok {
		l.Debugf(format, args...)
	}
}

// Warnf logs a warning, falling back to Printf for loggers without levels
func Warnf(logger Logger, format string, args ...interface{}) {
	if l, ok := logger.(interface {
		Warnf(string, ...interface{})
	}); ok {
		l.Warnf(format, args...)
		return
	}
	logger.Printf("warning: "+format, args...)
}
