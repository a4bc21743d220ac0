package internal

import (
	"log"
	"os"
)

// LogLevel controls logging verbosity.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel maps a LOG_LEVEL string to a level, defaulting to INFO.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "ERROR":
		return LogLevelError
	case "WARN":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging over the standard library logger.
// Uploaded cell values must never be logged; callers log counts, headers,
// and codes only.
type Logger struct {
	level LogLevel
}

// NewLogger creates a logger with the given level.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger builds a logger from the LOG_LEVEL environment variable.
func NewDefaultLogger() *Logger {
	return NewLogger(ParseLogLevel(os.Getenv("LOG_LEVEL")))
}

func (l *Logger) Error(format string, args ...interface{}) { l.emit(LogLevelError, "[ERROR] ", format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.emit(LogLevelWarn, "[WARN] ", format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.emit(LogLevelInfo, "[INFO] ", format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.emit(LogLevelDebug, "[DEBUG] ", format, args...) }

func (l *Logger) emit(level LogLevel, prefix, format string, args ...interface{}) {
	if l.level >= level {
		log.Printf(prefix+format, args...)
	}
}

// DefaultLogger is the package-level logger used when no instance is wired.
var DefaultLogger = NewDefaultLogger()
