package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fadedpez/handranker/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var backendLevels = map[Level]log.Level{
	DEBUG: log.DebugLevel,
	INFO:  log.InfoLevel,
	WARN:  log.WarnLevel,
	ERROR: log.ErrorLevel,
}

// String returns the name of the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel maps a level name such as "debug" or "WARN" to a Level.
// Unknown names fall back to INFO.
func ParseLevel(name string) Level {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level
		}
	}
	return INFO
}

// Logger represents our leveled logger
type Logger struct {
	backend *log.Logger
	level   Level
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(level Level) *Logger {
	return NewLoggerWithWriter(os.Stdout, level)
}

// NewLoggerWithWriter creates a logger writing to w
func NewLoggerWithWriter(w io.Writer, level Level) *Logger {
	backend := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		CallerOffset:    1,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           backendLevels[level],
	})
	return &Logger{
		backend: backend,
		level:   level,
	}
}

// Level returns the minimum level the logger writes
func (l *Logger) Level() Level {
	return l.level
}

// With returns a logger that adds the key/value pairs to every entry
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		backend: l.backend.With(keyvals...),
		level:   l.level,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.backend.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.backend.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.backend.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.backend.Errorf(format, v...)
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		// Format error context
		context := []string{
			fmt.Sprintf("Code: %s", gameErr.Code),
			fmt.Sprintf("Message: %s", gameErr.Message),
		}
		if gameErr.Err != nil {
			context = append(context, fmt.Sprintf("Cause: %v", gameErr.Err))
		}

		l.Error("Game error occurred:\n\t%s", strings.Join(context, "\n\t"))
	} else {
		l.Error("Unexpected error: %v", err)
	}
}

// Default logger instance
var Default = NewLogger(INFO)
