// ABOUTME: Logrus-backed implementation of the Logger interface
// ABOUTME: Emits JSON-structured log lines with level support

package logrus

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger implements the interfaces.Logger contract using logrus
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a new structured logger writing JSON to stdout.
// The level is taken from LOG_LEVEL when set, defaulting to info.
func NewLogger() *Logger {
	l := log.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&log.JSONFormatter{})

	level := log.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := log.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	l.SetLevel(level)

	return &Logger{logger: l}
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

func (l *Logger) entry(fields map[string]interface{}) *log.Entry {
	if len(fields) == 0 {
		return log.NewEntry(l.logger)
	}
	return l.logger.WithFields(log.Fields(fields))
}
