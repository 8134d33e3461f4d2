// Package logging provides structured logging for expectation
// evaluations with console, JSON, multi-destination and
// redacting output.
package logging

import (
	"fmt"
	"strings"
)

// Logger defines the interface for structured evaluation logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// LogEvaluation records the outcome of one evaluation pass.
	LogEvaluation(evaluation EvaluationLog)

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// EvaluationLog captures one evaluation of a root builder.
type EvaluationLog struct {
	Timestamp    string `json:"timestamp"`
	Subject      string `json:"subject"`
	Expectations int    `json:"expectations"`
	Passed       bool   `json:"passed"`
	Failures     string `json:"failures,omitempty"`
	DurationUs   int64  `json:"duration_us"`
}

// fields flattens the evaluation into log fields.
func (e EvaluationLog) fields() []Field {
	fields := []Field{
		StringField("subject", e.Subject),
		IntField("expectations", e.Expectations),
		BoolField("passed", e.Passed),
		LogField("duration_us", e.DurationUs),
	}
	if e.Failures != "" {
		fields = append(fields, StringField("failures", e.Failures))
	}
	return fields
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
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

// ParseLevel parses a case-insensitive level name. An empty
// string yields LevelInfo.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}
