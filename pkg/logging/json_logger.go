package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the general log file. Empty means stdout.
	OutputPath string

	// EvaluationLog, when set, receives one EvaluationLog per
	// line instead of the general log.
	EvaluationLog string

	Level   LogLevel
	Verbose bool
	Fields  map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu            *sync.Mutex
	output        io.Writer
	evaluationLog io.Writer
	level         LogLevel
	fields        map[string]any
	verbose       bool
	closed        *bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		mu:      &sync.Mutex{},
		level:   config.Level,
		verbose: config.Verbose,
		fields:  config.Fields,
		closed:  new(bool),
	}

	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if config.OutputPath != "" {
		file, err := openAppend(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		logger.output = file
	} else {
		logger.output = os.Stdout
	}

	if config.EvaluationLog != "" {
		file, err := openAppend(config.EvaluationLog)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open evaluation log: %w", err,
			)
		}
		logger.evaluationLog = file
	}

	return logger, nil
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    mergeFields(l.fields, fields),
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. It shares the writers of l.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	return &JSONLogger{
		mu:            l.mu,
		output:        l.output,
		evaluationLog: l.evaluationLog,
		level:         l.level,
		verbose:       l.verbose,
		fields:        mergeFields(l.fields, fields),
		closed:        l.closed,
	}
}

// LogEvaluation writes the evaluation to the dedicated
// evaluation log if one is configured. Otherwise failures are
// logged at error level and passes at debug level.
func (l *JSONLogger) LogEvaluation(evaluation EvaluationLog) {
	if l.evaluationLog == nil {
		if evaluation.Passed {
			l.Debug("evaluation passed", evaluation.fields()...)
		} else {
			l.Error("evaluation failed", evaluation.fields()...)
		}
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return
	}

	data, err := jsonMarshal(evaluation)
	if err != nil {
		return
	}

	fmt.Fprintln(l.evaluationLog, string(data))
}

// Close flushes and closes all underlying writers.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return nil
	}
	*l.closed = true

	var errs []error

	if closer, ok := l.output.(io.Closer); ok &&
		l.output != os.Stdout {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if closer, ok := l.evaluationLog.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SetupLogging creates a JSON logger writing general entries to
// expectations.log and evaluations to evaluations.log inside
// logsDir.
func SetupLogging(
	logsDir string,
	verbose bool,
) (*JSONLogger, error) {
	config := LoggerConfig{
		OutputPath: filepath.Join(
			logsDir, "expectations.log",
		),
		EvaluationLog: filepath.Join(
			logsDir, "evaluations.log",
		),
		Level:   LevelInfo,
		Verbose: verbose,
	}

	if verbose {
		config.Level = LevelDebug
	}

	return NewJSONLogger(config)
}
