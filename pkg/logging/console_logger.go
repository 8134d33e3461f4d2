package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	levelColors = map[LogLevel]*color.Color{
		LevelDebug: color.New(color.FgHiBlack),
		LevelInfo:  color.New(color.FgBlue),
		LevelWarn:  color.New(color.FgYellow),
		LevelError: color.New(color.FgRed),
	}
	dim   = color.New(color.FgHiBlack)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
)

// ConsoleLogger provides colored console output. Colors are
// disabled automatically when the output is not a terminal.
type ConsoleLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	verbose bool
	fields  map[string]any
}

// NewConsoleLogger creates a console logger writing to stdout.
// When verbose is true, debug messages are emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stdout, verbose)
}

// NewConsoleLoggerTo creates a console logger writing to w.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		mu:      &sync.Mutex{},
		output:  w,
		verbose: verbose,
		fields:  make(map[string]any),
	}
}

func (c *ConsoleLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := mergeFields(c.fields, fields)

	var fieldStr string
	if len(all) > 0 {
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, all[k]))
		}
		fieldStr = " " + dim.Sprintf("{%s}", strings.Join(parts, ", "))
	}

	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		dim.Sprint(time.Now().Format("15:04:05")),
		levelColors[level].Sprintf("%-5s", level.String()),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. The returned logger shares the output and its lock.
func (c *ConsoleLogger) WithFields(
	fields ...Field,
) Logger {
	return &ConsoleLogger{
		mu:      c.mu,
		output:  c.output,
		verbose: c.verbose,
		fields:  mergeFields(c.fields, fields),
	}
}

// LogEvaluation prints a one-line verdict. Passing evaluations
// are only shown in verbose mode; failures are followed by the
// aggregated message.
func (c *ConsoleLogger) LogEvaluation(evaluation EvaluationLog) {
	if evaluation.Passed {
		if c.verbose {
			c.log(LevelDebug,
				green.Sprintf("PASS %s", evaluation.Subject),
				IntField("expectations", evaluation.Expectations),
				LogField("duration_us", evaluation.DurationUs),
			)
		}
		return
	}

	c.log(LevelError,
		red.Sprintf("FAIL %s", evaluation.Subject),
		IntField("expectations", evaluation.Expectations),
		LogField("duration_us", evaluation.DurationUs),
	)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.output, evaluation.Failures)
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
