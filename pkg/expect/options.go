package expect

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"digital.vasic.expectations/pkg/env"
	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/metrics"
)

// Option configures a root builder.
type Option func(*config)

type config struct {
	name     string
	logger   logging.Logger
	recorder metrics.Recorder

	// log is logger scoped to the subject name.
	log logging.Logger
}

// WithName sets the subject label used in logs, metrics and
// failures. It defaults to the subject's Go type.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger that receives one EvaluationLog per
// evaluated root.
func WithLogger(logger logging.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the recorder that receives one record per
// evaluated root.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(c *config) {
		if recorder != nil {
			c.recorder = recorder
		}
	}
}

var (
	defaultsMu sync.RWMutex
	defaults   []Option
)

// SetDefaults replaces the options applied to every root before
// its own options. It is typically called from TestMain.
func SetDefaults(opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = append([]Option(nil), opts...)
}

// ResetDefaults removes all package-wide default options.
func ResetDefaults() {
	SetDefaults()
}

// FromSettings translates loaded settings into options. Loggers
// opened here stay open for the lifetime of the process. Several
// formats (e.g. "console,json") are combined into one logger.
func FromSettings(s env.Settings) ([]Option, error) {
	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	verbose := s.Verbose || level == logging.LevelDebug

	var loggers []logging.Logger
	for _, format := range s.Formats() {
		switch format {
		case env.FormatNone:
		case env.FormatConsole:
			loggers = append(loggers, logging.NewConsoleLogger(verbose))
		case env.FormatJSON:
			jl, err := openJSONLog(s.LogPath, level, verbose)
			if err != nil {
				return nil, fmt.Errorf(
					"failed to open evaluation log: %w", err,
				)
			}
			loggers = append(loggers, jl)
		}
	}

	var logger logging.Logger
	switch len(loggers) {
	case 0:
		return nil, nil
	case 1:
		logger = loggers[0]
	default:
		logger = logging.NewMultiLogger(loggers...)
	}

	if len(s.Redact) > 0 {
		logger = logging.NewRedactingLogger(logger, s.Redact...)
	}

	logger.Info("evaluation logging enabled",
		logging.StringField("format", strings.Join(s.Formats(), ",")),
		logging.StringField("level", level.String()),
	)

	return []Option{WithLogger(logger)}, nil
}

// openJSONLog opens a JSON logger on path. An existing directory
// gets the expectations.log and evaluations.log pair.
func openJSONLog(
	path string,
	level logging.LogLevel,
	verbose bool,
) (*logging.JSONLogger, error) {
	if info, err := os.Stat(path); path != "" && err == nil && info.IsDir() {
		return logging.SetupLogging(path, verbose)
	}
	return logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath: path,
		Level:      level,
		Verbose:    verbose,
	})
}

func newConfig(subject any, opts []Option) *config {
	c := &config{
		name:     fmt.Sprintf("%T", subject),
		logger:   logging.NullLogger{},
		recorder: metrics.NoopRecorder{},
	}

	defaultsMu.RLock()
	for _, opt := range defaults {
		opt(c)
	}
	defaultsMu.RUnlock()

	for _, opt := range opts {
		opt(c)
	}

	c.log = c.logger.WithFields(logging.StringField("subject", c.name))
	return c
}

func (c *config) observe(
	expectations int,
	verdict Result,
	elapsed time.Duration,
) {
	c.recorder.RecordEvaluation(
		c.name, verdict.Passed(), expectations, elapsed,
	)

	c.logger.LogEvaluation(logging.EvaluationLog{
		Timestamp:    time.Now().Format(time.RFC3339Nano),
		Subject:      c.name,
		Expectations: expectations,
		Passed:       verdict.Passed(),
		Failures:     verdict.Message(),
		DurationUs:   elapsed.Microseconds(),
	})
}
