package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log formats understood by Settings.
const (
	FormatNone    = "none"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Environment variables read by LoadSettings.
const (
	KeyLogLevel  = "EXPECT_LOG_LEVEL"
	KeyLogFormat = "EXPECT_LOG_FORMAT"
	KeyLogPath   = "EXPECT_LOG_PATH"
	KeyVerbose   = "EXPECT_VERBOSE"
	// KeyRedactEnv names other variables, comma separated, whose
	// values must never appear in logs.
	KeyRedactEnv = "EXPECT_REDACT_ENV"
)

// Settings configures the ambient behaviour of the expectation
// engine: where evaluation logs go and what they must hide.
type Settings struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat is one of none, console, json, or a comma
	// separated combination such as "console,json".
	LogFormat string `yaml:"log_format" json:"log_format"`

	// LogPath is the JSON log file, or a directory that receives
	// expectations.log and evaluations.log. Empty means stdout.
	LogPath string `yaml:"log_path" json:"log_path"`

	// Verbose also logs passing evaluations.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Redact lists literal secrets masked in all log output.
	Redact []string `yaml:"redact" json:"redact"`
}

// DefaultSettings returns settings with logging disabled.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: FormatNone,
	}
}

// Formats splits LogFormat into its formats. An empty LogFormat
// yields FormatNone.
func (s Settings) Formats() []string {
	var formats []string
	for _, f := range strings.Split(s.LogFormat, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []string{FormatNone}
	}
	return formats
}

// Validate checks every log format.
func (s Settings) Validate() error {
	for _, f := range s.Formats() {
		switch f {
		case FormatNone, FormatConsole, FormatJSON:
		default:
			return fmt.Errorf("unknown log format %q", f)
		}
	}
	return nil
}

// LoadSettings overlays the EXPECT_* variables visible through l
// onto DefaultSettings.
func LoadSettings(l Loader) (Settings, error) {
	s := DefaultSettings()

	s.LogLevel = l.GetWithDefault(KeyLogLevel, s.LogLevel)
	s.LogFormat = strings.ToLower(l.GetWithDefault(KeyLogFormat, s.LogFormat))
	s.LogPath = l.GetWithDefault(KeyLogPath, s.LogPath)

	if v := l.Get(KeyVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("parse %s: %w", KeyVerbose, err)
		}
		s.Verbose = verbose
	}

	for _, name := range strings.Split(l.Get(KeyRedactEnv), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if secret := l.Get(name); secret != "" {
			s.Redact = append(s.Redact, secret)
		}
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid %s: %w", KeyLogFormat, err)
	}
	return s, nil
}

// LoadSettingsFile reads YAML settings from path. Keys missing
// from the file keep their DefaultSettings values.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf(
			"failed to read settings file %s: %w", path, err,
		)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf(
			"failed to parse settings file %s: %w", path, err,
		)
	}
	s.LogFormat = strings.ToLower(s.LogFormat)

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings file %s: %w", path, err)
	}
	return s, nil
}
