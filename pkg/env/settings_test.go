package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		KeyLogLevel, KeyLogFormat, KeyLogPath, KeyVerbose, KeyRedactEnv,
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, FormatNone, s.LogFormat)
	assert.NoError(t, s.Validate())
}

func TestLoadSettings_Defaults(t *testing.T) {
	clearSettingsEnv(t)

	s, err := LoadSettings(NewLoader())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettings_FromLoader(t *testing.T) {
	clearSettingsEnv(t)

	l := NewLoader()
	l.vars[KeyLogLevel] = "debug"
	l.vars[KeyLogFormat] = "JSON"
	l.vars[KeyLogPath] = "logs/expect.log"
	l.vars[KeyVerbose] = "true"
	l.vars[KeyRedactEnv] = "API_TOKEN, MISSING_TOKEN"
	l.vars["API_TOKEN"] = "tok-123456789"

	s, err := LoadSettings(l)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		LogLevel:  "debug",
		LogFormat: FormatJSON,
		LogPath:   "logs/expect.log",
		Verbose:   true,
		Redact:    []string{"tok-123456789"},
	}, s)
}

func TestLoadSettings_InvalidVerbose(t *testing.T) {
	clearSettingsEnv(t)

	l := NewLoader()
	l.vars[KeyVerbose] = "sometimes"

	_, err := LoadSettings(l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyVerbose)
}

func TestLoadSettings_InvalidFormat(t *testing.T) {
	clearSettingsEnv(t)

	l := NewLoader()
	l.vars[KeyLogFormat] = "xml"

	_, err := LoadSettings(l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestSettings_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected []string
		valid    bool
	}{
		{"empty", "", []string{FormatNone}, true},
		{"single", FormatJSON, []string{FormatJSON}, true},
		{"combined", "console, json", []string{FormatConsole, FormatJSON}, true},
		{"stray commas", ",console,", []string{FormatConsole}, true},
		{"one unknown", "console,xml", []string{FormatConsole, "xml"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{LogFormat: tt.format}
			assert.Equal(t, tt.expected, s.Formats())
			if tt.valid {
				assert.NoError(t, s.Validate())
			} else {
				assert.Error(t, s.Validate())
			}
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expect.yaml")
	content := `log_format: console
verbose: true
redact:
  - hunter2-password
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, FormatConsole, s.LogFormat)
	assert.True(t, s.Verbose)
	assert.Equal(t, []string{"hunter2-password"}, s.Redact)
}

func TestLoadSettingsFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSettingsFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("verbose: ["), 0644))
	_, err = LoadSettingsFile(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("log_format: xml"), 0644))
	_, err = LoadSettingsFile(unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}
