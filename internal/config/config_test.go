package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/holocron/internal/logging"
)

func TestDefault(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	assert.Equal(t, CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, DefaultBaseURL, cfg.Source.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, DefaultMaxPages, cfg.Source.MaxPages)
	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "Star Wars characters", cfg.Display.Title)
	assert.Equal(t, "table", cfg.Display.OutputFormat)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, filepath.Join(home, "logs", "holocron.log"), cfg.Logging.File)
	assert.Equal(t, 12, cfg.PageSize())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(filepath.Join(home, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Source.BaseURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, home, "config.yaml", `
schema_version: "1.2.0"
source:
  base_url: https://example.test/people/
  timeout: 5s
  requests_per_second: 2.5
display:
  title: Rebels
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/people/", cfg.Source.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.InDelta(t, 2.5, cfg.Source.RequestsPerSecond, 0.0001)
	assert.Equal(t, DefaultMaxPages, cfg.Source.MaxPages)
	assert.Equal(t, "Rebels", cfg.Display.Title)
	assert.Equal(t, "en", cfg.Display.Locale)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, home, "config.yaml", "source: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestApplyEnv_Precedence(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, home, "config.yaml", `
source:
  base_url: https://file.test/people/
logging:
  level: warn
`)
	t.Setenv(EnvBaseURL, "https://env.test/people/")
	t.Setenv(EnvTimeout, "750ms")
	t.Setenv(EnvMaxPages, "not-a-number")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvOutputFormat, "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.test/people/", cfg.Source.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Source.Timeout)
	assert.Equal(t, DefaultMaxPages, cfg.Source.MaxPages)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Display.OutputFormat)
}

func TestNew_FallsBackOnBrokenFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, home, "config.yaml", "source: [unclosed")
	t.Setenv(EnvLocale, "de")

	cfg := New()
	assert.Equal(t, DefaultBaseURL, cfg.Source.BaseURL)
	assert.Equal(t, "de", cfg.Display.Locale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"schema 1.9", func(c *Config) { c.SchemaVersion = "1.9.0" }, nil},
		{"schema 2", func(c *Config) { c.SchemaVersion = "2.0.0" }, ErrInvalidSchemaVersion},
		{"schema garbage", func(c *Config) { c.SchemaVersion = "one" }, ErrInvalidSchemaVersion},
		{"relative url", func(c *Config) { c.Source.BaseURL = "/people" }, ErrInvalidBaseURL},
		{"file url", func(c *Config) { c.Source.BaseURL = "file:///tmp/people.json" }, ErrInvalidBaseURL},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }, ErrInvalidTimeout},
		{"negative pages", func(c *Config) { c.Source.MaxPages = -1 }, ErrInvalidMaxPages},
		{"negative rate", func(c *Config) { c.Source.RequestsPerSecond = -1 }, ErrInvalidRate},
		{"bad output", func(c *Config) { c.Display.OutputFormat = "xml" }, ErrInvalidOutputFormat},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
		{"bad format", func(c *Config) { c.Logging.Format = "text" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Source.Timeout = 0
	cfg.Display.OutputFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeout)
	assert.ErrorIs(t, err, ErrInvalidOutputFormat)
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	cfg := Default()
	cfg.SetConfigPath(filepath.Join(home, "nested", "config.yaml"))
	cfg.Source.Timeout = 12 * time.Second
	cfg.Display.Title = "Droids"
	require.NoError(t, cfg.Save())

	loaded, err := Load(cfg.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, loaded.Source.Timeout)
	assert.Equal(t, "Droids", loaded.Display.Title)

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 12s")
}

func TestSave_NoPath(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Save())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "console"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/h.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/h.log", got.File)
}
