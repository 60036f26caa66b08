package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/holocron/internal/logging"
	"github.com/rshade/holocron/internal/pagination"
)

// Defaults.
const (
	CurrentSchemaVersion = "1.0.0"
	// SupportedSchemaConstraint is checked against schema_version.
	SupportedSchemaConstraint = "^1.0.0"

	DefaultBaseURL      = "https://swapi.dev/api/people/"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxPages     = 100
	DefaultUserAgent    = "holocron"
	DefaultLocale       = "en"
	DefaultTitle        = "Star Wars characters"
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = logging.FormatJSON

	configFileName = "config.yaml"
	logFileName    = "holocron.log"
)

// Environment variables.
const (
	EnvHome         = "HOLOCRON_HOME"
	EnvBaseURL      = "HOLOCRON_BASE_URL"
	EnvTimeout      = "HOLOCRON_TIMEOUT"
	EnvMaxPages     = "HOLOCRON_MAX_PAGES"
	EnvRPS          = "HOLOCRON_REQUESTS_PER_SECOND"
	EnvLocale       = "HOLOCRON_LOCALE"
	EnvOutputFormat = "HOLOCRON_OUTPUT_FORMAT"
	EnvLogLevel     = "HOLOCRON_LOG_LEVEL"
	EnvLogFormat    = "HOLOCRON_LOG_FORMAT"
	EnvLogFile      = "HOLOCRON_LOG_FILE"
)

// Validation errors.
var (
	ErrInvalidSchemaVersion = errors.New("unsupported schema_version")
	ErrInvalidBaseURL       = errors.New("source.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout       = errors.New("source.timeout must be positive")
	ErrInvalidMaxPages      = errors.New("source.max_pages must be positive")
	ErrInvalidRate          = errors.New("source.requests_per_second must not be negative")
	ErrInvalidOutputFormat  = errors.New("display.output_format must be one of table, json, ndjson")
	ErrInvalidLogLevel      = errors.New("logging.level is not a known level")
	ErrInvalidLogFormat     = errors.New("logging.format must be json or console")
)

// ValidOutputFormats lists accepted display.output_format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ValidOutputFormats = []string{"table", "json", "ndjson"}

// Config is the holocron configuration file.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Source        SourceConfig  `yaml:"source"`
	Display       DisplayConfig `yaml:"display"`
	Logging       LoggingConfig `yaml:"logging"`

	configPath string
}

// SourceConfig configures the collection endpoint.
type SourceConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	MaxPages          int           `yaml:"max_pages"`
	RequestsPerSecond float64       `yaml:"requests_per_second,omitempty"`
	UserAgent         string        `yaml:"user_agent,omitempty"`
}

// DisplayConfig configures presentation.
type DisplayConfig struct {
	Locale       string `yaml:"locale"`
	Title        string `yaml:"title"`
	OutputFormat string `yaml:"output_format"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns a configuration holding only built-in defaults.
func Default() *Config {
	cfg := &Config{
		SchemaVersion: CurrentSchemaVersion,
		Source: SourceConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			MaxPages:  DefaultMaxPages,
			UserAgent: DefaultUserAgent,
		},
		Display: DisplayConfig{
			Locale:       DefaultLocale,
			Title:        DefaultTitle,
			OutputFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		cfg.Logging.File = filepath.Join(dir, "logs", logFileName)
	}
	return cfg
}

// New returns defaults overlaid with the config file (if readable) and the
// environment. Load errors are swallowed; use Load to surface them.
func New() *Config {
	cfg, err := Load(DefaultConfigPath())
	if err != nil {
		cfg = Default()
		cfg.ApplyEnv()
	}
	return cfg
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		cfg.configPath = path
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}
	cfg.ApplyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults replaces zero-valued fields with built-in defaults.
func (c *Config) fillDefaults() {
	if c.SchemaVersion == "" {
		c.SchemaVersion = CurrentSchemaVersion
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = DefaultBaseURL
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = DefaultTimeout
	}
	if c.Source.MaxPages == 0 {
		c.Source.MaxPages = DefaultMaxPages
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = DefaultUserAgent
	}
	if c.Display.Locale == "" {
		c.Display.Locale = DefaultLocale
	}
	if c.Display.Title == "" {
		c.Display.Title = DefaultTitle
	}
	if c.Display.OutputFormat == "" {
		c.Display.OutputFormat = DefaultOutputFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// ApplyEnv overlays HOLOCRON_* environment variables. Unparseable numeric
// values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.Source.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Source.Timeout = d
		}
	}
	if v := os.Getenv(EnvMaxPages); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Source.MaxPages = n
		}
	}
	if v := os.Getenv(EnvRPS); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Source.RequestsPerSecond = f
		}
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Display.Locale = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Display.OutputFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// Validate checks every section and joins all problems found.
func (c *Config) Validate() error {
	var errs []error

	if err := validateSchemaVersion(c.SchemaVersion); err != nil {
		errs = append(errs, err)
	}

	u, err := url.Parse(c.Source.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Source.BaseURL))
	}
	if c.Source.Timeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if c.Source.MaxPages <= 0 {
		errs = append(errs, ErrInvalidMaxPages)
	}
	if c.Source.RequestsPerSecond < 0 {
		errs = append(errs, ErrInvalidRate)
	}

	if !isValidOutputFormat(c.Display.OutputFormat) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidOutputFormat, c.Display.OutputFormat))
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateSchemaVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidSchemaVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrInvalidSchemaVersion, version, SupportedSchemaConstraint)
	}
	return nil
}

func isValidOutputFormat(format string) bool {
	for _, f := range ValidOutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
		return true
	}
	return false
}

// ConfigPath returns the path Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the path Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// PageSize is the fixed interactive page size.
func (c *Config) PageSize() int {
	return pagination.DefaultPageSize
}

// ToYAML renders the configuration as YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the configuration to ConfigPath, creating parent directories.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	data, err := c.ToYAML()
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}
