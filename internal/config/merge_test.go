package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget() *Config {
	return &Config{
		SchemaVersion: "1.0.0",
		Source: SourceConfig{
			BaseURL:           "https://base.test/people/",
			Timeout:           10 * time.Second,
			MaxPages:          7,
			RequestsPerSecond: 3,
			UserAgent:         "base-agent",
		},
		Display: DisplayConfig{Locale: "fr", Title: "Base", OutputFormat: "json"},
		Logging: LoggingConfig{Level: "warn", Format: "console", File: "/tmp/base.log"},
	}
}

func TestShallowMergeYAML_ReplacesWholeSection(t *testing.T) {
	home := isolate(t)
	target := newTarget()
	overlay := writeFile(t, home, "overlay.yaml", `
source:
  base_url: https://overlay.test/people/
`)

	require.NoError(t, ShallowMergeYAML(target, overlay))

	assert.Equal(t, "https://overlay.test/people/", target.Source.BaseURL)
	// Omitted fields of the replaced section fall back to defaults, not to target.
	assert.Equal(t, DefaultTimeout, target.Source.Timeout)
	assert.Equal(t, DefaultMaxPages, target.Source.MaxPages)
	assert.Zero(t, target.Source.RequestsPerSecond)

	// Untouched sections survive.
	assert.Equal(t, "fr", target.Display.Locale)
	assert.Equal(t, "/tmp/base.log", target.Logging.File)
}

func TestShallowMergeYAML_MultipleSections(t *testing.T) {
	home := isolate(t)
	target := newTarget()
	overlay := writeFile(t, home, "overlay.yaml", `
schema_version: "1.1.0"
display:
  title: Overlay
logging:
  level: debug
unknown_section:
  anything: true
`)

	require.NoError(t, ShallowMergeYAML(target, overlay))
	assert.Equal(t, "1.1.0", target.SchemaVersion)
	assert.Equal(t, "Overlay", target.Display.Title)
	assert.Equal(t, DefaultLocale, target.Display.Locale)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Empty(t, target.Logging.File)
	assert.Equal(t, 7, target.Source.MaxPages)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	home := isolate(t)
	target := newTarget()
	overlay := writeFile(t, home, "overlay.yaml", "# nothing here\n")

	require.NoError(t, ShallowMergeYAML(target, overlay))
	assert.Equal(t, newTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	home := isolate(t)

	require.Error(t, ShallowMergeYAML(nil, "x"))
	require.Error(t, ShallowMergeYAML(newTarget(), home+"/missing.yaml"))

	bad := writeFile(t, home, "bad.yaml", "source: [")
	require.Error(t, ShallowMergeYAML(newTarget(), bad))

	wrongType := writeFile(t, home, "wrong.yaml", "source:\n  max_pages: lots\n")
	err := ShallowMergeYAML(newTarget(), wrongType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"source"`)
}
