package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/holocron/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: https://swapi.dev/api/people/")
	assert.Contains(t, string(data), "schema_version: 1.0.0")

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, err := execute(t, "config", "validate", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Base URL: https://swapi.dev/api/people/")
	assert.Contains(t, out, "Requests per second: unlimited")

	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: \"2.0.0\"\nsource:\n  max_pages: -4\n"), 0o600))
	_, err = execute(t, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidSchemaVersion)
	assert.ErrorIs(t, err, config.ErrInvalidMaxPages)

	require.NoError(t, os.WriteFile(path, []byte("source: [broken"), 0o600))
	out, err = execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
	assert.Contains(t, out, "Warning: ignoring configuration file")
}

func TestConfigValidate_FlagOverride(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "config", "validate", "--base-url", "ftp://example.com/people")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidBaseURL)
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvTimeout, "5s")

	out, err := execute(t, "config", "show", "--base-url", "https://example.test/people/")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: https://example.test/people/")
	assert.Contains(t, out, "timeout: 5s")
	assert.Contains(t, out, "title: Star Wars characters")
}
