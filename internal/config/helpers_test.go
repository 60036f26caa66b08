package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points HOLOCRON_HOME at a temp dir, clears the other overrides and
// resets the global config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	for _, env := range []string{
		EnvBaseURL, EnvTimeout, EnvMaxPages, EnvRPS, EnvLocale,
		EnvOutputFormat, EnvLogLevel, EnvLogFormat, EnvLogFile,
	} {
		t.Setenv(env, "")
	}
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return home
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
