package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnvironment points every location katexprobe reads or writes at a
// temporary directory for the duration of a test
type TestEnvironment struct {
	Root       string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment isolates the test from the user's config, logs and
// KATEXPROBE_* variables. Styling is disabled through NO_COLOR.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "KATEXPROBE_") {
			// Setenv registers the restore, Unsetenv removes it for the test
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}

	return env
}

// ConfigPath is the default config file location inside the environment
func (e *TestEnvironment) ConfigPath() string {
	return filepath.Join(e.ConfigHome, "katexprobe", "config.toml")
}

// LogPath is the log file location inside the environment
func (e *TestEnvironment) LogPath() string {
	return filepath.Join(e.StateHome, "katexprobe", "katexprobe.log")
}

// WriteFile writes content to path, creating parent directories. Relative
// paths are resolved against Root.
func (e *TestEnvironment) WriteFile(path, content string) string {
	e.t.Helper()
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.Root, path)
	}
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteConfig writes the default config file
func (e *TestEnvironment) WriteConfig(content string) string {
	e.t.Helper()
	return e.WriteFile(e.ConfigPath(), content)
}
