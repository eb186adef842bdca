package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeNodeScript stands in for node. Its behavior is driven by FAKE_*
// environment variables and it records what it received under FAKE_NODE_LOG.
const fakeNodeScript = `#!/bin/sh
log="$FAKE_NODE_LOG"
if [ "$1" = "--version" ]; then
  if [ -n "$FAKE_VERSION_EXIT" ]; then exit "$FAKE_VERSION_EXIT"; fi
  echo "v20.11.0"
  exit 0
fi
case "$2" in
  *process.stdin*)
    printf '%s' "$3" > "$log/render-module"
    printf '%s' "$NODE_PATH" > "$log/render-node-path"
    cat > "$log/render-stdin"
    if [ -n "$FAKE_RENDER_SLEEP" ]; then exec sleep "$FAKE_RENDER_SLEEP"; fi
    if [ -n "$FAKE_RENDER_EXIT" ]; then printf '%s\n' "$FAKE_RENDER_STDERR" >&2; exit "$FAKE_RENDER_EXIT"; fi
    printf '%s' "$FAKE_RENDER_OUTPUT"
    ;;
  *)
    printf '%s' "$3" > "$log/probe-module"
    printf '%s' "$NODE_PATH" > "$log/probe-node-path"
    if [ -n "$FAKE_PROBE_SLEEP" ]; then exec sleep "$FAKE_PROBE_SLEEP"; fi
    if [ -n "$FAKE_PROBE_EXIT" ]; then printf '%s\n' "$FAKE_PROBE_STDERR" >&2; exit "$FAKE_PROBE_EXIT"; fi
    printf '0.16.9'
    ;;
esac
`

const fakeNpmScript = `#!/bin/sh
if [ -n "$FAKE_NPM_EXIT" ]; then exit "$FAKE_NPM_EXIT"; fi
echo "/fake/global/node_modules"
`

// FakeNode is a node/npm pair of shell scripts in a temp directory.
//
// Behavior knobs, set with t.Setenv:
//   - FAKE_VERSION_EXIT: exit status of node --version
//   - FAKE_PROBE_EXIT, FAKE_PROBE_STDERR, FAKE_PROBE_SLEEP: probe script outcome
//   - FAKE_RENDER_OUTPUT, FAKE_RENDER_EXIT, FAKE_RENDER_STDERR, FAKE_RENDER_SLEEP: render outcome
//   - FAKE_NPM_EXIT: exit status of npm root -g
//
// Recorded files: probe-module, probe-node-path, render-module,
// render-node-path and render-stdin.
type FakeNode struct {
	Node   string
	Npm    string
	LogDir string
}

// GlobalModules is the directory the fake npm reports for npm root -g
const GlobalModules = "/fake/global/node_modules"

// NewFakeNode writes the scripts and points FAKE_NODE_LOG at its log dir.
// The test is skipped where /bin/sh is unavailable.
func NewFakeNode(t *testing.T) *FakeNode {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake node relies on /bin/sh")
	}

	dir := t.TempDir()
	logDir := filepath.Join(dir, "log")
	require.NoError(t, os.MkdirAll(logDir, 0755))

	node := filepath.Join(dir, "node")
	require.NoError(t, os.WriteFile(node, []byte(fakeNodeScript), 0755))
	npm := filepath.Join(dir, "npm")
	require.NoError(t, os.WriteFile(npm, []byte(fakeNpmScript), 0755))

	t.Setenv("FAKE_NODE_LOG", logDir)
	t.Setenv("NODE_PATH", "")
	return &FakeNode{Node: node, Npm: npm, LogDir: logDir}
}

// Recorded returns what the fake wrote to the named log file
func (f *FakeNode) Recorded(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.LogDir, name))
	require.NoError(t, err)
	return string(data)
}
