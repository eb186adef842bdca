package katex

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/arthur-debert/katexprobe/pkg/testutil"
	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewNodeLoader(Settings{}).Settings()

	assert.Equal(t, DefaultBinary, s.Binary)
	assert.Equal(t, DefaultNpmBinary, s.NpmBinary)
	assert.Equal(t, DefaultModule, s.Module)
	assert.Equal(t, 5*time.Second, s.ProbeTimeout)
	assert.Equal(t, 30*time.Second, s.RenderTimeout)
	assert.False(t, s.GlobalModules)
}

func TestLoad_NodeMissing(t *testing.T) {
	loader := NewNodeLoader(Settings{Binary: filepath.Join(t.TempDir(), "no-such-node")})

	lib, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, lib)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNodeNotFound))
}

func TestLoad_NodeVersionFails(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_VERSION_EXIT", "3")

	_, err := NewNodeLoader(fake.settings()).Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNodeNotFound))
}

func TestLoad_ModuleMissing(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_PROBE_EXIT", "1")
	t.Setenv("FAKE_PROBE_STDERR", "Cannot find module 'katex'")

	lib, err := NewNodeLoader(fake.settings()).Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, lib)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLibraryLoad))
	assert.Equal(t, "Cannot find module 'katex'", errors.UserMessage(err))
	assert.Equal(t, "katex", fake.recorded(t, "probe-module"))
}

func TestLoad_ModuleMissingWithoutStderr(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_PROBE_EXIT", "1")
	t.Setenv("FAKE_PROBE_STDERR", "")

	_, err := NewNodeLoader(fake.settings()).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, errors.UserMessage(err), `require("katex") exited with status 1`)
}

func TestLoad_ProbeTimeout(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_PROBE_SLEEP", "5")
	s := fake.settings()
	s.ProbeTimeout = 200 * time.Millisecond

	start := time.Now()
	_, err := NewNodeLoader(s).Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTimeout))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestLoad_Interrupted(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
	}{
		{name: "before start", delay: 0},
		{name: "during probe", delay: 200 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEnv(t)
			t.Setenv("FAKE_PROBE_SLEEP", "5")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.delay == 0 {
				cancel()
			} else {
				time.AfterFunc(tt.delay, cancel)
			}

			start := time.Now()
			_, err := NewNodeLoader(fake.settings()).Load(ctx)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCanceled), "got %v", err)
			assert.False(t, errors.IsErrorCode(err, errors.ErrNodeNotFound))
			assert.NotContains(t, errors.UserMessage(err), "exited with status")
			assert.Less(t, time.Since(start), 4*time.Second)
		})
	}
}

func TestLoad_Success(t *testing.T) {
	fake := newFakeEnv(t)

	lib, err := NewNodeLoader(fake.settings()).LoadNode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.16.9", lib.Version)
	assert.Equal(t, "v20.11.0", lib.NodeVersion)
}

func TestLoad_GlobalModules(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("NODE_PATH", "/existing")
	s := fake.settings()
	s.GlobalModules = true

	_, err := NewNodeLoader(s).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/existing:"+testutil.GlobalModules, fake.recorded(t, "probe-node-path"))
}

func TestLoad_GlobalModulesNpmFails(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_NPM_EXIT", "1")
	s := fake.settings()
	s.GlobalModules = true

	_, err := NewNodeLoader(s).Load(context.Background())

	require.NoError(t, err, "npm failures must not fail the load")
	assert.Equal(t, "", fake.recorded(t, "probe-node-path"))
}

func TestRenderToString(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_RENDER_OUTPUT", `<span class="katex-display"><span class="katex">E=mc²</span></span>`)

	lib, err := NewNodeLoader(fake.settings()).Load(context.Background())
	require.NoError(t, err)

	opts := types.RenderOptions{Output: types.OutputHTML, DisplayMode: true}
	out, err := lib.RenderToString(context.Background(), "E = mc^2", opts)

	require.NoError(t, err)
	assert.Contains(t, out, `class="katex"`)
	assert.Equal(t, "katex", fake.recorded(t, "render-module"))

	var req types.RenderRequest
	require.NoError(t, json.Unmarshal([]byte(fake.recorded(t, "render-stdin")), &req))
	assert.Equal(t, "E = mc^2", req.Expression)
	assert.Equal(t, opts, req.Options)
}

func TestRenderToString_RequestUsesKaTeXOptionNames(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_RENDER_OUTPUT", "<span class=\"katex\"></span>")

	lib, err := NewNodeLoader(fake.settings()).Load(context.Background())
	require.NoError(t, err)

	_, err = lib.RenderToString(context.Background(), "x", types.RenderOptions{Output: "html", DisplayMode: true})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(fake.recorded(t, "render-stdin")), &raw))
	assert.Equal(t, "x", raw["expression"])
	assert.Equal(t, map[string]interface{}{
		"output":       "html",
		"displayMode":  true,
		"throwOnError": false,
		"strict":       false,
		"trust":        false,
	}, raw["options"])
}

func TestRenderToString_Empty(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_RENDER_OUTPUT", "")

	lib, err := NewNodeLoader(fake.settings()).Load(context.Background())
	require.NoError(t, err)

	out, err := lib.RenderToString(context.Background(), "x", types.RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderToString_Thrown(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_RENDER_EXIT", "2")
	t.Setenv("FAKE_RENDER_STDERR", "KaTeX parse error: Expected 'EOF'")

	lib, err := NewNodeLoader(fake.settings()).Load(context.Background())
	require.NoError(t, err)

	_, err = lib.RenderToString(context.Background(), "x", types.RenderOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderFailed))
	assert.Equal(t, true, errors.GetErrorDetails(err)["thrown"])
	assert.Contains(t, errors.UserMessage(err), "KaTeX parse error")
}

func TestRenderToString_Timeout(t *testing.T) {
	fake := newFakeEnv(t)
	t.Setenv("FAKE_RENDER_SLEEP", "5")
	s := fake.settings()
	s.RenderTimeout = 200 * time.Millisecond

	lib, err := NewNodeLoader(s).Load(context.Background())
	require.NoError(t, err)

	_, err = lib.RenderToString(context.Background(), "x", types.RenderOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTimeout))
}

func TestAppendNodePath(t *testing.T) {
	tests := []struct {
		name string
		env  []string
		want []string
	}{
		{
			name: "missing",
			env:  []string{"HOME=/home/me"},
			want: []string{"HOME=/home/me", "NODE_PATH=/g"},
		},
		{
			name: "empty",
			env:  []string{"NODE_PATH="},
			want: []string{"NODE_PATH=/g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appendNodePath(tt.env, "/g"))
		})
	}
}

func TestRedactScript(t *testing.T) {
	args := []string{"-e", probeScript, "katex"}

	assert.Equal(t, []string{"-e", "<script>", "katex"}, redactScript(args))
	assert.Equal(t, probeScript, args[1], "input must not be modified")
}
