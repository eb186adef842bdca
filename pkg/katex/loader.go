package katex

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/arthur-debert/katexprobe/pkg/logging"
	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/rs/zerolog"
)

// Default settings, matching the embedded configuration
const (
	DefaultBinary        = "node"
	DefaultNpmBinary     = "npm"
	DefaultModule        = "katex"
	DefaultProbeTimeout  = 5 * time.Second
	DefaultRenderTimeout = 30 * time.Second
)

// Settings configures a NodeLoader
type Settings struct {
	Binary        string
	NpmBinary     string
	Module        string
	GlobalModules bool
	ProbeTimeout  time.Duration
	RenderTimeout time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.Binary == "" {
		s.Binary = DefaultBinary
	}
	if s.NpmBinary == "" {
		s.NpmBinary = DefaultNpmBinary
	}
	if s.Module == "" {
		s.Module = DefaultModule
	}
	if s.ProbeTimeout <= 0 {
		s.ProbeTimeout = DefaultProbeTimeout
	}
	if s.RenderTimeout <= 0 {
		s.RenderTimeout = DefaultRenderTimeout
	}
	return s
}

// NodeLoader loads KaTeX through Node.js
type NodeLoader struct {
	settings Settings
	logger   zerolog.Logger
}

// NewNodeLoader creates a loader; zero settings fall back to the defaults
func NewNodeLoader(s Settings) *NodeLoader {
	return &NodeLoader{
		settings: s.withDefaults(),
		logger:   logging.GetLogger("katex.loader"),
	}
}

// Settings returns the effective settings
func (l *NodeLoader) Settings() Settings {
	return l.settings
}

// Load finds node, checks that it runs and requires the module
func (l *NodeLoader) Load(ctx context.Context) (types.Library, error) {
	lib, err := l.LoadNode(ctx)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// LoadNode is Load with the concrete return type
func (l *NodeLoader) LoadNode(ctx context.Context) (*NodeLibrary, error) {
	s := l.settings

	binary, err := exec.LookPath(s.Binary)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNodeNotFound, "Node.js binary %q not found", s.Binary).
			WithDetail("binary", s.Binary)
	}

	env := os.Environ()

	res, err := run(ctx, s.ProbeTimeout, binary, []string{"--version"}, env, nil)
	if err != nil {
		return nil, err
	}
	if res.exitCode != 0 {
		return nil, errors.Newf(errors.ErrNodeNotFound, "%s --version exited with status %d", binary, res.exitCode).
			WithDetail("binary", binary).
			WithDetail("stderr", res.stderr)
	}
	nodeVersion := strings.TrimSpace(res.stdout)
	l.logger.Debug().Str("binary", binary).Str("version", nodeVersion).Msg("Found Node.js")

	if s.GlobalModules {
		env = l.withGlobalModules(ctx, env)
	}

	res, err = run(ctx, s.ProbeTimeout, binary, []string{"-e", probeScript, s.Module}, env, nil)
	if err != nil {
		return nil, err
	}
	if res.exitCode != 0 {
		msg := firstLine(res.stderr)
		if msg == "" {
			msg = fmt.Sprintf("require(%q) exited with status %d", s.Module, res.exitCode)
		}
		return nil, errors.New(errors.ErrLibraryLoad, msg).
			WithDetail("module", s.Module).
			WithDetail("exitCode", res.exitCode)
	}

	libVersion := strings.TrimSpace(res.stdout)
	l.logger.Info().
		Str("module", s.Module).
		Str("version", libVersion).
		Str("node", nodeVersion).
		Msg("Library loaded")

	return &NodeLibrary{
		binary:      binary,
		module:      s.Module,
		env:         env,
		timeout:     s.RenderTimeout,
		Version:     libVersion,
		NodeVersion: nodeVersion,
		logger:      logging.GetLogger("katex.library"),
	}, nil
}

// withGlobalModules appends `npm root -g` to NODE_PATH. Failures are logged
// and leave env unchanged; a local install still works without it.
func (l *NodeLoader) withGlobalModules(ctx context.Context, env []string) []string {
	npm, err := exec.LookPath(l.settings.NpmBinary)
	if err != nil {
		l.logger.Debug().Err(err).Msg("npm not found, skipping global modules")
		return env
	}

	res, err := run(ctx, l.settings.ProbeTimeout, npm, []string{"root", "-g"}, env, nil)
	if err != nil || res.exitCode != 0 {
		l.logger.Debug().Err(err).Int("exitCode", res.exitCode).Msg("npm root -g failed, skipping global modules")
		return env
	}

	root := firstLine(res.stdout)
	if root == "" {
		return env
	}
	l.logger.Debug().Str("root", root).Msg("Adding global modules to NODE_PATH")
	return appendNodePath(env, root)
}

// appendNodePath adds dir to NODE_PATH in env, creating the variable if needed
func appendNodePath(env []string, dir string) []string {
	out := make([]string, 0, len(env)+1)
	found := false
	for _, kv := range env {
		if strings.HasPrefix(kv, "NODE_PATH=") {
			found = true
			current := strings.TrimPrefix(kv, "NODE_PATH=")
			if current == "" {
				kv = "NODE_PATH=" + dir
			} else {
				kv = "NODE_PATH=" + current + string(os.PathListSeparator) + dir
			}
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, "NODE_PATH="+dir)
	}
	return out
}
