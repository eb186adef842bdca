package config

import (
	"time"

	"github.com/arthur-debert/katexprobe/pkg/errors"
)

// Renderer names accepted for tex_renderer
const (
	RendererLaTeX = "latex"
	RendererKaTeX = "katex"
)

// Config is the effective katexprobe configuration
type Config struct {
	TexRenderer string      `koanf:"tex_renderer"`
	Node        NodeConfig  `koanf:"node"`
	Katex       KatexConfig `koanf:"katex"`
}

// NodeConfig controls how the Node.js runtime is invoked
type NodeConfig struct {
	Binary        string        `koanf:"binary"`
	NpmBinary     string        `koanf:"npm_binary"`
	ProbeTimeout  time.Duration `koanf:"probe_timeout"`
	RenderTimeout time.Duration `koanf:"render_timeout"`
}

// KatexConfig controls which module is loaded
type KatexConfig struct {
	Module        string `koanf:"module"`
	GlobalModules bool   `koanf:"global_modules"`
}

// Validate checks the configuration for values the probe cannot work with
func (c *Config) Validate() error {
	switch c.TexRenderer {
	case RendererLaTeX, RendererKaTeX:
	default:
		return errors.Newf(errors.ErrConfigValid,
			"tex_renderer must be %q or %q, got %q", RendererLaTeX, RendererKaTeX, c.TexRenderer).
			WithDetail("key", "tex_renderer")
	}
	if c.Node.Binary == "" {
		return errors.New(errors.ErrConfigValid, "node.binary must not be empty").
			WithDetail("key", "node.binary")
	}
	if c.Katex.Module == "" {
		return errors.New(errors.ErrConfigValid, "katex.module must not be empty").
			WithDetail("key", "katex.module")
	}
	if c.Node.ProbeTimeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "node.probe_timeout must be positive, got %s", c.Node.ProbeTimeout).
			WithDetail("key", "node.probe_timeout")
	}
	if c.Node.RenderTimeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "node.render_timeout must be positive, got %s", c.Node.RenderTimeout).
			WithDetail("key", "node.render_timeout")
	}
	return nil
}

// UsesKaTeX reports whether the animation tool would render math with KaTeX
func (c *Config) UsesKaTeX() bool {
	return c.TexRenderer == RendererKaTeX
}
