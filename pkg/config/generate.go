package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/katexprobe/pkg/errors"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk shape of Config; durations are written as strings
type fileConfig struct {
	TexRenderer string `toml:"tex_renderer"`
	Node        struct {
		Binary        string `toml:"binary"`
		NpmBinary     string `toml:"npm_binary"`
		ProbeTimeout  string `toml:"probe_timeout"`
		RenderTimeout string `toml:"render_timeout"`
	} `toml:"node"`
	Katex struct {
		Module        string `toml:"module"`
		GlobalModules bool   `toml:"global_modules"`
	} `toml:"katex"`
}

// MarshalTOML renders the configuration as a config file
func (c *Config) MarshalTOML() ([]byte, error) {
	var fc fileConfig
	fc.TexRenderer = c.TexRenderer
	fc.Node.Binary = c.Node.Binary
	fc.Node.NpmBinary = c.Node.NpmBinary
	fc.Node.ProbeTimeout = c.Node.ProbeTimeout.String()
	fc.Node.RenderTimeout = c.Node.RenderTimeout.String()
	fc.Katex.Module = c.Katex.Module
	fc.Katex.GlobalModules = c.Katex.GlobalModules

	data, err := toml.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return data, nil
}

// WriteFile writes the configuration to path, creating parent directories.
// An existing file is only replaced when overwrite is set. The write runs as a
// synthfs operation on the OS filesystem.
func (c *Config) WriteFile(path string, overwrite bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "invalid path %s", path)
	}

	if !overwrite {
		if _, err := os.Stat(abs); err == nil {
			return errors.Newf(errors.ErrFileWrite, "%s already exists", abs).
				WithDetail("path", abs)
		}
	}

	data, err := c.MarshalTOML()
	if err != nil {
		return err
	}

	sfs := synthfs.New()
	op := sfs.CustomOperationWithID("write_config", func(ctx context.Context, fs filesystem.FileSystem) error {
		if err := fs.MkdirAll(filepath.Dir(abs), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(abs), err)
		}
		return fs.WriteFile(abs, data, 0644)
	})

	var fsys filesystem.FullFileSystem = synthfs.NewPathAwareFileSystem(filesystem.NewOSFileSystem("/"), "/").WithAbsolutePaths()
	if _, err := synthfs.RunWithOptions(context.Background(), fsys, synthfs.DefaultPipelineOptions(), op); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", abs).
			WithDetail("path", abs)
	}
	return nil
}
