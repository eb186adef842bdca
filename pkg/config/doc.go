// Package config handles configuration management for katexprobe.
// It loads configuration in layers: embedded defaults, the user's TOML file
// (XDG config directory or an explicit --config path) and KATEXPROBE_*
// environment variables.
package config
