// Package styles holds the lipgloss styles for katexprobe's terminal output.
//
// Styles are declared in styles.yaml with adaptive colors, so the same sheet
// works on light and dark terminals. Style names match types.LineKind values:
// a check line is styled by its kind.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names used outside of check lines
const (
	Warning = "Warning"
	Error   = string(types.LineFailure)
)

// ColorDef is an adaptive color: Light is used on light backgrounds
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one entry of the styles section
type StyleDef struct {
	Foreground string `yaml:"foreground,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
}

// Sheet is the parsed form of a styles file
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedSheet []byte

var registry = map[string]lipgloss.Style{}

func init() {
	// A broken embedded sheet leaves every style plain
	_ = Load(embeddedSheet)
}

// LoadFile replaces the active styles with the sheet at path
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return Load(data)
}

// Load replaces the active styles with the given YAML sheet. The active
// styles are left untouched when the sheet is invalid.
func Load(data []byte) error {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	built := make(map[string]lipgloss.Style, len(sheet.Styles))
	for name, def := range sheet.Styles {
		style, err := build(def, sheet.Colors)
		if err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
		built[name] = style
	}

	registry = built
	return nil
}

func build(def StyleDef, colors map[string]ColorDef) (lipgloss.Style, error) {
	style := lipgloss.NewStyle().Bold(def.Bold).Faint(def.Faint)

	if def.Foreground == "" {
		return style, nil
	}
	color, ok := colors[def.Foreground]
	if !ok {
		return style, fmt.Errorf("unknown color %q", def.Foreground)
	}
	return style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark}), nil
}

// Get returns the named style, or a plain style for unknown names
func Get(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// ForKind returns the style of a check line kind
func ForKind(kind types.LineKind) lipgloss.Style {
	return Get(string(kind))
}

// Names lists the defined styles
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
