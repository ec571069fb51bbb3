// Package styles defines the visual styling for pybootstrap's terminal
// output. Styles use semantic names and adaptive colors loaded from an
// embedded YAML sheet, so all command output shares one theme.
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// sheet is the complete styles configuration
type sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

func init() {
	var s sheet
	if err := yaml.Unmarshal(stylesYAML, &s); err != nil {
		// the sheet is embedded; a parse failure is a programming error
		panic("styles: invalid embedded styles.yaml: " + err.Error())
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(s.Colors))
	for name, def := range s.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(s.Styles))
	for name, def := range s.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if c, ok := colors[def.Foreground]; ok {
			style = style.Foreground(c)
		}
		registry[name] = style
	}
}

// Get returns the style registered under name, or a zero style for
// unknown names so callers degrade to plain text
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render formats text with the named style
func Render(name, text string) string {
	return Get(name).Render(text)
}

// Names returns the registered style names
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
