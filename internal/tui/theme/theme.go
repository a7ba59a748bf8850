// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Default is the theme used for an empty or unknown name.
const Default = "mocha"

// Theme holds the chrome colors of the TUI. Session cells take their color
// from the course palette, not from the theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header row, status line
	BgSelection string `toml:"bg_selection"` // Cursor on a free cell
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Slot times, free cells
	Accent      string `toml:"accent"`       // Title, cursor outline
	Today       string `toml:"today"`        // Today's column header
	Warning     string `toml:"warning"`      // Stack marker, errors
	Border      string `toml:"border"`       // Table border, defaults to accent
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = Default
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != Default {
			return Load(Default)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.BgHighlight = coalesce(t.BgHighlight, t.Bg)
	t.BgSelection = coalesce(t.BgSelection, t.BgHighlight)
	t.FgMuted = coalesce(t.FgMuted, t.Fg)
	t.Today = coalesce(t.Today, t.Accent)
	t.Warning = coalesce(t.Warning, t.Accent)
	t.Border = coalesce(t.Border, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
