// Package palette provides the selectable course color palettes.
package palette

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedPalettes embed.FS

// Default is the palette used when none is configured.
const Default = "vivid"

// Palette is a named, ordered list of hex colors cycled across course titles.
type Palette struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// Load loads a palette by name from embedded files.
// Falls back to the default palette if the name is unknown.
func Load(name string) (*Palette, error) {
	if name == "" {
		name = Default
	}
	name = strings.ToLower(name)

	data, err := embeddedPalettes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != Default {
			return Load(Default)
		}
		return nil, fmt.Errorf("loading palette %q: %w", name, err)
	}

	var p Palette
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing palette %q: %w", name, err)
	}
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return &p, nil
}

// All loads every available palette in index order.
func All() ([][]string, error) {
	names := Available()
	out := make([][]string, 0, len(names))
	for _, name := range names {
		p, err := Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Colors)
	}
	return out, nil
}

// Available returns the palette names in index order.
func Available() []string {
	return []string{"vivid", "pastel", "catppuccin"}
}

// IsAvailable reports whether a palette name is available.
func IsAvailable(name string) bool {
	return Index(name) >= 0
}

// Index returns the position of name in Available, or -1.
func Index(name string) int {
	name = strings.ToLower(name)
	for i, n := range Available() {
		if n == name {
			return i
		}
	}
	return -1
}

// Name returns the palette name at index, wrapping like the course store does.
func Name(index int) string {
	names := Available()
	if index < 0 {
		index = 0
	}
	return names[index%len(names)]
}
