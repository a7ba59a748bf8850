package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/timetable/internal/course"
)

// Export writes sessions to w as JSON, YAML or TOML.
func Export(w io.Writer, format Format, sessions []*course.Session) error {
	records := make([]Record, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, RecordFrom(s))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tomlDocument{Sessions: records}); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
	default:
		return fmt.Errorf("%w for export: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

// WriteFile exports sessions to path, choosing the format from its extension.
func WriteFile(path string, sessions []*course.Session) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Export(f, format, sessions); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
