// Package importer reads timetables from iCalendar, JSON, YAML and TOML files
// and writes them back out.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/javiermolinar/timetable/internal/course"
)

var (
	// ErrInvalidRecord wraps every rejected input record.
	ErrInvalidRecord = errors.New("invalid session record")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Format names an input or output encoding.
type Format string

const (
	FormatICS  Format = "ics"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ics", ".ical":
		return FormatICS, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Options controls how calendar dates map onto semester weeks.
type Options struct {
	SemesterStart time.Time
	WeekCount     int
	// Location interprets floating calendar times. Defaults to time.Local.
	Location *time.Location
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o Options) weekCount() int {
	if o.WeekCount < 1 {
		return course.DefaultWeekCount
	}
	return o.WeekCount
}

// ParseFile reads path and returns its sessions in file order.
func ParseFile(path string, opts Options) ([]*course.Session, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, format, opts)
}

// Parse decodes r in the given format.
func Parse(r io.Reader, format Format, opts Options) ([]*course.Session, error) {
	switch format {
	case FormatICS:
		return parseICS(r, opts)
	case FormatJSON, FormatYAML, FormatTOML:
		records, err := decodeRecords(r, format)
		if err != nil {
			return nil, err
		}
		return recordsToSessions(records)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
