package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/timetable/internal/course"
)

// Record is the file representation of one session.
type Record struct {
	Title    string `json:"title" yaml:"title" toml:"title"`
	Location string `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Start    int    `json:"start" yaml:"start" toml:"start"`
	Duration int    `json:"duration" yaml:"duration" toml:"duration"`
	Weekday  int    `json:"weekday" yaml:"weekday" toml:"weekday"`
	Weeks    []int  `json:"weeks" yaml:"weeks,flow" toml:"weeks"`
}

// tomlDocument wraps records as [[session]] tables.
type tomlDocument struct {
	Sessions []Record `toml:"session"`
}

func decodeRecords(r io.Reader, format Format) ([]Record, error) {
	var records []Record
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
		records = doc.Sessions
	}
	return records, nil
}

func recordsToSessions(records []Record) ([]*course.Session, error) {
	sessions := make([]*course.Session, 0, len(records))
	for i, rec := range records {
		s, err := course.New(rec.Title, rec.Location, rec.Weekday, rec.Start, rec.Duration, rec.Weeks)
		if err != nil {
			return nil, fmt.Errorf("%w %d (%q): %w", ErrInvalidRecord, i, rec.Title, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// RecordFrom converts a session to its file representation.
func RecordFrom(s *course.Session) Record {
	return Record{
		Title:    s.Title,
		Location: s.Location,
		Start:    s.StartSlot,
		Duration: s.Duration,
		Weekday:  s.Weekday,
		Weeks:    s.Weeks,
	}
}
