// Package course defines the timetable domain: recurring class sessions, the
// week projector, conflict stacks and per-course colors.
package course

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidWeekday  = errors.New("weekday must be between 1 and 7")
	ErrInvalidSlot     = errors.New("start slot must be at least 1")
	ErrInvalidDuration = errors.New("duration must be at least 1 slot")
	ErrNoWeeks         = errors.New("at least one active week is required")
	ErrInvalidWeek     = errors.New("week numbers must be at least 1")
)

// Session is one recurring class entry of the timetable.
type Session struct {
	ID        int64 // storage row id, 0 until persisted
	Title     string
	Location  string
	StartSlot int   // 1-based index into SlotTimes
	Duration  int   // consecutive slots occupied
	Weekday   int   // 1..7
	Weeks     []int // 1-based semester weeks, ascending
	Color     string

	ref uuid.UUID // identity while owned by a Store
}

// New creates a Session with validation. Weeks are sorted and deduplicated.
func New(title, location string, weekday, startSlot, duration int, weeks []int) (*Session, error) {
	s := &Session{
		Title:     strings.TrimSpace(title),
		Location:  strings.TrimSpace(location),
		StartSlot: startSlot,
		Duration:  duration,
		Weekday:   weekday,
		Weeks:     NormalizeWeeks(weeks),
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the fields an importer or editor must supply.
func Validate(s *Session) error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	if s.Weekday < 1 || s.Weekday > DaysPerWeek {
		return fmt.Errorf("%w, got %d", ErrInvalidWeekday, s.Weekday)
	}
	if s.StartSlot < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSlot, s.StartSlot)
	}
	if s.Duration < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidDuration, s.Duration)
	}
	if len(s.Weeks) == 0 {
		return ErrNoWeeks
	}
	for _, w := range s.Weeks {
		if w < 1 {
			return fmt.Errorf("%w, got %d", ErrInvalidWeek, w)
		}
	}
	return nil
}

// NormalizeWeeks returns a sorted copy of weeks without duplicates.
func NormalizeWeeks(weeks []int) []int {
	out := slices.Clone(weeks)
	slices.Sort(out)
	return slices.Compact(out)
}

// ActiveIn reports whether the session recurs in the 1-based week.
func (s *Session) ActiveIn(week int) bool {
	return slices.Contains(s.Weeks, week)
}

// SameOccupant reports whether both sessions share title, weekday and start slot.
func (s *Session) SameOccupant(other *Session) bool {
	if other == nil {
		return false
	}
	return s.Title == other.Title && s.Weekday == other.Weekday && s.StartSlot == other.StartSlot
}

// EndSlot returns the last slot the session occupies.
func (s *Session) EndSlot() int {
	return s.StartSlot + max(s.Duration, 1) - 1
}

// Covers reports whether the session occupies the 1-based slot.
func (s *Session) Covers(slot int) bool {
	return slot >= s.StartSlot && slot <= s.EndSlot()
}

// ClockRange returns the start and end clock of the session, using the
// configured slot table. ok is false if the start slot has no table entry.
func (s *Session) ClockRange() (start, end string, ok bool) {
	first, ok := SlotAt(s.StartSlot)
	if !ok {
		return "", "", false
	}
	last, ok := SlotAt(s.EndSlot())
	if !ok {
		last = SlotTimes[len(SlotTimes)-1]
	}
	return first.Start, last.End, true
}

// Clone returns a detached copy without store identity.
func (s *Session) Clone() *Session {
	c := *s
	c.Weeks = slices.Clone(s.Weeks)
	c.ref = uuid.Nil
	return &c
}

// WeeksLabel formats the active weeks compactly, e.g. "1-8,10,12".
func (s *Session) WeeksLabel() string {
	return FormatWeeks(s.Weeks)
}

// FormatWeeks formats ascending week numbers as comma-separated runs.
func FormatWeeks(weeks []int) string {
	weeks = NormalizeWeeks(weeks)
	var b strings.Builder
	for i := 0; i < len(weeks); {
		j := i
		for j+1 < len(weeks) && weeks[j+1] == weeks[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(weeks[i]))
		if j > i {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(weeks[j]))
		}
		i = j + 1
	}
	return b.String()
}
