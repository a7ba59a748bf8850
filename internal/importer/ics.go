package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/dateutil"
)

var icsDateFormats = []string{
	"20060102T150405Z",
	"20060102T150405",
	"20060102",
}

// icsEvent is one VEVENT reduced to the timetable grid.
type icsEvent struct {
	title     string
	location  string
	weekday   int
	startSlot int
	duration  int
	weeks     []int
}

// parseICS turns every usable VEVENT into a session. Events with the same
// title, weekday, start slot and duration are merged into one session whose
// weeks are the union of theirs.
func parseICS(r io.Reader, opts Options) ([]*course.Session, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	loc := opts.location()
	start := dateutil.TruncateToDay(opts.SemesterStart.In(loc))

	var events []icsEvent
	for _, vevent := range cal.Events() {
		evts, ok := parseVEvent(vevent, start, opts.weekCount(), loc)
		if !ok {
			continue
		}
		events = append(events, evts...)
	}

	merged := mergeEvents(events)
	sessions := make([]*course.Session, 0, len(merged))
	for i, evt := range merged {
		s, err := course.New(evt.title, evt.location, evt.weekday, evt.startSlot, evt.duration, evt.weeks)
		if err != nil {
			return nil, fmt.Errorf("%w %d (%q): %w", ErrInvalidRecord, i, evt.title, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func parseVEvent(evt *ics.VEvent, semesterStart time.Time, weekCount int, loc *time.Location) ([]icsEvent, bool) {
	summary := evt.GetProperty(ics.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return nil, false
	}

	dtStart, err := parseDateTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return nil, false
	}
	dtEnd, err := parseDateTime(evt, ics.ComponentPropertyDtEnd, loc)
	if err != nil {
		dtEnd = dtStart.Add(45 * time.Minute)
	}

	startClock := dtStart.Format("15:04")
	slot := course.SlotForClock(startClock)
	if slot == 0 {
		return nil, false
	}

	days := expandDays(evt, dtStart, semesterStart, weekCount, loc)
	if len(days) == 0 {
		return nil, false
	}

	var location string
	if prop := evt.GetProperty(ics.ComponentPropertyLocation); prop != nil {
		location = strings.TrimSpace(prop.Value)
	}

	duration := course.SlotsSpanned(startClock, dtEnd.Format("15:04"))
	events := make([]icsEvent, 0, len(days))
	for _, d := range days {
		events = append(events, icsEvent{
			title:     strings.TrimSpace(summary.Value),
			location:  location,
			weekday:   d.weekday,
			startSlot: slot,
			duration:  duration,
			weeks:     d.weeks,
		})
	}
	return events, true
}

// icsDay groups the semester weeks an event occurs in on one weekday.
type icsDay struct {
	weekday int
	weeks   []int
}

// expandDays lists the weekdays an event occurs on and, for each, the
// semester weeks. Days are ordered by their first occurrence. A rule that
// cannot be parsed keeps only DTSTART.
func expandDays(evt *ics.VEvent, dtStart, semesterStart time.Time, weekCount int, loc *time.Location) []icsDay {
	semesterEnd := semesterStart.AddDate(0, 0, weekCount*7)
	excluded := parseExDates(evt, loc)

	var days []icsDay
	index := make(map[int]int)
	seen := make(map[[2]int]bool)
	add := func(t time.Time) {
		if excluded[t.Format("20060102")] {
			return
		}
		wk := dateutil.WeekNumber(t, semesterStart)
		if wk < 1 || wk > weekCount {
			return
		}
		weekday := dateutil.ISOWeekday(t.Weekday())
		if seen[[2]int{weekday, wk}] {
			return
		}
		seen[[2]int{weekday, wk}] = true
		i, ok := index[weekday]
		if !ok {
			i = len(days)
			index[weekday] = i
			days = append(days, icsDay{weekday: weekday})
		}
		days[i].weeks = append(days[i].weeks, wk)
	}

	prop := evt.GetProperty(ics.ComponentPropertyRrule)
	if prop == nil {
		add(dtStart)
		return days
	}
	rule, err := parseRule(prop.Value, dtStart, loc)
	if err != nil {
		add(dtStart)
		return days
	}

	next := rule.Iterator()
	for occurrence, ok := next(); ok && occurrence.Before(semesterEnd); occurrence, ok = next() {
		add(occurrence)
	}
	return days
}

// parseRule builds the recurrence of an RRULE value anchored at dtStart.
// Floating UNTIL times are read in loc, and a date-only UNTIL covers the
// whole day.
func parseRule(value string, dtStart time.Time, loc *time.Location) (*rrule.RRule, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	opt, err := rrule.StrToROptionInLocation(value, loc)
	if err != nil {
		return nil, fmt.Errorf("parsing rule %q: %w", value, err)
	}
	opt.Dtstart = dtStart
	if len(ruleUntil(value)) == len("20060102") && !opt.Until.IsZero() {
		opt.Until = opt.Until.Add(24*time.Hour - time.Second)
	}
	return rrule.NewRRule(*opt)
}

func ruleUntil(value string) string {
	for _, part := range strings.Split(value, ";") {
		if key, val, ok := strings.Cut(part, "="); ok && key == "UNTIL" {
			return val
		}
	}
	return ""
}

// parseExDates collects excluded dates as YYYYMMDD in loc.
func parseExDates(evt *ics.VEvent, loc *time.Location) map[string]bool {
	excluded := make(map[string]bool)
	for _, prop := range evt.Properties {
		if prop.IANAToken != string(ics.ComponentPropertyExdate) {
			continue
		}
		for _, value := range strings.Split(prop.Value, ",") {
			t, err := parseICSTime(strings.TrimSpace(value), tzid(prop.ICalParameters), loc)
			if err == nil {
				excluded[t.Format("20060102")] = true
			}
		}
	}
	return excluded
}

func parseDateTime(evt *ics.VEvent, name ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := evt.GetProperty(name)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", name)
	}
	return parseICSTime(prop.Value, tzid(prop.ICalParameters), loc)
}

// parseICSTime parses UTC, zoned and floating times and returns them in loc.
func parseICSTime(value, zone string, loc *time.Location) (time.Time, error) {
	for _, layout := range icsDateFormats {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "Z") {
			return t.In(loc), nil
		}
		if zone != "" {
			if zoneLoc, err := time.LoadLocation(zone); err == nil {
				return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, zoneLoc).In(loc), nil
			}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized calendar time %q", value)
}

func tzid(params map[string][]string) string {
	for k, v := range params {
		if strings.EqualFold(k, "TZID") && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// mergeEvents folds events sharing an occupant and duration, keeping the
// first-seen order and location.
func mergeEvents(events []icsEvent) []icsEvent {
	type key struct {
		title     string
		weekday   int
		startSlot int
		duration  int
	}
	index := make(map[key]int)
	var merged []icsEvent

	for _, e := range events {
		k := key{e.title, e.weekday, e.startSlot, e.duration}
		if i, ok := index[k]; ok {
			merged[i].weeks = append(merged[i].weeks, e.weeks...)
			if merged[i].location == "" {
				merged[i].location = e.location
			}
			continue
		}
		index[k] = len(merged)
		merged = append(merged, e)
	}
	return merged
}
