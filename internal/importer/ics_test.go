package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/timetable/internal/course"
)

const sampleCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//timetable//test//EN
BEGIN:VEVENT
UID:calc-1
SUMMARY:Calculus
LOCATION:Room 101
DTSTART:20250901T081500
DTEND:20250901T095500
RRULE:FREQ=WEEKLY;COUNT=4
EXDATE:20250908T081500
END:VEVENT
BEGIN:VEVENT
UID:calc-2
SUMMARY:Calculus
DTSTART:20250929T081500
DTEND:20250929T095500
END:VEVENT
BEGIN:VEVENT
UID:phys-1
SUMMARY:Physics
LOCATION:Lab 2
DTSTART:20250903T143000
DTEND:20250903T161000
RRULE:FREQ=WEEKLY;INTERVAL=2;UNTIL=20251001T235959Z
END:VEVENT
BEGIN:VEVENT
UID:early
SUMMARY:Breakfast
DTSTART:20250902T070000
DTEND:20250902T074500
END:VEVENT
BEGIN:VEVENT
UID:before
SUMMARY:Orientation
DTSTART:20250801T090000
DTEND:20250801T100000
END:VEVENT
BEGIN:VEVENT
UID:untitled
DTSTART:20250902T081500
DTEND:20250902T090000
END:VEVENT
END:VCALENDAR
`

func calendarReader(s string) *strings.Reader {
	return strings.NewReader(strings.ReplaceAll(s, "\n", "\r\n"))
}

func testOptions() Options {
	return Options{
		SemesterStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		WeekCount:     20,
		Location:      time.UTC,
	}
}

func TestParseICS(t *testing.T) {
	sessions, err := Parse(calendarReader(sampleCalendar), FormatICS, testOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	calc := sessions[0]
	if calc.Title != "Calculus" || calc.Location != "Room 101" {
		t.Errorf("unexpected first session %+v", calc)
	}
	if calc.Weekday != 1 || calc.StartSlot != 1 || calc.Duration != 2 {
		t.Errorf("calculus placement = weekday %d slot %d duration %d", calc.Weekday, calc.StartSlot, calc.Duration)
	}
	if got := course.FormatWeeks(calc.Weeks); got != "1,3-5" {
		t.Errorf("calculus weeks = %s, want 1,3-5", got)
	}

	phys := sessions[1]
	if phys.Weekday != 3 || phys.StartSlot != 5 || phys.Duration != 2 {
		t.Errorf("physics placement = weekday %d slot %d duration %d", phys.Weekday, phys.StartSlot, phys.Duration)
	}
	if got := course.FormatWeeks(phys.Weeks); got != "1,3,5" {
		t.Errorf("physics weeks = %s, want 1,3,5", got)
	}
}

func TestParseICS_WeekCountLimitsRecurrence(t *testing.T) {
	cal := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
SUMMARY:Seminar
DTSTART:20250905T101000
DTEND:20250905T105500
RRULE:FREQ=WEEKLY
END:VEVENT
END:VCALENDAR
`
	opts := testOptions()
	opts.WeekCount = 3

	sessions, err := Parse(calendarReader(cal), FormatICS, opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if got := course.FormatWeeks(sessions[0].Weeks); got != "1-3" {
		t.Errorf("weeks = %s, want 1-3", got)
	}
	if sessions[0].Weekday != 5 || sessions[0].StartSlot != 3 || sessions[0].Duration != 1 {
		t.Errorf("unexpected placement %+v", sessions[0])
	}
}

func TestParseICS_Malformed(t *testing.T) {
	if _, err := Parse(strings.NewReader("not a calendar"), FormatICS, testOptions()); err == nil {
		t.Error("expected error for malformed calendar")
	}
}

func TestParseICS_ByDaySplitsWeekdays(t *testing.T) {
	cal := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
SUMMARY:Algebra
DTSTART:20250901T081500
DTEND:20250901T095500
RRULE:FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4
END:VEVENT
END:VCALENDAR
`
	sessions, err := Parse(calendarReader(cal), FormatICS, testOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected a Monday and a Wednesday session, got %d", len(sessions))
	}

	for i, want := range []struct {
		weekday int
		weeks   string
	}{{1, "1-2"}, {3, "1-2"}} {
		s := sessions[i]
		if s.Weekday != want.weekday || s.StartSlot != 1 || s.Duration != 2 {
			t.Errorf("session %d placement = weekday %d slot %d duration %d", i, s.Weekday, s.StartSlot, s.Duration)
		}
		if got := course.FormatWeeks(s.Weeks); got != want.weeks {
			t.Errorf("session %d weeks = %s, want %s", i, got, want.weeks)
		}
	}
}

func TestParseICS_Until(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	tests := []struct {
		name  string
		until string
		want  string
	}{
		{name: "floating time is local", until: "20250915T081500", want: "1-3"},
		{name: "utc", until: "20250915T121500Z", want: "1-3"},
		{name: "utc before the last class", until: "20250915T121400Z", want: "1-2"},
		{name: "date only covers the day", until: "20250915", want: "1-3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cal := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
SUMMARY:Algebra
DTSTART:20250901T081500
DTEND:20250901T090000
RRULE:FREQ=WEEKLY;UNTIL=` + tc.until + `
END:VEVENT
END:VCALENDAR
`
			opts := Options{
				SemesterStart: time.Date(2025, 9, 1, 0, 0, 0, 0, newYork),
				WeekCount:     20,
				Location:      newYork,
			}
			sessions, err := Parse(calendarReader(cal), FormatICS, opts)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(sessions) != 1 {
				t.Fatalf("expected 1 session, got %d", len(sessions))
			}
			if got := course.FormatWeeks(sessions[0].Weeks); got != tc.want {
				t.Errorf("weeks = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseRule_InvalidKeepsFirstOccurrence(t *testing.T) {
	if _, err := parseRule("FREQ=SOMETIMES", time.Date(2025, 9, 1, 8, 15, 0, 0, time.UTC), time.UTC); err == nil {
		t.Fatal("expected error for unknown frequency")
	}

	cal := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
SUMMARY:Algebra
DTSTART:20250908T081500
DTEND:20250908T090000
RRULE:FREQ=SOMETIMES
END:VEVENT
END:VCALENDAR
`
	sessions, err := Parse(calendarReader(cal), FormatICS, testOptions())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sessions) != 1 || course.FormatWeeks(sessions[0].Weeks) != "2" {
		t.Fatalf("expected a single week 2 session, got %+v", sessions)
	}
}

func TestParseICSTime(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	tests := []struct {
		name  string
		value string
		zone  string
		want  string
	}{
		{"utc", "20250901T061500Z", "", "2025-09-01 08:15"},
		{"floating", "20250901T081500", "", "2025-09-01 08:15"},
		{"zoned", "20250901T111500", "UTC", "2025-09-01 13:15"},
		{"date only", "20250901", "", "2025-09-01 00:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseICSTime(tc.value, tc.zone, paris)
			if err != nil {
				t.Fatalf("parseICSTime failed: %v", err)
			}
			if s := got.Format("2006-01-02 15:04"); s != tc.want {
				t.Errorf("got %s, want %s", s, tc.want)
			}
		})
	}

	if _, err := parseICSTime("tomorrow", "", paris); err == nil {
		t.Error("expected error for unparseable value")
	}
}
