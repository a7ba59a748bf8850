package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/importer"
)

const zonedCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//timetable//integration//EN
BEGIN:VEVENT
UID:paris
SUMMARY:Seminar
DTSTART;TZID=Europe/Paris:20251020T101000
DTEND;TZID=Europe/Paris:20251020T115000
RRULE:FREQ=WEEKLY;COUNT=3
END:VEVENT
BEGIN:VEVENT
UID:utc
SUMMARY:Lab
DTSTART:20251021T132500Z
DTEND:20251021T141000Z
END:VEVENT
END:VCALENDAR
`

func TestImport_ZonedTimesAcrossDST(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Paris leaves summer time on 2025-10-26, between the first and second
	// Seminar occurrence.
	start := time.Date(2025, 10, 13, 0, 0, 0, 0, paris)
	sessions, err := importer.Parse(
		strings.NewReader(strings.ReplaceAll(zonedCalendar, "\n", "\r\n")),
		importer.FormatICS,
		importer.Options{SemesterStart: start, WeekCount: 8, Location: paris},
	)
	if err != nil {
		t.Fatalf("failed to import calendar: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	byTitle := make(map[string]*course.Session)
	for _, s := range sessions {
		byTitle[s.Title] = s
	}

	seminar := byTitle["Seminar"]
	if seminar == nil {
		t.Fatal("Seminar not imported")
	}
	if seminar.Weekday != 1 || seminar.StartSlot != 3 || seminar.Duration != 2 {
		t.Errorf("Seminar at weekday %d slot %d for %d, want Monday slot 3 for 2",
			seminar.Weekday, seminar.StartSlot, seminar.Duration)
	}
	if seminar.WeeksLabel() != "2-4" {
		t.Errorf("Seminar weeks = %s, want 2-4", seminar.WeeksLabel())
	}

	// 13:25 UTC is 15:25 in Paris summer time
	lab := byTitle["Lab"]
	if lab == nil {
		t.Fatal("Lab not imported")
	}
	if lab.Weekday != 2 || lab.StartSlot != 6 || lab.WeeksLabel() != "2" {
		t.Errorf("Lab at weekday %d slot %d weeks %s, want Tuesday slot 6 week 2",
			lab.Weekday, lab.StartSlot, lab.WeeksLabel())
	}
}

func TestSemesterStart_StoredAsCalendarDay(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, filepath.Join(t.TempDir(), "timetable.db"))

	// late evening in a zone east of UTC is still the same calendar day
	tokyo := time.FixedZone("JST", 9*3600)
	start := time.Date(2025, 9, 1, 23, 30, 0, 0, tokyo)
	if err := repo.SaveSemester(ctx, course.Semester{StartDate: start, WeekCount: 12, Palette: "vivid"}); err != nil {
		t.Fatalf("SaveSemester() error: %v", err)
	}

	sem, ok, err := repo.LoadSemester(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadSemester() ok=%v err=%v", ok, err)
	}
	if got := sem.StartDate.Format("2006-01-02"); got != "2025-09-01" {
		t.Errorf("start date = %s, want 2025-09-01", got)
	}
	if sem.StartDate.Hour() != 0 || sem.StartDate.Location() != time.Local {
		t.Errorf("start date = %v, want local midnight", sem.StartDate)
	}

	// the week index only depends on elapsed time from local midnight
	store := loadStore(t, repo, time.Date(2025, 9, 8, 0, 0, 1, 0, time.Local))
	if store.OriginalWeek() != 1 {
		t.Errorf("original week = %d, want 1", store.OriginalWeek())
	}
}
