package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/timetable/internal/course"
)

func TestListSessions_Empty(t *testing.T) {
	repo := newTestRepo(t)

	sessions, err := repo.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if sessions == nil || len(sessions) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", sessions)
	}
}

func TestReplaceSessions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	input := []*course.Session{
		{Title: "Physics", Location: "Lab 2", StartSlot: 3, Duration: 2, Weekday: 1, Weeks: []int{1, 2, 3}},
		{Title: "Art", Location: "", StartSlot: 5, Duration: 3, Weekday: 4, Weeks: []int{1, 3, 5, 7}},
	}

	if err := repo.ReplaceSessions(ctx, input); err != nil {
		t.Fatalf("ReplaceSessions failed: %v", err)
	}
	for _, s := range input {
		if s.ID == 0 {
			t.Errorf("expected ID to be set for %q", s.Title)
		}
	}

	got, err := repo.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}

	for i, want := range input {
		g := got[i]
		if g.ID != want.ID || g.Title != want.Title || g.Location != want.Location ||
			g.StartSlot != want.StartSlot || g.Duration != want.Duration || g.Weekday != want.Weekday {
			t.Errorf("session %d: got %+v, want %+v", i, g, want)
		}
		if course.FormatWeeks(g.Weeks) != course.FormatWeeks(want.Weeks) {
			t.Errorf("session %d weeks: got %v, want %v", i, g.Weeks, want.Weeks)
		}
	}
}

func TestReplaceSessions_PreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Store order is list order, not sorted order.
	input := []*course.Session{
		{Title: "Promoted", StartSlot: 3, Duration: 2, Weekday: 5, Weeks: []int{1}},
		{Title: "Monday", StartSlot: 1, Duration: 2, Weekday: 1, Weeks: []int{1}},
	}
	if err := repo.ReplaceSessions(ctx, input); err != nil {
		t.Fatalf("ReplaceSessions failed: %v", err)
	}

	got, err := repo.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if got[0].Title != "Promoted" || got[1].Title != "Monday" {
		t.Errorf("order not preserved: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestReplaceSessions_Replaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := []*course.Session{
		{Title: "Old", StartSlot: 1, Duration: 1, Weekday: 1, Weeks: []int{1}},
		{Title: "Older", StartSlot: 2, Duration: 1, Weekday: 1, Weeks: []int{1}},
	}
	if err := repo.ReplaceSessions(ctx, first); err != nil {
		t.Fatalf("ReplaceSessions failed: %v", err)
	}

	second := []*course.Session{{Title: "New", StartSlot: 1, Duration: 1, Weekday: 2, Weeks: []int{4}}}
	if err := repo.ReplaceSessions(ctx, second); err != nil {
		t.Fatalf("ReplaceSessions failed: %v", err)
	}

	got, err := repo.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "New" {
		t.Errorf("expected only New, got %d sessions", len(got))
	}

	if err := repo.ReplaceSessions(ctx, nil); err != nil {
		t.Fatalf("ReplaceSessions(nil) failed: %v", err)
	}
	got, _ = repo.ListSessions(ctx)
	if len(got) != 0 {
		t.Errorf("expected empty table, got %d", len(got))
	}
}

func TestReplaceSessions_RollsBackOnInvalidRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	keep := []*course.Session{{Title: "Keep", StartSlot: 1, Duration: 1, Weekday: 1, Weeks: []int{1}}}
	if err := repo.ReplaceSessions(ctx, keep); err != nil {
		t.Fatalf("ReplaceSessions failed: %v", err)
	}

	bad := []*course.Session{
		{Title: "Fine", StartSlot: 1, Duration: 1, Weekday: 1, Weeks: []int{1}},
		{Title: "Bad weekday", StartSlot: 1, Duration: 1, Weekday: 9, Weeks: []int{1}},
	}
	if err := repo.ReplaceSessions(ctx, bad); err == nil {
		t.Fatal("expected constraint error")
	}
	if bad[0].ID != 0 {
		t.Error("IDs should not be assigned after a failed replace")
	}

	got, _ := repo.ListSessions(ctx)
	if len(got) != 1 || got[0].Title != "Keep" {
		t.Errorf("expected rollback to keep the old list, got %d sessions", len(got))
	}
}

func TestSemester_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, ok, err := repo.LoadSemester(ctx); err != nil || ok {
		t.Fatalf("expected no semester yet, ok=%v err=%v", ok, err)
	}

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)
	want := course.Semester{StartDate: start, WeekCount: 18, Palette: "pastel"}
	if err := repo.SaveSemester(ctx, want); err != nil {
		t.Fatalf("SaveSemester failed: %v", err)
	}

	got, ok, err := repo.LoadSemester(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadSemester: ok=%v err=%v", ok, err)
	}
	if !got.StartDate.Equal(start) {
		t.Errorf("start = %v, want %v", got.StartDate, start)
	}
	if got.WeekCount != 18 || got.Palette != "pastel" {
		t.Errorf("got %+v", got)
	}

	want.Palette = "vivid"
	if err := repo.SaveSemester(ctx, want); err != nil {
		t.Fatalf("SaveSemester update failed: %v", err)
	}
	got, _, _ = repo.LoadSemester(ctx)
	if got.Palette != "vivid" {
		t.Errorf("palette not updated, got %q", got.Palette)
	}
}

func TestNew_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sessions := []*course.Session{{Title: "Persisted", StartSlot: 1, Duration: 1, Weekday: 3, Weeks: []int{2}}}
	if err := repo.ReplaceSessions(ctx, sessions); err != nil {
		t.Fatalf("ReplaceSessions failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	got, err := repo.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Persisted" {
		t.Errorf("expected persisted session after reopen")
	}
}

func TestWeeksCodec(t *testing.T) {
	got, err := decodeWeeks(encodeWeeks([]int{1, 3, 10}))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if course.FormatWeeks(got) != "1,3,10" {
		t.Errorf("got %v", got)
	}
	if _, err := decodeWeeks("1,x"); err == nil {
		t.Error("expected error for malformed weeks")
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
