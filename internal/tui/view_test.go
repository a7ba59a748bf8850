package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/timetable/internal/course"
)

func TestView_Placeholders(t *testing.T) {
	m := New(stackedStore(t), nil, nil)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before size = %q, want Loading...", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	if got := updated.(Model).View(); got != "Terminal too small" {
		t.Errorf("View() on tiny terminal = %q", got)
	}
}

func TestView_WeekGrid(t *testing.T) {
	m := newTestModel(t, stackedStore(t))
	out := m.View()

	for _, want := range []string{
		"timetable",
		"Week 3/20 · September 2025",
		"Mon 15",
		"Sun 21",
		"Algebra +2",
		"Room 1",
		"Drawing",
		" 1 08:15",
		"12 21:20",
		"q quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Errorf("View() has %d lines, want 30", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 120 {
			t.Errorf("line %d is %d columns wide", i, w)
		}
	}
}

func TestView_HeadingAwayFromToday(t *testing.T) {
	store := stackedStore(t)
	m := newTestModel(t, store)
	store.SetCurrentWeek(5)

	if got := m.weekHeading(); got != "Week 6/20 · October 2025 · today is week 3" {
		t.Errorf("weekHeading() = %q", got)
	}
}

func TestView_StatusLine(t *testing.T) {
	m := newTestModel(t, stackedStore(t))
	m.cursor = Position{Day: 0, Slot: 0}

	summary := m.selectionSummary()
	for _, want := range []string{"Mon slot 1 (08:15-09:00)", "Algebra · Mon", "stack of 3: Algebra, Biology, Chemistry"} {
		if !strings.Contains(summary, want) {
			t.Errorf("selectionSummary() = %q, missing %q", summary, want)
		}
	}

	m.cursor = Position{Day: 6, Slot: 11}
	if got := m.selectionSummary(); got != "Sun slot 12 (21:20-22:05) · free" {
		t.Errorf("selectionSummary() on a free cell = %q", got)
	}

	m, _ = press(t, m, "g")
	if !strings.Contains(m.renderStatus(), "Go to week:") {
		t.Errorf("prompt not shown in status line: %q", m.renderStatus())
	}
}

func TestView_SessionColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	store := stackedStore(t)
	m := newTestModel(t, store)

	// Algebra is the first title seen, so it takes the first palette color;
	// its first slot sits on the darkened shade.
	algebra := store.Sessions()[0]
	if algebra.Color != "#ff0000" {
		t.Fatalf("Algebra color = %q, want #ff0000", algebra.Color)
	}
	style := m.styles.SessionCellStyle(algebra.Color, true, false)
	if bg := style.GetBackground(); bg != lipgloss.Color("#7f2828") {
		t.Errorf("session background = %v, want #7f2828", bg)
	}

	out := m.View()
	if !strings.Contains(out, "48;2;127;40;40") {
		t.Error("View() missing the Algebra background sequence")
	}
}

func TestCellText(t *testing.T) {
	s := &course.Session{Title: "Algebra", Location: "Room 1", Weekday: 1, StartSlot: 1, Duration: 2}
	other := &course.Session{Title: "Biology", Weekday: 1, StartSlot: 1, Duration: 1}

	tests := []struct {
		name string
		cell course.Cell
		want string
	}{
		{name: "free", cell: course.Cell{}, want: ""},
		{name: "start", cell: course.Cell{Session: s, Start: true, Stack: []*course.Session{s}}, want: "Algebra"},
		{name: "stack", cell: course.Cell{Session: s, Start: true, Stack: []*course.Session{s, other}}, want: "Algebra +1"},
		{name: "continuation", cell: course.Cell{Session: s}, want: "Room 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellText(tt.cell); got != tt.want {
				t.Errorf("cellText() = %q, want %q", got, tt.want)
			}
		})
	}
}
