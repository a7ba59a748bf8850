package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javiermolinar/timetable/internal/course"
)

// SessionLine formats a session for list output:
// "Mon  1-2  08:15-09:55  Calculus  @Room 101  weeks 1-8".
func SessionLine(s *course.Session) string {
	slots := fmt.Sprintf("%d", s.StartSlot)
	if s.Duration > 1 {
		slots = fmt.Sprintf("%d-%d", s.StartSlot, s.EndSlot())
	}
	clock := "--:-----:--"
	if start, end, ok := s.ClockRange(); ok {
		clock = start + "-" + end
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-3s  %-5s  %s  %s", course.WeekdayLabel(s.Weekday), slots, clock, s.Title)
	if s.Location != "" {
		b.WriteString("  @" + s.Location)
	}
	b.WriteString("  " + formatMuted("weeks "+s.WeeksLabel()))
	return b.String()
}

// WeekHeading describes the viewed week, e.g. "Week 3/20 · September 2025".
func WeekHeading(store *course.Store) string {
	first := store.StartDate().AddDate(0, 0, store.CurrentWeek()*7)
	label := fmt.Sprintf("Week %d/%d · %s %d", store.CurrentWeek()+1, store.WeekCount(),
		time.Month(store.CurrentMonth()), first.Year())
	if !store.Started() {
		label += " (not started)"
	}
	return label
}

// StackConflicts returns every stack of two or more sessions in the viewed
// week, in slot then weekday order.
func StackConflicts(store *course.Store) [][]*course.Session {
	var stacks [][]*course.Session
	layout := store.Layout()
	for slot := 1; slot <= len(layout); slot++ {
		for day := 1; day <= course.DaysPerWeek; day++ {
			if cell := layout.At(slot, day); cell.Start && len(cell.Stack) > 1 {
				stacks = append(stacks, cell.Stack)
			}
		}
	}
	return stacks
}

func printConflicts(w io.Writer, stacks [][]*course.Session) {
	for _, stack := range stacks {
		top := stack[0]
		titles := make([]string, 0, len(stack))
		for _, s := range stack {
			titles = append(titles, s.Title)
		}
		clock := ""
		if slot, ok := course.SlotAt(top.StartSlot); ok {
			clock = slot.Start
		}
		fmt.Fprintf(w, "  %s %-3s slot %-2d %s  %s\n", formatWarning("!"),
			course.WeekdayLabel(top.Weekday), top.StartSlot, clock, strings.Join(titles, ", "))
	}
}
