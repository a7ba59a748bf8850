package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/palette"
	"github.com/javiermolinar/timetable/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.WithField("key", msg.String()).Trace("key press")

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.cursor.Day = max(m.cursor.Day-1, 0)
	case "l", "right":
		m.cursor.Day = min(m.cursor.Day+1, course.DaysPerWeek-1)
	case "j", "down":
		m.cursor.Slot = min(m.cursor.Slot+1, course.SlotCount()-1)
	case "k", "up":
		m.cursor.Slot = max(m.cursor.Slot-1, 0)

	// Week navigation
	case "[":
		return m.gotoWeek(m.store.CurrentWeek() - 1)
	case "]":
		return m.gotoWeek(m.store.CurrentWeek() + 1)
	case "t":
		return m.gotoWeek(m.store.OriginalWeek())
	case "g":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		return m, m.prompt.Focus()

	// Session actions
	case "enter":
		return m.cycleStack()
	case "d":
		return m.deleteSelected()
	case "D":
		return m.deleteSelectedTitle()
	case "y":
		return m.copySelected()

	case "c":
		return m.cyclePalette()
	}
	return m, nil
}

// handlePromptKeys handles the week jump input.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		m.mode = ModeNormal
		m.prompt.Blur()
		week, err := strconv.Atoi(value)
		if err != nil || week < 1 || week > m.store.WeekCount() {
			return m.setStatus(fmt.Sprintf("Week must be between 1 and %d", m.store.WeekCount()), true)
		}
		return m.gotoWeek(week - 1)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// gotoWeek views the 0-based week index, clamped to the semester.
func (m Model) gotoWeek(index int) (tea.Model, tea.Cmd) {
	last := m.store.WeekCount() - 1
	index = min(max(index, 0), last)
	if index == m.store.CurrentWeek() {
		return m, nil
	}
	m.store.SetCurrentWeek(index)
	m.log.WithField("week", index+1).Debug("week changed")
	return m, nil
}

// cycleStack brings the bottom session of the selected stack to the top, so
// repeated presses walk through every session of the stack. Promoting drops
// other entries with the same title, weekday and start slot, so sessions with
// such duplicates are skipped.
func (m Model) cycleStack() (tea.Model, tea.Cmd) {
	stack := m.selectedStack(m.store.Layout())
	if len(stack) < 2 {
		return m, nil
	}
	var next *course.Session
	for i := len(stack) - 1; i > 0; i-- {
		if m.duplicates(stack[i]) == 0 {
			next = stack[i]
			break
		}
	}
	if next == nil {
		return m.setStatus(fmt.Sprintf("Cannot reorder: %s has duplicate entries", stack[0].Title), true)
	}
	m.store.PromoteToTop(next)
	m.log.WithFields(logrus.Fields{
		"title":   next.Title,
		"weekday": next.Weekday,
		"slot":    next.StartSlot,
	}).Debug("promoted session")
	return m.setStatus(fmt.Sprintf("%s on top (%d in stack)", next.Title, len(stack)), false)
}

// duplicates counts the other stored entries sharing s's occupant triple.
func (m Model) duplicates(s *course.Session) int {
	n := 0
	for _, other := range m.store.Sessions() {
		if other != s && s.SameOccupant(other) {
			n++
		}
	}
	return n
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	s := m.selected(m.store.Layout()).Session
	if s == nil {
		return m, nil
	}
	m.store.DeleteSession(s)
	m.log.WithField("title", s.Title).Info("deleted session")
	return m.setStatus(fmt.Sprintf("Deleted %s on %s", s.Title, course.WeekdayLabel(s.Weekday)), false)
}

func (m Model) deleteSelectedTitle() (tea.Model, tea.Cmd) {
	s := m.selected(m.store.Layout()).Session
	if s == nil {
		return m, nil
	}
	before := m.store.Len()
	m.store.DeleteSessionByTitle(s.Title)
	removed := before - m.store.Len()
	m.log.WithFields(logrus.Fields{"title": s.Title, "removed": removed}).Info("deleted course")
	return m.setStatus(fmt.Sprintf("Deleted %d %s sessions", removed, s.Title), false)
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	s := m.selected(m.store.Layout()).Session
	if s == nil {
		return m.setStatus("Nothing to copy", false)
	}
	return m, commands.Copy(copyText(s), s.Title, m.copyFunc)
}

func (m Model) cyclePalette() (tea.Model, tea.Cmd) {
	if m.store.PaletteCount() == 0 {
		return m, nil
	}
	next := (m.store.PaletteIndex() + 1) % m.store.PaletteCount()
	m.store.SetPaletteIndex(next)
	m.log.WithField("palette", palette.Name(next)).Debug("palette changed")
	return m.setStatus("Palette: "+palette.Name(next), false)
}

// copyText is the clipboard form of a session.
func copyText(s *course.Session) string {
	parts := []string{s.Title, course.WeekdayLabel(s.Weekday)}
	if start, end, ok := s.ClockRange(); ok {
		parts = append(parts, start+"-"+end)
	}
	if s.Location != "" {
		parts = append(parts, s.Location)
	}
	parts = append(parts, "weeks "+s.WeeksLabel())
	return strings.Join(parts, " · ")
}
