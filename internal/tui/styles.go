package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timetable/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	TitleStyle   lipgloss.Style
	HeadingStyle lipgloss.Style

	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	TimeColumnStyle     lipgloss.Style

	FreeCellStyle lipgloss.Style
	CursorStyle   lipgloss.Style
	BorderStyle   lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) Styles {
	p := theme.NewPalette(t)
	s := Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Padding(0, 1)

	s.HeadingStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg).
		Padding(0, 1)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(p.Fg).
		Background(p.BgHighlight)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(p.TextOnToday).
		Background(p.Today)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.FreeCellStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgSelection)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(p.Border).
		Background(p.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.BgHighlight).
		Padding(0, 1)

	s.ErrorStyle = s.StatusStyle.
		Foreground(p.TextOnWarning).
		Background(p.Warning)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg).
		Padding(0, 1)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.Bg).
		Padding(0, 1)

	return s
}

// SessionCellStyle paints a cell occupied by a session of the given color.
// The first slot is bold on a stronger shade than the slots it spans.
func (s Styles) SessionCellStyle(color string, start, selected bool) lipgloss.Style {
	bg := s.palette.SpanBg(color)
	if start {
		bg = s.palette.SessionBg(color)
	}
	style := lipgloss.NewStyle().
		Foreground(s.palette.TextOn(bg)).
		Background(bg).
		Bold(start)
	if selected {
		style = style.Reverse(true)
	}
	return style
}

// Background returns the base background color.
func (s Styles) Background() lipgloss.Color {
	return s.palette.Bg
}
