package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timetable/internal/course"
)

// gridOptions controls week grid rendering.
type gridOptions struct {
	Width int  // total width available; 0 means no truncation
	Color bool // paint sessions with their palette color
}

const timeColWidth = 9

// RenderWeekGrid draws the viewed week as a table with one row per slot.
func RenderWeekGrid(store *course.Store, opts gridOptions) string {
	layout := store.Layout()
	days := store.CurrentWeekDays()

	headers := make([]string, 0, course.DaysPerWeek+1)
	headers = append(headers, "Slot")
	for i, label := range course.WeekdayLabels {
		h := label + " " + strconv.Itoa(days[i])
		if store.CurrentWeek() == store.OriginalWeek() && i == store.TodayWeekday() {
			h = "*" + h + "*"
		}
		headers = append(headers, h)
	}

	colWidth := 0
	if opts.Width > 0 {
		// borders take one column per day plus two
		colWidth = max((opts.Width-timeColWidth-course.DaysPerWeek-2)/course.DaysPerWeek, 6)
	}

	rows := make([][]string, 0, len(layout))
	styles := make([][]lipgloss.Style, 0, len(layout))
	for slot := 1; slot <= len(layout); slot++ {
		row := make([]string, 0, course.DaysPerWeek+1)
		rowStyles := make([]lipgloss.Style, 0, course.DaysPerWeek+1)

		st, _ := course.SlotAt(slot)
		row = append(row, fmt.Sprintf("%2d %s", slot, st.Start))
		rowStyles = append(rowStyles, lipgloss.NewStyle().Faint(true))

		for day := 1; day <= course.DaysPerWeek; day++ {
			cell := layout.At(slot, day)
			text := cellText(cell)
			if colWidth > 0 {
				text = ansi.Truncate(text, colWidth, "…")
			}
			row = append(row, text)

			style := lipgloss.NewStyle()
			if opts.Color && cell.Session != nil {
				style = style.Foreground(lipgloss.Color(cell.Session.Color))
				if cell.Start {
					style = style.Bold(true)
				}
			}
			rowStyles = append(rowStyles, style)
		}
		rows = append(rows, row)
		styles = append(styles, rowStyles)
	}

	t := table.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			if row < 0 || row >= len(styles) || col < 0 || col >= len(styles[row]) {
				return lipgloss.NewStyle().Padding(0, 1)
			}
			return styles[row][col].Padding(0, 1)
		})

	return t.Render()
}

// cellText is the session title on its first slot, with a "+N" marker for
// stacked sessions, and a location or dot on the slots it continues through.
func cellText(cell course.Cell) string {
	switch {
	case cell.Session == nil:
		return ""
	case cell.Start && len(cell.Stack) > 1:
		return fmt.Sprintf("%s +%d", cell.Session.Title, len(cell.Stack)-1)
	case cell.Start:
		return cell.Session.Title
	case cell.Session.Location != "":
		return "@" + cell.Session.Location
	default:
		return "·"
	}
}
