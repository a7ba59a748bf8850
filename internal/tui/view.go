package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/tui/view"
)

const (
	timeColWidth = 8 // " 1 08:15"
	headerLines  = 1
	footerLines  = 2
	minColWidth  = 4
)

const helpText = "hjkl move · [ ] week · t today · enter cycle · d delete · D delete course · c palette · g go to · y copy · q quit"

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	gridH := m.height - headerLines - footerLines
	if gridH <= 0 {
		return "Terminal too small"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeading(),
		view.RenderTable(m.tableViewState(gridH)),
		m.renderStatus(),
		m.renderHelp(),
	)
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.Background())
}

// weekHeading describes the viewed week, e.g. "Week 3/20 · September 2025".
func (m Model) weekHeading() string {
	first := m.store.StartDate().AddDate(0, 0, m.store.CurrentWeek()*7)
	label := fmt.Sprintf("Week %d/%d · %s %d", m.store.CurrentWeek()+1, m.store.WeekCount(),
		time.Month(m.store.CurrentMonth()), first.Year())
	if !m.store.Started() {
		label += " · not started"
	}
	if m.store.CurrentWeek() != m.store.OriginalWeek() {
		label += fmt.Sprintf(" · today is week %d", m.store.OriginalWeek()+1)
	}
	return label
}

func (m Model) renderHeading() string {
	title := m.styles.TitleStyle.Render("timetable")
	rest := m.width - lipgloss.Width(title)
	return title + view.Line(rest, m.styles.HeadingStyle, m.weekHeading())
}

func (m Model) renderStatus() string {
	if m.mode == ModePrompt {
		return view.Line(m.width, m.styles.PromptStyle, m.prompt.View())
	}
	if m.statusMsg == "" {
		return view.Line(m.width, m.styles.StatusStyle, m.selectionSummary())
	}
	style := m.styles.StatusStyle
	if m.statusErr {
		style = m.styles.ErrorStyle
	}
	return view.Line(m.width, style, m.statusMsg)
}

func (m Model) renderHelp() string {
	return view.Line(m.width, m.styles.HelpStyle, helpText)
}

// selectionSummary describes the cell under the cursor.
func (m Model) selectionSummary() string {
	layout := m.store.Layout()
	cell := m.selected(layout)
	slot := m.cursor.Slot + 1
	label := fmt.Sprintf("%s slot %d", course.WeekdayLabel(m.cursor.Day+1), slot)
	if st, ok := course.SlotAt(slot); ok {
		label += fmt.Sprintf(" (%s-%s)", st.Start, st.End)
	}
	if cell.Session == nil {
		return label + " · free"
	}
	label += " · " + copyText(cell.Session)
	if stack := m.selectedStack(layout); len(stack) > 1 {
		titles := make([]string, len(stack))
		for i, s := range stack {
			titles[i] = s.Title
		}
		label += fmt.Sprintf(" · stack of %d: %s", len(stack), strings.Join(titles, ", "))
	}
	return label
}

// colWidth is the text width of one day column for the current terminal.
func (m Model) colWidth() int {
	// one border per column plus the outer two, one padding column each side
	avail := m.width - timeColWidth - 2 - (course.DaysPerWeek + 1) - 2*(course.DaysPerWeek+1)
	return max(avail/course.DaysPerWeek, minColWidth)
}

func (m Model) tableViewState(gridH int) view.TableViewState {
	layout := m.store.Layout()
	days := m.store.CurrentWeekDays()
	showToday := m.store.CurrentWeek() == m.store.OriginalWeek()
	colWidth := m.colWidth()

	headers := make([]string, 0, course.DaysPerWeek+1)
	headerStyles := make([]lipgloss.Style, 0, course.DaysPerWeek+1)
	headers = append(headers, "Slot")
	headerStyles = append(headerStyles, m.styles.TimeColumnStyle.Padding(0, 1))
	for i, label := range course.WeekdayLabels {
		headers = append(headers, ansi.Truncate(label+" "+strconv.Itoa(days[i]), colWidth, ""))
		style := m.styles.DayHeaderStyle
		if showToday && i == m.store.TodayWeekday() {
			style = m.styles.DayHeaderTodayStyle
		}
		headerStyles = append(headerStyles, style.Padding(0, 1))
	}

	rows := make([][]string, 0, len(layout))
	cellStyles := make([][]lipgloss.Style, 0, len(layout))
	for slot := 1; slot <= len(layout); slot++ {
		row := make([]string, 0, course.DaysPerWeek+1)
		styles := make([]lipgloss.Style, 0, course.DaysPerWeek+1)

		st, _ := course.SlotAt(slot)
		row = append(row, fmt.Sprintf("%2d %s", slot, st.Start))
		styles = append(styles, m.styles.TimeColumnStyle.Padding(0, 1))

		for day := 1; day <= course.DaysPerWeek; day++ {
			cell := layout.At(slot, day)
			selected := m.cursor.Slot == slot-1 && m.cursor.Day == day-1
			row = append(row, cellText(cell))
			styles = append(styles, m.cellStyle(cell, selected).Padding(0, 1))
		}
		rows = append(rows, row)
		cellStyles = append(cellStyles, styles)
	}

	return view.TableViewState{
		InnerW:       m.width,
		GridH:        gridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		CellWidth:   colWidth,
		BorderStyle: m.styles.BorderStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.Background(),
		Render:      true,
	}
}

func (m Model) cellStyle(cell course.Cell, selected bool) lipgloss.Style {
	if cell.Session == nil {
		if selected {
			return m.styles.CursorStyle
		}
		return m.styles.FreeCellStyle
	}
	return m.styles.SessionCellStyle(cell.Session.Color, cell.Start, selected)
}

// cellText is the session title on its first slot, with a "+N" marker for
// stacked sessions, and the location on the slots it continues through.
func cellText(cell course.Cell) string {
	switch {
	case cell.Session == nil:
		return ""
	case cell.Start && len(cell.Stack) > 1:
		return fmt.Sprintf("%s +%d", cell.Session.Title, len(cell.Stack)-1)
	case cell.Start:
		return cell.Session.Title
	default:
		return cell.Session.Location
	}
}
