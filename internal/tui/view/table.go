package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds data needed to render the week grid.
type TableViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	// CellWidth truncates every non-header cell to this many columns; 0 keeps
	// the text whole.
	CellWidth   int
	BorderStyle lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
	Render      bool
}

// RenderTable renders the week grid using a lipgloss table.
func RenderTable(state TableViewState) string {
	if !state.Render || state.GridH <= 0 {
		return ""
	}

	rows := state.Content.Rows
	if state.CellWidth > 0 {
		rows = make([][]string, len(state.Content.Rows))
		for i, row := range state.Content.Rows {
			rows[i] = make([]string, len(row))
			for j, cell := range row {
				if j == 0 {
					rows[i][j] = cell
					continue
				}
				rows[i][j] = ansi.Truncate(cell, state.CellWidth, "…")
			}
		}
	}

	t := table.New().
		Headers(state.Headers...).
		Width(max(state.InnerW, 0)).
		Height(state.GridH).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(state.HeaderStyles) {
					return state.HeaderStyles[col]
				}
				return lipgloss.NewStyle()
			}
			if row < 0 || row >= len(state.Content.CellStyles) || col < 0 || col >= len(state.Content.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.Content.CellStyles[row][col]
		})

	return PlaceBox(state.InnerW, state.GridH, state.VAlign, t.Render(), state.Bg)
}
