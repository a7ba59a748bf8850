// Package view provides view composition helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
// Lines wider than width are cut.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	paddingStyle := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Truncate(line, width, "")
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines, "\n")
}

// Line fits content on one line of exactly width columns using style.
func Line(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "…")
	}
	return style.Width(contentWidth).Render(content)
}
