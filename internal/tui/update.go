package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timetable/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.ErrMsg:
		m.log.WithError(msg.Err).Warn("tui action failed")
		return m.setStatus("Error: "+msg.Err.Error(), true)

	case commands.StatusMsg:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if !m.nowFunc().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusTime = m.nowFunc().Add(commands.StatusDuration)
	return m, commands.ClearStatusAfter(commands.StatusDuration)
}
