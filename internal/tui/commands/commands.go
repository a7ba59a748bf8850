// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Copy writes text to the clipboard through write.
func Copy(text string, label string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			return ErrMsg{Err: fmt.Errorf("copy %s: no clipboard", label)}
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy %s: %w", label, err)}
		}
		return StatusMsg{Msg: "Copied " + label}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
