// Package tui provides the terminal user interface for timetable.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/timetable/internal/config"
	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/logging"
	"github.com/javiermolinar/timetable/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // week jump input
)

// Position is the cursor cell: 0-based weekday column and slot row.
type Position struct {
	Day  int
	Slot int
}

// Model is the bubbletea model of the week view. It holds the store by
// pointer, so every copy of the model sees the same schedule.
type Model struct {
	store  *course.Store
	config *config.Config
	log    *logrus.Entry

	theme  *theme.Theme
	styles Styles

	cursor Position
	mode   Mode
	prompt textinput.Model

	width  int
	height int

	statusMsg  string
	statusErr  bool
	statusTime time.Time

	copyFunc func(string) error
	nowFunc  func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard overrides the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copyFunc = write
	}
}

// WithNow overrides the clock used for status expiry.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// New creates a new TUI model over store.
func New(store *course.Store, cfg *config.Config, log *logrus.Entry, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.For(nil, "tui")
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		log.WithError(err).Warn("loading theme, falling back to default")
		t, _ = theme.Load(theme.Default)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "week number"
	ti.CharLimit = 2
	ti.Width = 8
	ti.Prompt = "Go to week: "
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.HeadingStyle

	m := Model{
		store:    store,
		config:   cfg,
		log:      log,
		theme:    t,
		styles:   styles,
		cursor:   Position{Day: store.TodayWeekday()},
		mode:     ModeNormal,
		prompt:   ti,
		copyFunc: clipboard.WriteAll,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI and blocks until the user quits.
func Run(store *course.Store, cfg *config.Config, log *logrus.Entry) error {
	model := New(store, cfg, log)
	model.log.WithFields(logrus.Fields{
		"sessions": store.Len(),
		"week":     store.CurrentWeek() + 1,
		"theme":    model.theme.Name,
	}).Debug("starting tui")

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// selected returns the layout cell under the cursor.
func (m Model) selected(layout course.Layout) course.Cell {
	return layout.At(m.cursor.Slot+1, m.cursor.Day+1)
}

// selectedStack returns the conflict stack of the session under the cursor,
// walking up to its first slot when the cursor sits on a continuation.
func (m Model) selectedStack(layout course.Layout) []*course.Session {
	cell := m.selected(layout)
	if cell.Session == nil {
		return nil
	}
	for slot := m.cursor.Slot + 1; slot >= 1; slot-- {
		c := layout.At(slot, m.cursor.Day+1)
		if c.Start && c.Session == cell.Session {
			return c.Stack
		}
	}
	return []*course.Session{cell.Session}
}
