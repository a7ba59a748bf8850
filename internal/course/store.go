package course

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/timetable/internal/dateutil"
)

// DefaultWeekCount is the semester length used when none is configured.
const DefaultWeekCount = 20

// Change identifies the kind of mutation a Store completed.
type Change int

const (
	ChangeStartDate Change = iota
	ChangeWeek
	ChangeList
	ChangePalette
)

// String returns the change name.
func (c Change) String() string {
	switch c {
	case ChangeStartDate:
		return "start_date"
	case ChangeWeek:
		return "week"
	case ChangeList:
		return "list"
	case ChangePalette:
		return "palette"
	default:
		return "unknown"
	}
}

// Store owns the session list, the viewed week and both memos.
// All mutation goes through its methods; it is not safe for concurrent use.
type Store struct {
	sessions []*Session

	startDate    time.Time
	weekCount    int
	started      bool
	originalWeek int
	currentWeek  int
	currentMonth int

	palettes     [][]string
	paletteIndex int

	conflictMemo *ConflictMemo
	colorMemo    *ColorMemo
	resolver     *ConflictResolver
	colors       *ColorAssigner

	now         func() time.Time
	subscribers []func(Change)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for week arithmetic.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithPalettes sets the selectable color palettes.
func WithPalettes(palettes [][]string) StoreOption {
	return func(s *Store) {
		s.palettes = palettes
	}
}

// WithWeekCount sets the semester length.
func WithWeekCount(n int) StoreOption {
	return func(s *Store) {
		s.weekCount = max(n, 1)
	}
}

// NewStore creates an empty store whose semester starts now.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		weekCount:    DefaultWeekCount,
		conflictMemo: NewConflictMemo(),
		colorMemo:    NewColorMemo(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resolver = NewConflictResolver(s.conflictMemo)
	s.colors = NewColorAssigner(s.colorMemo)
	s.startDate = s.now()
	s.currentMonth = int(s.startDate.Month())
	return s
}

// Subscribe registers fn to be called after every completed mutation.
func (s *Store) Subscribe(fn func(Change)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(c Change) {
	for _, fn := range s.subscribers {
		fn(c)
	}
}

// SetStartDate sets the semester start, recomputes the original week index
// from the clock and moves the viewed week to it.
func (s *Store) SetStartDate(date time.Time) {
	s.startDate = date
	now := s.now()
	s.started = now.After(date)
	s.originalWeek = dateutil.WeeksSince(date, now)
	s.setCurrentWeek(s.originalWeek)
	s.notify(ChangeStartDate)
}

// SetCurrentWeek moves the viewed week. Any index is accepted; indices outside
// the semester yield empty projections.
func (s *Store) SetCurrentWeek(index int) {
	s.setCurrentWeek(index)
	s.notify(ChangeWeek)
}

func (s *Store) setCurrentWeek(index int) {
	s.conflictMemo.Invalidate()
	s.currentWeek = index
	s.currentMonth = int(s.startDate.AddDate(0, 0, index*7).Month())
}

// SetWeekCount sets the semester length used by the occupancy grid.
func (s *Store) SetWeekCount(n int) {
	s.weekCount = max(n, 1)
	s.notify(ChangeList)
}

// SetSessionList replaces the list, sorting it by weekday then start slot.
// Nil entries are dropped.
func (s *Store) SetSessionList(list []*Session) {
	s.replace(slices.Clone(list))
	s.notify(ChangeList)
}

// AddSession appends a session and re-sorts the list.
func (s *Store) AddSession(session *Session) {
	if session == nil {
		return
	}
	s.replace(append(s.sessions, session))
	s.notify(ChangeList)
}

// UpdateSession applies edit to a session owned by the store, then re-sorts
// and recolors. It is a no-op when session is not in the list.
func (s *Store) UpdateSession(session *Session, edit func(*Session)) {
	if session == nil || edit == nil || !slices.Contains(s.sessions, session) {
		return
	}
	edit(session)
	session.Weeks = NormalizeWeeks(session.Weeks)
	s.replace(s.sessions)
	s.notify(ChangeList)
}

func (s *Store) replace(list []*Session) {
	s.conflictMemo.Invalidate()
	list = slices.DeleteFunc(list, func(item *Session) bool { return item == nil })
	for _, item := range list {
		adopt(item)
	}
	slices.SortStableFunc(list, func(a, b *Session) int {
		if a.Weekday != b.Weekday {
			return a.Weekday - b.Weekday
		}
		return a.StartSlot - b.StartSlot
	})
	s.sessions = list
	s.colors.Assign(s.sessions, s.Palette())
}

// DeleteSession removes every entry sharing the title, weekday and start slot
// of session, regardless of their other fields.
func (s *Store) DeleteSession(session *Session) {
	s.deleteMatching(session)
	s.notify(ChangeList)
}

func (s *Store) deleteMatching(session *Session) {
	s.conflictMemo.Invalidate()
	if session == nil {
		return
	}
	s.sessions = slices.DeleteFunc(s.sessions, session.SameOccupant)
}

// DeleteSessionByTitle removes every entry with the given title.
func (s *Store) DeleteSessionByTitle(title string) {
	s.conflictMemo.Invalidate()
	s.sessions = slices.DeleteFunc(s.sessions, func(item *Session) bool {
		return item.Title == title
	})
	s.notify(ChangeList)
}

// PromoteToTop drops every entry sharing session's occupant triple and puts
// session first, so it renders on top of its conflict stack.
func (s *Store) PromoteToTop(session *Session) {
	if session == nil {
		return
	}
	s.deleteMatching(session)
	adopt(session)
	s.sessions = slices.Insert(s.sessions, 0, session)
	s.notify(ChangeList)
}

// SetPaletteIndex selects a palette and restarts color assignment.
func (s *Store) SetPaletteIndex(index int) {
	if index < 0 {
		index = 0
	}
	if len(s.palettes) > 0 {
		index %= len(s.palettes)
	}
	s.paletteIndex = index
	s.colors.Assign(s.sessions, s.Palette())
	s.notify(ChangePalette)
}

// Palette returns the colors of the selected palette, nil if none is configured.
func (s *Store) Palette() []string {
	if s.paletteIndex < 0 || s.paletteIndex >= len(s.palettes) {
		return nil
	}
	return s.palettes[s.paletteIndex]
}

// PaletteIndex returns the selected palette index.
func (s *Store) PaletteIndex() int {
	return s.paletteIndex
}

// PaletteCount returns the number of selectable palettes.
func (s *Store) PaletteCount() int {
	return len(s.palettes)
}

// Sessions returns a copy of the session list.
func (s *Store) Sessions() []*Session {
	return slices.Clone(s.sessions)
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	return len(s.sessions)
}

// StartDate returns the semester start date.
func (s *Store) StartDate() time.Time {
	return s.startDate
}

// Started reports whether the clock was past the start date when it was set.
func (s *Store) Started() bool {
	return s.started
}

// WeekCount returns the semester length.
func (s *Store) WeekCount() int {
	return s.weekCount
}

// OriginalWeek returns the 0-based week index of "now".
func (s *Store) OriginalWeek() int {
	return s.originalWeek
}

// CurrentWeek returns the 0-based viewed week index.
func (s *Store) CurrentWeek() int {
	return s.currentWeek
}

// CurrentMonth returns the month (1..12) of the first day of the viewed week.
func (s *Store) CurrentMonth() int {
	return s.currentMonth
}

// TodayWeekday returns today's 0-based weekday index (Monday = 0).
func (s *Store) TodayWeekday() int {
	return dateutil.WeekdayIndex(s.now().Weekday())
}

// CurrentWeekDays returns the day of month of the seven days of the viewed
// week, counted from the start date.
func (s *Store) CurrentWeekDays() [DaysPerWeek]int {
	var days [DaysPerWeek]int
	first := s.startDate.AddDate(0, 0, s.currentWeek*7)
	for i := range days {
		days[i] = first.AddDate(0, 0, i).Day()
	}
	return days
}

// WeekSessions returns the sessions active in the viewed week.
func (s *Store) WeekSessions() []*Session {
	return WeekSessions(s.sessions, s.currentWeek)
}

// OccupancyGrid returns the per-week occupancy counts for the whole semester.
func (s *Store) OccupancyGrid() Grid {
	return OccupancyGrid(s.sessions, s.weekCount)
}

// ConflictsFor returns the conflict stack of session in the viewed week.
func (s *Store) ConflictsFor(session *Session) []*Session {
	return s.resolver.ConflictsFor(s.sessions, s.currentWeek, session)
}

// ColorFor returns the color of session under the selected palette.
func (s *Store) ColorFor(session *Session) string {
	return s.colors.ColorFor(session, s.Palette())
}

// ConflictMemo exposes the conflict memo for inspection.
func (s *Store) ConflictMemo() *ConflictMemo {
	return s.conflictMemo
}

// ColorMemo exposes the color memo for inspection.
func (s *Store) ColorMemo() *ColorMemo {
	return s.colorMemo
}

// adopt gives a session its store identity if it has none.
func adopt(session *Session) {
	if session.ref == uuid.Nil {
		session.ref = uuid.New()
	}
}
