package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/timetable/internal/course"
	"github.com/javiermolinar/timetable/internal/dateutil"
	"github.com/javiermolinar/timetable/internal/palette"
)

// loadStore builds a Store from the persisted semester and sessions, falling
// back to config defaults for anything not stored yet.
func (a *App) loadStore(ctx context.Context) (*course.Store, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	palettes, err := palette.All()
	if err != nil {
		return nil, fmt.Errorf("loading palettes: %w", err)
	}

	store := course.NewStore(
		course.WithClock(a.now),
		course.WithPalettes(palettes),
		course.WithWeekCount(a.config.Semester.WeekCount),
	)

	sem, ok, err := a.repo.LoadSemester(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading semester: %w", err)
	}

	paletteName := a.config.Semester.Palette
	start, hasStart := a.config.StartDate(time.Local)
	if ok {
		start, hasStart = sem.StartDate, true
		if sem.WeekCount > 0 {
			store.SetWeekCount(sem.WeekCount)
		}
		if sem.Palette != "" {
			paletteName = sem.Palette
		}
	}
	if !hasStart {
		start = dateutil.TruncateToDay(a.now())
	}
	store.SetStartDate(start)
	store.SetPaletteIndex(max(palette.Index(paletteName), 0))

	sessions, err := a.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	store.SetSessionList(sessions)

	a.log.WithFields(logrus.Fields{
		"sessions": store.Len(),
		"week":     store.CurrentWeek() + 1,
		"palette":  palette.Name(store.PaletteIndex()),
	}).Debug("store loaded")

	return store, nil
}

// openStore loads the store and persists every later mutation.
func (a *App) openStore(ctx context.Context) (*course.Store, *course.Persister, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return store, course.Persist(ctx, a.repo, store, palette.Name), nil
}

// selectWeek moves the store to the 1-based week, or leaves it on the
// current week when week is 0.
func selectWeek(store *course.Store, week int) error {
	if week == 0 {
		return nil
	}
	if week < 1 || week > store.WeekCount() {
		return fmt.Errorf("week must be between 1 and %d, got %d", store.WeekCount(), week)
	}
	store.SetCurrentWeek(week - 1)
	return nil
}
