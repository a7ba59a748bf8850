package course

import (
	"context"
	"time"
)

// Semester holds the persisted calendar settings of a timetable.
type Semester struct {
	StartDate time.Time
	WeekCount int
	Palette   string
}

// Repository defines the storage interface for the timetable.
type Repository interface {
	// ListSessions returns every stored session in list order.
	ListSessions(ctx context.Context) ([]*Session, error)

	// ReplaceSessions atomically replaces the stored list and assigns IDs.
	ReplaceSessions(ctx context.Context, sessions []*Session) error

	// LoadSemester returns the stored semester settings.
	// ok is false if none have been saved yet.
	LoadSemester(ctx context.Context) (sem Semester, ok bool, err error)

	// SaveSemester stores the semester settings.
	SaveSemester(ctx context.Context, sem Semester) error

	// Close releases any resources held by the repository.
	Close() error
}
