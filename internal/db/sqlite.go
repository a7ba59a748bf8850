// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/timetable/internal/course"
)

// Settings keys.
const (
	keyStartDate = "start_date"
	keyWeekCount = "week_count"
	keyPalette   = "palette"
)

// SQLite implements course.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ course.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ListSessions returns every stored session in list order.
func (s *SQLite) ListSessions(ctx context.Context) ([]*course.Session, error) {
	query := `
		SELECT id, title, location, start_slot, duration, weekday, weeks
		FROM sessions
		ORDER BY position, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sessions := make([]*course.Session, 0)
	for rows.Next() {
		var (
			cs    course.Session
			weeks string
		)
		err := rows.Scan(
			&cs.ID,
			&cs.Title,
			&cs.Location,
			&cs.StartSlot,
			&cs.Duration,
			&cs.Weekday,
			&weeks,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}

		cs.Weeks, err = decodeWeeks(weeks)
		if err != nil {
			return nil, fmt.Errorf("parsing weeks of session %d: %w", cs.ID, err)
		}

		sessions = append(sessions, &cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// ReplaceSessions replaces the stored list in a single transaction and
// assigns fresh IDs in list order.
func (s *SQLite) ReplaceSessions(ctx context.Context, sessions []*course.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}

	query := `
		INSERT INTO sessions (
			title, location, start_slot, duration, weekday, weeks, position, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().Format(time.RFC3339)
	ids := make([]int64, len(sessions))
	for i, cs := range sessions {
		result, err := stmt.ExecContext(ctx,
			cs.Title,
			cs.Location,
			cs.StartSlot,
			cs.Duration,
			cs.Weekday,
			encodeWeeks(cs.Weeks),
			i,
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting session %q: %w", cs.Title, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		ids[i] = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	// Only expose IDs once they exist.
	for i, cs := range sessions {
		cs.ID = ids[i]
	}

	return nil
}

// LoadSemester returns the stored semester settings.
func (s *SQLite) LoadSemester(ctx context.Context) (course.Semester, bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return course.Semester{}, false, fmt.Errorf("querying settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return course.Semester{}, false, fmt.Errorf("scanning setting: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return course.Semester{}, false, fmt.Errorf("iterating settings: %w", err)
	}

	raw, ok := values[keyStartDate]
	if !ok {
		return course.Semester{}, false, nil
	}

	sem := course.Semester{Palette: values[keyPalette]}
	sem.StartDate, err = parseDate(raw)
	if err != nil {
		return course.Semester{}, false, fmt.Errorf("parsing start date: %w", err)
	}
	if v, ok := values[keyWeekCount]; ok {
		sem.WeekCount, err = strconv.Atoi(v)
		if err != nil {
			return course.Semester{}, false, fmt.Errorf("parsing week count: %w", err)
		}
	}

	return sem, true, nil
}

// SaveSemester upserts the semester settings.
func (s *SQLite) SaveSemester(ctx context.Context, sem course.Semester) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	values := [][2]string{
		{keyStartDate, sem.StartDate.Format("2006-01-02")},
		{keyWeekCount, strconv.Itoa(sem.WeekCount)},
		{keyPalette, sem.Palette},
	}
	for _, kv := range values {
		if _, err := tx.ExecContext(ctx, query, kv[0], kv[1]); err != nil {
			return fmt.Errorf("saving setting %s: %w", kv[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// encodeWeeks stores weeks as a comma-separated list.
func encodeWeeks(weeks []int) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ",")
}

func decodeWeeks(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	weeks := make([]int, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

// parseDate parses a stored date as local midnight, so week arithmetic
// against time.Now() lines up with the calendar day the user entered.
func parseDate(s string) (time.Time, error) {
	if len(s) > 10 && s[10] == 'T' {
		s = s[:10]
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
