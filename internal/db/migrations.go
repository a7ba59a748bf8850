package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			location    TEXT NOT NULL DEFAULT '',
			start_slot  INTEGER NOT NULL CHECK(start_slot >= 1),
			duration    INTEGER NOT NULL CHECK(duration >= 1),
			weekday     INTEGER NOT NULL CHECK(weekday BETWEEN 1 AND 7),
			weeks       TEXT NOT NULL,
			position    INTEGER NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_position ON sessions(position);

		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
