package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tallytrack/tally/internal/constants"
	"github.com/tallytrack/tally/internal/models"
)

// SQLiteStore persists the snapshot in a SQLite database. Saves are still
// whole-snapshot: each Save rewrites both tables inside one transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	type        TEXT NOT NULL,
	category    TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	goal        REAL,
	created_at  TEXT NOT NULL,
	is_active   INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS entries (
	id           TEXT PRIMARY KEY,
	habit_id     TEXT NOT NULL,
	date         TEXT NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0,
	value        REAL,
	notes        TEXT NOT NULL DEFAULT '',
	completed_at TEXT,
	UNIQUE (habit_id, date)
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries (date);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed meta if this is a fresh database
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM meta`).Scan(&count); err != nil {
		return fmt.Errorf("failed to read meta: %w", err)
	}
	if count == 0 {
		return s.Save(NewSnapshot())
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tally init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Load() (*Snapshot, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	snap := NewSnapshot()

	rows, err := s.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close()
			return nil, err
		}
		switch key {
		case "version":
			v, err := strconv.Atoi(value)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("invalid snapshot version %q: %w", value, err)
			}
			snap.Version = v
		case "selected_date":
			snap.SelectedDate = value
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	habits, err := s.loadHabits()
	if err != nil {
		return nil, err
	}
	snap.Habits = habits

	entries, err := s.loadEntries()
	if err != nil {
		return nil, err
	}
	snap.Entries = entries

	return snap, nil
}

func (s *SQLiteStore) loadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, type, category, difficulty, goal, created_at, is_active
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var goal sql.NullFloat64
		var createdAt string
		var isActive int

		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Type, &h.Category,
			&h.Difficulty, &goal, &createdAt, &isActive); err != nil {
			return nil, err
		}

		if goal.Valid {
			g := goal.Float64
			h.Goal = &g
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		h.IsActive = isActive != 0

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) loadEntries() ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, date, completed, value, notes, completed_at
		FROM entries ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var e models.Entry
		var completed int
		var value sql.NullFloat64
		var completedAt sql.NullString

		if err := rows.Scan(&e.ID, &e.HabitID, &e.Date, &completed, &value, &e.Notes, &completedAt); err != nil {
			return nil, err
		}

		e.Completed = completed != 0
		if value.Valid {
			v := value.Float64
			e.Value = &v
		}
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse completed_at: %w", err)
			}
			e.CompletedAt = &t
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) Save(snap *Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for _, h := range snap.Habits {
		var goal interface{}
		if h.Goal != nil {
			goal = *h.Goal
		}
		isActive := 0
		if h.IsActive {
			isActive = 1
		}
		if _, err := tx.Exec(`
			INSERT INTO habits (id, name, description, type, category, difficulty, goal, created_at, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, string(h.Type), string(h.Category), string(h.Difficulty),
			goal, h.CreatedAt.UTC().Format(time.RFC3339), isActive); err != nil {
			return fmt.Errorf("failed to insert habit %s: %w", h.ID, err)
		}
	}

	for _, e := range snap.Entries {
		var value interface{}
		if e.Value != nil {
			value = *e.Value
		}
		var completedAt interface{}
		if e.CompletedAt != nil {
			completedAt = e.CompletedAt.UTC().Format(time.RFC3339)
		}
		completed := 0
		if e.Completed {
			completed = 1
		}
		if _, err := tx.Exec(`
			INSERT INTO entries (id, habit_id, date, completed, value, notes, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.HabitID, e.Date, completed, value, e.Notes, completedAt); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.ID, err)
		}
	}

	version := snap.Version
	if version == 0 {
		version = constants.SnapshotVersion
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)`,
		strconv.Itoa(version)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('selected_date', ?)`,
		snap.SelectedDate); err != nil {
		return fmt.Errorf("failed to write selected date: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
