// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package settings persists user preferences in a small SQLite database:
// the selected model and the model that produced the last successful run.
package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Preference keys.
const (
	KeySelectedModel = "selected_model"
	KeyLastUsedModel = "last_used_model"
	KeyLastRunAt     = "last_run_at"
)

// DefaultPath is the database file used when the configuration does not
// name one.
const DefaultPath = "nanglucso.db"

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store manages the preferences SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the preferences database at path, creating the
// schema and any parent directories as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating settings directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening settings database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating settings schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or "" when unset.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing preference %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting preference %s: %w", key, err)
	}
	return nil
}

// SelectedModel returns the persisted model preference, "" when unset.
func (s *Store) SelectedModel() (string, error) {
	return s.Get(KeySelectedModel)
}

// SetSelectedModel persists the model preference.
func (s *Store) SetSelectedModel(id string) error {
	return s.Set(KeySelectedModel, id)
}

// RecordRun stores provenance of a successful run: the model that produced
// it and when.
func (s *Store) RecordRun(usedModel string, at time.Time) error {
	if err := s.Set(KeyLastUsedModel, usedModel); err != nil {
		return err
	}
	return s.Set(KeyLastRunAt, at.UTC().Format(time.RFC3339))
}

// LastRun returns the model and time of the last successful run. The time
// is zero when no run has been recorded.
func (s *Store) LastRun() (model string, at time.Time, err error) {
	model, err = s.Get(KeyLastUsedModel)
	if err != nil {
		return "", time.Time{}, err
	}
	raw, err := s.Get(KeyLastRunAt)
	if err != nil || raw == "" {
		return model, time.Time{}, err
	}
	at, err = time.Parse(time.RFC3339, raw)
	if err != nil {
		return model, time.Time{}, fmt.Errorf("parsing last run time: %w", err)
	}
	return model, at, nil
}
