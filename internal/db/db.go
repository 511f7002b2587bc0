// Package db opens the SQLite interval ledger.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens the ledger database at path, creating the parent directory and
// schema when absent. ":memory:" yields an in-memory database for tests.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps the write after each interval from blocking on readers.
	if _, err := d.Exec("PRAGMA journal_mode = WAL"); err != nil {
		d.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(d); err != nil {
		d.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

func migrate(d *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS interval_logs (
			id         TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			label      TEXT NOT NULL,
			minutes    INTEGER NOT NULL,
			outcome    TEXT NOT NULL,
			started_at TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_interval_logs_started_at
			ON interval_logs(started_at);`
	if _, err := d.Exec(schema); err != nil {
		return fmt.Errorf("creating interval_logs: %w", err)
	}
	return nil
}
