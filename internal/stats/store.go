// Package stats persists the cumulative usage record to a JSON file.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/astanczak/pomo/internal/domain"
)

// Store owns the persisted StatsRecord for one process. The record is read
// once at construction and rewritten after every finished interval; nothing
// else is expected to touch the file while pomo runs.
type Store struct {
	path string
	rec  domain.StatsRecord
}

// NewStore loads the record at path. An absent or unparsable file starts a
// fresh record rather than failing: the stats are advisory, the timer is not.
func NewStore(path string) *Store {
	return &Store{path: path, rec: load(path)}
}

// Record returns the current in-memory record.
func (s *Store) Record() domain.StatsRecord {
	return s.rec
}

func load(path string) domain.StatsRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.StatsRecord{}
	}
	var rec domain.StatsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.StatsRecord{}
	}
	return rec
}

// Save rewrites the whole stats file. The write is not journaled; a crash
// mid-write can lose the file, and the next load starts fresh.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating stats directory: %w", err)
	}
	data, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling stats: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Update applies one finished interval under the process-local calendar date
// and persists the result.
func (s *Store) Update(minutes int, isWork bool, now time.Time) error {
	s.rec = s.rec.Apply(minutes, isWork, now.Format("2006-01-02"))
	return s.Save()
}
