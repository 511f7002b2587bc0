package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/astanczak/pomo/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// IntervalRepo records finished countdown intervals. The ledger is purely
// additive history; the cumulative StatsRecord is never derived from it.
type IntervalRepo interface {
	Append(ctx context.Context, l *domain.IntervalLog) error
	GetByID(ctx context.Context, id string) (*domain.IntervalLog, error)
	ListRecent(ctx context.Context, days int) ([]*domain.IntervalLog, error)
	CountByOutcome(ctx context.Context, kind domain.SessionKind, outcome domain.Outcome) (int, error)
}

// SQLiteIntervalRepo implements IntervalRepo using a SQLite database.
type SQLiteIntervalRepo struct {
	db *sql.DB
}

// NewSQLiteIntervalRepo creates a new SQLiteIntervalRepo.
func NewSQLiteIntervalRepo(db *sql.DB) *SQLiteIntervalRepo {
	return &SQLiteIntervalRepo{db: db}
}

func (r *SQLiteIntervalRepo) Append(ctx context.Context, l *domain.IntervalLog) error {
	query := `INSERT INTO interval_logs (id, kind, label, minutes, outcome, started_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		string(l.Kind),
		l.Label,
		l.Minutes,
		string(l.Outcome),
		l.StartedAt.Format(time.RFC3339),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting interval log: %w", err)
	}
	return nil
}

func (r *SQLiteIntervalRepo) GetByID(ctx context.Context, id string) (*domain.IntervalLog, error) {
	query := `SELECT id, kind, label, minutes, outcome, started_at, created_at
		FROM interval_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	l, err := scanInterval(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("interval log: %w", ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (r *SQLiteIntervalRepo) ListRecent(ctx context.Context, days int) ([]*domain.IntervalLog, error) {
	query := `SELECT id, kind, label, minutes, outcome, started_at, created_at
		FROM interval_logs
		WHERE started_at >= datetime('now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent intervals: %w", err)
	}
	defer rows.Close()

	var logs []*domain.IntervalLog
	for rows.Next() {
		l, err := scanInterval(rows.Scan)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interval logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteIntervalRepo) CountByOutcome(ctx context.Context, kind domain.SessionKind, outcome domain.Outcome) (int, error) {
	query := `SELECT COUNT(*) FROM interval_logs WHERE kind = ? AND outcome = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, query, string(kind), string(outcome)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting intervals: %w", err)
	}
	return n, nil
}

func scanInterval(scan func(...any) error) (*domain.IntervalLog, error) {
	var l domain.IntervalLog
	var kind, outcome, startedAt, createdAt string

	if err := scan(&l.ID, &kind, &l.Label, &l.Minutes, &outcome, &startedAt, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning interval log: %w", err)
	}

	l.Kind = domain.SessionKind(kind)
	l.Outcome = domain.Outcome(outcome)

	var err error
	if l.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &l, nil
}
