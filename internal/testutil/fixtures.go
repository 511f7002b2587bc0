package testutil

import (
	"time"

	"github.com/astanczak/pomo/internal/domain"
	"github.com/google/uuid"
)

// IntervalOption customizes a test interval log.
type IntervalOption func(*domain.IntervalLog)

// NewTestInterval builds a completed work interval with sane defaults.
func NewTestInterval(opts ...IntervalOption) *domain.IntervalLog {
	now := time.Now().UTC().Truncate(time.Second)
	l := &domain.IntervalLog{
		ID:        uuid.New().String(),
		Kind:      domain.KindWork,
		Label:     "Focus Session 1",
		Minutes:   25,
		Outcome:   domain.OutcomeCompleted,
		StartedAt: now.Add(-25 * time.Minute),
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithKind sets the interval kind and a matching label.
func WithKind(kind domain.SessionKind, label string) IntervalOption {
	return func(l *domain.IntervalLog) {
		l.Kind = kind
		l.Label = label
	}
}

// WithOutcome sets how the interval ended.
func WithOutcome(outcome domain.Outcome) IntervalOption {
	return func(l *domain.IntervalLog) {
		l.Outcome = outcome
	}
}

// WithMinutes sets the interval length.
func WithMinutes(minutes int) IntervalOption {
	return func(l *domain.IntervalLog) {
		l.Minutes = minutes
	}
}

// WithStartedAt pins the interval start time.
func WithStartedAt(ts time.Time) IntervalOption {
	return func(l *domain.IntervalLog) {
		l.StartedAt = ts
	}
}
