package domain

import "time"

type SessionKind string

const (
	KindWork       SessionKind = "work"
	KindShortBreak SessionKind = "short_break"
	KindLongBreak  SessionKind = "long_break"
)

type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeQuit      Outcome = "quit"
)

// BreakPlan is the duration and label of the break following a work session.
// It is derived, never persisted.
type BreakPlan struct {
	Minutes int
	Label   string
	Kind    SessionKind
}

// PlanBreak selects the break after the given work session count. Every
// freq-th session, counting from 1, earns a long break; count 0 never does.
func PlanBreak(count, freq, shortMinutes, longMinutes int) BreakPlan {
	if count > 0 && freq > 0 && count%freq == 0 {
		return BreakPlan{Minutes: longMinutes, Label: "Long Break", Kind: KindLongBreak}
	}
	return BreakPlan{Minutes: shortMinutes, Label: "Short Break", Kind: KindShortBreak}
}

// IntervalLog is one finished countdown interval in the history ledger.
type IntervalLog struct {
	ID        string
	Kind      SessionKind
	Label     string
	Minutes   int
	Outcome   Outcome
	StartedAt time.Time
	CreatedAt time.Time
}
