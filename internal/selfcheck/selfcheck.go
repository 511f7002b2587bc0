// Package selfcheck validates the pure timer and statistics arithmetic
// before the program is allowed to run. The stats record is trusted
// long-lived state; wrong arithmetic corrupts it silently, so a failed
// check refuses startup instead of degrading.
package selfcheck

import (
	"fmt"
	"math"

	"github.com/astanczak/pomo/internal/audio"
	"github.com/astanczak/pomo/internal/domain"
)

type check struct {
	name string
	ok   func() bool
}

var checks = []check{
	{"minutes_to_seconds", func() bool {
		return domain.MinutesToSeconds(25) == 1500 &&
			domain.MinutesToSeconds(0) == 0 &&
			domain.MinutesToSeconds(-1) == 0
	}},
	{"format_timer", func() bool {
		return domain.FormatTimer(1500) == "25:00" &&
			domain.FormatTimer(59) == "00:59" &&
			domain.FormatTimer(-1) == "00:00"
	}},
	{"stats_apply", func() bool {
		rec := domain.StatsRecord{}.Apply(25, true, "2025-01-01")
		rec = rec.Apply(5, false, "2025-01-01")
		rec = rec.Apply(25, true, "2025-01-02")
		return rec.TotalSessions == 2 &&
			rec.TotalFocusMinutes == 50 &&
			rec.TotalBreakMinutes == 5 &&
			rec.DaysActive == 2
	}},
	{"plan_break", func() bool {
		return domain.PlanBreak(4, 4, 5, 15).Kind == domain.KindLongBreak &&
			domain.PlanBreak(1, 4, 5, 15).Kind == domain.KindShortBreak &&
			domain.PlanBreak(8, 4, 5, 15).Kind == domain.KindLongBreak
	}},
	{"normalize_peak", func() bool {
		out := audio.NormalizePeak([]float64{-2, 0, 2}, 0.5)
		return math.Abs(out[2]-0.5) < 1e-9 && math.Abs(out[0]+0.5) < 1e-9
	}},
	{"parse_pause_action", func() bool {
		return domain.ParsePauseAction(" S ") == domain.ActionSkip &&
			domain.ParsePauseAction("q") == domain.ActionQuit &&
			domain.ParsePauseAction("") == domain.ActionResume &&
			domain.ParsePauseAction("x") == domain.ActionResume
	}},
}

// Run executes every known-answer check and reports the first failure.
func Run() error {
	for _, c := range checks {
		if !c.ok() {
			return fmt.Errorf("logic validation failed: %s", c.name)
		}
	}
	return nil
}
