// Package app drives the work→break session loop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/astanczak/pomo/internal/audio"
	"github.com/astanczak/pomo/internal/config"
	"github.com/astanczak/pomo/internal/domain"
	"github.com/astanczak/pomo/internal/notify"
	"github.com/astanczak/pomo/internal/repository"
	"github.com/astanczak/pomo/internal/stats"
	"github.com/astanczak/pomo/internal/tui"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
)

// ledgerTimeout bounds the best-effort history write after each interval.
const ledgerTimeout = time.Second

// App wires the session loop's collaborators. The indirections exist so the
// loop can run against scripted intervals and prompts in tests.
type App struct {
	Config   config.Config
	Stats    *stats.Store
	History  repository.IntervalRepo // nil disables the ledger
	Notifier notify.Notifier
	Player   audio.Looper
	Out      io.Writer

	// RunInterval executes one countdown and reports how it ended.
	RunInterval func(minutes float64, label string, playSound bool) (domain.Outcome, error)
	// Confirm blocks until the user agrees to start the next interval;
	// false means the user backed out of the run.
	Confirm func(title string) bool
	// Now supplies the process-local clock.
	Now func() time.Time
}

// New assembles an App with the real terminal countdown and prompts.
func New(cfg config.Config, store *stats.Store, history repository.IntervalRepo, notifier notify.Notifier, player audio.Looper) *App {
	a := &App{
		Config:   cfg,
		Stats:    store,
		History:  history,
		Notifier: notifier,
		Player:   player,
		Out:      os.Stdout,
		Confirm:  confirmPrompt,
		Now:      time.Now,
	}
	a.RunInterval = func(minutes float64, label string, playSound bool) (domain.Outcome, error) {
		var clip []float64
		if playSound {
			// A fresh clip per focus session; the loop reader replays it.
			clip = audio.GenerateBrownNoise(cfg.LoopSeconds, cfg.SampleRate, cfg.Volume)
		}
		return tui.RunCountdown(tui.NewCountdown(minutes, label, playSound, clip, player, notifier))
	}
	return a
}

// Run cycles work and break intervals until the user quits. User-directed
// termination is a normal exit: the farewell prints and Run returns nil.
func (a *App) Run() error {
	fmt.Fprintln(a.Out, "Starting 🍅")
	count := 0
	for {
		count++
		fmt.Fprintln(a.Out, tui.RenderReport(a.Stats.Record(), count-1))

		label := fmt.Sprintf("Focus Session %d", count)
		startedAt := a.Now()
		outcome, err := a.RunInterval(float64(a.Config.WorkMinutes), label, a.Config.Sound)
		if err != nil {
			return err
		}
		a.record(domain.KindWork, label, a.Config.WorkMinutes, outcome, startedAt)
		if outcome == domain.OutcomeQuit {
			return a.farewell()
		}
		if outcome == domain.OutcomeCompleted {
			a.updateStats(a.Config.WorkMinutes, true)
		}

		plan := domain.PlanBreak(count, a.Config.LongBreakEvery,
			a.Config.ShortBreakMinutes, a.Config.LongBreakMinutes)
		if !a.Confirm(fmt.Sprintf("Next: %s. Start?", plan.Label)) {
			return a.farewell()
		}

		startedAt = a.Now()
		outcome, err = a.RunInterval(float64(plan.Minutes), plan.Label, false)
		if err != nil {
			return err
		}
		a.record(plan.Kind, plan.Label, plan.Minutes, outcome, startedAt)
		if outcome == domain.OutcomeQuit {
			return a.farewell()
		}
		if outcome == domain.OutcomeCompleted {
			a.updateStats(plan.Minutes, false)
		}

		if !a.Confirm("Break over! Start the next focus session?") {
			return a.farewell()
		}
	}
}

// updateStats persists one completed interval. A failing stats file degrades
// to an in-memory-only record rather than aborting the loop.
func (a *App) updateStats(minutes int, isWork bool) {
	_ = a.Stats.Update(minutes, isWork, a.Now())
}

// record appends the interval to the history ledger. Quit never reaches the
// ledger: the interval neither completed nor was skipped. Ledger failures
// are swallowed.
func (a *App) record(kind domain.SessionKind, label string, minutes int, outcome domain.Outcome, startedAt time.Time) {
	if a.History == nil || outcome == domain.OutcomeQuit {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
	defer cancel()
	_ = a.History.Append(ctx, &domain.IntervalLog{
		ID:        uuid.New().String(),
		Kind:      kind,
		Label:     label,
		Minutes:   minutes,
		Outcome:   outcome,
		StartedAt: startedAt,
		CreatedAt: a.Now(),
	})
}

func (a *App) farewell() error {
	fmt.Fprintln(a.Out, "Goodbye! 🍅")
	return nil
}

// confirmPrompt blocks on a huh confirm form. Aborting the prompt (ctrl+c,
// esc) reads as backing out of the run.
func confirmPrompt(title string) bool {
	start := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Start").
			Negative("Quit").
			Value(&start),
	)).WithShowHelp(false)

	// huh.ErrUserAborted and real terminal errors both end the run.
	if err := form.Run(); err != nil {
		return false
	}
	return start
}
