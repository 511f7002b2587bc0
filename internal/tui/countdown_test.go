package tui

import (
	"testing"

	"github.com/astanczak/pomo/internal/domain"
	"github.com/astanczak/pomo/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyPlayer struct {
	loops int
	stops int
}

func (p *spyPlayer) Loop([]float64) { p.loops++ }
func (p *spyPlayer) Stop()          { p.stops++ }

type spyNotifier struct {
	titles   []string
	messages []string
}

func (n *spyNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

func model(d *teatest.Driver) CountdownModel {
	return d.Model.(CountdownModel)
}

// tickOnce injects the tick the scheduled tea.Tick command would deliver.
func tickOnce(d *teatest.Driver) {
	d.Send(tickMsg{seq: model(d).tickSeq})
}

func newTestCountdown(t *testing.T, minutes float64, playSound bool) (*teatest.Driver, *spyPlayer, *spyNotifier) {
	t.Helper()
	player := &spyPlayer{}
	notifier := &spyNotifier{}
	m := NewCountdown(minutes, "Focus Session 1", playSound, []float64{0.1, -0.1}, player, notifier)
	return teatest.New(t, m), player, notifier
}

func TestCountdown_TicksDecrement(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)

	assert.Equal(t, 1500, model(d).remaining)
	tickOnce(d)
	tickOnce(d)
	assert.Equal(t, 1498, model(d).remaining)
	assert.Contains(t, d.View(), "24:58")
	assert.Contains(t, d.View(), "Focus Session 1")
}

func TestCountdown_SoundStartsWithCountdown(t *testing.T) {
	_, player, _ := newTestCountdown(t, 25, true)
	assert.Equal(t, 1, player.loops)
}

func TestCountdown_NoSoundForBreaks(t *testing.T) {
	d, player, _ := newTestCountdown(t, 5, false)
	tickOnce(d)
	assert.Zero(t, player.loops)
}

func TestCountdown_CompletesBelowZero(t *testing.T) {
	// One-second interval: the first tick shows 00:00, the second completes.
	d, player, notifier := newTestCountdown(t, 1.0/60, true)

	tickOnce(d)
	assert.False(t, d.Quitting)
	assert.Equal(t, 0, model(d).remaining)

	tickOnce(d)
	require.True(t, d.Quitting)
	assert.Equal(t, domain.OutcomeCompleted, model(d).Outcome())
	assert.Equal(t, 1, player.stops, "audio stops on completion")
	require.Len(t, notifier.titles, 1)
	assert.Equal(t, "Pomodoro", notifier.titles[0])
	assert.Contains(t, notifier.messages[0], "finished")
}

func TestCountdown_PauseStopsAudioAndHoldsTime(t *testing.T) {
	d, player, _ := newTestCountdown(t, 25, true)

	tickOnce(d)
	d.PressKey('p')
	assert.Equal(t, 1, player.stops)
	assert.Contains(t, d.View(), "PAUSED")

	// Ticks in flight across the pause must not advance the countdown.
	remaining := model(d).remaining
	tickOnce(d)
	assert.Equal(t, remaining, model(d).remaining)
}

func TestCountdown_CtrlCPauses(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)
	d.PressCtrlC()
	assert.Contains(t, d.View(), "PAUSED")
	assert.False(t, d.Quitting)
}

func TestCountdown_ResumeRestartsAudioAtSameRemaining(t *testing.T) {
	d, player, _ := newTestCountdown(t, 25, true)

	tickOnce(d)
	d.PressKey('p')
	remaining := model(d).remaining

	d.PressKey('r')
	assert.Equal(t, remaining, model(d).remaining, "no time lost across pause")
	assert.Equal(t, 2, player.loops, "audio loop restarts on resume")

	tickOnce(d)
	assert.Equal(t, remaining-1, model(d).remaining)
}

func TestCountdown_UnrecognizedPauseInputResumes(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)

	d.PressKey('p')
	d.PressKey('x')
	assert.NotContains(t, d.View(), "PAUSED")
	assert.False(t, d.Quitting)
}

func TestCountdown_EnterResumes(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)

	d.PressKey('p')
	d.PressEnter()
	assert.NotContains(t, d.View(), "PAUSED")
}

func TestCountdown_StaleTickIgnoredAfterResume(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)

	d.PressKey('p')
	d.PressKey('r')
	remaining := model(d).remaining

	// The tick scheduled before the pause arrives late; only the resumed
	// sequence may advance the clock.
	d.Send(tickMsg{seq: 0})
	assert.Equal(t, remaining, model(d).remaining)

	tickOnce(d)
	assert.Equal(t, remaining-1, model(d).remaining)
}

func TestCountdown_SkipReturnsWithoutCompleting(t *testing.T) {
	d, _, notifier := newTestCountdown(t, 25, false)

	d.PressKey('p')
	d.PressKey('s')
	require.True(t, d.Quitting)
	assert.Equal(t, domain.OutcomeSkipped, model(d).Outcome())
	assert.Empty(t, notifier.titles, "skipped intervals do not notify")
}

func TestCountdown_QuitFromPauseMenu(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)

	d.PressKey('p')
	d.PressKey('q')
	require.True(t, d.Quitting)
	assert.Equal(t, domain.OutcomeQuit, model(d).Outcome())
}

func TestCountdown_SecondCtrlCWhilePausedQuits(t *testing.T) {
	d, _, _ := newTestCountdown(t, 25, false)

	d.PressCtrlC()
	d.PressCtrlC()
	require.True(t, d.Quitting)
	assert.Equal(t, domain.OutcomeQuit, model(d).Outcome())
}

func TestCountdown_ZeroMinutesCompletesOnFirstTick(t *testing.T) {
	d, _, _ := newTestCountdown(t, 0, false)

	tickOnce(d)
	require.True(t, d.Quitting)
	assert.Equal(t, domain.OutcomeCompleted, model(d).Outcome())
}
