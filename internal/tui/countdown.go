package tui

import (
	"fmt"
	"time"

	"github.com/astanczak/pomo/internal/audio"
	"github.com/astanczak/pomo/internal/domain"
	"github.com/astanczak/pomo/internal/notify"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type phase int

const (
	phaseRunning phase = iota
	phasePaused
	phaseFinished
	phaseSkipped
	phaseQuitting
)

// tickMsg carries the sequence it was scheduled under so a tick left in
// flight across a pause/resume cannot double the countdown rate.
type tickMsg struct {
	seq int
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// CountdownModel drives one timed interval. Pause is an explicit key event
// consumed by Update, not an asynchronous signal, so the whole state
// machine is testable by feeding synthetic messages.
type CountdownModel struct {
	label     string
	remaining int
	total     int
	phase     phase
	outcome   domain.Outcome
	tickSeq   int

	playSound bool
	clip      []float64
	player    audio.Looper
	notifier  notify.Notifier

	keys     keyMap
	help     help.Model
	progress progress.Model
}

// NewCountdown builds the controller for one interval. When playSound is set
// the clip loops from the first tick until the countdown leaves the running
// state.
func NewCountdown(minutes float64, label string, playSound bool, clip []float64, player audio.Looper, notifier notify.Notifier) CountdownModel {
	total := domain.MinutesToSeconds(minutes)
	return CountdownModel{
		label:     label,
		remaining: total,
		total:     total,
		playSound: playSound,
		clip:      clip,
		player:    player,
		notifier:  notifier,
		keys:      newKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Outcome reports how the interval ended. Meaningful once the program quits.
func (m CountdownModel) Outcome() domain.Outcome {
	return m.outcome
}

func (m CountdownModel) Init() tea.Cmd {
	if m.playSound {
		m.player.Loop(m.clip)
	}
	return tickCmd(m.tickSeq)
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 40 {
			w = 40
		}
		if w > 0 {
			m.progress.Width = w
		}
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.phase != phaseRunning || msg.seq != m.tickSeq {
			return m, nil
		}
		m.remaining--
		if m.remaining < 0 {
			return m.finish()
		}
		return m, tickCmd(m.tickSeq)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m CountdownModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {

	case phaseRunning:
		if key.Matches(msg, m.keys.Pause) {
			m.phase = phasePaused
			m.player.Stop()
			return m, nil
		}

	case phasePaused:
		// A second interrupt while the menu waits exits, like the menu's
		// explicit quit choice.
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch domain.ParsePauseAction(msg.String()) {
		case domain.ActionSkip:
			m.phase = phaseSkipped
			m.outcome = domain.OutcomeSkipped
			return m, tea.Quit
		case domain.ActionQuit:
			return m.quit()
		default:
			m.phase = phaseRunning
			if m.playSound {
				m.player.Loop(m.clip)
			}
			m.tickSeq++
			return m, tickCmd(m.tickSeq)
		}
	}
	return m, nil
}

func (m CountdownModel) finish() (tea.Model, tea.Cmd) {
	m.phase = phaseFinished
	m.outcome = domain.OutcomeCompleted
	m.player.Stop()
	m.notifier.Notify("Pomodoro", m.label+" finished!")
	return m, tea.Quit
}

func (m CountdownModel) quit() (tea.Model, tea.Cmd) {
	m.phase = phaseQuitting
	m.outcome = domain.OutcomeQuit
	m.player.Stop()
	return m, tea.Quit
}

func (m CountdownModel) View() string {
	switch m.phase {

	case phasePaused:
		menu := fmt.Sprintf("%s %s  %s %s  %s %s",
			menuKeyStyle.Render("[R]"), "esume",
			menuKeyStyle.Render("[S]"), "kip",
			menuKeyStyle.Render("[Q]"), "uit")
		return fmt.Sprintf("\n%s\n\n%s\n", pausedTitleStyle.Render("⏸  PAUSED"), menu)

	case phaseFinished:
		return fmt.Sprintf("\n%s\n", finishedStyle.Render("🔔 "+m.label+" finished!"))

	case phaseSkipped, phaseQuitting:
		return ""
	}

	frac := 1.0
	if m.total > 0 {
		frac = float64(m.total-m.remaining) / float64(m.total)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render("["+m.label+"]"),
		" ",
		timerStyle.Render(domain.FormatTimer(m.remaining)),
		"  ",
		m.progress.ViewAs(frac),
	)
	return fmt.Sprintf("\n%s\n%s\n", line, hintStyle.Render(m.help.View(m.keys)))
}
