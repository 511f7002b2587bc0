package tui

import (
	"fmt"

	"github.com/astanczak/pomo/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// RunCountdown executes one countdown in the terminal and reports how it
// ended. An externally terminated program counts as a quit.
func RunCountdown(m CountdownModel) (domain.Outcome, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return domain.OutcomeQuit, fmt.Errorf("running countdown: %w", err)
	}
	cm, ok := final.(CountdownModel)
	if !ok || cm.outcome == "" {
		return domain.OutcomeQuit, nil
	}
	return cm.outcome, nil
}
