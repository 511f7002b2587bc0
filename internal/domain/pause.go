package domain

import "strings"

// PauseAction is the user's choice at the pause menu.
type PauseAction string

const (
	ActionResume PauseAction = "resume"
	ActionSkip   PauseAction = "skip"
	ActionQuit   PauseAction = "quit"
)

// ParsePauseAction maps raw pause-menu input to an action. Input is trimmed
// and case-folded; anything unrecognized, including empty input, resumes.
func ParsePauseAction(s string) PauseAction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s":
		return ActionSkip
	case "q":
		return ActionQuit
	default:
		return ActionResume
	}
}
