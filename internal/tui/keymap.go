package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings active while the countdown is running. The pause
// menu itself is handled through domain.ParsePauseAction so the mapping
// stays a pure, testable function.
type keyMap struct {
	Pause key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "ctrl+c"),
			key.WithHelp("p/ctrl+c", "pause"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause}}
}
