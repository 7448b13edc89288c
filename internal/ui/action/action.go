// Package action defines how UI components report what the user did.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component wants the application to act on.
// ActionType returns an identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
type Msg struct {
	Source string // "playlist", "navigator", "columns", "errorbox"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
