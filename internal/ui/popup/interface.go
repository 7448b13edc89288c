package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the panels. While one is open it
// receives every key.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the popup body without border or centering.
	View() string
	SetSize(width, height int)
}

// Framed is implemented by popups that decorate their own border.
type Framed interface {
	Frame() Frame
}
