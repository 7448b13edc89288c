// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/popup"
	"github.com/llehouerou/hnl/internal/ui/render"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

var (
	_    popup.Popup  = (*Model)(nil)
	_    popup.Framed = (*Model)(nil)
	keys              = keymap.ForContext(keymap.ContextConfirm)
)

// Model is a yes/no confirmation popup. Context is handed back untouched
// in the Result so the caller knows what was confirmed.
type Model struct {
	ui.Base
	title   string
	message string
	context any
}

// New creates a confirmation popup.
func New(title, message string, context any) *Model {
	return &Model{title: title, message: message, context: context}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keys.Resolve(keyMsg.String()) {
	case keymap.ActionConfirm:
		return m, action.Cmd(Source, Result{Confirmed: true, Context: m.context})
	case keymap.ActionCancel:
		return m, action.Cmd(Source, Result{Confirmed: false, Context: m.context})
	}
	return m, nil
}

// Frame returns the border decoration for the popup.
func (m *Model) Frame() popup.Frame {
	return popup.Frame{
		Title: m.title,
		Footer: keymap.Footer(
			keys.Hint(keymap.ActionConfirm, "confirm"),
			keys.Hint(keymap.ActionCancel, "cancel"),
		),
		Accent: styles.T().Warning,
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	lines := strings.Split(render.Sanitize(m.message), "\n")
	for i, line := range lines {
		lines[i] = render.Truncate(line, m.Width())
	}
	return styles.T().S().Base.Render(strings.Join(lines, "\n"))
}
