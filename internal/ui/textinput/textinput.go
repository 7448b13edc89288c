// Package textinput provides a one-line text prompt popup.
package textinput

import (
	"github.com/charmbracelet/bubbles/cursor"
	bubbleinput "github.com/charmbracelet/bubbles/textinput"
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
	keys              = keymap.ForContext(keymap.ContextPrompt)
)

// Model is a text prompt popup. Enter submits the text, Escape cancels;
// every other key edits the line.
type Model struct {
	ui.Base
	title   string
	hint    string
	input   bubbleinput.Model
	context any // passed through to Result action
}

// New creates a prompt showing title in its border and hint above the
// input line. initialText is preselected for editing.
func New(title, hint, initialText string, context any) *Model {
	in := bubbleinput.New()
	in.Prompt = "> "
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(initialText)
	in.Focus()
	return &Model{title: title, hint: hint, input: in, context: context}
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
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
	if !keyMsg.Paste {
		switch keys.Resolve(keyMsg.String()) {
		case keymap.ActionSubmit:
			return m, action.Cmd(Source, Result{Text: m.input.Value(), Context: m.context})
		case keymap.ActionCancel:
			return m, action.Cmd(Source, Result{Canceled: true, Context: m.context})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

// Frame returns the border decoration for the popup.
func (m *Model) Frame() popup.Frame {
	return popup.Frame{
		Title: m.title,
		Footer: keymap.Footer(
			keys.Hint(keymap.ActionSubmit, "confirm"),
			keys.Hint(keymap.ActionCancel, "cancel"),
		),
		Accent: styles.T().Primary,
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	view := m.input.View()
	if m.hint != "" {
		hint := styles.T().S().Subtle.Render(render.Truncate(render.Sanitize(m.hint), m.Width()))
		view = hint + "\n\n" + view
	}
	return view
}
