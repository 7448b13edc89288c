package errorbox

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

// Source is the action.Msg source name of the dialog.
const Source = "errorbox"

// Dismissed reports that the user closed the dialog.
type Dismissed struct{}

// ActionType implements action.Action.
func (Dismissed) ActionType() string { return "errorbox.dismissed" }

var (
	_    popup.Popup = (*Model)(nil)
	keys             = keymap.ForContext(keymap.ContextError)
)

// Model is the "Internal Error" dialog.
type Model struct {
	ui.Base
	err         error
	showDetails bool
	offset      int
}

// New creates a dialog for err.
func New(err error) *Model {
	return &Model{err: err}
}

// Err returns the error being shown.
func (m *Model) Err() error {
	return m.err
}

// ShowingDetails reports whether the details view is open.
func (m *Model) ShowingDetails() bool {
	return m.showDetails
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keys.Resolve(key.String()) {
	case keymap.ActionDismiss:
		return m, action.Cmd(Source, Dismissed{})
	case keymap.ActionToggleDetails:
		m.showDetails = !m.showDetails
		m.offset = 0
	}
	switch key.String() {
	case "j", "down":
		m.scroll(1)
	case "k", "up":
		m.scroll(-1)
	}
	return m, nil
}

func (m *Model) scroll(delta int) {
	if !m.showDetails {
		return
	}
	lines := strings.Count(Details(m.err), "\n") + 1
	m.offset = min(max(m.offset+delta, 0), max(lines-m.bodyRows(), 0))
}

func (m *Model) bodyRows() int {
	return max(m.Height()-2, 1)
}

// Frame returns the border decoration for the dialog.
func (m *Model) Frame() popup.Frame {
	f := popup.Frame{
		Title: "Internal Error",
		Footer: keymap.Footer(
			keys.Hint(keymap.ActionToggleDetails, "details"),
			keys.Hint(keymap.ActionDismiss, "ok"),
		),
		Accent: styles.T().Error,
	}
	if m.showDetails {
		f.Title = "Error Details"
		f.Footer = "d hide details  j/k scroll  enter ok"
	}
	if m.Width() > 0 {
		f.Width = m.Width() + 4
	}
	return f
}

// View implements popup.Popup.
func (m *Model) View() string {
	width := max(m.Width(), 20)
	msg := "<nil>"
	if m.err != nil {
		msg = m.err.Error()
	}
	if !m.showDetails {
		return "An unexpected error occurred.\n\n" + wrap(render.Sanitize(msg), width)
	}

	lines := strings.Split(Details(m.err), "\n")
	end := min(m.offset+m.bodyRows(), len(lines))
	out := make([]string, 0, end-m.offset)
	for _, l := range lines[m.offset:end] {
		out = append(out, render.Truncate(strings.ReplaceAll(l, "\t", "    "), width))
	}
	return strings.Join(out, "\n")
}

// wrap breaks s into lines of at most width cells on word boundaries.
func wrap(s string, width int) string {
	var lines []string
	for para := range strings.SplitSeq(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, render.Truncate(line, width))
	}
	return strings.Join(lines, "\n")
}
