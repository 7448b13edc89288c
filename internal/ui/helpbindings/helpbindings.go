// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/popup"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

var (
	_ popup.Popup  = (*Model)(nil)
	_ popup.Framed = (*Model)(nil)
)

var categoryLabels = map[string]string{
	keymap.ContextGlobal:    "Global",
	keymap.ContextNavigator: "File Browser",
	keymap.ContextPlaylist:  "Playlist",
	keymap.ContextColumns:   "Column Configuration",
	keymap.ContextConfirm:   "Confirmation",
	keymap.ContextPrompt:    "Prompt",
	keymap.ContextError:     "Error Dialog",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	lines        []string
	scrollOffset int
}

// New creates a help popup showing the given binding contexts. The global
// context is always listed first.
func New(contexts ...string) *Model {
	m := &Model{}
	m.SetContexts(contexts)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	var shown []string
	for _, ctx := range keymap.Contexts {
		if ctx == keymap.ContextGlobal || slices.Contains(contexts, ctx) {
			shown = append(shown, ctx)
		}
	}
	m.bindings = keymap.ByContext(shown...)
	m.lines = buildLines(m.bindings)
	m.scrollOffset = 0
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

	switch keyMsg.String() {
	case "?", "esc", "q", "enter":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

// Frame implements popup.Framed.
func (m *Model) Frame() popup.Frame {
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · ?/esc close"
	}
	return popup.Frame{Title: "Help", Footer: footer}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	// pad to the widest line overall so the box keeps its size while scrolling
	maxWidth := 0
	for _, line := range m.lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(m.lines))
	end := min(start+m.Height(), len(m.lines))
	visible := make([]string, 0, end-start)
	for _, line := range m.lines[start:end] {
		if w := lipgloss.Width(line); w < maxWidth {
			line += strings.Repeat(" ", maxWidth-w)
		}
		visible = append(visible, line)
	}
	return strings.Join(visible, "\n")
}

func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()
	keyStyle := s.Title
	descStyle := s.Base
	headerStyle := s.Warning.Bold(true)
	separatorStyle := s.Subtle

	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	currentContext := ""
	for _, b := range bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			currentContext = b.Context
		}

		keyStr := keyLabel(b)
		padded := keyStr + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keyStr))
		lines = append(lines, keyStyle.Render(padded)+"  "+descStyle.Render(b.Description))
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-max(m.Height(), 1), 0)
}
