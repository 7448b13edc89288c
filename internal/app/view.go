package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hnl/internal/ui/headerbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.layout.Width() == 0 || m.layout.Height() == 0 {
		return ""
	}

	header := headerbar.Render(headerbar.Info{
		Focus:   m.panels.Focus().String(),
		Tracks:  m.list.Len(),
		Loading: m.jobs.loading,
	}, m.layout.Width())

	panels := m.panels.Playlist().View()
	if m.panels.NavigatorShown() {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.panels.FileNav().View(), panels)
	}

	view := header + "\n" + panels + "\n" + m.status.View(m.layout.Width())
	view = m.popups.RenderOverlay(view)
	return enforceHeight(view, m.layout.Height())
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		lines = append(lines, make([]string, targetHeight-len(lines))...)
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
