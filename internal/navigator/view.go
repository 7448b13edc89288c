package navigator

import (
	"strings"

	"github.com/llehouerou/hnl/internal/icons"
	"github.com/llehouerou/hnl/internal/ui/render"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

func (m Model[T]) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	innerWidth := m.InnerWidth()
	listHeight := m.ListHeight()

	lines := make([]string, 0, listHeight+2)
	lines = append(lines,
		s.Title.Render(render.TruncateAndPad(m.CurrentPath(), innerWidth)),
		render.Separator(innerWidth),
	)

	start, end := m.cursor.VisibleRange(len(m.currentItems), listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderItem(m.currentItems[idx], idx, innerWidth))
	}
	for len(lines) < listHeight+2 {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	switch {
	case listHeight == 0:
	case m.err != nil:
		lines[2] = s.Error.Render(render.TruncateAndPad("  "+m.err.Error(), innerWidth))
	case len(m.currentItems) == 0:
		lines[2] = s.Subtle.Render(render.TruncateAndPad("  No music here", innerWidth))
	}

	return styles.PanelStyle(m.IsFocused()).Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m Model[T]) renderItem(node T, idx, width int) string {
	s := styles.T().S()
	name := formatNodeName(node)

	if idx != m.cursor.Pos() {
		line := render.TruncateAndPad("  "+name, width)
		if node.IsContainer() {
			return s.Muted.Render(line)
		}
		return s.Base.Render(line)
	}
	line := render.TruncateAndPad("> "+name, width)
	if m.IsFocused() {
		return s.Cursor.Render(line)
	}
	return s.Selected.Render(line)
}

func formatNodeName[T Node](node T) string {
	name := node.DisplayName()
	if node.IsContainer() {
		return icons.FormatDir(name)
	}
	return icons.FormatAudio(name)
}
