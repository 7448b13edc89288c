package playlistview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/icons"
	"github.com/llehouerou/hnl/internal/track"
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/render"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

const (
	gutterWidth = 2
	cellGap     = " "
)

// View renders the panel: column header, separator and the visible rows.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	inner := m.InnerWidth()
	cols := m.cols.All()

	lines := make([]string, 0, m.Height())
	lines = append(lines,
		styles.T().S().Header.Render(render.Cell(strings.Repeat(" ", gutterWidth)+m.headerLine(cols), inner)),
		render.Separator(inner),
	)
	lines = append(lines, m.rowLines(cols, inner)...)

	return styles.PanelStyle(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

func (m Model) headerLine(cols []columns.Column) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = render.Cell(c.Name, ui.ColumnCells(c.Width))
	}
	return strings.Join(cells, cellGap)
}

func (m Model) rowLines(cols []columns.Column, inner int) []string {
	rows := m.st.rows
	n := m.list.Len()
	target := m.dropIndex()
	start, end := m.st.cursor.VisibleRange(n, rows)

	lines := make([]string, 0, rows)
	for idx := start; idx < end; idx++ {
		rec, _ := m.list.Query(idx)
		lines = append(lines, m.rowLine(rec, idx, cols, inner, idx == target))
	}
	for len(lines) < rows {
		if len(lines) == end-start && target == n && n > 0 {
			marker := icons.Marker() + " " + render.Separator(max(inner-gutterWidth, 0))
			lines = append(lines, styles.T().S().Marker.Render(render.Cell(marker, inner)))
			continue
		}
		lines = append(lines, render.EmptyLine(inner))
	}
	if n == 0 && rows > 0 {
		lines[0] = styles.T().S().Subtle.Render(render.Cell("  Drop files here or press a in the browser", inner))
	}
	return lines
}

func (m Model) rowLine(rec *track.Record, idx int, cols []columns.Column, inner int, marker bool) string {
	gutter := "  "
	switch {
	case marker:
		gutter = icons.Marker() + " "
	case idx == m.st.playing:
		gutter = icons.Playing() + " "
	case m.st.selected[idx]:
		gutter = icons.Selected() + " "
	}

	cells := make([]string, len(cols))
	for i, c := range cols {
		text, err := c.Format(rec)
		if err != nil {
			text = "!" + err.Error()
		}
		cells[i] = render.Cell(text, ui.ColumnCells(c.Width))
	}
	line := render.Cell(gutter+strings.Join(cells, cellGap), inner)
	return m.rowStyle(idx, marker).Render(line)
}

// dropIndex returns the insertion index to mark, or -1.
func (m Model) dropIndex() int {
	if d := m.st.drag; d != nil && d.moved {
		return d.target
	}
	return m.st.hint
}

func (m Model) rowStyle(idx int, marker bool) lipgloss.Style {
	s := styles.T().S()
	var style lipgloss.Style
	switch {
	case idx == m.st.cursor.Pos() && m.IsFocused():
		style = s.Cursor
	case m.st.selected[idx]:
		style = s.Selected
	case idx%2 == 1:
		style = s.AltRow
	default:
		style = s.Base
	}
	if idx == m.st.playing {
		style = style.Inherit(s.Playing)
	}
	if marker {
		style = style.Inherit(s.Marker)
	}
	return style
}
