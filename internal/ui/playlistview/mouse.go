package playlistview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/tracklist"
	"github.com/llehouerou/hnl/internal/ui"
)

// listTop is the first panel line holding a track row: top border, column
// header, separator.
const listTop = ui.BorderHeight/2 + ui.HeaderHeight

// wheelStep is how many rows one wheel notch scrolls.
const wheelStep = 3

// handleMouse expects coordinates relative to the panel's top-left corner.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	n := m.list.Len()

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.st.cursor.Scroll(-wheelStep, n, m.st.rows)
	case msg.Button == tea.MouseButtonWheelDown:
		m.st.cursor.Scroll(wheelStep, n, m.st.rows)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(msg)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonMiddle:
		if row, ok := m.rowAt(msg.Y); ok {
			return m, m.play(row)
		}

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		if d := m.st.drag; d != nil {
			d.moved = true
			d.target = m.DropIndexAt(msg.Y)
		}

	case msg.Action == tea.MouseActionRelease:
		d := m.st.drag
		m.st.drag = nil
		if d == nil || !d.moved {
			return m, nil
		}
		start, count, ok := tracklist.RunOf(m.targets())
		if !ok {
			return m, nil
		}
		return m, m.move(start, count, m.DropIndexAt(msg.Y))
	}
	return m, nil
}

// press handles a left click: plain clicks select the row, ctrl toggles it,
// shift extends from the anchor. The press also starts a drag.
func (m *Model) press(msg tea.MouseMsg) {
	row, ok := m.rowAt(msg.Y)
	if !ok {
		if msg.Y >= listTop {
			m.ClearSelection()
		}
		m.st.drag = nil
		return
	}

	m.st.cursor.Set(row, m.list.Len(), m.st.rows)
	switch {
	case msg.Ctrl:
		m.toggle(row)
	case msg.Shift:
		m.extendSelection()
	case !m.st.selected[row]:
		m.SetSelection(row)
		m.st.anchor = row
	}
	m.st.drag = &drag{row: row, target: -1}
}

// rowAt returns the list row drawn on panel line y.
func (m Model) rowAt(y int) (int, bool) {
	line := y - listTop
	if line < 0 || line >= m.st.rows {
		return 0, false
	}
	row := m.st.cursor.RowAt(line)
	return row, row < m.list.Len()
}

// DropIndexAt resolves the insertion index for a drop at panel line y.
// Each row is one cell tall, so a drop lands before the row under the
// pointer; below the last row it appends.
func (m Model) DropIndexAt(y int) int {
	line := y - listTop
	if line < 0 {
		return m.st.cursor.Offset()
	}
	row := m.st.cursor.RowAt(line)
	return tracklist.DropTarget(line, line, 1, row, m.list.Len())
}

// SetDropHint shows where an outside drag would land; -1 hides it.
func (m *Model) SetDropHint(index int) {
	m.st.hint = index
}

// Dragging reports whether a row drag is in progress.
func (m Model) Dragging() bool {
	return m.st.drag != nil
}
