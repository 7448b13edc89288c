package navigator

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/action"
)

// listTop is the first panel line holding an entry: top border, path
// header, separator.
const listTop = ui.BorderHeight/2 + ui.HeaderHeight

const wheelStep = 3

func (m Model[T]) handleMouse(msg tea.MouseMsg) (Model[T], tea.Cmd) {
	n := len(m.currentItems)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor.Scroll(-wheelStep, n, m.ListHeight())
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor.Scroll(wheelStep, n, m.ListHeight())

	case msg.Action != tea.MouseActionPress:
		return m, nil

	case msg.Button == tea.MouseButtonLeft:
		row, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor.Set(row, n, m.ListHeight())
		id := m.currentItems[row].ID()
		return m, tea.Batch(
			m.navigationChangedCmd(),
			action.Cmd(SourceName, DragStart{Paths: []string{id}}),
		)

	case msg.Button == tea.MouseButtonMiddle:
		row, ok := m.rowAt(msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor.Set(row, n, m.ListHeight())
		if m.down() {
			return m, m.navigationChangedCmd()
		}

	case msg.Button == tea.MouseButtonRight:
		if m.up() {
			return m, m.navigationChangedCmd()
		}
	}
	return m, nil
}

// rowAt maps a panel line to an item index.
func (m Model[T]) rowAt(y int) (int, bool) {
	line := y - listTop
	if line < 0 || line >= m.ListHeight() {
		return 0, false
	}
	row := m.cursor.RowAt(line)
	if row >= len(m.currentItems) {
		return 0, false
	}
	return row, true
}
