package playlistview

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/drop"
	"github.com/llehouerou/hnl/internal/errmsg"
	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/tracklist"
	"github.com/llehouerou/hnl/internal/ui/action"
)

var keys = keymap.ForContext(keymap.ContextPlaylist)

// Update handles keys and mouse events. Keys are ignored unless focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		if msg.Paste {
			return m, m.paste(string(msg.Runes))
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (Model, tea.Cmd) {
	n := m.list.Len()
	if m.st.cursor.HandleKey(key, n, m.st.rows) {
		return m, nil
	}

	switch keys.Resolve(key) {
	case keymap.ActionToggleSelect:
		m.toggle(m.st.cursor.Pos())
	case keymap.ActionExtendSelect:
		m.extendSelection()
	case keymap.ActionClearSelect:
		m.ClearSelection()
		m.marked = nil
	case keymap.ActionMoveItemDown:
		return m, m.nudge(1)
	case keymap.ActionMoveItemUp:
		return m, m.nudge(-1)
	case keymap.ActionMark:
		m.mark()
	case keymap.ActionPutBefore:
		return m.put(m.st.cursor.Pos())
	case keymap.ActionPutAfter:
		return m.put(m.st.cursor.Pos() + 1)
	case keymap.ActionDelete:
		return m, m.removeTargets()
	case keymap.ActionClearPlaylist:
		if n == 0 {
			return m, nil
		}
		return m, action.Cmd(Source, ClearRequested{Count: n})
	case keymap.ActionRevealPlaying:
		if m.st.playing >= 0 {
			m.st.cursor.Set(m.st.playing, n, m.st.rows)
		}
	case keymap.ActionPlay:
		return m, m.play(m.st.cursor.Pos())
	}
	return m, nil
}

func (m *Model) toggle(i int) {
	if i < 0 || i >= m.list.Len() {
		return
	}
	if m.st.selected[i] {
		delete(m.st.selected, i)
	} else {
		m.st.selected[i] = true
	}
	m.st.anchor = i
}

// extendSelection selects every row between the anchor and the cursor.
func (m *Model) extendSelection() {
	if m.list.Len() == 0 {
		return
	}
	lo, hi := m.st.anchor, m.st.cursor.Pos()
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := max(lo, 0); i <= min(hi, m.list.Len()-1); i++ {
		m.st.selected[i] = true
	}
}

// nudge moves the target run one row up or down.
func (m *Model) nudge(delta int) tea.Cmd {
	start, count, ok := tracklist.RunOf(m.targets())
	if !ok {
		return nil
	}
	dest := start - 1
	if delta > 0 {
		dest = start + count + 1
	}
	if dest < 0 || dest > m.list.Len() {
		return nil
	}
	return m.move(start, count, dest)
}

// move relocates a run and reports it. Destinations inside the run or at
// either edge of it are no-ops.
func (m *Model) move(start, count, dest int) tea.Cmd {
	if dest >= start && dest <= start+count {
		return nil
	}
	if err := m.list.MoveContiguousRun(start, count, dest); err != nil {
		return action.Cmd(Source, Failed{Op: errmsg.OpTrackMove, Err: err})
	}
	to := dest
	if dest > start {
		to = dest - count
	}
	return action.Cmd(Source, Moved{Count: count, To: to})
}

// mark picks up the target rows for a later put.
func (m *Model) mark() {
	m.marked = nil
	for _, i := range m.targets() {
		if rec, ok := m.list.Query(i); ok {
			m.marked = append(m.marked, rec.ID())
		}
	}
}

// put moves the marked rows so they start at dest. Marks that no longer
// form a contiguous run are dropped without moving anything.
func (m Model) put(dest int) (Model, tea.Cmd) {
	if len(m.marked) == 0 {
		return m, nil
	}
	rows := make([]int, 0, len(m.marked))
	for _, id := range m.marked {
		if i := m.list.IndexOf(id); i >= 0 {
			rows = append(rows, i)
		}
	}
	m.marked = nil
	start, count, ok := tracklist.RunOf(rows)
	if !ok {
		return m, nil
	}
	return m, m.move(start, count, min(dest, m.list.Len()))
}

// removeTargets deletes the target rows, one contiguous run at a time from
// the bottom up so earlier indices stay valid.
func (m *Model) removeTargets() tea.Cmd {
	rows := m.targets()
	if len(rows) == 0 {
		return nil
	}
	runs := splitRuns(rows)
	removed := 0
	for _, r := range slices.Backward(runs) {
		if err := m.list.RemoveRange(r.Start, r.Count); err != nil {
			return action.Cmd(Source, Failed{Op: errmsg.OpTrackRemove, Err: err})
		}
		removed += r.Count
	}
	m.ClearSelection()
	return action.Cmd(Source, Removed{Count: removed})
}

// splitRuns groups sorted, distinct rows into contiguous ranges.
func splitRuns(rows []int) []tracklist.Range {
	var runs []tracklist.Range
	for _, i := range rows {
		if n := len(runs); n > 0 && runs[n-1].End() == i {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, tracklist.Range{Start: i, Count: 1})
	}
	return runs
}

func (m *Model) play(i int) tea.Cmd {
	rec, ok := m.list.Query(i)
	if !ok {
		return nil
	}
	m.st.playing = i
	return action.Cmd(Source, Play{Index: i, Record: rec})
}

// paste turns pasted text/uri-list or path lines into a drop before the
// cursor row.
func (m Model) paste(text string) tea.Cmd {
	paths, err := drop.ParsePayload(text)
	if len(paths) == 0 && err == nil {
		return nil
	}
	index := -1
	if m.list.Len() > 0 {
		index = m.st.cursor.Pos()
	}
	return action.Cmd(Source, DropPaths{Paths: paths, Index: index, Err: err})
}
