// Package playlistview renders a tracklist as a table of columns and turns
// keys and mouse gestures into list operations. It owns no track data: the
// cursor, selection and now-playing row follow the list through its change
// notifications.
package playlistview

import (
	"slices"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/track"
	"github.com/llehouerou/hnl/internal/tracklist"
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/cursor"
)

// tracking is the row bookkeeping the list observer keeps current. It is
// shared by every copy of the Model value.
type tracking struct {
	cursor   cursor.Cursor
	selected map[int]bool
	anchor   int
	playing  int
	rows     int // visible list rows

	drag *drag
	hint int // insertion index shown while something is dragged in, -1 when none
}

// drag is an in-progress mouse drag.
type drag struct {
	row    int // row the button went down on
	target int // insertion index under the pointer, -1 when unknown
	moved  bool
}

// Model is the playlist table.
type Model struct {
	ui.Base
	list   *tracklist.List
	cols   *columns.Set
	st     *tracking
	marked []string // record IDs picked up with "m"

	unsubscribe func()
}

// New creates a view over list rendered with cols and subscribes it to
// list changes. Call Close to unsubscribe.
func New(list *tracklist.List, cols *columns.Set) Model {
	if cols == nil {
		cols = columns.Defaults()
	}
	m := Model{
		list: list,
		cols: cols,
		st: &tracking{
			cursor:   cursor.New(ui.ScrollMargin),
			selected: make(map[int]bool),
			playing:  -1,
			hint:     -1,
		},
	}
	st := m.st
	m.unsubscribe = list.Subscribe(tracklist.ObserverFuncs{
		OnAfter: func(c tracklist.Change) { st.follow(c, list.Len()) },
	})
	return m
}

// Close detaches the view from its list.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// follow remaps every tracked row through c.
func (st *tracking) follow(c tracklist.Change, n int) {
	if c.Kind == tracklist.Reset {
		st.selected = make(map[int]bool)
		st.playing = -1
		st.anchor = 0
		st.cursor.Reset()
		return
	}

	pos := st.cursor.Pos()
	if p, ok := c.MapIndex(pos); ok {
		pos = p
	} else {
		// cursor row was removed: stay on the row that took its place
		pos = c.Removed.Start
	}
	st.cursor.Set(pos, n, st.rows)

	if p, ok := c.MapIndex(st.playing); ok && st.playing >= 0 {
		st.playing = p
	} else {
		st.playing = -1
	}
	if p, ok := c.MapIndex(st.anchor); ok {
		st.anchor = p
	} else {
		st.anchor = st.cursor.Pos()
	}

	moved := make(map[int]bool, len(st.selected))
	for i := range st.selected {
		if p, ok := c.MapIndex(i); ok {
			moved[p] = true
		}
	}
	st.selected = moved
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.st.rows = m.ListHeight()
	m.st.cursor.EnsureVisible(m.list.Len(), m.st.rows)
}

// SetColumns replaces the column set used for rendering.
func (m *Model) SetColumns(cols *columns.Set) {
	if cols != nil {
		m.cols = cols
	}
}

// Columns returns the column set in use.
func (m Model) Columns() *columns.Set {
	return m.cols
}

// List returns the underlying track list.
func (m Model) List() *tracklist.List {
	return m.list
}

// Cursor returns the cursor row.
func (m Model) Cursor() int {
	return m.st.cursor.Pos()
}

// SetCursor moves the cursor to row i.
func (m *Model) SetCursor(i int) {
	m.st.cursor.Jump(i, m.list.Len(), m.st.rows)
	m.st.anchor = m.st.cursor.Pos()
}

// Playing returns the now-playing row, or -1.
func (m Model) Playing() int {
	return m.st.playing
}

// PlayingRecord returns the now-playing record, if any.
func (m Model) PlayingRecord() (*track.Record, bool) {
	return m.list.Query(m.st.playing)
}

// CursorRecord returns the record under the cursor, if any.
func (m Model) CursorRecord() (*track.Record, bool) {
	return m.list.Query(m.st.cursor.Pos())
}

// SetPlaying marks row i as now playing. Out of range clears the mark.
func (m *Model) SetPlaying(i int) {
	if i < 0 || i >= m.list.Len() {
		i = -1
	}
	m.st.playing = i
}

// Selection returns the selected rows in ascending order.
func (m Model) Selection() []int {
	out := make([]int, 0, len(m.st.selected))
	for i := range m.st.selected {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// SetSelection replaces the selection.
func (m *Model) SetSelection(rows ...int) {
	m.st.selected = make(map[int]bool, len(rows))
	for _, i := range rows {
		if i >= 0 && i < m.list.Len() {
			m.st.selected[i] = true
		}
	}
}

// ClearSelection empties the selection.
func (m *Model) ClearSelection() {
	m.st.selected = make(map[int]bool)
}

// targets returns the rows an operation applies to: the selection, or the
// cursor row when nothing is selected.
func (m Model) targets() []int {
	if len(m.st.selected) > 0 {
		return m.Selection()
	}
	if m.list.Len() == 0 {
		return nil
	}
	return []int{m.st.cursor.Pos()}
}

// Marked reports how many tracks are picked up for a move.
func (m Model) Marked() int {
	return len(m.marked)
}
