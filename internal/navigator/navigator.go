// Package navigator is a single-column browser over a tree of nodes. The
// application uses it over the filesystem as the source of playlist drops.
package navigator

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/cursor"
)

var keys = keymap.ForContext(keymap.ContextNavigator)

// Model browses the children of one container at a time.
type Model[T Node] struct {
	ui.Base
	source       Source[T]
	current      T
	currentItems []T
	cursor       cursor.Cursor
	err          error // last listing failure, shown in place of the items
}

// New opens a navigator on the source root.
func New[T Node](source Source[T]) (Model[T], error) {
	m := Model[T]{
		source:  source,
		current: source.Root(),
		cursor:  cursor.New(ui.ScrollMargin),
	}
	if err := m.refresh(); err != nil {
		return Model[T]{}, err
	}
	return m, nil
}

// refresh reloads the current container, keeping the cursor in range.
func (m *Model[T]) refresh() error {
	items, err := m.source.Children(m.current)
	m.err = err
	if err != nil {
		m.currentItems = nil
		m.cursor.Reset()
		return err
	}
	m.currentItems = items
	m.cursor.ClampToBounds(len(items))
	m.cursor.EnsureVisible(len(items), m.ListHeight())
	return nil
}

// Err returns the error from the last listing, if any.
func (m Model[T]) Err() error {
	return m.err
}

// SetSize keeps the cursor visible in the new height.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.currentItems), m.ListHeight())
}

// Current returns the container being shown.
func (m Model[T]) Current() T {
	return m.current
}

// CurrentItems returns the items in the current container.
func (m Model[T]) CurrentItems() []T {
	return m.currentItems
}

// CurrentPath returns the display path of the current container.
func (m Model[T]) CurrentPath() string {
	return m.source.DisplayPath(m.current)
}

// Selected returns a pointer to the currently selected item, or nil if none.
func (m Model[T]) Selected() *T {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.currentItems) {
		return nil
	}
	return &m.currentItems[pos]
}

// SelectedName returns the display name of the selected item, or empty if none.
func (m Model[T]) SelectedName() string {
	if selected := m.Selected(); selected != nil {
		return (*selected).DisplayName()
	}
	return ""
}

// SelectedID returns the ID of the selected item, or empty if none.
func (m Model[T]) SelectedID() string {
	if selected := m.Selected(); selected != nil {
		return (*selected).ID()
	}
	return ""
}

// SelectByID selects the item with the given ID in the current container.
func (m *Model[T]) SelectByID(id string) bool {
	for i, node := range m.currentItems {
		if node.ID() == id {
			m.cursor.Set(i, len(m.currentItems), m.ListHeight())
			return true
		}
	}
	return false
}

// NavigateTo opens the container id, or the parent of a leaf id with the
// leaf selected.
func (m *Model[T]) NavigateTo(id string) bool {
	node, ok := m.source.NodeFromID(id)
	if !ok {
		return false
	}
	if node.IsContainer() {
		m.enter(node)
		return true
	}
	parent := m.source.Parent(node)
	if parent == nil {
		return false
	}
	m.enter(*parent)
	m.SelectByID(node.ID())
	return true
}

// enter opens node. A listing failure stays in m.err: the view shows it in
// place of the items and enteredCmd reports it.
func (m *Model[T]) enter(node T) {
	m.current = node
	m.cursor.Reset()
	m.refresh() //nolint:errcheck // kept in m.err
}

// up opens the parent container with the previous one selected.
func (m *Model[T]) up() bool {
	parent := m.source.Parent(m.current)
	if parent == nil {
		return false
	}
	prevID := m.current.ID()
	m.enter(*parent)
	m.SelectByID(prevID)
	return true
}

// down opens the selected item when it is a container.
func (m *Model[T]) down() bool {
	selected := m.Selected()
	if selected == nil || !(*selected).IsContainer() {
		return false
	}
	m.enter(*selected)
	return true
}

func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles keys while focused and mouse events relative to the
// panel's top-left corner.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg.String())
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model[T]) handleKey(key string) (Model[T], tea.Cmd) {
	n := len(m.currentItems)
	prev := m.cursor.Pos()
	if m.cursor.HandleKey(key, n, m.ListHeight()) {
		if m.cursor.Pos() != prev {
			return m, m.navigationChangedCmd()
		}
		return m, nil
	}

	switch keys.Resolve(key) {
	case keymap.ActionMoveLeft:
		if m.up() {
			return m, m.enteredCmd()
		}
	case keymap.ActionMoveRight:
		if m.down() {
			return m, m.enteredCmd()
		}
	case keymap.ActionAddAtCursor:
		return m, m.addCmd(false)
	case keymap.ActionAppend:
		return m, m.addCmd(true)
	case keymap.ActionToggleHidden:
		if t, ok := m.source.(HiddenToggler); ok {
			t.ToggleHidden()
			id := m.SelectedID()
			if err := m.refresh(); err != nil {
				return m, m.listFailedCmd()
			}
			m.SelectByID(id)
		}
	}
	return m, nil
}

func (m Model[T]) addCmd(appendToEnd bool) tea.Cmd {
	id := m.SelectedID()
	if id == "" {
		return nil
	}
	return action.Cmd(SourceName, AddPaths{Paths: []string{id}, Append: appendToEnd})
}

// enteredCmd reports a move to another container, and the listing failure
// when it could not be read.
func (m Model[T]) enteredCmd() tea.Cmd {
	if m.err == nil {
		return m.navigationChangedCmd()
	}
	return tea.Batch(m.navigationChangedCmd(), m.listFailedCmd())
}

func (m Model[T]) listFailedCmd() tea.Cmd {
	return action.Cmd(SourceName, ListFailed{Path: m.CurrentPath(), Err: m.err})
}

func (m Model[T]) navigationChangedCmd() tea.Cmd {
	return action.Cmd(SourceName, NavigationChanged{
		CurrentPath:  m.CurrentPath(),
		SelectedName: m.SelectedName(),
	})
}
