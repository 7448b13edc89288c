// Package columnsdialog is the popup for editing playlist columns. It
// works on a copy of the column set; nothing reaches the playlist until
// the user saves.
package columnsdialog

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/titleformat"
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/popup"
)

var (
	_       popup.Popup = (*Model)(nil)
	keys                = keymap.ForContext(keymap.ContextColumns)
	rowKeys             = keymap.ForContext(keymap.ContextColumnRow)
)

// focus is the part of the dialog receiving keys.
type focus int

const (
	focusTable focus = iota
	focusName
	focusWidth
	focusFormat
	focusCount
)

// Model is the column configuration popup.
type Model struct {
	ui.Base
	opened *columns.Set // what the dialog was opened with, for reset
	set    *columns.Set
	row    int
	focus  focus
	inputs [focusCount]textinput.Model // index 0 unused

	sample  titleformat.Fields
	preview string
	err     error // compile or eval error shown in place of the preview
	status  string
}

// New opens the dialog on a copy of cols. sample is the track used for the
// preview line; it may be nil.
func New(cols *columns.Set, sample titleformat.Fields) *Model {
	m := &Model{
		opened: cols.Clone(),
		set:    cols.Clone(),
		sample: sample,
	}
	for f := focusName; f < focusCount; f++ {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.inputs[f] = ti
	}
	m.inputs[focusWidth].CharLimit = 6
	m.inputs[focusFormat].Placeholder = "%title%"
	m.load()
	return m
}

// Columns returns the set being edited.
func (m *Model) Columns() *columns.Set {
	return m.set
}

// Row returns the selected column.
func (m *Model) Row() int {
	return m.row
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// load fills the inputs from the selected column.
func (m *Model) load() {
	m.row = min(max(m.row, 0), m.set.Len()-1)
	c, _ := m.set.At(m.row)
	m.inputs[focusName].SetValue(c.Name)
	m.inputs[focusWidth].SetValue(strconv.Itoa(c.Width))
	m.inputs[focusFormat].SetValue(c.Template())
	m.err = nil
	m.refreshPreview(c.Template())
}

// refreshPreview renders tpl against the sample track.
func (m *Model) refreshPreview(tpl string) {
	f, err := titleformat.Compile(tpl)
	if err != nil {
		m.err = err
		return
	}
	out, err := f.Format(m.sample)
	m.preview, m.err = out, err
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch keys.Resolve(key.String()) {
	case keymap.ActionCancel:
		return m, action.Cmd(Source, Closed{})
	case keymap.ActionSave:
		return m, action.Cmd(Source, Saved{Columns: m.set.Clone()})
	case keymap.ActionAddColumn:
		m.row = m.set.AddColumn(columns.Column{})
		m.load()
		return m, m.setFocus(focusName)
	case keymap.ActionDeleteColumn:
		if err := m.set.DeleteColumn(m.row); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.load()
		return m, nil
	case keymap.ActionResetColumns:
		m.set = m.opened.Clone()
		m.load()
		return m, nil
	case keymap.ActionNextField:
		return m, m.setFocus((m.focus + 1) % focusCount)
	case keymap.ActionPrevField:
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case keymap.ActionMoveUp:
		m.moveRow(-1)
		return m, nil
	case keymap.ActionMoveDown:
		m.moveRow(1)
		return m, nil
	case keymap.ActionToggleEdit:
		if m.focus == focusTable {
			return m, m.setFocus(focusName)
		}
		return m, m.setFocus(focusTable)
	}

	if m.focus == focusTable {
		switch rowKeys.Resolve(key.String()) {
		case keymap.ActionMoveUp:
			m.moveRow(-1)
		case keymap.ActionMoveDown:
			m.moveRow(1)
		}
		return m, nil
	}
	return m, m.edit(key)
}

func (m *Model) moveRow(delta int) {
	m.row += delta
	m.load()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := focusName; i < focusCount; i++ {
		if i == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// edit feeds key to the focused input and applies the new value to the
// selected column straight away.
func (m *Model) edit(key tea.KeyMsg) tea.Cmd {
	if m.focus == focusWidth && key.Type == tea.KeyRunes {
		for _, r := range key.Runes {
			if !unicode.IsDigit(r) {
				return nil
			}
		}
	}

	in := &m.inputs[m.focus]
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(key)
	value := in.Value()
	if value == before {
		return cmd
	}

	var err error
	switch m.focus {
	case focusName:
		err = m.set.SetName(m.row, value)
	case focusWidth:
		width := 0
		if value != "" {
			width, err = strconv.Atoi(value)
		}
		if err == nil {
			err = m.set.SetWidth(m.row, width)
		}
	case focusFormat:
		// A template that does not compile leaves the column unchanged;
		// the error shows where the preview would be.
		if err := m.set.SetTemplate(m.row, value); err != nil && !titleformat.IsCompileError(err) {
			m.status = err.Error()
		}
		m.refreshPreview(value)
		return cmd
	}
	if err != nil {
		m.status = err.Error()
	}
	return cmd
}
