package app

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/app/handler"
	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/titleformat"
)

var globalKeys = keymap.ForContext(keymap.ContextGlobal)

// handleKeyMsg offers a key to the open popup, then to the global
// bindings, then to the focused panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.popups.HandleKey(msg); handled {
		return m, cmd
	}
	if !msg.Paste {
		if handled, cmd := handler.Chain(msg.String(),
			m.handleQuitKeys,
			m.handleFocusKeys,
			m.handlePopupKeys,
		); handled {
			return m, cmd
		}
	}
	return m, m.panels.UpdateFocused(msg)
}

func (m Model) handleQuitKeys(key string) handler.Result {
	if globalKeys.Resolve(key) != keymap.ActionQuit {
		return handler.NotHandled
	}
	m.Close()
	return handler.Handled(tea.Quit)
}

func (m Model) handleFocusKeys(key string) handler.Result {
	if globalKeys.Resolve(key) != keymap.ActionSwitchFocus {
		return handler.NotHandled
	}
	m.panels.ToggleFocus()
	return handler.HandledNoCmd
}

func (m Model) handlePopupKeys(key string) handler.Result {
	switch globalKeys.Resolve(key) {
	case keymap.ActionHelp:
		return handler.Handled(m.popups.ShowHelp(m.helpContexts()))
	case keymap.ActionConfigureColumns:
		return handler.Handled(m.popups.ShowColumns(m.panels.Playlist().Columns(), m.sampleTrack()))
	case keymap.ActionAddLocation:
		return handler.Handled(m.popups.ShowPrompt("Add location",
			"File or folder to append to the playlist",
			m.locationHint(), addLocation{}))
	}
	return handler.NotHandled
}

// locationHint prefills the location prompt with the last location typed,
// else the browsed folder.
func (m Model) locationHint() string {
	if m.state != nil {
		if last := m.state.LastLocation(); last != "" {
			return last
		}
	}
	dir := m.panels.FileNav().Current().ID()
	if dir == "" {
		return ""
	}
	return strings.TrimSuffix(dir, string(filepath.Separator)) + string(filepath.Separator)
}

// helpContexts lists the binding contexts of the focused panel.
func (m Model) helpContexts() []string {
	if m.panels.IsNavigatorFocused() {
		return []string{keymap.ContextNavigator}
	}
	return []string{keymap.ContextPlaylist}
}

// sampleTrack is the track the column dialog previews: the playing one,
// else the one under the cursor, else none.
func (m Model) sampleTrack() titleformat.Fields {
	pl := m.panels.Playlist()
	if rec, ok := pl.PlayingRecord(); ok {
		return rec
	}
	if rec, ok := pl.CursorRecord(); ok {
		return rec
	}
	return nil
}
