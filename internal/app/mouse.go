package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/app/navctl"
	"github.com/llehouerou/hnl/internal/app/popupctl"
)

// handleMouseMsg routes a mouse event to the panel under the pointer, in
// that panel's coordinates. A drag out of the file browser is followed
// here and dropped where the button is released over the playlist.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popups.ActivePopup() != popupctl.None {
		return m, nil
	}
	if m.jobs.drag != nil {
		if handled, cmd := m.followDrag(msg); handled {
			return m, cmd
		}
	}

	navRect := m.layout.NavigatorRect()
	plRect := m.layout.PlaylistRect()
	pl := m.panels.Playlist()
	press := msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel()

	switch {
	case pl.Dragging():
		// A row drag keeps the playlist's attention until release.
		return m, m.panels.UpdatePlaylist(local(msg, plRect))

	case navRect.Contains(msg.X, msg.Y):
		if press {
			m.panels.SetFocus(navctl.FocusNavigator)
		}
		return m, m.panels.UpdateNavigator(local(msg, navRect))

	case plRect.Contains(msg.X, msg.Y):
		if press {
			m.panels.SetFocus(navctl.FocusPlaylist)
		}
		return m, m.panels.UpdatePlaylist(local(msg, plRect))
	}
	return m, nil
}

// followDrag shows where dragged files would land and drops them on
// release. Other events are not consumed.
func (m Model) followDrag(msg tea.MouseMsg) (bool, tea.Cmd) {
	plRect := m.layout.PlaylistRect()
	pl := m.panels.Playlist()
	over := plRect.Contains(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if over {
			pl.SetDropHint(pl.DropIndexAt(msg.Y - plRect.Y))
		} else {
			pl.SetDropHint(-1)
		}
		return true, nil

	case tea.MouseActionRelease:
		paths := m.jobs.drag
		m.jobs.drag = nil
		pl.SetDropHint(-1)
		if !over {
			return true, nil
		}
		m.panels.SetFocus(navctl.FocusPlaylist)
		return true, m.dropPaths(paths, pl.DropIndexAt(msg.Y-plRect.Y))
	}
	return false, nil
}

// local translates msg into coordinates relative to r.
func local(msg tea.MouseMsg, r Rect) tea.MouseMsg {
	msg.X -= r.X
	msg.Y -= r.Y
	return msg
}
