package navctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/navigator"
	"github.com/llehouerou/hnl/internal/ui/playlistview"
)

// Manager manages focus between the file browser and the playlist.
type Manager struct {
	focus    FocusTarget
	navShown bool
	fileNav  navigator.Model[navigator.FileNode]
	playlist playlistview.Model
}

// New creates a Manager with the playlist focused.
func New(fileNav navigator.Model[navigator.FileNode], playlist playlistview.Model) *Manager {
	n := &Manager{fileNav: fileNav, playlist: playlist, navShown: true}
	n.SetFocus(FocusPlaylist)
	return n
}

// --- Focus ---

// Focus returns the current focus target.
func (n *Manager) Focus() FocusTarget {
	return n.focus
}

// SetFocus changes focus to target and updates the panels' focus states.
// The file browser cannot take focus while it is hidden.
func (n *Manager) SetFocus(target FocusTarget) {
	if target == FocusNavigator && !n.navShown {
		target = FocusPlaylist
	}
	n.focus = target
	n.fileNav.SetFocused(target == FocusNavigator)
	n.playlist.SetFocused(target == FocusPlaylist)
}

// ToggleFocus moves focus to the other panel.
func (n *Manager) ToggleFocus() {
	if n.focus == FocusNavigator {
		n.SetFocus(FocusPlaylist)
	} else {
		n.SetFocus(FocusNavigator)
	}
}

// IsNavigatorFocused returns true if the file browser has focus.
func (n *Manager) IsNavigatorFocused() bool {
	return n.focus == FocusNavigator
}

// SetNavigatorShown shows or hides the file browser. Hiding it moves focus
// to the playlist.
func (n *Manager) SetNavigatorShown(shown bool) {
	n.navShown = shown
	if !shown && n.focus == FocusNavigator {
		n.SetFocus(FocusPlaylist)
	}
}

// NavigatorShown reports whether the file browser is on screen.
func (n *Manager) NavigatorShown() bool {
	return n.navShown
}

// --- Panel Accessors ---

// FileNav returns a pointer to the file browser.
func (n *Manager) FileNav() *navigator.Model[navigator.FileNode] {
	return &n.fileNav
}

// Playlist returns a pointer to the playlist view.
func (n *Manager) Playlist() *playlistview.Model {
	return &n.playlist
}

// --- Routing ---

// UpdateFocused routes a message to the focused panel.
func (n *Manager) UpdateFocused(msg tea.Msg) tea.Cmd {
	if n.focus == FocusNavigator {
		return n.UpdateNavigator(msg)
	}
	return n.UpdatePlaylist(msg)
}

// UpdateNavigator routes a message to the file browser.
func (n *Manager) UpdateNavigator(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	n.fileNav, cmd = n.fileNav.Update(msg)
	return cmd
}

// UpdatePlaylist routes a message to the playlist view.
func (n *Manager) UpdatePlaylist(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	n.playlist, cmd = n.playlist.Update(msg)
	return cmd
}

// Resize sets the panel sizes.
func (n *Manager) Resize(navWidth, playlistWidth, height int) {
	n.fileNav.SetSize(navWidth, height)
	n.playlist.SetSize(playlistWidth, height)
}

// Close releases the playlist's list subscription.
func (n *Manager) Close() {
	n.playlist.Close()
}
