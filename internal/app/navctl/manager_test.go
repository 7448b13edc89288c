package navctl

import (
	"testing"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/navigator"
	"github.com/llehouerou/hnl/internal/tracklist"
	"github.com/llehouerou/hnl/internal/ui/headerbar"
	"github.com/llehouerou/hnl/internal/ui/playlistview"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	src, err := navigator.NewFileSource(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	nav, err := navigator.New[navigator.FileNode](src)
	if err != nil {
		t.Fatal(err)
	}
	m := New(nav, playlistview.New(tracklist.New(), columns.Defaults()))
	t.Cleanup(m.Close)
	return m
}

func TestNew_FocusesPlaylist(t *testing.T) {
	m := newTestManager(t)
	if m.Focus() != FocusPlaylist {
		t.Errorf("Focus() = %v, want FocusPlaylist", m.Focus())
	}
	if !m.Playlist().IsFocused() || m.FileNav().IsFocused() {
		t.Error("only the playlist should be focused")
	}
}

func TestToggleFocus(t *testing.T) {
	m := newTestManager(t)

	m.ToggleFocus()
	if !m.IsNavigatorFocused() {
		t.Fatal("expected navigator focus")
	}
	if !m.FileNav().IsFocused() || m.Playlist().IsFocused() {
		t.Error("panel focus flags not updated")
	}

	m.ToggleFocus()
	if m.IsNavigatorFocused() {
		t.Error("expected playlist focus")
	}
}

func TestHiddenNavigatorCannotTakeFocus(t *testing.T) {
	m := newTestManager(t)
	m.SetFocus(FocusNavigator)

	m.SetNavigatorShown(false)
	if m.IsNavigatorFocused() {
		t.Error("hiding the navigator should move focus to the playlist")
	}

	m.ToggleFocus()
	if m.IsNavigatorFocused() {
		t.Error("hidden navigator took focus")
	}

	m.SetNavigatorShown(true)
	m.ToggleFocus()
	if !m.IsNavigatorFocused() {
		t.Error("shown navigator should take focus")
	}
}

func TestFocusTargetString(t *testing.T) {
	if FocusNavigator.String() != headerbar.PanelFiles {
		t.Errorf("FocusNavigator = %q", FocusNavigator.String())
	}
	if FocusPlaylist.String() != headerbar.PanelPlaylist {
		t.Errorf("FocusPlaylist = %q", FocusPlaylist.String())
	}
}
