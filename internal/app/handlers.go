package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/app/popupctl"
	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/config"
	"github.com/llehouerou/hnl/internal/drop"
	"github.com/llehouerou/hnl/internal/errmsg"
	"github.com/llehouerou/hnl/internal/navigator"
	"github.com/llehouerou/hnl/internal/state"
	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/columnsdialog"
	"github.com/llehouerou/hnl/internal/ui/confirm"
	"github.com/llehouerou/hnl/internal/ui/errorbox"
	"github.com/llehouerou/hnl/internal/ui/helpbindings"
	"github.com/llehouerou/hnl/internal/ui/playlistview"
	"github.com/llehouerou/hnl/internal/ui/textinput"
)

// clearPlaylist is the confirmation context of "clear playlist".
type clearPlaylist struct{}

// addLocation is the prompt context of "add location".
type addLocation struct{}

// handleAction acts on what a component reported.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug("action", "source", msg.Source, "type", msg.Action.ActionType())

	switch a := msg.Action.(type) {
	// File browser
	case navigator.AddPaths:
		return m, m.dropPaths(a.Paths, m.cursorDropIndex(a.Append))
	case navigator.DragStart:
		m.jobs.drag = a.Paths
	case navigator.NavigationChanged:
		m.saveNavigation()
	case navigator.ListFailed:
		m.notify(errmsg.OpFolderBrowse, a.Err)

	// Playlist
	case playlistview.Play:
		return m, m.play(a)
	case playlistview.DropPaths:
		m.notify(errmsg.OpPasteParse, a.Err)
		return m, m.dropPaths(a.Paths, a.Index)
	case playlistview.Moved:
		m.status.Set(fmt.Sprintf("Moved %s", count(a.Count, "track")))
	case playlistview.Removed:
		m.status.Set(fmt.Sprintf("Removed %s", count(a.Count, "track")))
	case playlistview.Failed:
		return m, m.report(a.Op, a.Err)
	case playlistview.ClearRequested:
		return m, m.popups.ShowConfirm("Clear playlist?",
			fmt.Sprintf("Remove all %s from the playlist?", count(a.Count, "track")),
			clearPlaylist{})

	// Popups
	case columnsdialog.Saved:
		m.popups.Hide(popupctl.Columns)
		m.saveColumns(a.Columns)
	case columnsdialog.Closed:
		m.popups.Hide(popupctl.Columns)
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
	case errorbox.Dismissed:
		m.popups.Hide(popupctl.Error)
	case textinput.Result:
		m.popups.Hide(popupctl.Prompt)
		if _, ok := a.Context.(addLocation); ok && !a.Canceled {
			return m, m.appendLocation(a.Text)
		}
	case confirm.Result:
		m.popups.Hide(popupctl.Confirm)
		if _, ok := a.Context.(clearPlaylist); ok && a.Confirmed {
			n := m.list.Len()
			m.list.Clear()
			m.status.Set(fmt.Sprintf("Removed %s", count(n, "track")))
		}
	}
	return m, nil
}

// appendLocation appends the paths typed in the location prompt. A leading
// "~" stands for the home directory.
func (m Model) appendLocation(text string) tea.Cmd {
	if m.state != nil && strings.TrimSpace(text) != "" {
		m.state.SaveLocation(text)
	}
	paths, err := drop.ParsePayload(text)
	m.notify(errmsg.OpAddLocation, err)
	for i, p := range paths {
		paths[i] = expandHome(p)
	}
	return m.dropPaths(paths, -1)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// cursorDropIndex is where the file browser's "add" lands: before the
// playlist cursor, or at the end.
func (m Model) cursorDropIndex(appendToEnd bool) int {
	if appendToEnd || m.list.Len() == 0 {
		return -1
	}
	return m.panels.Playlist().Cursor()
}

// play shows the started track in the window title.
func (m Model) play(a playlistview.Play) tea.Cmd {
	m.log.Info("play", "index", a.Index, "path", a.Record.Path())
	title, err := m.title.Format(a.Record)
	if err != nil {
		return m.report(errmsg.OpTitleFormat, err)
	}
	m.status.Set("Playing " + a.Record.Path())
	return tea.SetWindowTitle(title)
}

// saveColumns adopts cols and writes them to the config file.
func (m Model) saveColumns(cols *columns.Set) {
	m.panels.Playlist().SetColumns(cols)
	path := m.cfg.WritePath()
	if err := config.SaveColumns(path, columns.ToConfig(cols)); err != nil {
		m.notify(errmsg.OpColumnsSave, err)
		return
	}
	m.log.Info("columns saved", "path", path, "count", cols.Len())
	m.status.Set("Columns saved")
}

// saveNavigation remembers the browser position for the next run.
func (m Model) saveNavigation() {
	if m.state == nil {
		return
	}
	nav := m.panels.FileNav()
	m.state.SaveNavigation(state.NavigationState{
		Folder:   nav.Current().ID(),
		Selected: nav.SelectedID(),
	})
}
