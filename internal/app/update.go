package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/config"
	"github.com/llehouerou/hnl/internal/drop"
	"github.com/llehouerou/hnl/internal/errmsg"
	"github.com/llehouerou/hnl/internal/icons"
	"github.com/llehouerou/hnl/internal/titleformat"
	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/errorbox"
)

// Update handles one message. A panic while handling it is recovered,
// logged, and shown in the error dialog; the program keeps running.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd, err := errorbox.Guard(func() (tea.Model, tea.Cmd) {
		return m.update(msg)
	})
	if err != nil {
		m.log.Error("recovered from panic", "msg", fmt.Sprintf("%T", msg), "err", err)
		m.log.Debug(errorbox.Details(err))
		m.status.SetError("Internal error")
		return m, m.popups.ShowError(err)
	}
	return model, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case drop.LoadedMsg:
		return m.handleLoaded(msg)

	case config.ChangedMsg:
		return m.handleConfigChanged(msg)

	case config.WatchErrorMsg:
		m.notify(errmsg.OpConfigWatch, msg.Err)
		return m, m.watchNext()
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.layout.SetSize(width, height)
	m.panels.SetNavigatorShown(m.layout.NavigatorShown())
	m.panels.Resize(
		m.layout.NavigatorRect().Width,
		m.layout.PlaylistRect().Width,
		m.layout.PanelHeight(),
	)
	m.popups.SetSize(width, height)
}

// dropPaths starts loading paths in the background for insertion at index.
func (m Model) dropPaths(paths []string, index int) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	m.jobs.loading++
	return m.loader.CmdAt(m.ctx, m.pending, paths, index)
}

func (m Model) handleLoaded(msg drop.LoadedMsg) (tea.Model, tea.Cmd) {
	m.jobs.loading = max(m.jobs.loading-1, 0)
	index := msg.Index
	if msg.Ticket != 0 {
		if i, ok := m.pending.Take(msg.Ticket); ok {
			index = i
		}
	}
	if errors.Is(msg.Err, context.Canceled) {
		return m, nil
	}

	if n := len(msg.Records); n > 0 {
		if index < 0 || index > m.list.Len() {
			index = m.list.Len()
		}
		drop.Insert(m.list, index, msg.Records)
		rows := make([]int, n)
		for i := range rows {
			rows[i] = index + i
		}
		m.panels.Playlist().SetSelection(rows...)
	}

	switch {
	case msg.Err != nil:
		m.notify(errmsg.OpDropLoad, msg.Err)
	case len(msg.Records) == 0 && msg.Skipped > 0:
		m.status.SetError(fmt.Sprintf("No playable tracks (%d %s skipped)", msg.Skipped, plural(msg.Skipped, "file")))
	case msg.Skipped > 0:
		m.status.Set(fmt.Sprintf("Added %s, %d skipped", count(len(msg.Records), "track"), msg.Skipped))
	case len(msg.Records) > 0:
		m.status.Set("Added " + count(len(msg.Records), "track"))
	}
	return m, nil
}

// handleConfigChanged reloads the settings that apply live: columns, title
// format and icons. A setting that fails keeps its current value.
func (m Model) handleConfigChanged(msg config.ChangedMsg) (tea.Model, tea.Cmd) {
	m.log.Info("config changed", "path", msg.Path)
	cfg, err := config.Load(m.cfg.Path)
	if err != nil {
		m.notify(errmsg.OpConfigLoad, err)
		return m, m.watchNext()
	}

	if cols, err := columns.FromConfig(cfg.Columns); err != nil {
		m.notify(errmsg.OpColumnsReload, err)
	} else {
		m.panels.Playlist().SetColumns(cols)
	}
	if title, err := titleformat.Compile(cfg.TitleFormat); err != nil {
		m.notify(errmsg.OpTitleFormat, err)
	} else {
		m.title = title
	}
	icons.Init(cfg.Icons)

	cfg.Path = m.cfg.Path
	m.cfg = cfg
	if !m.status.IsError() {
		m.status.Set("Config reloaded")
	}
	return m, m.watchNext()
}

func (m Model) watchNext() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

func count(n int, noun string) string {
	return fmt.Sprintf("%d %s", n, plural(n, noun))
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
