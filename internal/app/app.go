// Package app is the root bubbletea model. It composes the header bar, the
// file browser, the playlist, the status line and the popups.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/hnl/internal/app/navctl"
	"github.com/llehouerou/hnl/internal/app/popupctl"
	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/config"
	"github.com/llehouerou/hnl/internal/drop"
	"github.com/llehouerou/hnl/internal/errmsg"
	"github.com/llehouerou/hnl/internal/logging"
	"github.com/llehouerou/hnl/internal/navigator"
	"github.com/llehouerou/hnl/internal/state"
	"github.com/llehouerou/hnl/internal/tags"
	"github.com/llehouerou/hnl/internal/titleformat"
	"github.com/llehouerou/hnl/internal/tracklist"
	"github.com/llehouerou/hnl/internal/ui/playlistview"
)

// Options configures New.
type Options struct {
	Config  *config.Config
	Logger  *log.Logger     // nil discards
	Reader  drop.Reader     // nil reads tags from disk
	Watcher *config.Watcher // nil disables live reload
	State   state.Interface // nil forgets the browser position
	Paths   []string        // dropped onto the playlist at startup
}

// Model is the application state.
type Model struct {
	cfg     *config.Config
	log     *log.Logger
	layout  LayoutManager
	panels  *navctl.Manager
	list    *tracklist.List
	popups  *popupctl.Manager
	loader  *drop.Loader
	pending *drop.Pending
	watcher *config.Watcher
	state   state.Interface
	title   *titleformat.Formatter
	status  *statusLine
	jobs    *jobs
	startup []string

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce *sync.Once
}

// jobs counts work that finishes outside the event loop.
type jobs struct {
	loading int      // drops being read
	drag    []string // paths dragged out of the file browser, nil when none
}

// New builds the model. Problems with the configured columns or title
// format fall back to the defaults and are reported on the status line.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		return Model{}, errors.New("app: nil config")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	reader := opts.Reader
	if reader == nil {
		reader = tags.FileReader{AudioInfo: cfg.AudioInfoEnabled()}
	}

	status := &statusLine{}
	cols, err := columns.FromConfig(cfg.Columns)
	if err != nil {
		logger.Warn("invalid columns in config, using defaults", "err", err)
		status.SetError(errmsg.Status(errmsg.OpColumnsReload, err))
		cols = columns.Defaults()
	}
	title, err := titleformat.Compile(cfg.TitleFormat)
	if err != nil {
		logger.Warn("invalid title format, using default", "err", err)
		status.SetError(errmsg.Status(errmsg.OpTitleFormat, err))
		title = titleformat.MustCompile(config.DefaultTitleFormat)
	}

	saved := restoreNavigation(opts.State, logger)
	folder := cfg.DefaultFolder
	if saved != nil {
		folder = saved.Folder
	}
	fileNav, err := openFileBrowser(folder, cfg.DefaultFolder)
	if err != nil {
		return Model{}, err
	}
	if saved != nil && saved.Selected != "" {
		fileNav.SelectByID(saved.Selected)
	}

	list := tracklist.New()
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		cfg:       cfg,
		log:       logger,
		panels:    navctl.New(fileNav, playlistview.New(list, cols)),
		list:      list,
		popups:    popupctl.New(),
		loader:    drop.NewLoader(reader, logging.With(logger, "component", "drop")),
		pending:   drop.NewPending(list),
		watcher:   opts.Watcher,
		state:     opts.State,
		title:     title,
		status:    status,
		jobs:      &jobs{},
		startup:   opts.Paths,
		ctx:       ctx,
		cancel:    cancel,
		closeOnce: &sync.Once{},
	}, nil
}

// restoreNavigation returns the saved browser position, or nil when there
// is none or its folder is gone.
func restoreNavigation(st state.Interface, logger *log.Logger) *state.NavigationState {
	if st == nil {
		return nil
	}
	nav, err := st.GetNavigation()
	if err != nil {
		logger.Warn("read saved navigation", "err", err)
		return nil
	}
	if nav == nil {
		return nil
	}
	if fi, err := os.Stat(nav.Folder); err != nil || !fi.IsDir() {
		return nil
	}
	return nav
}

// openFileBrowser starts the file browser in the first of folders that can
// be listed, falling back to the home directory and then the working
// directory.
func openFileBrowser(folders ...string) (navigator.Model[navigator.FileNode], error) {
	candidates := slices.Clone(folders)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, home)
	}
	candidates = append(candidates, ".")

	var lastErr error
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		src, err := navigator.NewFileSource(dir)
		if err != nil {
			lastErr = err
			continue
		}
		nav, err := navigator.New[navigator.FileNode](src)
		if err != nil {
			lastErr = err
			continue
		}
		return nav, nil
	}
	return navigator.Model[navigator.FileNode]{}, fmt.Errorf("%s: %w", errmsg.OpFolderBrowse, lastErr)
}

// Init drops the startup paths and starts the config watcher.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if len(m.startup) > 0 {
		m.jobs.loading++
		cmds = append(cmds, m.loader.Cmd(m.ctx, m.startup, -1))
	}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Next())
	}
	return tea.Batch(cmds...)
}

// Close cancels background loads, stops the config watcher and flushes
// the saved browser position.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		m.cancel()
		m.pending.Close()
		m.panels.Close()
		if m.state != nil {
			if err := m.state.Close(); err != nil {
				m.log.Warn("close state", "err", err)
			}
		}
		if m.watcher != nil {
			if err := m.watcher.Close(); err != nil {
				m.log.Warn("close config watcher", "err", err)
			}
		}
	})
}

// List returns the playlist's track list.
func (m Model) List() *tracklist.List {
	return m.list
}
