package config

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// settleDelay lets editors finish writing before the file is re-read.
const settleDelay = 100 * time.Millisecond

// ChangedMsg is sent when the watched config file was written.
type ChangedMsg struct {
	Path string
}

// WatchErrorMsg carries an error reported by the watcher.
type WatchErrorMsg struct {
	Err error
}

// Watcher reports writes to one config file. It watches the parent
// directory so that editors replacing the file are noticed too.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", abs, err)
	}
	return &Watcher{path: abs, w: w}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string { return w.path }

// Next returns a command that blocks until the next change or error.
// Callers re-issue it after handling each message.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.w.Events:
				if !ok {
					return nil
				}
				if !w.relevant(event) {
					continue
				}
				time.Sleep(settleDelay)
				return ChangedMsg{Path: w.path}
			case err, ok := <-w.w.Errors:
				if !ok {
					return nil
				}
				return WatchErrorMsg{Err: err}
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}
