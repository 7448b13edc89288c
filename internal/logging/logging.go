// Package logging builds the application logger. The terminal belongs to
// the UI, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultFile is used when debug logging is requested without a log file.
func DefaultFile() (string, error) {
	return xdg.StateFile(filepath.Join("hnl", "hnl.log"))
}

// New creates a logger writing to w with timestamps and caller reporting.
// A nil writer discards output.
func New(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// Open creates a logger appending to the file at path with the given level
// name. An empty path yields a discarding logger. The returned closer
// releases the file.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if path == "" {
		l := New(nil)
		l.SetLevel(lvl)
		return l, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := New(f)
	l.SetLevel(lvl)
	return l, f, nil
}

// With creates a child logger with the given key-value pairs added to all
// entries.
func With(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
