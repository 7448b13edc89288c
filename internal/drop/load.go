package drop

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/hnl/internal/track"
	"github.com/llehouerou/hnl/internal/tracklist"
)

// Reader reads the metadata of one file.
type Reader interface {
	Read(path string) (*track.Record, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(path string) (*track.Record, error)

// Read implements Reader.
func (f ReaderFunc) Read(path string) (*track.Record, error) { return f(path) }

// Result is the outcome of loading a drop.
type Result struct {
	Records []*track.Record
	Skipped int   // files that could not be read
	Err     error // set when loading was cancelled
}

// Loader reads dropped paths into records.
type Loader struct {
	Reader Reader
	Log    *log.Logger
}

// NewLoader creates a loader. A nil logger discards output.
func NewLoader(r Reader, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Reader: r, Log: logger}
}

// Load expands paths and reads each file in order. Files that fail to read
// are skipped and counted. Cancelling ctx stops loading and returns what was
// read so far with the context error.
func (l *Loader) Load(ctx context.Context, paths []string) Result {
	files, err := Expand(ctx, paths)
	res := Result{Err: err}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		rec, err := l.Reader.Read(path)
		if err != nil {
			res.Skipped++
			l.Log.Debug("skipping dropped file", "path", path, "err", err)
			continue
		}
		res.Records = append(res.Records, rec)
	}
	l.Log.Info("drop loaded", "paths", len(paths), "tracks", len(res.Records), "skipped", res.Skipped)
	return res
}

// Load reads paths with r. See Loader.Load.
func Load(ctx context.Context, r Reader, paths []string) Result {
	return NewLoader(r, nil).Load(ctx, paths)
}

// LoadedMsg carries loaded records back to the event loop, which inserts
// them at Index. When Ticket is set, the insertion point was tracked by a
// Pending and its current position wins over Index.
type LoadedMsg struct {
	Index  int
	Ticket int
	Result
}

// Cmd loads paths in the background. The records are inserted by whoever
// handles the LoadedMsg, so the list is only mutated on the event loop.
func (l *Loader) Cmd(ctx context.Context, paths []string, index int) tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{Index: index, Result: l.Load(ctx, paths)}
	}
}

// Insert adds recs to the list in order, starting at index. A negative index
// appends. It returns the index just after the last inserted record.
func Insert(l *tracklist.List, index int, recs []*track.Record) int {
	if index < 0 || index > l.Len() {
		index = l.Len()
	}
	return l.InsertAll(index, recs...) + len(recs)
}
