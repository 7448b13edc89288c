package playlistview

import (
	"github.com/llehouerou/hnl/internal/errmsg"
	"github.com/llehouerou/hnl/internal/track"
	"github.com/llehouerou/hnl/internal/ui/action"
)

// Source is the action.Msg source name of the playlist view.
const Source = "playlist"

// Play asks the application to start the track at Index.
type Play struct {
	Index  int
	Record *track.Record
}

// ActionType implements action.Action.
func (Play) ActionType() string { return "playlist.play" }

// DropPaths asks the application to load Paths and insert the tracks at
// Index (negative appends). Err reports payload entries that were rejected.
type DropPaths struct {
	Paths []string
	Index int
	Err   error
}

// ActionType implements action.Action.
func (DropPaths) ActionType() string { return "playlist.drop_paths" }

// Moved reports a run of Count tracks now starting at To.
type Moved struct {
	Count int
	To    int
}

// ActionType implements action.Action.
func (Moved) ActionType() string { return "playlist.moved" }

// Removed reports that Count tracks were deleted.
type Removed struct {
	Count int
}

// ActionType implements action.Action.
func (Removed) ActionType() string { return "playlist.removed" }

// ClearRequested asks the application to empty the list of its Count
// tracks, typically after confirming with the user.
type ClearRequested struct {
	Count int
}

// ActionType implements action.Action.
func (ClearRequested) ActionType() string { return "playlist.clear_requested" }

// Failed reports a list operation that returned an error.
type Failed struct {
	Op  errmsg.Op
	Err error
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "playlist.failed" }

// ActionMsg wraps a as a message from the playlist view.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
