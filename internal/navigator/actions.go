package navigator

import (
	"github.com/llehouerou/hnl/internal/ui/action"
)

// SourceName is the action.Msg source name of the navigator.
const SourceName = "navigator"

// NavigationChanged signals that the navigation path or selection has changed.
type NavigationChanged struct {
	CurrentPath  string
	SelectedName string
}

// ActionType implements action.Action.
func (a NavigationChanged) ActionType() string { return "navigator.navigation_changed" }

// AddPaths asks the application to drop Paths onto the playlist, before the
// playlist cursor or at the end when Append is set.
type AddPaths struct {
	Paths  []string
	Append bool
}

// ActionType implements action.Action.
func (a AddPaths) ActionType() string { return "navigator.add_paths" }

// ListFailed reports a container that could not be listed.
type ListFailed struct {
	Path string
	Err  error
}

// ActionType implements action.Action.
func (a ListFailed) ActionType() string { return "navigator.list_failed" }

// DragStart reports a left press on an entry. The application follows the
// pointer and drops Paths where the button is released.
type DragStart struct {
	Paths []string
}

// ActionType implements action.Action.
func (a DragStart) ActionType() string { return "navigator.drag_start" }

// ActionMsg creates an action.Msg for a navigator action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: SourceName, Action: a}
}
