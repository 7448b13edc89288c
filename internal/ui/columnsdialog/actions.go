package columnsdialog

import (
	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/ui/action"
)

// Source is the action.Msg source name of the dialog.
const Source = "columns"

// Saved carries the edited column set. The playlist adopts it as is.
type Saved struct {
	Columns *columns.Set
}

// ActionType implements action.Action.
func (Saved) ActionType() string { return "columns.saved" }

// Closed reports that the dialog was dismissed without saving.
type Closed struct{}

// ActionType implements action.Action.
func (Closed) ActionType() string { return "columns.closed" }

// ActionMsg wraps a as a message from the dialog.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
