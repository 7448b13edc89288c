// Package keymap defines key bindings for the application.
package keymap

// Binding contexts. A context names the panel or dialog that must have
// focus for the binding to apply.
const (
	ContextGlobal    = "global"
	ContextNavigator = "navigator"
	ContextPlaylist  = "playlist"
	ContextColumns   = "columns"
	ContextColumnRow = "columns_table"
	ContextError     = "error"
	ContextConfirm   = "confirm"
	ContextPrompt    = "prompt"
)

// Contexts lists every context in help display order.
var Contexts = []string{
	ContextGlobal,
	ContextNavigator,
	ContextPlaylist,
	ContextColumns,
	ContextColumnRow,
	ContextConfirm,
	ContextPrompt,
	ContextError,
}

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains every key binding, used for dispatch and help.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionSwitchFocus, []string{"tab", "shift+tab"}, "Switch focus", ContextGlobal},
	{ActionConfigureColumns, []string{"C", "f2"}, "Configure columns", ContextGlobal},
	{ActionAddLocation, []string{"ctrl+o"}, "Add file or folder by path", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Navigator
	{ActionMoveLeft, []string{"h", "left", "backspace"}, "Parent folder", ContextNavigator},
	{ActionMoveRight, []string{"l", "right"}, "Enter folder", ContextNavigator},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextNavigator},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextNavigator},
	{ActionJumpStart, []string{"g", "home"}, "First entry", ContextNavigator},
	{ActionJumpEnd, []string{"G", "end"}, "Last entry", ContextNavigator},
	{ActionAddAtCursor, []string{"a", "enter"}, "Drop at playlist cursor", ContextNavigator},
	{ActionAppend, []string{"A"}, "Append to playlist", ContextNavigator},
	{ActionToggleHidden, []string{"."}, "Show hidden files", ContextNavigator},

	// Playlist
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextPlaylist},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextPlaylist},
	{ActionJumpStart, []string{"g", "home"}, "First track", ContextPlaylist},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", ContextPlaylist},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Page down", ContextPlaylist},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Page up", ContextPlaylist},
	{ActionPlay, []string{"enter"}, "Play track", ContextPlaylist},
	{ActionToggleSelect, []string{"x", " "}, "Toggle selection", ContextPlaylist},
	{ActionExtendSelect, []string{"V"}, "Extend selection", ContextPlaylist},
	{ActionClearSelect, []string{"esc"}, "Clear selection", ContextPlaylist},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move selection down", ContextPlaylist},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move selection up", ContextPlaylist},
	{ActionMark, []string{"m"}, "Mark selection for moving", ContextPlaylist},
	{ActionPutBefore, []string{"p"}, "Move marked before cursor", ContextPlaylist},
	{ActionPutAfter, []string{"P"}, "Move marked after cursor", ContextPlaylist},
	{ActionDelete, []string{"d", "delete"}, "Remove selection", ContextPlaylist},
	{ActionClearPlaylist, []string{"X"}, "Clear playlist", ContextPlaylist},
	{ActionRevealPlaying, []string{"o"}, "Go to playing track", ContextPlaylist},

	// Column dialog
	{ActionMoveDown, []string{"down"}, "Next column", ContextColumns},
	{ActionMoveUp, []string{"up"}, "Previous column", ContextColumns},
	{ActionNextField, []string{"tab"}, "Next field", ContextColumns},
	{ActionPrevField, []string{"shift+tab"}, "Previous field", ContextColumns},
	{ActionToggleEdit, []string{"enter"}, "Edit column / back to list", ContextColumns},
	{ActionAddColumn, []string{"ctrl+n"}, "Add new column", ContextColumns},
	{ActionDeleteColumn, []string{"ctrl+d"}, "Delete column", ContextColumns},
	{ActionResetColumns, []string{"ctrl+r"}, "Reset", ContextColumns},
	{ActionSave, []string{"ctrl+s"}, "Save", ContextColumns},
	{ActionCancel, []string{"esc"}, "Cancel", ContextColumns},

	// Column dialog, column list focused
	{ActionMoveDown, []string{"j"}, "Next column", ContextColumnRow},
	{ActionMoveUp, []string{"k"}, "Previous column", ContextColumnRow},

	// Error dialog
	{ActionToggleDetails, []string{"d"}, "Show/hide details", ContextError},
	{ActionDismiss, []string{"enter", "esc"}, "Dismiss", ContextError},

	// Confirmation
	{ActionConfirm, []string{"y", "enter"}, "Confirm", ContextConfirm},
	{ActionCancel, []string{"n", "esc"}, "Cancel", ContextConfirm},

	// Prompt
	{ActionSubmit, []string{"enter"}, "Confirm", ContextPrompt},
	{ActionCancel, []string{"esc"}, "Cancel", ContextPrompt},
}

// ByContext returns the bindings of the given contexts, in table order.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		for _, c := range contexts {
			if kb.Context == c {
				result = append(result, kb)
				break
			}
		}
	}
	return result
}
