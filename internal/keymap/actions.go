// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit             Action = "quit"
	ActionSwitchFocus      Action = "switch_focus"
	ActionHelp             Action = "help"
	ActionConfigureColumns Action = "configure_columns"
	ActionAddLocation      Action = "add_location"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Navigator actions
	ActionAddAtCursor  Action = "add_at_cursor" // a - drop before the playlist cursor
	ActionAppend       Action = "append"        // A - drop at the end of the playlist
	ActionToggleHidden Action = "toggle_hidden" // .

	// Playlist actions
	ActionPlay          Action = "play"           // enter
	ActionToggleSelect  Action = "toggle_select"  // x
	ActionExtendSelect  Action = "extend_select"  // V
	ActionClearSelect   Action = "clear_select"   // esc
	ActionMoveItemUp    Action = "move_item_up"   // K
	ActionMoveItemDown  Action = "move_item_down" // J
	ActionMark          Action = "mark"           // m
	ActionPutBefore     Action = "put_before"     // p
	ActionPutAfter      Action = "put_after"      // P
	ActionDelete        Action = "delete"         // d
	ActionClearPlaylist Action = "clear_playlist" // X
	ActionRevealPlaying Action = "reveal_playing" // o

	// Column dialog actions
	ActionAddColumn    Action = "add_column"
	ActionDeleteColumn Action = "delete_column"
	ActionResetColumns Action = "reset_columns"
	ActionSave         Action = "save"
	ActionNextField    Action = "next_field"
	ActionPrevField    Action = "prev_field"
	ActionToggleEdit   Action = "toggle_edit"
	ActionCancel       Action = "cancel"

	// Error dialog actions
	ActionToggleDetails Action = "toggle_details"
	ActionDismiss       Action = "dismiss"

	// Confirmation actions
	ActionConfirm Action = "confirm"

	// Prompt actions
	ActionSubmit Action = "submit"
)
