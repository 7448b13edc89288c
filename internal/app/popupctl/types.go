// Package popupctl owns the modal dialogs of the application.
package popupctl

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Columns
	Help
	Prompt
	Confirm
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Confirm,
	Prompt,
	Help,
	Columns,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Columns,
	Help,
	Prompt,
	Confirm,
	Error,
}

// sizeConfig caps the body width of a popup. Zero means the screen width.
type sizeConfig struct {
	maxWidth int
}

var sizes = map[Type]sizeConfig{
	Columns: {maxWidth: 100},
	Prompt:  {maxWidth: 80},
	Confirm: {maxWidth: 60},
	Error:   {maxWidth: 72},
}

// Frame overhead around a popup body: border and padding on each side,
// border plus title and footer rows vertically.
const (
	frameWidth  = 4
	frameHeight = 6
)
