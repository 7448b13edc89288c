// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/hnl/internal/apperr"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpDropLoad     Op = "load dropped files"
	OpTrackMove    Op = "move tracks"
	OpTrackRemove  Op = "remove tracks"
	OpTrackPlay    Op = "play track"
	OpTitleFormat  Op = "format window title"
	OpPasteParse   Op = "read pasted paths"
	OpAddLocation  Op = "add location"
	OpFolderBrowse Op = "open folder"

	// Column operations
	OpColumnAdd     Op = "add column"
	OpColumnDelete  Op = "delete column"
	OpColumnFormat  Op = "compile column format"
	OpColumnWidth   Op = "set column width"
	OpColumnsSave   Op = "save columns"
	OpColumnsReload Op = "reload columns"

	// Config
	OpConfigLoad  Op = "load config"
	OpConfigWatch Op = "watch config"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Status formats an error for the status line. Benign errors already read
// as a sentence and are shown as they are.
func Status(op Op, err error) string {
	if err == nil {
		return ""
	}
	if apperr.IsBenign(err) {
		return err.Error()
	}
	return Format(op, err)
}
