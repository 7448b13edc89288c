// Package navctl tracks which panel has focus and owns the two panels.
package navctl

import "github.com/llehouerou/hnl/internal/ui/headerbar"

// FocusTarget represents which panel has focus.
type FocusTarget int

const (
	// FocusNavigator indicates the file browser has focus.
	FocusNavigator FocusTarget = iota
	// FocusPlaylist indicates the playlist has focus.
	FocusPlaylist
)

// String returns the header bar name of the panel.
func (f FocusTarget) String() string {
	if f == FocusNavigator {
		return headerbar.PanelFiles
	}
	return headerbar.PanelPlaylist
}
