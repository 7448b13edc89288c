// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the fixed-height rows around the panels.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
}

// ContentHeight calculates the height left for the panels once the header
// and status rows are taken. Never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.StatusHeight, 0)
}

// NavigatorVisible reports whether the file browser fits beside the
// playlist at the given width.
func NavigatorVisible(windowWidth, minWidth int) bool {
	return windowWidth >= minWidth
}

// NavigatorWidth calculates the file browser width. Hidden navigators get 0.
func NavigatorWidth(windowWidth, divisor int, visible bool) int {
	if !visible || divisor <= 0 {
		return 0
	}
	return windowWidth / divisor
}

// PlaylistWidth calculates the playlist width: whatever the navigator
// leaves.
func PlaylistWidth(windowWidth, navigatorWidth int) int {
	return max(windowWidth-navigatorWidth, 0)
}
