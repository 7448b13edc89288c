// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows to keep visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// NavigatorWidthDivisor gives the file browser 1/NavigatorWidthDivisor of the
	// screen width; the playlist takes the rest.
	NavigatorWidthDivisor = 3

	// MinNavigatorWidth hides the file browser below this screen width.
	MinNavigatorWidth = 60

	// ColumnCellDivisor converts a stored column width (pixels) to terminal cells.
	ColumnCellDivisor = 6

	// MinColumnCells is the narrowest a playlist column is ever drawn.
	MinColumnCells = 3

	// StatusHeight is the height of the status line under the panels.
	StatusHeight = 1
)

// ColumnCells returns the number of terminal cells used to draw a column
// stored with the given width.
func ColumnCells(width int) int {
	return max(width/ColumnCellDivisor, MinColumnCells)
}
