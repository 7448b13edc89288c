package app

import (
	"github.com/llehouerou/hnl/internal/ui"
	"github.com/llehouerou/hnl/internal/ui/headerbar"
	"github.com/llehouerou/hnl/internal/ui/layout"
)

// Rect is a screen area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// LayoutManager holds the window dimensions and splits them between the
// panels: the file browser takes a third of the width on the left, the
// playlist the rest. Narrow terminals show the playlist alone.
type LayoutManager struct {
	width  int
	height int
}

// SetSize updates the window dimensions.
func (l *LayoutManager) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the window width.
func (l LayoutManager) Width() int {
	return l.width
}

// Height returns the window height.
func (l LayoutManager) Height() int {
	return l.height
}

// NavigatorShown reports whether the window is wide enough for the file
// browser.
func (l LayoutManager) NavigatorShown() bool {
	return layout.NavigatorVisible(l.width, ui.MinNavigatorWidth)
}

// PanelHeight returns the height shared by both panels.
func (l LayoutManager) PanelHeight() int {
	return layout.ContentHeight(l.height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		StatusHeight: ui.StatusHeight,
	})
}

// NavigatorRect returns the file browser area, empty when hidden.
func (l LayoutManager) NavigatorRect() Rect {
	if !l.NavigatorShown() {
		return Rect{Y: headerbar.Height}
	}
	return Rect{
		Y:      headerbar.Height,
		Width:  layout.NavigatorWidth(l.width, ui.NavigatorWidthDivisor, true),
		Height: l.PanelHeight(),
	}
}

// PlaylistRect returns the playlist area.
func (l LayoutManager) PlaylistRect() Rect {
	nav := l.NavigatorRect()
	return Rect{
		X:      nav.Width,
		Y:      headerbar.Height,
		Width:  layout.PlaylistWidth(l.width, nav.Width),
		Height: l.PanelHeight(),
	}
}

// StatusRow returns the screen line of the status line.
func (l LayoutManager) StatusRow() int {
	return headerbar.Height + l.PanelHeight()
}
