// Package headerbar renders the one-line bar above the panels.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/hnl/internal/ui/render"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Panel names used by Info.Focus.
const (
	PanelFiles    = "files"
	PanelPlaylist = "playlist"
)

// tab represents a header bar tab.
type tab struct {
	name  string
	panel string
}

var tabs = []tab{
	{"Files", PanelFiles},
	{"Playlist", PanelPlaylist},
}

// Info is what the bar shows.
type Info struct {
	Focus   string // PanelFiles or PanelPlaylist
	Tracks  int
	Loading int // drops whose metadata is still being read
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.panel == info.Focus {
			parts = append(parts, s.Title.Render(t.name))
			continue
		}
		parts = append(parts, s.Muted.Render(t.name))
	}
	left := " " + styles.Gradient("hnl") + "  " + strings.Join(parts, s.Subtle.Render(" │ "))

	right := trackCount(info.Tracks)
	if info.Loading > 0 {
		right = "loading… " + right
	}
	right = s.Muted.Render(right) + " "

	if lipgloss.Width(left)+lipgloss.Width(right) > width {
		return ansi.Truncate(left, width, "…")
	}
	return render.Row(left, right, width)
}

func trackCount(n int) string {
	if n == 1 {
		return "1 track"
	}
	return fmt.Sprintf("%d tracks", n)
}
