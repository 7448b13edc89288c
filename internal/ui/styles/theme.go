// Package styles holds the colour theme and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette plus the styles built from it.
type Theme struct {
	Primary   lipgloss.Color // focus, now playing
	Secondary lipgloss.Color // drop marker, accents

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor   lipgloss.Color
	BgSelected lipgloss.Color
	BgAltRow   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles are the pre-built styles used by the panels.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style // playlist column names
	Playing  lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	AltRow   lipgloss.Style
	Marker   lipgloss.Style // drop position line
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor:   lipgloss.Color("#3a3a3a"),
	BgSelected: lipgloss.Color("#2e2648"),
	BgAltRow:   lipgloss.Color("#202020"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Header:   lipgloss.NewStyle().Foreground(t.FgMuted).Bold(true),
		Playing:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor:   lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		Selected: lipgloss.NewStyle().Background(t.BgSelected).Foreground(t.FgBase),
		AltRow:   lipgloss.NewStyle().Background(t.BgAltRow).Foreground(t.FgBase),
		Marker:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}
