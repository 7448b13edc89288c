// Package popup draws modal dialogs and lays them over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/hnl/internal/ui/styles"
)

// Frame describes the box around a popup body.
type Frame struct {
	Title  string
	Footer string
	Width  int // outer width; 0 fits the content
	Accent lipgloss.Color
}

// Render boxes body in a rounded border with the title on top and the
// footer underneath, then centres the box on a screenW x screenH canvas.
func (f Frame) Render(body string, screenW, screenH int) string {
	t := styles.T()
	accent := f.Accent
	if accent == "" {
		accent = t.BorderFocus
	}

	inner := f.Width - 4
	if f.Width <= 0 {
		inner = max(maxLineWidth(body), lipgloss.Width(f.Title), lipgloss.Width(f.Footer))
	}
	inner = max(min(inner, screenW-4), 1)

	var lines []string
	if f.Title != "" {
		lines = append(lines, centerLine(t.S().Title.Foreground(accent).Render(f.Title), inner), "")
	}
	for line := range strings.SplitSeq(body, "\n") {
		if lipgloss.Width(line) > inner {
			line = ansi.Truncate(line, inner, "…")
		}
		lines = append(lines, line)
	}
	if f.Footer != "" {
		lines = append(lines, "", centerLine(t.S().Subtle.Render(f.Footer), inner))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(lines, "\n"))
	return Center(box, screenW, screenH)
}

// Center places content in the middle of a screenW x screenH canvas.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-maxLineWidth(content))/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	left := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(left)
		b.WriteString(line)
	}
	return b.String()
}

// Compose lays overlay on top of base. Blank overlay lines leave the base
// untouched; elsewhere the visible span of the overlay line replaces the
// same columns of the base. Both inputs may carry ANSI styling.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(plain) - len(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Truncate(under, start, "")
		if w := ansi.StringWidth(prefix); w < start {
			// a wide rune straddled the edge
			prefix += strings.Repeat(" ", start-w)
		}
		out := prefix + "\x1b[0m" + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix = strings.Repeat(" ", width-end-w) + suffix
			}
			out += suffix
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}
