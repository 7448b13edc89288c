package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders bold text whose colour moves from one end of the
// theme's accent range to the other, one step per grapheme cluster.
func Gradient(text string) string {
	return BoldGradient(text, T().Primary, T().Secondary)
}

// BoldGradient renders text in bold, blending from -> to in HCL space.
func BoldGradient(text string, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	start, errFrom := colorful.Hex(string(from))
	end, errTo := colorful.Hex(string(to))
	if errFrom != nil || errTo != nil {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, c := range clusters {
		hex := start.BlendHcl(end, float64(i)/last).Clamped().Hex()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(c))
	}
	return b.String()
}

func graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
