package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBoldGradientKeepsText(t *testing.T) {
	tests := []string{"hnl", "é́x", "x", ""}
	for _, text := range tests {
		got := BoldGradient(text, "#a78bfa", "#f1a208")
		assert.Equal(t, text, ansi.Strip(got))
	}
}

func TestBoldGradientBadColours(t *testing.T) {
	got := BoldGradient("abc", "39", "#ffffff")
	assert.Equal(t, "abc", ansi.Strip(got))
}

func TestGraphemes(t *testing.T) {
	assert.Len(t, graphemes("ab🇫🇷"), 3)
	assert.Empty(t, graphemes(""))
}

func TestStylesAreCached(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}

func TestPanelStyleBorderColour(t *testing.T) {
	assert.Equal(t, T().BorderFocus, PanelStyle(true).GetBorderTopForeground())
	assert.Equal(t, T().Border, PanelStyle(false).GetBorderTopForeground())
}
