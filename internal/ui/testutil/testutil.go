// Package testutil has helpers for testing rendered UI output and
// driving bubbletea components from tests.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the display width of s in cells.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// NormalizeWhitespace collapses runs of whitespace into one space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FindLine returns the first line of output containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// SplitLines strips styling and splits output into lines, dropping
// trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

var specialKeys = map[string]tea.KeyType{
	"enter":      tea.KeyEnter,
	"esc":        tea.KeyEscape,
	"tab":        tea.KeyTab,
	"shift+tab":  tea.KeyShiftTab,
	"backspace":  tea.KeyBackspace,
	"delete":     tea.KeyDelete,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"home":       tea.KeyHome,
	"end":        tea.KeyEnd,
	"pgup":       tea.KeyPgUp,
	"pgdown":     tea.KeyPgDown,
	"shift+up":   tea.KeyShiftUp,
	"shift+down": tea.KeyShiftDown,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+d":     tea.KeyCtrlD,
	"ctrl+n":     tea.KeyCtrlN,
	"ctrl+r":     tea.KeyCtrlR,
	"ctrl+s":     tea.KeyCtrlS,
	"ctrl+o":     tea.KeyCtrlO,
	"ctrl+u":     tea.KeyCtrlU,
}

// Key builds the KeyMsg whose String() is name, e.g. "enter", "ctrl+s"
// or "J". Anything not listed as a special key is sent as runes.
func Key(name string) tea.KeyMsg {
	if kt, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Click is a left button press at x, y.
func Click(x, y int) tea.MouseMsg {
	return Mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress)
}

// Mouse builds a mouse event.
func Mouse(x, y int, button tea.MouseButton, act tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: act}
}

// Run executes cmd and returns its message, flattening batches into the
// first non-nil message of each command.
func Run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Run(c)...)
	}
	return out
}
