package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/ui/popup"
)

// PopupHarness drives a popup.Popup and records the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the current popup value for type assertions.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize forwards to the popup.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the popup body with styling stripped.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// ViewContains reports whether the unstyled view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(h.View(), substr)
}

// Send delivers msg and returns the command it produced.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press sends the named keys in order (see Key) and returns the command
// produced by the last one.
func (h *PopupHarness) Press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.Send(Key(k))
	}
	return cmd
}

// Type sends each rune of s as its own key press.
func (h *PopupHarness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Commands returns every command captured so far.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// Messages runs all captured commands and returns their messages, then
// forgets the commands.
func (h *PopupHarness) Messages() []tea.Msg {
	var out []tea.Msg
	for _, c := range h.cmds {
		out = append(out, Run(c)...)
	}
	h.cmds = nil
	return out
}
