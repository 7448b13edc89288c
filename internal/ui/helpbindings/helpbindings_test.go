package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/testutil"
)

func newTestHelpPopup(height int, contexts ...string) (*Model, *testutil.PopupHarness) {
	m := New(contexts...)
	m.SetSize(80, height)
	return m, testutil.NewPopupHarness(m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msgs := h.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	actionMsg, ok := msgs[0].(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msgs[0])
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?", "enter"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelpPopup(20)
			h.Press(key)
			assertClosed(t, h)
		})
	}
}

func TestHelpBindings_GlobalAlwaysFirst(t *testing.T) {
	m, _ := newTestHelpPopup(100, keymap.ContextPlaylist)

	if len(m.bindings) == 0 || m.bindings[0].Context != keymap.ContextGlobal {
		t.Fatal("expected global bindings first")
	}
	for _, b := range m.bindings {
		if b.Context != keymap.ContextGlobal && b.Context != keymap.ContextPlaylist {
			t.Errorf("unexpected context %q", b.Context)
		}
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(5, keymap.ContextNavigator, keymap.ContextPlaylist)

	h.Press("j", "j")
	if m.scrollOffset != 2 {
		t.Errorf("scroll offset = %d, want 2", m.scrollOffset)
	}

	h.Press("k")
	if m.scrollOffset != 1 {
		t.Errorf("scroll offset = %d, want 1", m.scrollOffset)
	}

	h.Press("G")
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scroll offset = %d, want %d", m.scrollOffset, m.maxScroll())
	}
	h.Press("j")
	if m.scrollOffset != m.maxScroll() {
		t.Error("scrolling past the end should stop at the last page")
	}

	h.Press("g", "k")
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d, want 0 at top", m.scrollOffset)
	}
}

func TestHelpBindings_ViewHeight(t *testing.T) {
	_, h := newTestHelpPopup(5, keymap.ContextPlaylist)

	lines := strings.Split(h.View(), "\n")
	if len(lines) != 5 {
		t.Errorf("view has %d lines, want 5", len(lines))
	}
}

func TestHelpBindings_ViewShowsCategories(t *testing.T) {
	_, h := newTestHelpPopup(200, keymap.ContextNavigator, keymap.ContextPlaylist)

	for _, want := range []string{"Global", "File Browser", "Playlist", "Drop at playlist cursor", "space"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h.ViewContains("Column Configuration") {
		t.Error("columns context should not be shown")
	}
}

func TestHelpBindings_Frame(t *testing.T) {
	m, _ := newTestHelpPopup(200, keymap.ContextGlobal)
	f := m.Frame()
	if f.Title != "Help" {
		t.Errorf("title = %q, want Help", f.Title)
	}
	if f.Footer != "?/esc close" {
		t.Errorf("footer = %q without scrolling", f.Footer)
	}

	m.SetSize(80, 3)
	if !strings.Contains(m.Frame().Footer, "scroll") {
		t.Error("footer should mention scrolling when content overflows")
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	if v := m.View(); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
}
