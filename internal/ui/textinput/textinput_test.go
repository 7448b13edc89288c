package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/ui/action"
	"github.com/llehouerou/hnl/internal/ui/testutil"
)

const testContext = "test-ctx"

func newTestInput(title, initialText string, context any) *testutil.PopupHarness {
	h := testutil.NewPopupHarness(New(title, "", initialText, context))
	h.SetSize(60, 10)
	return h
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	msgs := h.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		actionMsg, ok := msgs[i].(action.Msg)
		if !ok {
			continue
		}
		if actionMsg.Source != Source {
			t.Errorf("Source = %q, want %q", actionMsg.Source, Source)
		}
		result, ok := actionMsg.Action.(Result)
		if !ok {
			t.Fatalf("expected Result, got %T", actionMsg.Action)
		}
		return result
	}
	t.Fatal("expected a result message")
	return Result{}
}

func TestTextInput_TypeCharacters(t *testing.T) {
	h := newTestInput("Name", "", nil)

	h.Type("hello")
	h.Press("enter")

	result := getResult(t, h)
	if result.Text != "hello" {
		t.Errorf("Text = %q, want %q", result.Text, "hello")
	}
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
}

func TestTextInput_InitialText(t *testing.T) {
	h := newTestInput("Edit", "initial", nil)

	h.Press("enter")

	if result := getResult(t, h); result.Text != "initial" {
		t.Errorf("Text = %q, want %q", result.Text, "initial")
	}
}

func TestTextInput_AppendToInitialText(t *testing.T) {
	h := newTestInput("Edit", "hello", nil)

	h.Type(" world")
	h.Press("enter")

	if result := getResult(t, h); result.Text != "hello world" {
		t.Errorf("Text = %q, want %q", result.Text, "hello world")
	}
}

func TestTextInput_Backspace(t *testing.T) {
	h := newTestInput("Edit", "hello", nil)

	h.Press("backspace", "backspace", "enter")

	if result := getResult(t, h); result.Text != "hel" {
		t.Errorf("Text = %q, want %q", result.Text, "hel")
	}
}

func TestTextInput_BackspaceOnEmpty(t *testing.T) {
	h := newTestInput("Name", "", nil)

	h.Press("backspace", "backspace", "enter")

	if result := getResult(t, h); result.Text != "" {
		t.Errorf("Text = %q, want empty", result.Text)
	}
}

func TestTextInput_Cancel(t *testing.T) {
	h := newTestInput("Name", "typed", testContext)

	h.Press("esc")

	result := getResult(t, h)
	if !result.Canceled {
		t.Error("expected Canceled=true")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestTextInput_ContextPassthrough(t *testing.T) {
	h := newTestInput("Title", "", testContext)

	h.Type("x")
	h.Press("enter")

	if result := getResult(t, h); result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestTextInput_PasteIsText(t *testing.T) {
	h := newTestInput("Add location", "", nil)

	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/music/a b.flac"), Paste: true})
	h.Press("enter")

	if result := getResult(t, h); result.Text != "/music/a b.flac" {
		t.Errorf("Text = %q, want pasted path", result.Text)
	}
}

func TestTextInput_View(t *testing.T) {
	h := testutil.NewPopupHarness(New("Add location", "File or folder path", "", nil))
	h.SetSize(60, 10)
	h.Type("test")

	if !h.ViewContains("File or folder path") {
		t.Errorf("view misses the hint: %q", h.View())
	}
	if !h.ViewContains("> test") {
		t.Errorf("view misses the typed text: %q", h.View())
	}
}

func TestTextInput_EmptyViewWhenNoSize(t *testing.T) {
	h := testutil.NewPopupHarness(New("Title", "", "", nil))

	if h.View() != "" {
		t.Errorf("View = %q, want empty when size is 0", h.View())
	}
}

func TestTextInput_Frame(t *testing.T) {
	m := New("Add location", "", "", nil)
	if got := m.Frame().Title; got != "Add location" {
		t.Errorf("Frame().Title = %q", got)
	}
}
