package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/columns"
	"github.com/llehouerou/hnl/internal/titleformat"
	"github.com/llehouerou/hnl/internal/ui/columnsdialog"
	"github.com/llehouerou/hnl/internal/ui/confirm"
	"github.com/llehouerou/hnl/internal/ui/errorbox"
	"github.com/llehouerou/hnl/internal/ui/helpbindings"
	"github.com/llehouerou/hnl/internal/ui/popup"
	"github.com/llehouerou/hnl/internal/ui/textinput"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups map[Type]popup.Popup
	width  int
	height int
}

// New creates a Manager with no popup open.
func New() *Manager {
	return &Manager{popups: make(map[Type]popup.Popup)}
}

// SetSize updates the screen size and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(t)
		pop.SetSize(w, h)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	return t != None && p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type, replacing any open one of the
// same type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(t)
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

func (p *Manager) contentSize(t Type) (width, height int) {
	width = max(p.width-frameWidth, 1)
	if limit := sizes[t].maxWidth; limit > 0 {
		width = min(width, limit)
	}
	return width, max(p.height-frameHeight, 1)
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the key bindings of the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	return p.Show(Help, helpbindings.New(contexts...))
}

// ShowColumns opens the column configuration dialog on a copy of cols.
// sample is the track the preview formats; pass a nil interface for none.
func (p *Manager) ShowColumns(cols *columns.Set, sample titleformat.Fields) tea.Cmd {
	return p.Show(Columns, columnsdialog.New(cols, sample))
}

// ShowConfirm asks a yes/no question. context comes back in the
// confirm.Result.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	return p.Show(Confirm, confirm.New(title, message, context))
}

// ShowPrompt asks for a line of text. context comes back in the
// textinput.Result.
func (p *Manager) ShowPrompt(title, hint, initial string, context any) tea.Cmd {
	return p.Show(Prompt, textinput.New(title, hint, initial, context))
}

// ShowError opens the internal error dialog. An error dialog that is
// already open keeps its error.
func (p *Manager) ShowError(err error) tea.Cmd {
	if p.IsVisible(Error) {
		return nil
	}
	return p.Show(Error, errorbox.New(err))
}

// --- Accessors ---

// ColumnsDialog returns the open column dialog, or nil.
func (p *Manager) ColumnsDialog() *columnsdialog.Model {
	if d, ok := p.popups[Columns].(*columnsdialog.Model); ok {
		return d
	}
	return nil
}

// ErrorBox returns the open error dialog, or nil.
func (p *Manager) ErrorBox() *errorbox.Model {
	if e, ok := p.popups[Error].(*errorbox.Model); ok {
		return e
	}
	return nil
}

// --- Input Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// --- Rendering ---

// RenderOverlay renders the open popups on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		var frame popup.Frame
		if f, ok := pop.(popup.Framed); ok {
			frame = f.Frame()
		}
		base = popup.Compose(base, frame.Render(pop.View(), p.width, p.height), p.width)
	}
	return base
}
