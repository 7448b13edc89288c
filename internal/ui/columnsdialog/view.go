package columnsdialog

import (
	"strconv"
	"strings"

	"github.com/llehouerou/hnl/internal/keymap"
	"github.com/llehouerou/hnl/internal/ui/popup"
	"github.com/llehouerou/hnl/internal/ui/render"
	"github.com/llehouerou/hnl/internal/ui/styles"
)

const (
	labelWidth = 9
	nameWidth  = 16
	widthWidth = 6
	maxRows    = 8
)

var labels = [focusCount]string{"", "Name:", "Width:", "Format:"}

// Frame returns the border decoration for the dialog.
func (m *Model) Frame() popup.Frame {
	f := popup.Frame{
		Title: "Configure Columns",
		Footer: keymap.Footer(
			keys.Hint(keymap.ActionNextField, "field"),
			keys.Hint(keymap.ActionAddColumn, "add"),
			keys.Hint(keymap.ActionDeleteColumn, "delete"),
			keys.Hint(keymap.ActionResetColumns, "reset"),
			keys.Hint(keymap.ActionSave, "save"),
			keys.Hint(keymap.ActionCancel, "cancel"),
		),
	}
	if m.Width() > 0 {
		f.Width = m.Width() + 4
	}
	return f
}

// SetSize implements popup.Popup. Width and height are the body size.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	for f := focusName; f < focusCount; f++ {
		m.inputs[f].Width = max(width-labelWidth-1, 1)
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	width := max(m.Width(), labelWidth+nameWidth+widthWidth+4)
	var b strings.Builder

	header := "  " + render.Cell("Name", nameWidth) + " " + render.Cell("Width", widthWidth) + " Format"
	b.WriteString(s.Header.Render(render.Cell(header, width)))
	b.WriteString("\n")

	cols := m.set.All()
	first := max(0, min(m.row-maxRows/2, len(cols)-maxRows))
	for i := first; i < min(first+maxRows, len(cols)); i++ {
		c := cols[i]
		prefix := "  "
		if i == m.row {
			prefix = "> "
		}
		line := prefix + render.Cell(c.Name, nameWidth) + " " +
			render.Cell(strconv.Itoa(c.Width), widthWidth) + " " + c.Template()
		line = render.Cell(line, width)
		switch {
		case i == m.row && m.focus == focusTable:
			line = s.Cursor.Render(line)
		case i == m.row:
			line = s.Title.Render(line)
		default:
			line = s.Base.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for f := focusName; f < focusCount; f++ {
		label := render.Cell(labels[f], labelWidth)
		if m.focus == f {
			label = s.Playing.Render(label)
		} else {
			label = s.Muted.Render(label)
		}
		b.WriteString(label + " " + m.inputs[f].View() + "\n")
	}

	b.WriteString(s.Muted.Render(render.Cell("Preview:", labelWidth)) + " ")
	if m.err != nil {
		b.WriteString(s.Error.Render(render.Truncate(m.err.Error(), width-labelWidth-1)))
	} else {
		b.WriteString(render.Truncate(m.preview, width-labelWidth-1))
	}
	if m.status != "" {
		b.WriteString("\n" + s.Warning.Render(render.Truncate(m.status, width)))
	}
	return b.String()
}
