package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/apperr"
	"github.com/llehouerou/hnl/internal/errmsg"
)

// report handles an error returned by an operation. Benign errors only
// reach the status line; anything else is logged and opens the error
// dialog.
func (m Model) report(op errmsg.Op, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if apperr.IsBenign(err) {
		m.log.Debug("operation refused", "op", op, "err", err)
		m.status.SetError(errmsg.Status(op, err))
		return nil
	}
	m.log.Error("operation failed", "op", op, "err", err)
	m.status.SetError(errmsg.Format(op, err))
	return m.popups.ShowError(fmt.Errorf("%s: %w", op, err))
}

// notify puts an expected failure, such as an unreadable file, on the
// status line.
func (m Model) notify(op errmsg.Op, err error) {
	if err == nil {
		return
	}
	m.log.Warn("operation failed", "op", op, "err", err)
	m.status.SetError(errmsg.Status(op, err))
}
