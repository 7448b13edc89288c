// Package handler runs a message through an ordered list of handlers until
// one of them claims it.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler passes the message on.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the message was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle msg.
type Handler[M tea.Msg] func(msg M) Result

// Chain offers msg to each handler in order and stops at the first that
// handles it.
func Chain[M tea.Msg](msg M, handlers ...Handler[M]) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
