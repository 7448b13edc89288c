// Package errorbox is the application's last line of defence: it turns a
// panic inside one event-processing step into an error, and shows
// unexpected errors in a dialog while the program keeps running.
package errorbox

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PanicError is a recovered panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Guard runs one update step. A panic inside fn is recovered and returned
// as a *PanicError with a nil model and command.
func Guard(fn func() (tea.Model, tea.Cmd)) (model tea.Model, cmd tea.Cmd, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, cmd = nil, nil
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	model, cmd = fn()
	return model, cmd, nil
}

// Details describes err for the details view: the stack for a panic,
// otherwise every error in the wrap chain, outermost first.
func Details(err error) string {
	if err == nil {
		return ""
	}
	var p *PanicError
	if errors.As(err, &p) {
		return p.Error() + "\n\n" + string(p.Stack)
	}

	var b strings.Builder
	writeChain(&b, err, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeChain(b *strings.Builder, err error, depth int) {
	for ; err != nil; depth++ {
		fmt.Fprintf(b, "%s%T: %s\n", strings.Repeat("  ", depth), err, err.Error())
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				writeChain(b, inner, depth+1)
			}
			return
		}
		err = errors.Unwrap(err)
	}
}
