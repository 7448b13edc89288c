// Package titleformat implements the per-track title formatting language used
// by playlist columns and the window title.
//
// A template mixes literal text with field references and functions:
//
//	%artist% - %title%
//	[%album% ]'('$num(%tracknumber%,2)')'
//	$if2(%albumartist%,%artist%)
//
// %field% looks a field up (missing fields render as "?"), 'text' is quoted
// literal text, [...] renders only when a field inside it resolved, and
// $name(arg,...) calls a function.
package titleformat

import (
	"errors"
	"fmt"
)

// Fields is the read-only view of a track used during formatting.
type Fields interface {
	Get(field string) (string, bool)
}

// CompileError reports a syntax error in a template.
type CompileError struct {
	Pos int // rune offset in the template
	Msg string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("title format: %s at position %d", e.Msg, e.Pos)
}

// Benign marks compile errors as user-facing.
func (e *CompileError) Benign() bool { return true }

// EvalError reports a failure while formatting a track.
type EvalError struct {
	Func string
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("title format: $%s: %s", e.Func, e.Msg)
}

// Benign marks evaluation errors as user-facing.
func (e *EvalError) Benign() bool { return true }

// IsCompileError reports whether err wraps a *CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

// Formatter is a compiled template. It is immutable and safe to reuse.
type Formatter struct {
	src  string
	root sequence
}

// Compile parses a template.
func Compile(src string) (*Formatter, error) {
	p := parser{runes: []rune(src)}
	root, err := p.parseSequence(ctxTop)
	if err != nil {
		return nil, err
	}
	return &Formatter{src: src, root: root}, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// templates hard-coded in the program.
func MustCompile(src string) *Formatter {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// Source returns the template text the formatter was compiled from.
func (f *Formatter) Source() string {
	return f.src
}

// Format renders the template for the given fields. A nil Fields behaves as
// a track without any field.
func (f *Formatter) Format(fields Fields) (string, error) {
	if fields == nil {
		fields = noFields{}
	}
	v, err := f.root.eval(fields)
	if err != nil {
		return "", err
	}
	return v.text, nil
}

// Format compiles src and formats fields in one step.
func Format(src string, fields Fields) (string, error) {
	f, err := Compile(src)
	if err != nil {
		return "", err
	}
	return f.Format(fields)
}

type noFields struct{}

func (noFields) Get(string) (string, bool) { return "", false }
