// Package apperr defines the error taxonomy shared by the playlist and column packages.
package apperr

import (
	"errors"
	"fmt"
)

// OutOfRangeError reports an index or range outside the bounds of a sequence.
// It is always a caller contract violation.
type OutOfRangeError struct {
	Op    string // operation name, e.g. "remove range"
	Index int
	Count int // 0 when the operation addresses a single index
	Len   int // sequence length at the time of the call
}

func (e *OutOfRangeError) Error() string {
	if e.Count != 0 {
		return fmt.Sprintf("%s: range [%d, %d) out of bounds for length %d",
			e.Op, e.Index, e.Index+e.Count, e.Len)
	}
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

// InvalidActionError reports a well-formed action that is not allowed in the
// current state, such as deleting the only remaining column.
type InvalidActionError struct {
	Action string
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
}

// Benign marks errors that can be shown to the user as a plain message
// without going through the internal error dialog.
type Benign interface {
	Benign() bool
}

// Benign implements Benign.
func (e *InvalidActionError) Benign() bool { return true }

// IsBenign reports whether err (or anything it wraps) is a benign error.
func IsBenign(err error) bool {
	var b Benign
	if errors.As(err, &b) {
		return b.Benign()
	}
	return false
}

// IsOutOfRange reports whether err wraps an *OutOfRangeError.
func IsOutOfRange(err error) bool {
	var e *OutOfRangeError
	return errors.As(err, &e)
}

// IsInvalidAction reports whether err wraps an *InvalidActionError.
func IsInvalidAction(err error) bool {
	var e *InvalidActionError
	return errors.As(err, &e)
}
