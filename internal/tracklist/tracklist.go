// Package tracklist provides the ordered track list behind the playlist
// table: insertion, range removal and relocation of contiguous runs, with
// observers notified before and after every structural change.
package tracklist

import (
	"slices"

	"github.com/llehouerou/hnl/internal/apperr"
	"github.com/llehouerou/hnl/internal/track"
)

// List is an ordered sequence of track records. Indices are always
// 0..Len()-1. It is not safe for concurrent use; a single goroutine (the UI
// event loop) owns it.
type List struct {
	records   []*track.Record
	observers map[int]Observer
	order     []int
	nextID    int
}

// New creates an empty list with the given observers subscribed.
func New(observers ...Observer) *List {
	l := &List{observers: make(map[int]Observer)}
	for _, o := range observers {
		l.Subscribe(o)
	}
	return l
}

// Subscribe registers an observer and returns a function that removes it.
func (l *List) Subscribe(o Observer) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.observers[id] = o
	l.order = append(l.order, id)
	return func() {
		delete(l.observers, id)
		l.order = slices.DeleteFunc(l.order, func(x int) bool { return x == id })
	}
}

func (l *List) before(c Change) {
	for _, id := range l.order {
		l.observers[id].Before(c)
	}
}

func (l *List) after(c Change) {
	for _, id := range l.order {
		l.observers[id].After(c)
	}
}

// Len returns the number of records.
func (l *List) Len() int {
	return len(l.records)
}

// Query returns the record at index, or false if index is out of bounds.
func (l *List) Query(index int) (*track.Record, bool) {
	if index < 0 || index >= len(l.records) {
		return nil, false
	}
	return l.records[index], true
}

// Records returns a copy of the record sequence.
func (l *List) Records() []*track.Record {
	return slices.Clone(l.records)
}

// IndexOf returns the index of the record with the given ID, or -1.
func (l *List) IndexOf(id string) int {
	return slices.IndexFunc(l.records, func(r *track.Record) bool { return r.ID() == id })
}

// Insert inserts rec at index and returns the index it landed on. A negative
// index appends; an index past the end is clamped to the end.
func (l *List) Insert(index int, rec *track.Record) int {
	return l.InsertAll(index, rec)
}

// InsertAll inserts recs in order starting at index, as a single change.
// Index normalization is the same as Insert. It returns the start index.
func (l *List) InsertAll(index int, recs ...*track.Record) int {
	if index < 0 || index > len(l.records) {
		index = len(l.records)
	}
	if len(recs) == 0 {
		return index
	}

	c := Change{Kind: Insert, Inserted: Range{Start: index, Count: len(recs)}}
	l.before(c)
	l.records = slices.Insert(l.records, index, recs...)
	l.after(c)
	return index
}

// Remove deletes the record at index.
func (l *List) Remove(index int) error {
	if index < 0 || index >= len(l.records) {
		return &apperr.OutOfRangeError{Op: "remove", Index: index, Len: len(l.records)}
	}
	l.removeRange(index, 1)
	return nil
}

// RemoveRange deletes count consecutive records starting at index.
// Removing zero records is a no-op.
func (l *List) RemoveRange(index, count int) error {
	if index < 0 || count < 0 || index+count > len(l.records) {
		return &apperr.OutOfRangeError{Op: "remove range", Index: index, Count: count, Len: len(l.records)}
	}
	if count == 0 {
		return nil
	}
	l.removeRange(index, count)
	return nil
}

func (l *List) removeRange(index, count int) {
	c := Change{Kind: Remove, Removed: Range{Start: index, Count: count}}
	l.before(c)
	l.records = slices.Delete(l.records, index, index+count)
	l.after(c)
}

// MoveContiguousRun relocates the count records starting at sourceStart so
// that they begin at destination, keeping their relative order.
//
// destination is an index into the list as it is before the run is taken
// out. Moving left, the rows in [destination, sourceStart) shift right by
// count. Moving right, the rows in [sourceStart+count, destination) shift
// left by count and the run lands at destination-count. A destination equal
// to sourceStart or sourceStart+count leaves the list unchanged.
func (l *List) MoveContiguousRun(sourceStart, count, destination int) error {
	n := len(l.records)
	if sourceStart < 0 || count < 1 || sourceStart+count > n ||
		destination < 0 || destination > n ||
		(destination > sourceStart && destination < sourceStart+count) {
		return &apperr.OutOfRangeError{Op: "move", Index: sourceStart, Count: max(count, 1), Len: n}
	}
	if destination == sourceStart || destination == sourceStart+count {
		return nil
	}

	target := destination
	if destination > sourceStart {
		target = destination - count
	}
	c := Change{
		Kind:        Move,
		Removed:     Range{Start: sourceStart, Count: count},
		Inserted:    Range{Start: target, Count: count},
		Destination: destination,
	}

	l.before(c)
	run := slices.Clone(l.records[sourceStart : sourceStart+count])
	rest := slices.Delete(l.records, sourceStart, sourceStart+count)
	l.records = slices.Insert(rest, target, run...)
	l.after(c)
	return nil
}

// Clear removes every record.
func (l *List) Clear() {
	if len(l.records) == 0 {
		return
	}
	c := Change{Kind: Reset, Removed: Range{Start: 0, Count: len(l.records)}}
	l.before(c)
	clear(l.records)
	l.records = l.records[:0]
	l.after(c)
}
