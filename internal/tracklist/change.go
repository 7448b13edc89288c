package tracklist

// Kind identifies the structural mutation a Change describes.
type Kind int

const (
	Insert Kind = iota
	Remove
	Move
	Reset
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Move:
		return "move"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// Range is a run of Count rows starting at Start.
type Range struct {
	Start int
	Count int
}

// End returns the index one past the last row of the range.
func (r Range) End() int { return r.Start + r.Count }

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End() }

// Change describes one structural mutation of a List.
//
// Removed is expressed in indices before the mutation, Inserted in indices
// after it. A Move fills both: the run leaves Removed and lands on Inserted.
// Destination is the move target as given by the caller (pre-removal index).
type Change struct {
	Kind        Kind
	Removed     Range
	Inserted    Range
	Destination int
}

// Observer receives notifications bracketing every structural mutation.
// Before is called while the list still has its old contents, After once the
// mutation is complete.
type Observer interface {
	Before(c Change)
	After(c Change)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnBefore func(c Change)
	OnAfter  func(c Change)
}

// Before implements Observer.
func (o ObserverFuncs) Before(c Change) {
	if o.OnBefore != nil {
		o.OnBefore(c)
	}
}

// After implements Observer.
func (o ObserverFuncs) After(c Change) {
	if o.OnAfter != nil {
		o.OnAfter(c)
	}
}

// MapIndex returns where a row that was at index i before c sits after c,
// and false if the row was removed.
func (c Change) MapIndex(i int) (int, bool) {
	switch c.Kind {
	case Insert:
		if i >= c.Inserted.Start {
			return i + c.Inserted.Count, true
		}
		return i, true
	case Remove:
		if c.Removed.Contains(i) {
			return 0, false
		}
		if i >= c.Removed.End() {
			return i - c.Removed.Count, true
		}
		return i, true
	case Move:
		if c.Removed.Contains(i) {
			return c.Inserted.Start + (i - c.Removed.Start), true
		}
		// Rows between the run and its target shift by the run length.
		if c.Inserted.Start < c.Removed.Start {
			if i >= c.Inserted.Start && i < c.Removed.Start {
				return i + c.Removed.Count, true
			}
			return i, true
		}
		if i >= c.Removed.End() && i < c.Inserted.End() {
			return i - c.Removed.Count, true
		}
		return i, true
	case Reset:
		return 0, false
	}
	return i, true
}
