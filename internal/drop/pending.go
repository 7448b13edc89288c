package drop

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hnl/internal/tracklist"
)

// Pending keeps the insertion points of drops that are still loading. It
// observes the list and moves each point along with the rows around it, so
// the records land where they were dropped even if the list changed while
// they were being read.
//
// A point is the gap before a row. It follows that row through inserts and
// moves; when the row is removed the point falls back to where the removed
// run started. Appends (negative points) are left alone.
type Pending struct {
	next   int
	points map[int]int

	unsubscribe func()
}

// NewPending starts tracking changes to l.
func NewPending(l *tracklist.List) *Pending {
	p := &Pending{next: 1, points: make(map[int]int)}
	p.unsubscribe = l.Subscribe(tracklist.ObserverFuncs{OnAfter: p.apply})
	return p
}

// Add registers an insertion point and returns its ticket. Tickets start
// at 1; 0 means untracked.
func (p *Pending) Add(index int) int {
	t := p.next
	p.next++
	p.points[t] = index
	return t
}

// Take returns the current position of ticket t and forgets it.
func (p *Pending) Take(t int) (int, bool) {
	index, ok := p.points[t]
	delete(p.points, t)
	return index, ok
}

// Len returns the number of points being tracked.
func (p *Pending) Len() int { return len(p.points) }

// Close stops observing the list.
func (p *Pending) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *Pending) apply(c tracklist.Change) {
	for t, index := range p.points {
		p.points[t] = mapGap(c, index)
	}
}

// mapGap moves the gap before row index through c. A gap at the end of the
// list stays at the end, and rows inserted into the gap go in front of it.
func mapGap(c tracklist.Change, index int) int {
	if index < 0 {
		return index
	}
	if i, ok := c.MapIndex(index); ok {
		return i
	}
	switch c.Kind {
	case tracklist.Remove:
		return c.Removed.Start
	case tracklist.Reset:
		return 0
	}
	return index
}

// CmdAt loads paths in the background like Cmd, tracking index in p so the
// LoadedMsg can be inserted at the point's position when it arrives.
func (l *Loader) CmdAt(ctx context.Context, p *Pending, paths []string, index int) tea.Cmd {
	ticket := p.Add(index)
	return func() tea.Msg {
		return LoadedMsg{Index: index, Ticket: ticket, Result: l.Load(ctx, paths)}
	}
}
