package tracklist

import (
	"slices"
	"strings"
	"testing"

	"github.com/llehouerou/hnl/internal/apperr"
	"github.com/llehouerou/hnl/internal/track"
)

// newTestList builds a list whose records are titled by the given names.
func newTestList(names ...string) *List {
	l := New()
	for _, n := range names {
		l.Insert(-1, rec(n))
	}
	return l
}

func rec(title string) *track.Record {
	r := track.New("/test/" + title + ".mp3")
	r.Set("title", title)
	return r
}

func titles(l *List) string {
	parts := make([]string, 0, l.Len())
	for _, r := range l.Records() {
		parts = append(parts, r.Value("title"))
	}
	return strings.Join(parts, ",")
}

// recorder is an Observer that logs every notification.
type recorder struct {
	events []string
	before []Change
	after  []Change
}

func (r *recorder) Before(c Change) {
	r.events = append(r.events, "before:"+c.Kind.String())
	r.before = append(r.before, c)
}

func (r *recorder) After(c Change) {
	r.events = append(r.events, "after:"+c.Kind.String())
	r.after = append(r.after, c)
}

func TestNew(t *testing.T) {
	l := New()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if _, ok := l.Query(0); ok {
		t.Error("Query(0) on empty list should report not found")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		wantIndex int
		want      string
	}{
		{"front", 0, 0, "X,A,B,C"},
		{"middle", 1, 1, "A,X,B,C"},
		{"end", 3, 3, "A,B,C,X"},
		{"negative appends", -1, 3, "A,B,C,X"},
		{"past end clamps", 10, 3, "A,B,C,X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList("A", "B", "C")
			x := rec("X")

			got := l.Insert(tt.index, x)

			if got != tt.wantIndex {
				t.Errorf("Insert returned %d, want %d", got, tt.wantIndex)
			}
			if titles(l) != tt.want {
				t.Errorf("list = %s, want %s", titles(l), tt.want)
			}
			if q, ok := l.Query(got); !ok || q != x {
				t.Errorf("Query(%d) did not return the inserted record", got)
			}
		})
	}
}

func TestInsert_QueryAndLengthProperty(t *testing.T) {
	for n := range 5 {
		for idx := 0; idx <= n; idx++ {
			l := newTestList(slices.Repeat([]string{"r"}, n)...)
			x := rec("X")
			l.Insert(idx, x)
			if l.Len() != n+1 {
				t.Fatalf("n=%d idx=%d: Len() = %d, want %d", n, idx, l.Len(), n+1)
			}
			if q, _ := l.Query(idx); q != x {
				t.Fatalf("n=%d idx=%d: Query did not return inserted record", n, idx)
			}
		}
	}
}

func TestInsertAll(t *testing.T) {
	l := newTestList("A", "D")
	r := &recorder{}
	l.Subscribe(r)

	start := l.InsertAll(1, rec("B"), rec("C"))

	if start != 1 {
		t.Errorf("InsertAll returned %d, want 1", start)
	}
	if titles(l) != "A,B,C,D" {
		t.Errorf("list = %s, want A,B,C,D", titles(l))
	}
	if len(r.after) != 1 || r.after[0].Inserted != (Range{Start: 1, Count: 2}) {
		t.Errorf("want one insert change for rows [1,3), got %+v", r.after)
	}

	if l.InsertAll(0) != 0 || len(r.after) != 1 {
		t.Error("empty InsertAll should not notify")
	}
}

func TestRemove(t *testing.T) {
	l := newTestList("A", "B", "C")

	if err := l.Remove(1); err != nil {
		t.Fatalf("Remove(1) error: %v", err)
	}
	if titles(l) != "A,C" {
		t.Errorf("list = %s, want A,C", titles(l))
	}
}

func TestRemove_OutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 100} {
		l := newTestList("A", "B", "C")
		r := &recorder{}
		l.Subscribe(r)

		err := l.Remove(idx)

		if !apperr.IsOutOfRange(err) {
			t.Errorf("Remove(%d) error = %v, want OutOfRangeError", idx, err)
		}
		if titles(l) != "A,B,C" {
			t.Errorf("Remove(%d) changed the list: %s", idx, titles(l))
		}
		if len(r.events) != 0 {
			t.Errorf("Remove(%d) notified observers on failure", idx)
		}
	}
}

func TestRemoveRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		want  string
	}{
		{"first two", 0, 2, "C,D,E"},
		{"middle", 1, 3, "A,E"},
		{"tail", 3, 2, "A,B,C"},
		{"all", 0, 5, ""},
		{"single", 2, 1, "A,B,D,E"},
		{"zero count", 2, 0, "A,B,C,D,E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList("A", "B", "C", "D", "E")
			before := l.Len()

			if err := l.RemoveRange(tt.index, tt.count); err != nil {
				t.Fatalf("RemoveRange error: %v", err)
			}
			if titles(l) != tt.want {
				t.Errorf("list = %s, want %s", titles(l), tt.want)
			}
			if l.Len() != before-tt.count {
				t.Errorf("Len() = %d, want %d", l.Len(), before-tt.count)
			}
		})
	}
}

func TestRemoveRange_OutOfRange(t *testing.T) {
	tests := []struct {
		name         string
		index, count int
	}{
		{"past end", 3, 3},
		{"negative index", -1, 1},
		{"negative count", 1, -1},
		{"start past end", 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList("A", "B", "C", "D", "E")
			err := l.RemoveRange(tt.index, tt.count)
			if !apperr.IsOutOfRange(err) {
				t.Errorf("error = %v, want OutOfRangeError", err)
			}
			if l.Len() != 5 {
				t.Errorf("list modified on error: %s", titles(l))
			}
		})
	}
}

func TestMoveContiguousRun_Scenarios(t *testing.T) {
	tests := []struct {
		name                string
		source, count, dest int
		want                string
	}{
		{"move B,C before E", 1, 2, 4, "A,D,B,C,E"},
		{"move D,E to front", 3, 2, 0, "D,E,A,B,C"},
		{"move A to end", 0, 1, 5, "B,C,D,E,A"},
		{"move E to front", 4, 1, 0, "E,A,B,C,D"},
		{"move C after D", 2, 1, 4, "A,B,D,C,E"},
		{"move B,C,D to end", 1, 3, 5, "A,E,B,C,D"},
		{"no-op at start", 1, 2, 1, "A,B,C,D,E"},
		{"no-op at end of run", 1, 2, 3, "A,B,C,D,E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList("A", "B", "C", "D", "E")
			if err := l.MoveContiguousRun(tt.source, tt.count, tt.dest); err != nil {
				t.Fatalf("MoveContiguousRun error: %v", err)
			}
			if titles(l) != tt.want {
				t.Errorf("list = %s, want %s", titles(l), tt.want)
			}
		})
	}
}

func TestMoveContiguousRun_OutOfRange(t *testing.T) {
	tests := []struct {
		name                string
		source, count, dest int
	}{
		{"negative source", -1, 1, 0},
		{"zero count", 1, 0, 3},
		{"run past end", 4, 2, 0},
		{"destination past end", 0, 1, 6},
		{"negative destination", 2, 1, -1},
		{"destination inside run", 1, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList("A", "B", "C", "D", "E")
			err := l.MoveContiguousRun(tt.source, tt.count, tt.dest)
			if !apperr.IsOutOfRange(err) {
				t.Errorf("error = %v, want OutOfRangeError", err)
			}
			if titles(l) != "A,B,C,D,E" {
				t.Errorf("list modified on error: %s", titles(l))
			}
		})
	}
}

// spliceReference computes the expected move result by slice concatenation.
// A destination at either edge of the run leaves the order unchanged.
func spliceReference(in []string, s, c, d int) []string {
	if d == s || d == s+c {
		return slices.Clone(in)
	}
	var out []string
	if d < s {
		out = append(out, in[:d]...)
		out = append(out, in[s:s+c]...)
		out = append(out, in[d:s]...)
		out = append(out, in[s+c:]...)
		return out
	}
	out = append(out, in[:s]...)
	out = append(out, in[s+c:d]...)
	out = append(out, in[s:s+c]...)
	out = append(out, in[d:]...)
	return out
}

func TestMoveContiguousRun_Exhaustive(t *testing.T) {
	for n := 1; n <= 6; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}
		for s := range n {
			for c := 1; s+c <= n; c++ {
				for d := 0; d <= n; d++ {
					if d > s && d < s+c {
						continue
					}
					l := newTestList(names...)
					ids := make(map[string]string)
					for _, r := range l.Records() {
						ids[r.Value("title")] = r.ID()
					}

					if err := l.MoveContiguousRun(s, c, d); err != nil {
						t.Fatalf("n=%d s=%d c=%d d=%d: %v", n, s, c, d, err)
					}

					want := strings.Join(spliceReference(names, s, c, d), ",")
					if titles(l) != want {
						t.Fatalf("n=%d s=%d c=%d d=%d: got %s, want %s", n, s, c, d, titles(l), want)
					}
					for _, r := range l.Records() {
						if ids[r.Value("title")] != r.ID() {
							t.Fatalf("record %s changed identity", r.Value("title"))
						}
					}
				}
			}
		}
	}
}

func TestMoveContiguousRun_Notifications(t *testing.T) {
	l := newTestList("A", "B", "C", "D", "E")
	r := &recorder{}
	l.Subscribe(r)

	var lenDuringBefore int
	var firstDuringBefore string
	l.Subscribe(ObserverFuncs{OnBefore: func(Change) {
		lenDuringBefore = l.Len()
		first, _ := l.Query(0)
		firstDuringBefore = first.Value("title")
	}})

	if err := l.MoveContiguousRun(3, 2, 0); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(r.events, []string{"before:move", "after:move"}) {
		t.Errorf("events = %v", r.events)
	}
	want := Change{Kind: Move, Removed: Range{3, 2}, Inserted: Range{0, 2}, Destination: 0}
	if r.after[0] != want {
		t.Errorf("change = %+v, want %+v", r.after[0], want)
	}
	if lenDuringBefore != 5 || firstDuringBefore != "A" {
		t.Error("Before must observe the list prior to the mutation")
	}

	r.events = nil
	if err := l.MoveContiguousRun(0, 2, 2); err != nil {
		t.Fatal(err)
	}
	if len(r.events) != 0 {
		t.Errorf("no-op move notified observers: %v", r.events)
	}
}

func TestMoveContiguousRun_RightInsertedRange(t *testing.T) {
	l := newTestList("A", "B", "C", "D", "E")
	r := &recorder{}
	l.Subscribe(r)

	if err := l.MoveContiguousRun(1, 2, 4); err != nil {
		t.Fatal(err)
	}
	want := Change{Kind: Move, Removed: Range{1, 2}, Inserted: Range{2, 2}, Destination: 4}
	if r.after[0] != want {
		t.Errorf("change = %+v, want %+v", r.after[0], want)
	}
}

func TestChange_MapIndex(t *testing.T) {
	// Every surviving row must be found at its mapped index after the change.
	ops := []struct {
		name string
		do   func(l *List) error
	}{
		{"insert", func(l *List) error { l.InsertAll(2, rec("X"), rec("Y")); return nil }},
		{"remove range", func(l *List) error { return l.RemoveRange(1, 2) }},
		{"move left", func(l *List) error { return l.MoveContiguousRun(3, 2, 1) }},
		{"move right", func(l *List) error { return l.MoveContiguousRun(0, 2, 4) }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			l := newTestList("A", "B", "C", "D", "E")
			old := l.Records()
			var change Change
			l.Subscribe(ObserverFuncs{OnAfter: func(c Change) { change = c }})

			if err := op.do(l); err != nil {
				t.Fatal(err)
			}
			for i, r := range old {
				j, ok := change.MapIndex(i)
				if !ok {
					if l.IndexOf(r.ID()) != -1 {
						t.Errorf("row %d reported removed but still present", i)
					}
					continue
				}
				if got, _ := l.Query(j); got != r {
					t.Errorf("row %d mapped to %d, which holds %s", i, j, got.Value("title"))
				}
			}
		})
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	l := New()
	r := &recorder{}
	unsubscribe := l.Subscribe(r)

	l.Insert(-1, rec("A"))
	unsubscribe()
	l.Insert(-1, rec("B"))

	if len(r.after) != 1 {
		t.Errorf("got %d notifications, want 1", len(r.after))
	}
}

func TestClear(t *testing.T) {
	l := newTestList("A", "B")
	r := &recorder{}
	l.Subscribe(r)

	l.Clear()
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if len(r.after) != 1 || r.after[0].Kind != Reset {
		t.Errorf("want a single reset notification, got %+v", r.after)
	}
}

func TestIndexOf(t *testing.T) {
	l := newTestList("A", "B", "C")
	b, _ := l.Query(1)

	if got := l.IndexOf(b.ID()); got != 1 {
		t.Errorf("IndexOf = %d, want 1", got)
	}
	if got := l.IndexOf("missing"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
}
