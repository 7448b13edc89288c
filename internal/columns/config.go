package columns

import (
	"fmt"

	"github.com/llehouerou/hnl/internal/config"
)

// FromConfig builds a set from [[columns]] entries. No entries yields the
// defaults. A template that does not compile fails the whole set.
func FromConfig(entries []config.Column) (*Set, error) {
	if len(entries) == 0 {
		return Defaults(), nil
	}
	cols := make([]Column, 0, len(entries))
	for i, e := range entries {
		width := e.Width
		if width <= 0 {
			width = DefaultWidth
		}
		c, err := NewColumn(e.Name, width, e.Format)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i+1, e.Name, err)
		}
		cols = append(cols, c)
	}
	return New(cols...), nil
}

// ToConfig converts a set back into [[columns]] entries.
func ToConfig(s *Set) []config.Column {
	out := make([]config.Column, 0, s.Len())
	for _, c := range s.cols {
		out = append(out, config.Column{Name: c.Name, Width: c.Width, Format: c.template})
	}
	return out
}
