// Package columns holds the playlist column definitions: a display name, a
// width and a title-format template compiled once and kept in sync with its
// source text.
package columns

import (
	"slices"

	"github.com/llehouerou/hnl/internal/apperr"
	"github.com/llehouerou/hnl/internal/titleformat"
)

// DefaultWidth is the width given to columns created without one.
const DefaultWidth = 180

// Column is one playlist column. The zero value is a valid column with an
// empty name, zero width and an empty template.
type Column struct {
	Name  string
	Width int

	template string
	compiled *titleformat.Formatter
}

// NewColumn builds a column, compiling its template.
func NewColumn(name string, width int, template string) (Column, error) {
	f, err := titleformat.Compile(template)
	if err != nil {
		return Column{}, err
	}
	return Column{Name: name, Width: width, template: template, compiled: f}, nil
}

func mustColumn(name string, width int, template string) Column {
	c, err := NewColumn(name, width, template)
	if err != nil {
		panic(err)
	}
	return c
}

// Template returns the column's template source.
func (c Column) Template() string { return c.template }

// Format renders the column for one track.
func (c Column) Format(fields titleformat.Fields) (string, error) {
	if c.compiled == nil {
		return "", nil
	}
	return c.compiled.Format(fields)
}

// Set is an ordered, never empty list of columns.
type Set struct {
	cols []Column
}

// New builds a set from cols. An empty call yields the default columns.
func New(cols ...Column) *Set {
	if len(cols) == 0 {
		return Defaults()
	}
	s := &Set{cols: make([]Column, 0, len(cols))}
	for _, c := range cols {
		s.AddColumn(c)
	}
	return s
}

// Defaults returns the stock column layout.
func Defaults() *Set {
	return &Set{cols: []Column{
		mustColumn("Track", 30, "%tracknumber%"),
		mustColumn("Title", DefaultWidth, "%title%"),
		mustColumn("Artist", DefaultWidth, "%artist%"),
		mustColumn("Album", DefaultWidth, "%album%"),
	}}
}

// Len returns the number of columns.
func (s *Set) Len() int { return len(s.cols) }

// At returns column i, or false when i is out of bounds.
func (s *Set) At(i int) (Column, bool) {
	if i < 0 || i >= len(s.cols) {
		return Column{}, false
	}
	return s.cols[i], true
}

// All returns a copy of the columns.
func (s *Set) All() []Column {
	out := make([]Column, len(s.cols))
	copy(out, s.cols)
	return out
}

// Clone returns an independent copy. Compiled formatters are immutable and
// shared.
func (s *Set) Clone() *Set {
	return &Set{cols: s.All()}
}

func (s *Set) check(op string, i int) error {
	if i < 0 || i >= len(s.cols) {
		return &apperr.OutOfRangeError{Op: op, Index: i, Len: len(s.cols)}
	}
	return nil
}

// SetTemplate recompiles column i from tpl. On a compile error the column
// keeps its previous template and the *titleformat.CompileError is returned.
func (s *Set) SetTemplate(i int, tpl string) error {
	if err := s.check("set template", i); err != nil {
		return err
	}
	f, err := titleformat.Compile(tpl)
	if err != nil {
		return err
	}
	s.cols[i].template = tpl
	s.cols[i].compiled = f
	return nil
}

// SetName renames column i.
func (s *Set) SetName(i int, name string) error {
	if err := s.check("set name", i); err != nil {
		return err
	}
	s.cols[i].Name = name
	return nil
}

// SetWidth changes the width of column i.
func (s *Set) SetWidth(i, width int) error {
	if err := s.check("set width", i); err != nil {
		return err
	}
	if width < 0 {
		return &apperr.InvalidActionError{Action: "set column width", Reason: "width must not be negative"}
	}
	s.cols[i].Width = width
	return nil
}

// AddColumn appends c and returns its index. A zero column gets the
// default width.
func (s *Set) AddColumn(c Column) int {
	if c.Width == 0 && c.Name == "" && c.template == "" {
		c.Width = DefaultWidth
	}
	if c.compiled == nil {
		c.compiled = titleformat.MustCompile(c.template)
	}
	s.cols = append(s.cols, c)
	return len(s.cols) - 1
}

// DeleteColumn removes column i. The last remaining column cannot be deleted.
func (s *Set) DeleteColumn(i int) error {
	if err := s.check("delete column", i); err != nil {
		return err
	}
	if len(s.cols) == 1 {
		return &apperr.InvalidActionError{Action: "delete column", Reason: "at least one column is required"}
	}
	s.cols = slices.Delete(s.cols, i, i+1)
	return nil
}

// Format renders column i for one track.
func (s *Set) Format(i int, fields titleformat.Fields) (string, error) {
	if err := s.check("format", i); err != nil {
		return "", err
	}
	return s.cols[i].Format(fields)
}
