// Package track defines the track record: the metadata of one audio file,
// stored as a mapping from field name to one or more string values.
package track

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// aliases redirects the field names users type in templates to the keys
// the tag readers store.
var aliases = map[string]string{
	"album artist": "albumartist",
	"publisher":    "organization",
	"totaldiscs":   "disctotal",
	"totaltracks":  "tracktotal",
	"track":        "tracknumber",
	"disc":         "discnumber",
}

// Key normalizes a field name: lowercase, trimmed and alias-resolved.
func Key(field string) string {
	k := strings.ToLower(strings.TrimSpace(field))
	if target, ok := aliases[k]; ok {
		return target
	}
	return k
}

// Record holds the metadata fields of a single track.
// A Record belongs to at most one list; moving it never changes its ID.
type Record struct {
	id     string
	path   string
	fields map[string][]string
}

// New creates an empty record for the file at path.
func New(path string) *Record {
	return &Record{
		id:     uuid.NewString(),
		path:   path,
		fields: make(map[string][]string),
	}
}

// ID returns the record's identity.
func (r *Record) ID() string { return r.id }

// Path returns the file the record was read from.
func (r *Record) Path() string { return r.path }

// Get returns the canonical (first) value of a field.
func (r *Record) Get(field string) (string, bool) {
	values, ok := r.fields[Key(field)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Value returns the canonical value of a field, or "" when absent.
func (r *Record) Value(field string) string {
	v, _ := r.Get(field)
	return v
}

// Values returns a copy of every value stored for a field.
func (r *Record) Values(field string) []string {
	return slices.Clone(r.fields[Key(field)])
}

// Set replaces the values of a field. Setting no values deletes the field;
// empty strings are dropped.
func (r *Record) Set(field string, values ...string) {
	key := Key(field)
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(r.fields, key)
		return
	}
	r.fields[key] = kept
}

// Has reports whether the field is present.
func (r *Record) Has(field string) bool {
	_, ok := r.Get(field)
	return ok
}

// Fields returns the sorted names of all present fields.
func (r *Record) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
