package keymap

import (
	"slices"
	"strings"
)

// Resolver maps key strings to the actions of a set of bindings.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string // in table order, for hints and help
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, taken := r.actions[key]; !taken {
				r.actions[key] = b.Action
			}
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// ForContext returns a resolver over the bindings of one context.
func ForContext(context string) *Resolver {
	return NewResolver(ByContext(context))
}

// Resolve returns the action for a key, or "" if it is not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Hint renders the keys of action before label, as in "y/enter confirm".
// Unbound actions give "".
func (r *Resolver) Hint(action Action, label string) string {
	keys := r.keys[action]
	if len(keys) == 0 {
		return ""
	}
	return strings.Join(keys, "/") + " " + label
}

// Footer joins the non-empty hints into a popup footer.
func Footer(hints ...string) string {
	return strings.Join(slices.DeleteFunc(hints, func(h string) bool { return h == "" }), " · ")
}
