package titleformat

import "strings"

// missingField is rendered for fields the track does not have.
const missingField = "?"

// value is the result of evaluating a node. found records whether a field
// resolved somewhere inside the node; conditionals and $if test it.
type value struct {
	text  string
	found bool
}

type node interface {
	eval(f Fields) (value, error)
}

type literal string

func (l literal) eval(Fields) (value, error) {
	return value{text: string(l)}, nil
}

type field string

func (n field) eval(f Fields) (value, error) {
	v, ok := f.Get(string(n))
	if !ok {
		return value{text: missingField}, nil
	}
	return value{text: v, found: true}, nil
}

type sequence []node

func (s sequence) eval(f Fields) (value, error) {
	if len(s) == 1 {
		return s[0].eval(f)
	}
	var b strings.Builder
	found := false
	for _, n := range s {
		v, err := n.eval(f)
		if err != nil {
			return value{}, err
		}
		b.WriteString(v.text)
		found = found || v.found
	}
	return value{text: b.String(), found: found}, nil
}

type conditional sequence

func (c conditional) eval(f Fields) (value, error) {
	v, err := sequence(c).eval(f)
	if err != nil {
		return value{}, err
	}
	if !v.found {
		return value{}, nil
	}
	return v, nil
}

type call struct {
	name string
	fn   function
	args []sequence
}

func (c *call) eval(f Fields) (value, error) {
	return c.fn.impl(&invocation{name: c.name, fields: f, args: c.args})
}

// invocation gives a function lazy access to its arguments.
type invocation struct {
	name   string
	fields Fields
	args   []sequence
}

func (in *invocation) n() int { return len(in.args) }

func (in *invocation) arg(i int) (value, error) {
	return in.args[i].eval(in.fields)
}

// all evaluates every argument in order.
func (in *invocation) all() ([]value, error) {
	vals := make([]value, len(in.args))
	for i := range in.args {
		v, err := in.arg(i)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (in *invocation) fail(msg string) error {
	return &EvalError{Func: in.name, Msg: msg}
}
