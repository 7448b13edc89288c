package titleformat

import (
	"errors"
	"math"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

type function struct {
	minArgs int
	maxArgs int // -1 for variadic
	impl    func(in *invocation) (value, error)
}

var functions = map[string]function{
	// control flow
	"if":        {2, 3, fnIf},
	"if2":       {2, 2, fnIf2},
	"if3":       {2, -1, fnIf3},
	"ifequal":   {4, 4, fnIfEqual},
	"ifgreater": {4, 4, fnIfGreater},
	"iflonger":  {4, 4, fnIfLonger},

	// boolean
	"and":     {1, -1, fnAnd},
	"or":      {1, -1, fnOr},
	"not":     {1, 1, fnNot},
	"strcmp":  {2, 2, fnStrcmp},
	"stricmp": {2, 2, fnStricmp},

	// text
	"upper":     {1, 1, mapText(strings.ToUpper)},
	"lower":     {1, 1, mapText(strings.ToLower)},
	"caps":      {1, 1, mapText(caps)},
	"trim":      {1, 1, mapText(strings.TrimSpace)},
	"abbr":      {1, 1, mapText(abbr)},
	"left":      {2, 2, fnLeft},
	"right":     {2, 2, fnRight},
	"pad":       {2, 3, fnPad(false)},
	"pad_right": {2, 3, fnPad(true)},
	"len":       {1, 1, fnLen},
	"replace":   {3, -1, fnReplace},

	// numbers
	"num": {2, 2, fnNum},
	"add": {1, -1, arith("add", addInt)},
	"sub": {1, -1, arith("sub", subInt)},
	"mul": {1, -1, arith("mul", mulInt)},
	"div": {1, -1, arith("div", divInt)},
	"mod": {1, -1, arith("mod", modInt)},
	"min": {1, -1, arith("min", func(a, b int) (int, error) { return min(a, b), nil })},
	"max": {1, -1, arith("max", func(a, b int) (int, error) { return max(a, b), nil })},

	// paths
	"directory": {1, 2, fnDirectory},
	"ext":       {1, 1, mapText(fileExt)},
	"filename":  {1, 1, mapText(fileBase)},
}

func fnIf(in *invocation) (value, error) {
	cond, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	if cond.found {
		return in.arg(1)
	}
	if in.n() == 3 {
		return in.arg(2)
	}
	return value{}, nil
}

func fnIf2(in *invocation) (value, error) {
	a, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	if a.found {
		return a, nil
	}
	return in.arg(1)
}

func fnIf3(in *invocation) (value, error) {
	last := in.n() - 1
	for i := range last {
		v, err := in.arg(i)
		if err != nil {
			return value{}, err
		}
		if v.found {
			return v, nil
		}
	}
	return in.arg(last)
}

func compareInts(in *invocation, pick func(a, b int) bool) (value, error) {
	a, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	b, err := in.arg(1)
	if err != nil {
		return value{}, err
	}
	if pick(toInt(a.text), toInt(b.text)) {
		return in.arg(2)
	}
	return in.arg(3)
}

func fnIfEqual(in *invocation) (value, error) {
	return compareInts(in, func(a, b int) bool { return a == b })
}

func fnIfGreater(in *invocation) (value, error) {
	return compareInts(in, func(a, b int) bool { return a > b })
}

func fnIfLonger(in *invocation) (value, error) {
	s, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	n, err := in.arg(1)
	if err != nil {
		return value{}, err
	}
	if uniseg.GraphemeClusterCount(s.text) > toInt(n.text) {
		return in.arg(2)
	}
	return in.arg(3)
}

func fnAnd(in *invocation) (value, error) {
	vals, err := in.all()
	if err != nil {
		return value{}, err
	}
	for _, v := range vals {
		if !v.found {
			return value{}, nil
		}
	}
	return value{found: true}, nil
}

func fnOr(in *invocation) (value, error) {
	vals, err := in.all()
	if err != nil {
		return value{}, err
	}
	for _, v := range vals {
		if v.found {
			return value{found: true}, nil
		}
	}
	return value{}, nil
}

func fnNot(in *invocation) (value, error) {
	v, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	return value{found: !v.found}, nil
}

func fnStrcmp(in *invocation) (value, error) {
	vals, err := in.all()
	if err != nil {
		return value{}, err
	}
	return value{found: vals[0].text == vals[1].text}, nil
}

func fnStricmp(in *invocation) (value, error) {
	vals, err := in.all()
	if err != nil {
		return value{}, err
	}
	return value{found: strings.EqualFold(vals[0].text, vals[1].text)}, nil
}

func mapText(fn func(string) string) func(in *invocation) (value, error) {
	return func(in *invocation) (value, error) {
		v, err := in.arg(0)
		if err != nil {
			return value{}, err
		}
		return value{text: fn(v.text), found: v.found}, nil
	}
}

func caps(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startOfWord = false
	}
	return b.String()
}

func abbr(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// maxWidth bounds the widths $pad and $num accept, so a template cannot ask
// for an arbitrarily large string.
const maxWidth = 4096

// width reads a padding width from argument i. Widths above maxWidth fail.
func width(in *invocation, i int) (int, error) {
	n, err := in.arg(i)
	if err != nil {
		return 0, err
	}
	w := max(toInt(n.text), 0)
	if w > maxWidth {
		return 0, in.fail("width " + strconv.Itoa(w) + " exceeds " + strconv.Itoa(maxWidth))
	}
	return w, nil
}

func textAndWidth(in *invocation) (value, int, error) {
	s, err := in.arg(0)
	if err != nil {
		return value{}, 0, err
	}
	w, err := width(in, 1)
	if err != nil {
		return value{}, 0, err
	}
	return s, w, nil
}

func textAndCount(in *invocation) (value, int, error) {
	s, err := in.arg(0)
	if err != nil {
		return value{}, 0, err
	}
	n, err := in.arg(1)
	if err != nil {
		return value{}, 0, err
	}
	return s, max(toInt(n.text), 0), nil
}

func fnLeft(in *invocation) (value, error) {
	s, n, err := textAndCount(in)
	if err != nil {
		return value{}, err
	}
	g := graphemes(s.text)
	if n < len(g) {
		g = g[:n]
	}
	return value{text: strings.Join(g, ""), found: s.found}, nil
}

func fnRight(in *invocation) (value, error) {
	s, n, err := textAndCount(in)
	if err != nil {
		return value{}, err
	}
	g := graphemes(s.text)
	if n < len(g) {
		g = g[len(g)-n:]
	}
	return value{text: strings.Join(g, ""), found: s.found}, nil
}

// fnPad pads to n graphemes. $pad appends the fill (left-aligned text),
// $pad_right prepends it (right-aligned text).
func fnPad(alignRight bool) func(in *invocation) (value, error) {
	return func(in *invocation) (value, error) {
		s, n, err := textAndWidth(in)
		if err != nil {
			return value{}, err
		}
		fill := " "
		if in.n() == 3 {
			c, err := in.arg(2)
			if err != nil {
				return value{}, err
			}
			if g := graphemes(c.text); len(g) > 0 {
				fill = g[0]
			}
		}
		missing := n - uniseg.GraphemeClusterCount(s.text)
		if missing <= 0 {
			return s, nil
		}
		padding := strings.Repeat(fill, missing)
		if alignRight {
			return value{text: padding + s.text, found: s.found}, nil
		}
		return value{text: s.text + padding, found: s.found}, nil
	}
}

func fnLen(in *invocation) (value, error) {
	s, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	return value{text: strconv.Itoa(uniseg.GraphemeClusterCount(s.text)), found: s.found}, nil
}

func fnReplace(in *invocation) (value, error) {
	vals, err := in.all()
	if err != nil {
		return value{}, err
	}
	if len(vals)%2 == 0 {
		return value{}, in.fail("expects a string followed by search/replace pairs")
	}
	s := vals[0].text
	for i := 1; i+1 < len(vals); i += 2 {
		if vals[i].text == "" {
			continue
		}
		s = strings.ReplaceAll(s, vals[i].text, vals[i+1].text)
	}
	return value{text: s, found: vals[0].found}, nil
}

func fnNum(in *invocation) (value, error) {
	n, w, err := textAndWidth(in)
	if err != nil {
		return value{}, err
	}
	digits := strconv.Itoa(toInt(n.text))
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) < w {
		digits = strings.Repeat("0", w-len(digits)) + digits
	}
	return value{text: sign + digits, found: n.found}, nil
}

var (
	errDivByZero = errors.New("division by zero")
	errOverflow  = errors.New("integer overflow")
)

func addInt(a, b int) (int, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, errOverflow
	}
	return c, nil
}

func subInt(a, b int) (int, error) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, errOverflow
	}
	return c, nil
}

func mulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, errOverflow
	}
	return c, nil
}

func divInt(a, b int) (int, error) {
	switch {
	case b == 0:
		return 0, errDivByZero
	case a == math.MinInt && b == -1:
		return 0, errOverflow
	}
	return a / b, nil
}

func modInt(a, b int) (int, error) {
	if b == 0 {
		return 0, errDivByZero
	}
	return a % b, nil
}

func arith(name string, op func(a, b int) (int, error)) func(in *invocation) (value, error) {
	return func(in *invocation) (value, error) {
		vals, err := in.all()
		if err != nil {
			return value{}, err
		}
		acc := toInt(vals[0].text)
		found := vals[0].found
		for _, v := range vals[1:] {
			acc, err = op(acc, toInt(v.text))
			if err != nil {
				return value{}, &EvalError{Func: name, Msg: err.Error()}
			}
			found = found || v.found
		}
		return value{text: strconv.Itoa(acc), found: found}, nil
	}
}

func fnDirectory(in *invocation) (value, error) {
	p, err := in.arg(0)
	if err != nil {
		return value{}, err
	}
	levels := 1
	if in.n() == 2 {
		n, err := in.arg(1)
		if err != nil {
			return value{}, err
		}
		levels = max(toInt(n.text), 1)
	}
	dir := path.Dir(toSlash(p.text))
	for range levels - 1 {
		dir = path.Dir(dir)
	}
	name := path.Base(dir)
	if name == "." || name == "/" {
		name = ""
	}
	return value{text: name, found: p.found}, nil
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func fileExt(p string) string {
	return strings.TrimPrefix(path.Ext(toSlash(p)), ".")
}

func fileBase(p string) string {
	base := path.Base(toSlash(p))
	return strings.TrimSuffix(base, path.Ext(base))
}

// toInt parses the leading integer of s, so "3/12" yields 3.
// Text without a leading number yields 0.
func toInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
