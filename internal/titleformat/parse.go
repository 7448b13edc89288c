package titleformat

import "strings"

// parseContext tells the parser which runes terminate the current sequence.
type parseContext int

const (
	ctxTop parseContext = iota
	ctxCond
	ctxArg
)

type parser struct {
	runes []rune
	pos   int
}

func (p *parser) errorf(pos int, msg string) error {
	return &CompileError{Pos: pos, Msg: msg}
}

// parseSequence reads nodes until the terminator of ctx. The terminator is
// left unconsumed.
func (p *parser) parseSequence(ctx parseContext) (sequence, error) {
	var seq sequence
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			seq = append(seq, literal(lit.String()))
			lit.Reset()
		}
	}

	for p.pos < len(p.runes) {
		r := p.runes[p.pos]
		switch {
		case r == ']' && ctx == ctxCond:
			flush()
			return seq, nil
		case r == ']' && ctx != ctxCond:
			return nil, p.errorf(p.pos, "unexpected ']'")
		case (r == ',' || r == ')') && ctx == ctxArg:
			flush()
			return seq, nil
		case r == '%':
			flush()
			n, err := p.parseField()
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
		case r == '\'':
			s, err := p.parseQuoted()
			if err != nil {
				return nil, err
			}
			lit.WriteString(s)
		case r == '[':
			flush()
			start := p.pos
			p.pos++
			inner, err := p.parseSequence(ctxCond)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.runes) {
				return nil, p.errorf(start, "unterminated '['")
			}
			p.pos++ // ]
			seq = append(seq, conditional(inner))
		case r == '$':
			flush()
			n, err := p.parseCall()
			if err != nil {
				return nil, err
			}
			seq = append(seq, n)
		default:
			lit.WriteRune(r)
			p.pos++
		}
	}

	if ctx == ctxArg {
		return nil, p.errorf(p.pos, "unterminated function call")
	}
	flush()
	return seq, nil
}

// parseField reads %name%. %% is a literal percent sign.
func (p *parser) parseField() (node, error) {
	start := p.pos
	p.pos++
	end := p.pos
	for end < len(p.runes) && p.runes[end] != '%' {
		end++
	}
	if end >= len(p.runes) {
		return nil, p.errorf(start, "unterminated field reference")
	}
	name := string(p.runes[p.pos:end])
	p.pos = end + 1
	if name == "" {
		return literal("%"), nil
	}
	return field(name), nil
}

// parseQuoted reads 'text'. A doubled quote inside is a literal quote.
func (p *parser) parseQuoted() (string, error) {
	start := p.pos
	p.pos++
	if p.pos < len(p.runes) && p.runes[p.pos] == '\'' {
		p.pos++
		return "'", nil
	}
	end := p.pos
	for end < len(p.runes) && p.runes[end] != '\'' {
		end++
	}
	if end >= len(p.runes) {
		return "", p.errorf(start, "unterminated quoted text")
	}
	s := string(p.runes[p.pos:end])
	p.pos = end + 1
	return s, nil
}

// parseCall reads $name(arg,arg,...).
func (p *parser) parseCall() (node, error) {
	start := p.pos
	p.pos++
	nameStart := p.pos
	for p.pos < len(p.runes) && isNameRune(p.runes[p.pos]) {
		p.pos++
	}
	name := strings.ToLower(string(p.runes[nameStart:p.pos]))
	if name == "" {
		return nil, p.errorf(start, "missing function name after '$'")
	}
	if p.pos >= len(p.runes) || p.runes[p.pos] != '(' {
		return nil, p.errorf(p.pos, "expected '(' after $"+name)
	}
	p.pos++

	var args []sequence
	// $f() has zero arguments.
	if p.pos < len(p.runes) && p.runes[p.pos] == ')' {
		p.pos++
	} else {
		for {
			arg, err := p.parseSequence(ctxArg)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.pos >= len(p.runes) {
				return nil, p.errorf(start, "unterminated function call")
			}
			sep := p.runes[p.pos]
			p.pos++
			if sep == ')' {
				break
			}
		}
	}

	fn, ok := functions[name]
	if !ok {
		return nil, p.errorf(start, "unknown function $"+name)
	}
	if len(args) < fn.minArgs || (fn.maxArgs >= 0 && len(args) > fn.maxArgs) {
		return nil, p.errorf(start, "wrong number of arguments for $"+name)
	}
	return &call{name: name, fn: fn, args: args}, nil
}

func isNameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
