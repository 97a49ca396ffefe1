package unitgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unyt-go/unyt/internal/dim"
)

// Unit expressions combine dimension symbols and previously declared
// unit names with multiplication, division, integer powers and decimal
// factors:
//
//	expr   = term { ("*" | "/") term } .
//	term   = factor [ "^" integer ] .
//	factor = ident | "10" | "1" | "(" expr ")" .
//
// "10" stands for the decimal factor (so "m/10^3" is a millimetre-like
// unit) and "1" for the dimensionless unit. Evaluation happens directly
// in descriptor space; any exponent leaving the bounded range fails the
// whole expression.

type exprParser struct {
	input string
	pos   int
	env   map[string]dim.Desc
	arity int
}

// evalExpr evaluates a unit expression against an environment of known
// descriptors.
func evalExpr(input string, arity int, env map[string]dim.Desc) (dim.Desc, error) {
	p := &exprParser{input: input, env: env, arity: arity}

	d, err := p.expr()
	if err != nil {
		return dim.Desc{}, fmt.Errorf("unit expression %q: %w", input, err)
	}

	p.skipSpaces()
	if p.pos != len(p.input) {
		return dim.Desc{}, fmt.Errorf("unit expression %q: unexpected %q at offset %d", input, rest(p), p.pos)
	}

	return d, nil
}

func rest(p *exprParser) string {
	r := p.input[p.pos:]
	if len(r) > 8 {
		r = r[:8] + "…"
	}
	return r
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) eat(c byte) bool {
	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *exprParser) expr() (dim.Desc, error) {
	acc, err := p.term()
	if err != nil {
		return dim.Desc{}, err
	}

	for {
		switch {
		case p.eat('*'):
			rhs, err := p.term()
			if err != nil {
				return dim.Desc{}, err
			}
			acc, err = dim.Mul(acc, rhs)
			if err != nil {
				return dim.Desc{}, err
			}

		case p.eat('/'):
			rhs, err := p.term()
			if err != nil {
				return dim.Desc{}, err
			}
			acc, err = dim.Div(acc, rhs)
			if err != nil {
				return dim.Desc{}, err
			}

		default:
			return acc, nil
		}
	}
}

func (p *exprParser) term() (dim.Desc, error) {
	base, err := p.factor()
	if err != nil {
		return dim.Desc{}, err
	}

	if !p.eat('^') {
		return base, nil
	}

	exp, err := p.integer()
	if err != nil {
		return dim.Desc{}, err
	}

	return dim.Pow(base, exp)
}

func (p *exprParser) factor() (dim.Desc, error) {
	p.skipSpaces()

	if p.eat('(') {
		d, err := p.expr()
		if err != nil {
			return dim.Desc{}, err
		}
		if !p.eat(')') {
			return dim.Desc{}, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		return d, nil
	}

	if p.pos >= len(p.input) {
		return dim.Desc{}, fmt.Errorf("unexpected end of expression")
	}

	c := p.input[p.pos]
	switch {
	case c >= '0' && c <= '9':
		n, err := p.number()
		if err != nil {
			return dim.Desc{}, err
		}
		switch n {
		case 1:
			return dim.Zero(p.arity), nil
		case 10:
			// A bare decimal factor is 10^1.
			d, err := dim.Shift(dim.Zero(p.arity), 1)
			if err != nil {
				return dim.Desc{}, err
			}
			return d, nil
		default:
			return dim.Desc{}, fmt.Errorf("numeric factor must be 1 or a power of 10 written as 10^k, got %d", n)
		}

	case isIdentByte(c):
		name := p.ident()
		d, ok := p.env[name]
		if !ok {
			return dim.Desc{}, fmt.Errorf("unknown unit or dimension %q", name)
		}
		return d, nil

	default:
		return dim.Desc{}, fmt.Errorf("unexpected %q at offset %d", rest(p), p.pos)
	}
}

func (p *exprParser) ident() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *exprParser) number() (int, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}

	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, fmt.Errorf("bad number at offset %d: %w", start, err)
	}
	return n, nil
}

func (p *exprParser) integer() (int, error) {
	p.skipSpaces()

	neg := false
	if p.pos < len(p.input) && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
		neg = p.input[p.pos] == '-'
		p.pos++
	}

	if p.pos >= len(p.input) || p.input[p.pos] < '0' || p.input[p.pos] > '9' {
		return 0, fmt.Errorf("expected integer exponent at offset %d", p.pos)
	}

	n, err := p.number()
	if err != nil {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

// exprDoc normalizes an expression for use in generated doc comments.
func exprDoc(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
