package numeral

import "fmt"

// Numeral is a signed integer built from zero/successor/predecessor
// composition. A canonical numeral never mixes successor and predecessor
// links: the outermost constructor therefore determines the sign.
//
// Arithmetic over numerals is total (except division, which is exact-only).
// Range enforcement happens solely at the bridge, see bridge.go.
type Numeral interface {
	canonical()
}

type zero struct{}

type succ struct{ prev Numeral }

type pred struct{ next Numeral }

func (zero) canonical() {}
func (succ) canonical() {}
func (pred) canonical() {}

// Zero returns the numeral 0.
func Zero() Numeral { return zero{} }

// Succ returns n+1 in canonical form.
func Succ(n Numeral) Numeral {
	if p, ok := n.(pred); ok {
		return p.next
	}

	return succ{prev: n}
}

// Pred returns n-1 in canonical form.
func Pred(n Numeral) Numeral {
	if s, ok := n.(succ); ok {
		return s.prev
	}

	return pred{next: n}
}

// IsZero reports whether n is 0.
func IsZero(n Numeral) bool {
	_, ok := n.(zero)
	return ok
}

// Sign returns -1, 0 or 1. Canonical form makes this a single look
// at the outermost constructor.
func Sign(n Numeral) int {
	switch n.(type) {
	case zero:
		return 0
	case succ:
		return 1
	case pred:
		return -1
	default:
		panic(fmt.Errorf("non-canonical numeral %T", n))
	}
}

// Add returns a+b by peeling b one link at a time.
func Add(a, b Numeral) Numeral {
	switch v := b.(type) {
	case zero:
		return a
	case succ:
		return Add(Succ(a), v.prev)
	case pred:
		return Add(Pred(a), v.next)
	default:
		panic(fmt.Errorf("non-canonical numeral %T", b))
	}
}

// Neg returns -n by flipping every link.
func Neg(n Numeral) Numeral {
	switch v := n.(type) {
	case zero:
		return n
	case succ:
		return Pred(Neg(v.prev))
	case pred:
		return Succ(Neg(v.next))
	default:
		panic(fmt.Errorf("non-canonical numeral %T", n))
	}
}

// Sub returns a-b.
func Sub(a, b Numeral) Numeral {
	return Add(a, Neg(b))
}

// Mul returns a*b as repeated addition over b's links.
func Mul(a, b Numeral) Numeral {
	switch v := b.(type) {
	case zero:
		return zero{}
	case succ:
		return Add(Mul(a, v.prev), a)
	case pred:
		return Sub(Mul(a, v.next), a)
	default:
		panic(fmt.Errorf("non-canonical numeral %T", b))
	}
}

// Cmp compares a and b, returning the sign of a-b.
func Cmp(a, b Numeral) int {
	return Sign(Sub(a, b))
}

// Div returns a/b when the quotient is exact. Division by zero and
// non-exact quotients are errors: truncation would silently corrupt an
// exponent, so there is no rounding fallback.
func Div(a, b Numeral) (Numeral, error) {
	if IsZero(b) {
		return nil, ErrDivZero
	}

	// Work on magnitudes, restore the sign afterwards.
	num, den := a, b
	negative := false
	if Sign(num) < 0 {
		num = Neg(num)
		negative = !negative
	}
	if Sign(den) < 0 {
		den = Neg(den)
		negative = !negative
	}

	q := Zero()
	r := num
	for Cmp(r, den) >= 0 {
		r = Sub(r, den)
		q = Succ(q)
	}

	if !IsZero(r) {
		return nil, fmt.Errorf("%v / %v: %w", a, b, ErrInexact)
	}

	if negative {
		q = Neg(q)
	}

	return q, nil
}

// String renders the numeral as a decimal integer. Unlike the bridge it
// works for any magnitude, which keeps error messages usable even for
// values that fell out of the enumerated range.
func (n zero) String() string { return "0" }

func (n succ) String() string { return fmt.Sprintf("%d", unboundedInt(n)) }

func (n pred) String() string { return fmt.Sprintf("%d", unboundedInt(n)) }

func unboundedInt(n Numeral) int {
	v := 0
	for {
		switch x := n.(type) {
		case zero:
			return v
		case succ:
			v++
			n = x.prev
		case pred:
			v--
			n = x.next
		default:
			panic(fmt.Errorf("non-canonical numeral %T", n))
		}
	}
}
