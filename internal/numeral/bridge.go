package numeral

import (
	"errors"
	"fmt"
)

// Bound delimits the enumerated range of the bridge. The mapping between
// plain integers and numerals is total and bijective for -Bound..Bound
// and undefined outside: an exponent that cannot cross the bridge does
// not exist as far as descriptor algebra is concerned.
const Bound = 30

// ErrRange marks an integer outside the enumerated -Bound..Bound range.
var ErrRange = errors.New("exponent out of the enumerated range")

// ErrDivZero marks a division by the zero numeral.
var ErrDivZero = errors.New("division by zero exponent")

// ErrInexact marks a division whose quotient is not a whole numeral.
var ErrInexact = errors.New("inexact exponent division")

// FromInt lifts a bounded integer into a numeral.
func FromInt(i int) (Numeral, error) {
	if i < -Bound || i > Bound {
		return nil, fmt.Errorf("%d: %w", i, ErrRange)
	}

	n := Zero()
	for k := 0; k < i; k++ {
		n = Succ(n)
	}
	for k := 0; k > i; k-- {
		n = Pred(n)
	}

	return n, nil
}

// ToInt lowers a numeral back to a bounded integer.
func ToInt(n Numeral) (int, error) {
	v := unboundedInt(n)
	if v < -Bound || v > Bound {
		return 0, fmt.Errorf("%d: %w", v, ErrRange)
	}

	return v, nil
}

// The bounded operations below are the only arithmetic the descriptor
// algebra is allowed to use. Both operands and the result are forced
// through the bridge, so any value leaving -Bound..Bound surfaces as an
// error at build time rather than as a wrapped-around exponent.

// AddBounded returns a+b within the enumerated range.
func AddBounded(a, b int) (int, error) {
	return bounded2(a, b, func(x, y Numeral) (Numeral, error) { return Add(x, y), nil })
}

// SubBounded returns a-b within the enumerated range.
func SubBounded(a, b int) (int, error) {
	return bounded2(a, b, func(x, y Numeral) (Numeral, error) { return Sub(x, y), nil })
}

// MulBounded returns a*b within the enumerated range.
func MulBounded(a, b int) (int, error) {
	return bounded2(a, b, func(x, y Numeral) (Numeral, error) { return Mul(x, y), nil })
}

// DivBounded returns a/b within the enumerated range, exact only.
func DivBounded(a, b int) (int, error) {
	return bounded2(a, b, Div)
}

// NegBounded returns -a within the enumerated range.
func NegBounded(a int) (int, error) {
	n, err := FromInt(a)
	if err != nil {
		return 0, err
	}

	return ToInt(Neg(n))
}

func bounded2(a, b int, op func(x, y Numeral) (Numeral, error)) (int, error) {
	na, err := FromInt(a)
	if err != nil {
		return 0, err
	}

	nb, err := FromInt(b)
	if err != nil {
		return 0, err
	}

	n, err := op(na, nb)
	if err != nil {
		return 0, err
	}

	return ToInt(n)
}
