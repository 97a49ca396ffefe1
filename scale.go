package unyt

import "golang.org/x/exp/constraints"

// Real is the set of raw numeric types a Quantity can carry.
type Real interface {
	constraints.Integer | constraints.Float
}

// TenTo is a zero-size tag standing for "multiply by 10^N". It is
// consumed by [MulTen] and [DivTen] and by the family generator's
// prefix handling; it is never stored anywhere at runtime.
type TenTo[N Const] struct{}

// ScaleByPowerOfTen applies the rescaling step of a unit conversion to
// a raw value. The exponent follows the conversion convention
// scale(to)-scale(from): a negative exponent multiplies by 10^-exp, a
// non-negative one divides by 10^exp. Integer division truncates.
func ScaleByPowerOfTen[T Real](v T, exp int) T {
	if exp == 0 {
		return v
	}

	k := exp
	if k < 0 {
		k = -k
	}

	p := T(1)
	for i := 0; i < k; i++ {
		p *= 10
	}

	if exp < 0 {
		return v * p
	}
	return v / p
}
