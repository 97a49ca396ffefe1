// Package dim implements value-level unit descriptors and their algebra.
//
// A descriptor pairs one decimal-scale exponent with a vector of
// per-dimension exponents. Descriptors exist only inside build-time
// tooling (the family generator and the consistency analyzer); generated
// programs carry units purely in their types.
//
// Every exponent computation goes through the numeral bridge, so the
// algebra is closed over the bridge's enumerated range and anything
// outside it is an error, not a wrapped-around exponent.
package dim

import (
	"fmt"

	"github.com/unyt-go/unyt/internal/numeral"
)

// Desc is a unit descriptor: a power-of-ten scale exponent plus one
// exponent per base dimension. Immutable; operations return new values.
type Desc struct {
	Scale int
	Dims  []int
}

// Zero returns the dimensionless descriptor of the given arity.
func Zero(arity int) Desc {
	return Desc{Dims: make([]int, arity)}
}

// Base returns the descriptor of the i-th base dimension: scale zero,
// a single exponent 1 at position i.
func Base(arity, i int) Desc {
	d := Zero(arity)
	d.Dims[i] = 1
	return d
}

func (d Desc) clone() Desc {
	out := Desc{Scale: d.Scale, Dims: make([]int, len(d.Dims))}
	copy(out.Dims, d.Dims)
	return out
}

// Equal reports structural identity: same scale, same vector.
func (d Desc) Equal(o Desc) bool {
	if d.Scale != o.Scale || len(d.Dims) != len(o.Dims) {
		return false
	}
	for i, v := range d.Dims {
		if o.Dims[i] != v {
			return false
		}
	}
	return true
}

// ConvertibleTo reports whether a conversion relation exists between d
// and o: identical dimension vectors, scale free to differ.
func (d Desc) ConvertibleTo(o Desc) bool {
	if len(d.Dims) != len(o.Dims) {
		return false
	}
	for i, v := range d.Dims {
		if o.Dims[i] != v {
			return false
		}
	}
	return true
}

// Dimensionless reports whether every dimension exponent is zero.
func (d Desc) Dimensionless() bool {
	for _, v := range d.Dims {
		if v != 0 {
			return false
		}
	}
	return true
}

// Mul combines two descriptors of the same family: scales add, vectors
// add component-wise.
func Mul(a, b Desc) (Desc, error) {
	return combine(a, b, numeral.AddBounded)
}

// Div combines two descriptors of the same family: scales subtract,
// vectors subtract component-wise.
func Div(a, b Desc) (Desc, error) {
	return combine(a, b, numeral.SubBounded)
}

func combine(a, b Desc, op func(x, y int) (int, error)) (Desc, error) {
	if len(a.Dims) != len(b.Dims) {
		return Desc{}, fmt.Errorf("descriptor arity mismatch: %d vs %d dimensions", len(a.Dims), len(b.Dims))
	}

	out := Desc{Dims: make([]int, len(a.Dims))}

	s, err := op(a.Scale, b.Scale)
	if err != nil {
		return Desc{}, fmt.Errorf("scale exponent: %w", err)
	}
	out.Scale = s

	for i := range a.Dims {
		v, err := op(a.Dims[i], b.Dims[i])
		if err != nil {
			return Desc{}, fmt.Errorf("dimension %d exponent: %w", i, err)
		}
		out.Dims[i] = v
	}

	return out, nil
}

// Shift multiplies a descriptor by a decimal factor 10^n: only the
// scale exponent moves, the vector stays put.
func Shift(d Desc, n int) (Desc, error) {
	s, err := numeral.AddBounded(d.Scale, n)
	if err != nil {
		return Desc{}, fmt.Errorf("scale exponent: %w", err)
	}

	out := d.clone()
	out.Scale = s
	return out, nil
}

// Pow raises a descriptor to an integer power via numeral
// multiplication of every exponent. Negative powers invert.
func Pow(d Desc, n int) (Desc, error) {
	out := Desc{Dims: make([]int, len(d.Dims))}

	s, err := numeral.MulBounded(d.Scale, n)
	if err != nil {
		return Desc{}, fmt.Errorf("scale exponent: %w", err)
	}
	out.Scale = s

	for i, v := range d.Dims {
		w, err := numeral.MulBounded(v, n)
		if err != nil {
			return Desc{}, fmt.Errorf("dimension %d exponent: %w", i, err)
		}
		out.Dims[i] = w
	}

	return out, nil
}

// Root divides every exponent of a descriptor by n, exact-only. This is
// the descriptor counterpart of the numeral division operator.
func Root(d Desc, n int) (Desc, error) {
	out := Desc{Dims: make([]int, len(d.Dims))}

	s, err := numeral.DivBounded(d.Scale, n)
	if err != nil {
		return Desc{}, fmt.Errorf("scale exponent: %w", err)
	}
	out.Scale = s

	for i, v := range d.Dims {
		w, err := numeral.DivBounded(v, n)
		if err != nil {
			return Desc{}, fmt.Errorf("dimension %d exponent: %w", i, err)
		}
		out.Dims[i] = w
	}

	return out, nil
}

// ConvertExp returns the power-of-ten exponent applied to a raw value
// when converting a quantity from descriptor `from` to descriptor `to`,
// i.e. scale(to) - scale(from). The difference itself is plain integer
// arithmetic: both scales already live inside the enumerated range, and
// their difference is a value-level rescale factor, not a new
// descriptor exponent.
func ConvertExp(from, to Desc) (int, error) {
	if !from.ConvertibleTo(to) {
		return 0, fmt.Errorf("no conversion between incompatible dimension vectors %v and %v", from.Dims, to.Dims)
	}

	return to.Scale - from.Scale, nil
}
