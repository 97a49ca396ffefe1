// Package decq carries unit-tagged quantities over exact decimal raw
// values.
//
// It mirrors the primitive-valued quantity surface of the root package
// for code that cannot afford binary floating point — ledgers, tariffs,
// metrology. The descriptor rules are identical: same-unit operations
// are compiler-checked, unit-combining operations name their result
// descriptor explicitly and are validated by the unitcheck analyzer.
package decq

import (
	"github.com/shopspring/decimal"

	"github.com/unyt-go/unyt"
)

// Quantity is a decimal value tagged with a unit descriptor. Like its
// primitive counterpart it stores nothing but the raw value.
type Quantity[U unyt.Unit] struct {
	val decimal.Decimal
}

// New wraps a decimal under the descriptor U.
func New[U unyt.Unit](val decimal.Decimal) Quantity[U] {
	return Quantity[U]{val: val}
}

// NewFromInt wraps an integer raw value.
func NewFromInt[U unyt.Unit](val int64) Quantity[U] {
	return Quantity[U]{val: decimal.NewFromInt(val)}
}

// NewFromFloat wraps a float raw value.
func NewFromFloat[U unyt.Unit](val float64) Quantity[U] {
	return Quantity[U]{val: decimal.NewFromFloat(val)}
}

// Value returns the raw decimal.
func (q Quantity[U]) Value() decimal.Decimal {
	return q.val
}

// Add returns q+o; both operands carry the same descriptor by
// construction.
func (q Quantity[U]) Add(o Quantity[U]) Quantity[U] {
	return Quantity[U]{val: q.val.Add(o.val)}
}

// Sub returns q-o.
func (q Quantity[U]) Sub(o Quantity[U]) Quantity[U] {
	return Quantity[U]{val: q.val.Sub(o.val)}
}

// Neg returns -q.
func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{val: q.val.Neg()}
}

// Cmp forwards decimal comparison; quantities of different descriptors
// have no comparison defined at all.
func (q Quantity[U]) Cmp(o Quantity[U]) int {
	return q.val.Cmp(o.val)
}

// Equal reports raw-value equality.
func (q Quantity[U]) Equal(o Quantity[U]) bool {
	return q.val.Equal(o.val)
}

// IsZero reports whether the raw value is zero.
func (q Quantity[U]) IsZero() bool {
	return q.val.IsZero()
}

// Mul multiplies two quantities; the result descriptor R is named by
// the caller and validated by unitcheck.
func Mul[R unyt.Unit, U1, U2 unyt.Unit](a Quantity[U1], b Quantity[U2]) Quantity[R] {
	return Quantity[R]{val: a.val.Mul(b.val)}
}

// Div divides two quantities with the result descriptor named by the
// caller, as in [Mul].
func Div[R unyt.Unit, U1, U2 unyt.Unit](a Quantity[U1], b Quantity[U2]) Quantity[R] {
	return Quantity[R]{val: a.val.Div(b.val)}
}

// MulTen multiplies a quantity by the decimal factor 10^N, absorbing
// the factor into the descriptor's scale exponent; the raw value does
// not move.
func MulTen[R unyt.Unit, U unyt.Unit, N unyt.Const](q Quantity[U], _ unyt.TenTo[N]) Quantity[R] {
	return Quantity[R]{val: q.val}
}

// DivTen divides a quantity by the decimal factor 10^N, symmetric to
// [MulTen].
func DivTen[R unyt.Unit, U unyt.Unit, N unyt.Const](q Quantity[U], _ unyt.TenTo[N]) Quantity[R] {
	return Quantity[R]{val: q.val}
}

// Convert re-expresses a quantity in descriptor Y. Decimal shifting is
// exact in both directions, so unlike integer raw values no precision
// is lost converting to a coarser scale.
func Convert[Y unyt.Unit, U unyt.Unit](q Quantity[U]) Quantity[Y] {
	var from U
	var to Y

	return Quantity[Y]{val: q.val.Shift(int32(from.Scale() - to.Scale()))}
}
