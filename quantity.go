package unyt

// Unit is the capability every unit descriptor satisfies. Family types
// emitted by unitgen implement it for each of their instantiations.
// Scale reports the descriptor's power-of-ten scale exponent; the
// dimension vector never surfaces at the value level, it lives purely
// in the descriptor's type arguments.
type Unit interface {
	Scale() int
}

// Quantity is a raw numeric value tagged with a unit descriptor. The
// descriptor is a phantom type parameter: a Quantity stores nothing but
// its raw value, and two Quantity types with different descriptors are
// unrelated as far as the compiler is concerned.
//
// Quantities of the same descriptor are comparable with == and usable
// as map keys whenever the raw type is.
type Quantity[T Real, U Unit] struct {
	val T
}

// New wraps a raw value under the descriptor U. The descriptor is
// chosen by the caller as a type argument, never passed as a value:
//
//	d := unyt.New[si.Meter](42)
func New[U Unit, T Real](val T) Quantity[T, U] {
	return Quantity[T, U]{val: val}
}

// Value returns the raw value.
func (q Quantity[T, U]) Value() T {
	return q.val
}

// Set replaces the raw value in place. The descriptor stays untouched;
// no operation ever changes the unit of an existing Quantity.
func (q *Quantity[T, U]) Set(val T) {
	q.val = val
}

// Ptr exposes the raw value for in-place mutation.
func (q *Quantity[T, U]) Ptr() *T {
	return &q.val
}

// Add returns q+o. Both operands carry the same descriptor by
// construction, so adding a length to a mass simply does not type
// check.
func (q Quantity[T, U]) Add(o Quantity[T, U]) Quantity[T, U] {
	return Quantity[T, U]{val: q.val + o.val}
}

// Sub returns q-o under the same-descriptor constraint as [Quantity.Add].
func (q Quantity[T, U]) Sub(o Quantity[T, U]) Quantity[T, U] {
	return Quantity[T, U]{val: q.val - o.val}
}

// Less forwards ordering to the raw value. Quantities of different
// descriptors are not comparable: no operation is defined between them.
func (q Quantity[T, U]) Less(o Quantity[T, U]) bool {
	return q.val < o.val
}

// Mul multiplies two quantities of the same family. The result
// descriptor R is named by the caller and validated by the unitcheck
// analyzer against the operand descriptors:
//
//	area := unyt.Mul[si.SquareMeter](width, height)
func Mul[R Unit, T Real, U1, U2 Unit](a Quantity[T, U1], b Quantity[T, U2]) Quantity[T, R] {
	return Quantity[T, R]{val: a.val * b.val}
}

// Div divides two quantities of the same family, with the result
// descriptor named by the caller as in [Mul]. Dividing a quantity by
// another of the identical descriptor yields the family's dimensionless
// unit.
func Div[R Unit, T Real, U1, U2 Unit](a Quantity[T, U1], b Quantity[T, U2]) Quantity[T, R] {
	return Quantity[T, R]{val: a.val / b.val}
}

// MulTen multiplies a quantity by the decimal factor 10^N, absorbing
// the factor into the descriptor's scale exponent. The raw value does
// not move: 3 m times 10^3 is 3 km.
func MulTen[R Unit, T Real, U Unit, N Const](q Quantity[T, U], _ TenTo[N]) Quantity[T, R] {
	return Quantity[T, R]{val: q.val}
}

// DivTen divides a quantity by the decimal factor 10^N, symmetric to
// [MulTen].
func DivTen[R Unit, T Real, U Unit, N Const](q Quantity[T, U], _ TenTo[N]) Quantity[T, R] {
	return Quantity[T, R]{val: q.val}
}

// Convert re-expresses a quantity in descriptor Y, rescaling the raw
// value by the difference of the two scale exponents. Y must share U's
// dimension vector; the unitcheck analyzer rejects conversions between
// incompatible dimensions.
//
//	mm := unyt.Convert[si.Millimeter](m)
func Convert[Y Unit, T Real, U Unit](q Quantity[T, U]) Quantity[T, Y] {
	var from U
	var to Y

	return Quantity[T, Y]{val: ScaleByPowerOfTen(q.val, to.Scale()-from.Scale())}
}
