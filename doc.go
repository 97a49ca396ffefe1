// Package unyt attaches physical-unit descriptors to numeric values so
// that dimensionally inconsistent code is rejected before it runs, with
// the descriptor fully erased at execution time.
//
// A unit descriptor is a decimal-scale exponent plus one integer
// exponent per base dimension, both encoded as zero-size marker types.
// [Quantity] pairs a raw numeric value with a descriptor carried in a
// phantom type parameter: its memory layout is exactly that of the raw
// value.
//
// The checking work is split between three build stages:
//
//   - Same-unit operations ([Quantity.Add], [Quantity.Sub], comparison)
//     constrain both operands to the identical descriptor type, so the
//     Go compiler itself rejects mixed units there.
//   - Unit-combining operations ([Mul], [Div], [MulTen], [DivTen],
//     [Convert]) name their result descriptor as an explicit leading
//     type argument. The unitcheck analyzer recomputes the expected
//     descriptor at every call site and rejects mismatches, conversions
//     between incompatible dimensions, and exponents leaving the
//     enumerated -30..30 range.
//   - Descriptor families themselves are produced by the unitgen
//     generator from a declarative list of base dimensions; all of its
//     exponent arithmetic goes through the same bounded algebra.
//
// There is no runtime error path anywhere: a program that vets clean
// performs plain numeric arithmetic with no residual tagging.
package unyt
