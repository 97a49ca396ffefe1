// Package b collects dimensionally inconsistent call sites. Every
// line below type-checks — the descriptors are erased as far as the
// compiler is concerned — and must be rejected by the analyzer.
package b

import (
	"units"

	"github.com/unyt-go/unyt"
	"github.com/unyt-go/unyt/decq"
)

func Inconsistent() {
	width := unyt.New[units.Meter](6)
	height := unyt.New[units.Meter](4)

	_ = unyt.Mul[units.Meter](width, height)        // want `does not match the product of the operands`
	area := unyt.Mul[units.SquareMeter](width, height)
	_ = unyt.Div[units.SquareMeter](area, height)   // want `does not match the quotient of the operands`
	_ = unyt.Div[units.Meter](width, height)        // want `does not match the quotient of the operands`

	m := unyt.New[units.Meter](3)
	_ = unyt.Convert[units.Kilogram](m)             // want `dimension vectors differ`
	_ = unyt.Convert[units.SquareMeter](m)          // want `dimension vectors differ`

	kelvin := unyt.New[units.Kelvin](300.0)
	mass := unyt.New[units.Kilogram](10.0)
	_ = unyt.Mul[units.Newton](mass, kelvin)        // want `operands belong to different unit families`
	_ = unyt.Mul[units.Kelvin](width, height)       // want `belongs to family Therm, operands to Mech`
	_ = unyt.Convert[units.Kelvin](m)               // want `units belong to different unit families`

	huge := unyt.New[units.Huge](1)
	_ = unyt.Mul[units.SquareMeter](huge, huge)     // want `out of the enumerated range`

	_ = unyt.MulTen[units.Meter](m, unyt.TenTo[unyt.P3]{})      // want `does not match the scaled unit`
	km := unyt.New[units.Kilometer](2)
	_ = unyt.DivTen[units.Millimeter](km, unyt.TenTo[unyt.P3]{}) // want `does not match the scaled unit`
}

func InconsistentDecimal() {
	a := decq.New[units.Meter](10)
	b := decq.New[units.Second](5)

	_ = decq.Mul[units.Meter](a, a)          // want `does not match the product of the operands`
	_ = decq.Div[units.Meter](a, b)          // want `does not match the quotient of the operands`
	_ = decq.Convert[units.Second](a)        // want `dimension vectors differ`
	_ = decq.MulTen[units.Meter](a, unyt.TenTo[unyt.P3]{}) // want `does not match the scaled unit`
}
