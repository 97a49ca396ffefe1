// Package a exercises dimensionally consistent code: the analyzer must
// stay silent on every line here.
package a

import (
	"units"

	"github.com/unyt-go/unyt"
	"github.com/unyt-go/unyt/decq"
)

func Consistent() {
	width := unyt.New[units.Meter](6)
	height := unyt.New[units.Meter](4)

	area := unyt.Mul[units.SquareMeter](width, height)
	_ = unyt.Div[units.Meter](area, height)
	_ = unyt.Div[units.Unitless](width, height)

	mass := unyt.New[units.Kilogram](10.0)
	accel := unyt.New[units.Acceleration](5.0)
	force := unyt.Mul[units.Newton](mass, accel)
	dist := unyt.New[units.Meter](2.0)
	_ = unyt.Mul[units.Joule](force, dist)

	m := unyt.New[units.Meter](3)
	mm := unyt.Convert[units.Millimeter](m)
	_ = unyt.Convert[units.Meter](mm)

	_ = unyt.MulTen[units.Kilometer](m, unyt.TenTo[unyt.P3]{})
	km := unyt.New[units.Kilometer](2)
	_ = unyt.DivTen[units.Meter](km, unyt.TenTo[unyt.P3]{})
}

func ConsistentDecimal() {
	a := decq.New[units.Meter](10)
	b := decq.New[units.Second](5)

	_ = decq.Div[units.MeterPerSecond](a, b)
	_ = decq.Convert[units.Millimeter](a)
	_ = decq.MulTen[units.Kilometer](a, unyt.TenTo[unyt.P3]{})
}
