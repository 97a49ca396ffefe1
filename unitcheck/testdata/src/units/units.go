// Package units is a small generated-style family for analyzer tests:
// three dimensions (time, length, mass) plus a second, unrelated
// family.
package units

import "github.com/unyt-go/unyt"

type Mech[EXP, S, M, KG unyt.Const] struct{}

func (Mech[EXP, S, M, KG]) Scale() int {
	var e EXP
	return e.Int()
}

type (
	Unitless       = Mech[unyt.Z0, unyt.Z0, unyt.Z0, unyt.Z0]
	Second         = Mech[unyt.Z0, unyt.P1, unyt.Z0, unyt.Z0]
	Meter          = Mech[unyt.Z0, unyt.Z0, unyt.P1, unyt.Z0]
	Kilogram       = Mech[unyt.Z0, unyt.Z0, unyt.Z0, unyt.P1]
	Millimeter     = Mech[unyt.N3, unyt.Z0, unyt.P1, unyt.Z0]
	Kilometer      = Mech[unyt.P3, unyt.Z0, unyt.P1, unyt.Z0]
	SquareMeter    = Mech[unyt.Z0, unyt.Z0, unyt.P2, unyt.Z0]
	MeterPerSecond = Mech[unyt.Z0, unyt.N1, unyt.P1, unyt.Z0]
	Acceleration   = Mech[unyt.Z0, unyt.N2, unyt.P1, unyt.Z0]
	Newton         = Mech[unyt.Z0, unyt.N2, unyt.P1, unyt.P1]
	Joule          = Mech[unyt.Z0, unyt.N2, unyt.P2, unyt.P1]
	Huge           = Mech[unyt.Z0, unyt.Z0, unyt.P20, unyt.Z0]
)

// Therm is a deliberately separate family used by cross-family cases.
type Therm[EXP, K unyt.Const] struct{}

func (Therm[EXP, K]) Scale() int {
	var e EXP
	return e.Int()
}

type Kelvin = Therm[unyt.Z0, unyt.P1]
