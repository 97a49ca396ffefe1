package si_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unyt-go/unyt"
	"github.com/unyt-go/unyt/si"
	"github.com/unyt-go/unyt/unitgen"
)

func TestMechanicsAlgebra(t *testing.T) {
	mass := unyt.New[si.Kilogram](10.0)
	accel := unyt.New[si.MeterPerSecondSquared](5.0)

	force := unyt.Mul[si.Newton](mass, accel)
	require.Equal(t, 50.0, force.Value())

	dist := unyt.New[si.Meter](2.0)
	energy := unyt.Mul[si.Joule](force, dist)
	require.Equal(t, 100.0, energy.Value())

	dur := unyt.New[si.Second](4.0)
	power := unyt.Div[si.Watt](energy, dur)
	require.Equal(t, 25.0, power.Value())
}

func TestPrefixConversions(t *testing.T) {
	m := unyt.New[si.Meter](3)

	mm := unyt.Convert[si.Millimeter](m)
	require.Equal(t, 3000, mm.Value())
	require.Equal(t, m, unyt.Convert[si.Meter](mm))

	km := unyt.MulTen[si.Kilometer](m, unyt.TenTo[unyt.P3]{})
	require.Equal(t, 3, km.Value())
	require.Equal(t, 3000.0, unyt.Convert[si.Meter](unyt.New[si.Kilometer](3.0)).Value())
}

func TestElectricalAlgebra(t *testing.T) {
	current := unyt.New[si.Ampere](2.0)
	resistance := unyt.New[si.Ohm](50.0)

	voltage := unyt.Mul[si.Volt](current, resistance)
	require.Equal(t, 100.0, voltage.Value())

	power := unyt.Mul[si.Watt](voltage, current)
	require.Equal(t, 200.0, power.Value())
	require.Equal(t, 0.2, unyt.Convert[si.Kilowatt](power).Value())
}

func TestQuantityAliases(t *testing.T) {
	var d si.Meters[int] = unyt.New[si.Meter](7)
	require.Equal(t, 7, d.Value())

	var e si.Joules[float64] = unyt.Mul[si.Joule](
		unyt.New[si.Newton](3.0),
		unyt.New[si.Meter](2.0),
	)
	require.Equal(t, 6.0, e.Value())
}

// The committed catalog must be exactly what unitgen produces from the
// declaration.
func TestGeneratedCatalogIsCurrent(t *testing.T) {
	decl, err := os.ReadFile("si.yaml")
	require.NoError(t, err)

	want, err := os.ReadFile("si_gen.go")
	require.NoError(t, err)

	got, err := unitgen.Generate(decl)
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}
