package dim

import (
	"errors"
	"testing"

	"github.com/unyt-go/unyt/internal/numeral"
)

func TestMulDivRoundTrip(t *testing.T) {
	// Multiplying and then dividing by the same descriptor must return
	// to the starting point.
	u1 := Desc{Scale: 3, Dims: []int{1, -2, 0, 4}}
	u2 := Desc{Scale: -1, Dims: []int{2, 1, -3, 0}}

	prod, err := Mul(u1, u2)
	if err != nil {
		t.Fatal(err)
	}

	back, err := Div(prod, u2)
	if err != nil {
		t.Fatal(err)
	}

	if !back.Equal(u1) {
		t.Errorf("round trip gave %v, want %v", back, u1)
	}
}

func TestMulCommutes(t *testing.T) {
	u1 := Desc{Scale: 2, Dims: []int{1, 0, -1}}
	u2 := Desc{Scale: -3, Dims: []int{0, 2, 1}}

	ab, err := Mul(u1, u2)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Mul(u2, u1)
	if err != nil {
		t.Fatal(err)
	}

	if !ab.Equal(ba) {
		t.Errorf("combination is not commutative: %v vs %v", ab, ba)
	}
}

func TestDimensionlessIdentity(t *testing.T) {
	u := Desc{Scale: 0, Dims: []int{0, 1, 0}}
	one := Zero(3)

	prod, err := Mul(u, one)
	if err != nil {
		t.Fatal(err)
	}
	if !prod.Equal(u) {
		t.Errorf("u * 1 = %v, want %v", prod, u)
	}

	self, err := Div(u, u)
	if err != nil {
		t.Fatal(err)
	}
	if !self.Equal(one) {
		t.Errorf("u / u = %v, want dimensionless", self)
	}
	if !self.Dimensionless() {
		t.Error("u / u is not reported dimensionless")
	}
}

func TestCombineErrors(t *testing.T) {
	if _, err := Mul(Zero(2), Zero(3)); err == nil {
		t.Error("arity mismatch not rejected")
	}

	big := Desc{Scale: 0, Dims: []int{20}}
	if _, err := Mul(big, big); err == nil {
		t.Error("no error on exponent 40")
	} else if !errors.Is(err, numeral.ErrRange) {
		t.Errorf("expected ErrRange, got %v", err)
	}
}

func TestShiftAndPow(t *testing.T) {
	m := Base(3, 1)

	mm, err := Shift(m, -3)
	if err != nil {
		t.Fatal(err)
	}
	if mm.Scale != -3 || !mm.ConvertibleTo(m) {
		t.Errorf("shift by -3 gave %v", mm)
	}

	volume, err := Pow(mm, 3)
	if err != nil {
		t.Fatal(err)
	}
	if volume.Scale != -9 || volume.Dims[1] != 3 {
		t.Errorf("mm^3 = %v", volume)
	}

	inv, err := Pow(m, -1)
	if err != nil {
		t.Fatal(err)
	}
	if inv.Dims[1] != -1 {
		t.Errorf("m^-1 = %v", inv)
	}

	side, err := Root(volume, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !side.Equal(mm) {
		t.Errorf("(mm^3)^(1/3) = %v, want %v", side, mm)
	}

	if _, err := Root(volume, 2); !errors.Is(err, numeral.ErrInexact) {
		t.Errorf("non-exact root: expected ErrInexact, got %v", err)
	}
}

func TestConvertExp(t *testing.T) {
	m := Base(2, 0)
	mm, err := Shift(m, -3)
	if err != nil {
		t.Fatal(err)
	}

	exp, err := ConvertExp(m, mm)
	if err != nil {
		t.Fatal(err)
	}
	if exp != -3 {
		t.Errorf("m -> mm exponent = %d, want -3", exp)
	}

	exp, err = ConvertExp(mm, m)
	if err != nil {
		t.Fatal(err)
	}
	if exp != 3 {
		t.Errorf("mm -> m exponent = %d, want 3", exp)
	}

	kg := Base(2, 1)
	if _, err := ConvertExp(m, kg); err == nil {
		t.Error("conversion between different dimension vectors not rejected")
	}
}

func TestConstNames(t *testing.T) {
	tests := []struct {
		value int
		name  string
	}{
		{value: 0, name: "Z0"},
		{value: 1, name: "P1"},
		{value: 30, name: "P30"},
		{value: -1, name: "N1"},
		{value: -30, name: "N30"},
	}

	for _, tt := range tests {
		name, err := ConstName(tt.value)
		if err != nil {
			t.Fatalf("ConstName(%d): %v", tt.value, err)
		}
		if name != tt.name {
			t.Errorf("ConstName(%d) = %q, want %q", tt.value, name, tt.name)
		}

		back, err := ParseConstName(name)
		if err != nil {
			t.Fatalf("ParseConstName(%q): %v", name, err)
		}
		if back != tt.value {
			t.Errorf("ParseConstName(%q) = %d, want %d", name, back, tt.value)
		}
	}

	if _, err := ConstName(31); !errors.Is(err, numeral.ErrRange) {
		t.Errorf("ConstName(31): expected ErrRange, got %v", err)
	}

	for _, bad := range []string{"", "Q3", "Z1", "P0", "N0", "P31", "N31", "Px"} {
		if _, err := ParseConstName(bad); err == nil {
			t.Errorf("ParseConstName(%q) did not fail", bad)
		}
	}
}

func TestFormat(t *testing.T) {
	names := []string{"s", "m", "kg"}

	tests := []struct {
		name string
		d    Desc
		want string
	}{
		{name: "dimensionless", d: Zero(3), want: "1"},
		{name: "base", d: Base(3, 1), want: "m"},
		{name: "force", d: Desc{Dims: []int{-2, 1, 1}}, want: "s^-2·m·kg"},
		{name: "scaled", d: Desc{Scale: 3, Dims: []int{0, 1, 0}}, want: "10^3·m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d, names); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
