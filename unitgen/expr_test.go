package unitgen

import (
	"testing"

	"github.com/unyt-go/unyt/internal/dim"
)

func exprEnv() map[string]dim.Desc {
	// s, m, kg over a three-dimension family.
	env := map[string]dim.Desc{
		"s":  dim.Base(3, 0),
		"m":  dim.Base(3, 1),
		"kg": dim.Base(3, 2),
	}

	newton, _ := dim.Mul(env["kg"], env["m"])
	newton.Dims[0] = -2
	env["Newton"] = newton

	return env
}

func TestEvalExpr(t *testing.T) {
	env := exprEnv()

	tests := []struct {
		name string
		expr string
		want dim.Desc
	}{
		{name: "base", expr: "m", want: dim.Desc{Dims: []int{0, 1, 0}}},
		{name: "product", expr: "m*m", want: dim.Desc{Dims: []int{0, 2, 0}}},
		{name: "power", expr: "m^3", want: dim.Desc{Dims: []int{0, 3, 0}}},
		{name: "negative power", expr: "s^-2", want: dim.Desc{Dims: []int{-2, 0, 0}}},
		{name: "quotient", expr: "m/s", want: dim.Desc{Dims: []int{-1, 1, 0}}},
		{name: "force", expr: "kg*m/s^2", want: dim.Desc{Dims: []int{-2, 1, 1}}},
		{name: "parens", expr: "kg*(m/(s*s))", want: dim.Desc{Dims: []int{-2, 1, 1}}},
		{name: "named unit reuse", expr: "Newton*m", want: dim.Desc{Dims: []int{-2, 2, 1}}},
		{name: "dimensionless", expr: "1", want: dim.Desc{Dims: []int{0, 0, 0}}},
		{name: "inverse", expr: "1/s", want: dim.Desc{Dims: []int{-1, 0, 0}}},
		{name: "decimal factor", expr: "m/10^3", want: dim.Desc{Scale: -3, Dims: []int{0, 1, 0}}},
		{name: "bare ten", expr: "10*m", want: dim.Desc{Scale: 1, Dims: []int{0, 1, 0}}},
		{name: "litre style", expr: "m^3/10^3", want: dim.Desc{Scale: -3, Dims: []int{0, 3, 0}}},
		{name: "spaces", expr: " kg * m / s^2 ", want: dim.Desc{Dims: []int{-2, 1, 1}}},
		{name: "scaled power distributes", expr: "(m/10^3)^3", want: dim.Desc{Scale: -9, Dims: []int{0, 3, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalExpr(tt.expr, 3, env)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalExprErrors(t *testing.T) {
	env := exprEnv()

	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "unknown symbol", expr: "furlong"},
		{name: "trailing garbage", expr: "m s"},
		{name: "missing operand", expr: "m*"},
		{name: "missing paren", expr: "(m/s"},
		{name: "bad factor", expr: "3*m"},
		{name: "missing exponent", expr: "m^"},
		{name: "range overflow", expr: "m^20*m^20"},
		{name: "power overflow", expr: "m^40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := evalExpr(tt.expr, 3, env); err == nil {
				t.Errorf("no error for %q", tt.expr)
			}
		})
	}
}
