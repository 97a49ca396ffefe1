package unitcheck

import (
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/unyt-go/unyt/internal/dim"
	"github.com/unyt-go/unyt/internal/numeral"
)

// markersPath is the package whose named zero-size types encode bounded
// integers at the type level. Descriptor decoding recognizes a unit
// family structurally: any generic named type instantiated purely with
// these markers.
const markersPath = "github.com/unyt-go/unyt"

// unitType is a decoded unit descriptor: the family it belongs to, its
// descriptor value and the family's dimension names for diagnostics.
type unitType struct {
	family *types.TypeName
	desc   dim.Desc
	names  []string
	orig   types.Type
}

func (u *unitType) render(pass *analysis.Pass) string {
	return types.TypeString(u.orig, types.RelativeTo(pass.Pkg)) + " = " + dim.Format(u.desc, u.names)
}

// decodeUnit interprets a type argument as a unit descriptor.
func decodeUnit(t types.Type) (*unitType, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	targs := named.TypeArgs()
	if targs.Len() < 1 {
		return nil, false
	}

	exps := make([]int, 0, targs.Len())
	for i := 0; i < targs.Len(); i++ {
		v, ok := decodeConst(targs.At(i))
		if !ok {
			return nil, false
		}
		exps = append(exps, v)
	}

	origin := named.Origin()

	names := make([]string, 0, targs.Len()-1)
	tparams := origin.TypeParams()
	for i := 1; i < tparams.Len(); i++ {
		names = append(names, strings.ToLower(tparams.At(i).Obj().Name()))
	}

	return &unitType{
		family: origin.Obj(),
		desc:   dim.Desc{Scale: exps[0], Dims: exps[1:]},
		names:  names,
		orig:   t,
	}, true
}

// decodeConst interprets a type argument as one of the bounded integer
// markers (N30..P30).
func decodeConst(t types.Type) (int, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return 0, false
	}

	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != markersPath {
		return 0, false
	}

	v, err := dim.ParseConstName(obj.Name())
	if err != nil {
		return 0, false
	}

	return v, true
}

func checkInstance(pass *analysis.Pass, pos token.Pos, fn *types.Func, spec opSpec, targs *types.TypeList) {
	if spec.result >= targs.Len() || spec.left >= targs.Len() ||
		spec.right >= targs.Len() || spec.factor >= targs.Len() {
		return
	}

	left, ok := decodeUnit(targs.At(spec.left))
	if !ok {
		pass.Reportf(pos, "%s: operand type %s is not a generated unit descriptor",
			fn.Name(), typeStr(pass, targs.At(spec.left)))
		return
	}

	result, ok := decodeUnit(targs.At(spec.result))
	if !ok {
		pass.Reportf(pos, "%s: declared result type %s is not a generated unit descriptor",
			fn.Name(), typeStr(pass, targs.At(spec.result)))
		return
	}

	switch spec.kind {
	case opMul, opDiv:
		right, ok := decodeUnit(targs.At(spec.right))
		if !ok {
			pass.Reportf(pos, "%s: operand type %s is not a generated unit descriptor",
				fn.Name(), typeStr(pass, targs.At(spec.right)))
			return
		}

		if left.family != right.family {
			pass.Reportf(pos, "%s: operands belong to different unit families (%s and %s)",
				fn.Name(), left.family.Name(), right.family.Name())
			return
		}

		var (
			expected dim.Desc
			err      error
			word     string
		)
		if spec.kind == opMul {
			expected, err = dim.Mul(left.desc, right.desc)
			word = "the product"
		} else {
			expected, err = dim.Div(left.desc, right.desc)
			word = "the quotient"
		}
		if err != nil {
			pass.Reportf(pos, "%s: %v", fn.Name(), err)
			return
		}

		reportResult(pass, pos, fn, result, left.family, expected, word)

	case opMulTen, opDivTen:
		n, ok := decodeConst(targs.At(spec.factor))
		if !ok {
			pass.Reportf(pos, "%s: decimal factor type %s is not a bounded integer marker",
				fn.Name(), typeStr(pass, targs.At(spec.factor)))
			return
		}
		if spec.kind == opDivTen {
			var err error
			n, err = numeral.NegBounded(n)
			if err != nil {
				pass.Reportf(pos, "%s: %v", fn.Name(), err)
				return
			}
		}

		expected, err := dim.Shift(left.desc, n)
		if err != nil {
			pass.Reportf(pos, "%s: %v", fn.Name(), err)
			return
		}

		reportResult(pass, pos, fn, result, left.family, expected, "the scaled unit")

	case opConvert:
		if left.family != result.family {
			pass.Reportf(pos, "Convert: units belong to different unit families (%s and %s)",
				left.family.Name(), result.family.Name())
			return
		}

		if _, err := dim.ConvertExp(left.desc, result.desc); err != nil {
			pass.Reportf(pos, "cannot convert %s to %s: dimension vectors differ",
				left.render(pass), result.render(pass))
		}
	}
}

func reportResult(pass *analysis.Pass, pos token.Pos, fn *types.Func, result *unitType, family *types.TypeName, expected dim.Desc, word string) {
	if result.family != family {
		pass.Reportf(pos, "%s: declared result %s belongs to family %s, operands to %s",
			fn.Name(), typeStr(pass, result.orig), result.family.Name(), family.Name())
		return
	}

	if !result.desc.Equal(expected) {
		pass.Reportf(pos, "%s: declared result %s does not match %s of the operands, %s",
			fn.Name(), result.render(pass), word, dim.Format(expected, result.names))
	}
}

func typeStr(pass *analysis.Pass, t types.Type) string {
	return types.TypeString(t, types.RelativeTo(pass.Pkg))
}
