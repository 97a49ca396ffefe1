// Package unitcheck statically verifies the dimensional consistency of
// unit-combining operations.
//
// The Go compiler already rejects mixed units in same-descriptor
// operations (Add, Sub, comparison): the descriptor is part of the
// Quantity type. What it cannot do is compute the result descriptor of
// a multiplication, division or conversion, so those operations take
// the result descriptor as an explicit leading type argument. This
// analyzer closes the gap: at every call site of Mul, Div, MulTen,
// DivTen and Convert it recomputes the expected descriptor from the
// operand descriptors and reports
//
//   - result descriptors that do not match the operand combination,
//   - conversions between incompatible dimension vectors,
//   - operand mixes from different descriptor families, and
//   - combinations whose exponents leave the enumerated -30..30 range.
//
// A program that vets clean under unitcheck carries no dimensional
// inconsistencies into its build.
package unitcheck

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `check dimensional consistency of unit-combining operations

The analyzer recomputes the unit descriptor every Mul/Div/MulTen/DivTen/
Convert call site must produce and reports call sites whose declared
result descriptor disagrees with the algebra of the operand descriptors.`

// Analyzer is the unitcheck entry point.
var Analyzer = &analysis.Analyzer{
	Name:     "unitcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

type opKind int

const (
	opMul opKind = iota
	opDiv
	opMulTen
	opDivTen
	opConvert
)

func (k opKind) String() string {
	switch k {
	case opMul:
		return "Mul"
	case opDiv:
		return "Div"
	case opMulTen:
		return "MulTen"
	case opDivTen:
		return "DivTen"
	case opConvert:
		return "Convert"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// opSpec locates the descriptor-carrying type arguments within one
// checked operation's instantiation.
type opSpec struct {
	kind   opKind
	result int // index of the declared result descriptor
	left   int // index of the (first) operand descriptor
	right  int // index of the second operand descriptor, -1 if none
	factor int // index of the TenTo exponent marker, -1 if none
}

// checkedOps lists the unit-combining operations per package. Both the
// primitive-valued root package and the decimal-valued decq package
// carry the same five operations, with different type argument layouts
// (decq has no raw-type parameter).
var checkedOps = map[string]map[string]opSpec{
	"github.com/unyt-go/unyt": {
		"Mul":     {kind: opMul, result: 0, left: 2, right: 3, factor: -1},
		"Div":     {kind: opDiv, result: 0, left: 2, right: 3, factor: -1},
		"MulTen":  {kind: opMulTen, result: 0, left: 2, right: -1, factor: 3},
		"DivTen":  {kind: opDivTen, result: 0, left: 2, right: -1, factor: 3},
		"Convert": {kind: opConvert, result: 0, left: 2, right: -1, factor: -1},
	},
	"github.com/unyt-go/unyt/decq": {
		"Mul":     {kind: opMul, result: 0, left: 1, right: 2, factor: -1},
		"Div":     {kind: opDiv, result: 0, left: 1, right: 2, factor: -1},
		"MulTen":  {kind: opMulTen, result: 0, left: 1, right: -1, factor: 2},
		"DivTen":  {kind: opDivTen, result: 0, left: 1, right: -1, factor: 2},
		"Convert": {kind: opConvert, result: 0, left: 1, right: -1, factor: -1},
	},
}

func run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	// Every checked operation requires its result descriptor as an
	// explicit type argument, so every relevant instantiation sits
	// under an index expression.
	nodeFilter := []ast.Node{
		(*ast.IndexExpr)(nil),
		(*ast.IndexListExpr)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		var x ast.Expr
		switch n := node.(type) {
		case *ast.IndexExpr:
			x = n.X
		case *ast.IndexListExpr:
			x = n.X
		}

		ident := calleeIdent(x)
		if ident == nil {
			return
		}

		obj, ok := pass.TypesInfo.Uses[ident].(*types.Func)
		if !ok || obj.Pkg() == nil {
			return
		}

		ops, ok := checkedOps[obj.Pkg().Path()]
		if !ok {
			return
		}
		spec, ok := ops[obj.Name()]
		if !ok {
			return
		}

		inst, ok := pass.TypesInfo.Instances[ident]
		if !ok {
			return
		}

		checkInstance(pass, node.Pos(), obj, spec, inst.TypeArgs)
	})

	return nil, nil
}

func calleeIdent(x ast.Expr) *ast.Ident {
	switch e := x.(type) {
	case *ast.Ident:
		return e
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.ParenExpr:
		return calleeIdent(e.X)
	default:
		return nil
	}
}
