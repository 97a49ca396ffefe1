package unitgen

import (
	"fmt"
	"strings"

	"github.com/unyt-go/unyt/internal/dim"
)

// Family is a fully resolved unit system: the declaration plus the
// descriptor of every alias the generator is going to emit.
type Family struct {
	decl    *Declaration
	symbols []string
	params  []string
	env     map[string]dim.Desc
	aliases []alias
}

type alias struct {
	name     string
	doc      string
	desc     dim.Desc
	quantity string
}

// NewFamily resolves a declaration into a family, evaluating every unit
// expression and prefix shift through the bounded descriptor algebra.
// Any exponent outside the enumerated range fails here, before a single
// line of code is emitted.
func NewFamily(decl *Declaration) (*Family, error) {
	arity := len(decl.Dimensions)

	f := &Family{
		decl: decl,
		env:  make(map[string]dim.Desc),
	}

	params := []string{"EXP"}
	seenParams := map[string]bool{"EXP": true}
	for _, d := range decl.Dimensions {
		f.symbols = append(f.symbols, d.Symbol)

		param := strings.ToUpper(d.Symbol)
		if seenParams[param] {
			return nil, fmt.Errorf("dimension %q: symbol %q clashes with another type parameter %q", d.Name, d.Symbol, param)
		}
		seenParams[param] = true
		params = append(params, param)
	}
	f.params = params

	used := map[string]bool{decl.System: true}
	add := func(a alias) error {
		if used[a.name] {
			return fmt.Errorf("duplicate generated name %q", a.name)
		}
		used[a.name] = true
		if a.quantity != "" {
			if used[a.quantity] {
				return fmt.Errorf("duplicate generated name %q", a.quantity)
			}
			used[a.quantity] = true
		}
		f.aliases = append(f.aliases, a)
		return nil
	}

	if err := add(alias{
		name: decl.Dimensionless,
		doc:  fmt.Sprintf("%s is the dimensionless unit of the %s family.", decl.Dimensionless, decl.System),
		desc: dim.Zero(arity),
	}); err != nil {
		return nil, err
	}

	for i, d := range decl.Dimensions {
		base := dim.Base(arity, i)
		f.env[d.Symbol] = base
		f.env[d.Base] = base

		if err := add(alias{
			name:     d.Base,
			doc:      fmt.Sprintf("%s is the base unit of the %s dimension (%s).", d.Base, d.Name, d.Symbol),
			desc:     base,
			quantity: d.Quantity,
		}); err != nil {
			return nil, err
		}

		if err := f.addPrefixed(add, d.Base, base, d.Prefixes); err != nil {
			return nil, err
		}
	}

	for _, u := range decl.Units {
		desc, err := evalExpr(u.Expr, arity, f.env)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", u.Name, err)
		}
		f.env[u.Name] = desc

		if err := add(alias{
			name:     u.Name,
			doc:      fmt.Sprintf("%s is %s, defined as %s.", u.Name, dim.Format(desc, f.symbols), exprDoc(u.Expr)),
			desc:     desc,
			quantity: u.Quantity,
		}); err != nil {
			return nil, err
		}

		if err := f.addPrefixed(add, u.Name, desc, u.Prefixes); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (f *Family) addPrefixed(add func(alias) error, unitName string, desc dim.Desc, set PrefixSet) error {
	for _, prefix := range set.Names() {
		exp := prefixes[prefix]

		shifted, err := dim.Shift(desc, exp)
		if err != nil {
			return fmt.Errorf("prefix %s on %s: %w", prefix, unitName, err)
		}

		name := titleFirst(prefix) + lowerFirst(unitName)
		if err := add(alias{
			name: name,
			doc:  fmt.Sprintf("%s is %s scaled by 10^%d.", name, unitName, exp),
			desc: shifted,
		}); err != nil {
			return err
		}
	}

	return nil
}

// Lookup returns the resolved descriptor of a dimension symbol or unit
// name within the family.
func (f *Family) Lookup(name string) (dim.Desc, bool) {
	d, ok := f.env[name]
	return d, ok
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
