package unitgen

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Declaration is the YAML input of the generator: a family name, an
// ordered list of base dimensions and any number of derived units
// defined by unit expressions over them.
type Declaration struct {
	// System names the emitted family type, e.g. "Si".
	System string `yaml:"system"`
	// Package is the Go package name of the emitted file.
	Package string `yaml:"package"`
	// Dimensionless optionally renames the all-zeros alias,
	// "Unitless" by default.
	Dimensionless string `yaml:"dimensionless"`
	// Dimensions declares the base dimensions in vector order.
	Dimensions []Dimension `yaml:"dimensions"`
	// Units declares derived units as expressions over dimension
	// symbols and previously declared unit names.
	Units []UnitDecl `yaml:"units"`
}

// Dimension is one base dimension of a family.
type Dimension struct {
	// Name describes the physical quantity, e.g. "length".
	Name string `yaml:"name"`
	// Base names the emitted base unit alias, e.g. "Meter".
	Base string `yaml:"base"`
	// Symbol is the short form used in unit expressions and in the
	// family's type parameter list, e.g. "m".
	Symbol string `yaml:"symbol"`
	// Prefixes requests decimal-prefixed aliases of the base unit.
	Prefixes PrefixSet `yaml:"prefixes"`
	// Quantity optionally names a generic quantity alias, e.g.
	// "Meters" for `type Meters[T unyt.Real] = unyt.Quantity[T, Meter]`.
	Quantity string `yaml:"quantity"`
}

// UnitDecl is one derived unit of a family.
type UnitDecl struct {
	Name string `yaml:"name"`
	// Expr combines dimension symbols, earlier unit names and decimal
	// factors: "kg*m/s^2", "m^3/10^3", "1/s".
	Expr string `yaml:"expr"`
	// Prefixes requests decimal-prefixed aliases of this unit.
	Prefixes PrefixSet `yaml:"prefixes"`
	// Quantity optionally names a generic quantity alias.
	Quantity string `yaml:"quantity"`
}

// prefixes maps SI prefix names to their decimal exponents.
var prefixes = map[string]int{
	"quecto": -30,
	"ronto":  -27,
	"yocto":  -24,
	"zepto":  -21,
	"atto":   -18,
	"femto":  -15,
	"pico":   -12,
	"nano":   -9,
	"micro":  -6,
	"milli":  -3,
	"centi":  -2,
	"deci":   -1,
	"deka":   1,
	"hecto":  2,
	"kilo":   3,
	"mega":   6,
	"giga":   9,
	"tera":   12,
	"peta":   15,
	"exa":    18,
	"zetta":  21,
	"yotta":  24,
	"ronna":  27,
	"quetta": 30,
}

// PrefixSet selects decimal prefixes for a unit. In YAML it is either
// the scalar "all" or a list of prefix names.
type PrefixSet struct {
	names []string
}

var _ yaml.Unmarshaler = (*PrefixSet)(nil)

func (p *PrefixSet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != "all" {
			return fmt.Errorf("prefixes must be %q or a list of prefix names, got %q", "all", node.Value)
		}

		p.names = allPrefixNames()
		return nil

	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return fmt.Errorf("decode prefix list: %w", err)
		}

		for _, name := range names {
			if _, ok := prefixes[name]; !ok {
				return fmt.Errorf("unknown decimal prefix %q", name)
			}
		}

		p.names = names
		return nil

	default:
		return fmt.Errorf("prefixes must be %q or a list of prefix names", "all")
	}
}

// Names returns the selected prefix names ordered by exponent.
func (p PrefixSet) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	sort.Slice(out, func(i, j int) bool { return prefixes[out[i]] < prefixes[out[j]] })
	return out
}

func allPrefixNames() []string {
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return prefixes[names[i]] < prefixes[names[j]] })
	return names
}

// ParseDeclaration decodes and validates a YAML family declaration.
func ParseDeclaration(data []byte) (*Declaration, error) {
	var decl Declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("decode declaration: %w", err)
	}

	if err := decl.validate(); err != nil {
		return nil, err
	}

	return &decl, nil
}

func (d *Declaration) validate() error {
	if !isGoIdent(d.System) || !isExported(d.System) {
		return fmt.Errorf("system name %q must be an exported Go identifier", d.System)
	}
	if !isGoIdent(d.Package) {
		return fmt.Errorf("package name %q must be a Go identifier", d.Package)
	}
	if d.Dimensionless == "" {
		d.Dimensionless = "Unitless"
	}
	if !isGoIdent(d.Dimensionless) || !isExported(d.Dimensionless) {
		return fmt.Errorf("dimensionless alias %q must be an exported Go identifier", d.Dimensionless)
	}
	if len(d.Dimensions) == 0 {
		return fmt.Errorf("a family needs at least one dimension")
	}

	seenNames := map[string]string{d.System: "system", d.Dimensionless: "dimensionless alias"}
	seenSymbols := map[string]bool{}

	claim := func(name, what string) error {
		if prev, ok := seenNames[name]; ok {
			return fmt.Errorf("%s %q collides with %s of the same name", what, name, prev)
		}
		seenNames[name] = what
		return nil
	}

	for i, dim := range d.Dimensions {
		if dim.Name == "" {
			return fmt.Errorf("dimension %d has no name", i)
		}
		if !isGoIdent(dim.Base) || !isExported(dim.Base) {
			return fmt.Errorf("dimension %q: base unit name %q must be an exported Go identifier", dim.Name, dim.Base)
		}
		if !isSymbol(dim.Symbol) {
			return fmt.Errorf("dimension %q: symbol %q must be a short identifier", dim.Name, dim.Symbol)
		}
		if seenSymbols[dim.Symbol] {
			return fmt.Errorf("dimension %q: duplicate symbol %q", dim.Name, dim.Symbol)
		}
		seenSymbols[dim.Symbol] = true

		if err := claim(dim.Base, "base unit"); err != nil {
			return err
		}
		if dim.Quantity != "" {
			if err := claim(dim.Quantity, "quantity alias"); err != nil {
				return err
			}
		}
	}

	for _, u := range d.Units {
		if !isGoIdent(u.Name) || !isExported(u.Name) {
			return fmt.Errorf("unit name %q must be an exported Go identifier", u.Name)
		}
		if u.Expr == "" {
			return fmt.Errorf("unit %q has no expression", u.Name)
		}
		if err := claim(u.Name, "unit"); err != nil {
			return err
		}
		if u.Quantity != "" {
			if err := claim(u.Quantity, "quantity alias"); err != nil {
				return err
			}
		}
	}

	return nil
}

func isGoIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isExported(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// isSymbol accepts the short dimension forms usable inside unit
// expressions: letters only, to keep the expression lexer unambiguous
// with numeric factors.
func isSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
