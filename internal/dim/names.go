package dim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unyt-go/unyt/internal/numeral"
)

// ConstName returns the marker type name standing for the bounded
// integer i: N3 for -3, Z0 for 0, P7 for 7. Fails outside the
// enumerated bridge range, exactly where the markers stop existing.
func ConstName(i int) (string, error) {
	if i < -numeral.Bound || i > numeral.Bound {
		return "", fmt.Errorf("%d: %w", i, numeral.ErrRange)
	}

	switch {
	case i < 0:
		return "N" + strconv.Itoa(-i), nil
	case i == 0:
		return "Z0", nil
	default:
		return "P" + strconv.Itoa(i), nil
	}
}

// ParseConstName is the inverse of ConstName.
func ParseConstName(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("%q is not a bounded integer marker name", name)
	}

	v, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, fmt.Errorf("%q is not a bounded integer marker name", name)
	}

	switch name[0] {
	case 'Z':
		if v != 0 {
			return 0, fmt.Errorf("%q is not a bounded integer marker name", name)
		}
	case 'P':
		if v < 1 {
			return 0, fmt.Errorf("%q is not a bounded integer marker name", name)
		}
	case 'N':
		if v < 1 {
			return 0, fmt.Errorf("%q is not a bounded integer marker name", name)
		}
		v = -v
	default:
		return 0, fmt.Errorf("%q is not a bounded integer marker name", name)
	}

	if v < -numeral.Bound || v > numeral.Bound {
		return 0, fmt.Errorf("marker %q: %w", name, numeral.ErrRange)
	}

	return v, nil
}

// Format renders a descriptor with human-readable dimension names,
// e.g. "kg·m^2·s^-2" or "10^3·m". The dimensionless zero-scale
// descriptor renders as "1". names must match the descriptor arity;
// missing names fall back to positional placeholders.
func Format(d Desc, names []string) string {
	var parts []string

	if d.Scale != 0 {
		parts = append(parts, "10^"+strconv.Itoa(d.Scale))
	}

	for i, v := range d.Dims {
		if v == 0 {
			continue
		}

		name := fmt.Sprintf("dim%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}

		if v == 1 {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, name+"^"+strconv.Itoa(v))
	}

	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "·")
}
