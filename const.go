package unyt

// Const is the capability implemented by the bounded-integer marker
// types below. Each marker stands for one fixed integer at the type
// level; Int is the value-level side of that mapping, used only where a
// conversion needs the scale exponent as a plain number.
//
// The markers enumerate -30..30. Exponents outside this range have no
// marker and therefore cannot be spelled, which is the whole point:
// descriptor arithmetic that would leave the range fails at build time.
type Const interface {
	Int() int
}

type N30 struct{}

func (N30) Int() int { return -30 }

type N29 struct{}

func (N29) Int() int { return -29 }

type N28 struct{}

func (N28) Int() int { return -28 }

type N27 struct{}

func (N27) Int() int { return -27 }

type N26 struct{}

func (N26) Int() int { return -26 }

type N25 struct{}

func (N25) Int() int { return -25 }

type N24 struct{}

func (N24) Int() int { return -24 }

type N23 struct{}

func (N23) Int() int { return -23 }

type N22 struct{}

func (N22) Int() int { return -22 }

type N21 struct{}

func (N21) Int() int { return -21 }

type N20 struct{}

func (N20) Int() int { return -20 }

type N19 struct{}

func (N19) Int() int { return -19 }

type N18 struct{}

func (N18) Int() int { return -18 }

type N17 struct{}

func (N17) Int() int { return -17 }

type N16 struct{}

func (N16) Int() int { return -16 }

type N15 struct{}

func (N15) Int() int { return -15 }

type N14 struct{}

func (N14) Int() int { return -14 }

type N13 struct{}

func (N13) Int() int { return -13 }

type N12 struct{}

func (N12) Int() int { return -12 }

type N11 struct{}

func (N11) Int() int { return -11 }

type N10 struct{}

func (N10) Int() int { return -10 }

type N9 struct{}

func (N9) Int() int { return -9 }

type N8 struct{}

func (N8) Int() int { return -8 }

type N7 struct{}

func (N7) Int() int { return -7 }

type N6 struct{}

func (N6) Int() int { return -6 }

type N5 struct{}

func (N5) Int() int { return -5 }

type N4 struct{}

func (N4) Int() int { return -4 }

type N3 struct{}

func (N3) Int() int { return -3 }

type N2 struct{}

func (N2) Int() int { return -2 }

type N1 struct{}

func (N1) Int() int { return -1 }

type Z0 struct{}

func (Z0) Int() int { return 0 }

type P1 struct{}

func (P1) Int() int { return 1 }

type P2 struct{}

func (P2) Int() int { return 2 }

type P3 struct{}

func (P3) Int() int { return 3 }

type P4 struct{}

func (P4) Int() int { return 4 }

type P5 struct{}

func (P5) Int() int { return 5 }

type P6 struct{}

func (P6) Int() int { return 6 }

type P7 struct{}

func (P7) Int() int { return 7 }

type P8 struct{}

func (P8) Int() int { return 8 }

type P9 struct{}

func (P9) Int() int { return 9 }

type P10 struct{}

func (P10) Int() int { return 10 }

type P11 struct{}

func (P11) Int() int { return 11 }

type P12 struct{}

func (P12) Int() int { return 12 }

type P13 struct{}

func (P13) Int() int { return 13 }

type P14 struct{}

func (P14) Int() int { return 14 }

type P15 struct{}

func (P15) Int() int { return 15 }

type P16 struct{}

func (P16) Int() int { return 16 }

type P17 struct{}

func (P17) Int() int { return 17 }

type P18 struct{}

func (P18) Int() int { return 18 }

type P19 struct{}

func (P19) Int() int { return 19 }

type P20 struct{}

func (P20) Int() int { return 20 }

type P21 struct{}

func (P21) Int() int { return 21 }

type P22 struct{}

func (P22) Int() int { return 22 }

type P23 struct{}

func (P23) Int() int { return 23 }

type P24 struct{}

func (P24) Int() int { return 24 }

type P25 struct{}

func (P25) Int() int { return 25 }

type P26 struct{}

func (P26) Int() int { return 26 }

type P27 struct{}

func (P27) Int() int { return 27 }

type P28 struct{}

func (P28) Int() int { return 28 }

type P29 struct{}

func (P29) Int() int { return 29 }

type P30 struct{}

func (P30) Int() int { return 30 }

