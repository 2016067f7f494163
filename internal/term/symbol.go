package term

import "fmt"

// Symbol represents one position of a product term's input pattern. That is,
// a position that must either be Zero, One, or that matches anything
// (DontCare).
type Symbol int8

const (
	DontCare Symbol = 0
	One      Symbol = 1
	Zero     Symbol = -1
)

// ParseSymbol returns the Symbol corresponding to the given character:
//
//	'0' -> Zero
//	'1' -> One
//	'-' -> DontCare
func ParseSymbol(c byte) (Symbol, error) {
	switch c {
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	case '-':
		return DontCare, nil
	default:
		return DontCare, fmt.Errorf("%w %q", ErrSymbol, c)
	}
}

// Accepts returns true if the symbol matches bit b.
func (s Symbol) Accepts(b uint64) bool {
	switch s {
	case Zero:
		return b == 0
	case One:
		return b == 1
	default:
		return true
	}
}

func (s Symbol) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "-"
	}
}
