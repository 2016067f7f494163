package term

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSymbol            = errors.New("invalid symbol")
	ErrAssertedOutput    = errors.New("term must assert exactly one output")
	ErrTermPatternLength = errors.New("pattern length does not match the number of inputs")
	ErrTermOutputIndex   = errors.New("asserted output out of range")
	ErrTermOutputWidth   = errors.New("output field length does not match the number of outputs")
	ErrInputSpace        = errors.New("input space cannot be materialized")
)

// Term is a product term: a partial assignment of the inputs and the single
// output it sets to 1 for every input vector matching the assignment.
type Term struct {
	Pattern []Symbol
	Output  int
}

// TermError reports which term of a term list is invalid.
type TermError struct {
	Term int // index of the term in the list
	Err  error
}

func (e *TermError) Error() string {
	return fmt.Sprintf("term %d: %s", e.Term, e.Err)
}

func (e *TermError) Unwrap() error {
	return e.Err
}

// ParseTerm parses a term given its pattern field (e.g. "1-0") and its output
// field (e.g. "010"). The output field must contain exactly one '1'; the
// other positions are either '0', '-' or '~'.
func ParseTerm(pattern string, outputs string) (Term, error) {
	t := Term{
		Pattern: make([]Symbol, len(pattern)),
		Output:  -1,
	}
	for i := 0; i < len(pattern); i++ {
		s, err := ParseSymbol(pattern[i])
		if err != nil {
			return Term{}, fmt.Errorf("input %d: %w", i, err)
		}
		t.Pattern[i] = s
	}

	asserted := 0
	for i := 0; i < len(outputs); i++ {
		switch outputs[i] {
		case '1':
			asserted++
			t.Output = i
		case '0', '-', '~':
			// not asserted
		default:
			return Term{}, fmt.Errorf("output %d: %w %q", i, ErrSymbol, outputs[i])
		}
	}
	if asserted != 1 {
		return Term{}, fmt.Errorf("%w, found %d in %q", ErrAssertedOutput, asserted, outputs)
	}

	return t, nil
}

// Matches returns true if the input vector satisfies the term's pattern. An
// empty pattern matches the empty vector.
func (t Term) Matches(row []uint64) bool {
	if len(row) != len(t.Pattern) {
		return false
	}
	for i, s := range t.Pattern {
		if !s.Accepts(row[i]) {
			return false
		}
	}
	return true
}

func (t Term) String() string {
	sb := strings.Builder{}
	for _, s := range t.Pattern {
		sb.WriteString(s.String())
	}
	sb.WriteString(fmt.Sprintf(" -> %d", t.Output))
	return sb.String()
}
