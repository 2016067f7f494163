package term

import (
	"fmt"

	"github.com/boolean-function-benchmarks/interfaces/internal/table"
)

// Observer is called each time a term matches a row of the input space
// during an expansion.
type Observer func(t Term, row int)

type options struct {
	observer Observer
}

type Option func(*options)

// WithObserver registers an observer that is notified of every match.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// Expand returns the uncompressed truth table of the function described by
// the given sum of product terms. Output bits are the OR of all the terms
// asserting them: a bit is 1 iff at least one of its terms matches the row.
//
// All terms are validated before the table is built; no table is returned if
// one of them is invalid.
func Expand(terms []Term, nInputs int, nOutputs int, opts ...Option) (*table.Table, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if nInputs < 0 || nInputs > table.MaxInputs {
		return nil, fmt.Errorf("%w: %d inputs (maximum is %d)", ErrInputSpace, nInputs, table.MaxInputs)
	}
	for i, t := range terms {
		if len(t.Pattern) != nInputs {
			return nil, &TermError{
				Term: i,
				Err:  fmt.Errorf("%w: got %d, want %d", ErrTermPatternLength, len(t.Pattern), nInputs),
			}
		}
		if t.Output < 0 || t.Output >= nOutputs {
			return nil, &TermError{
				Term: i,
				Err:  fmt.Errorf("%w: %d not in [0, %d)", ErrTermOutputIndex, t.Output, nOutputs),
			}
		}
	}

	space := table.InputSpace(nInputs)
	cells := make([]uint64, len(space)*nOutputs)
	outputs := make([][]uint64, len(space))
	for j := range outputs {
		outputs[j] = cells[j*nOutputs : (j+1)*nOutputs : (j+1)*nOutputs]
	}

	for _, t := range terms {
		for j, row := range space {
			if !t.Matches(row) {
				continue
			}
			outputs[j][t.Output] = 1
			if o.observer != nil {
				o.observer(t, j)
			}
		}
	}

	tt := table.New(nInputs, nOutputs)
	tt.Inputs = space
	tt.Outputs = outputs
	return tt, nil
}
