package bench

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/boolean-function-benchmarks/interfaces/internal/table"
	"github.com/boolean-function-benchmarks/interfaces/internal/term"
)

// bodyRow is a non-blank, non-comment line of a file's body.
type bodyRow struct {
	index  int // index of the row in the body
	line   int // 1-based line number in the file
	fields []string
}

// Option configures a call to Decode.
type Option func(*decoder)

type decoder struct {
	termOpts []term.Option
}

// WithObserver registers an observer notified each time a product term
// matches a row while expanding a product term file.
func WithObserver(o term.Observer) Option {
	return func(d *decoder) {
		d.termOpts = append(d.termOpts, term.WithObserver(o))
	}
}

// Decode decodes the full text of a benchmark file encoded with the given
// kind. If kind is Auto, the encoding is selected from the file's header
// (see Header.Kind).
//
// Decode either returns a complete table or an error, usually a *FormatError
// wrapping one of the package's sentinel errors.
func Decode(text string, kind Kind, opts ...Option) (*table.Table, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	lines := strings.Split(text, "\n")
	h, err := ParseHeader(lines)
	if err != nil {
		return nil, err
	}
	if kind == Auto {
		kind = h.Kind()
	}

	p, err := newPlan(kind, h, d)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	rows := readBody(lines, h.Lines)
	if err := checkRowCount(rows, p.rows()); err != nil {
		return nil, err
	}

	t, err := p.decode(rows)
	if err != nil {
		return nil, err
	}
	t.Model = h.Model
	t.InputNames = slices.Clone(h.InputNames)
	t.OutputNames = slices.Clone(h.OutputNames)
	return t, nil
}

// readBody returns the rows of the body starting at lines[start] and ending
// at the first terminator (".e" or ".end") or at the end of the text.
func readBody(lines []string, start int) []bodyRow {
	rows := []bodyRow{}
	for i := start; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 || isComment(fields[0]) {
			continue
		}
		if isTerminator(fields[0]) {
			break
		}
		rows = append(rows, bodyRow{
			index:  len(rows),
			line:   i + 1,
			fields: fields,
		})
	}
	return rows
}

func checkRowCount(rows []bodyRow, want int) error {
	switch {
	case len(rows) < want:
		return &FormatError{
			Row: len(rows),
			Err: fmt.Errorf("%w: missing row, want %d rows, got %d", ErrRowCountMismatch, want, len(rows)),
		}
	case len(rows) > want:
		return rowError(rows[want], "", fmt.Errorf("%w: unexpected row, want %d rows, got %d", ErrRowCountMismatch, want, len(rows)))
	default:
		return nil
	}
}

// plan decodes the body of a file of a given kind.
type plan interface {
	// rows returns the number of rows that the body must contain.
	rows() int

	// decode returns the table described by the given body rows.
	decode(rows []bodyRow) (*table.Table, error)
}

// newPlan returns the plan decoding files of the given kind, after checking
// that the header declares every field that this kind requires.
func newPlan(kind Kind, h *Header, d *decoder) (plan, error) {
	if err := h.require(fieldInputs); err != nil {
		return nil, err
	}
	if err := h.require(fieldOutputs); err != nil {
		return nil, err
	}

	switch kind {
	case FullTable:
		if err := h.requireExpandable(); err != nil {
			return nil, err
		}
		return &fullTablePlan{h: h}, nil
	case ProductTerm:
		if err := h.require(fieldProductTerms); err != nil {
			return nil, err
		}
		if err := h.requireExpandable(); err != nil {
			return nil, err
		}
		return &productTermPlan{h: h, opts: d.termOpts}, nil
	case PackedChunk:
		if err := h.require(fieldProductTerms); err != nil {
			return nil, err
		}
		return &packedChunkPlan{h: h}, nil
	default:
		return nil, fmt.Errorf("unsupported benchmark kind %s", kind)
	}
}

func (h *Header) require(field string) error {
	var v int
	switch field {
	case fieldInputs:
		v = h.Inputs
	case fieldOutputs:
		v = h.Outputs
	case fieldProductTerms:
		v = h.ProductTerms
	}
	if v == Unspecified {
		return headerError(0, h.keyword(field), fmt.Errorf("%w: %s not declared", ErrHeaderFieldMissing, field))
	}
	return nil
}

func (h *Header) requireExpandable() error {
	if h.Inputs > table.MaxInputs {
		d := h.declared[fieldInputs]
		return headerError(d.line, d.keyword,
			fmt.Errorf("%w: %d inputs exceed the maximum of %d", ErrHeaderFieldMalformed, h.Inputs, table.MaxInputs))
	}
	return nil
}

// fullTablePlan copies the rows of a full truth table.
type fullTablePlan struct {
	h *Header
}

func (p *fullTablePlan) rows() int {
	return 1 << p.h.Inputs
}

func (p *fullTablePlan) decode(rows []bodyRow) (*table.Table, error) {
	t := table.New(p.h.Inputs, p.h.Outputs)
	in := make([]uint64, p.h.Inputs)
	out := make([]uint64, p.h.Outputs)
	for _, r := range rows {
		inField, outField, err := splitRow(r, p.h.Inputs, p.h.Outputs)
		if err != nil {
			return nil, err
		}
		if err := checkWidths(r, inField, outField, p.h.Inputs, p.h.Outputs); err != nil {
			return nil, err
		}
		if err := parseBits(r, "inputs", inField, in); err != nil {
			return nil, err
		}
		if err := parseBits(r, "outputs", outField, out); err != nil {
			return nil, err
		}
		if err := t.Append(in, out); err != nil {
			return nil, rowError(r, "", fmt.Errorf("%w: %s", ErrRowFieldMalformed, err))
		}
	}
	return t, nil
}

// productTermPlan expands a sum of product terms.
type productTermPlan struct {
	h    *Header
	opts []term.Option
}

func (p *productTermPlan) rows() int {
	return p.h.ProductTerms
}

func (p *productTermPlan) decode(rows []bodyRow) (*table.Table, error) {
	terms := make([]term.Term, len(rows))
	for i, r := range rows {
		pattern, outputs, err := splitRow(r, p.h.Inputs, p.h.Outputs)
		if err != nil {
			return nil, err
		}
		if len(pattern) != p.h.Inputs {
			return nil, rowError(r, "inputs", fmt.Errorf("%w: width is %d, want %d", term.ErrTermPatternLength, len(pattern), p.h.Inputs))
		}
		if len(outputs) != p.h.Outputs {
			return nil, rowError(r, "outputs", fmt.Errorf("%w: width is %d, want %d", term.ErrTermOutputWidth, len(outputs), p.h.Outputs))
		}
		t, err := term.ParseTerm(pattern, outputs)
		if errors.Is(err, term.ErrSymbol) {
			return nil, rowError(r, "", fmt.Errorf("%w: %w", ErrRowFieldMalformed, err))
		}
		if err != nil {
			return nil, rowError(r, "outputs", err)
		}
		terms[i] = t
	}

	t, err := term.Expand(terms, p.h.Inputs, p.h.Outputs, p.opts...)
	var te *term.TermError
	if errors.As(err, &te) {
		return nil, rowError(rows[te.Term], "", te.Err)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// packedChunkPlan copies the chunk values of a compressed table.
type packedChunkPlan struct {
	h *Header
}

func (p *packedChunkPlan) rows() int {
	return p.h.ProductTerms
}

func (p *packedChunkPlan) decode(rows []bodyRow) (*table.Table, error) {
	t := table.New(p.h.Inputs, p.h.Outputs)
	t.Compressed = true

	width := p.h.Inputs + p.h.Outputs
	values := make([]uint64, width)
	for _, r := range rows {
		if len(r.fields) != width {
			return nil, rowError(r, "", fmt.Errorf("%w: want %d values (%d inputs, %d outputs), got %d",
				ErrRowFieldMalformed, width, p.h.Inputs, p.h.Outputs, len(r.fields)))
		}
		for i, f := range r.fields {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, rowError(r, fmt.Sprintf("value %d", i), fmt.Errorf("%w: %q is not a chunk value", ErrRowFieldMalformed, f))
			}
			values[i] = v
		}
		if err := t.Append(values[:p.h.Inputs], values[p.h.Inputs:]); err != nil {
			return nil, rowError(r, "", fmt.Errorf("%w: %s", ErrRowFieldMalformed, err))
		}
	}
	return t, nil
}

// splitRow returns the input and output fields of a row. A field whose width
// is zero can be omitted.
func splitRow(r bodyRow, nInputs int, nOutputs int) (string, string, error) {
	switch {
	case len(r.fields) == 2:
		return r.fields[0], r.fields[1], nil
	case len(r.fields) == 1 && nInputs == 0:
		return "", r.fields[0], nil
	case len(r.fields) == 1 && nOutputs == 0:
		return r.fields[0], "", nil
	default:
		return "", "", rowError(r, "", fmt.Errorf("%w: want an input and an output field, got %d fields",
			ErrRowFieldMalformed, len(r.fields)))
	}
}

func checkWidths(r bodyRow, in string, out string, nInputs int, nOutputs int) error {
	if len(in) != nInputs {
		return rowError(r, "inputs", fmt.Errorf("%w: width is %d, want %d", ErrRowFieldMalformed, len(in), nInputs))
	}
	if len(out) != nOutputs {
		return rowError(r, "outputs", fmt.Errorf("%w: width is %d, want %d", ErrRowFieldMalformed, len(out), nOutputs))
	}
	return nil
}

// parseBits parses a field made of '0' and '1' characters into dst.
func parseBits(r bodyRow, field string, s string, dst []uint64) error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			dst[i] = 0
		case '1':
			dst[i] = 1
		default:
			return rowError(r, field, fmt.Errorf("%w: %q at position %d is not a bit", ErrRowFieldMalformed, s[i], i))
		}
	}
	return nil
}
