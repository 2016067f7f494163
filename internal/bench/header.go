package bench

import (
	"fmt"
	"strconv"
	"strings"
)

// Unspecified is the value of the header's counts whose keyword is absent.
const Unspecified = -1

// Style is the keyword style used by a header.
type Style int

const (
	// NoStyle is the style of a header without any keyword.
	NoStyle Style = iota

	// Dotted headers use the ".i", ".o", ".p" keywords (PLA and TT files).
	Dotted

	// Bare headers use the "i", "e" (or "o") and "p" keywords (PLU files).
	Bare
)

// Header contains the metadata declared at the top of a benchmark file.
type Header struct {
	Model        string
	Inputs       int
	Outputs      int
	ProductTerms int // number of product terms, or of chunks for PLU files
	InputNames   []string
	OutputNames  []string
	Style        Style

	// Lines is the number of lines spanned by the header. The body starts
	// at lines[Lines].
	Lines int

	// Keyword line declaring each field.
	declared map[string]declaration
}

type declaration struct {
	line    int
	keyword string
}

const (
	fieldModel        = "model"
	fieldInputs       = "inputs"
	fieldOutputs      = "outputs"
	fieldProductTerms = "product terms"
	fieldInputNames   = "input names"
	fieldOutputNames  = "output names"
	fieldType         = "type"
)

var dottedKeywords = map[string]string{
	".model": fieldModel,
	".i":     fieldInputs,
	".o":     fieldOutputs,
	".p":     fieldProductTerms,
	".ilb":   fieldInputNames,
	".ob":    fieldOutputNames,
	".type":  fieldType,
}

var bareKeywords = map[string]string{
	"i": fieldInputs,
	"e": fieldOutputs,
	"o": fieldOutputs,
	"p": fieldProductTerms,
}

// ParseHeader parses the header found at the beginning of the given lines.
// The header ends with the first line which is neither a keyword line, a
// comment (starting with '#') nor a blank line.
//
// Absent counts are set to Unspecified. Name lists are not checked against
// the declared counts, see Validate.
func ParseHeader(lines []string) (*Header, error) {
	h := &Header{
		Inputs:       Unspecified,
		Outputs:      Unspecified,
		ProductTerms: Unspecified,
		declared:     map[string]declaration{},
	}

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || isComment(fields[0]) {
			h.Lines = i + 1
			continue
		}

		kw := fields[0]
		if isTerminator(kw) {
			break
		}

		style := Bare
		field, ok := bareKeywords[kw]
		if strings.HasPrefix(kw, ".") {
			style = Dotted
			field, ok = dottedKeywords[kw]
			if !ok {
				return nil, headerError(i+1, kw, fmt.Errorf("%w: unknown keyword", ErrHeaderFieldMalformed))
			}
		}
		if !ok {
			break // first body line
		}

		if h.Style != NoStyle && h.Style != style {
			return nil, headerError(i+1, kw, fmt.Errorf("%w: dotted and bare keywords cannot be mixed", ErrHeaderFieldMalformed))
		}
		h.Style = style

		if d, dup := h.declared[field]; dup {
			return nil, headerError(i+1, kw, fmt.Errorf("%w: %s already declared on line %d", ErrHeaderFieldMalformed, field, d.line))
		}
		h.declared[field] = declaration{line: i + 1, keyword: kw}

		if err := h.parseKeywordLine(field, fields[1:]); err != nil {
			return nil, headerError(i+1, kw, err)
		}
		h.Lines = i + 1
	}

	return h, nil
}

func (h *Header) parseKeywordLine(field string, values []string) error {
	switch field {
	case fieldModel:
		if len(values) == 0 {
			return fmt.Errorf("%w: missing model name", ErrHeaderFieldMalformed)
		}
		h.Model = strings.Join(values, " ")
	case fieldInputs:
		return parseCount(&h.Inputs, values)
	case fieldOutputs:
		return parseCount(&h.Outputs, values)
	case fieldProductTerms:
		return parseCount(&h.ProductTerms, values)
	case fieldInputNames:
		if len(values) == 0 {
			return fmt.Errorf("%w: empty name list", ErrHeaderFieldMalformed)
		}
		h.InputNames = values
	case fieldOutputNames:
		if len(values) == 0 {
			return fmt.Errorf("%w: empty name list", ErrHeaderFieldMalformed)
		}
		h.OutputNames = values
	case fieldType:
		// Only the ON-set types are meaningful for a single-output-per-term
		// encoding.
		if len(values) != 1 || (values[0] != "f" && values[0] != "fr") {
			return fmt.Errorf("%w: unsupported type %q", ErrHeaderFieldMalformed, strings.Join(values, " "))
		}
	}
	return nil
}

func parseCount(dst *int, values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("%w: want exactly one value, got %d", ErrHeaderFieldMalformed, len(values))
	}
	n, err := strconv.Atoi(values[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: %q is not a non-negative integer", ErrHeaderFieldMalformed, values[0])
	}
	*dst = n
	return nil
}

// Validate checks that the name lists, if any, have exactly one name per
// declared input or output.
func (h *Header) Validate() error {
	if len(h.InputNames) > 0 && len(h.InputNames) != h.Inputs {
		d := h.declared[fieldInputNames]
		return headerError(d.line, d.keyword,
			fmt.Errorf("%w: %d names for %d inputs", ErrNameCountMismatch, len(h.InputNames), h.Inputs))
	}
	if len(h.OutputNames) > 0 && len(h.OutputNames) != h.Outputs {
		d := h.declared[fieldOutputNames]
		return headerError(d.line, d.keyword,
			fmt.Errorf("%w: %d names for %d outputs", ErrNameCountMismatch, len(h.OutputNames), h.Outputs))
	}
	return nil
}

// Kind returns the encoding declared by the header: bare headers are used by
// packed chunk files, dotted headers declaring a number of product terms by
// product term files, and other headers by full truth table files.
func (h *Header) Kind() Kind {
	switch {
	case h.Style == Bare:
		return PackedChunk
	case h.ProductTerms != Unspecified:
		return ProductTerm
	default:
		return FullTable
	}
}

// keyword returns the keyword naming field in error messages: the one
// declared in the header if any, or the conventional one of its style.
func (h *Header) keyword(field string) string {
	if d, ok := h.declared[field]; ok {
		return d.keyword
	}
	if h.Style == Bare {
		switch field {
		case fieldInputs:
			return "i"
		case fieldOutputs:
			return "e"
		case fieldProductTerms:
			return "p"
		}
	}
	for kw, f := range dottedKeywords {
		if f == field {
			return kw
		}
	}
	return field
}

func isComment(token string) bool {
	return strings.HasPrefix(token, "#")
}

func isTerminator(token string) bool {
	return token == ".e" || token == ".end"
}
