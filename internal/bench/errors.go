package bench

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported while decoding a benchmark file. They are always wrapped in
// a *FormatError locating the faulty line.
var (
	ErrHeaderFieldMissing   = errors.New("missing header field")
	ErrHeaderFieldMalformed = errors.New("malformed header field")
	ErrNameCountMismatch    = errors.New("number of names does not match the declared count")
	ErrRowCountMismatch     = errors.New("number of rows does not match the declared count")
	ErrRowFieldMalformed    = errors.New("malformed row field")
)

// FormatError describes why and where a benchmark file could not be decoded.
type FormatError struct {
	Line  int    // 1-based line number, 0 if the error is not tied to a line
	Row   int    // 0-based index of the body row, -1 for header errors
	Field string // header keyword or row field, if any
	Err   error
}

func (e *FormatError) Error() string {
	parts := []string{}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Row >= 0 {
		parts = append(parts, fmt.Sprintf("row %d", e.Row))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Err.Error())
	return strings.Join(parts, ": ")
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func headerError(line int, field string, err error) *FormatError {
	return &FormatError{Line: line, Row: -1, Field: field, Err: err}
}

func rowError(r bodyRow, field string, err error) *FormatError {
	return &FormatError{Line: r.line, Row: r.index, Field: field, Err: err}
}
