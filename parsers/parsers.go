package parsers

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/boolean-function-benchmarks/interfaces/internal/bench"
	"github.com/boolean-function-benchmarks/interfaces/internal/table"
	"github.com/rhartert/dimacs"
)

var (
	ErrEmptyPath        = errors.New("file path is empty")
	ErrUnknownExtension = errors.New("unknown benchmark file extension")
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	if filename == "" {
		return nil, ErrEmptyPath
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// IsGzipped returns true if the file name has the ".gz" extension.
func IsGzipped(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".gz")
}

// KindFromPath returns the benchmark kind corresponding to the file's
// extension: ".tt", ".pla" or ".plu" (case-insensitive). A trailing ".gz"
// extension is ignored.
func KindFromPath(filename string) (bench.Kind, error) {
	if filename == "" {
		return bench.Auto, ErrEmptyPath
	}
	if IsGzipped(filename) {
		filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".tt":
		return bench.FullTable, nil
	case ".pla":
		return bench.ProductTerm, nil
	case ".plu":
		return bench.PackedChunk, nil
	default:
		return bench.Auto, fmt.Errorf("%w %q", ErrUnknownExtension, ext)
	}
}

// ReadFile returns the content of the given file.
func ReadFile(filename string, gzipped bool) (string, error) {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return "", fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer reader.Close()

	b, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("error reading file %q: %w", filename, err)
	}
	return string(b), nil
}

// LoadBenchmark reads and decodes the given benchmark file.
func LoadBenchmark(filename string, gzipped bool, kind bench.Kind, opts ...bench.Option) (*table.Table, error) {
	text, err := ReadFile(filename, gzipped)
	if err != nil {
		return nil, err
	}
	t, err := bench.Decode(text, kind, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding file %q: %w", filename, err)
	}
	return t, nil
}

// ReadModels returns the list of models contained in the given file. Each
// model is a line of DIMACS literals terminated by 0 where literal i (resp.
// -i) means that variable i is true (resp. false).
func ReadModels(filename string) ([][]bool, error) {
	reader, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer reader.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}

	return b.models, nil
}

// ReadReference returns the uncompressed truth table stored as models in the
// given file (see ReadModels). Each model is a row of the table: its first
// nInputs variables are the row's inputs and the next nOutputs variables are
// the row's outputs.
func ReadReference(filename string, nInputs int, nOutputs int) (*table.Table, error) {
	models, err := ReadModels(filename)
	if err != nil {
		return nil, err
	}

	t := table.New(nInputs, nOutputs)
	in := make([]uint64, nInputs)
	out := make([]uint64, nOutputs)
	for i, m := range models {
		if len(m) != nInputs+nOutputs {
			return nil, fmt.Errorf("model %d has %d variables, want %d", i, len(m), nInputs+nOutputs)
		}
		for j, b := range m {
			v := uint64(0)
			if b {
				v = 1
			}
			if j < nInputs {
				in[j] = v
			} else {
				out[j-nInputs] = v
			}
		}
		if err := t.Append(in, out); err != nil {
			return nil, fmt.Errorf("model %d: %w", i, err)
		}
	}
	return t, nil
}

// modelBuilder implements dimacs.Builder to collect models.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
