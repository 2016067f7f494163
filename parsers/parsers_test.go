package parsers

import (
	"errors"
	"testing"

	"github.com/boolean-function-benchmarks/interfaces/internal/bench"
	"github.com/boolean-function-benchmarks/interfaces/internal/table"
	"github.com/google/go-cmp/cmp"
)

var xorTable = &table.Table{
	Model:       "xor",
	InputNames:  []string{"a", "b"},
	OutputNames: []string{"f"},
	NumInputs:   2,
	NumOutputs:  1,
	Inputs:      [][]uint64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	Outputs:     [][]uint64{{0}, {1}, {1}, {0}},
}

func TestKindFromPath(t *testing.T) {
	testCases := map[string]bench.Kind{
		"xor.tt":            bench.FullTable,
		"dir/add2.PLA":      bench.ProductTerm,
		"chunks.plu":        bench.PackedChunk,
		"add2.pla.gz":       bench.ProductTerm,
		"dir.v1/table.Tt":   bench.FullTable,
		"/tmp/x/y.plu.GZ":   bench.PackedChunk,
		"relative/../a.pla": bench.ProductTerm,
	}

	for path, want := range testCases {
		got, err := KindFromPath(path)
		if err != nil {
			t.Errorf("KindFromPath(%q): want no error, got %s", path, err)
		}
		if got != want {
			t.Errorf("KindFromPath(%q): want %s, got %s", path, want, got)
		}
	}
}

func TestKindFromPath_errors(t *testing.T) {
	if _, err := KindFromPath(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("KindFromPath(\"\"): want ErrEmptyPath, got %v", err)
	}
	for _, path := range []string{"add2.cnf", "add2", "add2.gz"} {
		if _, err := KindFromPath(path); !errors.Is(err, ErrUnknownExtension) {
			t.Errorf("KindFromPath(%q): want ErrUnknownExtension, got %v", path, err)
		}
	}
}

func TestLoadBenchmark(t *testing.T) {
	got, err := LoadBenchmark("../testdata/xor.tt", false, bench.FullTable)

	if err != nil {
		t.Fatalf("LoadBenchmark(): want no error, got %s", err)
	}
	if diff := cmp.Diff(xorTable, got); diff != "" {
		t.Errorf("LoadBenchmark(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestLoadBenchmark_gzip(t *testing.T) {
	got, err := LoadBenchmark("../testdata/add2.pla.gz", true, bench.Auto)

	if err != nil {
		t.Fatalf("LoadBenchmark(): want no error, got %s", err)
	}
	if got.Rows() != 16 || got.NumOutputs != 3 {
		t.Errorf("LoadBenchmark(): want 16 rows and 3 outputs, got %d and %d", got.Rows(), got.NumOutputs)
	}
}

func TestLoadBenchmark_gzip_notGzipFile(t *testing.T) {
	got, err := LoadBenchmark("../testdata/xor.tt", true, bench.FullTable)

	if err == nil {
		t.Errorf("LoadBenchmark(): want error, got none")
	}
	if got != nil {
		t.Errorf("LoadBenchmark(): want nil table, got %+v", got)
	}
}

func TestLoadBenchmark_noFile(t *testing.T) {
	got, err := LoadBenchmark("../testdata/missing.tt", false, bench.FullTable)

	if err == nil {
		t.Errorf("LoadBenchmark(): want error, got none")
	}
	if got != nil {
		t.Errorf("LoadBenchmark(): want nil table, got %+v", got)
	}
}

func TestLoadBenchmark_emptyPath(t *testing.T) {
	_, err := LoadBenchmark("", false, bench.Auto)

	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("LoadBenchmark(): want ErrEmptyPath, got %v", err)
	}
}

func TestLoadBenchmark_formatError(t *testing.T) {
	// A full table decoded as packed chunks is missing its chunk count.
	_, err := LoadBenchmark("../testdata/xor.tt", false, bench.PackedChunk)

	if !errors.Is(err, bench.ErrHeaderFieldMissing) {
		t.Errorf("LoadBenchmark(): want ErrHeaderFieldMissing, got %v", err)
	}
}

func TestReadModels(t *testing.T) {
	want := [][]bool{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}

	got, err := ReadModels("../testdata/xor.tt.models")

	if err != nil {
		t.Fatalf("ReadModels(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadModels(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestReadReference(t *testing.T) {
	got, err := ReadReference("../testdata/xor.tt.models", 2, 1)

	if err != nil {
		t.Fatalf("ReadReference(): want no error, got %s", err)
	}
	if !got.EqualRows(xorTable) {
		t.Errorf("ReadReference(): want the rows of xor, got\n%s", got)
	}
}

func TestReadReference_wrongWidth(t *testing.T) {
	if _, err := ReadReference("../testdata/xor.tt.models", 2, 2); err == nil {
		t.Errorf("ReadReference(): want error, got none")
	}
}
