package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/boolean-function-benchmarks/interfaces/internal/bench"
	"github.com/boolean-function-benchmarks/interfaces/parsers"
)

// This test suite verifies that every benchmark of the test set decodes to
// the expected truth table.
//
// Directory containing the test cases. Each test case must be provided with
// two files:
//
//   - A benchmark file with the ".tt", ".pla" or ".plu" extension, optionally
//     followed by ".gz" if the file is gzip compressed.
//   - A models file containing the rows of the expected table, one per line,
//     as DIMACS literals: variables 1 to n are the inputs and variables n+1
//     to n+m the outputs. The models file must have the same name as the
//     benchmark file with the additional ".models" extension.
//
// Benchmark files without a models file are only checked to decode without
// error. Note that the test directory can contain subdirectories.
var testdataDir = "testdata"

type testCase struct {
	benchmarkName string
	benchmarkFile string
	modelsFile    string // empty if there is no models file
}

// listTestCases returns the list of test cases contained in the file tree
// rooted in the given directory.
func listTestCases(dir string) ([]testCase, error) {
	testCases := []testCase{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, err := parsers.KindFromPath(path); err != nil {
			return nil // not a benchmark file
		}
		tc := testCase{
			benchmarkName: d.Name(),
			benchmarkFile: path,
		}
		if _, err := os.Stat(path + ".models"); err == nil {
			tc.modelsFile = path + ".models"
		}
		testCases = append(testCases, tc)
		return nil
	})

	return testCases, err
}

// TestDecodeAll verifies that each benchmark decodes to its reference table,
// both when the encoding is derived from the file extension and when it is
// read from the header. Test cases are evaluated in parallel.
func TestDecodeAll(t *testing.T) {
	testCases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("Error listing test cases: %s", err)
	}
	if len(testCases) == 0 {
		t.Fatalf("No test case found in %q", testdataDir)
	}

	for i := 0; i < len(testCases); i++ {
		tc := testCases[i]
		t.Run(tc.benchmarkName, func(t *testing.T) {
			t.Parallel()

			kind, err := parsers.KindFromPath(tc.benchmarkFile)
			if err != nil {
				t.Fatalf("Kind error: %s", err)
			}
			gzipped := parsers.IsGzipped(tc.benchmarkFile)

			got, err := parsers.LoadBenchmark(tc.benchmarkFile, gzipped, kind)
			if err != nil {
				t.Fatalf("Benchmark decoding error: %s", err)
			}
			auto, err := parsers.LoadBenchmark(tc.benchmarkFile, gzipped, bench.Auto)
			if err != nil {
				t.Fatalf("Benchmark decoding error (auto): %s", err)
			}
			if !got.Equal(auto) {
				t.Errorf("Table mismatch between %s and auto decoding", kind)
			}

			if tc.modelsFile == "" {
				return
			}
			want, err := parsers.ReadReference(tc.modelsFile, got.NumInputs, got.NumOutputs)
			if err != nil {
				t.Fatalf("Reference parsing error: %s", err)
			}
			if !got.EqualRows(want) {
				t.Errorf("Row mismatch: got\n%swant\n%s", got, want)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	tt, err := parsers.LoadBenchmark("testdata/maj3.pla", false, bench.ProductTerm)
	if err != nil {
		t.Fatalf("LoadBenchmark(): %s", err)
	}

	if err := verify(tt, "testdata/maj3.pla.models"); err != nil {
		t.Errorf("verify(): want no error, got %s", err)
	}
	// Majority and parity are the carry and sum of a full adder.
	if err := verify(tt, "testdata/fulladd.tt.models"); err != nil {
		t.Errorf("verify(): want no error for the full adder, got %s", err)
	}
}

func TestVerify_mismatch(t *testing.T) {
	tt, err := parsers.LoadBenchmark("testdata/maj3.pla", false, bench.ProductTerm)
	if err != nil {
		t.Fatalf("LoadBenchmark(): %s", err)
	}

	testCases := []string{
		"testdata/maj3-flipped.models", // same width, one output bit differs
		"testdata/xor.tt.models",       // different width
	}

	for _, modelsFile := range testCases {
		if err := verify(tt, modelsFile); err == nil {
			t.Errorf("verify(%q): want error, got none", modelsFile)
		}
	}
}
