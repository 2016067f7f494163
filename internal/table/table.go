package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rhartert/yagh"
)

// Table is a truth table stored row-wise as two matrices of equal height: one
// for the inputs and one for the outputs. Uncompressed tables hold one bit per
// cell. Compressed tables (packed chunks) hold one opaque chunk value per cell.
type Table struct {
	Model       string
	InputNames  []string
	OutputNames []string

	// Number of columns of Inputs and Outputs. These are kept explicitly so
	// that the shape of an empty table is known.
	NumInputs  int
	NumOutputs int

	Inputs  [][]uint64
	Outputs [][]uint64

	// Compressed is true if each row is a packed chunk rather than a single
	// input combination.
	Compressed bool
}

// New returns an empty table with the given number of input and output
// columns.
func New(nInputs int, nOutputs int) *Table {
	return &Table{
		NumInputs:  nInputs,
		NumOutputs: nOutputs,
	}
}

// Rows returns the number of rows of the table.
func (t *Table) Rows() int {
	return len(t.Inputs)
}

// Row returns the inputs and outputs of the i-th row.
func (t *Table) Row(i int) ([]uint64, []uint64) {
	return t.Inputs[i], t.Outputs[i]
}

// Append adds a row at the end of the table. The row's slices are copied.
func (t *Table) Append(in []uint64, out []uint64) error {
	if len(in) != t.NumInputs {
		return fmt.Errorf("row has %d inputs, want %d", len(in), t.NumInputs)
	}
	if len(out) != t.NumOutputs {
		return fmt.Errorf("row has %d outputs, want %d", len(out), t.NumOutputs)
	}
	t.Inputs = append(t.Inputs, slices.Clone(in))
	t.Outputs = append(t.Outputs, slices.Clone(out))
	return nil
}

// OnSet returns the indices of the rows for which output o is 1.
func (t *Table) OnSet(o int) []int {
	rows := []int{}
	for i, out := range t.Outputs {
		if out[o] == 1 {
			rows = append(rows, i)
		}
	}
	return rows
}

// RankOutputs returns the output indices ordered by decreasing on-set size.
// Outputs with the same on-set size are ordered by index.
func (t *Table) RankOutputs() []int {
	heap := yagh.New[float64](t.NumOutputs)
	for o := 0; o < t.NumOutputs; o++ {
		size := float64(len(t.OnSet(o)))
		heap.Put(o, float64(o)-size*float64(t.NumOutputs))
	}

	ranked := make([]int, 0, t.NumOutputs)
	for {
		next, ok := heap.Pop()
		if !ok {
			break
		}
		ranked = append(ranked, next.Elem)
	}
	return ranked
}

// Equal returns true if both tables have the same shape, metadata and cells.
func (t *Table) Equal(other *Table) bool {
	return t.Model == other.Model &&
		t.Compressed == other.Compressed &&
		t.NumInputs == other.NumInputs &&
		t.NumOutputs == other.NumOutputs &&
		slices.Equal(t.InputNames, other.InputNames) &&
		slices.Equal(t.OutputNames, other.OutputNames) &&
		t.EqualRows(other)
}

// EqualRows returns true if both tables have the same rows in the same order,
// regardless of their metadata.
func (t *Table) EqualRows(other *Table) bool {
	return slices.EqualFunc(t.Inputs, other.Inputs, slices.Equal[[]uint64]) &&
		slices.EqualFunc(t.Outputs, other.Outputs, slices.Equal[[]uint64])
}

// String returns the table's rows, one per line. Rows of uncompressed tables
// are printed as bit strings (e.g. "01 1") which is also the row format of
// full truth table files. Chunk values of compressed tables are separated by
// spaces and inputs are separated from outputs by three spaces.
func (t *Table) String() string {
	sb := strings.Builder{}
	for i := 0; i < t.Rows(); i++ {
		in, out := t.Row(i)
		if t.Compressed {
			writeValues(&sb, in, " ")
			sb.WriteString("   ")
			writeValues(&sb, out, " ")
		} else {
			writeValues(&sb, in, "")
			sb.WriteByte(' ')
			writeValues(&sb, out, "")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeValues(sb *strings.Builder, values []uint64, sep string) {
	for i, v := range values {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}
}
