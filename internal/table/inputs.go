package table

import "fmt"

// MaxInputs is the largest number of inputs for which a full input space can
// be materialized. Each row of an expanded table costs 8 bytes per input and
// per output plus two slice headers, so a table at the limit already takes
// several gigabytes.
const MaxInputs = 24

// InputSpace returns the 2^n binary vectors of length n in binary counter
// order. Column 0 is the most significant bit so that, for n = 2, the rows
// are 00, 01, 10 and 11. For n = 0, the input space contains a single empty
// vector.
//
// The vectors share a single backing array.
func InputSpace(n int) [][]uint64 {
	if n < 0 || n > MaxInputs {
		panic(fmt.Sprintf("invalid number of inputs %d", n))
	}

	size := 1 << n
	cells := make([]uint64, size*n)
	rows := make([][]uint64, size)
	for j := range rows {
		row := cells[j*n : (j+1)*n : (j+1)*n]
		for k := range row {
			row[k] = uint64(j>>(n-1-k)) & 1
		}
		rows[j] = row
	}
	return rows
}
