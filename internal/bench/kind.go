package bench

import "fmt"

// Kind identifies the encoding of a benchmark file.
type Kind int

const (
	// Auto selects the encoding from the keywords declared in the header.
	Auto Kind = iota

	// FullTable files list every row of the truth table (".tt" files).
	FullTable

	// ProductTerm files describe each output as a sum of product terms
	// (".pla" files).
	ProductTerm

	// PackedChunk files list the rows of a compressed table where each value
	// packs several bits (".plu" files).
	PackedChunk
)

var kindNames = map[Kind]string{
	Auto:        "auto",
	FullTable:   "tt",
	ProductTerm: "pla",
	PackedChunk: "plu",
}

// ParseKind returns the kind with the given name: "auto", "tt", "pla" or
// "plu".
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Auto, fmt.Errorf("unknown benchmark kind %q", name)
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
