package table

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInputSpace_twoInputs(t *testing.T) {
	want := [][]uint64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	got := InputSpace(2)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InputSpace(2): mismatch (+want, -got):\n%s", diff)
	}
}

func TestInputSpace_zeroInputs(t *testing.T) {
	got := InputSpace(0)

	if len(got) != 1 {
		t.Fatalf("InputSpace(0): want 1 row, got %d", len(got))
	}
	if len(got[0]) != 0 {
		t.Errorf("InputSpace(0): want empty row, got %v", got[0])
	}
}

func TestInputSpace_properties(t *testing.T) {
	for n := 0; n <= 10; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			got := InputSpace(n)

			if len(got) != 1<<n {
				t.Fatalf("InputSpace(%d): want %d rows, got %d", n, 1<<n, len(got))
			}

			seen := map[string]struct{}{}
			for _, row := range got {
				if len(row) != n {
					t.Fatalf("InputSpace(%d): row %v has length %d", n, row, len(row))
				}
				key := fmt.Sprint(row)
				if _, ok := seen[key]; ok {
					t.Fatalf("InputSpace(%d): duplicate row %v", n, row)
				}
				seen[key] = struct{}{}
			}

			for k := 0; k < n; k++ {
				if got[0][k] != 0 {
					t.Errorf("InputSpace(%d): first row %v is not all-zero", n, got[0])
				}
				if got[len(got)-1][k] != 1 {
					t.Errorf("InputSpace(%d): last row %v is not all-one", n, got[len(got)-1])
				}
			}
		})
	}
}

func TestInputSpace_mostSignificantFirst(t *testing.T) {
	got := InputSpace(3)

	// Row 4 is 100 in binary.
	if diff := cmp.Diff([]uint64{1, 0, 0}, got[4]); diff != "" {
		t.Errorf("InputSpace(3)[4]: mismatch (+want, -got):\n%s", diff)
	}
}

func TestInputSpace_negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("InputSpace(-1): want panic, got none")
		}
	}()

	InputSpace(-1)
}

func TestInputSpace_tooLarge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("InputSpace(%d): want panic, got none", MaxInputs+1)
		}
	}()

	InputSpace(MaxInputs + 1)
}

func BenchmarkInputSpace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		InputSpace(16)
	}
}
