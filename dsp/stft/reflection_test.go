package stft

import "testing"

func TestAddReflection(t *testing.T) {
	// Half spectrum for an FFT size of 8: rows DC..Nyquist.
	half := [][]complex128{
		{complex(1, 0)},
		{complex(2, 1)},
		{complex(3, -2)},
		{complex(4, 3)},
		{complex(5, 0)},
	}

	full := addReflection(half)

	if len(full) != 8 {
		t.Fatalf("rows=%d, want 8", len(full))
	}

	// Mirrored rows are conjugates of rows [3 2 1]; DC and Nyquist are not
	// duplicated.
	wantPairs := [][2]int{{5, 3}, {6, 2}, {7, 1}}
	for _, pair := range wantPairs {
		got := full[pair[0]][0]
		src := full[pair[1]][0]

		if real(got) != real(src) || imag(got) != -imag(src) {
			t.Fatalf("row %d = %v, want conjugate of row %d (%v)", pair[0], got, pair[1], src)
		}
	}
}

func TestAddReflectionDegenerate(t *testing.T) {
	single := [][]complex128{{complex(1, 0)}}

	out := addReflection(single)
	if len(out) != 1 {
		t.Fatalf("rows=%d, want 1 for degenerate input", len(out))
	}
}
