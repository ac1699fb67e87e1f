package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSineIsReproducible(t *testing.T) {
	a := DeterministicSine(440, 44100, 1, 128)
	b := DeterministicSine(440, 44100, 1, 128)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}

	if a[0] != 0 {
		t.Fatalf("sine must start at 0, got %v", a[0])
	}
}

func TestDeterministicNoiseSeed(t *testing.T) {
	a := DeterministicNoise(42, 1, 64)
	b := DeterministicNoise(42, 1, 64)
	c := DeterministicNoise(43, 1, 64)

	if MaxAbsDiff(a, b) != 0 {
		t.Fatal("same seed must reproduce identical noise")
	}

	if MaxAbsDiff(a, c) == 0 {
		t.Fatal("different seeds must differ")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if !math.IsNaN(MaxAbsDiff([]float64{1}, []float64{1, 2})) {
		t.Fatal("expected NaN for mismatched lengths")
	}
}
