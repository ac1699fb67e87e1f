package stft

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-stft/dsp/window"
	"github.com/cwbudde/algo-stft/internal/testutil"
)

func TestAnalyzeShapeLaw(t *testing.T) {
	signal := testutil.DeterministicNoise(1, 1, 4410)

	spec, err := Analyze(signal, 1024, 512, window.TypeHann)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Padded length 5632, so 10 frames; half spectrum of a 1024-bin FFT.
	if len(spec) != 513 {
		t.Fatalf("rows=%d, want 513", len(spec))
	}

	if len(spec[0]) != 10 {
		t.Fatalf("frames=%d, want 10", len(spec[0]))
	}
}

func TestAnalyzeFullSpectrumShape(t *testing.T) {
	signal := testutil.DeterministicNoise(1, 1, 4410)

	spec, err := Analyze(signal, 1024, 512, window.TypeHann, WithFullSpectrum())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(spec) != 1024 {
		t.Fatalf("rows=%d, want 1024", len(spec))
	}
}

func TestAnalyzeClampLaw(t *testing.T) {
	signal := testutil.DeterministicNoise(2, 1, 4410)

	// Requested 512 bins are below the window length and must be raised to
	// 1024, giving 513 rows for the half spectrum.
	spec, err := Analyze(signal, 1024, 512, window.TypeHann, WithFFTBins(512))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(spec) != 513 {
		t.Fatalf("rows=%d, want 513 after clamping", len(spec))
	}
}

func TestAnalyzeZeroPaddedBins(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1, 4410)

	spec, err := Analyze(signal, 1024, 512, window.TypeHann, WithFFTBins(4096))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(spec) != 2049 {
		t.Fatalf("rows=%d, want 2049", len(spec))
	}
}

func TestAnalyzeNonPowerOfTwoFFTBinsRounded(t *testing.T) {
	signal := testutil.DeterministicNoise(11, 1, 5000)

	// A requested size of 1500 resolves to the next power of two, 2048.
	spec, err := Analyze(signal, 1000, 500, window.TypeHann, WithFFTBins(1500))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(spec) != 1025 {
		t.Fatalf("rows=%d, want 1025", len(spec))
	}
}

func TestAnalyzeOddWindowLengthNormalization(t *testing.T) {
	signal := testutil.DeterministicNoise(4, 1, 4410)

	// 1023 is normalized to 1022; the default FFT size is the next power of
	// two above the even value.
	spec, err := Analyze(signal, 1023, 512, window.TypeHann)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(spec) != 513 {
		t.Fatalf("rows=%d, want 513", len(spec))
	}

	if len(spec[0]) != 10 {
		t.Fatalf("frames=%d, want 10", len(spec[0]))
	}
}

func TestAnalyzeZeroSignalIdentity(t *testing.T) {
	signal := make([]float64, 4410)

	spec, err := Analyze(signal, 1024, 512, window.TypeHamming)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for i, row := range spec {
		for j, v := range row {
			if v != 0 {
				t.Fatalf("bin %d frame %d = %v, want 0", i, j, v)
			}
		}
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	signal := testutil.DeterministicNoise(5, 1, 4410)

	a, err := Analyze(signal, 1024, 512, window.TypeBlackman)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	b, err := Analyze(signal, 1024, 512, window.TypeBlackman)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("bin %d frame %d differs: %v != %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestAnalyzePaddingRemoved(t *testing.T) {
	signal := testutil.DeterministicNoise(6, 1, 4410)

	spec, err := Analyze(signal, 1024, 512, window.TypeHann, WithPaddingRemoved())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// One leading and one trailing padded column are dropped from the 10.
	if len(spec[0]) != 8 {
		t.Fatalf("frames=%d, want 8", len(spec[0]))
	}
}

func TestAnalyzeKnownSpectra(t *testing.T) {
	// A rectangular-windowed frame of ones has all its energy at DC.
	ones := make([]float64, 16)
	for i := range ones {
		ones[i] = 1
	}

	spec, err := Analyze(ones, 8, 4, window.TypeRectangular)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Frame 1 covers padded samples 4..11, which are all ones.
	if got := real(spec[0][1]); got < 7.999 || got > 8.001 {
		t.Fatalf("DC bin=%v, want 8", got)
	}

	for i := 1; i < len(spec); i++ {
		if cmplx.Abs(spec[i][1]) > 1e-9 {
			t.Fatalf("bin %d = %v, want 0 for constant frame", i, spec[i][1])
		}
	}

	// An impulse has unit magnitude in every bin.
	impulse := testutil.Impulse(16, 0)

	spec, err = Analyze(impulse, 8, 4, window.TypeRectangular)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Frame 1 starts at padded index 4, exactly on the impulse.
	for i := range spec {
		if mag := cmplx.Abs(spec[i][1]); mag < 0.999 || mag > 1.001 {
			t.Fatalf("bin %d magnitude=%v, want 1", i, mag)
		}
	}
}

func TestAnalyzeInvalidFraming(t *testing.T) {
	signal := make([]float64, 64)

	cases := []struct {
		name         string
		windowLength int
		hopLength    int
	}{
		{"zero window", 0, 4},
		{"negative window", -8, 4},
		{"zero hop", 8, 0},
		{"negative hop", 8, -1},
		{"window of one", 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Analyze(signal, tc.windowLength, tc.hopLength, window.TypeHann)
			if !errors.Is(err, ErrInvalidFraming) {
				t.Fatalf("err=%v, want ErrInvalidFraming", err)
			}
		})
	}
}

func TestAnalyzeInvalidWindowType(t *testing.T) {
	signal := make([]float64, 64)

	_, err := Analyze(signal, 8, 4, window.Type(42))
	if !errors.Is(err, window.ErrInvalidType) {
		t.Fatalf("err=%v, want window.ErrInvalidType", err)
	}
}
