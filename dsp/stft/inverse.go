package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// SynthOption configures the inverse transform.
type SynthOption func(*synthConfig)

type synthConfig struct {
	fullSpectrumInput bool
	removePadding     bool
}

// WithFullSpectrumInput declares that the matrix already contains the
// conjugate-mirror bins above Nyquist, so no reflection is reconstructed
// before inversion.
func WithFullSpectrumInput() SynthOption {
	return func(c *synthConfig) {
		c.fullSpectrumInput = true
	}
}

// WithSignalPaddingRemoved trims windowLength-hopLength samples from each
// end of the reconstructed signal, undoing the framing pad added by
// [Analyze] for the same window and hop values.
func WithSignalPaddingRemoved() SynthOption {
	return func(c *synthConfig) {
		c.removePadding = true
	}
}

// Synthesize reconstructs a time-domain signal from a spectrogram matrix
// indexed [bin][frame], as produced by [Analyze] with matching window and
// hop lengths.
//
// The inverse FFT size is derived from the row count: 2*(rows-1) for the
// default half spectrum (the reflection is reconstructed before inversion),
// or rows with [WithFullSpectrumInput]. That size must be a power of two at
// or above the even-normalized window length, as [Analyze] produces; any
// other row count fails with [ErrShapeMismatch]. Each frame is
// inverse-transformed, reduced to the real part of its first windowLength
// samples (the remainder is forward zero-padding), and summed into the
// output via overlap-add.
//
// Exact round-trip reconstruction additionally requires the window/hop pair
// to satisfy the constant-overlap-add condition; that is the caller's
// parameter choice and is not enforced here.
func Synthesize(matrix [][]complex128, windowLength, hopLength int, opts ...SynthOption) ([]float64, error) {
	var cfg synthConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	windowLength, hopLength, err := normalizeFraming(windowLength, hopLength)
	if err != nil {
		return nil, err
	}

	frames, err := frameCount(matrix)
	if err != nil {
		return nil, err
	}

	fftSize := len(matrix)
	if !cfg.fullSpectrumInput {
		fftSize = 2 * (len(matrix) - 1)
	}

	if !isPowerOfTwo(fftSize) || fftSize < windowLength {
		return nil, fmt.Errorf("%w: %d rows imply FFT size %d, want a power of two covering window length %d",
			ErrShapeMismatch, len(matrix), fftSize, windowLength)
	}

	full := matrix
	if !cfg.fullSpectrumInput {
		full = addReflection(matrix)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	signal := make([]float64, (frames-1)*hopLength+windowLength)
	column := make([]complex128, fftSize)
	frame := make([]complex128, fftSize)

	for j := range frames {
		for i := range column {
			column[i] = full[i][j]
		}

		err := plan.Inverse(frame, column)
		if err != nil {
			return nil, fmt.Errorf("stft: inverse FFT failed: %w", err)
		}

		// Overlap-add of the real part; samples beyond the window length are
		// forward zero-padding and numerical imaginary residue is discarded.
		start := j * hopLength
		for i, v := range frame[:windowLength] {
			signal[start+i] += real(v)
		}
	}

	if cfg.removePadding {
		signal = trimSignalPadding(signal, windowLength, hopLength)
	}

	return signal, nil
}

// frameCount returns the column count of a rectangular matrix.
func frameCount(matrix [][]complex128) (int, error) {
	if len(matrix) == 0 {
		return 0, fmt.Errorf("%w: empty spectrogram", ErrShapeMismatch)
	}

	frames := len(matrix[0])
	if frames == 0 {
		return 0, fmt.Errorf("%w: spectrogram has no frames", ErrShapeMismatch)
	}

	for i, row := range matrix {
		if len(row) != frames {
			return 0, fmt.Errorf("%w: row %d has %d frames, want %d",
				ErrShapeMismatch, i, len(row), frames)
		}
	}

	return frames, nil
}
