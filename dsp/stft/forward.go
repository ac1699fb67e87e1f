package stft

import (
	"fmt"
	"runtime"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-stft/dsp/window"
)

// Option configures the forward transform.
type Option func(*analyzeConfig)

type analyzeConfig struct {
	fftBins       int
	fullSpectrum  bool
	removePadding bool
}

// WithFFTBins requests an FFT size. The effective size is the next power of
// two at or above both the requested value and the window length; the
// adjustment is observable through the matrix row count. When unset, the FFT
// size defaults to the next power of two at or above the window length.
func WithFFTBins(n int) Option {
	return func(c *analyzeConfig) {
		c.fftBins = n
	}
}

// WithFullSpectrum keeps the conjugate-mirror bins above Nyquist instead of
// truncating the matrix to fftBins/2+1 rows.
func WithFullSpectrum() Option {
	return func(c *analyzeConfig) {
		c.fullSpectrum = true
	}
}

// WithPaddingRemoved drops the frame columns that fall entirely within the
// head and tail zero-padding regions.
func WithPaddingRemoved() Option {
	return func(c *analyzeConfig) {
		c.removePadding = true
	}
}

// Analyze computes the short-time Fourier transform of a single-channel
// signal.
//
// The returned matrix is indexed [bin][frame] with bin 0 at DC and frames in
// time order. By default only the fftBins/2+1 non-reflected rows are kept;
// see [WithFullSpectrum]. The input signal is not modified.
//
// An odd windowLength is reduced by one sample so that frames tile the
// padded signal exactly; all framing math uses the even value.
func Analyze(signal []float64, windowLength, hopLength int, windowType window.Type, opts ...Option) ([][]complex128, error) {
	cfg := applyOptions(opts)

	windowLength, hopLength, err := normalizeFraming(windowLength, hopLength)
	if err != nil {
		return nil, err
	}

	// FFT plans are created at power-of-two sizes only.
	fftBins := cfg.fftBins
	if fftBins < windowLength {
		fftBins = windowLength
	}

	fftBins = nextPowerOf2(fftBins)

	coeffs, err := window.Generate(windowType, windowLength, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}

	padded, headPad, tailPad := addZeroPadding(signal, windowLength, hopLength)

	frames := (len(padded)-windowLength)/hopLength + 1

	bins := fftBins
	if !cfg.fullSpectrum {
		bins = fftBins/2 + 1
	}

	matrix := make([][]complex128, bins)
	for i := range matrix {
		matrix[i] = make([]complex128, frames)
	}

	err = computeFrames(matrix, padded, coeffs, fftBins, hopLength, frames)
	if err != nil {
		return nil, err
	}

	if cfg.removePadding {
		matrix = trimFramePadding(matrix, headPad, tailPad, hopLength)
	}

	return matrix, nil
}

// computeFrames fills matrix columns with per-frame spectra. Frames are
// independent, so they are distributed over a worker pool; each worker owns
// its FFT plan and scratch buffers, and each frame writes only its own
// column, keeping the output deterministic.
func computeFrames(matrix [][]complex128, padded, coeffs []float64, fftBins, hopLength, frames int) error {
	windowLength := len(coeffs)
	bins := len(matrix)

	workers := runtime.NumCPU()
	if workers > frames {
		workers = frames
	}

	jobs := make(chan int, frames)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		frameErr error
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			plan, err := algofft.NewPlan64(fftBins)
			if err != nil {
				errOnce.Do(func() {
					frameErr = fmt.Errorf("stft: failed to create FFT plan: %w", err)
				})

				return
			}

			in := make([]complex128, fftBins)
			out := make([]complex128, fftBins)

			for j := range jobs {
				start := j * hopLength

				for i := range windowLength {
					in[i] = complex(padded[start+i]*coeffs[i], 0)
				}

				for i := windowLength; i < fftBins; i++ {
					in[i] = 0
				}

				err := plan.Forward(out, in)
				if err != nil {
					errOnce.Do(func() {
						frameErr = fmt.Errorf("stft: forward FFT failed: %w", err)
					})

					return
				}

				for i := range bins {
					matrix[i][j] = out[i]
				}
			}
		}()
	}

	for j := range frames {
		jobs <- j
	}

	close(jobs)
	wg.Wait()

	return frameErr
}

// normalizeFraming validates the framing pair and applies the odd-window
// decrement used throughout the transforms.
func normalizeFraming(windowLength, hopLength int) (int, int, error) {
	if windowLength <= 0 {
		return 0, 0, fmt.Errorf("%w: window length must be > 0: %d", ErrInvalidFraming, windowLength)
	}

	if hopLength <= 0 {
		return 0, 0, fmt.Errorf("%w: hop length must be > 0: %d", ErrInvalidFraming, hopLength)
	}

	windowLength &^= 1
	if windowLength == 0 {
		return 0, 0, fmt.Errorf("%w: window length must be >= 2 after even normalization", ErrInvalidFraming)
	}

	return windowLength, hopLength, nil
}

func applyOptions(opts []Option) analyzeConfig {
	var cfg analyzeConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
