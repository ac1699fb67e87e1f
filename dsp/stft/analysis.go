package stft

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-stft/dsp/spectrum"
	"github.com/cwbudde/algo-stft/dsp/window"
)

// Analysis bundles a spectrogram with its power spectral density and axes.
type Analysis struct {
	// Spectrogram is the complex matrix, indexed [bin][frame].
	Spectrogram [][]complex128
	// PSD holds |X|^2 / (sampleRate * windowEnergy) per bin and frame.
	PSD [][]float64
	// Frequencies is the per-row frequency axis in Hz.
	Frequencies []float64
	// Times is the per-column frame start time in seconds.
	Times []float64
}

// AnalyzeFull runs [Analyze] and additionally derives the frequency axis,
// time axis, and power spectral density of the result.
//
// The frequency axis is sized from the matrix rows, so it tracks whatever
// FFT size [Analyze] resolves, spanning 0..sampleRate/2 for the default half
// spectrum and 0..sampleRate when [WithFullSpectrum] is supplied.
func AnalyzeFull(signal []float64, windowLength, hopLength int, windowType window.Type, sampleRate float64, opts ...Option) (*Analysis, error) {
	if !isFinitePositive(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidFraming, sampleRate)
	}

	cfg := applyOptions(opts)

	evenWindowLength, _, err := normalizeFraming(windowLength, hopLength)
	if err != nil {
		return nil, err
	}

	spec, err := Analyze(signal, windowLength, hopLength, windowType, opts...)
	if err != nil {
		return nil, err
	}

	rows := len(spec)

	frames := 0
	if rows > 0 {
		frames = len(spec[0])
	}

	freqs := make([]float64, rows)
	if cfg.fullSpectrum {
		floats.Span(freqs, 0, sampleRate)
	} else {
		floats.Span(freqs, 0, sampleRate/2)
	}

	times := make([]float64, frames)
	hopSeconds := float64(hopLength) / sampleRate
	for j := range times {
		times[j] = float64(j) * hopSeconds
	}

	coeffs, err := window.Generate(windowType, evenWindowLength, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}

	windowEnergy := floats.Dot(coeffs, coeffs)
	scale := 1 / (sampleRate * windowEnergy)

	psd := make([][]float64, rows)
	for i := range psd {
		psd[i] = make([]float64, frames)
	}

	column := make([]complex128, rows)
	power := make([]float64, rows)

	for j := range frames {
		for i := range column {
			column[i] = spec[i][j]
		}

		if err := spectrum.PowerTo(power, column); err != nil {
			return nil, err
		}

		for i := range power {
			psd[i][j] = power[i] * scale
		}
	}

	return &Analysis{
		Spectrogram: spec,
		PSD:         psd,
		Frequencies: freqs,
		Times:       times,
	}, nil
}
