// Package stft implements short-time spectral analysis and synthesis.
//
// The forward transform frames a zero-padded signal, windows each frame,
// and assembles per-frame spectra into a frequency-by-time matrix. The
// inverse transform reconstructs a time-domain signal from such a matrix
// via normalized per-frame inverse FFTs and overlap-add.
//
// # Usage
//
// One-shot analysis and reconstruction:
//
//	spec, err := stft.Analyze(signal, 1024, 512, window.TypeHann)
//	out, err := stft.Synthesize(spec, 1024, 512, stft.WithSignalPaddingRemoved())
//
// Analysis with power spectral density and axes:
//
//	res, err := stft.AnalyzeFull(signal, 1024, 512, window.TypeHann, 44100)
//
// Parameter resolution with cascading defaults lives in [Params].
//
// Round-trip reconstruction is exact (within floating tolerance) only when
// the window/hop pair satisfies the constant-overlap-add condition; the
// transforms do not enforce or correct that property.
package stft
