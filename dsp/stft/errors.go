package stft

import "errors"

// Errors returned by transform functions. Parameter errors are fatal for the
// call; nothing is retried internally and no partial result is returned.
var (
	// ErrInvalidFraming reports a non-positive window length, hop length,
	// or an FFT size that cannot cover a single frame.
	ErrInvalidFraming = errors.New("stft: invalid framing parameters")

	// ErrShapeMismatch reports a spectrogram whose row count is inconsistent
	// with the reflection mode supplied to the inverse transform.
	ErrShapeMismatch = errors.New("stft: spectrogram shape inconsistent with reflection mode")
)
