package stft

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-stft/dsp/window"
)

// defaultWindowDuration is the window length used when only a sample rate is
// known, rounded up to the next power of two in samples.
const defaultWindowDuration = 0.04 // seconds

// provenance tracks how a Params field obtained its current value.
type provenance int

const (
	provUnset provenance = iota
	provDerived
	provExplicit
)

// Params resolves and stores the framing configuration shared by the forward
// and inverse transforms.
//
// Hop length and FFT size start out derived from the window length: hop
// length tracks windowLength/2 and the FFT size tracks windowLength until
// either is set explicitly. Once explicit, a field never re-derives, even
// when the window length changes afterwards.
//
// Params is not safe for concurrent mutation; configure it before handing
// its values to in-flight transforms.
type Params struct {
	sampleRate   float64
	windowType   window.Type
	windowLength int
	hopLength    int
	fftBins      int

	windowProv provenance
	hopProv    provenance
	fftProv    provenance
}

// NewParams creates a parameter set for the given sample rate.
//
// The default window length is the next power of two covering 40 ms of
// samples; hop length and FFT size derive from it, and the window type
// defaults to hann.
func NewParams(sampleRate float64) (*Params, error) {
	if !isFinitePositive(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidFraming, sampleRate)
	}

	windowLength := nextPowerOf2(int(math.Ceil(defaultWindowDuration * sampleRate)))

	return &Params{
		sampleRate:   sampleRate,
		windowType:   window.TypeHann,
		windowLength: windowLength,
		hopLength:    windowLength / 2,
		fftBins:      windowLength,
		windowProv:   provDerived,
		hopProv:      provDerived,
		fftProv:      provDerived,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (p *Params) SampleRate() float64 { return p.sampleRate }

// WindowType returns the configured window family.
func (p *Params) WindowType() window.Type { return p.windowType }

// WindowLength returns the window length in samples.
func (p *Params) WindowLength() int { return p.windowLength }

// HopLength returns the hop length in samples.
func (p *Params) HopLength() int { return p.hopLength }

// FFTBins returns the FFT size in bins.
func (p *Params) FFTBins() int { return p.fftBins }

// WindowOverlap returns the overlap between adjacent frames in samples.
func (p *Params) WindowOverlap() int { return p.windowLength - p.hopLength }

// SetWindowLength updates the window length and re-derives hop length and
// FFT size for each of them still in derived state.
func (p *Params) SetWindowLength(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: window length must be > 0: %d", ErrInvalidFraming, v)
	}

	p.windowLength = v
	p.windowProv = provExplicit

	if p.hopProv != provExplicit {
		p.hopLength = v / 2
		p.hopProv = provDerived
	}

	if p.fftProv != provExplicit {
		p.fftBins = v
		p.fftProv = provDerived
	}

	return nil
}

// SetHopLength sets the hop length explicitly, unlinking it from the window
// length. No other field changes.
func (p *Params) SetHopLength(v int) error {
	if v <= 0 || v > p.windowLength {
		return fmt.Errorf("%w: hop length must be in [1, %d]: %d", ErrInvalidFraming, p.windowLength, v)
	}

	p.hopLength = v
	p.hopProv = provExplicit

	return nil
}

// SetFFTBins sets the FFT size explicitly. A value below the current window
// length is clamped up to the window length; the adjustment is observable
// through FFTBins and the resulting matrix row count, not reported as an
// error.
func (p *Params) SetFFTBins(v int) {
	if v < p.windowLength {
		v = p.windowLength
	}

	p.fftBins = v
	p.fftProv = provExplicit
}

// SetWindowType updates the window family.
func (p *Params) SetWindowType(t window.Type) error {
	if !window.IsValid(t) {
		return window.ErrInvalidType
	}

	p.windowType = t

	return nil
}

// Equal reports field-wise equality of current values. Provenance state does
// not participate in the comparison.
func (p *Params) Equal(other *Params) bool {
	if other == nil {
		return false
	}

	return p.sampleRate == other.sampleRate &&
		p.windowType == other.windowType &&
		p.windowLength == other.windowLength &&
		p.hopLength == other.hopLength &&
		p.fftBins == other.fftBins
}

// paramsJSON is the serialized schema for Params.
type paramsJSON struct {
	SampleRate   float64 `json:"sample_rate"`
	WindowLength int     `json:"window_length"`
	HopLength    int     `json:"hop_length"`
	WindowType   string  `json:"window_type"`
	FFTBins      int     `json:"n_fft_bins"`
}

// MarshalJSON serializes the current field values.
func (p *Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(paramsJSON{
		SampleRate:   p.sampleRate,
		WindowLength: p.windowLength,
		HopLength:    p.hopLength,
		WindowType:   p.windowType.String(),
		FFTBins:      p.fftBins,
	})
}

// UnmarshalJSON restores a parameter set from its serialized schema.
//
// Deserialized values are treated as caller-specified: every field comes
// back in explicit state and no longer re-derives from the window length.
func (p *Params) UnmarshalJSON(data []byte) error {
	var raw paramsJSON

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("stft: invalid params json: %w", err)
	}

	if !isFinitePositive(raw.SampleRate) {
		return fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidFraming, raw.SampleRate)
	}

	if raw.WindowLength <= 0 {
		return fmt.Errorf("%w: window length must be > 0: %d", ErrInvalidFraming, raw.WindowLength)
	}

	if raw.HopLength <= 0 || raw.HopLength > raw.WindowLength {
		return fmt.Errorf("%w: hop length must be in [1, %d]: %d", ErrInvalidFraming, raw.WindowLength, raw.HopLength)
	}

	windowType, err := window.ParseType(raw.WindowType)
	if err != nil {
		return err
	}

	fftBins := raw.FFTBins
	if fftBins < raw.WindowLength {
		fftBins = raw.WindowLength
	}

	*p = Params{
		sampleRate:   raw.SampleRate,
		windowType:   windowType,
		windowLength: raw.WindowLength,
		hopLength:    raw.HopLength,
		fftBins:      fftBins,
		windowProv:   provExplicit,
		hopProv:      provExplicit,
		fftProv:      provExplicit,
	}

	return nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
