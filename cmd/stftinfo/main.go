// Command stftinfo prints the framing and resolution properties of a
// short-time Fourier transform configuration.
//
// Usage:
//
//	stftinfo [flags]
//
// Without flags it prints the default configuration for 44.1 kHz audio:
// the window length is the next power of two covering 40 ms, the hop is
// half the window, and the FFT size equals the window length.
//
// Examples:
//
//	stftinfo -rate 48000
//	stftinfo -length 2048 -hop 512 -window blackman
//	stftinfo -length 1024 -bins 4096 -duration 2.5
//	stftinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-stft/dsp/stft"
	"github.com/cwbudde/algo-stft/dsp/window"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	length := flag.Int("length", 0, "window length in samples (0 derives it from the sample rate)")
	hop := flag.Int("hop", 0, "hop length in samples (0 derives half the window length)")
	bins := flag.Int("bins", 0, "FFT size in samples (0 derives the window length)")
	name := flag.String("window", "hann", "window type name")
	duration := flag.Float64("duration", 1.0, "signal duration in seconds used for the shape preview")
	full := flag.Bool("full", false, "report the full-spectrum shape instead of the half spectrum")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints framing and resolution properties of an STFT configuration.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stftinfo -rate 48000\n")
		fmt.Fprintf(os.Stderr, "  stftinfo -length 2048 -hop 512 -window blackman\n")
		fmt.Fprintf(os.Stderr, "  stftinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	params, err := buildParams(*rate, *length, *hop, *bins, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printInfo(params, *duration, *full); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	for _, t := range window.Types() {
		fmt.Println(t)
	}
}

func buildParams(rate float64, length, hop, bins int, name string) (*stft.Params, error) {
	params, err := stft.NewParams(rate)
	if err != nil {
		return nil, err
	}

	typ, err := window.ParseType(name)
	if err != nil {
		return nil, fmt.Errorf("%w (use -list to see available)", err)
	}

	if err := params.SetWindowType(typ); err != nil {
		return nil, err
	}

	if length > 0 {
		if err := params.SetWindowLength(length); err != nil {
			return nil, err
		}
	}

	if hop > 0 {
		if err := params.SetHopLength(hop); err != nil {
			return nil, err
		}
	}

	if bins > 0 {
		params.SetFFTBins(bins)
	}

	return params, nil
}

func printInfo(params *stft.Params, duration float64, full bool) error {
	rate := params.SampleRate()
	samples := int(duration * rate)

	var opts []stft.Option

	opts = append(opts, stft.WithFFTBins(params.FFTBins()))
	if full {
		opts = append(opts, stft.WithFullSpectrum())
	}

	matrix, err := stft.Analyze(make([]float64, samples),
		params.WindowLength(), params.HopLength(), params.WindowType(), opts...)
	if err != nil {
		return err
	}

	// The transform resolves FFT sizes to powers of two; report the size it
	// actually used, read back from the matrix rows.
	fftSize := len(matrix)
	if !full {
		fftSize = 2 * (len(matrix) - 1)
	}

	coeffs, err := window.Generate(params.WindowType(), params.WindowLength(), window.WithPeriodic())
	if err != nil {
		return err
	}

	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Sample rate\t%.0f Hz\n", rate)
	fmt.Fprintf(tw, "Window\t%s\n", params.WindowType())
	fmt.Fprintf(tw, "Window length\t%d samples (%.2f ms)\n",
		params.WindowLength(), 1000*float64(params.WindowLength())/rate)
	fmt.Fprintf(tw, "Hop length\t%d samples (overlap %d)\n",
		params.HopLength(), params.WindowOverlap())
	fmt.Fprintf(tw, "FFT size\t%d\n", fftSize)
	fmt.Fprintf(tw, "Bin resolution\t%.3f Hz\n", rate/float64(fftSize))
	fmt.Fprintf(tw, "Frame rate\t%.3f Hz\n", rate/float64(params.HopLength()))
	fmt.Fprintf(tw, "Window energy\t%.4f\n", window.Energy(coeffs))
	fmt.Fprintf(tw, "ENBW\t%.4f bins\n", enbw)
	fmt.Fprintf(tw, "Shape (%.2f s signal)\t%d bins x %d frames\n",
		duration, len(matrix), len(matrix[0]))

	return tw.Flush()
}
