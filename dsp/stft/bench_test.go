package stft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-stft/dsp/window"
	"github.com/cwbudde/algo-stft/internal/testutil"
)

func BenchmarkAnalyze(b *testing.B) {
	lengths := []int{4096, 16384, 65536}

	for _, n := range lengths {
		signal := testutil.DeterministicSine(440, 44100, 1, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := Analyze(signal, 1024, 512, window.TypeHann); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAnalyzeFull(b *testing.B) {
	signal := testutil.DeterministicSine(440, 44100, 1, 44100)

	b.ReportAllocs()
	b.SetBytes(int64(len(signal) * 8))

	for range b.N {
		if _, err := AnalyzeFull(signal, 1024, 512, window.TypeHann, 44100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSynthesize(b *testing.B) {
	signal := testutil.DeterministicSine(440, 44100, 1, 16384)

	spec, err := Analyze(signal, 1024, 512, window.TypeHann)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := Synthesize(spec, 1024, 512); err != nil {
			b.Fatal(err)
		}
	}
}
