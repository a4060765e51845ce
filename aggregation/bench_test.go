// SPDX-License-Identifier: MIT

package aggregation_test

import (
	"math"
	"testing"

	"github.com/staccato-dev/staccato/aggregation"
	"github.com/staccato-dev/staccato/timeseries"
	"github.com/staccato-dev/staccato/timing"
)

// benchmarkSliding runs a window-sum reduction over one second of audio at
// the given window and hop sizes.
func benchmarkSliding(b *testing.B, window, hop int) {
	data := make([]float64, 44100)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 44100)
	}
	ts, err := timeseries.New(timing.FromInt(44100), data)
	if err != nil {
		b.Fatalf("series: %v", err)
	}

	sum := func(frame []float64) []float64 {
		var acc float64
		for _, v := range frame {
			acc += v * v
		}
		return []float64{acc}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aggregation.SlidingWindow(ts, window, hop, sum); err != nil {
			b.Fatalf("SlidingWindow failed: %v", err)
		}
	}
}

// BenchmarkSlidingWindow_2048x512 benchmarks the default analysis frame.
func BenchmarkSlidingWindow_2048x512(b *testing.B) {
	benchmarkSliding(b, 2048, 512)
}

// BenchmarkSlidingWindow_4096x512 benchmarks the long adaptive-RMS frame.
func BenchmarkSlidingWindow_4096x512(b *testing.B) {
	benchmarkSliding(b, 4096, 512)
}
