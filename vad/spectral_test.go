// SPDX-License-Identifier: EPL-2.0

package vad

import (
	"math"
	"testing"

	"github.com/sceneforge/mixdown/internal/audiotest"
)

func TestBandFraction(t *testing.T) {
	t.Parallel()

	const (
		rate   = 44100
		window = 1103 // 25 ms at 44.1 kHz
	)

	tests := []struct {
		name string
		data []float64
		min  float64
		max  float64
	}{
		{
			name: "tone inside the band",
			data: audiotest.NewToneBuffer(rate, 1, window, 120, 0.5).Data[0],
			min:  0.9,
			max:  1.0,
		},
		{
			name: "tone above the band",
			data: audiotest.NewToneBuffer(rate, 1, window, 1000, 0.5).Data[0],
			min:  0.0,
			max:  0.05,
		},
		{
			name: "tone below the band",
			data: audiotest.NewToneBuffer(rate, 1, window, 50, 0.5).Data[0],
			min:  0.0,
			max:  0.2,
		},
		{
			name: "broadband noise",
			data: audiotest.NewNoiseBuffer(rate, 1, window, 0.5).Data[0],
			min:  0.0,
			max:  0.1,
		},
		{
			name: "silence",
			data: make([]float64, window),
			min:  0.0,
			max:  0.0,
		},
		{
			name: "empty window",
			data: nil,
			min:  0.0,
			max:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := bandFraction(tt.data, rate, voiceBandLow, voiceBandHigh)
			if got < tt.min || got > tt.max {
				t.Errorf("bandFraction() = %v, want in [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}

// TestGoertzelPower checks the single-bin DFT against the closed form: a
// unit cosine landing exactly on bin k has squared magnitude (n/2)^2, and
// contributes nothing to other bins.
func TestGoertzelPower(t *testing.T) {
	t.Parallel()

	const (
		n   = 1000
		bin = 10
	)

	window := make([]float64, n)
	for i := range window {
		window[i] = math.Cos(2 * math.Pi * bin * float64(i) / n)
	}

	want := float64(n*n) / 4

	if got := goertzelPower(window, bin); math.Abs(got-want) > want*0.01 {
		t.Errorf("on-bin power = %v, want ~%v", got, want)
	}

	if got := goertzelPower(window, 2*bin); got > 1.0 {
		t.Errorf("off-bin power = %v, want ~0", got)
	}
}

func BenchmarkBandFraction(b *testing.B) {
	window := audiotest.NewToneBuffer(44100, 1, 1103, 180, 0.5).Data[0]

	b.ReportAllocs()

	for b.Loop() {
		_ = bandFraction(window, 44100, voiceBandLow, voiceBandHigh)
	}
}
