// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/utils"
)

// Resample returns a copy of b converted to the target sample rate using
// cubic interpolation, preserving the channel count. A simple one-pole
// low-pass filter is applied before interpolating when downsampling, to
// reduce aliasing. The input buffer is never modified.
//
// The mixing operations in this module require equal sample rates on all
// inputs; Resample is the conformance step for material that arrives at a
// different rate.
func Resample(b *Buffer, rate int) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}

	if rate <= 0 {
		return nil, fmt.Errorf("resample to %d Hz: %w", rate, ErrInvalidRate)
	}

	if rate == b.Rate {
		return b.Clone(), nil
	}

	frames := b.Frames()
	if frames == 0 {
		out := b.Clone()
		out.Rate = rate

		return out, nil
	}

	// ratio is how many source samples advance per output sample.
	ratio := float64(b.Rate) / float64(rate)

	outFrames := int(math.Round(float64(frames) / ratio))
	if outFrames < 1 {
		outFrames = 1
	}

	out := &Buffer{Rate: rate, Data: make([][]float64, len(b.Data))}

	for c := range b.Data {
		src := b.Data[c]
		if ratio > 1 {
			src = lowPass(src, 0.5)
		}

		dst := make([]float64, outFrames)
		for i := range outFrames {
			pos := float64(i) * ratio
			base := int(pos)
			frac := pos - float64(base)

			// Duplicate edge samples where the 4-point window runs
			// past the buffer.
			y0 := src[clampIndex(base-1, frames)]
			y1 := src[clampIndex(base, frames)]
			y2 := src[clampIndex(base+1, frames)]
			y3 := src[clampIndex(base+2, frames)]

			dst[i] = ClampSample(utils.CubicInterpolate(y0, y1, y2, y3, frac))
		}

		out.Data[c] = dst
	}

	return out, nil
}

// lowPass runs a one-pole low-pass over src and returns the filtered copy.
// y[n] = alpha * x[n] + (1-alpha) * y[n-1], state seeded with the first
// sample to avoid a warm-up transient.
func lowPass(src []float64, alpha float64) []float64 {
	out := make([]float64, len(src))
	state := src[0]

	for i, x := range src {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}
