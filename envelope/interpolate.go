// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
)

const (
	// nearZeroGain is the floor below which exponential interpolation
	// falls back to linear rather than dividing by zero.
	nearZeroGain = 1e-6

	// logEpsilon offsets gains before taking log10 so zero endpoints
	// stay representable.
	logEpsilon = 1e-6

	// DefaultSeamTolerance bounds the gain jump allowed where two curve
	// segments share a keyframe. Jumps under this stay inaudible.
	DefaultSeamTolerance = 1e-3
)

// Ease-in-out control offsets for CubicBezier, as fractions of the gain
// delta between the segment endpoints.
const (
	bezierP1 = 0.42
	bezierP2 = 0.58
)

// Interpolate samples the gain envelope described by frames into a
// per-sample gain slice of the given length. Keyframes must be sorted
// strictly ascending by time. Before the first keyframe the envelope
// holds the first gain; after the last it holds the last gain.
//
// An empty keyframe list yields unity gain throughout, and a single
// keyframe yields its gain as a constant.
func Interpolate(frames []Keyframe, curve Curve, rate, count int) ([]float64, error) {
	if !curve.Valid() {
		return nil, fmt.Errorf("interpolate: curve %d: %w", int(curve), audio.ErrInvalidCurve)
	}

	if rate <= 0 {
		return nil, fmt.Errorf("interpolate at %d Hz: %w", rate, audio.ErrInvalidRate)
	}

	if count < 0 {
		return nil, fmt.Errorf("interpolate %d samples: %w", count, audio.ErrInvalidCurve)
	}

	if err := ValidateKeyframes(frames); err != nil {
		return nil, fmt.Errorf("interpolate: %w", err)
	}

	out := make([]float64, count)

	switch len(frames) {
	case 0:
		for i := range out {
			out[i] = 1.0
		}

		return out, nil
	case 1:
		for i := range out {
			out[i] = frames[0].Gain
		}

		return out, nil
	}

	seg := 0
	for i := range out {
		t := float64(i) / float64(rate)

		for seg < len(frames)-1 && t >= frames[seg+1].Time {
			seg++
		}

		switch {
		case t < frames[0].Time:
			out[i] = frames[0].Gain
		case seg >= len(frames)-1:
			out[i] = frames[len(frames)-1].Gain
		default:
			k0, k1 := frames[seg], frames[seg+1]
			u := (t - k0.Time) / (k1.Time - k0.Time)
			out[i] = segmentGain(k0.Gain, k1.Gain, u, curve)
		}
	}

	return out, nil
}

// Apply multiplies a buffer by the gain envelope described by frames,
// evaluated per sample with the given curve. The same envelope drives
// every channel. Output samples are clamped to [-1, 1]; the input buffer
// is never modified.
func Apply(buf *audio.Buffer, frames []Keyframe, curve Curve) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("apply envelope: %w", err)
	}

	gains, err := Interpolate(frames, curve, buf.Rate, buf.Frames())
	if err != nil {
		return nil, fmt.Errorf("apply envelope: %w", err)
	}

	out := buf.Clone()
	for c := range out.Data {
		for i := range out.Data[c] {
			out.Data[c][i] = audio.ClampSample(out.Data[c][i] * gains[i])
		}
	}

	return out, nil
}

// SeamError reports the largest gain discontinuity at the interior
// keyframes, comparing the left segment's limit against the right
// segment's start. Every curve type lands on its endpoint gains exactly,
// so well-formed envelopes stay below DefaultSeamTolerance; the check
// exists to catch envelopes assembled from mismatched pieces.
func SeamError(frames []Keyframe, curve Curve) (float64, error) {
	if !curve.Valid() {
		return 0, fmt.Errorf("seam error: curve %d: %w", int(curve), audio.ErrInvalidCurve)
	}

	if err := ValidateKeyframes(frames); err != nil {
		return 0, fmt.Errorf("seam error: %w", err)
	}

	worst := 0.0
	for i := 1; i < len(frames)-1; i++ {
		left := segmentGain(frames[i-1].Gain, frames[i].Gain, 1, curve)
		right := segmentGain(frames[i].Gain, frames[i+1].Gain, 0, curve)

		if d := math.Abs(left - right); d > worst {
			worst = d
		}
	}

	return worst, nil
}

// segmentGain evaluates one curve segment at position u in [0, 1] between
// endpoint gains g0 and g1.
func segmentGain(g0, g1, u float64, curve Curve) float64 {
	switch curve {
	case Exponential:
		if g0 < nearZeroGain || g1 < nearZeroGain {
			return g0 + (g1-g0)*u
		}

		return g0 * math.Pow(g1/g0, u)
	case CubicBezier:
		c1 := g0 + bezierP1*(g1-g0)
		c2 := g0 + bezierP2*(g1-g0)
		v := 1 - u

		return v*v*v*g0 + 3*v*v*u*c1 + 3*v*u*u*c2 + u*u*u*g1
	case Logarithmic:
		l0 := math.Log10(g0 + logEpsilon)
		l1 := math.Log10(g1 + logEpsilon)

		g := math.Pow(10, l0+(l1-l0)*u) - logEpsilon
		if g < 0 {
			return 0
		}

		return g
	default:
		return g0 + (g1-g0)*u
	}
}
