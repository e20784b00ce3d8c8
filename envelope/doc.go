// SPDX-License-Identifier: EPL-2.0

// Package envelope turns sparse gain keyframes into per-sample gain
// curves.
//
// A Keyframe pins a linear gain to a point in time; Interpolate expands a
// sorted keyframe list into one gain value per output sample:
//
//	frames := []envelope.Keyframe{
//	    {Time: 0.0, Gain: 1.0},
//	    {Time: 0.5, Gain: 0.25},
//	    {Time: 2.0, Gain: 0.25},
//	    {Time: 2.5, Gain: 1.0},
//	}
//	gains, err := envelope.Interpolate(frames, envelope.CubicBezier, 44100, 44100*3)
//
// Apply evaluates the same curve and multiplies it into a buffer in one
// step, which is how the ducking mixer shapes its music bed.
//
// # Curve Types
//
// Four shapes are supported between adjacent keyframes:
//   - Linear: straight-line gain
//   - Exponential: geometric, perceptually even fades
//   - CubicBezier: smooth ease, symmetric around the midpoint
//   - Logarithmic: linear in the log10 gain domain
//
// Every shape lands on the keyframe gains exactly, so chained segments
// meet without clicks; SeamError measures the residual jump at shared
// keyframes when stitching envelopes from separate pieces.
//
// # Boundary Behavior
//
// Before the first keyframe the envelope holds the first gain, after the
// last it holds the last gain. An empty keyframe list means no envelope:
// unity gain throughout.
package envelope
