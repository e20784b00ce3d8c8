// SPDX-License-Identifier: EPL-2.0

// Package crossfade blends audio clips through overlapping fades.
//
// Pair crossfades two clips; Sequence chains any number with the same
// transition between each pair:
//
//	res, err := crossfade.Pair(sceneA, sceneB, crossfade.DefaultOptions())
//	out := res.Buffer
//
// The default transition is tail-aligned: the second clip enters so that
// the blend covers the first clip's final half second, and the output is
// len(a)+len(b)-overlap long. Options.Position moves the entry point
// anywhere on the first clip instead, which the gap filler uses to blend
// material inside a gap.
//
// # Fade Shapes
//
// EqualPower, the default, fades on cos/sin quarter cycles so that
// fade_out(t)^2+fade_in(t)^2 = 1 at every point of the transition. That
// is 0 dB gain compensation: the summed loudness neither dips nor bumps
// while one clip hands over to the other. Linear and Exponential trade
// that guarantee for a straight ramp or a quieter middle.
//
// # Clamping
//
// Overlaps longer than either clip clamp to what the clips can cover,
// and every output sample is clamped to [-1, 1] after blending.
package crossfade
