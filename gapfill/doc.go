// SPDX-License-Identifier: EPL-2.0

// Package gapfill finds silent gaps in a track and repairs them.
//
// Detect reports regions whose windowed RMS stays below a threshold for
// long enough to matter; Fill covers those regions:
//
//	gaps, err := gapfill.Detect(track, gapfill.DefaultRMSThreshold, gapfill.DefaultMinGapDuration)
//	res, err := gapfill.Fill(track, gaps, gapfill.DefaultFillConfig())
//
// # Fill Methods
//
// Ambient synthesizes noise at a low target level (-40 dBFS by default)
// so the gap no longer reads as dead air, fading the noise in and out at
// the edges. Crossfade pulls the material on either side of the gap into
// it and blends the two sides with an equal-power fade, covering the gap
// with real audio instead of synthesis; a gap at the track's edge is
// tiled from its single neighbor. Silence fills nothing: the output is a
// bit-identical copy, which turns Fill into a pure reporting call.
//
// Every Result carries the gap list and summary statistics (count, total
// duration, share of the track), so callers can log what was repaired.
package gapfill
