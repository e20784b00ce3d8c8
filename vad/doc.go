// SPDX-License-Identifier: EPL-2.0

// Package vad detects stretches of voice activity in an audio track.
//
// Detect slides half-overlapping analysis windows across the track and
// measures each window's RMS energy:
//
//	segs, err := vad.Detect(voice, vad.DefaultConfig())
//	for _, s := range segs {
//	    fmt.Printf("%.2fs-%.2fs confidence %.2f\n", s.Start, s.End, s.Confidence)
//	}
//
// Runs of active windows become Segments. Segments separated by short
// pauses fuse into one, so breaths inside a sentence do not fragment it,
// and segments too short to be speech are dropped. The ducking mixer
// feeds these segments to its envelope builder.
//
// # Spectral Gate
//
// Beyond the RMS floor, a window can additionally be required to hold a
// minimum fraction of its spectral energy in the 85-255 Hz band, where
// human fundamental pitch lives. Set Config.VoiceBandThreshold to a
// positive fraction to enable the gate; it rejects broadband noise and
// high-pitched tones that pass a pure energy check. The gate stays off in
// DefaultConfig because narration recorded against a quiet background is
// separated fine by energy alone.
//
// # Confidence
//
// Each segment carries a confidence in [0, 1] that grows with its mean
// RMS and its duration. The value ranks detections for display and
// reporting; the mixer ducks every returned segment regardless of score.
package vad
