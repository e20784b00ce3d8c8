// SPDX-License-Identifier: EPL-2.0

package vad

import (
	"fmt"

	"github.com/sceneforge/mixdown/audio"
)

// Config tunes voice activity detection. The zero value rejects
// everything; start from DefaultConfig and override what you need.
type Config struct {
	// WindowDur is the analysis window length in seconds. Windows
	// advance by half their length (50% overlap).
	WindowDur float64

	// RMSFloor is the window RMS a window must exceed to count as
	// active.
	RMSFloor float64

	// VoiceBandThreshold is the minimum fraction of a window's spectral
	// energy that must fall inside the 85-255 Hz voice band. Zero or
	// negative disables the spectral gate, leaving detection to the RMS
	// floor alone.
	VoiceBandThreshold float64

	// MergeGap fuses two segments separated by an inactive stretch
	// shorter than this many seconds, bridging breath pauses.
	MergeGap float64

	// MinSegment drops segments shorter than this many seconds.
	MinSegment float64
}

// DefaultConfig returns the detection settings the ducking mixer uses:
// 25 ms windows, an RMS floor of 0.01, the spectral gate disabled,
// pauses under 0.2 s bridged, and segments under 0.1 s discarded.
func DefaultConfig() Config {
	return Config{
		WindowDur:          0.025,
		RMSFloor:           0.01,
		VoiceBandThreshold: 0,
		MergeGap:           0.2,
		MinSegment:         0.1,
	}
}

// Validate checks for parameter values detection cannot run with.
func (c Config) Validate() error {
	if c.WindowDur <= 0 {
		return fmt.Errorf("window duration %gs: %w", c.WindowDur, audio.ErrInvalidCurve)
	}

	if c.RMSFloor < 0 {
		return fmt.Errorf("rms floor %g: %w", c.RMSFloor, audio.ErrInvalidCurve)
	}

	if c.VoiceBandThreshold > 1 {
		return fmt.Errorf("voice band threshold %g: %w", c.VoiceBandThreshold, audio.ErrInvalidCurve)
	}

	if c.MergeGap < 0 {
		return fmt.Errorf("merge gap %gs: %w", c.MergeGap, audio.ErrInvalidCurve)
	}

	if c.MinSegment < 0 {
		return fmt.Errorf("min segment %gs: %w", c.MinSegment, audio.ErrInvalidCurve)
	}

	return nil
}
