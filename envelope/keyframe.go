// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/utils"
)

// Keyframe pins a gain value to a point in time on a gain envelope.
// Gain is linear: 1.0 passes audio through unchanged, 0.0 silences it.
type Keyframe struct {
	// Time in seconds from the start of the track.
	Time float64
	// Gain as a linear factor, >= 0.
	Gain float64
}

// KeyframeDB builds a keyframe from a decibel value, for callers that
// think in dB at the boundary.
func KeyframeDB(t, db float64) Keyframe {
	return Keyframe{Time: t, Gain: utils.DBToLinear(db)}
}

// GainDB reports the keyframe gain in decibels.
func (k Keyframe) GainDB() float64 {
	return utils.LinearToDB(k.Gain)
}

// ValidateKeyframes checks that the list is sorted strictly ascending by
// time with no duplicates, and that every keyframe carries a finite,
// non-negative gain and a finite time. An empty list is valid.
func ValidateKeyframes(frames []Keyframe) error {
	for i, k := range frames {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) {
			return fmt.Errorf("keyframe %d time %v: %w", i, k.Time, audio.ErrInvalidCurve)
		}

		if math.IsNaN(k.Gain) || math.IsInf(k.Gain, 0) || k.Gain < 0 {
			return fmt.Errorf("keyframe %d gain %v: %w", i, k.Gain, audio.ErrInvalidCurve)
		}

		if i > 0 && k.Time <= frames[i-1].Time {
			return fmt.Errorf("keyframe %d at %vs after keyframe %d at %vs: %w",
				i, k.Time, i-1, frames[i-1].Time, audio.ErrInvalidKeyframeOrder)
		}
	}

	return nil
}
