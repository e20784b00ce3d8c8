// SPDX-License-Identifier: EPL-2.0

package gapfill

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
)

const (
	// DefaultRMSThreshold is the window RMS below which material counts
	// as silent.
	DefaultRMSThreshold = 0.01

	// DefaultMinGapDuration ignores silent runs shorter than this many
	// seconds.
	DefaultMinGapDuration = 0.1

	// detectWindowDur is the RMS analysis window length in seconds.
	detectWindowDur = 0.02
)

// Gap is a contiguous silent region of a track.
type Gap struct {
	// Start and End in seconds from the track start.
	Start float64
	End   float64

	// Duration is End minus Start, carried for reporting.
	Duration float64
}

// Detect scans a track for regions whose RMS stays below threshold for at
// least minDur seconds and returns them in time order. Stereo channels
// are pooled, so a gap means every channel is quiet. An empty track has
// no gaps.
//
// Detection recomputes from the samples on every call; results are never
// cached. The input buffer is not modified.
func Detect(track *audio.Buffer, threshold, minDur float64) ([]Gap, error) {
	if err := track.Validate(); err != nil {
		return nil, fmt.Errorf("detect gaps: %w", err)
	}

	if threshold < 0 || math.IsNaN(threshold) {
		return nil, fmt.Errorf("detect gaps: threshold %g: %w", threshold, audio.ErrInvalidCurve)
	}

	if minDur < 0 || math.IsNaN(minDur) {
		return nil, fmt.Errorf("detect gaps: min duration %gs: %w", minDur, audio.ErrInvalidCurve)
	}

	frames := track.Frames()
	if frames == 0 {
		return nil, nil
	}

	window := int(math.Round(detectWindowDur * float64(track.Rate)))
	if window < 1 {
		window = 1
	}

	minFrames := int(math.Round(minDur * float64(track.Rate)))

	var gaps []Gap

	runStart := -1
	for start := 0; start < frames; start += window {
		end := start + window
		if end > frames {
			end = frames
		}

		below := track.RMSRange(start, end) < threshold

		if below && runStart < 0 {
			runStart = start
		}

		if !below && runStart >= 0 {
			if start-runStart >= minFrames {
				gaps = append(gaps, newGap(track, runStart, start))
			}

			runStart = -1
		}
	}

	if runStart >= 0 && frames-runStart >= minFrames {
		gaps = append(gaps, newGap(track, runStart, frames))
	}

	return gaps, nil
}

func newGap(track *audio.Buffer, from, to int) Gap {
	g := Gap{Start: track.TimeAt(from), End: track.TimeAt(to)}
	g.Duration = g.End - g.Start

	return g
}
