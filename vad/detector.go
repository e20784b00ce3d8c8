// SPDX-License-Identifier: EPL-2.0

package vad

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
)

// Confidence shaping: a segment at or above this mean RMS with a duration
// of at least confFullDur seconds scores 1.0.
const (
	confReferenceRMS = 0.25
	confFullDur      = 1.5
)

// Segment is one contiguous stretch of detected voice activity.
type Segment struct {
	// Start and End in seconds from the track start. Start < End, and
	// End never exceeds the track duration.
	Start float64
	End   float64

	// Confidence scores the detection in [0, 1]; longer and louder
	// segments score higher.
	Confidence float64

	// MeanRMS is the mean analysis-window RMS across the segment.
	MeanRMS float64
}

// Duration reports the segment length in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// Detect scans a track for voice activity and returns the detected
// segments in time order. Stereo input is downmixed to mono for analysis.
//
// The track is scanned with half-overlapping windows of cfg.WindowDur
// seconds. A window is active when its RMS exceeds cfg.RMSFloor and,
// with the spectral gate enabled, enough of its energy sits in the voice
// band. Consecutive active windows form segments; segments separated by
// less than cfg.MergeGap fuse, and segments shorter than cfg.MinSegment
// are dropped.
//
// An empty track yields no segments and no error. The input buffer is
// never modified.
func Detect(track *audio.Buffer, cfg Config) ([]Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("detect voice: %w", err)
	}

	if err := track.Validate(); err != nil {
		return nil, fmt.Errorf("detect voice: %w", err)
	}

	mono := track.Mono()
	frames := mono.Frames()
	if frames == 0 {
		return nil, nil
	}

	window := int(math.Round(cfg.WindowDur * float64(mono.Rate)))
	if window < 1 {
		window = 1
	}

	hop := window / 2
	if hop < 1 {
		hop = 1
	}

	runs := activeRuns(mono, cfg, window, hop)
	runs = mergeRuns(runs, int(math.Round(cfg.MergeGap*float64(mono.Rate))))

	minFrames := int(math.Round(cfg.MinSegment * float64(mono.Rate)))

	var segs []Segment
	for _, r := range runs {
		if r.end-r.start < minFrames {
			continue
		}

		seg := Segment{
			Start:   mono.TimeAt(r.start),
			End:     mono.TimeAt(r.end),
			MeanRMS: r.rmsSum / float64(r.windows),
		}
		seg.Confidence = confidence(seg.MeanRMS, seg.Duration())

		segs = append(segs, seg)
	}

	return segs, nil
}

// run accumulates consecutive active analysis windows, in sample indices.
type run struct {
	start, end int
	rmsSum     float64
	windows    int
}

// activeRuns slides the analysis window across the mono track and collects
// runs of active windows. Window ends clamp to the track, so run bounds
// never overshoot it.
func activeRuns(mono *audio.Buffer, cfg Config, window, hop int) []run {
	frames := mono.Frames()
	samples := mono.Data[0]

	var (
		runs   []run
		cur    run
		active bool
	)

	for start := 0; start < frames; start += hop {
		end := start + window
		if end > frames {
			end = frames
		}

		rms := mono.RMSRange(start, end)

		on := rms > cfg.RMSFloor
		if on && cfg.VoiceBandThreshold > 0 {
			on = bandFraction(samples[start:end], mono.Rate, voiceBandLow, voiceBandHigh) >= cfg.VoiceBandThreshold
		}

		switch {
		case on && !active:
			cur = run{start: start, end: end, rmsSum: rms, windows: 1}
			active = true
		case on:
			cur.end = end
			cur.rmsSum += rms
			cur.windows++
		case active:
			runs = append(runs, cur)
			active = false
		}

		if end == frames {
			break
		}
	}

	if active {
		runs = append(runs, cur)
	}

	return runs
}

// mergeRuns fuses runs separated by fewer than mergeFrames samples.
// Overlapping runs always fuse.
func mergeRuns(runs []run, mergeFrames int) []run {
	var merged []run
	for _, r := range runs {
		if n := len(merged); n > 0 && r.start-merged[n-1].end < mergeFrames {
			merged[n-1].end = r.end
			merged[n-1].rmsSum += r.rmsSum
			merged[n-1].windows += r.windows

			continue
		}

		merged = append(merged, r)
	}

	return merged
}

// confidence maps a segment's loudness and length onto [0, 1]. Loudness
// saturates at confReferenceRMS and duration at confFullDur, so longer and
// louder segments never score lower than shorter, quieter ones.
func confidence(meanRMS, dur float64) float64 {
	durWeight := 0.5 + 0.5*math.Min(1, dur/confFullDur)

	c := meanRMS / confReferenceRMS * durWeight
	if c > 1 {
		return 1
	}

	return c
}
