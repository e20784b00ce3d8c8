// SPDX-License-Identifier: EPL-2.0

package gapfill

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/crossfade"
	"github.com/sceneforge/mixdown/utils"
)

// DefaultAmbientLevelDB is the target RMS level of synthesized ambient
// noise, in dBFS.
const DefaultAmbientLevelDB = -40.0

// ambientFadeDur caps the fade at each edge of an ambient fill, in
// seconds. Short gaps fade over a quarter of their length instead.
const ambientFadeDur = 0.010

// FillConfig controls Fill.
type FillConfig struct {
	// Method selects the fill strategy.
	Method Method

	// AmbientLevelDB is the RMS level of synthesized noise for the
	// Ambient method, in dBFS.
	AmbientLevelDB float64
}

// DefaultFillConfig returns ambient fill at -40 dBFS.
func DefaultFillConfig() FillConfig {
	return FillConfig{
		Method:         Ambient,
		AmbientLevelDB: DefaultAmbientLevelDB,
	}
}

// Stats summarizes the gaps handled by one Fill call.
type Stats struct {
	// Count is the number of gaps.
	Count int

	// TotalDuration is the summed gap length in seconds.
	TotalDuration float64

	// Percent is the share of the track duration covered by gaps, in
	// [0, 100].
	Percent float64
}

// Result bundles the filled buffer with the gaps it covers and their
// statistics.
type Result struct {
	// Buffer is the output track. For the Silence method it is a
	// bit-identical copy of the input.
	Buffer *audio.Buffer

	// Gaps are the regions that were handled, as passed in.
	Gaps []Gap

	// Stats summarizes the gaps against the track duration.
	Stats Stats
}

// Fill covers the given gaps in a track according to cfg and returns the
// filled buffer with statistics. Gaps usually come straight from Detect.
//
// The Silence method performs no filling: the output is a bit-identical
// copy of the input, so gaps can be reported without touching the
// material. Ambient and Crossfade rewrite only the gap regions and clamp
// the samples they write to [-1, 1]. The input buffer is never modified.
func Fill(track *audio.Buffer, gaps []Gap, cfg FillConfig) (*Result, error) {
	if err := track.Validate(); err != nil {
		return nil, fmt.Errorf("fill gaps: %w", err)
	}

	if !cfg.Method.Valid() {
		return nil, fmt.Errorf("fill gaps: method %d: %w", int(cfg.Method), audio.ErrUnsupportedFillMethod)
	}

	if math.IsNaN(cfg.AmbientLevelDB) || math.IsInf(cfg.AmbientLevelDB, 0) {
		return nil, fmt.Errorf("fill gaps: ambient level %g dB: %w", cfg.AmbientLevelDB, audio.ErrInvalidCurve)
	}

	if err := validateGaps(gaps, track.Duration()); err != nil {
		return nil, fmt.Errorf("fill gaps: %w", err)
	}

	out := track.Clone()

	if cfg.Method != Silence {
		for _, g := range gaps {
			from, to := track.IndexAt(g.Start), track.IndexAt(g.End)
			if to <= from {
				continue
			}

			if cfg.Method == Ambient {
				fillAmbient(out, from, to, utils.DBToLinear(cfg.AmbientLevelDB))
				continue
			}

			if err := fillCrossfade(out, track, from, to); err != nil {
				return nil, fmt.Errorf("fill gaps: %w", err)
			}
		}
	}

	return &Result{
		Buffer: out,
		Gaps:   append([]Gap(nil), gaps...),
		Stats:  stats(gaps, track.Duration()),
	}, nil
}

func validateGaps(gaps []Gap, duration float64) error {
	for i, g := range gaps {
		if math.IsNaN(g.Start) || math.IsNaN(g.End) ||
			g.Start < 0 || g.End <= g.Start || g.End > duration+1e-9 {
			return fmt.Errorf("gap %d [%gs, %gs] in a %gs track: %w",
				i, g.Start, g.End, duration, audio.ErrInvalidCurve)
		}
	}

	return nil
}

func stats(gaps []Gap, duration float64) Stats {
	s := Stats{Count: len(gaps)}
	for _, g := range gaps {
		s.TotalDuration += g.End - g.Start
	}

	if duration > 0 {
		s.Percent = s.TotalDuration / duration * 100
	}

	return s
}

// fillAmbient writes uniform noise at the target RMS level into
// out[from:to), fading in and out at the gap edges. The generator is
// seeded from the gap position, so identical inputs produce identical
// output.
func fillAmbient(out *audio.Buffer, from, to int, level float64) {
	rng := rand.New(rand.NewPCG(uint64(from), uint64(to)))

	// Uniform noise in [-a, a] has RMS a/sqrt(3).
	amp := level * math.Sqrt(3)

	gapLen := to - from

	fade := int(math.Round(ambientFadeDur * float64(out.Rate)))
	if fade > gapLen/4 {
		fade = gapLen / 4
	}

	for i := range gapLen {
		gain := 1.0
		if fade > 0 {
			if i < fade {
				gain = float64(i) / float64(fade)
			}

			if tail := gapLen - 1 - i; tail < fade {
				if g := float64(tail) / float64(fade); g < gain {
					gain = g
				}
			}
		}

		for c := range out.Data {
			out.Data[c][from+i] = audio.ClampSample(amp * gain * (rng.Float64()*2 - 1))
		}
	}
}

// fillCrossfade covers out[from:to) with the track's own material: the
// contexts on both sides of the gap, tiled to the gap length and blended
// with an equal-power fade from the leading into the trailing side. With
// only one neighbor the gap is tiled from that side alone. Contexts are
// read from the unmodified input, so earlier fills never feed later ones.
func fillCrossfade(out, track *audio.Buffer, from, to int) error {
	gapLen := to - from

	pre := neighborContext(track, from-gapLen, from, gapLen)
	post := neighborContext(track, to, to+gapLen, gapLen)

	var fill *audio.Buffer

	switch {
	case pre == nil && post == nil:
		return nil // no material on either side; leave the gap alone
	case pre == nil:
		fill = post
	case post == nil:
		fill = pre
	default:
		res, err := crossfade.Pair(pre, post, crossfade.Options{
			Overlap:  float64(gapLen) / float64(track.Rate),
			Curve:    crossfade.EqualPower,
			Position: 0,
		})
		if err != nil {
			return err
		}

		fill = res.Buffer
	}

	for c := range out.Data {
		for i := range gapLen {
			out.Data[c][from+i] = audio.ClampSample(fill.Data[c][i])
		}
	}

	return nil
}

// neighborContext copies track[lo:hi) clamped to the track bounds and
// tiles it to n frames. Returns nil when the range holds no material.
func neighborContext(track *audio.Buffer, lo, hi, n int) *audio.Buffer {
	src := track.Slice(lo, hi)
	if src.Frames() == 0 {
		return nil
	}

	if src.Frames() == n {
		return src
	}

	tiled := &audio.Buffer{Rate: src.Rate, Data: make([][]float64, src.Channels())}
	for c := range tiled.Data {
		tiled.Data[c] = make([]float64, n)
		for i := range n {
			tiled.Data[c][i] = src.Data[c][i%src.Frames()]
		}
	}

	return tiled
}
