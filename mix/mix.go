// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/envelope"
	"github.com/sceneforge/mixdown/utils"
	"github.com/sceneforge/mixdown/vad"
)

// Result bundles the mixed output with the ducking decisions that
// produced it.
type Result struct {
	// Buffer is the mixed track: voice summed with ducked music.
	Buffer *audio.Buffer

	// Segments are the voice regions detected on the voice track.
	Segments []vad.Segment

	// Keyframes is the gain envelope applied to the music track.
	Keyframes []envelope.Keyframe

	// Duration of the mix in seconds.
	Duration float64
}

// VoiceOverMusic mixes a voice track over a music bed. Voice segments
// are detected with cfg.Detector; around each one the music gain rides
// down to cfg.ReductionDB and back, fading over cfg.Offset seconds of
// margin on either side. Segments whose fade margins would overlap share
// one duck window, so the envelope holds the reduction through short
// pauses instead of fluttering. The ducked music is summed with the
// unmodified voice; when the raw sum peaks above cfg.Ceiling the whole
// mix is scaled down uniformly to land on it, never per region.
//
// Both inputs must share a sample rate and be non-empty. A mismatched
// channel count downmixes both tracks to mono. Neither input is
// modified; the output covers the longer track.
func VoiceOverMusic(voice, music *audio.Buffer, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mix voice over music: %w", err)
	}

	if err := voice.Validate(); err != nil {
		return nil, fmt.Errorf("mix voice over music: voice track: %w", err)
	}

	if err := music.Validate(); err != nil {
		return nil, fmt.Errorf("mix voice over music: music track: %w", err)
	}

	if voice.Rate != music.Rate {
		return nil, fmt.Errorf("mix voice over music: voice at %d Hz, music at %d Hz: %w",
			voice.Rate, music.Rate, audio.ErrSampleRateMismatch)
	}

	if voice.Frames() == 0 || music.Frames() == 0 {
		return nil, fmt.Errorf("mix voice over music: %w", audio.ErrEmptyInput)
	}

	if voice.Channels() != music.Channels() {
		voice = voice.Mono()
		music = music.Mono()
	}

	segments, err := vad.Detect(voice, cfg.Detector)
	if err != nil {
		return nil, fmt.Errorf("mix voice over music: %w", err)
	}

	keyframes := duckKeyframes(segments, cfg, music.Rate, music.Duration())

	ducked, err := envelope.Apply(music, keyframes, cfg.Curve)
	if err != nil {
		return nil, fmt.Errorf("mix voice over music: %w", err)
	}

	out := sum(voice, ducked).NormalizePeak(cfg.Ceiling)

	return &Result{
		Buffer:    out,
		Segments:  segments,
		Keyframes: keyframes,
		Duration:  out.Duration(),
	}, nil
}

// duckWindow is one contiguous region where the music rides at the
// reduced gain, with fade margins on either side.
type duckWindow struct {
	fadeIn   float64 // fade-down starts here, at unity
	holdFrom float64 // reduced gain from here
	holdTo   float64 // reduced gain until here
	fadeOut  float64 // back to unity here
}

// duckKeyframes translates voice segments into a music gain envelope:
// unity, fade down across the offset margin, hold the reduction through
// the segment, fade back up. Windows that would overlap, or leave less
// than a few samples of unity between them, fuse into one.
func duckKeyframes(segments []vad.Segment, cfg Config, rate int, duration float64) []envelope.Keyframe {
	if len(segments) == 0 || duration <= 0 {
		return nil
	}

	step := 1.0 / float64(rate)

	var windows []duckWindow

	for _, s := range segments {
		w := duckWindow{
			fadeIn:   math.Max(0, s.Start-cfg.Offset),
			holdFrom: math.Min(s.Start, duration),
			holdTo:   math.Min(s.End, duration),
			fadeOut:  math.Min(s.End+cfg.Offset, duration),
		}

		if w.fadeIn >= duration {
			break // the music is over before this segment ducks it
		}

		if n := len(windows); n > 0 && w.fadeIn < windows[n-1].fadeOut+4*step {
			prev := &windows[n-1]
			prev.holdTo = math.Max(prev.holdTo, w.holdTo)
			prev.fadeOut = math.Max(prev.fadeOut, w.fadeOut)

			continue
		}

		windows = append(windows, w)
	}

	reduction := utils.DBToLinear(cfg.ReductionDB)

	var frames []envelope.Keyframe

	for _, w := range windows {
		down := w.fadeIn
		if down >= w.holdFrom {
			down = w.holdFrom - step // zero offset still gets a one-sample ramp
		}

		if down >= 0 {
			frames = append(frames, envelope.Keyframe{Time: down, Gain: 1})
		}

		frames = append(frames, envelope.Keyframe{Time: w.holdFrom, Gain: reduction})

		if w.holdTo > w.holdFrom {
			frames = append(frames, envelope.Keyframe{Time: w.holdTo, Gain: reduction})
		}

		up := w.fadeOut
		if up <= w.holdTo {
			up = w.holdTo + step
		}

		if up <= duration {
			frames = append(frames, envelope.Keyframe{Time: up, Gain: 1})
		}
	}

	return frames
}

// sum adds two tracks sample-wise without clamping, padding the shorter
// with silence. Peak control happens afterwards, at normalization.
func sum(a, b *audio.Buffer) *audio.Buffer {
	frames := max(a.Frames(), b.Frames())

	out := &audio.Buffer{Rate: a.Rate, Data: make([][]float64, a.Channels())}
	for c := range out.Data {
		out.Data[c] = make([]float64, frames)

		for i := range frames {
			var s float64
			if i < len(a.Data[c]) {
				s = a.Data[c][i]
			}

			if i < len(b.Data[c]) {
				s += b.Data[c][i]
			}

			out.Data[c][i] = s
		}
	}

	return out
}
