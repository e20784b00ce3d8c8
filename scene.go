// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"fmt"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/crossfade"
	"github.com/sceneforge/mixdown/gapfill"
	"github.com/sceneforge/mixdown/mix"
)

// Scene pairs one scene's voice track with its music bed. Music may be
// nil for scenes that carry narration only.
type Scene struct {
	Voice *audio.Buffer
	Music *audio.Buffer
}

// AssembleOptions bundles the per-stage settings of AssembleScenes.
type AssembleOptions struct {
	// Mix configures the ducking stage applied to every scene.
	Mix mix.Config

	// Overlap and Curve shape the crossfade between consecutive scenes.
	Overlap float64
	Curve   crossfade.Curve

	// GapThreshold and GapMinDuration select which dropouts in the
	// joined program get repaired; Fill decides how.
	GapThreshold   float64
	GapMinDuration float64
	Fill           gapfill.FillConfig
}

// DefaultAssembleOptions mirrors each stage's own defaults.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{
		Mix:            mix.DefaultConfig(),
		Overlap:        crossfade.DefaultOverlap,
		Curve:          crossfade.EqualPower,
		GapThreshold:   gapfill.DefaultRMSThreshold,
		GapMinDuration: gapfill.DefaultMinGapDuration,
		Fill:           gapfill.DefaultFillConfig(),
	}
}

// AssembleScenes runs the whole program chain over a list of scenes:
// each scene's voice is ducked over its music, the scene mixes are
// chained with crossfades, and dropouts in the joined program are
// repaired. Scenes without music pass their voice track through the
// chain unmixed.
//
// All tracks must share one sample rate; resample beforehand with
// audio.Resample when they do not. Inputs are never modified.
func AssembleScenes(scenes []Scene, opts AssembleOptions) (*audio.Buffer, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("assemble scenes: %w", audio.ErrEmptyInput)
	}

	mixed := make([]*audio.Buffer, len(scenes))
	for i, s := range scenes {
		if s.Music == nil {
			if err := s.Voice.Validate(); err != nil {
				return nil, fmt.Errorf("assemble scenes: scene %d: %w", i, err)
			}
			mixed[i] = s.Voice
			continue
		}

		res, err := mix.VoiceOverMusic(s.Voice, s.Music, opts.Mix)
		if err != nil {
			return nil, fmt.Errorf("assemble scenes: scene %d: %w", i, err)
		}
		mixed[i] = res.Buffer
	}

	program, err := crossfade.Sequence(mixed, opts.Overlap, opts.Curve)
	if err != nil {
		return nil, fmt.Errorf("assemble scenes: %w", err)
	}

	gaps, err := gapfill.Detect(program, opts.GapThreshold, opts.GapMinDuration)
	if err != nil {
		return nil, fmt.Errorf("assemble scenes: %w", err)
	}

	filled, err := gapfill.Fill(program, gaps, opts.Fill)
	if err != nil {
		return nil, fmt.Errorf("assemble scenes: %w", err)
	}

	return filled.Buffer, nil
}
