// SPDX-License-Identifier: EPL-2.0

package crossfade

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
)

// DefaultOverlap is the blend duration DefaultOptions requests, in
// seconds.
const DefaultOverlap = 0.5

// Options controls a pairwise crossfade.
type Options struct {
	// Overlap is the requested blend duration in seconds. Overlaps
	// longer than either clip clamp to what the clips can cover.
	Overlap float64

	// Curve is the fade shape across the overlap window.
	Curve Curve

	// Position places the second clip's entry on the output timeline,
	// in seconds. Negative means tail-aligned: the blend covers the
	// first clip's last Overlap seconds.
	Position float64
}

// DefaultOptions returns a half-second, tail-aligned, equal-power
// crossfade.
func DefaultOptions() Options {
	return Options{
		Overlap:  DefaultOverlap,
		Curve:    EqualPower,
		Position: -1,
	}
}

// Result bundles the crossfaded buffer with the geometry that produced it.
type Result struct {
	// Buffer is the assembled output.
	Buffer *audio.Buffer

	// Start is where the second clip enters the output, in seconds.
	Start float64

	// Overlap is the effective blend duration in seconds, after any
	// clamping.
	Overlap float64

	// Curve is the fade shape that was applied.
	Curve Curve
}

// Pair blends clip b into clip a. The output runs a unchanged up to the
// entry position, crossfades across the overlap window, then runs the
// rest of b; material of a past the blend is replaced by b. With
// tail-aligned options the output lasts len(a)+len(b)-overlap.
//
// Both clips must share a sample rate and hold at least one frame.
// Mismatched channel layouts are downmixed to mono. An entry position
// past the end of a cannot be blended and fails with an error; inputs are
// never modified.
func Pair(a, b *audio.Buffer, opts Options) (*Result, error) {
	if !opts.Curve.Valid() {
		return nil, fmt.Errorf("crossfade: curve %d: %w", int(opts.Curve), audio.ErrInvalidCurve)
	}

	if opts.Overlap < 0 || math.IsNaN(opts.Overlap) || math.IsInf(opts.Overlap, 0) {
		return nil, fmt.Errorf("crossfade: overlap %gs: %w", opts.Overlap, audio.ErrInvalidCurve)
	}

	if math.IsNaN(opts.Position) || math.IsInf(opts.Position, 1) {
		return nil, fmt.Errorf("crossfade: position %gs: %w", opts.Position, audio.ErrInvalidCurve)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("crossfade: first clip: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("crossfade: second clip: %w", err)
	}

	if a.Rate != b.Rate {
		return nil, fmt.Errorf("crossfade: %d Hz vs %d Hz: %w", a.Rate, b.Rate, audio.ErrSampleRateMismatch)
	}

	if a.Frames() == 0 || b.Frames() == 0 {
		return nil, fmt.Errorf("crossfade: %w", audio.ErrEmptyInput)
	}

	if a.Channels() != b.Channels() {
		a, b = a.Mono(), b.Mono()
	}

	rate := a.Rate
	lenA, lenB := a.Frames(), b.Frames()

	overlap := int(math.Round(opts.Overlap * float64(rate)))
	if overlap > lenA {
		overlap = lenA
	}

	if overlap > lenB {
		overlap = lenB
	}

	var entry int
	if opts.Position < 0 {
		entry = lenA - overlap
	} else {
		entry = int(math.Round(opts.Position * float64(rate)))
	}

	if entry > lenA {
		return nil, fmt.Errorf("crossfade: position %gs is past the first clip's end: %w",
			opts.Position, audio.ErrTrackTooShort)
	}

	if overlap > lenA-entry {
		overlap = lenA - entry
	}

	out, err := audio.New(rate, a.Channels(), entry+lenB)
	if err != nil {
		return nil, fmt.Errorf("crossfade: %w", err)
	}

	den := 1.0
	if overlap > 1 {
		den = float64(overlap - 1)
	}

	for c := range out.Data {
		dst := out.Data[c]
		outgoing, incoming := a.Data[c], b.Data[c]

		for i := range entry {
			dst[i] = audio.ClampSample(outgoing[i])
		}

		for i := range overlap {
			fadeOut, fadeIn := opts.Curve.fades(float64(i) / den)
			dst[entry+i] = audio.ClampSample(outgoing[entry+i]*fadeOut + incoming[i]*fadeIn)
		}

		for i := overlap; i < lenB; i++ {
			dst[entry+i] = audio.ClampSample(incoming[i])
		}
	}

	return &Result{
		Buffer:  out,
		Start:   float64(entry) / float64(rate),
		Overlap: float64(overlap) / float64(rate),
		Curve:   opts.Curve,
	}, nil
}

// Sequence chains clips into one buffer, applying the same tail-aligned
// crossfade between each consecutive pair. A single clip comes back as a
// plain copy.
func Sequence(clips []*audio.Buffer, overlap float64, curve Curve) (*audio.Buffer, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("crossfade sequence: no clips: %w", audio.ErrEmptyInput)
	}

	if err := clips[0].Validate(); err != nil {
		return nil, fmt.Errorf("crossfade sequence: clip 0: %w", err)
	}

	cur := clips[0].Clamp()

	opts := Options{Overlap: overlap, Curve: curve, Position: -1}
	for i, next := range clips[1:] {
		res, err := Pair(cur, next, opts)
		if err != nil {
			return nil, fmt.Errorf("crossfade sequence: clip %d: %w", i+1, err)
		}

		cur = res.Buffer
	}

	return cur, nil
}
