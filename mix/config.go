// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/envelope"
	"github.com/sceneforge/mixdown/vad"
)

const (
	// DefaultOffset widens the duck region around each voice segment,
	// in seconds. The gain fades live in these margins.
	DefaultOffset = 0.5

	// DefaultReductionDB is the music attenuation under voice.
	DefaultReductionDB = -12.0

	// DefaultCeiling bounds the absolute peak of the mixed output.
	DefaultCeiling = 0.95
)

// Config controls VoiceOverMusic.
type Config struct {
	// Offset extends each duck region this many seconds before the
	// voice segment starts and after it ends.
	Offset float64

	// ReductionDB is the music gain while voice is present, in dB,
	// <= 0.
	ReductionDB float64

	// Curve shapes the fade segments of the music gain envelope.
	Curve envelope.Curve

	// Ceiling is the absolute peak the mix is scaled down to when the
	// raw sum exceeds it, in (0, 1].
	Ceiling float64

	// Detector configures voice activity detection on the voice track.
	Detector vad.Config
}

// DefaultConfig returns spoken-word-over-music settings: a -12 dB duck
// with half-second ease-in-out fades, peaks held at 0.95.
func DefaultConfig() Config {
	return Config{
		Offset:      DefaultOffset,
		ReductionDB: DefaultReductionDB,
		Curve:       envelope.CubicBezier,
		Ceiling:     DefaultCeiling,
		Detector:    vad.DefaultConfig(),
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if math.IsNaN(c.Offset) || math.IsInf(c.Offset, 0) || c.Offset < 0 {
		return fmt.Errorf("duck offset %gs: %w", c.Offset, audio.ErrInvalidCurve)
	}

	if math.IsNaN(c.ReductionDB) || math.IsInf(c.ReductionDB, 0) || c.ReductionDB > 0 {
		return fmt.Errorf("reduction %g dB: %w", c.ReductionDB, audio.ErrInvalidCurve)
	}

	if !c.Curve.Valid() {
		return fmt.Errorf("curve %d: %w", int(c.Curve), audio.ErrInvalidCurve)
	}

	if math.IsNaN(c.Ceiling) || c.Ceiling <= 0 || c.Ceiling > 1 {
		return fmt.Errorf("ceiling %g: %w", c.Ceiling, audio.ErrInvalidCurve)
	}

	if err := c.Detector.Validate(); err != nil {
		return fmt.Errorf("detector: %w", err)
	}

	return nil
}
