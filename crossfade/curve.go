// SPDX-License-Identifier: EPL-2.0

package crossfade

import (
	"fmt"
	"math"

	"github.com/sceneforge/mixdown/audio"
)

// Curve selects the fade shape applied across the overlap window.
type Curve int

const (
	// Linear ramps both clips in a straight line. Simple, but the summed
	// level dips in the middle of the transition.
	Linear Curve = iota
	// Exponential fades the outgoing clip on (1-t)^2 and the incoming
	// clip on t^2, keeping both quiet through the middle.
	Exponential
	// EqualPower fades on cos/sin quarter cycles. The squared fade gains
	// sum to one at every point, so perceived loudness holds steady
	// through the transition.
	EqualPower
)

var curveNames = map[Curve]string{
	Linear:      "linear",
	Exponential: "exponential",
	EqualPower:  "equal_power",
}

func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}

	return fmt.Sprintf("curve(%d)", int(c))
}

// Valid reports whether c is one of the defined fade shapes.
func (c Curve) Valid() bool {
	_, ok := curveNames[c]
	return ok
}

// ParseCurve resolves a fade shape name ("linear", "exponential",
// "equal_power").
func ParseCurve(s string) (Curve, error) {
	for c, name := range curveNames {
		if name == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("crossfade curve %q: %w", s, audio.ErrInvalidCurve)
}

// fades returns the outgoing and incoming gain at normalized position
// t in [0, 1] across the overlap window.
func (c Curve) fades(t float64) (out, in float64) {
	switch c {
	case Exponential:
		return (1 - t) * (1 - t), t * t
	case EqualPower:
		return math.Cos(t * math.Pi / 2), math.Sin(t * math.Pi / 2)
	default:
		return 1 - t, t
	}
}
