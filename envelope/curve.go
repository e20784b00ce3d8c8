// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"

	"github.com/sceneforge/mixdown/audio"
)

// Curve selects the interpolation shape between adjacent keyframes.
type Curve int

const (
	// Linear interpolates the gain in a straight line.
	Linear Curve = iota
	// Exponential interpolates geometrically, which the ear perceives as
	// an even fade. Falls back to linear when an endpoint gain is at or
	// near zero.
	Exponential
	// CubicBezier is a smooth ease shape with fixed control gains at
	// 0.42 and 0.58 of the gain delta, symmetric around the midpoint.
	CubicBezier
	// Logarithmic interpolates linearly in the log10 gain domain.
	Logarithmic
)

var curveNames = map[Curve]string{
	Linear:      "linear",
	Exponential: "exponential",
	CubicBezier: "cubic_bezier",
	Logarithmic: "logarithmic",
}

func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}

	return fmt.Sprintf("curve(%d)", int(c))
}

// Valid reports whether c is one of the defined curve types.
func (c Curve) Valid() bool {
	_, ok := curveNames[c]
	return ok
}

// ParseCurve resolves a curve name as used in configuration and timelines
// ("linear", "exponential", "cubic_bezier", "logarithmic").
func ParseCurve(s string) (Curve, error) {
	for c, name := range curveNames {
		if name == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("curve %q: %w", s, audio.ErrInvalidCurve)
}
