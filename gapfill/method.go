// SPDX-License-Identifier: EPL-2.0

package gapfill

import (
	"fmt"

	"github.com/sceneforge/mixdown/audio"
)

// Method selects how detected gaps are filled.
type Method int

const (
	// Ambient synthesizes low-level noise across the gap, with short
	// fades at both edges.
	Ambient Method = iota
	// Crossfade extends the material around the gap into it, blended
	// with an equal-power fade, so the gap is covered by real audio.
	Crossfade
	// Silence leaves the buffer untouched and only reports the gaps.
	Silence
)

var methodNames = map[Method]string{
	Ambient:   "ambient",
	Crossfade: "crossfade",
	Silence:   "silence",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// Valid reports whether m is one of the defined fill methods.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// ParseMethod resolves a fill method name ("ambient", "crossfade",
// "silence").
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("fill method %q: %w", s, audio.ErrUnsupportedFillMethod)
}
