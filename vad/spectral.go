// SPDX-License-Identifier: EPL-2.0

package vad

import "math"

// Voice band bounds in Hz, covering the typical range of human
// fundamental pitch.
const (
	voiceBandLow  = 85.0
	voiceBandHigh = 255.0
)

// bandFraction reports the share of a window's spectral energy that falls
// between loHz and hiHz. Band power is summed per DFT bin with Goertzel's
// algorithm and compared against the total signal energy via Parseval's
// identity, so no full transform is needed for a four-bin band.
func bandFraction(window []float64, rate int, loHz, hiHz float64) float64 {
	n := len(window)
	if n == 0 {
		return 0
	}

	total := 0.0
	for _, s := range window {
		total += s * s
	}

	if total == 0 {
		return 0
	}

	lo := int(math.Ceil(loHz * float64(n) / float64(rate)))
	hi := int(math.Floor(hiHz * float64(n) / float64(rate)))

	if lo < 1 {
		lo = 1
	}

	if hi > n/2 {
		hi = n / 2
	}

	band := 0.0
	for k := lo; k <= hi; k++ {
		band += goertzelPower(window, k)
	}

	// Real input mirrors every positive-frequency bin, so one-sided band
	// power counts twice against the two-sided Parseval total.
	frac := 2 * band / (float64(n) * total)
	if frac > 1 {
		return 1
	}

	return frac
}

// goertzelPower computes the squared DFT magnitude of a single bin.
func goertzelPower(window []float64, bin int) float64 {
	coeff := 2 * math.Cos(2*math.Pi*float64(bin)/float64(len(window)))

	var s1, s2 float64
	for _, x := range window {
		s0 := x + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}

	return s1*s1 + s2*s2 - coeff*s1*s2
}
