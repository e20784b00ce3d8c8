// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// SilenceDB is the decibel value reported for zero or negative linear gain,
// where the logarithm is undefined.
const SilenceDB = -150.0

// DBToLinear converts a decibel value to a linear gain factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20.0)
}

// LinearToDB converts a linear gain factor to decibels. Gains at or below
// zero map to SilenceDB.
func LinearToDB(gain float64) float64 {
	if gain <= 0 {
		return SilenceDB
	}

	return 20.0 * math.Log10(gain)
}
