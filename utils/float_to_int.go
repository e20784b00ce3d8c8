package utils

func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat64 converts a signed 16-bit PCM sample to the [-1, 1] range.
func Int16ToFloat64(v int16) float64 {
	return float64(v) / 32768.0
}

// IntToFloat64 converts a signed PCM sample of the given bit depth to the
// [-1, 1] range. Bit depths outside 8..32 return 0.
func IntToFloat64(v int, bitDepth uint) float64 {
	if bitDepth < 8 || bitDepth > 32 {
		return 0
	}

	scale := float64(int64(1) << (bitDepth - 1))

	return float64(v) / scale
}
