// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Stable error kinds shared by the transform packages. Operations wrap
// these with context; callers match with errors.Is.
var (
	// ErrSampleRateMismatch reports inputs whose sample rates differ.
	// Resample one side first.
	ErrSampleRateMismatch = errors.New("sample rate mismatch between inputs")

	// ErrEmptyInput reports an operation that requires audio content but
	// received a zero-frame buffer.
	ErrEmptyInput = errors.New("empty audio input")

	// ErrInvalidKeyframeOrder reports a keyframe list that is not sorted
	// strictly ascending by time.
	ErrInvalidKeyframeOrder = errors.New("keyframes must be sorted by time without duplicates")

	// ErrInvalidCurve reports out-of-range curve or configuration
	// parameters, such as a negative fade duration.
	ErrInvalidCurve = errors.New("invalid curve parameters")

	// ErrUnsupportedFillMethod reports an unknown gap fill method.
	ErrUnsupportedFillMethod = errors.New("unsupported gap fill method")

	// ErrTrackTooShort reports a clip shorter than a requested window
	// after clamping.
	ErrTrackTooShort = errors.New("track too short for requested window")

	// ErrInvalidBuffer reports a malformed buffer shape, such as
	// unequal channel lengths or an unsupported channel count.
	ErrInvalidBuffer = errors.New("invalid buffer shape")

	// ErrInvalidRate reports a non-positive sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
)
