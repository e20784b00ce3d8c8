// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile reports input that does not parse as FORM/AIFF.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout reports a parseable file whose shape the
	// engine cannot hold: a zero sample rate or more channels than
	// audio.MaxChannels.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedBitDepth reports PCM sample widths other than 16,
	// 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")
)
