// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile reports input that does not parse as RIFF/WAVE.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout reports a parseable file whose shape the
	// engine cannot hold: a non-PCM format tag, a zero sample rate, or
	// more channels than audio.MaxChannels.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth reports PCM sample widths other than 16,
	// 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
