// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory PCM data model shared by every
// transform in this module.
//
// This package contains the core building blocks:
//   - Buffer, the in-memory PCM representation
//   - Level and shape utilities (RMS, peak, downmix, normalization)
//   - Resample for sample rate conversion
//   - Format registry for decoder registration
//
// # Buffer
//
// A Buffer carries decoded audio as one float64 slice per channel:
//
//	buf, err := audio.FromSamples(44100, left, right)
//	mono := buf.Mono()
//	level := buf.RMS()
//
// Buffers are 1 or 2 channels, all channel slices the same length, with
// samples in [-1.0, 1.0]. Transforms treat their inputs as immutable and
// return freshly allocated outputs, so a Buffer can safely feed several
// operations at once.
//
// # Level Utilities
//
// RMS and RMSRange measure energy, Peak finds the largest magnitude, and
// NormalizePeak pulls a buffer under a ceiling without touching material
// that is already quiet enough:
//
//	out := buf.NormalizePeak(0.95)
//
// # Resampling
//
// Resample changes the sample rate using cubic interpolation:
//
//	out, err := audio.Resample(buf, 16000)
//
// Resampling works for both upsampling and downsampling; a low-pass guard
// is applied on the way down. Mixing operations require equal rates on all
// inputs, so resample mismatched material first.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are represented as float64 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths, and float64 keeps the gain and envelope math of the
// mixing operations precise over long material.
//
// # Error Handling
//
// The shared error kinds for the whole module live here as sentinel
// errors. Operations wrap them with context; callers match the kind:
//
//	_, err := audio.Resample(buf, -1)
//	if errors.Is(err, audio.ErrInvalidRate) {
//	    // bad target rate
//	}
package audio
