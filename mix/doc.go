// SPDX-License-Identifier: EPL-2.0

// Package mix ducks background music under a voice track and sums the
// two into one buffer.
//
// VoiceOverMusic composes the vad and envelope packages: detected voice
// segments become a sparse gain envelope on the music, riding down to
// Config.ReductionDB around each segment and back to unity between
// them. The envelope is applied to the music alone, then voice and
// ducked music are summed sample-wise. The raw sum is never clipped;
// when its peak exceeds Config.Ceiling the whole mix is scaled down by
// one uniform factor, so the relative dynamics survive normalization.
//
//	res, err := mix.VoiceOverMusic(voice, music, mix.DefaultConfig())
//	if err != nil {
//		// ...
//	}
//	out := res.Buffer
//
// The Result carries the detected segments and the applied keyframes,
// so a caller can inspect or log what the ducking actually did.
package mix
