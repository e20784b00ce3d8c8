// SPDX-License-Identifier: EPL-2.0

// Package mixdown assembles finished audio programs from voice and music
// tracks.
//
// The engine is a set of pure transforms over in-memory sample buffers:
// every operation reads its inputs, never modifies them, and returns a
// freshly allocated result. There is no session state and no hidden
// caching, so calls are safe to run concurrently and repeat
// deterministically (the ambient noise synthesizer included, which is
// seeded per call).
//
// # Quick Start
//
// AssembleScenes runs the whole chain in one call: per-scene ducking,
// crossfades between scenes, and dropout repair on the joined program:
//
//	scenes := []mixdown.Scene{
//	    {Voice: intro, Music: theme},
//	    {Voice: interview},
//	    {Voice: outro, Music: theme},
//	}
//
//	program, err := mixdown.AssembleScenes(scenes, mixdown.DefaultAssembleOptions())
//	if err != nil {
//	    // Handle error
//	}
//
// Independent mixes fan out across workers with MixBatch, and
// DefaultDecoders hands back a registry of every bundled format decoder
// keyed by file extension.
//
// # Subpackages
//
// Each stage is its own package and can be used directly:
//
//   - audio: the Buffer data model, shared error taxonomy, decoder
//     registry and a cubic resampler
//   - vad: voice activity detection over RMS windows
//   - envelope: keyframed gain curves and their interpolation
//   - mix: voice-over-music ducking built on vad and envelope
//   - crossfade: pairwise and sequenced clip blending
//   - gapfill: dropout detection and repair
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: boundary
//     loaders decoding files into audio.Buffer (WAV also encodes)
//   - utils: dB and PCM sample conversion helpers
//
// # Working With Files
//
// The transforms operate on audio.Buffer only. At the boundary, decode
// with a format package and encode results as WAV:
//
//	f, _ := os.Open("voice.mp3")
//	defer f.Close()
//
//	dec := mp3.Decoder{}
//	voice, _ := dec.Decode(f)
//
//	// ... mix ...
//
//	out, _ := os.Create("program.wav")
//	defer out.Close()
//	wav.Encode(out, program)
//
// All tracks entering one operation must share a sample rate;
// audio.Resample converts beforehand when sources disagree.
package mixdown
