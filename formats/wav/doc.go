// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV audio files.
//
// Decoding accepts integer PCM data at 16, 24 or 32 bits, mono or stereo,
// at any sample rate, and produces an audio.Buffer with samples in the
// range [-1.0, 1.0]. Encoding always writes 16-bit PCM. Both directions
// build on the github.com/go-audio libraries for chunk handling.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	defer file.Close()
//
//	dec := wav.Decoder{}
//	buf, err := dec.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Decode prefers an io.ReadSeeker. Plain readers work too; their content
// is buffered in memory first, since WAV chunk parsing needs to seek.
//
// # Encoding
//
//	file, _ := os.Create("output.wav")
//	defer file.Close()
//
//	err := wav.Encode(file, buf)
//
// Encode needs an io.WriteSeeker because the RIFF chunk sizes are
// finalized after the samples are written. Samples outside [-1.0, 1.0]
// are clamped during quantization.
//
// # Error Handling
//
// The package defines sentinel errors for the common failure modes:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedWavLayout: compressed data, or a channel count
//     beyond stereo
//   - ErrUnsupportedBitDepth: sample widths other than 16, 24 or 32 bits
//
// Match them with errors.Is:
//
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("not a WAV file")
//	}
package wav
