// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Decoding accepts integer PCM data at 16, 24 or 32 bits, mono or
// stereo, at any sample rate, and produces an audio.Buffer with samples
// in the range [-1.0, 1.0]. Parsing builds on github.com/go-audio/aiff;
// the big-endian byte order and the 80-bit sample rate field are handled
// there.
//
// # Decoding
//
//	file, _ := os.Open("audio.aif")
//	defer file.Close()
//
//	dec := aiff.Decoder{}
//	buf, err := dec.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Decode prefers an io.ReadSeeker. Plain readers work too; their content
// is buffered in memory first, since AIFF chunk parsing needs to seek.
//
// # Error Handling
//
// The package defines sentinel errors for the common failure modes:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: a channel count beyond stereo, or a
//     malformed COMM chunk
//   - ErrUnsupportedBitDepth: sample widths other than 16, 24 or 32
//     bits, including AIFF-C compressed data
//
// Match them with errors.Is:
//
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("not an AIFF file")
//	}
//
// Writing AIFF is not supported; mixes are saved as WAV instead.
package aiff
