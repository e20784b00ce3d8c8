// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio files.
//
// Decoding builds on github.com/hajimehoshi/go-mp3 and produces an
// audio.Buffer with samples in the range [-1.0, 1.0]. The output is
// always stereo at the sample rate of the file; go-mp3 duplicates the
// channel of mono files. Call Buffer.Mono to fold the result down when
// a single channel is wanted.
//
// # Decoding
//
//	file, _ := os.Open("audio.mp3")
//	defer file.Close()
//
//	dec := mp3.Decoder{}
//	buf, err := dec.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # Error Handling
//
// The package defines no sentinel errors of its own. Malformed streams
// surface as wrapped go-mp3 errors from Decode.
//
// MP3 writing is not supported; mixes are saved as WAV instead.
package mp3
