// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio files.
//
// Decoding builds on github.com/jfreymuth/oggvorbis and produces an
// audio.Buffer with one sample slice per channel. Vorbis is a float
// format, so samples pass through without rescaling; hot encodes can
// overshoot [-1.0, 1.0] slightly, which later stages tolerate until
// export clamps them.
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	defer file.Close()
//
//	dec := vorbis.Decoder{}
//	buf, err := dec.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Mono and stereo streams are accepted; surround layouts are rejected
// with an error wrapping audio.ErrInvalidBuffer.
//
// # Error Handling
//
// The package defines no sentinel errors of its own. Malformed streams
// surface as wrapped oggvorbis errors from Decode.
//
// Vorbis writing is not supported; mixes are saved as WAV instead.
package vorbis
