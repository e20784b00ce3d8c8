// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/sceneforge/mixdown/audio"
)

// chunkSamples is the interleaved sample count requested per Read call.
// Kept a multiple of audio.MaxChannels so reads stay frame-aligned.
const chunkSamples = 4096

// oggReader is the slice of oggvorbis.Reader the decode loop needs.
// Tests substitute their own implementation.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder reads a whole Ogg Vorbis stream into a Buffer.
type Decoder struct{}

// Decode parses an Ogg Vorbis stream and returns its content with one
// sample slice per channel. Vorbis decodes to floats already, so sample
// values pass through unscaled; hot encodes can overshoot [-1, 1]
// slightly, which the engine tolerates until export.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decode vorbis: %w", err)
	}

	return decodeFrom(dec)
}

// decodeFrom drains the reader and deinterleaves the samples into
// per-channel float64 slices. Reads may come back short of the chunk
// size mid-stream; only EOF or an empty read ends the loop.
func decodeFrom(dec oggReader) (*audio.Buffer, error) {
	rate := dec.SampleRate()
	channels := dec.Channels()

	if rate <= 0 {
		return nil, fmt.Errorf("decode vorbis: sample rate %d: %w", rate, audio.ErrInvalidRate)
	}

	if channels < 1 || channels > audio.MaxChannels {
		return nil, fmt.Errorf("decode vorbis: %d channels: %w", channels, audio.ErrInvalidBuffer)
	}

	chunk := make([]float32, chunkSamples)

	var interleaved []float32
	for {
		n, err := dec.Read(chunk)
		if n > 0 {
			interleaved = append(interleaved, chunk[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := len(interleaved) / channels

	out := &audio.Buffer{Rate: rate, Data: make([][]float64, channels)}
	for c := range out.Data {
		out.Data[c] = make([]float64, frames)
		for i := range frames {
			out.Data[c][i] = float64(interleaved[i*channels+c])
		}
	}

	return out, nil
}
