// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/utils"
)

// chunkFrames is the frame count requested per PCMBuffer call.
const chunkFrames = 4096

// aiffReader is the slice of aiff.Decoder the decode loop needs. Tests
// substitute their own implementation.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads a whole AIFF stream into a Buffer.
type Decoder struct{}

// Decode parses a FORM/AIFF stream and returns its PCM content with one
// sample slice per channel, normalized to [-1, 1]. PCM at 16, 24 or 32
// bits is accepted. Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, fmt.Errorf("decode aiff: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d-bit samples: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	}

	return decodeFrom(dec, uint(dec.BitDepth))
}

// decodeFrom drains the reader chunk by chunk and deinterleaves the
// samples into per-channel float64 slices.
func decodeFrom(dec aiffReader, bitDepth uint) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	rate := format.SampleRate
	channels := format.NumChannels

	if rate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", rate, ErrUnsupportedAiffLayout)
	}

	if channels < 1 || channels > audio.MaxChannels {
		return nil, fmt.Errorf("%d channels: %w", channels, ErrUnsupportedAiffLayout)
	}

	chunk := &goaudio.IntBuffer{
		Data:   make([]int, chunkFrames*channels),
		Format: format,
	}

	var interleaved []int
	for {
		n, err := dec.PCMBuffer(chunk)
		if n > 0 {
			interleaved = append(interleaved, chunk.Data[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode aiff: %w", err)
		}
		if n < len(chunk.Data) {
			break
		}
	}

	frames := len(interleaved) / channels

	out := &audio.Buffer{Rate: rate, Data: make([][]float64, channels)}
	for c := range out.Data {
		out.Data[c] = make([]float64, frames)
		for i := range frames {
			out.Data[c][i] = utils.IntToFloat64(interleaved[i*channels+c], bitDepth)
		}
	}

	return out, nil
}

// seekable hands back r itself when it can seek; otherwise the remaining
// stream is read fully and wrapped.
func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
