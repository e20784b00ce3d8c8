// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/utils"
)

// frameBytes is the size of one output frame in the go-mp3 stream: two
// 16-bit little-endian samples, left then right.
const frameBytes = 4

// mp3Reader is the slice of gomp3.Decoder the decode loop needs. Tests
// substitute their own implementation.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads a whole MP3 stream into a Buffer.
type Decoder struct{}

// Decode parses an MP3 stream and returns its content as a stereo
// buffer with samples normalized to [-1, 1]. go-mp3 always emits two
// channels; mono files arrive with both channels identical.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	return decodeFrom(dec)
}

// decodeFrom drains the reader and splits the interleaved stream into
// left and right channel slices. Trailing bytes short of a full frame
// are dropped.
func decodeFrom(dec mp3Reader) (*audio.Buffer, error) {
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, fmt.Errorf("decode mp3: sample rate %d: %w", rate, audio.ErrInvalidRate)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	frames := len(pcm) / frameBytes

	out := &audio.Buffer{Rate: rate, Data: make([][]float64, 2)}
	for c := range out.Data {
		out.Data[c] = make([]float64, frames)
	}

	for i := range frames {
		off := i * frameBytes
		out.Data[0][i] = utils.Int16ToFloat64(int16(binary.LittleEndian.Uint16(pcm[off:])))
		out.Data[1][i] = utils.Int16ToFloat64(int16(binary.LittleEndian.Uint16(pcm[off+2:])))
	}

	return out, nil
}
