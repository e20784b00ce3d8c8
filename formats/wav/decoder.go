// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/utils"
)

// Decoder reads a whole WAV stream into a Buffer.
type Decoder struct{}

// Decode parses a RIFF/WAVE stream and returns its PCM content with one
// sample slice per channel, normalized to [-1, 1]. PCM at 16, 24 or 32
// bits is accepted. Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	rs, err := seekable(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	// 1 is the integer PCM format tag.
	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("format tag %d: %w", dec.WavAudioFormat, ErrUnsupportedWavLayout)
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d-bit samples: %w", dec.BitDepth, ErrUnsupportedBitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	return fromInterleaved(pcm, uint(dec.BitDepth))
}

// fromInterleaved deinterleaves a go-audio PCM buffer into per-channel
// float64 slices.
func fromInterleaved(pcm *goaudio.IntBuffer, bitDepth uint) (*audio.Buffer, error) {
	if pcm == nil || pcm.Format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	rate := pcm.Format.SampleRate
	channels := pcm.Format.NumChannels

	if rate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", rate, ErrUnsupportedWavLayout)
	}

	if channels < 1 || channels > audio.MaxChannels {
		return nil, fmt.Errorf("%d channels: %w", channels, ErrUnsupportedWavLayout)
	}

	frames := len(pcm.Data) / channels

	out := &audio.Buffer{Rate: rate, Data: make([][]float64, channels)}
	for c := range out.Data {
		out.Data[c] = make([]float64, frames)
		for i := range frames {
			out.Data[c][i] = utils.IntToFloat64(pcm.Data[i*channels+c], bitDepth)
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
