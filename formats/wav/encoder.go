// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/utils"
)

// Encode writes a buffer as a PCM 16-bit WAV stream. Samples are clamped
// to [-1, 1] and quantized; the input buffer is not modified. The writer
// must seek, since the RIFF chunk sizes are finalized on close.
func Encode(w io.WriteSeeker, b *audio.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	channels := b.Channels()
	frames := b.Frames()

	data := make([]int, frames*channels)
	for i := range frames {
		for c := range b.Data {
			data[i*channels+c] = int(utils.Float64ToInt16(b.Data[c][i]))
		}
	}

	enc := gowav.NewEncoder(w, b.Rate, 16, channels, 1)

	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: b.Rate},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	return nil
}
