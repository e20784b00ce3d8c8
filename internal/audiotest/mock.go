// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand/v2"

	"github.com/sceneforge/mixdown/audio"
)

// NewBuffer builds a test buffer from a waveform function. waveform is
// called with the sample index and channel and returns the sample value.
func NewBuffer(rate, channels, frames int, waveform func(sample, channel int) float64) *audio.Buffer {
	data := make([][]float64, channels)
	for c := range channels {
		data[c] = make([]float64, frames)
		for i := range frames {
			data[c][i] = waveform(i, c)
		}
	}

	return &audio.Buffer{Rate: rate, Data: data}
}

// NewSilentBuffer creates a buffer of silence (all zeros).
func NewSilentBuffer(rate, channels, frames int) *audio.Buffer {
	return NewBuffer(rate, channels, frames, func(sample, channel int) float64 {
		return 0.0
	})
}

// NewSineBuffer creates a full-scale sine wave buffer.
func NewSineBuffer(rate, channels, frames int, frequency float64) *audio.Buffer {
	return NewToneBuffer(rate, channels, frames, frequency, 1.0)
}

// NewToneBuffer creates a sine wave buffer with the given amplitude.
func NewToneBuffer(rate, channels, frames int, frequency, amplitude float64) *audio.Buffer {
	return NewBuffer(rate, channels, frames, func(sample, channel int) float64 {
		t := float64(sample) / float64(rate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// NewConstantBuffer creates a buffer holding a constant value.
func NewConstantBuffer(rate, channels, frames int, value float64) *audio.Buffer {
	return NewBuffer(rate, channels, frames, func(sample, channel int) float64 {
		return value
	})
}

// NewNoiseBuffer creates a deterministic uniform white noise buffer in
// [-amplitude, amplitude]. The generator is seeded per call, so repeated
// runs produce identical buffers.
func NewNoiseBuffer(rate, channels, frames int, amplitude float64) *audio.Buffer {
	rng := rand.New(rand.NewPCG(0x5ce9e, 0xf0c9e))

	return NewBuffer(rate, channels, frames, func(sample, channel int) float64 {
		return amplitude * (rng.Float64()*2 - 1)
	})
}

// Concat joins buffers end to end. All inputs must share the rate and
// channel count of the first; Concat panics otherwise, since test fixtures
// control their own shapes.
func Concat(bufs ...*audio.Buffer) *audio.Buffer {
	if len(bufs) == 0 {
		return &audio.Buffer{}
	}

	rate := bufs[0].Rate
	channels := bufs[0].Channels()

	total := 0
	for _, b := range bufs {
		if b.Rate != rate || b.Channels() != channels {
			panic("audiotest: Concat inputs must share rate and channel count")
		}
		total += b.Frames()
	}

	data := make([][]float64, channels)
	for c := range channels {
		data[c] = make([]float64, 0, total)
		for _, b := range bufs {
			data[c] = append(data[c], b.Data[c]...)
		}
	}

	return &audio.Buffer{Rate: rate, Data: data}
}
