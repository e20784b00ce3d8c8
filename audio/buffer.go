package audio

import (
	"fmt"
	"math"
)

// MaxChannels is the largest channel count a Buffer may carry.
// The engine works with mono and stereo material only.
const MaxChannels = 2

// Buffer holds decoded PCM audio fully in memory, one sample slice per
// channel. Samples are float64 in [-1.0, 1.0]; all channel slices have the
// same length. The zero value is an empty mono-less buffer and fails
// Validate.
//
// Transform functions in this module treat buffers as immutable: they never
// write to an input Buffer and always return freshly allocated output.
type Buffer struct {
	// Data holds the samples, one slice per channel.
	Data [][]float64
	// Rate is the sample rate in Hz.
	Rate int
}

// New returns a zeroed buffer with the given shape.
func New(rate, channels, frames int) (*Buffer, error) {
	b := &Buffer{Rate: rate, Data: make([][]float64, channels)}
	for c := range b.Data {
		b.Data[c] = make([]float64, frames)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// FromSamples builds a buffer by copying the given channel slices. The
// caller keeps ownership of the input slices.
func FromSamples(rate int, channels ...[]float64) (*Buffer, error) {
	b := &Buffer{Rate: rate, Data: make([][]float64, len(channels))}
	for c, src := range channels {
		b.Data[c] = make([]float64, len(src))
		copy(b.Data[c], src)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks the buffer shape: a positive sample rate, one or two
// channels, and equal-length channel slices. An empty buffer (zero frames)
// is a valid shape.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("nil buffer: %w", ErrInvalidBuffer)
	}

	if b.Rate <= 0 {
		return fmt.Errorf("rate %d: %w", b.Rate, ErrInvalidRate)
	}

	if len(b.Data) < 1 || len(b.Data) > MaxChannels {
		return fmt.Errorf("%d channels: %w", len(b.Data), ErrInvalidBuffer)
	}

	frames := len(b.Data[0])
	for c := 1; c < len(b.Data); c++ {
		if len(b.Data[c]) != frames {
			return fmt.Errorf("channel %d has %d frames, channel 0 has %d: %w",
				c, len(b.Data[c]), frames, ErrInvalidBuffer)
		}
	}

	return nil
}

// Channels reports the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames reports the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}

// Duration reports the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.Rate <= 0 {
		return 0
	}

	return float64(b.Frames()) / float64(b.Rate)
}

// IndexAt converts a time in seconds to the nearest sample index, clamped
// to [0, Frames()].
func (b *Buffer) IndexAt(t float64) int {
	idx := int(math.Round(t * float64(b.Rate)))
	if idx < 0 {
		return 0
	}

	if idx > b.Frames() {
		return b.Frames()
	}

	return idx
}

// TimeAt converts a sample index to seconds.
func (b *Buffer) TimeAt(idx int) float64 {
	if b.Rate <= 0 {
		return 0
	}

	return float64(idx) / float64(b.Rate)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Rate: b.Rate, Data: make([][]float64, len(b.Data))}
	for c := range b.Data {
		out.Data[c] = make([]float64, len(b.Data[c]))
		copy(out.Data[c], b.Data[c])
	}

	return out
}

// Slice returns a copy of the frame range [from, to), clamped to the
// buffer bounds.
func (b *Buffer) Slice(from, to int) *Buffer {
	frames := b.Frames()
	if from < 0 {
		from = 0
	}

	if to > frames {
		to = frames
	}

	if from > to {
		from = to
	}

	out := &Buffer{Rate: b.Rate, Data: make([][]float64, len(b.Data))}
	for c := range b.Data {
		out.Data[c] = make([]float64, to-from)
		copy(out.Data[c], b.Data[c][from:to])
	}

	return out
}

// Equal reports whether two buffers have identical rate, shape and samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Rate != other.Rate || len(b.Data) != len(other.Data) {
		return false
	}

	for c := range b.Data {
		if len(b.Data[c]) != len(other.Data[c]) {
			return false
		}

		for i := range b.Data[c] {
			if b.Data[c][i] != other.Data[c][i] {
				return false
			}
		}
	}

	return true
}

// Mono returns a mono downmix, averaging across channels. Mono input comes
// back as a plain copy.
func (b *Buffer) Mono() *Buffer {
	frames := b.Frames()
	out := &Buffer{Rate: b.Rate, Data: [][]float64{make([]float64, frames)}}

	switch len(b.Data) {
	case 0:
		return out
	case 1:
		copy(out.Data[0], b.Data[0])
	case 2: // Stereo (most common)
		left, right := b.Data[0], b.Data[1]
		for i := range frames {
			out.Data[0][i] = (left[i] + right[i]) * 0.5
		}
	default: // Generic path
		invChannels := 1.0 / float64(len(b.Data))
		for i := range frames {
			sum := 0.0
			for c := range b.Data {
				sum += b.Data[c][i]
			}
			out.Data[0][i] = sum * invChannels
		}
	}

	return out
}

// RMS reports the root-mean-square level over the whole buffer, all
// channels pooled. Empty buffers report 0.
func (b *Buffer) RMS() float64 {
	return b.RMSRange(0, b.Frames())
}

// RMSRange reports the root-mean-square level over the frame range
// [from, to), all channels pooled. The range is clamped to the buffer
// bounds; an empty range reports 0.
func (b *Buffer) RMSRange(from, to int) float64 {
	frames := b.Frames()
	if from < 0 {
		from = 0
	}

	if to > frames {
		to = frames
	}

	if from >= to || len(b.Data) == 0 {
		return 0
	}

	sum := 0.0
	for c := range b.Data {
		for _, s := range b.Data[c][from:to] {
			sum += s * s
		}
	}

	n := float64((to - from) * len(b.Data))

	return math.Sqrt(sum / n)
}

// Peak reports the largest absolute sample value. Empty buffers report 0.
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for c := range b.Data {
		for _, s := range b.Data[c] {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
	}

	return peak
}

// NormalizePeak returns a copy scaled down uniformly so the absolute peak
// does not exceed ceiling. Buffers already within the ceiling come back as
// plain copies, preserving their level.
func (b *Buffer) NormalizePeak(ceiling float64) *Buffer {
	out := b.Clone()

	peak := b.Peak()
	if ceiling <= 0 || peak <= ceiling {
		return out
	}

	gain := ceiling / peak
	for c := range out.Data {
		for i := range out.Data[c] {
			out.Data[c][i] *= gain
		}
	}

	return out
}

// ClampSample limits a single sample to the [-1, 1] range.
func ClampSample(x float64) float64 {
	if x > 1 {
		return 1
	}

	if x < -1 {
		return -1
	}

	return x
}

// Clamp returns a copy with every sample limited to [-1, 1].
func (b *Buffer) Clamp() *Buffer {
	out := b.Clone()
	for c := range out.Data {
		for i := range out.Data[c] {
			out.Data[c][i] = ClampSample(out.Data[c][i])
		}
	}

	return out
}
