// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/internal/audiotest"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	src := audiotest.NewToneBuffer(22050, 2, 2205, 440, 0.5)

	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Encode(f, src); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer in.Close()

	dec := Decoder{}
	got, err := dec.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if got.Rate != src.Rate || got.Channels() != src.Channels() || got.Frames() != src.Frames() {
		t.Fatalf("round trip gave %d Hz / %d ch / %d frames, want %d / %d / %d",
			got.Rate, got.Channels(), got.Frames(), src.Rate, src.Channels(), src.Frames())
	}

	// 16-bit quantization bounds the round-trip error.
	const tolerance = 1e-4
	for c := range src.Channels() {
		for i := range src.Frames() {
			if math.Abs(got.Data[c][i]-src.Data[c][i]) > tolerance {
				t.Fatalf("channel %d sample %d = %v, want %v within %v",
					c, i, got.Data[c][i], src.Data[c][i], tolerance)
			}
		}
	}
}

func TestEncode_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentBuffer(8000, 1, 0)

	path := filepath.Join(t.TempDir(), "empty.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Encode(f, src); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer in.Close()

	dec := Decoder{}
	got, err := dec.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if got.Rate != 8000 || got.Frames() != 0 {
		t.Errorf("round trip gave %d Hz / %d frames, want 8000 / 0", got.Rate, got.Frames())
	}
}

func TestEncode_InvalidBuffer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if err := Encode(f, nil); !errors.Is(err, audio.ErrInvalidBuffer) {
		t.Errorf("Encode(nil) error = %v, want %v", err, audio.ErrInvalidBuffer)
	}
}
