package vad

import (
	"errors"
	"math"
	"testing"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/internal/audiotest"
)

// TestDetect_ToneInSilence checks the canonical detection case: a 2.0 s
// tone at the head of a 5.0 s track must come back as exactly one segment
// spanning [0.0, 2.0] within one analysis window.
func TestDetect_ToneInSilence(t *testing.T) {
	t.Parallel()

	track := audiotest.Concat(
		audiotest.NewToneBuffer(44100, 1, 2*44100, 1000, 0.5),
		audiotest.NewSilentBuffer(44100, 1, 3*44100),
	)

	cfg := DefaultConfig()

	segs, err := Detect(track, cfg)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 1 {
		t.Fatalf("Detect() returned %d segments, want 1: %+v", len(segs), segs)
	}

	seg := segs[0]
	tol := cfg.WindowDur + 0.005

	if seg.Start > tol {
		t.Errorf("segment start = %v, want 0.0 within %v", seg.Start, tol)
	}

	if seg.End < 2.0 || seg.End > 2.0+tol {
		t.Errorf("segment end = %v, want 2.0 within %v", seg.End, tol)
	}

	if seg.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 for a loud two-second tone", seg.Confidence)
	}

	if math.Abs(seg.MeanRMS-0.5/math.Sqrt2) > 0.02 {
		t.Errorf("mean RMS = %v, want ~%v", seg.MeanRMS, 0.5/math.Sqrt2)
	}
}

func TestDetect_TrivialInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		track *audio.Buffer
	}{
		{
			name:  "empty buffer",
			track: audiotest.NewSilentBuffer(44100, 1, 0),
		},
		{
			name:  "all silence",
			track: audiotest.NewSilentBuffer(44100, 1, 44100),
		},
		{
			name:  "single sample",
			track: &audio.Buffer{Rate: 44100, Data: [][]float64{{0.9}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			segs, err := Detect(tt.track, DefaultConfig())
			if err != nil {
				t.Fatalf("Detect() error: %v", err)
			}

			if len(segs) != 0 {
				t.Errorf("Detect() returned %d segments, want none: %+v", len(segs), segs)
			}
		})
	}
}

// TestDetect_MergesBreathPauses plants a 0.15 s pause between two tone
// bursts. The default merge gap bridges it; a tight gap keeps the bursts
// apart.
func TestDetect_MergesBreathPauses(t *testing.T) {
	t.Parallel()

	track := audiotest.Concat(
		audiotest.NewToneBuffer(44100, 1, 22050, 1000, 0.5),
		audiotest.NewSilentBuffer(44100, 1, 6615),
		audiotest.NewToneBuffer(44100, 1, 22050, 1000, 0.5),
	)

	segs, err := Detect(track, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 1 {
		t.Fatalf("default merge gap: got %d segments, want 1: %+v", len(segs), segs)
	}

	if got := segs[0].Duration(); got < 1.1 {
		t.Errorf("merged segment duration = %v, want the full 1.15s span", got)
	}

	strict := DefaultConfig()
	strict.MergeGap = 0.05

	segs, err = Detect(track, strict)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 2 {
		t.Fatalf("merge gap 0.05s: got %d segments, want 2: %+v", len(segs), segs)
	}

	if segs[0].End >= segs[1].Start {
		t.Errorf("segments overlap: %+v", segs)
	}
}

func TestDetect_DropsShortBlips(t *testing.T) {
	t.Parallel()

	// A 50 ms blip, shorter than the default 100 ms minimum.
	track := audiotest.Concat(
		audiotest.NewToneBuffer(44100, 1, 2205, 1000, 0.5),
		audiotest.NewSilentBuffer(44100, 1, 44100),
	)

	segs, err := Detect(track, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 0 {
		t.Errorf("default config: got %d segments, want blip dropped: %+v", len(segs), segs)
	}

	keep := DefaultConfig()
	keep.MinSegment = 0.05

	segs, err = Detect(track, keep)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 1 {
		t.Errorf("min segment 0.05s: got %d segments, want 1", len(segs))
	}
}

// TestDetect_SpectralGate drives detection with tones on either side of
// the voice band. The gate only matters when enabled; disabled, energy
// alone decides.
func TestDetect_SpectralGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		freq      float64
		threshold float64
		wantSegs  int
	}{
		{
			name:      "fundamental passes gate",
			freq:      120,
			threshold: 0.5,
			wantSegs:  1,
		},
		{
			name:      "high tone blocked by gate",
			freq:      1000,
			threshold: 0.5,
			wantSegs:  0,
		},
		{
			name:      "gate disabled accepts high tone",
			freq:      1000,
			threshold: 0,
			wantSegs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			track := audiotest.NewToneBuffer(44100, 1, 44100, tt.freq, 0.5)

			cfg := DefaultConfig()
			cfg.VoiceBandThreshold = tt.threshold

			segs, err := Detect(track, cfg)
			if err != nil {
				t.Fatalf("Detect() error: %v", err)
			}

			if len(segs) != tt.wantSegs {
				t.Fatalf("got %d segments, want %d: %+v", len(segs), tt.wantSegs, segs)
			}

			if tt.wantSegs == 1 && segs[0].Duration() < 0.9 {
				t.Errorf("segment %+v, want most of the one-second tone", segs[0])
			}
		})
	}
}

func TestDetect_ConfidenceOrdering(t *testing.T) {
	t.Parallel()

	loud := audiotest.NewToneBuffer(44100, 1, 2*44100, 1000, 0.5)
	quiet := audiotest.NewToneBuffer(44100, 1, 13230, 1000, 0.05)

	loudSegs, err := Detect(loud, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect(loud) error: %v", err)
	}

	quietSegs, err := Detect(quiet, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect(quiet) error: %v", err)
	}

	if len(loudSegs) != 1 || len(quietSegs) != 1 {
		t.Fatalf("got %d loud and %d quiet segments, want 1 and 1", len(loudSegs), len(quietSegs))
	}

	if loudSegs[0].Confidence != 1.0 {
		t.Errorf("loud confidence = %v, want saturated 1.0", loudSegs[0].Confidence)
	}

	if q := quietSegs[0].Confidence; q <= 0 || q >= loudSegs[0].Confidence {
		t.Errorf("quiet confidence = %v, want in (0, %v)", q, loudSegs[0].Confidence)
	}
}

// TestDetect_StereoDownmix feeds an out-of-phase stereo pair. The
// channels cancel in the mono downmix, so nothing is detected even though
// each channel alone is loud.
func TestDetect_StereoDownmix(t *testing.T) {
	t.Parallel()

	cancelling := audiotest.NewBuffer(44100, 2, 44100, func(sample, channel int) float64 {
		s := 0.5 * math.Sin(2*math.Pi*1000*float64(sample)/44100)
		if channel == 1 {
			return -s
		}

		return s
	})

	segs, err := Detect(cancelling, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 0 {
		t.Errorf("out-of-phase stereo: got %d segments, want none", len(segs))
	}

	inPhase := audiotest.NewToneBuffer(44100, 2, 44100, 1000, 0.5)

	segs, err = Detect(inPhase, DefaultConfig())
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if len(segs) != 1 {
		t.Errorf("in-phase stereo: got %d segments, want 1", len(segs))
	}
}

func TestDetect_InputUnmodified(t *testing.T) {
	t.Parallel()

	track := audiotest.NewToneBuffer(44100, 2, 44100, 1000, 0.5)
	before := track.Clone()

	if _, err := Detect(track, DefaultConfig()); err != nil {
		t.Fatalf("Detect() error: %v", err)
	}

	if !track.Equal(before) {
		t.Error("Detect() modified its input buffer")
	}
}

func TestDetect_Validation(t *testing.T) {
	t.Parallel()

	badConfig := DefaultConfig()
	badConfig.WindowDur = 0

	tests := []struct {
		name    string
		track   *audio.Buffer
		cfg     Config
		wantErr error
	}{
		{
			name:    "nil buffer",
			track:   nil,
			cfg:     DefaultConfig(),
			wantErr: audio.ErrInvalidBuffer,
		},
		{
			name:    "zero rate",
			track:   &audio.Buffer{Rate: 0, Data: [][]float64{{0}}},
			cfg:     DefaultConfig(),
			wantErr: audio.ErrInvalidRate,
		},
		{
			name:    "ragged channels",
			track:   &audio.Buffer{Rate: 44100, Data: [][]float64{{0, 0}, {0}}},
			cfg:     DefaultConfig(),
			wantErr: audio.ErrInvalidBuffer,
		},
		{
			name:    "zero window duration",
			track:   audiotest.NewSilentBuffer(44100, 1, 100),
			cfg:     badConfig,
			wantErr: audio.ErrInvalidCurve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Detect(tt.track, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Detect() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	track := audiotest.Concat(
		audiotest.NewToneBuffer(44100, 1, 2*44100, 220, 0.5),
		audiotest.NewSilentBuffer(44100, 1, 3*44100),
	)

	b.Run("energy only", func(b *testing.B) {
		cfg := DefaultConfig()
		b.ReportAllocs()

		for b.Loop() {
			_, _ = Detect(track, cfg)
		}
	})

	b.Run("spectral gate", func(b *testing.B) {
		cfg := DefaultConfig()
		cfg.VoiceBandThreshold = 0.5
		b.ReportAllocs()

		for b.Loop() {
			_, _ = Detect(track, cfg)
		}
	})
}
