// SPDX-License-Identifier: EPL-2.0

package mixdown

import (
	"errors"
	"math"
	"testing"

	"github.com/sceneforge/mixdown/audio"
	"github.com/sceneforge/mixdown/crossfade"
	"github.com/sceneforge/mixdown/internal/audiotest"
)

func TestAssembleScenes_SingleScene(t *testing.T) {
	t.Parallel()

	// One second of narration, one second of trailing silence, over a
	// two-second music bed.
	voice := audiotest.Concat(
		audiotest.NewToneBuffer(8000, 1, 8000, 220, 0.5),
		audiotest.NewSilentBuffer(8000, 1, 8000),
	)
	music := audiotest.NewToneBuffer(8000, 1, 16000, 110, 0.4)

	program, err := AssembleScenes([]Scene{{Voice: voice, Music: music}}, DefaultAssembleOptions())
	if err != nil {
		t.Fatalf("AssembleScenes() error: %v", err)
	}

	if program.Rate != 8000 || program.Frames() != 16000 {
		t.Fatalf("program is %d Hz / %d frames, want 8000 / 16000", program.Rate, program.Frames())
	}

	if peak := program.Peak(); peak > 0.95+1e-9 {
		t.Errorf("program peak = %v, want <= 0.95", peak)
	}

	// Well after the voice ends the duck has released, so the program
	// carries the music bed untouched.
	if got, want := program.Data[0][14000], music.Data[0][14000]; got != want {
		t.Errorf("program sample at 1.75s = %v, want music value %v", got, want)
	}
}

func TestAssembleScenes_CrossfadesBetweenScenes(t *testing.T) {
	t.Parallel()

	first := audiotest.NewToneBuffer(8000, 1, 16000, 220, 0.5)
	second := audiotest.NewToneBuffer(8000, 1, 16000, 330, 0.5)

	scenes := []Scene{{Voice: first}, {Voice: second}}

	program, err := AssembleScenes(scenes, DefaultAssembleOptions())
	if err != nil {
		t.Fatalf("AssembleScenes() error: %v", err)
	}

	// Half a second of overlap folds 4000 frames of the two clips
	// together.
	if program.Frames() != 28000 {
		t.Fatalf("program has %d frames, want 28000", program.Frames())
	}

	if math.Abs(program.Duration()-3.5) > 1e-9 {
		t.Errorf("program duration = %v, want 3.5", program.Duration())
	}

	// Before the blend the program is the first scene verbatim; after it,
	// the second.
	for _, i := range []int{0, 1000, 11999} {
		if program.Data[0][i] != first.Data[0][i] {
			t.Errorf("sample %d = %v, want first scene value %v",
				i, program.Data[0][i], first.Data[0][i])
		}
	}

	for _, i := range []int{16000, 20000, 27999} {
		if program.Data[0][i] != second.Data[0][i-12000] {
			t.Errorf("sample %d = %v, want second scene value %v",
				i, program.Data[0][i], second.Data[0][i-12000])
		}
	}
}

func TestAssembleScenes_VoiceOnlyPassthrough(t *testing.T) {
	t.Parallel()

	voice := audiotest.NewToneBuffer(8000, 1, 16000, 220, 0.5)
	backup := voice.Clone()

	program, err := AssembleScenes([]Scene{{Voice: voice}}, DefaultAssembleOptions())
	if err != nil {
		t.Fatalf("AssembleScenes() error: %v", err)
	}

	if !program.Equal(voice) {
		t.Error("voice-only scene did not pass through unchanged")
	}

	if !voice.Equal(backup) {
		t.Error("input voice track was modified")
	}
}

func TestAssembleScenes_RepairsDropouts(t *testing.T) {
	t.Parallel()

	// A 0.3s dropout in the middle of otherwise continuous narration.
	voice := audiotest.Concat(
		audiotest.NewToneBuffer(8000, 1, 8000, 220, 0.5),
		audiotest.NewSilentBuffer(8000, 1, 2400),
		audiotest.NewToneBuffer(8000, 1, 8000, 220, 0.5),
	)
	backup := voice.Clone()

	program, err := AssembleScenes([]Scene{{Voice: voice}}, DefaultAssembleOptions())
	if err != nil {
		t.Fatalf("AssembleScenes() error: %v", err)
	}

	if program.Frames() != voice.Frames() {
		t.Fatalf("program has %d frames, want %d", program.Frames(), voice.Frames())
	}

	// The dropout interior now carries ambient noise at the configured
	// -40 dBFS level instead of digital silence.
	from, to := program.IndexAt(1.05), program.IndexAt(1.25)
	if rms := program.RMSRange(from, to); math.Abs(rms-0.01) > 0.002 {
		t.Errorf("repaired gap RMS = %v, want 0.01 within 0.002", rms)
	}

	if rms := voice.RMSRange(from, to); rms != 0 {
		t.Errorf("input gap RMS = %v, want untouched silence", rms)
	}

	if !voice.Equal(backup) {
		t.Error("input voice track was modified")
	}
}

func TestAssembleScenes_Validation(t *testing.T) {
	t.Parallel()

	voice := audiotest.NewToneBuffer(8000, 1, 8000, 220, 0.5)
	music := audiotest.NewToneBuffer(8000, 1, 8000, 110, 0.4)

	tests := []struct {
		name    string
		scenes  []Scene
		mutate  func(*AssembleOptions)
		wantErr error
	}{
		{
			name:    "no scenes",
			scenes:  nil,
			wantErr: audio.ErrEmptyInput,
		},
		{
			name:    "scene without tracks",
			scenes:  []Scene{{}},
			wantErr: audio.ErrInvalidBuffer,
		},
		{
			name:    "music without voice",
			scenes:  []Scene{{Music: music}},
			wantErr: audio.ErrInvalidBuffer,
		},
		{
			name: "mismatched scene rates",
			scenes: []Scene{
				{Voice: voice},
				{Voice: audiotest.NewToneBuffer(44100, 1, 44100, 220, 0.5)},
			},
			wantErr: audio.ErrSampleRateMismatch,
		},
		{
			name:   "bad ducking ceiling",
			scenes: []Scene{{Voice: voice, Music: music}},
			mutate: func(o *AssembleOptions) {
				o.Mix.Ceiling = 0
			},
			wantErr: audio.ErrInvalidCurve,
		},
		{
			name:   "unknown crossfade curve",
			scenes: []Scene{{Voice: voice}, {Voice: voice}},
			mutate: func(o *AssembleOptions) {
				o.Curve = crossfade.Curve(9)
			},
			wantErr: audio.ErrInvalidCurve,
		},
		{
			name:   "negative gap threshold",
			scenes: []Scene{{Voice: voice}},
			mutate: func(o *AssembleOptions) {
				o.GapThreshold = -1
			},
			wantErr: audio.ErrInvalidCurve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultAssembleOptions()
			if tt.mutate != nil {
				tt.mutate(&opts)
			}

			_, err := AssembleScenes(tt.scenes, opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AssembleScenes() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func BenchmarkAssembleScenes(b *testing.B) {
	voice := audiotest.Concat(
		audiotest.NewToneBuffer(44100, 1, 2*44100, 220, 0.5),
		audiotest.NewSilentBuffer(44100, 1, 44100),
	)
	music := audiotest.NewToneBuffer(44100, 2, 3*44100, 110, 0.4)

	scenes := []Scene{
		{Voice: voice, Music: music},
		{Voice: voice},
	}
	opts := DefaultAssembleOptions()

	b.ReportAllocs()

	for b.Loop() {
		_, _ = AssembleScenes(scenes, opts)
	}
}
