package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("cue never ended")
	return nil
}

func TestCueLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	tests := []struct {
		sound core.SoundType
		want  int
	}{
		{core.SoundEat, rate.N(parameter.EatToneDuration)},
		{core.SoundReset, rate.N(parameter.ResetToneDuration)},
	}

	for _, tt := range tests {
		cue, err := NewCue(tt.sound, rate)
		if err != nil {
			t.Fatalf("NewCue(%d): %v", tt.sound, err)
		}
		samples := drain(t, cue)
		if len(samples) != tt.want {
			t.Errorf("sound %d: %d samples, want %d", tt.sound, len(samples), tt.want)
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
				t.Fatalf("sound %d: sample %d out of range: %v", tt.sound, i, s)
			}
		}
		// Release ramp ends near silence
		last := samples[len(samples)-1]
		if last[0] > 0.05 || last[0] < -0.05 {
			t.Errorf("sound %d: last sample %f not faded", tt.sound, last[0])
		}
	}
}

func TestCueRejectsUnknownSound(t *testing.T) {
	if _, err := NewCue(core.SoundTypeCount, beep.SampleRate(parameter.AudioSampleRate)); err == nil {
		t.Error("expected error for unknown sound type")
	}
}

// TestEngineGracefulDegradation verifies playback is a no-op without a device
func TestEngineGracefulDegradation(t *testing.T) {
	e := NewEngine(false)

	if e.Play(core.SoundEat) {
		t.Error("Play reported success without Start")
	}
	if e.IsEnabled() {
		t.Error("engine enabled without Start")
	}
	if err := e.Stop(); err != nil {
		t.Errorf("Stop before Start: %v", err)
	}
}

func TestEngineMute(t *testing.T) {
	e := NewEngine(true)
	if !e.IsMuted() {
		t.Fatal("engine not muted at start")
	}
	if e.ToggleMute() {
		t.Error("ToggleMute returned muted after unmuting")
	}
	if e.IsMuted() {
		t.Error("IsMuted true after unmute")
	}
	if !e.ToggleMute() || !e.IsMuted() {
		t.Error("second toggle did not mute")
	}
}
