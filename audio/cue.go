package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// cueTone describes a single synthesized tone
type cueTone struct {
	freq     float64
	duration time.Duration
}

var cues = [core.SoundTypeCount]cueTone{
	core.SoundEat:   {freq: parameter.EatToneHz, duration: parameter.EatToneDuration},
	core.SoundReset: {freq: parameter.ResetToneHz, duration: parameter.ResetToneDuration},
}

// NewCue builds a finite streamer for the given sound
func NewCue(st core.SoundType, rate beep.SampleRate) (beep.Streamer, error) {
	if st < 0 || st >= core.SoundTypeCount {
		return nil, fmt.Errorf("unknown sound type %d", st)
	}
	c := cues[st]

	sine, err := generators.SineTone(rate, c.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", c.freq, err)
	}

	tone := beep.Take(rate.N(c.duration), sine)
	release := c.duration / 4

	return &effects.Volume{
		Streamer: newFade(tone, rate.N(c.duration), rate.N(release)),
		Base:     2,
		Volume:   parameter.AudioVolume,
	}, nil
}

// fade ramps the tail of a stream to silence so short tones do not click
type fade struct {
	streamer       beep.Streamer
	position       int
	totalSamples   int
	releaseSamples int
}

func newFade(s beep.Streamer, total, release int) beep.Streamer {
	return &fade{
		streamer:       s,
		totalSamples:   total,
		releaseSamples: release,
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	releaseStart := f.totalSamples - f.releaseSamples
	for i := 0; i < n; i++ {
		if f.releaseSamples > 0 && f.position >= releaseStart {
			vol := float64(f.totalSamples-f.position) / float64(f.releaseSamples)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
