package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Engine plays sound cues through the beep speaker
// Every method is safe to call before or without a successful Start
type Engine struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	initialized bool

	muted atomic.Bool
}

// NewEngine creates an engine; muted starts it silent until toggled
func NewEngine(muted bool) *Engine {
	e := &Engine{
		rate: beep.SampleRate(parameter.AudioSampleRate),
	}
	e.muted.Store(muted)
	return e
}

// Name identifies the engine as a service
func (e *Engine) Name() string {
	return "audio"
}

// Start opens the audio device; a failure leaves the engine silent
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(parameter.AudioBufferWindow)); err != nil {
		return err
	}
	e.initialized = true
	return nil
}

// Stop releases the audio device
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
	return nil
}

// Play starts the cue for st, returns false if nothing was queued
func (e *Engine) Play(st core.SoundType) bool {
	if e.muted.Load() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return false
	}

	cue, err := NewCue(st, e.rate)
	if err != nil {
		log.Printf("audio: %v", err)
		return false
	}
	speaker.Play(cue)
	return true
}

// ToggleMute flips the mute state and returns true if now muted
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return muted
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if the device is open and unmuted
func (e *Engine) IsEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized && !e.muted.Load()
}
