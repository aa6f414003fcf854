package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond

	EatToneHz       = 880.0
	EatToneDuration = 60 * time.Millisecond

	ResetToneHz       = 440.0
	ResetToneDuration = 120 * time.Millisecond

	// AudioVolume is the effects.Volume exponent applied to cues (base 2)
	AudioVolume = -2.0
)
