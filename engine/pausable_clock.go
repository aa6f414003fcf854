package engine

import (
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
type PausableClock struct {
	provider TimeProvider

	realStartTime time.Time // When clock was created (real time)

	paused          bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a new pausable clock reading from provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:      provider,
		realStartTime: provider.Now(),
	}
}

// Now returns current game time (frozen while paused)
func (pc *PausableClock) Now() time.Time {
	if pc.paused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	realElapsed := pc.provider.Now().Sub(pc.realStartTime)
	return pc.realStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns the provider's wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
