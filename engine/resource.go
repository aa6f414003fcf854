package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
)

// Resource holds singleton game resources, initialized during Game creation, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Snake  *SnakeResource
	Event  *EventQueueResource
	RNG    *RNGResource
	Input  *InputResource
	Audio  *AudioResource

	// Telemetry
	Status *status.Registry
}

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of each frame and tick
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// DeltaTime is the duration since the last update of the same clock
	DeltaTime time.Duration

	// TickNumber counts movement ticks since session start
	TickNumber int64

	// FrameNumber counts rendered frames since process start
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime time.Time, deltaTime time.Duration, tickNumber, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.TickNumber = tickNumber
	tr.FrameNumber = frameNumber
}

// ConfigResource holds the static session parameters
type ConfigResource struct {
	ArenaWidth     int
	ArenaHeight    int
	InitialFood    int
	TickInterval   time.Duration
	StartDirection core.Direction
	StartHead      core.Point
	StartBody      []core.Point // Trailing segments, head side first

	// Seed feeds the food RNG; 0 selects a time based seed
	Seed uint64
}

// SnakeResource tracks the single snake of the session
type SnakeResource struct {
	// Chain is the ordered snake, head first
	Chain component.Chain

	// LastTail is the tail's pre-move cell recorded by the latest movement tick
	// Valid only when HasLastTail is true
	LastTail    core.Point
	HasLastTail bool
}

// Head returns the head entity, 0 before the snake is spawned
func (sr *SnakeResource) Head() core.Entity {
	return sr.Chain.Head()
}

// Reset forgets the snake, used before a session rebuild
func (sr *SnakeResource) Reset() {
	*sr = SnakeResource{}
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// RNGResource is the seeded source used for food placement
type RNGResource struct {
	Rand *rand.Rand
	Seed uint64
}

// NewRNGResource creates a seeded RNG resource
func NewRNGResource(seed uint64) *RNGResource {
	return &RNGResource{
		Rand: rand.New(rand.NewSource(seed)),
		Seed: seed,
	}
}

// IntentProvider reports whether a directional key is currently held
// Implemented by input.KeyState; tests substitute a fixed set
type IntentProvider interface {
	Pressed(d core.Direction) bool
}

// InputResource exposes the latest directional intent to the frame clock
type InputResource struct {
	Provider IntentProvider
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface; Player may be nil
type AudioResource struct {
	Player AudioPlayer
}
