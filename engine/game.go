package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// DefaultConfigResource returns the reference session parameters
func DefaultConfigResource() ConfigResource {
	body := make([]core.Point, len(parameter.StartBody))
	copy(body, parameter.StartBody)
	return ConfigResource{
		ArenaWidth:     parameter.ArenaWidth,
		ArenaHeight:    parameter.ArenaHeight,
		InitialFood:    parameter.InitialFoodCount,
		TickInterval:   parameter.MovementInterval,
		StartDirection: parameter.StartingDirection,
		StartHead:      parameter.StartHead,
		StartBody:      body,
	}
}

// Game owns the world, its clocks and the session lifecycle
type Game struct {
	World     *World
	Scheduler *ClockScheduler
	Clock     *PausableClock

	session string
	started bool

	statPaused  *atomic.Bool
	statSession *status.AtomicString
}

// NewGame wires resources, world and scheduler; systems are added before Start
func NewGame(cfg ConfigResource, provider TimeProvider) *Game {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = parameter.MovementInterval
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := status.NewRegistry()
	res := &Resource{
		Time:   &TimeResource{},
		Config: &cfg,
		Snake:  &SnakeResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		RNG:    NewRNGResource(seed),
		Input:  &InputResource{},
		Audio:  &AudioResource{},
		Status: reg,
	}

	world := NewWorld(res)
	clock := NewPausableClock(provider)

	return &Game{
		World:       world,
		Clock:       clock,
		Scheduler:   NewClockScheduler(world, clock, cfg.TickInterval),
		statPaused:  reg.Bools.Get(status.KeyPaused),
		statSession: reg.Strings.Get(status.KeySession),
	}
}

// AddSystem registers a system with the world and, if it handles events, with the router
func (g *Game) AddSystem(s System) {
	g.World.AddSystem(s)
	if h, ok := s.(event.Handler[*World]); ok {
		g.Scheduler.RegisterEventHandler(h)
	}
}

// Session returns the identifier of the current session
func (g *Game) Session() string {
	return g.session
}

// Start spawns the initial snake and food; must be called once after systems are added
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.newSession()
	g.Scheduler.Rebase()
	g.populate()
}

// Reset rebuilds the session from ConfigResource, keeping systems and RNG state
func (g *Game) Reset() {
	g.World.Clear()
	g.World.Resources.Snake.Reset()
	g.World.Resources.Event.Queue.Clear()
	g.World.Resources.Status.ResetInts()

	if g.Clock.IsPaused() {
		g.Clock.Resume()
		g.statPaused.Store(false)
	}

	g.newSession()
	g.Scheduler.Rebase()

	// Reset handlers run before the spawn requests queued behind them
	g.World.PushEvent(event.EventGameReset, nil)
	g.populate()
}

// TogglePause freezes or resumes game time and returns the new pause state
func (g *Game) TogglePause() bool {
	if g.Clock.IsPaused() {
		g.Clock.Resume()
	} else {
		g.Clock.Pause()
	}
	paused := g.Clock.IsPaused()
	g.statPaused.Store(paused)
	g.World.PushEvent(event.EventGamePause, &event.PausePayload{Paused: paused})
	g.Scheduler.DispatchEventsImmediately()
	return paused
}

// Frame runs the per-frame clock
func (g *Game) Frame() {
	g.Scheduler.Frame()
}

// Advance runs due movement ticks
func (g *Game) Advance() int {
	return g.Scheduler.Advance()
}

func (g *Game) newSession() {
	g.session = uuid.NewString()
	g.statSession.Store(g.session)
	log.SetPrefix("[" + g.session[:8] + "] ")
	log.Printf("session %s started (seed %d)", g.session, g.World.Resources.RNG.Seed)
}

func (g *Game) populate() {
	SpawnSnake(g.World)
	queue := g.World.Resources.Event.Queue
	for i := 0; i < g.World.Resources.Config.InitialFood; i++ {
		// Drain before the ring buffer would overwrite a pending request
		if queue.Len() == parameter.EventQueueSize {
			g.Scheduler.DispatchEventsImmediately()
		}
		g.World.PushEvent(event.EventSpawnFood, nil)
	}
	g.Scheduler.DispatchEventsImmediately()
}
