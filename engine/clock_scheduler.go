package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// ClockScheduler drives the two logical clocks of the simulation
//   - Frame: every rendered frame, runs PhaseFrame systems (input)
//   - Advance: fixed period, runs PhaseTick systems then settles events
//
// Both are called from the game loop goroutine; Frame before Advance in the
// same iteration so a tick always sees the latest committed heading
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource
	clock   *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time
	lastFrameTime    time.Time

	tickCount  int64
	frameCount int64

	eventRouter *event.Router[*World]

	statTicks  *atomic.Int64
	statFrames *atomic.Int64
}

// NewClockScheduler creates a scheduler ticking every tickInterval of game time
func NewClockScheduler(world *World, clock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	now := clock.Now()
	return &ClockScheduler{
		world:            world,
		timeRes:          world.Resources.Time,
		clock:            clock,
		tickInterval:     tickInterval,
		nextTickDeadline: now.Add(tickInterval),
		lastFrameTime:    now,
		eventRouter:      event.NewRouter[*World](world.Resources.Event.Queue),
		statTicks:        world.Resources.Status.Ints.Get(status.KeyTicks),
		statFrames:       world.Resources.Status.Ints.Get(status.KeyFrames),
	}
}

// RegisterEventHandler adds an event handler to the router
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler[*World]) {
	cs.eventRouter.Register(handler)
}

// TickInterval returns the fixed movement period
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns ticks processed since the last Rebase
func (cs *ClockScheduler) TickCount() int64 {
	return cs.tickCount
}

// Frame runs the per-frame clock once
func (cs *ClockScheduler) Frame() {
	now := cs.clock.Now()
	cs.frameCount++
	cs.timeRes.Update(now, now.Sub(cs.lastFrameTime), cs.tickCount, cs.frameCount)
	cs.lastFrameTime = now

	cs.world.Update(PhaseFrame)
	cs.eventRouter.Settle(cs.world, parameter.EventLoopIterations)

	cs.statFrames.Store(cs.frameCount)
}

// Advance runs every tick whose deadline has passed and returns how many ran
// At most MaxCatchUpTicks run per call; a loop that fell further behind is rebased
// instead of bursting. Nothing runs while the clock is paused
func (cs *ClockScheduler) Advance() int {
	if cs.clock.IsPaused() {
		return 0
	}

	gameNow := cs.clock.Now()
	ran := 0
	for !gameNow.Before(cs.nextTickDeadline) && ran < parameter.MaxCatchUpTicks {
		cs.processTick(cs.nextTickDeadline)
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		ran++
	}

	maxBehind := cs.tickInterval * 2
	if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
		cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
	}

	return ran
}

// Step runs exactly one tick regardless of the deadline
func (cs *ClockScheduler) Step() {
	cs.processTick(cs.clock.Now())
}

// Rebase restarts tick counting with the first deadline one interval from now
func (cs *ClockScheduler) Rebase() {
	now := cs.clock.Now()
	cs.tickCount = 0
	cs.nextTickDeadline = now.Add(cs.tickInterval)
	cs.timeRes.Update(now, 0, 0, cs.frameCount)
	cs.statTicks.Store(0)
}

// DispatchEventsImmediately settles the event queue outside a tick
func (cs *ClockScheduler) DispatchEventsImmediately() int {
	return cs.eventRouter.Settle(cs.world, parameter.EventLoopIterations)
}

// processTick executes one movement cycle: tick systems, then event reactions
func (cs *ClockScheduler) processTick(at time.Time) {
	cs.tickCount++
	cs.timeRes.Update(at, cs.tickInterval, cs.tickCount, cs.frameCount)

	// Movement, then collision
	cs.world.Update(PhaseTick)

	// Growth, then spawn
	cs.eventRouter.Settle(cs.world, parameter.EventLoopIterations)

	cs.statTicks.Store(cs.tickCount)
}
