package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MovementInterval is the fixed movement tick period
	MovementInterval = 200 * time.Millisecond

	// MaxCatchUpTicks bounds the ticks run in one Advance call after a stall
	MaxCatchUpTicks = 4

	// EventLoopIterations is the cycles the router drains the queue for immediate settling
	EventLoopIterations = 16
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// MaxInitialFood keeps one queue slot free for the EventGameReset queued ahead of the spawn requests
	MaxInitialFood = EventQueueSize - 1
)
