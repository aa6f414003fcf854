package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput    = 10 // Frame clock
	PriorityMovement = 10 // Tick clock, before any collision
	PriorityFood     = 20 // After movement
	PriorityGrowth   = 30
	PriorityStatus   = 90
	PriorityAudio    = 100
)
