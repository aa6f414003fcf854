package event

// EventType represents the type of game event
type EventType int

const (
	// EventSpawnFood requests one food entity at a random cell
	// Trigger: Game start (InitialFoodCount times), GrowthSystem after each accepted growth
	// Consumer: FoodSystem | Payload: nil
	EventSpawnFood EventType = iota

	// EventGrowth signals that one food was consumed by the head
	// Trigger: FoodSystem collision check, post-movement
	// Consumer: GrowthSystem, AudioSystem | Payload: *GrowthPayload
	EventGrowth

	// EventGameReset signals a session restart, queued ahead of the new spawn requests
	// Trigger: Game.Reset
	// Consumer: systems holding session state, AudioSystem | Payload: nil
	EventGameReset

	// EventGamePause signals a pause toggle
	// Trigger: Game.TogglePause
	// Consumer: StatusSystem | Payload: *PausePayload
	EventGamePause
)

// GameEvent is a single one-shot signal stored in the EventQueue
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64 // Movement tick on which the event was pushed
}
