package event

import (
	"github.com/lixenwraith/vi-snake/core"
)

// GrowthPayload identifies the food that was consumed
type GrowthPayload struct {
	Food core.Entity
	At   core.Point
}

// PausePayload carries the pause state after a toggle
type PausePayload struct {
	Paused bool
}
