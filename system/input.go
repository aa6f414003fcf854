package system

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
)

// InputSystem commits the latest directional intent to the snake head
// Runs every frame; only the value committed before a tick is used by that tick
type InputSystem struct {
	world *engine.World
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{world: world}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Phase() engine.Phase {
	return engine.PhaseFrame
}

func (s *InputSystem) Update() {
	candidate, ok := input.Resolve(s.world.Resources.Input.Provider)
	if !ok {
		return
	}

	head := s.world.Resources.Snake.Head()
	hc, ok := s.world.Components.SnakeHead.GetComponent(head)
	if !ok {
		return
	}

	// Reversal is judged against the heading actually moved last tick, so
	// two turns inside one tick cannot fold the snake onto itself.
	// Re-committing the current heading is skipped as a no-op write
	if candidate == hc.Moved.Opposite() || candidate == hc.Direction {
		return
	}

	hc.Direction = candidate
	s.world.Components.SnakeHead.SetComponent(head, hc)
}
