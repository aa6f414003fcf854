package system

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// MovementSystem advances the snake one cell per tick with follow-the-leader motion
type MovementSystem struct {
	world *engine.World

	// Reused across ticks
	snapshot []core.Point
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Phase() engine.Phase {
	return engine.PhaseTick
}

func (s *MovementSystem) Update() {
	snake := s.world.Resources.Snake
	positions := s.world.Positions

	chain := snake.Chain.Entities()
	if len(chain) == 0 {
		return
	}

	head := chain[0]
	hc, ok := s.world.Components.SnakeHead.GetComponent(head)
	if !ok {
		panic(fmt.Sprintf("snake head %d has no heading", head))
	}

	// Pre-move cells in chain order
	s.snapshot = s.snapshot[:0]
	for _, e := range chain {
		s.snapshot = append(s.snapshot, positions.MustGet(e))
	}

	// No clamping or wraparound, the arena edge is not a wall
	positions.SetPosition(head, s.snapshot[0].Step(hc.Direction))
	for i := 1; i < len(chain); i++ {
		positions.SetPosition(chain[i], s.snapshot[i-1])
	}

	if len(chain) > 1 {
		snake.LastTail = s.snapshot[len(chain)-1]
		snake.HasLastTail = true
	}

	hc.Moved = hc.Direction
	s.world.Components.SnakeHead.SetComponent(head, hc)
}
