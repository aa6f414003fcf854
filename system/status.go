package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// StatusSystem publishes per-frame gauges to the status registry
type StatusSystem struct {
	world *engine.World

	statLength *atomic.Int64
	statFood   *atomic.Int64
	statMuted  *atomic.Bool
}

func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &StatusSystem{
		world:      world,
		statLength: reg.Ints.Get(status.KeySnakeLength),
		statFood:   reg.Ints.Get(status.KeyFoodActive),
		statMuted:  reg.Bools.Get(status.KeyMuted),
	}
}

func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Phase() engine.Phase {
	return engine.PhaseFrame
}

func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGamePause,
		event.EventGameReset,
	}
}

func (s *StatusSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventGamePause:
		if p, ok := ev.Payload.(*event.PausePayload); ok {
			log.Printf("paused=%v at tick %d", p.Paused, ev.Tick)
		}
	case event.EventGameReset:
		log.Printf("session reset")
	}
}

func (s *StatusSystem) Update() {
	res := s.world.Resources
	s.statLength.Store(int64(res.Snake.Chain.Len()))
	s.statFood.Store(int64(s.world.Components.Food.CountEntities()))
	if res.Audio.Player != nil {
		s.statMuted.Store(res.Audio.Player.IsMuted())
	}
}
