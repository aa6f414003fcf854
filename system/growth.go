package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// GrowthSystem appends one segment per eaten food at the tail's previous cell
// and requests a replacement food
type GrowthSystem struct {
	world *engine.World

	// Telemetry
	statDropped *atomic.Int64
}

func NewGrowthSystem(world *engine.World) engine.System {
	return &GrowthSystem{
		world:       world,
		statDropped: world.Resources.Status.Ints.Get(status.KeyGrowthDropped),
	}
}

func (s *GrowthSystem) Name() string {
	return "growth"
}

func (s *GrowthSystem) Priority() int {
	return parameter.PriorityGrowth
}

func (s *GrowthSystem) Phase() engine.Phase {
	return engine.PhaseTick
}

func (s *GrowthSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGrowth,
	}
}

// HandleEvent grows the snake; a request before any movement tick is dropped for good
func (s *GrowthSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if ev.Type != event.EventGrowth {
		return
	}

	snake := w.Resources.Snake
	if !snake.HasLastTail {
		s.statDropped.Add(1)
		log.Printf("growth dropped at tick %d: no tail cell recorded yet", ev.Tick)
		return
	}

	seg := engine.SpawnSegment(w, snake.LastTail)
	w.PushEvent(event.EventSpawnFood, nil)
	log.Printf("segment %d grown at %s, length %d", seg, snake.LastTail, snake.Chain.Len())
}

// Update is a no-op; growth is purely event driven
func (s *GrowthSystem) Update() {}
