package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// FoodSystem detects head-food overlap each tick and places food on request
type FoodSystem struct {
	world *engine.World

	// Telemetry
	statEaten *atomic.Int64
}

func NewFoodSystem(world *engine.World) engine.System {
	return &FoodSystem{
		world:     world,
		statEaten: world.Resources.Status.Ints.Get(status.KeyFoodEaten),
	}
}

func (s *FoodSystem) Name() string {
	return "food"
}

func (s *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

func (s *FoodSystem) Phase() engine.Phase {
	return engine.PhaseTick
}

func (s *FoodSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSpawnFood,
	}
}

// HandleEvent places one food per spawn request
func (s *FoodSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if ev.Type != event.EventSpawnFood {
		return
	}
	p := randomCell(w)
	e := engine.SpawnFood(w, p)
	log.Printf("food %d spawned at %s", e, p)
}

// Update consumes every food under the head; body segments never eat
func (s *FoodSystem) Update() {
	snake := s.world.Resources.Snake
	if snake.Chain.Len() == 0 {
		return
	}

	head := s.world.Positions.MustGet(snake.Head())
	for _, e := range s.world.Positions.EntitiesAt(head) {
		if !s.world.Components.Food.HasEntity(e) {
			continue
		}
		s.world.DestroyEntity(e)
		s.world.PushEvent(event.EventGrowth, &event.GrowthPayload{Food: e, At: head})
		s.statEaten.Add(1)
	}
}

// randomCell draws a cell uniformly from [0, width] x [0, height]
// Both bounds are inclusive and occupancy is not checked
func randomCell(w *engine.World) core.Point {
	cfg := w.Resources.Config
	rng := w.Resources.RNG.Rand
	return core.Point{
		X: rng.Intn(cfg.ArenaWidth + 1),
		Y: rng.Intn(cfg.ArenaHeight + 1),
	}
}
