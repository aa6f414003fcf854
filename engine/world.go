package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
)

// World contains all entities and their components using typed stores
// Owned by the game loop goroutine; no internal locking
type World struct {
	nextEntityID core.Entity

	Resources  *Resource
	Components ComponentStore
	Positions  *PositionStore

	systems []System
}

// NewWorld creates a new ECS world with empty stores and the given resources
func NewWorld(res *Resource) *World {
	return &World{
		nextEntityID: 1,
		Resources:    res,
		Components:   newComponentStore(),
		Positions:    NewPositionStore(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Positions.RemoveEntity(e)
	for _, store := range w.Components.all() {
		store.RemoveEntity(e)
	}
}

// Exists reports whether the entity holds any component
func (w *World) Exists(e core.Entity) bool {
	if w.Positions.HasEntity(e) {
		return true
	}
	for _, store := range w.Components.all() {
		if store.HasEntity(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
// Entity IDs keep increasing so stale handles never alias a new entity
func (w *World) Clear() {
	w.Positions.ClearAllComponents()
	for _, store := range w.Components.all() {
		store.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
// Systems of equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, stable and fine for small N
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs the systems of one phase sequentially in priority order
func (w *World) Update(phase Phase) {
	for _, system := range w.systems {
		if system.Phase() == phase {
			system.Update()
		}
	}
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Resources.Time.TickNumber,
	})
}
