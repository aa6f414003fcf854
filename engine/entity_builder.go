package engine

import (
	"github.com/lixenwraith/vi-snake/core"
)

// EntityBuilder reserves an entity ID upfront and attaches components fluently
//
//	e := engine.With(
//	    world.NewEntity().WithPosition(p),
//	    world.Components.Food, component.FoodComponent{},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates an EntityBuilder with a freshly reserved ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], comp T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, comp)
	return eb
}

// WithPosition places the entity on cell p
func (eb *EntityBuilder) WithPosition(p core.Point) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.world.Positions.SetPosition(eb.entity, p)
	return eb
}

// Build finalizes the entity and returns its ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
