package engine

import (
	"github.com/lixenwraith/vi-snake/core"
)

// PositionStore is the flat entity → cell mapping with a cell → entities index
// Several entities may share a cell (food on the snake, stacked food)
type PositionStore struct {
	*Store[core.Point]
	spatialIndex map[core.Point][]core.Entity
}

// NewPositionStore creates a new position store with spatial indexing
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store:        NewStore[core.Point](),
		spatialIndex: make(map[core.Point][]core.Entity),
	}
}

// SetPosition records the entity's cell, keeping the spatial index consistent
// The whole Point is overwritten; there is no partial update
func (ps *PositionStore) SetPosition(e core.Entity, pos core.Point) {
	if old, exists := ps.Store.GetComponent(e); exists {
		if old == pos {
			return
		}
		ps.unindex(e, old)
	}
	ps.Store.SetComponent(e, pos)
	ps.spatialIndex[pos] = append(ps.spatialIndex[pos], e)
}

// SetComponent routes generic store writes through the spatial index
func (ps *PositionStore) SetComponent(e core.Entity, pos core.Point) {
	ps.SetPosition(e, pos)
}

// MustGet returns the entity's position, panicking if it has none
// A tracked entity without a position is an invariant violation
func (ps *PositionStore) MustGet(e core.Entity) core.Point {
	pos, ok := ps.Store.GetComponent(e)
	if !ok {
		panic("entity has no position")
	}
	return pos
}

// RemoveEntity removes the entity from both the store and the spatial index
func (ps *PositionStore) RemoveEntity(e core.Entity) {
	if pos, exists := ps.Store.GetComponent(e); exists {
		ps.unindex(e, pos)
	}
	ps.Store.RemoveEntity(e)
}

// EntitiesAt returns the entities occupying cell p, in arrival order
func (ps *PositionStore) EntitiesAt(p core.Point) []core.Entity {
	list := ps.spatialIndex[p]
	if len(list) == 0 {
		return nil
	}
	result := make([]core.Entity, len(list))
	copy(result, list)
	return result
}

// ClearAllComponents empties the store and the spatial index
func (ps *PositionStore) ClearAllComponents() {
	ps.Store.ClearAllComponents()
	ps.spatialIndex = make(map[core.Point][]core.Entity)
}

func (ps *PositionStore) unindex(e core.Entity, p core.Point) {
	list := ps.spatialIndex[p]
	for i, other := range list {
		if other == e {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(ps.spatialIndex, p)
		return
	}
	ps.spatialIndex[p] = list
}
