package engine

import (
	"github.com/lixenwraith/vi-snake/component"
)

// ComponentStore holds the typed stores of every component kind
// Systems cache it once; pointers stay valid for the application lifetime
type ComponentStore struct {
	SnakeHead *Store[component.SnakeHeadComponent]
	Segment   *Store[component.SegmentComponent]
	Food      *Store[component.FoodComponent]
	Size      *Store[component.SizeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		SnakeHead: NewStore[component.SnakeHeadComponent](),
		Segment:   NewStore[component.SegmentComponent](),
		Food:      NewStore[component.FoodComponent](),
		Size:      NewStore[component.SizeComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{cs.SnakeHead, cs.Segment, cs.Food, cs.Size}
}
