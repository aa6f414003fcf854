package component

import (
	"github.com/lixenwraith/vi-snake/core"
)

// SnakeHeadComponent holds the heading state of the snake head entity
type SnakeHeadComponent struct {
	// Direction is the committed heading the next tick will move in
	Direction core.Direction

	// Moved is the heading applied on the most recent movement tick
	// Input reversal is checked against this, not against Direction
	Moved core.Direction
}

// SegmentComponent marks a trailing body segment
type SegmentComponent struct{}

// Chain is the ordered list of snake entities, head at index 0
// Index i follows index i-1; the chain only ever grows at the tail
type Chain struct {
	entities []core.Entity
}

// NewChain creates a chain starting with the given head
func NewChain(head core.Entity) Chain {
	return Chain{entities: []core.Entity{head}}
}

// Append adds a segment at the tail
func (c *Chain) Append(e core.Entity) {
	c.entities = append(c.entities, e)
}

// Len returns the number of entities including the head
func (c *Chain) Len() int {
	return len(c.entities)
}

// Head returns the first entity, 0 for an empty chain
func (c *Chain) Head() core.Entity {
	if len(c.entities) == 0 {
		return 0
	}
	return c.entities[0]
}

// Tail returns the last entity, 0 for an empty chain
func (c *Chain) Tail() core.Entity {
	if len(c.entities) == 0 {
		return 0
	}
	return c.entities[len(c.entities)-1]
}

// At returns the entity at index i
func (c *Chain) At(i int) core.Entity {
	return c.entities[i]
}

// Entities returns the backing slice in chain order
// Callers must not modify it
func (c *Chain) Entities() []core.Entity {
	return c.entities
}
