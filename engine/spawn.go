package engine

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// SpawnSnake creates the head and initial body from ConfigResource
// Replaces any snake previously tracked in SnakeResource
func SpawnSnake(w *World) core.Entity {
	cfg := w.Resources.Config
	snake := w.Resources.Snake

	head := With(
		With(
			w.NewEntity().WithPosition(cfg.StartHead),
			w.Components.SnakeHead, component.SnakeHeadComponent{
				Direction: cfg.StartDirection,
				Moved:     cfg.StartDirection,
			},
		),
		w.Components.Size, component.Square(parameter.HeadSize),
	).Build()

	snake.Reset()
	snake.Chain = component.NewChain(head)

	for _, p := range cfg.StartBody {
		SpawnSegment(w, p)
	}
	return head
}

// SpawnSegment creates a body segment on p and appends it to the chain tail
// This is the only way the chain grows
func SpawnSegment(w *World, p core.Point) core.Entity {
	seg := With(
		With(
			w.NewEntity().WithPosition(p),
			w.Components.Segment, component.SegmentComponent{},
		),
		w.Components.Size, component.Square(parameter.BodySize),
	).Build()

	w.Resources.Snake.Chain.Append(seg)
	return seg
}

// SpawnFood creates a food entity on p
func SpawnFood(w *World, p core.Point) core.Entity {
	return With(
		With(
			w.NewEntity().WithPosition(p),
			w.Components.Food, component.FoodComponent{},
		),
		w.Components.Size, component.Square(parameter.FoodSize),
	).Build()
}
