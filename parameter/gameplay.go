package parameter

import "github.com/lixenwraith/vi-snake/core"

// Arena
const (
	ArenaWidth  = 10
	ArenaHeight = 10
)

// Snake
const (
	StartingDirection = core.DirUp
)

var (
	// StartHead is the head cell at session start
	StartHead = core.Point{X: 3, Y: 3}

	// StartBody lists the trailing segments at session start, head side first
	StartBody = []core.Point{{X: 3, Y: 2}}
)

// Food
const (
	// InitialFoodCount is the number of spawn requests queued at session start
	InitialFoodCount = 3
)

// Entity sizes relative to one cell (rendering only)
const (
	HeadSize = 0.8
	BodySize = 0.6
	FoodSize = 0.4
)
