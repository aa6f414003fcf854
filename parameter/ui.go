package parameter

import "time"

// Terminal cells are roughly twice as tall as wide; one arena cell spans CellAspect columns
const CellAspect = 2

// Layout & Margins
const (
	// BottomMargin for status bar
	BottomMargin = 1
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report no release edge; keep above the typical auto-repeat interval
	KeyHoldWindow = 150 * time.Millisecond
)

// Default colors (rendering only), hex RGB
const (
	HeadColor = "#6666ff"
	BodyColor = "#66ff66"
	FoodColor = "#ff6666"
)

// Status Bar
const (
	PausedText = " PAUSED "
	MutedStr   = "- "
	AudioStr   = "♫ "
)
