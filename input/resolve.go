package input

import "github.com/lixenwraith/vi-snake/core"

// Provider reports whether a directional key is currently held
type Provider interface {
	Pressed(d core.Direction) bool
}

// Resolve returns the held direction with the highest priority
// Priority follows core.Directions: Up, Down, Left, Right
// A nil provider or no held key yields ok == false
func Resolve(p Provider) (core.Direction, bool) {
	if p == nil {
		return 0, false
	}
	for _, d := range core.Directions {
		if p.Pressed(d) {
			return d, true
		}
	}
	return 0, false
}
