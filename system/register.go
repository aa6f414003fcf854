package system

import "github.com/lixenwraith/vi-snake/engine"

// RegisterAll adds every game system to g; call before g.Start
func RegisterAll(g *engine.Game) {
	w := g.World
	g.AddSystem(NewInputSystem(w))
	g.AddSystem(NewMovementSystem(w))
	g.AddSystem(NewFoodSystem(w))
	g.AddSystem(NewGrowthSystem(w))
	g.AddSystem(NewStatusSystem(w))
	g.AddSystem(NewAudioSystem(w))
}
