package system

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// AudioSystem turns game events into sound cues
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Phase() engine.Phase {
	return engine.PhaseTick
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGrowth,
		event.EventGameReset,
	}
}

// HandleEvent plays the cue matching the event; silent without a player
func (s *AudioSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	player := w.Resources.Audio.Player
	if player == nil {
		return
	}

	switch ev.Type {
	case event.EventGrowth:
		player.Play(core.SoundEat)
	case event.EventGameReset:
		player.Play(core.SoundReset)
	}
}

func (s *AudioSystem) Update() {}
