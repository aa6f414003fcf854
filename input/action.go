package input

// Action is a non-directional control decoded from a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionRestart
	ActionMute
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionQuit:    "quit",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionMute:    "mute",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
