package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// directionKeys maps special keys to headings
var directionKeys = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.DirUp,
	tcell.KeyDown:  core.DirDown,
	tcell.KeyLeft:  core.DirLeft,
	tcell.KeyRight: core.DirRight,
}

// directionRunes maps vi motion keys to headings
var directionRunes = map[rune]core.Direction{
	'k': core.DirUp,
	'j': core.DirDown,
	'h': core.DirLeft,
	'l': core.DirRight,
}

var actionKeys = map[tcell.Key]Action{
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
}

var actionRunes = map[rune]Action{
	'q': ActionQuit,
	' ': ActionPause,
	'r': ActionRestart,
	'm': ActionMute,
}

// KeyState turns discrete terminal key events into held-key queries
// A direction reads as held for the hold window after its latest press or auto-repeat
// Not safe for concurrent use; owned by the game loop goroutine
type KeyState struct {
	hold time.Duration
	now  func() time.Time

	lastPress [len(core.Directions)]time.Time
}

// NewKeyState creates a KeyState; a nil now uses time.Now
func NewKeyState(hold time.Duration, now func() time.Time) *KeyState {
	if now == nil {
		now = time.Now
	}
	return &KeyState{hold: hold, now: now}
}

// HandleKey records a direction press or decodes a control action
func (ks *KeyState) HandleKey(ev *tcell.EventKey) Action {
	if d, ok := directionKeys[ev.Key()]; ok {
		ks.Press(d)
		return ActionNone
	}
	if a, ok := actionKeys[ev.Key()]; ok {
		return a
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}

	r := ev.Rune()
	if d, ok := directionRunes[r]; ok {
		ks.Press(d)
		return ActionNone
	}
	return actionRunes[r]
}

// Press marks d as held from now
func (ks *KeyState) Press(d core.Direction) {
	ks.lastPress[d] = ks.now()
}

// Pressed reports whether d was pressed within the hold window
func (ks *KeyState) Pressed(d core.Direction) bool {
	if int(d) >= len(ks.lastPress) {
		return false
	}
	t := ks.lastPress[d]
	if t.IsZero() {
		return false
	}
	return ks.now().Sub(t) < ks.hold
}

// Clear forgets every held key
func (ks *KeyState) Clear() {
	ks.lastPress = [len(core.Directions)]time.Time{}
}
