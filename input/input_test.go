package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

type heldSet map[core.Direction]bool

func (h heldSet) Pressed(d core.Direction) bool { return h[d] }

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		name string
		held heldSet
		want core.Direction
		ok   bool
	}{
		{"none", heldSet{}, 0, false},
		{"single right", heldSet{core.DirRight: true}, core.DirRight, true},
		{"up beats all", heldSet{core.DirUp: true, core.DirDown: true, core.DirLeft: true, core.DirRight: true}, core.DirUp, true},
		{"down beats left", heldSet{core.DirDown: true, core.DirLeft: true}, core.DirDown, true},
		{"left beats right", heldSet{core.DirLeft: true, core.DirRight: true}, core.DirLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.held)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Resolve = (%s, %v), want (%s, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}

	if _, ok := Resolve(nil); ok {
		t.Error("nil provider resolved a direction")
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestKeyStateHoldWindow(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	ks := NewKeyState(150*time.Millisecond, clk.now)

	if a := ks.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)); a != ActionNone {
		t.Fatalf("h decoded as %s", a)
	}
	if !ks.Pressed(core.DirLeft) {
		t.Fatal("left not held right after press")
	}
	if ks.Pressed(core.DirRight) {
		t.Error("right held without a press")
	}

	clk.t = clk.t.Add(149 * time.Millisecond)
	if !ks.Pressed(core.DirLeft) {
		t.Error("left released inside the hold window")
	}

	clk.t = clk.t.Add(time.Millisecond)
	if ks.Pressed(core.DirLeft) {
		t.Error("left still held after the hold window")
	}

	ks.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	ks.Clear()
	if ks.Pressed(core.DirUp) {
		t.Error("Clear kept a held key")
	}
}

func TestKeyStateBindings(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}

	dirs := []struct {
		ev   *tcell.EventKey
		want core.Direction
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.DirUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.DirDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.DirLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.DirRight},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), core.DirUp},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), core.DirDown},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), core.DirRight},
	}
	for _, tt := range dirs {
		ks := NewKeyState(time.Second, clk.now)
		ks.HandleKey(tt.ev)
		got, ok := Resolve(ks)
		if !ok || got != tt.want {
			t.Errorf("%s resolved to (%s, %v), want %s", tt.ev.Name(), got, ok, tt.want)
		}
	}

	actions := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionMute},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionNone},
	}
	for _, tt := range actions {
		ks := NewKeyState(time.Second, clk.now)
		if got := ks.HandleKey(tt.ev); got != tt.want {
			t.Errorf("%s decoded as %s, want %s", tt.ev.Name(), got, tt.want)
		}
		if _, ok := Resolve(ks); ok {
			t.Errorf("%s marked a direction as held", tt.ev.Name())
		}
	}
}
