package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// recordingSystem appends its name to a shared log on every Update
type recordingSystem struct {
	name     string
	phase    Phase
	priority int
	log      *[]string
	onUpdate func()
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Phase() Phase  { return s.phase }
func (s *recordingSystem) Update() {
	*s.log = append(*s.log, s.name)
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// recordingHandler is a tick system that also handles events
type recordingHandler struct {
	recordingSystem
	types []event.EventType
}

func (h *recordingHandler) EventTypes() []event.EventType { return h.types }
func (h *recordingHandler) HandleEvent(_ *World, ev event.GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func newStartedTestGame(t *testing.T) (*Game, *MockTimeProvider) {
	t.Helper()
	g, mock := NewTestGame(DefaultConfigResource())
	g.Start()
	return g, mock
}

func TestAdvanceRunsOnFixedInterval(t *testing.T) {
	g, mock := newStartedTestGame(t)
	interval := g.Scheduler.TickInterval()

	mock.Advance(interval - time.Millisecond)
	if n := g.Advance(); n != 0 {
		t.Fatalf("ticks before first deadline = %d, want 0", n)
	}

	mock.Advance(time.Millisecond)
	if n := g.Advance(); n != 1 {
		t.Fatalf("ticks at deadline = %d, want 1", n)
	}

	mock.Advance(2 * interval)
	if n := g.Advance(); n != 2 {
		t.Fatalf("ticks after two intervals = %d, want 2", n)
	}

	if got := g.World.Resources.Status.Ints.Get(status.KeyTicks).Load(); got != 3 {
		t.Errorf("%s = %d, want 3", status.KeyTicks, got)
	}
	if g.World.Resources.Time.TickNumber != 3 {
		t.Errorf("TimeResource.TickNumber = %d, want 3", g.World.Resources.Time.TickNumber)
	}
}

func TestAdvanceCapsCatchUpAndRebases(t *testing.T) {
	g, mock := newStartedTestGame(t)

	mock.Advance(10 * time.Second)
	if n := g.Advance(); n != parameter.MaxCatchUpTicks {
		t.Fatalf("catch-up ticks = %d, want %d", n, parameter.MaxCatchUpTicks)
	}
	if n := g.Advance(); n != 0 {
		t.Errorf("ticks right after rebase = %d, want 0", n)
	}

	mock.Advance(g.Scheduler.TickInterval())
	if n := g.Advance(); n != 1 {
		t.Errorf("ticks one interval after rebase = %d, want 1", n)
	}
}

func TestPauseFreezesTicks(t *testing.T) {
	g, mock := newStartedTestGame(t)
	interval := g.Scheduler.TickInterval()

	if !g.TogglePause() {
		t.Fatal("TogglePause did not pause")
	}
	if !g.World.Resources.Status.Bools.Get(status.KeyPaused).Load() {
		t.Error("paused metric not set")
	}

	mock.Advance(5 * interval)
	if n := g.Advance(); n != 0 {
		t.Fatalf("ticks while paused = %d", n)
	}

	if g.TogglePause() {
		t.Fatal("TogglePause did not resume")
	}
	if n := g.Advance(); n != 0 {
		t.Errorf("ticks right after resume = %d, want 0 (no burst)", n)
	}

	mock.Advance(interval)
	if n := g.Advance(); n != 1 {
		t.Errorf("ticks one interval after resume = %d, want 1", n)
	}
}

func TestPhasesAndPriorities(t *testing.T) {
	g, _ := NewTestGame(DefaultConfigResource())
	var log []string

	g.AddSystem(&recordingSystem{name: "collide", phase: PhaseTick, priority: 20, log: &log})
	g.AddSystem(&recordingSystem{name: "input", phase: PhaseFrame, priority: 10, log: &log})
	g.AddSystem(&recordingSystem{name: "move", phase: PhaseTick, priority: 10, log: &log})
	g.Start()

	g.Frame()
	g.Scheduler.Step()

	want := "input,move,collide"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("run order = %s, want %s", got, want)
	}
}

func TestTickSettlesEventsAfterSystems(t *testing.T) {
	g, _ := NewTestGame(DefaultConfigResource())
	var log []string

	pusher := &recordingSystem{name: "collide", phase: PhaseTick, priority: 20, log: &log, onUpdate: func() {
		g.World.PushEvent(event.EventGrowth, nil)
	}}
	late := &recordingHandler{
		recordingSystem: recordingSystem{name: "late", phase: PhaseTick, priority: 30, log: &log},
		types:           []event.EventType{event.EventGrowth},
	}
	g.AddSystem(pusher)
	g.AddSystem(late)
	g.Start()
	log = log[:0]

	g.Scheduler.Step()

	want := "collide,late,late:Growth"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("tick order = %s, want %s", got, want)
	}
	if g.World.Resources.Event.Queue.Len() != 0 {
		t.Errorf("queue not settled after tick")
	}
}

func TestPausableClock(t *testing.T) {
	mock := NewMockTimeProvider(TestEpoch)
	pc := NewPausableClock(mock)

	mock.Advance(time.Second)
	if got := pc.Now().Sub(TestEpoch); got != time.Second {
		t.Fatalf("elapsed = %v, want 1s", got)
	}

	pc.Pause()
	mock.Advance(3 * time.Second)
	if got := pc.Now().Sub(TestEpoch); got != time.Second {
		t.Errorf("elapsed while paused = %v, want 1s", got)
	}
	if got := pc.TotalPauseDuration(); got != 3*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 3s", got)
	}

	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Now().Sub(TestEpoch); got != 2*time.Second {
		t.Errorf("elapsed after resume = %v, want 2s", got)
	}
	if !pc.RealTime().Equal(TestEpoch.Add(5 * time.Second)) {
		t.Errorf("RealTime = %v", pc.RealTime())
	}
}
