package status

import "sync/atomic"

// Metric keys published by the engine and systems
const (
	KeyTicks         = "engine.ticks"
	KeyFrames        = "engine.frames"
	KeySnakeLength   = "snake.length"
	KeyFoodActive    = "food.active"
	KeyFoodEaten     = "food.eaten"
	KeyGrowthDropped = "growth.dropped"
	KeyPaused        = "game.paused"
	KeyMuted         = "audio.muted"
	KeySession       = "game.session"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// ResetInts zeroes every integer metric, used on session restart
func (r *Registry) ResetInts() {
	r.Ints.Range(func(_ string, v *atomic.Int64) {
		v.Store(0)
	})
}
