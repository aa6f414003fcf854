package engine

// Phase selects the logical clock a system runs on
type Phase int

const (
	// PhaseFrame runs once per rendered frame
	PhaseFrame Phase = iota
	// PhaseTick runs once per fixed movement tick
	PhaseTick
)

// System is an interface that all systems must implement
type System interface {
	Name() string
	Update()
	Priority() int // Lower values run first
	Phase() Phase
}
