package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food consumed
	SoundReset                  // Session restarted
	SoundTypeCount
)
