package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// TestEpoch is the fixed start time used by test games
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGame creates a Game on a mock clock with a fixed seed
// Callers add systems, then call Start
func NewTestGame(cfg ConfigResource) (*Game, *MockTimeProvider) {
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	provider := NewMockTimeProvider(TestEpoch)
	return NewGame(cfg, provider), provider
}

// FixedIntent is an IntentProvider holding a constant set of pressed directions
type FixedIntent map[core.Direction]bool

// Pressed reports whether d is in the set
func (f FixedIntent) Pressed(d core.Direction) bool {
	return f[d]
}
