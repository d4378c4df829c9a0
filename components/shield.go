package components

import (
	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

// ShieldStats accumulates per-run blocking statistics.
type ShieldStats struct {
	BlocksTotal   int
	PerfectBlocks int
	DamageBlocked float64
}

type ShieldData struct {
	State  config.ShieldState
	Energy float64

	StateTimer          float64 // seconds in the current state
	PerfectWindowTimer  float64 // counts down from the raise
	RegenDelayTimer     float64 // counts down after a block
	PerfectDisplayTimer float64 // feedback window after a perfect block

	Stats ShieldStats
}

var Shield = donburi.NewComponentType[ShieldData]()
