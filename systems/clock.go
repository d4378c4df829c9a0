package systems

import (
	"time"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi/ecs"
)

var lastTick time.Time

// UpdateClock advances the singleton simulation clock. Must run first in the
// system order so every later system reads the same dt. The step is clamped
// so a frame hitch never tunnels entities through geometry.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)

	now := time.Now()
	if lastTick.IsZero() {
		lastTick = now
	}
	dt := now.Sub(lastTick).Seconds()
	lastTick = now

	if dt > cfg.Physics.MaxDelta {
		dt = cfg.Physics.MaxDelta
	}
	clock.DT = dt
	clock.Frame++
}

// DT returns the current tick's seconds step.
func DT(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).DT
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// ResetClock clears the frame timer, used when a scene starts so the first
// tick after a scene change is not a giant step.
func ResetClock() {
	lastTick = time.Time{}
}
