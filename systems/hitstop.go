package systems

import (
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitStop decrements the freeze counter. Runs outside the gameplay
// gate so the freeze actually ends.
func UpdateHitStop(e *ecs.ECS) {
	hs := GetOrCreateHitStop(e)
	if hs.FramesRemaining > 0 {
		hs.FramesRemaining--
	}
}

// TriggerHitStop freezes gameplay for at least the given frame count.
// Requests never shorten an active freeze.
func TriggerHitStop(e *ecs.ECS, frames int) {
	GetOrCreateHitStop(e).Freeze(frames)
}

// GetOrCreateHitStop returns the singleton HitStop component, creating if needed.
func GetOrCreateHitStop(e *ecs.ECS) *components.HitStopData {
	entry, ok := components.HitStop.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HitStop))
	}
	return components.HitStop.Get(entry)
}

// WithGameplayChecks wraps a system to skip execution while the game is
// paused or frozen by hit-stop. Render and UI systems stay unwrapped.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGameState(e).Mode != cfg.ModePlaying {
			return
		}
		if GetOrCreateHitStop(e).Frozen() {
			return
		}
		system(e)
	}
}

// WithPlayingCheck wraps a system to skip execution outside active play but
// lets it run through hit-stop. For animation-only systems like particles
// and screen shake, which keep moving while gameplay is frozen.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGameState(e).Mode != cfg.ModePlaying {
			return
		}
		system(e)
	}
}
