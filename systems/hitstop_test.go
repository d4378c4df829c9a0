package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mossforge/forestfall/config"
)

func TestHitStopNeverShortens(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	TriggerHitStop(e, 8)
	TriggerHitStop(e, 3)
	if got := GetOrCreateHitStop(e).FramesRemaining; got != 8 {
		t.Errorf("FramesRemaining = %d, a shorter request must not cut a freeze", got)
	}
}

func TestHitStopFreezesGameplayButNotEffects(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	gs := GetOrCreateGameState(e) // created in playing mode
	TriggerHitStop(e, 5)

	var gameplayRan, effectsRan bool
	WithGameplayChecks(func(*ecs.ECS) { gameplayRan = true })(e)
	WithPlayingCheck(func(*ecs.ECS) { effectsRan = true })(e)

	if gameplayRan {
		t.Error("gameplay systems must freeze during hit-stop")
	}
	if !effectsRan {
		t.Error("animation systems must keep running during hit-stop")
	}

	// Neither runs outside active play.
	gs.Mode = cfg.ModePaused
	effectsRan = false
	WithPlayingCheck(func(*ecs.ECS) { effectsRan = true })(e)
	if effectsRan {
		t.Error("animation systems must not run while paused")
	}
}

func TestHitStopCountsDownAndReleases(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	TriggerHitStop(e, 2)

	UpdateHitStop(e)
	UpdateHitStop(e)
	if GetOrCreateHitStop(e).Frozen() {
		t.Fatal("freeze should release after its frames elapse")
	}

	var ran bool
	WithGameplayChecks(func(*ecs.ECS) { ran = true })(e)
	if !ran {
		t.Error("gameplay should resume after the freeze")
	}
}
