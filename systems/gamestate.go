package systems

import (
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameState handles the pause toggle and accumulates run time and its
// trickle score while playing. Mode changes all go through the transition
// table; an illegal request is silently dropped.
func UpdateGameState(e *ecs.ECS) {
	gs := GetOrCreateGameState(e)
	input := getOrCreateInput(e)

	if input.Action(cfg.ActionPause).JustPressed {
		switch gs.Mode {
		case cfg.ModePlaying:
			gs.TransitionTo(cfg.ModePaused)
		case cfg.ModePaused:
			gs.TransitionTo(cfg.ModePlaying)
		}
	}

	if gs.Mode == cfg.ModePlaying {
		gs.Stats.AccumulateTime(DT(e))
	}
}

// GetOrCreateGameState returns the singleton GameState, creating if needed.
func GetOrCreateGameState(e *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameState))
		components.GameState.SetValue(entry, components.GameStateData{Mode: cfg.ModePlaying})
	}
	return components.GameState.Get(entry)
}

func addScore(e *ecs.ECS, points int) {
	GetOrCreateGameState(e).Stats.Score += points
}

func recordEnemyKill(e *ecs.ECS) {
	GetOrCreateGameState(e).Stats.EnemiesDefeated++
}

func recordPerfectBlock(e *ecs.ECS) {
	GetOrCreateGameState(e).Stats.PerfectBlocks++
}

// finishRun snapshots the player's final stats and moves to game over.
func finishRun(e *ecs.ECS) {
	gs := GetOrCreateGameState(e)
	if gs.Mode == cfg.ModeGameOver {
		return
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		combat := components.Combat.Get(playerEntry)
		shield := components.Shield.Get(playerEntry)
		gs.Stats.MaxCombo = combat.Combo.MaxCombo
		gs.Stats.DamageBlocked = shield.Stats.DamageBlocked
	}
	if gs.Stats.DeathCause == "" {
		gs.Stats.DeathCause = "slain"
	}
	gs.TransitionTo(cfg.ModeGameOver)
}
