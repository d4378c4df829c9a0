package components

import (
	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

// RunStats accumulates one playthrough's results for the game over screen and
// the score store.
type RunStats struct {
	Score           int
	SurvivalTime    float64
	EnemiesDefeated int
	MaxCombo        int
	PerfectBlocks   int
	DamageBlocked   float64
	DeathCause      string

	scoreRemainder float64
}

// AccumulateTime adds survival time and its trickle score.
func (r *RunStats) AccumulateTime(dt float64) {
	r.SurvivalTime += dt
	r.scoreRemainder += dt * float64(config.Score.PointsPerSecond)
	for r.scoreRemainder >= 1 {
		r.Score++
		r.scoreRemainder--
	}
}

// GameStateData is the singleton mode machine plus the current run's stats.
type GameStateData struct {
	Mode  config.GameMode
	Stats RunStats
}

// TransitionTo applies a mode change if the transition table allows it.
func (g *GameStateData) TransitionTo(mode config.GameMode) bool {
	if !config.CanTransition(g.Mode, mode) {
		return false
	}
	g.Mode = mode
	return true
}

var GameState = donburi.NewComponentType[GameStateData]()

// MenuData stores cursor state for the menu scenes.
type MenuData struct {
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
