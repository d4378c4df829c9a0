package components

import (
	"testing"

	"github.com/mossforge/forestfall/config"
)

func TestTransitionToFollowsTable(t *testing.T) {
	g := GameStateData{Mode: config.ModeMenu}

	if !g.TransitionTo(config.ModePlaying) {
		t.Fatal("menu to playing should be legal")
	}
	if g.Mode != config.ModePlaying {
		t.Fatalf("Mode = %s, want playing", g.Mode)
	}

	if g.TransitionTo(config.ModeMenu) {
		t.Error("playing straight to menu should be rejected")
	}
	if g.Mode != config.ModePlaying {
		t.Errorf("rejected transition changed Mode to %s", g.Mode)
	}

	if !g.TransitionTo(config.ModePaused) {
		t.Fatal("playing to paused should be legal")
	}
	if !g.TransitionTo(config.ModeMenu) {
		t.Fatal("paused to menu should be legal")
	}
}

func TestAccumulateTimeTrickleScore(t *testing.T) {
	var r RunStats

	// Half a second at 1 point per second: time advances, score waits.
	r.AccumulateTime(0.5)
	if r.Score != 0 {
		t.Errorf("Score after 0.5s = %d, want 0", r.Score)
	}
	if r.SurvivalTime != 0.5 {
		t.Errorf("SurvivalTime = %v, want 0.5", r.SurvivalTime)
	}

	r.AccumulateTime(0.5)
	if r.Score != config.Score.PointsPerSecond {
		t.Errorf("Score after 1s = %d, want %d", r.Score, config.Score.PointsPerSecond)
	}

	// A long stretch pays out every whole point at once.
	r.AccumulateTime(10)
	want := 11 * config.Score.PointsPerSecond
	if r.Score != want {
		t.Errorf("Score after 11s = %d, want %d", r.Score, want)
	}
}
