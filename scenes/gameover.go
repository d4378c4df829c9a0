package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/storage"
	"github.com/mossforge/forestfall/systems"
)

// GameOverScene shows the finished run's stats and the local leaderboard.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *storage.Store
	stats        components.RunStats
	once         sync.Once
}

// NewGameOverScene creates a game over scene for a finished run.
func NewGameOverScene(sc SceneChanger, store *storage.Store, stats components.RunStats) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, store: store, stats: stats}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	onRetry := func() {
		gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.store))
	}
	onMenu := func() {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.store))
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(onRetry, onMenu))
	gs.ecs.AddSystem(systems.UpdateAudio)

	var top []storage.RunResult
	if gs.store != nil {
		if runs, err := gs.store.TopRuns(5); err == nil {
			top = runs
		}
	}
	gs.ecs.AddRenderer(cfg.Default, systems.NewDrawGameOver(gs.stats, top))
}
