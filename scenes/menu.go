package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/storage"
	"github.com/mossforge/forestfall/systems"
)

// SceneChanger allows scenes to trigger transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *storage.Store
	once         sync.Once
}

// NewMenuScene creates a new menu scene.
func NewMenuScene(sc SceneChanger, store *storage.Store) *MenuScene {
	return &MenuScene{sceneChanger: sc, store: store}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear so the OS window background never flashes through
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	if saved, err := systems.LoadSettings(); err == nil {
		systems.ApplySavedSettings(ms.ecs, saved)
	}
	systems.StartAmbience()

	onStart := func() {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.store))
	}
	onExit := func() {
		os.Exit(0)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(onStart, onExit))
	ms.ecs.AddSystem(systems.UpdateAudio)

	bestScore := 0
	if ms.store != nil {
		if best, err := ms.store.BestScore(); err == nil {
			bestScore = best
		}
	}
	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawMenu(bestScore))
}
