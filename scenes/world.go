package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/leveldata"
	"github.com/mossforge/forestfall/storage"
	"github.com/mossforge/forestfall/systems"
	"github.com/mossforge/forestfall/systems/factory"
)

var worldBackground = color.RGBA{R: 18, G: 28, B: 22, A: 255}

// WorldScene runs one survival attempt.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	store        *storage.Store
	difficulty   string
	saved        bool
	once         sync.Once
}

// NewWorldScene creates a new gameplay scene.
func NewWorldScene(sc SceneChanger, store *storage.Store) *WorldScene {
	return &WorldScene{sceneChanger: sc, store: store}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	gs := systems.GetOrCreateGameState(ws.ecs)
	switch gs.Mode {
	case cfg.ModeMenu:
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.store))
	case cfg.ModeGameOver:
		ws.finishRun(gs.Stats)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(worldBackground)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// finishRun persists the result once and hands off to the game over scene.
func (ws *WorldScene) finishRun(stats components.RunStats) {
	if ws.saved {
		return
	}
	ws.saved = true

	if ws.store != nil {
		_, err := ws.store.SaveRunResult(storage.RunResult{
			Score:           stats.Score,
			SurvivalTime:    stats.SurvivalTime,
			EnemiesDefeated: stats.EnemiesDefeated,
			MaxCombo:        stats.MaxCombo,
			PerfectBlocks:   stats.PerfectBlocks,
			DamageBlocked:   stats.DamageBlocked,
			DeathCause:      stats.DeathCause,
			Difficulty:      ws.difficulty,
		})
		if err != nil {
			log.Warn("could not save run result", "err", err)
		}
	}

	ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.store, stats))
}

func (ws *WorldScene) configure() {
	systems.ResetClock()

	ws.ecs = ecs.NewECS(donburi.NewWorld())

	if saved, err := systems.LoadSettings(); err == nil {
		systems.ApplySavedSettings(ws.ecs, saved)
	}
	systems.StartAmbience()
	ws.difficulty = systems.GetOrCreateSettings(ws.ecs).Difficulty

	// Frame bookkeeping and input run first, unwrapped
	ws.ecs.AddSystem(systems.UpdateClock)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateGameState)
	ws.ecs.AddSystem(systems.UpdatePause)
	ws.ecs.AddSystem(systems.UpdateHitStop)

	// Gameplay systems skip while paused or frozen
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateShield))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombatHitboxes))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ws.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	// Animation-only effects keep running through hit-stop
	ws.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateParticles))
	ws.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateEffects))
	ws.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCamera))

	ws.ecs.AddSystem(systems.UpdatePersistence)
	ws.ecs.AddSystem(systems.UpdateAudio)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawEnemyHealthBars)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	levelName := cfg.Debug.Level
	if levelName == "" {
		levelName = "forest"
	}
	lvl, err := leveldata.LoadBuiltin(levelName)
	if err != nil {
		log.Fatal("load level", "name", levelName, "err", err)
	}
	factory.BuildLevel(ws.ecs, lvl, ws.difficulty)

	// Ambient leaf fall across the level width, pushed by the level's wind
	ps := systems.GetOrCreateParticles(ws.ecs)
	ps.SetWind(lvl.WindX, 0)
	if leaves, ok := cfg.ParticlePresets["falling_leaves"]; ok {
		for x := 0.0; x < float64(lvl.Width); x += 160 {
			ps.CreateEmitter(x, -10, leaves, 0.4, -1)
		}
	}
}
