package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/fonts"
	"github.com/mossforge/forestfall/scenes"
	"github.com/mossforge/forestfall/storage"
	"github.com/mossforge/forestfall/systems"
)

// Scene is anything the game loop can run.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene.
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store *storage.Store) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, store)
	} else {
		g.scene = scenes.NewMenuScene(g, store)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

var (
	flagFullscreen bool
	flagDifficulty string
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "forestfall",
	Short: "A survival platformer about holding the forest as long as you can",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	if flagConfigPath != "" {
		if err := cfg.LoadDifficulty(flagConfigPath); err != nil {
			return err
		}
	}
	if flagDifficulty != "" {
		if _, ok := cfg.Difficulty.Presets[flagDifficulty]; !ok {
			log.Warn("unknown difficulty preset, using default",
				"preset", flagDifficulty, "default", cfg.Difficulty.Default)
		} else {
			cfg.Difficulty.Default = flagDifficulty
		}
	}

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Warn("settings will not persist", "err", err)
	}

	store, err := storage.Open(cfg.Debug.DBPath)
	if err != nil {
		log.Warn("run results will not be saved", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	log.Info("starting", "level", cfg.Debug.Level, "difficulty", cfg.Difficulty.Default)
	return ebiten.RunGame(NewGame(store))
}

func init() {
	rootCmd.Flags().BoolVar(&cfg.Debug.SkipMenu, "skip-menu", false, "jump straight into a run")
	rootCmd.Flags().BoolVar(&cfg.Debug.ShowHitboxes, "show-hitboxes", false, "draw live attack hitboxes")
	rootCmd.Flags().BoolVar(&cfg.Debug.ShowDebug, "debug", false, "draw collision and AI overlays")
	rootCmd.Flags().StringVar(&cfg.Debug.Level, "level", "forest", "built-in level to play")
	rootCmd.Flags().StringVar(&cfg.Debug.DBPath, "db", "~/.forestfall/runs.db", "path to the run results database")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "start fullscreen")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "difficulty preset (easy, normal, hard)")
	rootCmd.Flags().StringVar(&flagConfigPath, "balance-config", "", "path to a difficulty YAML override")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}
