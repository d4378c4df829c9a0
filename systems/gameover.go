package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/fonts"
	"github.com/mossforge/forestfall/storage"
)

// NewUpdateGameOver builds the game over menu system.
func NewUpdateGameOver(onRetry, onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)
		numOptions := len(cfg.GameOver.MenuOptions)

		if input.Action(cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if input.Action(cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch cfg.GameOver.MenuOptions[menu.SelectedIndex] {
			case "Retry":
				onRetry()
			case "Main Menu":
				onMenu()
			}
		}
	}
}

// NewDrawGameOver builds the game over renderer for a finished run. Stats and
// the leaderboard are snapshotted at scene setup.
func NewDrawGameOver(stats components.RunStats, top []storage.RunResult) func(e *ecs.ECS, screen *ebiten.Image) {
	statLines := []string{
		fmt.Sprintf("Score          %d", stats.Score),
		fmt.Sprintf("Survived       %.1fs", stats.SurvivalTime),
		fmt.Sprintf("Enemies slain  %d", stats.EnemiesDefeated),
		fmt.Sprintf("Best combo     %d hits", stats.MaxCombo),
		fmt.Sprintf("Perfect blocks %d", stats.PerfectBlocks),
		fmt.Sprintf("Damage blocked %.0f", stats.DamageBlocked),
	}
	if stats.DeathCause != "" {
		statLines = append(statLines, fmt.Sprintf("Cause          %s", stats.DeathCause))
	}

	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.DrawFilledRect(screen, 0, 0,
			float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

		title := "GAME OVER"
		text.Draw(screen, title, fonts.Title.Get(),
			int((width-float64(len(title)*17))/2), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

		hudFont := fonts.HUD.Get()
		for i, line := range statLines {
			text.Draw(screen, line, hudFont,
				int(width/2)-90, int(cfg.GameOver.StatsStartY)+i*15, cfg.GameOver.TextColorNormal)
		}

		// Leaderboard column on the right
		if len(top) > 0 {
			text.Draw(screen, "TOP RUNS", hudFont,
				int(width)-140, int(cfg.GameOver.StatsStartY), cfg.BrightOrange)
			for i, r := range top {
				line := fmt.Sprintf("%d. %d", i+1, r.Score)
				text.Draw(screen, line, hudFont,
					int(width)-140, int(cfg.GameOver.StatsStartY)+(i+1)*15, cfg.GameOver.TextColorNormal)
			}
		}

		menu := getOrCreateMenu(e)
		menuFont := fonts.Menu.Get()
		for i, option := range cfg.GameOver.MenuOptions {
			y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

			textColor := cfg.GameOver.TextColorNormal
			if i == menu.SelectedIndex {
				textColor = cfg.GameOver.TextColorSelected
			}

			textWidth := len(option) * 9
			text.Draw(screen, option, menuFont,
				int((width-float64(textWidth))/2), int(y), textColor)
		}
	}
}
