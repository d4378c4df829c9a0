package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/fonts"
)

// NewUpdateMenu builds the main menu system. Selection callbacks come from
// the scene so the systems package stays free of scene wiring.
func NewUpdateMenu(onStart, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)
		numOptions := len(cfg.Menu.MenuOptions)

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
			switch cfg.Menu.MenuOptions[menu.SelectedIndex] {
			case "Start":
				onStart()
			case "Exit":
				onExit()
			}
		}
	}
}

// NewDrawMenu builds the main menu renderer. The best score is read once at
// scene setup, not per frame.
func NewDrawMenu(bestScore int) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.DrawFilledRect(screen, 0, 0,
			float32(width), float32(height), cfg.Menu.BackgroundColor, false)

		titleFont := fonts.Title.Get()
		titleWidth := len(cfg.Menu.Title) * 17
		text.Draw(screen, cfg.Menu.Title, titleFont,
			int((width-float64(titleWidth))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

		if bestScore > 0 {
			bestStr := fmt.Sprintf("Best: %d", bestScore)
			text.Draw(screen, bestStr, fonts.HUD.Get(),
				int((width-float64(len(bestStr)*7))/2), int(cfg.Menu.TitleY)+24, cfg.White)
		}

		menu := getOrCreateMenu(e)
		menuFont := fonts.Menu.Get()
		for i, option := range cfg.Menu.MenuOptions {
			y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

			textColor := cfg.Menu.TextColorNormal
			if i == menu.SelectedIndex {
				textColor = cfg.Menu.TextColorSelected
			}

			textWidth := len(option) * 9
			text.Draw(screen, option, menuFont,
				int((width-float64(textWidth))/2), int(y), textColor)
		}

		hint := "Arrows: Navigate   Enter: Select"
		text.Draw(screen, hint, fonts.Small.Get(),
			int((width-float64(len(hint)*5))/2), int(height)-12, cfg.Menu.TextColorNormal)
	}
}
