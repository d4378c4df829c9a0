package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/fonts"
)

// UpdatePause handles pause menu navigation. The pause toggle itself lives in
// UpdateGameState; this only runs the cursor while paused.
func UpdatePause(e *ecs.ECS) {
	gs := GetOrCreateGameState(e)
	if gs.Mode != cfg.ModePaused {
		return
	}

	menu := getOrCreateMenu(e)
	input := getOrCreateInput(e)
	numOptions := len(cfg.Pause.MenuOptions)

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
		switch cfg.Pause.MenuOptions[menu.SelectedIndex] {
		case "Resume":
			gs.TransitionTo(cfg.ModePlaying)
		case "Main Menu":
			gs.TransitionTo(cfg.ModeMenu)
		}
		menu.SelectedIndex = 0
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	gs := GetOrCreateGameState(e)
	if gs.Mode != cfg.ModePaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menu := getOrCreateMenu(e)
	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Menu.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Pause.TextColorSelected
		}

		textWidth := len(option) * 9
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintWidth := len(hint) * 5
	text.Draw(screen, hint, fonts.Small.Get(),
		int((width-float64(hintWidth))/2), int(height)-12, cfg.Pause.TextColorNormal)
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}
