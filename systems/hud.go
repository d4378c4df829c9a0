package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/fonts"
)

var (
	hudBarBG      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	hudHealthCol  = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	hudHealthLow  = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	hudStaminaCol = color.RGBA{R: 230, G: 200, B: 60, A: 255}
	hudShieldCol  = color.RGBA{R: 60, G: 180, B: 230, A: 255}
	hudBrokenCol  = color.RGBA{R: 140, G: 70, B: 70, A: 255}
)

// DrawHUD renders the player's bars, score, combo and level readouts.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	combat := components.Combat.Get(playerEntry)
	shield := components.Shield.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	gs := GetOrCreateGameState(e)

	margin := cfg.UI.BarMargin
	barW := cfg.UI.HealthBarWidth
	barH := cfg.UI.HealthBarHeight

	// Health
	healthCol := hudHealthCol
	if float64(hp.Current) < float64(hp.Max)*0.25 {
		healthCol = hudHealthLow
	}
	drawBar(screen, margin, margin, barW, barH,
		float64(hp.Current)/float64(hp.Max), healthCol)

	// Stamina
	staminaY := margin + barH + 3
	drawBar(screen, margin, staminaY, barW, barH*0.6,
		combat.Stamina/cfg.Combat.Stamina.Max, hudStaminaCol)

	// Shield energy, dimmed while broken
	shieldY := staminaY + barH*0.6 + 3
	shieldCol := hudShieldCol
	if shield.State == cfg.ShieldBroken || shield.State == cfg.ShieldRecharging {
		shieldCol = hudBrokenCol
	}
	drawBar(screen, margin, shieldY, barW, barH*0.6,
		shield.Energy/cfg.Shield.MaxEnergy, shieldCol)

	hudFont := fonts.HUD.Get()
	width := screen.Bounds().Dx()

	// Score, top right
	scoreStr := fmt.Sprintf("SCORE %d", gs.Stats.Score)
	text.Draw(screen, scoreStr, hudFont,
		width-len(scoreStr)*7-int(margin), int(margin)+10, cfg.White)

	// Level and banked XP under the bars
	levelStr := fmt.Sprintf("LV %d  %d/%d XP",
		player.Level, player.XP, XPToNextLevel(player.Level))
	text.Draw(screen, levelStr, fonts.Small.Get(),
		int(margin), int(shieldY+barH*0.6)+12, cfg.White)

	drawComboCounter(screen, combat, width)
}

// drawComboCounter shows the hit chain and its closing window. Hidden below
// two hits so single pokes don't flash a counter.
func drawComboCounter(screen *ebiten.Image, combat *components.CombatData, width int) {
	if combat.Combo.Count < 2 {
		return
	}

	comboStr := fmt.Sprintf("%d HITS  x%.1f", combat.Combo.Count, combat.Combo.DamageMultiplier)
	comboCol := cfg.White
	if combat.Combo.DamageMultiplier >= 1.5 {
		comboCol = cfg.BrightOrange
	}
	x := (width - len(comboStr)*7) / 2
	text.Draw(screen, comboStr, fonts.Menu.Get(), x, 30, comboCol)

	// Window remaining, as a shrinking strip under the text
	pct := combat.Combo.Timer / cfg.Combat.ComboWindow
	stripW := 60.0 * pct
	vector.DrawFilledRect(screen,
		float32(float64(width)/2-stripW/2), 36,
		float32(stripW), 3, comboCol, false)
}

func drawBar(screen *ebiten.Image, x, y, w, h, pct float64, fill color.RGBA) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), hudBarBG, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*pct), float32(h), fill, false)
}
