package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
)

// DrawEntities renders every entity with a Render component as a flat rect.
// Geometry draws first, then characters with their effect modifiers.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	// Culling bounds with padding so rects don't pop at the edges
	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	frame := GetOrCreateClock(e).Frame

	for _, layer := range []int{components.RenderLayerGeometry, components.RenderLayerCharacter} {
		components.Render.Each(e.World, func(entry *donburi.Entry) {
			render := components.Render.Get(entry)
			if render.Layer != layer {
				return
			}
			o := components.Object.Get(entry)
			if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
				return
			}

			x, y, w, h := o.X, o.Y, o.W, o.H

			// Squash/stretch scales around the bottom-center anchor so
			// feet stay planted
			if entry.HasComponent(components.SquashStretch) {
				ss := components.SquashStretch.Get(entry)
				newW := w * ss.ScaleX
				newH := h * ss.ScaleY
				x += (w - newW) / 2
				y += h - newH
				w, h = newW, newH
			}

			c := render.Color

			// Invulnerability flicker
			if entry.HasComponent(components.Player) {
				player := components.Player.Get(entry)
				if player.InvulnTimer > 0 && frame%6 < 3 {
					c.A = c.A / 3
				}
			}
			if entry.HasComponent(components.Enemy) {
				enemy := components.Enemy.Get(entry)
				if enemy.InvulnTimer > 0 && frame%4 < 2 {
					c.A = c.A / 2
				}
			}

			// Flash overrides the base color
			if entry.HasComponent(components.Flash) {
				flash := components.Flash.Get(entry)
				if flash.Duration > 0 {
					c = scaleColor(c, flash.R, flash.G, flash.B)
				}
			}

			vector.DrawFilledRect(screen,
				float32(x+offX), float32(y+offY),
				float32(w), float32(h), c, false)

			if layer == components.RenderLayerCharacter {
				drawFacingMark(screen, entry, o, offX, offY)
				drawShieldArc(screen, entry, o, offX, offY)
			}
		})
	}
}

// drawFacingMark draws a small eye rect so flat silhouettes read a direction.
func drawFacingMark(screen *ebiten.Image, entry *donburi.Entry, o *components.ObjectData, offX, offY float64) {
	var facing float64
	switch {
	case entry.HasComponent(components.Player):
		facing = components.Player.Get(entry).Direction.X
	case entry.HasComponent(components.Enemy):
		facing = components.Enemy.Get(entry).Direction.X
	default:
		return
	}

	eyeX := o.X + o.W/2 + facing*(o.W/2-4)
	eyeY := o.Y + o.H*0.2
	vector.DrawFilledRect(screen,
		float32(eyeX+offX), float32(eyeY+offY),
		3, 3, cfg.White, false)
}

// drawShieldArc draws the shield as a bar in front of the player. Brightness
// tracks the state, height tracks remaining energy.
func drawShieldArc(screen *ebiten.Image, entry *donburi.Entry, o *components.ObjectData, offX, offY float64) {
	if !entry.HasComponent(components.Shield) {
		return
	}
	shield := components.Shield.Get(entry)

	var c color.RGBA
	switch shield.State {
	case cfg.ShieldRaising, cfg.ShieldLowering:
		c = color.RGBA{R: 60, G: 160, B: 200, A: 150}
	case cfg.ShieldActive:
		c = cfg.Cyan
	case cfg.ShieldPerfectBlock:
		c = cfg.White
	default:
		return
	}

	facing := components.Player.Get(entry).Direction.X
	barH := o.H * (shield.Energy / cfg.Shield.MaxEnergy)
	if barH < 4 {
		barH = 4
	}
	barX := o.X + o.W/2 + facing*(o.W/2+3) - 1.5
	barY := o.Y + (o.H-barH)/2
	vector.DrawFilledRect(screen,
		float32(barX+offX), float32(barY+offY),
		3, float32(barH), c, false)
}

// DrawHitboxes renders live attack hitboxes as translucent outlines. Debug
// only, gated on the command line flag.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		hitbox := components.Hitbox.Get(entry)
		c := color.RGBA{R: 255, G: 0, B: 0, A: 90}
		if hitbox.FromPlayer {
			c = color.RGBA{R: 0, G: 255, B: 0, A: 90}
		}
		vector.DrawFilledRect(screen,
			float32(o.X+offX), float32(o.Y+offY),
			float32(o.W), float32(o.H), c, false)
	})
}

// DrawEnemyHealthBars renders a small bar over every damaged enemy.
func DrawEnemyHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		if hp.Current >= hp.Max || hp.Current <= 0 {
			return
		}
		o := components.Object.Get(entry)

		barWidth := 28.0
		barHeight := 3.0
		barX := o.X + (o.W-barWidth)/2 + offX
		barY := o.Y - barHeight - 5 + offY
		pct := float64(hp.Current) / float64(hp.Max)

		vector.DrawFilledRect(screen, float32(barX), float32(barY),
			float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.DrawFilledRect(screen, float32(barX), float32(barY),
			float32(barWidth*pct), float32(barHeight), cfg.Green, false)
	})
}

// scaleColor multiplies channels by flash factors and clamps to 255.
func scaleColor(c color.RGBA, r, g, b float32) color.RGBA {
	mul := func(v uint8, f float32) uint8 {
		out := float32(v) * f
		if out > 255 {
			out = 255
		}
		return uint8(out)
	}
	return color.RGBA{R: mul(c.R, r), G: mul(c.G, g), B: mul(c.B, b), A: c.A}
}
