package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/fonts"
	"github.com/mossforge/forestfall/tags"
)

// DrawDebug renders collision outlines, state names and enemy alert levels.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowDebug {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	drawCollisionOutlines(e, screen, camera, camX, camY, width, height)

	smallFont := fonts.Small.Get()

	// Player state readout
	if playerEntry, ok := tags.Player.First(e.World); ok {
		state := components.State.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		o := components.Object.Get(playerEntry)
		label := fmt.Sprintf("%s v=(%.0f,%.0f)", state.CurrentState, physics.VelX, physics.VelY)
		text.Draw(screen, label, smallFont,
			int(o.X+camX), int(o.Y+camY)-6, cfg.Yellow)
	}

	// Per-enemy state, alert level and last tree decision
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		state := components.State.Get(entry)
		o := components.Object.Get(entry)
		if enemy.Agent == nil {
			return
		}
		label := fmt.Sprintf("%s/%s [%s]",
			state.CurrentState, enemy.Agent.LastDecision(), enemy.Agent.Sensors.Alert())
		text.Draw(screen, label, smallFont,
			int(o.X+camX), int(o.Y+camY)-14, cfg.Cyan)
	})
}

func drawCollisionOutlines(e *ecs.ECS, screen *ebiten.Image, camera *components.CameraData, camX, camY float64, width, height int) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	viewX := camera.Position.X - float64(width)/2
	viewY := camera.Position.Y - float64(height)/2

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+float64(width) ||
			obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
			continue
		}

		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{R: 0, G: 255, B: 255, A: 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{R: 100, G: 100, B: 100, A: 255}
		case obj.HasTags(tags.ResolvPlatform):
			c = color.RGBA{R: 100, G: 150, B: 100, A: 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{R: 0, G: 0, B: 255, A: 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		case obj.HasTags(tags.ResolvDeadZone):
			c = color.RGBA{R: 255, G: 0, B: 255, A: 255}
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
		vector.DrawFilledRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
		vector.DrawFilledRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
	}
}
