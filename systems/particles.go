package systems

import (
	"image/color"
	"time"

	"github.com/mossforge/forestfall/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles steps the particle pool. The pool itself lives on the
// singleton component; this just feeds it the tick.
func UpdateParticles(e *ecs.ECS) {
	GetOrCreateParticles(e).Step(DT(e))
}

// SpawnPreset bursts a named effect at a world position.
func SpawnPreset(e *ecs.ECS, x, y float64, name string) {
	GetOrCreateParticles(e).BurstPreset(x, y, name)
}

// GetOrCreateParticles returns the singleton particle pool, creating if needed.
func GetOrCreateParticles(e *ecs.ECS) *components.ParticleSystemData {
	entry, ok := components.ParticleSystem.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.ParticleSystem))
		components.ParticleSystem.SetValue(entry, components.NewParticleSystemData(time.Now().UnixNano()))
	}
	return components.ParticleSystem.Get(entry)
}

// DrawParticles renders every live particle as a camera-space rect. Color
// lerps from start to end over the particle's life and alpha fades out.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	ps := GetOrCreateParticles(e)
	for i := range ps.Particles {
		p := &ps.Particles[i]

		screenX := p.X + offX
		screenY := p.Y + offY
		if screenX < -8 || screenX > float64(width)+8 || screenY < -8 || screenY > float64(height)+8 {
			continue
		}

		c := particleColor(p)
		half := float32(p.Size / 2)
		vector.DrawFilledRect(screen,
			float32(screenX)-half, float32(screenY)-half,
			float32(p.Size), float32(p.Size), c, false)
	}
}

func particleColor(p *components.Particle) color.RGBA {
	t := p.Progress()
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	c := color.RGBA{
		R: lerp(p.Color[0], p.EndColor[0]),
		G: lerp(p.Color[1], p.EndColor[1]),
		B: lerp(p.Color[2], p.EndColor[2]),
		A: lerp(p.Color[3], p.EndColor[3]),
	}
	// Zero end color means fade the start color out instead
	if p.EndColor == [4]uint8{} {
		c = color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: lerp(p.Color[3], 0)}
	}
	return c
}
