package systems

import (
	"math"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hitFlashFrames    = 4
	damageFlashFrames = 8
)

// UpdateEffects processes visual effect components (flash, squash/stretch).
func UpdateEffects(e *ecs.ECS) {
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})

	components.SquashStretch.Each(e.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		// Snap when close enough so the effect terminates
		if math.Abs(ss.ScaleX-ss.TargetX) < 0.01 && math.Abs(ss.ScaleY-ss.TargetY) < 0.01 {
			ss.ScaleX, ss.ScaleY = ss.TargetX, ss.TargetY
		}
	})
}

// TriggerSquashStretch starts a squash/stretch deformation on an entity.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	ss.LerpSpeed = cfg.SquashStretch.LerpSpeed
}

// TriggerHitFlash starts a white flash on the entity (for hits dealt).
func TriggerHitFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = hitFlashFrames
	flash.R, flash.G, flash.B = 3, 3, 3
}

// TriggerDamageFlash starts a red flash on the entity (for damage taken).
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = damageFlashFrames
	flash.R, flash.G, flash.B = 3, 1, 1
}
