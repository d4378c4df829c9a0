package systems

import (
	"math"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies damping, gravity and speed clamps. Velocities are in
// pixels per second; damping factors are per-frame multipliers at a 60hz
// reference, raised to dt*60 so the feel is frame-rate independent.
func UpdatePhysics(e *ecs.ECS) {
	dt := DT(e)

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)

		// Dying entities freeze in place
		if entry.HasComponent(components.State) {
			s := components.State.Get(entry)
			if s.CurrentState == cfg.Dying || s.CurrentState == cfg.EnemyDying {
				physics.VelX = 0
				physics.VelY = 0
				return
			}
		}

		damp := physics.AirDamp
		if physics.OnGround != nil {
			damp = physics.GroundDamp
		}
		if damp > 0 && damp < 1 {
			physics.VelX *= math.Pow(damp, dt*60)
		}
		if math.Abs(physics.VelX) < 1 {
			physics.VelX = 0
		}

		if physics.MaxSpeed > 0 {
			if physics.VelX > physics.MaxSpeed {
				physics.VelX = physics.MaxSpeed
			} else if physics.VelX < -physics.MaxSpeed {
				physics.VelX = -physics.MaxSpeed
			}
		}

		// Gravity is suspended during dashes
		if !physics.GravityOff {
			physics.VelY += physics.Gravity * dt
		}
		if physics.VelY > cfg.Physics.MaxFallSpeed {
			physics.VelY = cfg.Physics.MaxFallSpeed
		}
		if physics.WallSliding != nil && physics.VelY > cfg.Player.WallSlideSpeed {
			physics.VelY = cfg.Player.WallSlideSpeed
		}

		// Track last safe ground position for dead zone respawns
		if entry.HasComponent(components.Player) && physics.OnGround != nil {
			obj := components.Object.Get(entry)
			if obj.Check(0, 0, tags.ResolvDeadZone) == nil {
				player := components.Player.Get(entry)
				player.LastSafeX = obj.X
				player.LastSafeY = obj.Y
			}
		}
	})
}
