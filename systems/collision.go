package systems

import (
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions integrates the tick's movement against level geometry.
// Runs after UpdatePhysics so velocities are final for the tick.
func UpdateCollisions(e *ecs.ECS) {
	dt := DT(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		dropThrough := getOrCreateInput(e).Action(cfg.ActionDuck).Pressed

		resolveHorizontal(physics, obj.Object, dt, true)
		resolveVertical(physics, obj.Object, dt, dropThrough)
		updateWallSliding(physics, obj.Object, player.Direction.X)

		if hitDeadZone(obj.Object) {
			handlePlayerDeadZone(e, entry)
		}
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		resolveHorizontal(physics, obj.Object, dt, false)
		resolveVertical(physics, obj.Object, dt, false)

		// Dead zones kill enemies outright
		if hitDeadZone(obj.Object) {
			components.Health.Get(entry).Current = 0
		}
	})
}

// resolveHorizontal moves the object by VelX*dt, stopping against solids.
// Players pick up a wall-slide reference when blocked while airborne.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dt float64, allowWallSlide bool) {
	dx := physics.VelX * dt
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		physics.WallSliding = nil
		physics.WallDir = 0
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.X += dx
		return
	}

	// Snap flush against the wall
	contact := check.ContactWithObject(solids[0])
	object.X += contact.X()
	physics.VelX = 0

	if allowWallSlide && physics.OnGround == nil && physics.VelY > 0 {
		physics.WallSliding = solids[0]
		if dx > 0 {
			physics.WallDir = 1
		} else {
			physics.WallDir = -1
		}
	}
}

// resolveVertical moves the object by VelY*dt. Platforms only catch objects
// falling onto their top edge and are skipped while dropping through.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dt float64, dropThrough bool) {
	physics.OnGround = nil
	dy := physics.VelY * dt

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			physics.VelY = 0
			object.Y += check.ContactWithObject(solids[0]).Y()
			return
		}
		object.Y += dy
		return
	}

	// Falling: platforms first, then solids
	if !dropThrough {
		if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
			platform := platforms[0]
			// Only land when coming down onto the top edge
			if object.Bottom() <= platform.Y+4 {
				physics.OnGround = platform
				physics.VelY = 0
				physics.WallSliding = nil
				object.Y += check.ContactWithObject(platform).Y()
				return
			}
		}
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.OnGround = solids[0]
		physics.VelY = 0
		physics.WallSliding = nil
		object.Y += check.ContactWithObject(solids[0]).Y()
		return
	}

	object.Y += dy
}

// updateWallSliding disengages the wall slide when the wall is gone or the
// player grounded.
func updateWallSliding(physics *components.PhysicsData, object *resolv.Object, facingX float64) {
	if physics.WallSliding == nil {
		return
	}
	if physics.OnGround != nil {
		physics.WallSliding = nil
		physics.WallDir = 0
		return
	}
	if check := object.Check(float64(physics.WallDir), 0, tags.ResolvSolid); check == nil {
		physics.WallSliding = nil
		physics.WallDir = 0
	}
}

func hitDeadZone(obj *resolv.Object) bool {
	return obj.Check(0, 0, tags.ResolvDeadZone) != nil
}

// handlePlayerDeadZone damages the player and respawns them at the last safe
// ground position.
func handlePlayerDeadZone(e *ecs.ECS, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount: 25,
		Source: components.DamageFromEnvironment,
	})
	TriggerScreenShake(e, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)

	obj.X = player.LastSafeX
	obj.Y = player.LastSafeY
	physics.VelX = 0
	physics.VelY = 0
}
