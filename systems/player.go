package systems

import (
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer drives the player state machine: movement, jump feel timers,
// dashing and damage response. Attack and shield inputs are forwarded to
// their own systems' entry points.
func UpdatePlayer(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		updateSinglePlayer(e, entry)
	})
}

func updateSinglePlayer(e *ecs.ECS, entry *donburi.Entry) {
	dt := DT(e)

	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	shield := components.Shield.Get(entry)
	obj := components.Object.Get(entry).Object
	input := getOrCreateInput(e)

	state.StateTimer += dt
	tickPlayerTimers(player, dt)
	if checkLevelUp(player) {
		unlockWeapons(player, components.Combat.Get(entry))
	}

	if state.CurrentState == cfg.Dying {
		return
	}

	// Hurt stun runs out before anything else is processed
	if state.CurrentState == cfg.Hurt {
		if player.HurtTimer <= 0 {
			state.SetState(movementState(physics))
		}
		return
	}

	// Coyote window: refreshed on ground, ticks down in the air
	if physics.OnGround != nil {
		if !player.WasOnGround {
			onPlayerLanded(e, entry, obj)
		}
		player.CoyoteTimer = cfg.Player.CoyoteTime
		player.WasOnGround = true
	} else {
		player.CoyoteTimer -= dt
		player.WasOnGround = false
	}

	if state.CurrentState == cfg.Dashing {
		updateDash(e, entry, input, player, physics, state, obj)
		return
	}

	handleMovementInput(input, player, physics, state, dt)
	handleJumpInput(e, input, player, physics, state, obj)
	handleDashInput(e, input, player, physics, state)
	handleAttackInput(e, entry, input, physics, state)

	// Shield intent is read by the shield system; the movement state just
	// mirrors it while grounded.
	shieldHeld := input.Action(cfg.ActionShield).Pressed

	resolvePlayerState(input, player, physics, shield, state, obj, shieldHeld)
}

func tickPlayerTimers(player *components.PlayerData, dt float64) {
	if player.InvulnTimer > 0 {
		player.InvulnTimer -= dt
	}
	if player.HurtTimer > 0 {
		player.HurtTimer -= dt
	}
	if player.DashCooldownTimer > 0 {
		player.DashCooldownTimer -= dt
	}
}

// XPToNextLevel is the XP needed to go from the given level to the next.
func XPToNextLevel(level int) int {
	return level * 100
}

// checkLevelUp consumes banked XP into levels. Multiple level-ups in one
// frame are allowed after a big combo payout. Reports whether any level
// was gained.
func checkLevelUp(player *components.PlayerData) bool {
	leveled := false
	for player.XP >= XPToNextLevel(player.Level) {
		player.XP -= XPToNextLevel(player.Level)
		player.Level++
		leveled = true
	}
	return leveled
}

// unlockWeapons adds every weapon the player's level now allows and equips
// the strongest one, ranked by required level.
func unlockWeapons(player *components.PlayerData, combat *components.CombatData) {
	for id, weapon := range cfg.Weapons {
		if weapon.RequiredLevel > player.Level {
			continue
		}
		if combat.OwnsWeapon(id) {
			continue
		}
		combat.OwnedWeapons = append(combat.OwnedWeapons, id)
		if weapon.RequiredLevel >= combat.EquippedWeapon.RequiredLevel {
			combat.EquippedWeapon = weapon
		}
	}
}

func onPlayerLanded(e *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	PlaySFX(e, cfg.SoundLand)
	TriggerSquashStretch(entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H, "player_landing")
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, dt float64) {
	if state.CurrentState == cfg.Shielding && physics.OnGround != nil {
		return // planted while blocking
	}

	accel := cfg.Player.Acceleration * dt
	speedCap := cfg.Player.MoveSpeed
	if state.CurrentState == cfg.Ducking {
		speedCap *= cfg.Player.DuckSpeedFactor
	}
	physics.MaxSpeed = speedCap

	if input.Action(cfg.ActionMoveRight).Pressed {
		physics.VelX += accel
		player.Direction.X = cfg.DirectionRight
	}
	if input.Action(cfg.ActionMoveLeft).Pressed {
		physics.VelX -= accel
		player.Direction.X = cfg.DirectionLeft
	}
}

func handleJumpInput(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object) {
	// Variable jump height: rising without the button held halves the rise,
	// even when the release happened during a frozen frame
	if player.JumpCutReady && !input.Action(cfg.ActionJump).Pressed {
		if physics.VelY < 0 {
			physics.VelY *= cfg.Player.JumpCutMultiplier
		}
		player.JumpCutReady = false
	}

	// Wall jump consumes the press before the coyote check
	if physics.WallSliding != nil {
		if input.ConsumeBuffered(cfg.ActionJump) {
			physics.VelY = -cfg.Player.JumpSpeed * cfg.Player.WallJumpFactor
			physics.VelX = -float64(physics.WallDir) * cfg.Player.WallJumpPush
			player.Direction.X = -float64(physics.WallDir)
			physics.WallSliding = nil
			physics.WallDir = 0
			player.JumpCutReady = true
			PlaySFX(e, cfg.SoundJump)
			SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H, "player_jump")
		}
		return
	}

	canJump := physics.OnGround != nil || player.CoyoteTimer > 0
	if !canJump {
		return
	}
	if !input.ConsumeBuffered(cfg.ActionJump) {
		return
	}

	physics.VelY = -cfg.Player.JumpSpeed
	player.CoyoteTimer = 0
	player.JumpCutReady = true
	PlaySFX(e, cfg.SoundJump)
	TriggerSquashStretchFor(e, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H, "player_jump")
}

func handleDashInput(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData) {
	if player.DashCooldownTimer > 0 {
		return
	}
	if !input.ConsumeBuffered(cfg.ActionDash) {
		return
	}

	player.DashTimer = cfg.Player.DashDuration
	player.DashDir = player.Direction.X
	player.InvulnTimer = cfg.Player.DashDuration // dash frames are invulnerable
	physics.VelX = player.DashDir * cfg.Player.DashSpeed
	physics.VelY = 0
	physics.GravityOff = true
	physics.MaxSpeed = cfg.Player.DashSpeed
	state.SetState(cfg.Dashing)
	PlaySFX(e, cfg.SoundDash)
}

func updateDash(e *ecs.ECS, entry *donburi.Entry, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, obj *resolv.Object) {
	dt := DT(e)
	player.DashTimer -= dt

	// Hold the dash speed against damping
	physics.VelX = player.DashDir * cfg.Player.DashSpeed
	physics.VelY = 0
	SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H/2, "dash_trail")

	// Attacking mid-dash converts the dash into a lunging strike
	if input.ConsumeBuffered(cfg.ActionAttack) {
		AttemptAttack(e, entry, cfg.AttackDash, physics.OnGround != nil)
	}

	if player.DashTimer <= 0 {
		physics.VelX *= cfg.Player.DashEndDamp
		physics.GravityOff = false
		physics.MaxSpeed = cfg.Player.MoveSpeed
		player.DashCooldownTimer = cfg.Player.DashCooldown
		state.SetState(movementState(physics))
	}
}

func handleAttackInput(e *ecs.ECS, entry *donburi.Entry, input *components.InputData, physics *components.PhysicsData, state *components.StateData) {
	if state.CurrentState == cfg.Shielding {
		return
	}

	airborne := physics.OnGround == nil

	if input.ConsumeBuffered(cfg.ActionAttack) {
		attackType := cfg.AttackLight
		if airborne {
			attackType = cfg.AttackAerial
		}
		AttemptAttack(e, entry, attackType, !airborne)
		return
	}
	if input.ConsumeBuffered(cfg.ActionHeavyAttack) {
		AttemptAttack(e, entry, cfg.AttackHeavy, !airborne)
		return
	}
	if input.Action(cfg.ActionSpecialAttack).JustPressed {
		AttemptAttack(e, entry, cfg.AttackSpecial, !airborne)
	}
}

// resolvePlayerState picks the display state from physics and intents. Locked
// states (Dashing, Hurt, Dying) return before reaching here.
func resolvePlayerState(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, shield *components.ShieldData, state *components.StateData, obj *resolv.Object, shieldHeld bool) {
	grounded := physics.OnGround != nil

	switch {
	case shield.State != cfg.ShieldInactive && shield.State != cfg.ShieldBroken && shield.State != cfg.ShieldRecharging:
		state.SetState(cfg.Shielding)
	case grounded && input.Action(cfg.ActionDuck).Pressed:
		enterDuck(state, obj)
	case physics.WallSliding != nil:
		state.SetState(cfg.WallSliding)
	default:
		if state.CurrentState == cfg.Ducking {
			if !tryStandUp(obj) {
				return // blocked above, stay ducked
			}
		}
		state.SetState(movementState(physics))
	}
}

func movementState(physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.WallSliding != nil:
		return cfg.WallSliding
	case physics.OnGround == nil && physics.VelY < 0:
		return cfg.Jumping
	case physics.OnGround == nil:
		return cfg.Falling
	case physics.VelX != 0:
		return cfg.Running
	default:
		return cfg.Standing
	}
}

func enterDuck(state *components.StateData, obj *resolv.Object) {
	state.SetState(cfg.Ducking)
	if obj.H > cfg.Player.DuckHeight {
		diff := obj.H - cfg.Player.DuckHeight
		obj.H = cfg.Player.DuckHeight
		obj.Y += diff
	}
}

// tryStandUp restores the full collision height when the space above is free.
func tryStandUp(obj *resolv.Object) bool {
	normalHeight := cfg.Player.CollisionHeight
	if obj.H >= normalHeight {
		return true
	}
	diff := normalHeight - obj.H
	if obj.Check(0, -diff, "solid") != nil {
		return false
	}
	obj.H = normalHeight
	obj.Y -= diff
	return true
}

// TriggerSquashStretchFor applies squash/stretch to the player singleton.
func TriggerSquashStretchFor(e *ecs.ECS, scaleX, scaleY float64) {
	if entry, ok := components.Player.First(e.World); ok {
		TriggerSquashStretch(entry, scaleX, scaleY)
	}
}
