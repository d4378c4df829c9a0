package systems

import (
	"math"

	"github.com/mossforge/forestfall/ai"
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const deathSequenceTime = 1.0 // seconds before a dead entity is resolved

// enemyStunThreshold is the hit-stun above which a hit staggers an enemy
// instead of just alerting it. Heavy and special attacks cross it.
const enemyStunThreshold = 0.5

// canAttack checks the attack against the attacker's current swing and
// stance. Light attacks chain through an active swing; aerials need air,
// heavy and special attacks need ground.
func canAttack(combat *components.CombatData, attackType cfg.AttackType, onGround bool) bool {
	if combat.IsAttacking && attackType != cfg.AttackLight {
		return false
	}
	if combat.RecoveryTimer > 0 {
		return false
	}
	if attackType == cfg.AttackAerial && onGround {
		return false
	}
	if (attackType == cfg.AttackHeavy || attackType == cfg.AttackSpecial) && !onGround {
		return false
	}
	return true
}

// AttemptAttack starts an attack for an entity with a Combat component.
// Returns false when the attack is gated or stamina runs short.
func AttemptAttack(e *ecs.ECS, entry *donburi.Entry, attackType cfg.AttackType, onGround bool) bool {
	combat := components.Combat.Get(entry)

	if !canAttack(combat, attackType, onGround) {
		return false
	}

	attack, ok := cfg.AttackFor(combat.EquippedWeapon, attackType)
	if !ok {
		return false
	}
	if combat.Stamina < attack.StaminaCost {
		return false
	}

	combat.Stamina -= attack.StaminaCost
	combat.StaminaDelayTimer = cfg.Combat.Stamina.RegenDelay
	combat.IsAttacking = true
	combat.AttackTimer = attack.Duration
	// Recovery runs concurrently with the swing, so a light chain opens up
	// as soon as the recovery lapses
	combat.RecoveryTimer = attack.Recovery
	combat.CurrentAttack = &attack
	combat.Stats.AttacksMade++

	PlaySFX(e, cfg.SoundAttackSwing)
	CreateHitbox(e, entry, attack, entry.HasComponent(components.Player))

	// Swings make noise enemies can hear
	obj := components.Object.Get(entry)
	EmitNoise(e, obj.X+obj.W/2, obj.Y+obj.H/2)

	return true
}

// UpdateCombat advances attack and stamina timers, decays combos, resolves
// queued damage events and handles deaths.
func UpdateCombat(e *ecs.ECS) {
	dt := DT(e)

	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		combat := components.Combat.Get(entry)

		if combat.AttackTimer > 0 {
			combat.AttackTimer -= dt
			if combat.AttackTimer <= 0 {
				combat.IsAttacking = false
				combat.CurrentAttack = nil
			}
		}
		if combat.RecoveryTimer > 0 {
			combat.RecoveryTimer -= dt
		}

		// Stamina regen after a short delay
		if combat.StaminaDelayTimer > 0 {
			combat.StaminaDelayTimer -= dt
		} else if combat.Stamina < cfg.Combat.Stamina.Max {
			combat.Stamina += cfg.Combat.Stamina.RegenRate * dt
			if combat.Stamina > cfg.Combat.Stamina.Max {
				combat.Stamina = cfg.Combat.Stamina.Max
			}
		}

		// Combo window: letting it lapse resets the chain
		if combat.Combo.Timer > 0 {
			combat.Combo.Timer -= dt
			if combat.Combo.Timer <= 0 {
				combat.Combo.Count = 0
				combat.Combo.DamageMultiplier = 1.0
				combat.Combo.XPMultiplier = 1.0
			}
		}
	})

	processDamageEvents(e)
	resolveHealth(e)
}

// RegisterComboHit advances the hit chain and recomputes the tier
// multipliers. Tiers switch abruptly at their thresholds.
func RegisterComboHit(combat *components.CombatData) {
	combat.Combo.Count++
	combat.Combo.Timer = cfg.Combat.ComboWindow
	if combat.Combo.Count > combat.Combo.MaxCombo {
		combat.Combo.MaxCombo = combat.Combo.Count
	}

	combat.Combo.DamageMultiplier = 1.0
	combat.Combo.XPMultiplier = 1.0
	for _, tier := range cfg.Combat.ComboTiers {
		if combat.Combo.Count >= tier.Hits {
			combat.Combo.DamageMultiplier = tier.DamageMultiplier
			combat.Combo.XPMultiplier = tier.XPMultiplier
		}
	}
}

// comboCritBonus is the extra crit chance granted by a running combo.
func comboCritBonus(count int) float64 {
	bonus := float64(count) * cfg.Combat.CritComboRate
	return math.Min(cfg.Combat.CritComboCap, bonus)
}

func processDamageEvents(e *ecs.ECS) {
	for entry := range components.DamageEvent.Iter(e.World) {
		dmg := components.DamageEvent.Get(entry)

		switch {
		case entry.HasComponent(components.Player):
			applyDamageToPlayer(e, entry, dmg)
		case entry.HasComponent(components.Enemy):
			applyDamageToEnemy(e, entry, dmg)
		default:
			if entry.HasComponent(components.Health) {
				components.Health.Get(entry).Current -= dmg.Amount
			}
		}

		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}
}

func applyDamageToPlayer(e *ecs.ECS, entry *donburi.Entry, dmg *components.DamageEventData) {
	player := components.Player.Get(entry)
	if player.InvulnTimer > 0 {
		return
	}

	amount := dmg.Amount
	blocked := false
	if dmg.Source != components.DamageFromEnvironment {
		amount, blocked = BlockAttack(e, entry, dmg.Amount, dmg.SourceX)
	}
	if amount <= 0 {
		return
	}

	hp := components.Health.Get(entry)
	hp.Current -= amount

	physics := components.Physics.Get(entry)
	if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
		// Blocked hits push but don't stagger
		scale := 1.0
		if blocked {
			scale = 0.3
		}
		physics.VelX = dmg.KnockbackX * scale
		physics.VelY = dmg.KnockbackY * scale
	}

	if !blocked {
		state := components.State.Get(entry)
		state.SetState(cfg.Hurt)
		player.HurtTimer = cfg.Player.HurtDuration
		player.InvulnTimer = cfg.Player.InvulnDuration
		PlaySFX(e, cfg.SoundPlayerHurt)
		TriggerDamageFlash(entry)
		TriggerScreenShake(e, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
	}
}

func applyDamageToEnemy(e *ecs.ECS, entry *donburi.Entry, dmg *components.DamageEventData) {
	enemy := components.Enemy.Get(entry)
	if enemy.InvulnTimer > 0 {
		return
	}

	hp := components.Health.Get(entry)
	hp.Current -= dmg.Amount

	physics := components.Physics.Get(entry)
	if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
		physics.VelX = dmg.KnockbackX
		physics.VelY = dmg.KnockbackY
	}

	// Getting hit reveals the attacker: full alert, remembered position,
	// audible to nearby allies.
	source := ai.Vec2{X: dmg.SourceX, Y: dmg.SourceY}
	if enemy.Agent != nil {
		enemy.Agent.Sensors.RegisterNoise(source)
		enemy.Agent.Sensors.ForceAlert(cfg.AlertCombat)
		enemy.Agent.Sensors.SetLastKnown(source)
	}

	state := components.State.Get(entry)
	switch {
	case dmg.HitStun >= enemyStunThreshold:
		// Heavy hits stagger outright
		state.SetState(cfg.EnemyStunned)
		enemy.StunTimer = enemy.Params.StunRecovery
		if dmg.HitStun > enemy.StunTimer {
			enemy.StunTimer = dmg.HitStun
		}
	case state.CurrentState != cfg.EnemyChase && state.CurrentState != cfg.EnemyAttack:
		// A surprised enemy goes looking for the attacker right away
		state.SetState(cfg.EnemySearch)
		enemy.SearchTarget = components.Vector{X: dmg.SourceX, Y: dmg.SourceY}
		enemy.SearchTimer = 0
		if enemy.Agent != nil {
			enemy.Agent.ForceDecision(ai.DecideSearch)
		}
	}

	TriggerHitFlash(entry)
}

// resolveHealth clamps health and starts death sequences.
func resolveHealth(e *ecs.ECS) {
	for entry := range components.Health.Iter(e.World) {
		hp := components.Health.Get(entry)
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current > 0 {
			continue
		}
		hp.Current = 0

		if !entry.HasComponent(components.State) {
			continue
		}
		state := components.State.Get(entry)

		switch {
		case entry.HasComponent(components.Player):
			if state.CurrentState != cfg.Dying {
				startPlayerDeath(e, entry, state)
			} else if state.StateTimer >= deathSequenceTime {
				finishRun(e)
			}
		case entry.HasComponent(components.Enemy):
			if state.CurrentState != cfg.EnemyDying {
				startEnemyDeath(e, entry, state)
			} else if state.StateTimer >= deathSequenceTime {
				removeEnemy(e, entry)
			}
		}
	}
}

func startPlayerDeath(e *ecs.ECS, entry *donburi.Entry, state *components.StateData) {
	state.SetState(cfg.Dying)
	PlaySFX(e, cfg.SoundPlayerDeath)
	TriggerScreenShake(e, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)

	physics := components.Physics.Get(entry)
	physics.VelX = 0
	physics.VelY = 0
}

func startEnemyDeath(e *ecs.ECS, entry *donburi.Entry, state *components.StateData) {
	state.SetState(cfg.EnemyDying)
	PlaySFX(e, cfg.SoundEnemyDeath)
	TriggerHitStop(e, cfg.Combat.HitStopFramesKill)

	obj := components.Object.Get(entry)
	SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H/2, "enemy_death")

	addScore(e, cfg.Score.PointsEnemyKill)
	recordEnemyKill(e)
}

func removeEnemy(e *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		obj := components.Object.Get(entry)
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}

// EmitNoise registers a sound event with every enemy's hearing.
func EmitNoise(e *ecs.ECS, x, y float64) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Agent != nil {
			enemy.Agent.Sensors.RegisterNoise(ai.Vec2{X: x, Y: y})
		}
	})
}
