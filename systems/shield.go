package systems

import (
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShield runs the shield state machine. Energy drains while the shield
// is up, regenerates after a delay, and a shield raised within the perfect
// window negates a hit entirely.
func UpdateShield(e *ecs.ECS) {
	dt := DT(e)
	input := getOrCreateInput(e)

	components.Shield.Each(e.World, func(entry *donburi.Entry) {
		shield := components.Shield.Get(entry)
		held := input.Action(cfg.ActionShield).Pressed

		shield.StateTimer += dt
		if shield.RegenDelayTimer > 0 {
			shield.RegenDelayTimer -= dt
		}
		if shield.PerfectWindowTimer > 0 {
			shield.PerfectWindowTimer -= dt
		}

		switch shield.State {
		case cfg.ShieldInactive:
			regenerate(shield, dt)
			if held && shield.Energy > 0 {
				setShieldState(shield, cfg.ShieldRaising)
				shield.PerfectWindowTimer = cfg.Shield.PerfectWindow
				PlaySFX(e, cfg.SoundShieldRaise)
			}

		case cfg.ShieldRaising:
			if !held {
				setShieldState(shield, cfg.ShieldLowering)
				break
			}
			if shield.StateTimer >= cfg.Shield.RaiseTime {
				setShieldState(shield, cfg.ShieldActive)
			}

		case cfg.ShieldActive:
			shield.Energy -= cfg.Shield.DrainRate * dt
			if shield.Energy <= 0 {
				shield.Energy = 0
				breakShield(e, entry, shield)
				break
			}
			if !held {
				setShieldState(shield, cfg.ShieldLowering)
			}

		case cfg.ShieldPerfectBlock:
			if shield.StateTimer >= cfg.Shield.PerfectDisplayTime {
				if held {
					setShieldState(shield, cfg.ShieldActive)
				} else {
					setShieldState(shield, cfg.ShieldLowering)
				}
			}

		case cfg.ShieldLowering:
			if shield.StateTimer >= cfg.Shield.LowerTime {
				setShieldState(shield, cfg.ShieldInactive)
			}

		case cfg.ShieldBroken:
			regenerate(shield, dt)
			if shield.Energy >= cfg.Shield.BrokenRecoverAt*cfg.Shield.MaxEnergy {
				setShieldState(shield, cfg.ShieldRecharging)
			}

		case cfg.ShieldRecharging:
			regenerate(shield, dt)
			if shield.StateTimer >= cfg.Shield.RechargeTime {
				setShieldState(shield, cfg.ShieldInactive)
			}
		}
	})
}

func setShieldState(shield *components.ShieldData, state cfg.ShieldState) {
	shield.State = state
	shield.StateTimer = 0
}

func regenerate(shield *components.ShieldData, dt float64) {
	if shield.RegenDelayTimer > 0 {
		return
	}
	shield.Energy += cfg.Shield.RegenRate * dt
	if shield.Energy > cfg.Shield.MaxEnergy {
		shield.Energy = cfg.Shield.MaxEnergy
	}
}

func breakShield(e *ecs.ECS, entry *donburi.Entry, shield *components.ShieldData) {
	setShieldState(shield, cfg.ShieldBroken)
	shield.RegenDelayTimer = cfg.Shield.RegenDelay
	PlaySFX(e, cfg.SoundShieldBreak)
	TriggerScreenShake(e, cfg.ScreenShake.ShieldBreakIntensity, cfg.ScreenShake.ShieldBreakDuration)
	if obj := components.Object.Get(entry); obj != nil {
		SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H/2, "shield_break")
	}
}

// shieldUp reports whether the shield can intercept hits right now.
func shieldUp(state cfg.ShieldState) bool {
	return state == cfg.ShieldRaising || state == cfg.ShieldActive || state == cfg.ShieldPerfectBlock
}

// BlockAttack filters incoming damage through the shield. It returns the
// damage that still lands and whether the hit was blocked at all. Attacks
// from behind pass straight through.
func BlockAttack(e *ecs.ECS, entry *donburi.Entry, damage int, sourceX float64) (remaining int, blocked bool) {
	shield := components.Shield.Get(entry)
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	// Broken shields still soak a sliver of the hit
	if shield.State == cfg.ShieldBroken || shield.State == cfg.ShieldRecharging {
		soaked := float64(damage) * cfg.Shield.BrokenReduction
		shield.Stats.DamageBlocked += soaked
		return damage - int(soaked), false
	}

	if !shieldUp(shield.State) {
		return damage, false
	}

	// Facing check: the attack must come from the shield side
	attackFromRight := sourceX >= obj.X+obj.W/2
	facingRight := player.Direction.X > 0
	if attackFromRight != facingRight {
		return damage, false
	}

	// Perfect block: raised just before the hit landed
	if shield.PerfectWindowTimer > 0 {
		shield.Stats.PerfectBlocks++
		shield.Stats.BlocksTotal++
		shield.Stats.DamageBlocked += float64(damage)
		shield.PerfectWindowTimer = 0
		setShieldState(shield, cfg.ShieldPerfectBlock)
		shield.PerfectDisplayTimer = cfg.Shield.PerfectDisplayTime

		player.XP += cfg.Shield.PerfectBlockXP
		addScore(e, cfg.Score.PointsPerfectBlock)
		recordPerfectBlock(e)

		PlaySFX(e, cfg.SoundPerfectBlock)
		TriggerHitStop(e, cfg.Combat.HitStopFramesCrit)
		SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H/2, "perfect_block")
		return 0, true
	}

	// Normal block: damage and energy both take a cut. A hit past the break
	// threshold breaks the shield and this hit only gets the broken
	// reduction.
	reduction := cfg.Shield.DamageReduction
	breaking := float64(damage) >= cfg.Shield.BreakThreshold
	if breaking {
		reduction = cfg.Shield.BrokenReduction
	}

	absorbed := float64(damage) * reduction
	remaining = damage - int(absorbed)
	shield.Energy -= absorbed * cfg.Shield.EnergyCostFactor
	if shield.Energy < 0 {
		shield.Energy = 0
	}
	shield.RegenDelayTimer = cfg.Shield.RegenDelay
	shield.Stats.BlocksTotal++
	shield.Stats.DamageBlocked += absorbed

	PlaySFX(e, cfg.SoundShieldBlock)
	SpawnPreset(e, obj.X+obj.W/2, obj.Y+obj.H/2, "shield_block")

	// Exhaustion breaks the shield too
	if breaking || shield.Energy <= 0 {
		breakShield(e, entry, shield)
	}
	return remaining, true
}
