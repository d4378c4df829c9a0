package systems

import (
	"math/rand"

	"github.com/mossforge/forestfall/archetypes"
	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
	"github.com/mossforge/forestfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var critRng = rand.New(rand.NewSource(rand.Int63()))

// CreateHitbox spawns an attack hitbox in front of the owner. The hitbox
// follows its owner and expires after the attack's active duration.
func CreateHitbox(e *ecs.ECS, owner *donburi.Entry, attack cfg.AttackData, fromPlayer bool) *donburi.Entry {
	ownerObject := components.Object.Get(owner).Object
	facingRight := ownerFacing(owner) > 0

	w := attack.Range
	h := cfg.Combat.HitboxHeight
	x, y := hitboxPosition(ownerObject, w, h, facingRight)

	hitbox := archetypes.Hitbox.Spawn(e)

	hitboxObject := resolv.NewObject(x, y, w, h)
	hitboxObject.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: hitboxObject})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(hitboxObject)
	}

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity: owner,
		Attack:      attack,
		Lifetime:    attack.Duration,
		HitEntities: make(map[*donburi.Entry]bool),
		FacingRight: facingRight,
		FromPlayer:  fromPlayer,
	})

	if owner.HasComponent(components.Enemy) {
		components.Enemy.Get(owner).ActiveHitbox = hitbox
	}
	return hitbox
}

// UpdateCombatHitboxes moves live hitboxes with their owners, applies hits
// and retires expired ones.
func UpdateCombatHitboxes(e *ecs.ECS) {
	dt := DT(e)

	tags.Hitbox.Each(e.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		hitboxObject := components.Object.Get(hitboxEntry).Object

		followOwner(hitbox, hitboxObject)
		checkHitboxCollisions(e, hitbox, hitboxObject)

		hitbox.Lifetime -= dt
	})

	cleanupHitboxes(e)
}

func ownerFacing(owner *donburi.Entry) float64 {
	switch {
	case owner.HasComponent(components.Player):
		return components.Player.Get(owner).Direction.X
	case owner.HasComponent(components.Enemy):
		return components.Enemy.Get(owner).Direction.X
	}
	return cfg.DirectionRight
}

func hitboxPosition(ownerObject *resolv.Object, w, h float64, facingRight bool) (float64, float64) {
	var x float64
	if facingRight {
		x = ownerObject.X + ownerObject.W
	} else {
		x = ownerObject.X - w
	}
	y := ownerObject.Y + (ownerObject.H-h)/2
	return x, y
}

func followOwner(hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	owner := hitbox.OwnerEntity
	if owner == nil || !owner.Valid() {
		return
	}
	ownerObject := components.Object.Get(owner).Object
	facingRight := ownerFacing(owner) > 0
	hitboxObject.X, hitboxObject.Y = hitboxPosition(ownerObject, hitboxObject.W, hitboxObject.H, facingRight)
	hitbox.FacingRight = facingRight
}

func checkHitboxCollisions(e *ecs.ECS, hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	if hitbox.OwnerEntity == nil || !hitbox.OwnerEntity.Valid() {
		return
	}

	targetTag := tags.ResolvEnemy
	if !hitbox.FromPlayer {
		targetTag = tags.ResolvPlayer
	}

	check := hitboxObject.Check(0, 0, targetTag)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		targetEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(hitbox, targetEntry) {
			continue
		}
		if hitbox.FromPlayer {
			applyPlayerHit(e, hitbox, targetEntry)
		} else {
			applyEnemyHit(e, hitbox, targetEntry)
		}
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry) bool {
	if hitbox.OwnerEntity == target || hitbox.HitEntities[target] {
		return false
	}
	if target.HasComponent(components.Player) {
		if components.Player.Get(target).InvulnTimer > 0 {
			return false
		}
	}
	if target.HasComponent(components.Enemy) {
		if components.Enemy.Get(target).InvulnTimer > 0 {
			return false
		}
		if components.State.Get(target).CurrentState == cfg.EnemyDying {
			return false
		}
	}
	return true
}

// applyPlayerHit resolves one player attack landing on an enemy: combo and
// crit scaling, XP, knockback and hit feedback.
func applyPlayerHit(e *ecs.ECS, hitbox *components.HitboxData, enemyEntry *donburi.Entry) {
	hitbox.HitEntities[enemyEntry] = true

	owner := hitbox.OwnerEntity
	combat := components.Combat.Get(owner)
	player := components.Player.Get(owner)
	ownerObject := components.Object.Get(owner).Object
	enemyObject := components.Object.Get(enemyEntry).Object

	RegisterComboHit(combat)

	attack := hitbox.Attack
	damage := float64(attack.Damage) * combat.Combo.DamageMultiplier

	critChance := attack.CritChance + comboCritBonus(combat.Combo.Count)
	crit := critRng.Float64() < critChance
	if crit {
		damage *= attack.CritMultiplier
		combat.Stats.Crits++
	}

	combat.Stats.HitsLanded++
	combat.Stats.DamageDealt += int(damage)

	// XP per landed hit, scaled by the combo tier
	xp := float64(cfg.Combat.BaseHitXP) * combat.Combo.XPMultiplier
	if crit {
		xp *= cfg.Combat.CritXPMultiplier
	}
	player.XP += int(xp)

	knockDir := knockbackDirection(ownerObject, enemyObject)
	donburi.Add(enemyEntry, components.DamageEvent, &components.DamageEventData{
		Amount:     int(damage),
		KnockbackX: knockDir * attack.Knockback,
		KnockbackY: -attack.Knockback * 0.3,
		HitStun:    attack.HitStun,
		Crit:       crit,
		Source:     components.DamageFromPlayer,
		SourceX:    ownerObject.X + ownerObject.W/2,
		SourceY:    ownerObject.Y + ownerObject.H/2,
	})
	components.Enemy.Get(enemyEntry).InvulnTimer = 0.1

	hitX := enemyObject.X + enemyObject.W/2
	hitY := enemyObject.Y + enemyObject.H/2
	if crit {
		PlaySFX(e, cfg.SoundCrit)
		TriggerHitStop(e, cfg.Combat.HitStopFramesCrit)
		SpawnPreset(e, hitX, hitY, "crit_hit")
	} else {
		PlaySFX(e, cfg.SoundHit)
		TriggerHitStop(e, cfg.Combat.HitStopFramesNormal)
		SpawnPreset(e, hitX, hitY, "sword_hit")
	}
	TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
}

func applyEnemyHit(e *ecs.ECS, hitbox *components.HitboxData, playerEntry *donburi.Entry) {
	hitbox.HitEntities[playerEntry] = true

	ownerObject := components.Object.Get(hitbox.OwnerEntity).Object
	playerObject := components.Object.Get(playerEntry).Object

	attack := hitbox.Attack
	knockDir := knockbackDirection(ownerObject, playerObject)
	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
		Amount:     attack.Damage,
		KnockbackX: knockDir * attack.Knockback,
		KnockbackY: -attack.Knockback * 0.3,
		HitStun:    attack.HitStun,
		Source:     components.DamageFromEnemy,
		SourceX:    ownerObject.X + ownerObject.W/2,
		SourceY:    ownerObject.Y + ownerObject.H/2,
	})
}

// knockbackDirection pushes the target away from the attacker.
func knockbackDirection(attacker, target *resolv.Object) float64 {
	if target.X+target.W/2 < attacker.X+attacker.W/2 {
		return -1
	}
	return 1
}

func cleanupHitboxes(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Hitbox.Each(e.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		if hitbox.Lifetime > 0 && hitbox.OwnerEntity != nil && hitbox.OwnerEntity.Valid() {
			return
		}
		toRemove = append(toRemove, hitboxEntry)

		owner := hitbox.OwnerEntity
		if owner != nil && owner.Valid() && owner.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(owner)
			if enemy.ActiveHitbox == hitboxEntry {
				enemy.ActiveHitbox = nil
			}
		}
	})

	for _, hitboxEntry := range toRemove {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			obj := components.Object.Get(hitboxEntry)
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		e.World.Remove(hitboxEntry.Entity())
	}
}
