package config

// WeaponData describes one equippable weapon.
type WeaponData struct {
	Name          string
	Type          WeaponType
	BaseDamage    int
	Range         float64
	AttackSpeed   float64
	CritChance    float64
	SpecialAttack string
	RequiredLevel int
}

// AttackData describes one attack move, derived from the equipped weapon.
type AttackData struct {
	Name           string
	Damage         int
	Range          float64
	Duration       float64 // seconds the hitbox stays live
	Recovery       float64 // seconds before the next attack
	StaminaCost    float64
	Knockback      float64 // pixels per second applied to the target
	HitStun        float64 // seconds
	ComboWeight    int
	CritChance     float64
	CritMultiplier float64
}

// Weapons is the equippable weapon catalog keyed by id.
var Weapons map[string]WeaponData

// DefaultWeapon is what the player spawns with.
var DefaultWeapon WeaponData

func init() {
	DefaultWeapon = WeaponData{
		Name:        "Fists",
		Type:        WeaponFists,
		BaseDamage:  15,
		Range:       40,
		AttackSpeed: 1.2,
		CritChance:  0.05,
	}

	Weapons = map[string]WeaponData{
		"fists": DefaultWeapon,
		"iron_sword": {
			Name:          "Iron Sword",
			Type:          WeaponSword,
			BaseDamage:    35,
			Range:         60,
			AttackSpeed:   1.0,
			CritChance:    0.15,
			SpecialAttack: "sword_slash",
			RequiredLevel: 3,
		},
		"forest_gun": {
			Name:          "Forest Gun",
			Type:          WeaponGun,
			BaseDamage:    50,
			Range:         200,
			AttackSpeed:   0.8,
			CritChance:    0.20,
			SpecialAttack: "rapid_fire",
			RequiredLevel: 5,
		},
		"nature_staff": {
			Name:          "Nature Staff",
			Type:          WeaponMagic,
			BaseDamage:    40,
			Range:         120,
			AttackSpeed:   0.6,
			CritChance:    0.25,
			SpecialAttack: "nature_burst",
			RequiredLevel: 8,
		},
	}
}

// AttackFor derives the attack move data for a weapon. Returns false when the
// weapon has no such move (special attacks on weapons without one).
func AttackFor(weapon WeaponData, t AttackType) (AttackData, bool) {
	switch t {
	case AttackLight:
		return AttackData{
			Name:           "Light Attack",
			Damage:         int(float64(weapon.BaseDamage) * 0.8),
			Range:          weapon.Range,
			Duration:       0.2,
			Recovery:       0.3,
			StaminaCost:    10,
			Knockback:      100,
			HitStun:        0.2,
			ComboWeight:    1,
			CritChance:     weapon.CritChance,
			CritMultiplier: 1.5,
		}, true
	case AttackHeavy:
		return AttackData{
			Name:           "Heavy Attack",
			Damage:         int(float64(weapon.BaseDamage) * 1.5),
			Range:          weapon.Range * 1.2,
			Duration:       0.4,
			Recovery:       0.8,
			StaminaCost:    25,
			Knockback:      250,
			HitStun:        0.5,
			ComboWeight:    2,
			CritChance:     weapon.CritChance * 1.5,
			CritMultiplier: 1.5,
		}, true
	case AttackDash:
		return AttackData{
			Name:           "Dash Attack",
			Damage:         int(float64(weapon.BaseDamage) * 1.2),
			Range:          weapon.Range * 1.5,
			Duration:       0.3,
			Recovery:       0.5,
			StaminaCost:    20,
			Knockback:      300,
			HitStun:        0.3,
			ComboWeight:    2,
			CritChance:     weapon.CritChance,
			CritMultiplier: 1.5,
		}, true
	case AttackAerial:
		return AttackData{
			Name:           "Aerial Attack",
			Damage:         int(float64(weapon.BaseDamage) * 1.1),
			Range:          weapon.Range,
			Duration:       0.25,
			Recovery:       0.4,
			StaminaCost:    15,
			Knockback:      200,
			HitStun:        0.3,
			ComboWeight:    1,
			CritChance:     weapon.CritChance,
			CritMultiplier: 1.5,
		}, true
	case AttackSpecial:
		return specialAttackFor(weapon)
	}
	return AttackData{}, false
}

func specialAttackFor(weapon WeaponData) (AttackData, bool) {
	switch weapon.Type {
	case WeaponSword:
		return AttackData{
			Name:           "Sword Slash",
			Damage:         int(float64(weapon.BaseDamage) * 2.0),
			Range:          weapon.Range * 1.8,
			Duration:       0.6,
			Recovery:       1.2,
			StaminaCost:    40,
			Knockback:      400,
			HitStun:        0.8,
			ComboWeight:    3,
			CritChance:     weapon.CritChance * 2.0,
			CritMultiplier: 1.5,
		}, true
	case WeaponGun:
		return AttackData{
			Name:           "Rapid Fire",
			Damage:         int(float64(weapon.BaseDamage) * 0.6),
			Range:          weapon.Range,
			Duration:       1.0,
			Recovery:       1.5,
			StaminaCost:    50,
			Knockback:      150,
			HitStun:        0.1,
			ComboWeight:    1,
			CritChance:     weapon.CritChance,
			CritMultiplier: 1.5,
		}, true
	case WeaponMagic:
		return AttackData{
			Name:           "Nature Burst",
			Damage:         int(float64(weapon.BaseDamage) * 1.8),
			Range:          weapon.Range * 2.0,
			Duration:       0.8,
			Recovery:       2.0,
			StaminaCost:    60,
			Knockback:      300,
			HitStun:        1.0,
			ComboWeight:    4,
			CritChance:     weapon.CritChance * 1.5,
			CritMultiplier: 1.5,
		}, true
	}
	return AttackData{}, false
}
