package components

import (
	"github.com/mossforge/forestfall/config"
	"github.com/yohamta/donburi"
)

// ComboData tracks the hit chain and its multipliers.
type ComboData struct {
	Count            int
	Timer            float64 // seconds left in the combo window
	DamageMultiplier float64
	XPMultiplier     float64
	MaxCombo         int
}

// CombatStats accumulates per-run combat statistics.
type CombatStats struct {
	DamageDealt int
	HitsLanded  int
	Crits       int
	AttacksMade int
}

type CombatData struct {
	EquippedWeapon config.WeaponData
	OwnedWeapons   []string // ids into config.Weapons

	IsAttacking   bool
	AttackTimer   float64
	RecoveryTimer float64
	CurrentAttack *config.AttackData

	Stamina           float64
	StaminaDelayTimer float64

	Combo ComboData
	Stats CombatStats
}

// OwnsWeapon reports whether the weapon id is already in the inventory.
func (c *CombatData) OwnsWeapon(id string) bool {
	for _, owned := range c.OwnedWeapons {
		if owned == id {
			return true
		}
	}
	return false
}

var Combat = donburi.NewComponentType[CombatData]()
