package config

import "testing"

func TestAttackForDamageScaling(t *testing.T) {
	sword := Weapons["iron_sword"]

	cases := []struct {
		attack     AttackType
		wantDamage int
	}{
		{AttackLight, int(float64(sword.BaseDamage) * 0.8)},
		{AttackHeavy, int(float64(sword.BaseDamage) * 1.5)},
		{AttackDash, int(float64(sword.BaseDamage) * 1.2)},
		{AttackAerial, int(float64(sword.BaseDamage) * 1.1)},
		{AttackSpecial, int(float64(sword.BaseDamage) * 2.0)},
	}
	for _, c := range cases {
		atk, ok := AttackFor(sword, c.attack)
		if !ok {
			t.Fatalf("AttackFor(sword, %s) returned false", c.attack)
		}
		if atk.Damage != c.wantDamage {
			t.Errorf("AttackFor(sword, %s).Damage = %d, want %d", c.attack, atk.Damage, c.wantDamage)
		}
	}
}

func TestAttackForFistsHaveNoSpecial(t *testing.T) {
	if _, ok := AttackFor(DefaultWeapon, AttackSpecial); ok {
		t.Error("fists should have no special attack")
	}
}

func TestAttackForHeavyCostsMoreThanLight(t *testing.T) {
	light, _ := AttackFor(DefaultWeapon, AttackLight)
	heavy, _ := AttackFor(DefaultWeapon, AttackHeavy)

	if heavy.StaminaCost <= light.StaminaCost {
		t.Errorf("heavy stamina cost %v should exceed light %v", heavy.StaminaCost, light.StaminaCost)
	}
	if heavy.Recovery <= light.Recovery {
		t.Errorf("heavy recovery %v should exceed light %v", heavy.Recovery, light.Recovery)
	}
	if heavy.Knockback <= light.Knockback {
		t.Errorf("heavy knockback %v should exceed light %v", heavy.Knockback, light.Knockback)
	}
}

func TestSpecialAttacksPerWeaponType(t *testing.T) {
	cases := map[string]string{
		"iron_sword":   "Sword Slash",
		"forest_gun":   "Rapid Fire",
		"nature_staff": "Nature Burst",
	}
	for id, wantName := range cases {
		weapon, ok := Weapons[id]
		if !ok {
			t.Fatalf("weapon %q missing from catalog", id)
		}
		atk, ok := AttackFor(weapon, AttackSpecial)
		if !ok {
			t.Fatalf("AttackFor(%s, special) returned false", id)
		}
		if atk.Name != wantName {
			t.Errorf("special for %s = %q, want %q", id, atk.Name, wantName)
		}
	}
}

func TestWeaponCatalogLevels(t *testing.T) {
	fists := Weapons["fists"]
	if fists.RequiredLevel != 0 {
		t.Errorf("fists RequiredLevel = %d, want 0", fists.RequiredLevel)
	}
	prev := 0
	for _, id := range []string{"iron_sword", "forest_gun", "nature_staff"} {
		w := Weapons[id]
		if w.RequiredLevel <= prev {
			t.Errorf("%s RequiredLevel = %d, should exceed %d", id, w.RequiredLevel, prev)
		}
		prev = w.RequiredLevel
	}
}
