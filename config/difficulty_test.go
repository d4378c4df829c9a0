package config

import "testing"

func TestArchetypeParamsNormalBaseline(t *testing.T) {
	base := Difficulty.Archetypes["ninja"]
	got := ArchetypeParams("ninja", "normal")

	if got.MaxHealth != base.MaxHealth {
		t.Errorf("MaxHealth = %d, want %d", got.MaxHealth, base.MaxHealth)
	}
	if got.MoveSpeed != base.MoveSpeed {
		t.Errorf("MoveSpeed = %v, want %v", got.MoveSpeed, base.MoveSpeed)
	}
	if got.AttackDamage != base.AttackDamage {
		t.Errorf("AttackDamage = %d, want %d", got.AttackDamage, base.AttackDamage)
	}
}

func TestArchetypeParamsHardScaling(t *testing.T) {
	base := Difficulty.Archetypes["crocodile"]
	scale := Difficulty.Presets["hard"]
	got := ArchetypeParams("crocodile", "hard")

	if want := int(float64(base.AttackDamage) * scale.DamageScale); got.AttackDamage != want {
		t.Errorf("AttackDamage = %d, want %d", got.AttackDamage, want)
	}
	if want := base.MoveSpeed * scale.SpeedScale; got.MoveSpeed != want {
		t.Errorf("MoveSpeed = %v, want %v", got.MoveSpeed, want)
	}
	if want := base.SightRange * scale.SightScale; got.SightRange != want {
		t.Errorf("SightRange = %v, want %v", got.SightRange, want)
	}
	if want := int(float64(base.MaxHealth) * scale.HealthScale); got.MaxHealth != want {
		t.Errorf("MaxHealth = %d, want %d", got.MaxHealth, want)
	}
}

func TestArchetypeParamsUnknownArchetypeFallsBack(t *testing.T) {
	got := ArchetypeParams("no_such_enemy", "normal")
	croc := ArchetypeParams("crocodile", "normal")

	if got.MaxHealth != croc.MaxHealth || got.AttackRange != croc.AttackRange {
		t.Errorf("unknown archetype got %+v, want crocodile baseline %+v", got, croc)
	}
}

func TestArchetypeParamsUnknownPresetFallsBack(t *testing.T) {
	got := ArchetypeParams("wizard", "no_such_preset")
	normal := ArchetypeParams("wizard", Difficulty.Default)

	if got.AttackDamage != normal.AttackDamage || got.MoveSpeed != normal.MoveSpeed {
		t.Errorf("unknown preset got %+v, want default preset %+v", got, normal)
	}
}

func TestEmbeddedDifficultyComplete(t *testing.T) {
	if Difficulty.Default != "normal" {
		t.Errorf("Default = %q, want %q", Difficulty.Default, "normal")
	}
	for _, preset := range []string{"easy", "normal", "hard"} {
		if _, ok := Difficulty.Presets[preset]; !ok {
			t.Errorf("preset %q missing", preset)
		}
	}
	for _, archetype := range []string{"ninja", "wizard", "crocodile", "dangertree"} {
		if _, ok := Difficulty.Archetypes[archetype]; !ok {
			t.Errorf("archetype %q missing", archetype)
		}
	}
}

func TestDangertreeIsStationary(t *testing.T) {
	p := ArchetypeParams("dangertree", "normal")
	if p.MoveSpeed != 0 {
		t.Errorf("dangertree MoveSpeed = %v, want 0", p.MoveSpeed)
	}
	if p.PatrolRadius != 0 {
		t.Errorf("dangertree PatrolRadius = %v, want 0", p.PatrolRadius)
	}
}
