package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
)

// blockSetup readies a player with the shield up and an attack coming from
// the shield side.
func blockSetup(t *testing.T) (*ecs.ECS, *donburi.Entry, *components.ShieldData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := newPlayerEntry(t, e)

	shield := components.Shield.Get(entry)
	shield.State = cfg.ShieldActive
	shield.Energy = cfg.Shield.MaxEnergy
	return e, entry, shield
}

func TestNormalBlockReducesDamageAndEnergy(t *testing.T) {
	e, entry, shield := blockSetup(t)

	remaining, blocked := BlockAttack(e, entry, 30, 200)
	if !blocked {
		t.Fatal("a front hit on an active shield should block")
	}
	absorbed := 30 * cfg.Shield.DamageReduction
	if want := 30 - int(absorbed); remaining != want {
		t.Errorf("remaining = %d, want %d", remaining, want)
	}
	wantEnergy := cfg.Shield.MaxEnergy - absorbed*cfg.Shield.EnergyCostFactor
	if shield.Energy != wantEnergy {
		t.Errorf("energy = %v, want %v", shield.Energy, wantEnergy)
	}
	if shield.State != cfg.ShieldActive {
		t.Errorf("state = %v, a modest hit should not break the shield", shield.State)
	}
}

func TestBreakThresholdHitOnlyGetsBrokenReduction(t *testing.T) {
	e, entry, shield := blockSetup(t)

	// At the break threshold the shield shatters mid-hit, so the hit itself
	// only gets the broken-shield reduction, not the full one.
	damage := int(cfg.Shield.BreakThreshold)
	remaining, blocked := BlockAttack(e, entry, damage, 200)
	if !blocked {
		t.Fatal("the breaking hit still counts as a block")
	}

	absorbed := float64(damage) * cfg.Shield.BrokenReduction
	if want := damage - int(absorbed); remaining != want {
		t.Errorf("remaining = %d, want %d with the broken reduction", remaining, want)
	}
	if shield.State != cfg.ShieldBroken {
		t.Fatalf("state = %v, want broken", shield.State)
	}
	wantEnergy := cfg.Shield.MaxEnergy - absorbed*cfg.Shield.EnergyCostFactor
	if shield.Energy != wantEnergy {
		t.Errorf("energy = %v, want %v", shield.Energy, wantEnergy)
	}
	if shield.Stats.DamageBlocked != absorbed {
		t.Errorf("DamageBlocked = %v, want %v", shield.Stats.DamageBlocked, absorbed)
	}
}

func TestExhaustingBlockClampsEnergyAndBreaks(t *testing.T) {
	e, entry, shield := blockSetup(t)
	shield.Energy = 10

	remaining, blocked := BlockAttack(e, entry, 70, 200)
	if !blocked {
		t.Fatal("hit should block before the energy runs out")
	}
	// Below the break threshold the full reduction applies even though the
	// energy cost overshoots what is left.
	absorbed := 70 * cfg.Shield.DamageReduction
	if want := 70 - int(absorbed); remaining != want {
		t.Errorf("remaining = %d, want %d", remaining, want)
	}
	if shield.Energy != 0 {
		t.Errorf("energy = %v, want clamped to 0", shield.Energy)
	}
	if shield.State != cfg.ShieldBroken {
		t.Errorf("state = %v, an exhausted shield should break", shield.State)
	}
}

func TestPerfectBlockConsumesTheWindow(t *testing.T) {
	e, entry, shield := blockSetup(t)
	shield.PerfectWindowTimer = 0.1

	remaining, blocked := BlockAttack(e, entry, 40, 200)
	if !blocked || remaining != 0 {
		t.Fatalf("perfect block = (%d, %v), want (0, true)", remaining, blocked)
	}
	if shield.Stats.PerfectBlocks != 1 {
		t.Errorf("PerfectBlocks = %d, want 1", shield.Stats.PerfectBlocks)
	}
	if shield.State != cfg.ShieldPerfectBlock {
		t.Errorf("state = %v, want perfect block", shield.State)
	}
	if shield.PerfectWindowTimer != 0 {
		t.Fatalf("PerfectWindowTimer = %v, the window must be consumed", shield.PerfectWindowTimer)
	}

	// The very next hit is an ordinary block.
	remaining, blocked = BlockAttack(e, entry, 40, 200)
	if !blocked || remaining == 0 {
		t.Errorf("second hit = (%d, %v), want a partial normal block", remaining, blocked)
	}
	if shield.Stats.PerfectBlocks != 1 {
		t.Errorf("PerfectBlocks = %d, one window is one perfect block", shield.Stats.PerfectBlocks)
	}
}

func TestAttackFromBehindPassesThrough(t *testing.T) {
	e, entry, _ := blockSetup(t)

	// Facing right, hit from the left.
	remaining, blocked := BlockAttack(e, entry, 30, 0)
	if blocked || remaining != 30 {
		t.Errorf("back hit = (%d, %v), want (30, false)", remaining, blocked)
	}
}

func TestBrokenShieldSoaksSliver(t *testing.T) {
	e, entry, shield := blockSetup(t)
	shield.State = cfg.ShieldBroken

	remaining, blocked := BlockAttack(e, entry, 40, 200)
	if blocked {
		t.Error("a broken shield does not count as blocking")
	}
	soaked := 40 * cfg.Shield.BrokenReduction
	if want := 40 - int(soaked); remaining != want {
		t.Errorf("remaining = %d, want %d", remaining, want)
	}
}
