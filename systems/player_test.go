package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossforge/forestfall/components"
	cfg "github.com/mossforge/forestfall/config"
)

func TestXPToNextLevel(t *testing.T) {
	cases := []struct {
		level, want int
	}{
		{1, 100},
		{2, 200},
		{5, 500},
	}
	for _, c := range cases {
		if got := XPToNextLevel(c.level); got != c.want {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestCheckLevelUp(t *testing.T) {
	p := &components.PlayerData{Level: 1, XP: 50}
	if checkLevelUp(p) {
		t.Error("below threshold should not report a level-up")
	}
	if p.Level != 1 || p.XP != 50 {
		t.Errorf("below threshold: level %d xp %d, want 1/50", p.Level, p.XP)
	}

	p.XP = 120
	if !checkLevelUp(p) {
		t.Error("crossing the threshold should report a level-up")
	}
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	if p.XP != 20 {
		t.Errorf("XP = %d, want 20 carried over", p.XP)
	}

	// A large award can clear several levels in one pass.
	p = &components.PlayerData{Level: 1, XP: 100 + 200 + 30}
	checkLevelUp(p)
	if p.Level != 3 || p.XP != 30 {
		t.Errorf("multi-level: level %d xp %d, want 3/30", p.Level, p.XP)
	}
}

func TestUnlockWeaponsByLevel(t *testing.T) {
	player := &components.PlayerData{Level: 3}
	combat := &components.CombatData{
		EquippedWeapon: cfg.DefaultWeapon,
		OwnedWeapons:   []string{"fists"},
	}

	unlockWeapons(player, combat)
	if !combat.OwnsWeapon("iron_sword") {
		t.Fatal("level 3 should unlock the iron sword")
	}
	if combat.OwnsWeapon("forest_gun") {
		t.Error("level 3 should not unlock the forest gun")
	}
	if combat.EquippedWeapon.Name != "Iron Sword" {
		t.Errorf("equipped %q, a fresh unlock should be equipped", combat.EquippedWeapon.Name)
	}

	player.Level = 8
	unlockWeapons(player, combat)
	if !combat.OwnsWeapon("forest_gun") || !combat.OwnsWeapon("nature_staff") {
		t.Fatal("level 8 should own every weapon")
	}
	if combat.EquippedWeapon.Name != "Nature Staff" {
		t.Errorf("equipped %q, want the strongest unlock", combat.EquippedWeapon.Name)
	}

	// Repeat calls never duplicate inventory entries.
	owned := len(combat.OwnedWeapons)
	unlockWeapons(player, combat)
	if len(combat.OwnedWeapons) != owned {
		t.Errorf("owned %d weapons after re-check, want %d", len(combat.OwnedWeapons), owned)
	}
}

func TestJumpCutAppliesWhileRising(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	obj := resolv.NewObject(0, 0, 16, 32)
	state := &components.StateData{}

	// Button up while rising: the rise is cut even if the release itself
	// happened on a frame the player system never saw.
	input := &components.InputData{}
	player := &components.PlayerData{JumpCutReady: true}
	physics := &components.PhysicsData{VelY: -300}
	handleJumpInput(e, input, player, physics, state, obj)
	if want := -300 * cfg.Player.JumpCutMultiplier; physics.VelY != want {
		t.Errorf("VelY = %v, want %v after the cut", physics.VelY, want)
	}
	if player.JumpCutReady {
		t.Error("a cut jump cannot be cut again")
	}

	// Held button keeps the full rise.
	held := &components.InputData{}
	held.Current[cfg.ActionJump] = true
	player = &components.PlayerData{JumpCutReady: true}
	physics = &components.PhysicsData{VelY: -300}
	handleJumpInput(e, held, player, physics, state, obj)
	if physics.VelY != -300 {
		t.Errorf("VelY = %v, a held jump keeps its speed", physics.VelY)
	}
	if !player.JumpCutReady {
		t.Error("a held jump stays cuttable")
	}
}

func TestDashAttackFiresMidDash(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := newPlayerEntry(t, e)
	GetOrCreateClock(e).DT = 1.0 / 60.0

	player := components.Player.Get(entry)
	player.DashTimer = cfg.Player.DashDuration
	player.DashDir = cfg.DirectionRight
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	state.CurrentState = cfg.Dashing
	obj := components.Object.Get(entry).Object

	input := &components.InputData{}
	input.PushBuffered(cfg.ActionAttack)

	updateDash(e, entry, input, player, physics, state, obj)

	combat := components.Combat.Get(entry)
	if !combat.IsAttacking {
		t.Fatal("a buffered attack mid-dash should start a dash attack")
	}
	want, _ := cfg.AttackFor(cfg.DefaultWeapon, cfg.AttackDash)
	if combat.CurrentAttack == nil || combat.CurrentAttack.Name != want.Name {
		t.Errorf("attack = %+v, want the dash attack", combat.CurrentAttack)
	}
	if len(input.Buffer) != 0 {
		t.Error("the buffered press should be consumed")
	}
}
