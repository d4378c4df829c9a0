package ai

import (
	"testing"

	"github.com/mossforge/forestfall/config"
)

// tickTree runs one decision pass and returns the chosen state.
func tickTree(t *testing.T, tree Node, p Perception) (string, *Blackboard) {
	t.Helper()
	bb := NewBlackboard()
	tree.Tick(&Context{BB: bb, Perception: p})
	return bb.GetString(KeyNextState), bb
}

func TestBasicTreeDecisions(t *testing.T) {
	tree := BuildTree("basic", 45, 0.3)

	cases := []struct {
		name string
		p    Perception
		want string
	}{
		{
			name: "nothing sensed patrols",
			p:    Perception{HealthFraction: 1.0},
			want: DecidePatrol,
		},
		{
			name: "visible player in range attacks",
			p:    Perception{PlayerVisible: true, PlayerDistance: 30, HealthFraction: 1.0},
			want: DecideAttack,
		},
		{
			name: "visible player out of range chases",
			p:    Perception{PlayerVisible: true, PlayerDistance: 120, HealthFraction: 1.0},
			want: DecideChase,
		},
		{
			name: "alerted with last known searches",
			p: Perception{
				Alert:          config.AlertAlerted,
				HasLastKnown:   true,
				LastKnown:      Vec2{X: 99, Y: 1},
				HealthFraction: 1.0,
			},
			want: DecideSearch,
		},
		{
			name: "low health retreats even in attack range",
			p:    Perception{PlayerVisible: true, PlayerDistance: 30, HealthFraction: 0.2},
			want: DecideRetreat,
		},
		{
			name: "suspicious without sighting keeps patrolling",
			p:    Perception{Alert: config.AlertSuspicious, HasLastKnown: true, HealthFraction: 1.0},
			want: DecidePatrol,
		},
	}
	for _, c := range cases {
		got, _ := tickTree(t, tree, c.p)
		if got != c.want {
			t.Errorf("%s: decided %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSearchDecisionRecordsPosition(t *testing.T) {
	tree := BuildTree("basic", 45, 0.3)
	last := Vec2{X: 512, Y: 128}

	got, bb := tickTree(t, tree, Perception{
		Alert:          config.AlertCombat,
		HasLastKnown:   true,
		LastKnown:      last,
		HealthFraction: 1.0,
	})
	if got != DecideSearch {
		t.Fatalf("decided %q, want search", got)
	}
	pos, ok := bb.GetVec(KeySearchPos)
	if !ok {
		t.Fatal("search decision should record the position to investigate")
	}
	if pos != last {
		t.Errorf("search position = %+v, want %+v", pos, last)
	}
}

func TestDefensiveTreeBacksOffWhenCrowded(t *testing.T) {
	tree := BuildTree("defensive", 160, 0.5)

	// Inside 40% of attack range the defensive tree gives ground.
	got, _ := tickTree(t, tree, Perception{PlayerVisible: true, PlayerDistance: 50, HealthFraction: 1.0})
	if got != DecideRetreat {
		t.Errorf("crowded defensive enemy decided %q, want retreat", got)
	}

	// At comfortable range it attacks.
	got, _ = tickTree(t, tree, Perception{PlayerVisible: true, PlayerDistance: 120, HealthFraction: 1.0})
	if got != DecideAttack {
		t.Errorf("ranged defensive enemy decided %q, want attack", got)
	}
}

func TestAggressiveTreeCommitsUnlessNearDeath(t *testing.T) {
	tree := BuildTree("aggressive", 40, 0.2)

	got, _ := tickTree(t, tree, Perception{PlayerVisible: true, PlayerDistance: 20, HealthFraction: 0.5})
	if got != DecideAttack {
		t.Errorf("healthy aggressive enemy decided %q, want attack", got)
	}

	got, _ = tickTree(t, tree, Perception{PlayerVisible: true, PlayerDistance: 20, HealthFraction: 0.1})
	if got != DecideRetreat {
		t.Errorf("near-death aggressive enemy decided %q, want retreat", got)
	}
}

func TestRetreatHoldsUntilHealthRecovers(t *testing.T) {
	tree := BuildTree("basic", 45, 0.3)
	bb := NewBlackboard()
	tick := func(health float64) string {
		t.Helper()
		p := Perception{PlayerVisible: true, PlayerDistance: 30, HealthFraction: health}
		tree.Tick(&Context{BB: bb, Perception: p})
		return bb.GetString(KeyNextState)
	}

	if got := tick(0.25); got != DecideRetreat {
		t.Fatalf("at 25%% health decided %q, want retreat", got)
	}
	// Recovered past the threshold but not the margin: keep backing off
	// instead of flapping between retreat and attack.
	if got := tick(0.4); got != DecideRetreat {
		t.Errorf("at 40%% health mid-retreat decided %q, want retreat", got)
	}
	// Well clear of the threshold: re-engage.
	if got := tick(0.55); got != DecideAttack {
		t.Errorf("at 55%% health decided %q, want attack", got)
	}
	// The same margin health on the way down is not a retreat trigger.
	if got := tick(0.45); got != DecideAttack {
		t.Errorf("at 45%% health while engaged decided %q, want attack", got)
	}
}

func TestUnknownTreeNameGetsBasic(t *testing.T) {
	tree := BuildTree("no_such_tree", 45, 0.3)
	got, _ := tickTree(t, tree, Perception{PlayerVisible: true, PlayerDistance: 30, HealthFraction: 1.0})
	if got != DecideAttack {
		t.Errorf("fallback tree decided %q, want attack", got)
	}
}

func TestAgentDecideCadence(t *testing.T) {
	params := config.ArchetypeParams("crocodile", "normal")
	agent := NewAgent(params)

	p := Perception{PlayerVisible: true, PlayerDistance: 10, HealthFraction: 1.0}

	// First tick is inside the decision interval, so the previous decision
	// holds.
	decision, fresh := agent.Decide(config.AIDecisionInterval/2, p)
	if fresh {
		t.Error("half an interval in, no fresh decision should be made")
	}
	if decision != DecidePatrol {
		t.Errorf("initial decision = %q, want patrol", decision)
	}

	decision, fresh = agent.Decide(config.AIDecisionInterval/2, p)
	if !fresh {
		t.Fatal("a full interval elapsed, the tree should re-evaluate")
	}
	if decision != DecideAttack {
		t.Errorf("decision = %q, want attack", decision)
	}

	// The fresh decision persists between evaluations.
	decision, fresh = agent.Decide(0.01, Perception{HealthFraction: 1.0})
	if fresh {
		t.Error("no fresh decision expected right after an evaluation")
	}
	if decision != DecideAttack {
		t.Errorf("held decision = %q, want attack", decision)
	}
}
