package ai

import "testing"

func TestBlackboardValues(t *testing.T) {
	bb := NewBlackboard()

	if _, ok := bb.Get("missing"); ok {
		t.Error("Get on empty blackboard should report absent")
	}

	bb.Set("state", "chase")
	if got := bb.GetString("state"); got != "chase" {
		t.Errorf("GetString = %q, want %q", got, "chase")
	}

	bb.Set("pos", Vec2{X: 10, Y: 20})
	p, ok := bb.GetVec("pos")
	if !ok {
		t.Fatal("GetVec should find stored position")
	}
	if p.X != 10 || p.Y != 20 {
		t.Errorf("GetVec = %+v, want {10 20}", p)
	}

	// Mistyped reads fall back to zero values.
	if got := bb.GetString("pos"); got != "" {
		t.Errorf("GetString on a Vec2 = %q, want empty", got)
	}
	if _, ok := bb.GetVec("state"); ok {
		t.Error("GetVec on a string should report absent")
	}

	bb.Delete("state")
	if _, ok := bb.Get("state"); ok {
		t.Error("Get after Delete should report absent")
	}
}

func TestBlackboardTimers(t *testing.T) {
	bb := NewBlackboard()

	if !bb.TimerExpired("never_set") {
		t.Error("unset timer should count as expired")
	}

	bb.SetTimer("cooldown", 1.0)
	if bb.TimerExpired("cooldown") {
		t.Error("fresh timer should not be expired")
	}

	bb.Update(0.4)
	if bb.TimerExpired("cooldown") {
		t.Error("timer with 0.6s left should not be expired")
	}
	if got := bb.TimerRemaining("cooldown"); got < 0.59 || got > 0.61 {
		t.Errorf("TimerRemaining = %v, want ~0.6", got)
	}

	bb.Update(0.7)
	if !bb.TimerExpired("cooldown") {
		t.Error("timer should be expired after running out")
	}
	if got := bb.TimerRemaining("cooldown"); got != 0 {
		t.Errorf("TimerRemaining after expiry = %v, want 0", got)
	}
}
