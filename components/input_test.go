package components

import (
	"testing"

	cfg "github.com/mossforge/forestfall/config"
)

func TestActionDerivesTemporalState(t *testing.T) {
	var in InputData

	in.Current[cfg.ActionJump] = true
	a := in.Action(cfg.ActionJump)
	if !a.Pressed || !a.JustPressed || a.JustReleased {
		t.Errorf("fresh press: %+v, want Pressed+JustPressed", a)
	}

	in.Previous[cfg.ActionJump] = true
	a = in.Action(cfg.ActionJump)
	if !a.Pressed || a.JustPressed || a.JustReleased {
		t.Errorf("held press: %+v, want Pressed only", a)
	}

	in.Current[cfg.ActionJump] = false
	a = in.Action(cfg.ActionJump)
	if a.Pressed || a.JustPressed || !a.JustReleased {
		t.Errorf("release: %+v, want JustReleased only", a)
	}
}

func TestBufferedPressConsumedOnce(t *testing.T) {
	var in InputData
	in.PushBuffered(cfg.ActionJump)

	if !in.ConsumeBuffered(cfg.ActionJump) {
		t.Fatal("first consume should succeed")
	}
	if in.ConsumeBuffered(cfg.ActionJump) {
		t.Error("second consume of the same press should fail")
	}
}

func TestBufferedPressExpires(t *testing.T) {
	var in InputData
	in.PushBuffered(cfg.ActionJump)

	in.AgeBuffer(cfg.Input.BufferWindow / 2)
	if len(in.Buffer) != 1 {
		t.Fatal("press inside the window should survive aging")
	}

	in.AgeBuffer(cfg.Input.BufferWindow)
	if in.ConsumeBuffered(cfg.ActionJump) {
		t.Error("press older than the buffer window should not be consumable")
	}
}

func TestBufferEvictsOldestWhenFull(t *testing.T) {
	var in InputData
	in.PushBuffered(cfg.ActionDash)
	for i := 0; i < cfg.Input.BufferSize; i++ {
		in.PushBuffered(cfg.ActionJump)
	}

	if len(in.Buffer) != cfg.Input.BufferSize {
		t.Errorf("buffer length = %d, want cap %d", len(in.Buffer), cfg.Input.BufferSize)
	}
	if in.ConsumeBuffered(cfg.ActionDash) {
		t.Error("oldest press should have been evicted")
	}
}

func TestConsumeBufferedTakesMostRecent(t *testing.T) {
	var in InputData
	in.PushBuffered(cfg.ActionJump)
	in.AgeBuffer(0.02)
	in.PushBuffered(cfg.ActionJump)

	if !in.ConsumeBuffered(cfg.ActionJump) {
		t.Fatal("consume should succeed with two presses buffered")
	}
	if len(in.Buffer) != 1 {
		t.Fatalf("buffer length = %d, want 1", len(in.Buffer))
	}
	if in.Buffer[0].Age == 0 {
		t.Error("the older press should remain, the newest consumed")
	}
}
