package config

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to GameMode
		want     bool
	}{
		{ModeMenu, ModePlaying, true},
		{ModeMenu, ModePaused, false},
		{ModeMenu, ModeGameOver, false},
		{ModePlaying, ModePaused, true},
		{ModePlaying, ModeGameOver, true},
		{ModePlaying, ModeMenu, false},
		{ModePaused, ModePlaying, true},
		{ModePaused, ModeMenu, true},
		{ModePaused, ModeGameOver, false},
		{ModeGameOver, ModeMenu, true},
		{ModeGameOver, ModePlaying, true},
		{ModeGameOver, ModePaused, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransitionRejectsSelf(t *testing.T) {
	for _, m := range []GameMode{ModeMenu, ModePlaying, ModePaused, ModeGameOver} {
		if CanTransition(m, m) {
			t.Errorf("CanTransition(%s, %s) = true, want false", m, m)
		}
	}
}

func TestGameModeString(t *testing.T) {
	cases := map[GameMode]string{
		ModeMenu:     "menu",
		ModePlaying:  "playing",
		ModePaused:   "paused",
		ModeGameOver: "game_over",
	}
	for mode, want := range cases {
		if got := mode.String(); got != want {
			t.Errorf("GameMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}

func TestShieldStateString(t *testing.T) {
	cases := map[ShieldState]string{
		ShieldInactive:     "inactive",
		ShieldRaising:      "raising",
		ShieldActive:       "active",
		ShieldPerfectBlock: "perfect_block",
		ShieldLowering:     "lowering",
		ShieldBroken:       "broken",
		ShieldRecharging:   "recharging",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("ShieldState(%d).String() = %q, want %q", state, got, want)
		}
	}
}
