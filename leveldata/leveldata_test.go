package leveldata

import "testing"

func TestLoadBuiltinForest(t *testing.T) {
	lvl, err := LoadBuiltin("forest")
	if err != nil {
		t.Fatalf("LoadBuiltin(forest) failed: %v", err)
	}

	if lvl.Name != "forest" {
		t.Errorf("Name = %q, want %q", lvl.Name, "forest")
	}
	if lvl.Width != 128*16 || lvl.Height != 24*16 {
		t.Errorf("dimensions = %dx%d, want 2048x384", lvl.Width, lvl.Height)
	}
	if lvl.WindX != 12 {
		t.Errorf("WindX = %v, want 12", lvl.WindX)
	}

	if len(lvl.Walls) == 0 {
		t.Error("forest level has no walls")
	}
	if len(lvl.Platforms) == 0 {
		t.Error("forest level has no platforms")
	}
	if len(lvl.DeadZones) == 0 {
		t.Error("forest level has no dead zones")
	}
	if len(lvl.EnemySpawns) == 0 {
		t.Error("forest level has no enemy spawns")
	}

	if lvl.PlayerSpawnX == 0 && lvl.PlayerSpawnY == 0 {
		t.Error("player spawn missing")
	}
}

func TestForestFloatingPlatformProperties(t *testing.T) {
	lvl, err := LoadBuiltin("forest")
	if err != nil {
		t.Fatalf("LoadBuiltin(forest) failed: %v", err)
	}
	if len(lvl.FloatingPlatforms) == 0 {
		t.Fatal("forest level has no floating platforms")
	}

	fp := lvl.FloatingPlatforms[0]
	if fp.Travel <= 0 {
		t.Errorf("Travel = %v, want positive", fp.Travel)
	}
	if fp.Period <= 0 {
		t.Errorf("Period = %v, want positive", fp.Period)
	}
}

func TestForestSpawnArchetypesKnown(t *testing.T) {
	lvl, err := LoadBuiltin("forest")
	if err != nil {
		t.Fatalf("LoadBuiltin(forest) failed: %v", err)
	}

	known := map[string]bool{
		"ninja": true, "wizard": true, "crocodile": true, "dangertree": true,
	}
	for i, spawn := range lvl.EnemySpawns {
		if spawn.Archetype == "" {
			t.Errorf("spawn %d has no archetype", i)
			continue
		}
		if !known[spawn.Archetype] {
			t.Errorf("spawn %d archetype %q is not a known archetype", i, spawn.Archetype)
		}
	}
}

func TestLoadBuiltinUnknownName(t *testing.T) {
	if _, err := LoadBuiltin("no_such_level"); err == nil {
		t.Error("loading a missing level should fail")
	}
}

func TestBuiltinNamesIncludesForest(t *testing.T) {
	names := BuiltinNames()
	found := false
	for _, n := range names {
		if n == "forest" {
			found = true
		}
	}
	if !found {
		t.Errorf("BuiltinNames() = %v, missing forest", names)
	}
}
