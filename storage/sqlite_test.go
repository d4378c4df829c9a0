package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "deep", "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestSaveAndRetrieveRun(t *testing.T) {
	store := openTestStore(t)

	r := RunResult{
		Score:           420,
		SurvivalTime:    93.5,
		EnemiesDefeated: 7,
		MaxCombo:        12,
		PerfectBlocks:   3,
		DamageBlocked:   156.0,
		DeathCause:      "ninja",
		Difficulty:      "hard",
	}
	id, err := store.SaveRunResult(r)
	if err != nil {
		t.Fatalf("SaveRunResult() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveRunResult() returned zero id")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("TopRuns() returned %d runs, want 1", len(runs))
	}

	got := runs[0]
	if got.Score != r.Score {
		t.Errorf("Score = %d, want %d", got.Score, r.Score)
	}
	if got.SurvivalTime != r.SurvivalTime {
		t.Errorf("SurvivalTime = %v, want %v", got.SurvivalTime, r.SurvivalTime)
	}
	if got.EnemiesDefeated != r.EnemiesDefeated {
		t.Errorf("EnemiesDefeated = %d, want %d", got.EnemiesDefeated, r.EnemiesDefeated)
	}
	if got.MaxCombo != r.MaxCombo {
		t.Errorf("MaxCombo = %d, want %d", got.MaxCombo, r.MaxCombo)
	}
	if got.PerfectBlocks != r.PerfectBlocks {
		t.Errorf("PerfectBlocks = %d, want %d", got.PerfectBlocks, r.PerfectBlocks)
	}
	if got.DeathCause != r.DeathCause {
		t.Errorf("DeathCause = %q, want %q", got.DeathCause, r.DeathCause)
	}
	if got.Difficulty != r.Difficulty {
		t.Errorf("Difficulty = %q, want %q", got.Difficulty, r.Difficulty)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	scores := []int{100, 500, 50, 300}
	for _, s := range scores {
		if _, err := store.SaveRunResult(RunResult{Score: s, Difficulty: "normal"}); err != nil {
			t.Fatalf("SaveRunResult(%d) failed: %v", s, err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns(3) returned %d runs, want 3", len(runs))
	}

	want := []int{500, 300, 100}
	for i, w := range want {
		if runs[i].Score != w {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, w)
		}
	}
}

func TestBestScoreEmptyStore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() on empty store failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty store = %d, want 0", best)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 250, 90} {
		if _, err := store.SaveRunResult(RunResult{Score: s, Difficulty: "easy"}); err != nil {
			t.Fatalf("SaveRunResult(%d) failed: %v", s, err)
		}
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 250 {
		t.Errorf("BestScore() = %d, want 250", best)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
