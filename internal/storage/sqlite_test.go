package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRound(Round{Score: 5}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	rounds, err := store.AllRounds()
	if err != nil {
		t.Fatalf("AllRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Errorf("Expected 1 round, got %d", len(rounds))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Round{
		{Score: 100, Held: 5 * time.Second},
		{Score: 50, Preset: "classic"},
		{Score: 200, Held: 10 * time.Second},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Should be sorted descending
	if rounds[0].Score != 200 || rounds[1].Score != 100 || rounds[2].Score != 50 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
	if rounds[0].Held != 10*time.Second {
		t.Errorf("Held = %v, expected 10s", rounds[0].Held)
	}
	if rounds[1].Preset != "standard" {
		t.Errorf("Empty preset should be stored as standard, got %q", rounds[1].Preset)
	}
	if rounds[2].Preset != "classic" {
		t.Errorf("Preset = %q, expected classic", rounds[2].Preset)
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(Round{Score: (i + 1) * 100})
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}

	// Should be 500, 400, 300 (top 3)
	if rounds[0].Score != 500 || rounds[1].Score != 400 || rounds[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{Score: 300})
	store.SaveRound(Round{Score: 10})
	store.SaveRound(Round{Score: 20})

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 || rounds[0].Score != 20 || rounds[1].Score != 10 {
		t.Errorf("Expected newest-first [20 10], got %v", rounds)
	}
}

func TestStoreClearRoundsKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{Score: 100})
	if err := store.Raise("best", 100); err != nil {
		t.Fatalf("Raise() failed: %v", err)
	}

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.AllRounds()
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if v, ok, _ := store.Get("best"); !ok || v != 100 {
		t.Errorf("Best score should survive clear, got %d (ok=%v)", v, ok)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRound(Round{Score: 10, Held: time.Second})
	store.SaveRound(Round{Score: 30, Held: 2 * time.Second})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Rounds = %d, expected 2", stats.Rounds)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, expected 40", stats.TotalScore)
	}
	if stats.TotalHeld != 3*time.Second {
		t.Errorf("TotalHeld = %v, expected 3s", stats.TotalHeld)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/tmp/kisshome")

	got, err := ExpandHome("~/.secretkiss/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join("/tmp/kisshome", ".secretkiss", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/abs/path.db"); got != "/abs/path.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
