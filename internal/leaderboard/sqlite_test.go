package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entries := []struct {
		name  string
		score int
		steps int
	}{
		{"alice", 12, 640},
		{"bob", 4, 210},
		{"carol", 25, 1100},
	}
	for _, e := range entries {
		if _, err := store.Save(e.name, e.score, e.steps); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	top, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(top))
	}

	// Sorted descending by score
	if top[0].Name != "carol" || top[0].Score != 25 {
		t.Errorf("Expected carol/25 first, got %s/%d", top[0].Name, top[0].Score)
	}
	if top[1].Name != "alice" || top[1].Score != 12 {
		t.Errorf("Expected alice/12 second, got %s/%d", top[1].Name, top[1].Score)
	}
	if top[2].Name != "bob" || top[2].Score != 4 {
		t.Errorf("Expected bob/4 third, got %s/%d", top[2].Name, top[2].Score)
	}
	if top[0].Steps != 1100 {
		t.Errorf("Expected steps 1100, got %d", top[0].Steps)
	}
}

func TestStoreTopLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		if _, err := store.Save("player", i, i*50); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}

	top, err := store.Top(5)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 entries, got %d", len(top))
	}
	if top[0].Score != 19 {
		t.Errorf("Expected top score 19, got %d", top[0].Score)
	}
}

func TestStoreBest(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No entries yet
	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best 0 on empty store, got %d", best)
	}

	if _, err := store.Save("alice", 7, 300); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := store.Save("bob", 3, 150); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	best, err = store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("Expected best 7, got %d", best)
	}
}

func TestStoreClear(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Save("alice", 7, 300); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, err := store.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no entries after Clear, got %d", len(top))
	}
}
