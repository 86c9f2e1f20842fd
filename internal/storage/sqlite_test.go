package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ellomar/puzzlebox/internal/state"
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

func TestStoreLoadEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if data != nil {
		t.Errorf("Expected nil for a fresh database, got %q", data)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Save([]byte(`{"currentPage":"hub"}`)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Overwriting keeps a single snapshot row
	if err := store.Save([]byte(`{"currentPage":"word"}`)); err != nil {
		t.Fatalf("Save() overwrite failed: %v", err)
	}

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(data) != `{"currentPage":"word"}` {
		t.Errorf("Expected latest snapshot, got %q", data)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Save([]byte("persisted")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store2.Close()

	data, err := store2.Load()
	if err != nil {
		t.Fatalf("Load() after reopen failed: %v", err)
	}
	if string(data) != "persisted" {
		t.Errorf("Expected snapshot to survive reopen, got %q", data)
	}
}

func TestStoreClear(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Save([]byte("something"))
	store.RecordSolve(state.PuzzleWord)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	data, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after clear failed: %v", err)
	}
	if data != nil {
		t.Errorf("Expected nil snapshot after clear, got %q", data)
	}

	solves, err := store.Solves()
	if err != nil {
		t.Fatalf("Solves() failed: %v", err)
	}
	if len(solves) != 0 {
		t.Errorf("Expected empty solve log after clear, got %d entries", len(solves))
	}
}

func TestStoreRecordSolveIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.RecordSolve(state.PuzzleRiddles); err != nil {
		t.Fatalf("RecordSolve() failed: %v", err)
	}
	first, ok, err := store.SolvedAt(state.PuzzleRiddles)
	if err != nil {
		t.Fatalf("SolvedAt() failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a recorded solve")
	}

	// Recording again keeps the original timestamp
	if err := store.RecordSolve(state.PuzzleRiddles); err != nil {
		t.Fatalf("repeat RecordSolve() failed: %v", err)
	}
	again, _, err := store.SolvedAt(state.PuzzleRiddles)
	if err != nil {
		t.Fatalf("SolvedAt() failed: %v", err)
	}
	if !again.Equal(first) {
		t.Errorf("Timestamp changed on repeat: %v vs %v", first, again)
	}

	solves, err := store.Solves()
	if err != nil {
		t.Fatalf("Solves() failed: %v", err)
	}
	if len(solves) != 1 {
		t.Errorf("Expected 1 solve entry, got %d", len(solves))
	}
}

func TestStoreSolvedAtMissing(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, ok, err := store.SolvedAt(state.PuzzleGroups)
	if err != nil {
		t.Fatalf("SolvedAt() failed: %v", err)
	}
	if ok {
		t.Error("Expected no solve for a fresh database")
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
