package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.climber/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".climber", "runs.db")); err != nil {
		t.Errorf("journal not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Run{Seed: 42, Score: 17, Level: 1, Rows: 29, Cause: "danger", DurationMs: 48_250, Source: "sim"}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if got != want {
		t.Errorf("RunByID() = %+v, expected %+v", got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreDefaultSource(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Seed: 1, Cause: "fall"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Source != "play" {
		t.Errorf("Source = %q, expected play", got.Source)
	}
}

func TestStoreRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for seed := int64(1); seed <= 5; seed++ {
		if _, err := store.SaveRun(Run{Seed: seed, Cause: "fall"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, wantSeed := range []int64{5, 4, 3} {
		if runs[i].Seed != wantSeed {
			t.Errorf("runs[%d].Seed = %d, expected %d", i, runs[i].Seed, wantSeed)
		}
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID(999)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID(999) error = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreCauseCounts(t *testing.T) {
	store := openTestStore(t)

	for _, cause := range []string{"fall", "danger", "fall", "quit", "fall"} {
		if _, err := store.SaveRun(Run{Cause: cause}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	counts, err := store.CauseCounts()
	if err != nil {
		t.Fatalf("CauseCounts() failed: %v", err)
	}
	if counts["fall"] != 3 || counts["danger"] != 1 || counts["quit"] != 1 {
		t.Errorf("CauseCounts() = %v", counts)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Cause: "fall"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after ClearRuns, got %d", len(runs))
	}
}
