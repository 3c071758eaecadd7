package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tower/internal/core"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, sess := range []Session{
		{Variant: "tower", Ticks: 100, Landings: 3, Distance: 40},
		{Variant: "tower", Ticks: 200, HeadHits: 2, Distance: 90},
		{Variant: "open", Ticks: 50, Distance: 250},
	} {
		id, err := store.SaveSession(sess)
		if err != nil {
			t.Fatalf("SaveSession(%d) failed: %v", i, err)
		}
		if id <= 0 {
			t.Errorf("SaveSession(%d) returned id %d", i, id)
		}
	}

	tower, err := store.RecentSessions("tower", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(tower) != 2 {
		t.Fatalf("Expected 2 tower sessions, got %d", len(tower))
	}
	// Newest first
	if tower[0].Ticks != 200 || tower[1].Ticks != 100 {
		t.Errorf("Sessions not newest first: %+v", tower)
	}
	if tower[0].HeadHits != 2 || tower[1].Landings != 3 {
		t.Errorf("Counters not round-tripped: %+v", tower)
	}
	if tower[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 sessions in total, got %d", len(all))
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(Session{Variant: "tower", Ticks: i})
	}

	sessions, err := store.RecentSessions("tower", 3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(sessions))
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	stats, err := store.GetVariantStats("tower")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.SessionsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveSession(Session{Variant: "tower", Ticks: 100, Landings: 4, HeadHits: 1, Distance: 30})
	store.SaveSession(Session{Variant: "tower", Ticks: 50, Landings: 1, Distance: 80})
	store.SaveSession(Session{Variant: "open", Ticks: 10, Distance: 500})

	stats, err = store.GetVariantStats("tower")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.SessionsCount != 2 || stats.TotalTicks != 150 || stats.TotalLandings != 5 || stats.TotalHeadHits != 1 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.LongestWalk != 80 {
		t.Errorf("Expected longest walk 80, got %d", stats.LongestWalk)
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 variants, got %d", len(all))
	}
	if all["open"].LongestWalk != 500 {
		t.Errorf("Expected open longest walk 500, got %d", all["open"].LongestWalk)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Variant: "tower", Ticks: 1})
	store.SaveSession(Session{Variant: "open", Ticks: 2})

	if err := store.ClearSessions("tower"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	tower, _ := store.RecentSessions("tower", 10)
	if len(tower) != 0 {
		t.Errorf("Expected 0 tower sessions after clear, got %d", len(tower))
	}
	open, _ := store.RecentSessions("open", 10)
	if len(open) != 1 {
		t.Errorf("Open sessions should not be affected by clearing tower")
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

func TestSessionFromState(t *testing.T) {
	st := core.GameState{Tick: 500, Landings: 7, HeadHits: 2, Distance: 340}
	sess := SessionFromState("tower", st, 10400*time.Millisecond)

	want := Session{Variant: "tower", Ticks: 500, Landings: 7, HeadHits: 2, Distance: 340, Duration: 10}
	if sess != want {
		t.Errorf("SessionFromState() = %+v, want %+v", sess, want)
	}
}
