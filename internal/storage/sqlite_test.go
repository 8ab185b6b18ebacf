package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/kitty-cannon/internal/core"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("cannon", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("cannon_gale", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("cannon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	expected := []int{200, 100, 50}
	if len(scores) != len(expected) {
		t.Fatalf("TopScores() returned %d entries, expected %d", len(scores), len(expected))
	}
	for i, e := range expected {
		if scores[i].Score != e {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, e)
		}
		if scores[i].GameID != "cannon" {
			t.Errorf("scores[%d].GameID = %q, expected cannon", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt is zero", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		store.SaveScore("cannon", i*10)
	}

	scores, err := store.TopScores("cannon", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores() returned %d entries, expected 5", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("best score = %d, expected 140", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("cannon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", hs)
	}

	store.SaveScore("cannon", 320)
	store.SaveScore("cannon", 180)

	hs, err = store.HighScore("cannon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 320 {
		t.Errorf("HighScore() = %d, expected 320", hs)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("cannon", 100)
	store.SaveScore("cannon", 300)

	stats, err := store.GetGameStats("cannon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed is zero")
	}

	empty, err := store.GetGameStats("nobody")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty game = %+v, expected zero stats", empty)
	}
}

func TestStoreRecordShot(t *testing.T) {
	store := openTestStore(t)

	rec := core.ShotRecord{
		GameID:     "cannon",
		Power:      25,
		Elevation:  35,
		Yaw:        90,
		Wind:       [3]float64{0.5, 0, -0.25},
		Outcome:    "target",
		Collider:   "target-1",
		ImpactX:    40.5,
		ImpactY:    1.5,
		ImpactZ:    0,
		FlightTime: 2.75,
		Range:      40.5,
		Points:     100,
	}
	if err := store.RecordShot(rec); err != nil {
		t.Fatalf("RecordShot() failed: %v", err)
	}

	shots, err := store.RecentShots("cannon", 10)
	if err != nil {
		t.Fatalf("RecentShots() failed: %v", err)
	}
	if len(shots) != 1 {
		t.Fatalf("RecentShots() returned %d shots, expected 1", len(shots))
	}
	got := shots[0]
	if got.ID == "" {
		t.Error("RecordShot() did not assign an ID")
	}
	if got.CreatedAt.IsZero() {
		t.Error("RecordShot() did not assign a timestamp")
	}
	// Compare the rest field by field after clearing generated values
	got.ID, got.CreatedAt = "", time.Time{}
	if got != rec {
		t.Errorf("RecentShots()[0] = %+v, expected %+v", got, rec)
	}
}

func TestStoreRecentShotsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		err := store.RecordShot(core.ShotRecord{
			ID:        id,
			GameID:    "cannon",
			Outcome:   "ground",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordShot(%s) failed: %v", id, err)
		}
	}
	store.RecordShot(core.ShotRecord{ID: "other", GameID: "cannon_gale", Outcome: "ground", CreatedAt: base})

	shots, err := store.RecentShots("cannon", 2)
	if err != nil {
		t.Fatalf("RecentShots() failed: %v", err)
	}
	if len(shots) != 2 || shots[0].ID != "third" || shots[1].ID != "second" {
		t.Errorf("RecentShots() = %v, expected [third second]", shotIDs(shots))
	}

	all, err := store.RecentShots("", 10)
	if err != nil {
		t.Fatalf("RecentShots(all) failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("RecentShots(all) returned %d shots, expected 4", len(all))
	}
}

func TestStoreShotStats(t *testing.T) {
	store := openTestStore(t)
	shots := []core.ShotRecord{
		{GameID: "cannon", Outcome: "target", Range: 60, Points: 100},
		{GameID: "cannon", Outcome: "ground", Range: 20, Points: 2},
		{GameID: "cannon", Outcome: "expired", Range: 500},
		{GameID: "cannon_gale", Outcome: "target", Range: 90, Points: 100},
	}
	for _, s := range shots {
		if err := store.RecordShot(s); err != nil {
			t.Fatalf("RecordShot() failed: %v", err)
		}
	}

	st, err := store.GetShotStats("cannon")
	if err != nil {
		t.Fatalf("GetShotStats() failed: %v", err)
	}
	if st.Shots != 3 {
		t.Errorf("Shots = %d, expected 3", st.Shots)
	}
	if st.TargetHits != 1 {
		t.Errorf("TargetHits = %d, expected 1", st.TargetHits)
	}
	if st.Expired != 1 {
		t.Errorf("Expired = %d, expected 1", st.Expired)
	}
	if st.LongestShot != 60 {
		t.Errorf("LongestShot = %v, expected 60 (expired shots excluded)", st.LongestShot)
	}
	if st.AvgRange != 40 {
		t.Errorf("AvgRange = %v, expected 40", st.AvgRange)
	}
	if st.TotalPoints != 102 {
		t.Errorf("TotalPoints = %d, expected 102", st.TotalPoints)
	}
	if acc := st.Accuracy(); acc != 1.0/3 {
		t.Errorf("Accuracy() = %v, expected %v", acc, 1.0/3)
	}
}

func TestStoreClearScoresDropsShots(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("cannon", 10)
	store.RecordShot(core.ShotRecord{GameID: "cannon", Outcome: "ground"})
	store.SaveScore("cannon_gale", 20)

	if err := store.ClearScores("cannon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("cannon", 10); len(scores) != 0 {
		t.Errorf("TopScores() after clear = %d entries, expected 0", len(scores))
	}
	if shots, _ := store.RecentShots("cannon", 10); len(shots) != 0 {
		t.Errorf("RecentShots() after clear = %d entries, expected 0", len(shots))
	}
	if hs, _ := store.HighScore("cannon_gale"); hs != 20 {
		t.Errorf("HighScore(cannon_gale) = %d, expected 20", hs)
	}
}

func shotIDs(shots []core.ShotRecord) []string {
	ids := make([]string, len(shots))
	for i, s := range shots {
		ids[i] = s.ID
	}
	return ids
}
