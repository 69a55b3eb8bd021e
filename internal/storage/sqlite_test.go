package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(gameID string, score int) ScoreRecord {
	return ScoreRecord{GameID: gameID, Score: score, Level: 3, Lines: 24, MaxTile: 256}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(run("mergetris", score)); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore(run("mergetris_zen", 500)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("mergetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending.
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, want %d", i, scores[i].Score, w)
		}
	}

	// Run details survive the round trip.
	if scores[0].Level != 3 || scores[0].Lines != 24 || scores[0].MaxTile != 256 {
		t.Errorf("record details lost: %+v", scores[0])
	}

	// Modes are isolated.
	zenScores, err := store.TopScores("mergetris_zen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(zenScores) != 1 {
		t.Errorf("Expected 1 zen score, got %d", len(zenScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(run("mergetris", (i+1)*100))
	}

	scores, err := store.TopScores("mergetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("mergetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore(run("mergetris", 100))
	store.SaveScore(run("mergetris", 300))
	store.SaveScore(run("mergetris", 200))

	high, err = store.HighScore("mergetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(run("mergetris", 100))
	store.SaveScore(run("mergetris", 200))
	store.SaveScore(run("mergetris_zen", 300))

	if err := store.ClearScores("mergetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("mergetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	zenScores, _ := store.TopScores("mergetris_zen", 10)
	if len(zenScores) != 1 {
		t.Error("Zen scores should not be affected by clearing normal mode")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreRecord{GameID: "mergetris", Score: 100, Level: 2, Lines: 10, MaxTile: 64})
	store.SaveScore(ScoreRecord{GameID: "mergetris", Score: 300, Level: 4, Lines: 32, MaxTile: 512})

	stats, err := store.GetGameStats("mergetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestTile != 512 {
		t.Errorf("BestTile = %d, want 512", stats.BestTile)
	}
}

func TestStoreExpandNestedPath(t *testing.T) {
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
