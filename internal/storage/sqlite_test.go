package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("square", 2.5, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("square")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 2.5 {
		t.Errorf("HighScore() = %v after reopen, expected 2.5", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game  string
		score float64
		level int
	}{
		{"triangle", 1.5, 3},
		{"triangle", 0.75, 2},
		{"triangle", 3.25, 5},
		{"hexagon", 4, 5},
	} {
		if _, err := store.SaveScore(s.game, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("triangle", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []float64{3.25, 1.5, 0.75}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %v, expected %v", i, scores[i].Score, want)
		}
	}
	if scores[0].Level != 5 {
		t.Errorf("scores[0].Level = %d, expected 5", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	hex, err := store.TopScores("hexagon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hex) != 1 {
		t.Errorf("Expected 1 hexagon score, got %d", len(hex))
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("square", 2, 3)
	store.SaveScore("square", 2, 6)

	scores, err := store.TopScores("square", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Level != 6 {
		t.Errorf("equal scores should rank the higher level first, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", float64(i+1), i+1)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("test", 0)
	if len(all) != 5 {
		t.Errorf("non-positive limit should default to 10, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pentagon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %v", high)
	}

	store.SaveScore("pentagon", 1, 2)
	store.SaveScore("pentagon", 3.5, 4)
	store.SaveScore("pentagon", 2, 3)

	high, err = store.HighScore("pentagon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3.5 {
		t.Errorf("Expected high score of 3.5, got %v", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("square", 1, 2)
	store.SaveScore("square", 2, 3)
	store.SaveScore("triangle", 3, 4)

	if err := store.ClearScores("square"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if squares, _ := store.TopScores("square", 10); len(squares) != 0 {
		t.Errorf("Expected 0 square scores after clear, got %d", len(squares))
	}
	if triangles, _ := store.TopScores("triangle", 10); len(triangles) != 1 {
		t.Errorf("Triangle scores should not be affected by clearing square")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("hexagon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", empty)
	}

	store.SaveScore("hexagon", 1, 2)
	store.SaveScore("hexagon", 3, 7)

	stats, err := store.GetGameStats("hexagon")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3 || stats.BestLevel != 7 || stats.AvgScore != 2 {
		t.Errorf("stats = %+v, expected 2 games, high 3, best level 7, avg 2", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["hexagon"] == nil || all["hexagon"].GamesCount != 2 {
		t.Errorf("GetAllGamesStats() = %v, expected hexagon with 2 games", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
