package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/maze-chase/internal/engine"
)

func openTemp(t *testing.T) *Store {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, e := range []ScoreEntry{
		{RunID: "a", Pack: "arcade", Name: "AAA", Score: 100, Level: 1},
		{RunID: "b", Pack: "arcade", Name: "BBB", Score: 50, Level: 1},
		{RunID: "c", Pack: "arcade", Name: "CCC", Score: 200, Level: 3},
		{RunID: "d", Pack: "classic", Name: "DDD", Score: 500, Level: 4},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("arcade", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []string{"CCC", "AAA", "BBB"}
	for i, name := range want {
		if scores[i].Name != name {
			t.Errorf("scores[%d].Name = %q, want %q", i, scores[i].Name, name)
		}
	}
	if scores[0].Level != 3 || scores[0].RunID != "c" || scores[0].Pack != "arcade" {
		t.Errorf("Unexpected top entry: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	classic, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Pack: "test", Name: "AAA", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
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
	store := openTemp(t)

	_, ok, err := store.HighScore("arcade")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if ok {
		t.Error("Expected no high score for an empty pack")
	}

	store.SaveScore(ScoreEntry{RunID: "r1", Pack: "arcade", Name: "ABC", Score: 100, Level: 1})
	store.SaveScore(ScoreEntry{RunID: "r2", Pack: "arcade", Name: "XYZ", Score: 300, Level: 2})
	store.SaveScore(ScoreEntry{RunID: "r3", Pack: "arcade", Name: "QRS", Score: 300, Level: 5})

	rec, ok, err := store.HighScore("arcade")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	want := engine.Record{Score: 300, Name: "XYZ", Level: 2, RunID: "r2"}
	if !ok || rec != want {
		t.Errorf("HighScore() = %+v, %v; want %+v (first of equal scores)", rec, ok, want)
	}
}

func TestStoreRecorder(t *testing.T) {
	store := openTemp(t)

	rec := store.Recorder("classic")
	if err := rec.Record(engine.Record{Score: 1230, Name: "PAC", Level: 2, RunID: "run"}); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	got, ok, err := store.HighScore("classic")
	if err != nil || !ok {
		t.Fatalf("HighScore() = %v, %v", ok, err)
	}
	if got.Name != "PAC" || got.Score != 1230 || got.RunID != "run" {
		t.Errorf("Recorded entry mismatch: %+v", got)
	}

	if _, ok, _ := store.HighScore("arcade"); ok {
		t.Error("Record leaked into another pack")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore(ScoreEntry{Pack: "arcade", Name: "AAA", Score: 100})
	store.SaveScore(ScoreEntry{Pack: "arcade", Name: "BBB", Score: 200})
	store.SaveScore(ScoreEntry{Pack: "classic", Name: "CCC", Score: 300})

	if err := store.ClearScores("arcade"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	arcade, _ := store.TopScores("arcade", 10)
	if len(arcade) != 0 {
		t.Errorf("Expected 0 arcade scores after clear, got %d", len(arcade))
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic scores should not be affected by clearing arcade")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats("arcade")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Entries != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty pack: %+v", empty)
	}

	store.SaveScore(ScoreEntry{Pack: "arcade", Name: "AAA", Score: 100, Level: 1})
	store.SaveScore(ScoreEntry{Pack: "arcade", Name: "BBB", Score: 300, Level: 4})

	stats, err := store.Stats("arcade")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Entries != 2 || stats.HighScore != 300 || stats.BestLevel != 4 || stats.AvgScore != 200 {
		t.Errorf("Unexpected stats: %+v", stats)
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
