package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "dir", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesNestedFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "arcade.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{GameID: "snake", Score: 7, Character: "Armando", SessionID: "s1"},
		{GameID: "snake", Score: 3, Character: "Ananya", SessionID: "s2"},
		{GameID: "snake", Score: 12, Character: "Ananya", SessionID: "s3"},
		{GameID: "pinball", Score: 900, Character: "Armando", SessionID: "s4"},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore(%+v): %v", e, err)
		}
	}

	scores, err := store.TopScores("snake", 2)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "count", len(scores), 2)
	testutil.AssertEqual(t, "first score", scores[0].Score, 12)
	testutil.AssertEqual(t, "first character", scores[0].Character, "Ananya")
	testutil.AssertEqual(t, "first session", scores[0].SessionID, "s3")
	testutil.AssertEqual(t, "second score", scores[1].Score, 7)
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be parsed")
	}

	high, err := store.HighScore("pinball")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "pinball high", high, 900)

	none, err := store.HighScore("asteroids")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "no scores", none, 0)
}

func TestClearScoresKeepsBest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.SaveScore(ScoreEntry{GameID: "runner", Score: 40}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordBest(ctx, "runnerBestScore", 40); err != nil {
		t.Fatal(err)
	}

	testutil.AssertEqual(t, "clear", store.ClearScores("runner"), nil)
	scores, err := store.TopScores("runner", 10)
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "scores after clear", len(scores), 0)

	best, err := store.BestScore(ctx, "runnerBestScore")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "best survives", best, 40)
}

func TestRecordBestNeverDecreases(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	best, err := store.BestScore(ctx, "runnerBestScore")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "initial", best, 0)

	steps := []struct {
		score int
		want  int
	}{
		{120, 120},
		{80, 120},
		{120, 120},
		{300, 300},
		{0, 300},
	}
	for _, s := range steps {
		got, err := store.RecordBest(ctx, "runnerBestScore", s.score)
		testutil.AssertEqual(t, "error", err, nil)
		testutil.AssertEqual(t, "best after recording", got, s.want)

		stored, err := store.BestScore(ctx, "runnerBestScore")
		testutil.AssertEqual(t, "error", err, nil)
		testutil.AssertEqual(t, "stored best", stored, s.want)
	}

	other, err := store.BestScore(ctx, "otherKey")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "keys are independent", other, 0)
}

func TestBestPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arcade.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordBest(ctx, "runnerBestScore", 77); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	best, err := store.BestScore(ctx, "runnerBestScore")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "reopened best", best, 77)
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	for _, sc := range []int{10, 20, 30} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "asteroids", Score: sc}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveScore(ScoreEntry{GameID: "snake", Score: 5}); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GameStats("asteroids")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "games", stats.GamesCount, 3)
	testutil.AssertEqual(t, "high", stats.HighScore, 30)
	testutil.AssertEqual(t, "avg", stats.AvgScore, 20.0)
	testutil.AssertEqual(t, "total", stats.TotalScore, int64(60))

	empty, err := store.GameStats("pacman")
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "empty games", empty.GamesCount, 0)

	all, err := store.AllGamesStats()
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "games with scores", len(all), 2)
	testutil.AssertEqual(t, "snake high", all["snake"].HighScore, 5)
}
