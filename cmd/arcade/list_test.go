package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

func TestGameRowsCountSprites(t *testing.T) {
	dir := t.TempDir()
	g, err := registry.Create("snake")
	if err != nil {
		t.Fatal(err)
	}
	names := g.(registry.AssetUser).Assets(core.Armando)
	if len(names) == 0 {
		t.Fatal("snake should draw sprites")
	}
	if err := os.WriteFile(filepath.Join(dir, names[0]+".png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "snake", Score: 12, Character: "Armando"}); err != nil {
		t.Fatal(err)
	}

	rows := gameRows([]registry.GameInfo{{ID: "snake", Title: g.Title()}}, core.Armando, dir, store)
	if len(rows) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	r := rows[0]
	if r.Found != 1 || r.Wanted != len(names) {
		t.Errorf("sprites %d/%d, expected 1/%d", r.Found, r.Wanted, len(names))
	}
	if !r.HasBest || r.Best != 12 {
		t.Errorf("best = %d (%v), expected 12", r.Best, r.HasBest)
	}
}

func TestWriteGameList(t *testing.T) {
	var buf bytes.Buffer
	writeGameList(&buf, []gameRow{
		{ID: "runner", Title: "Runner", Best: 420, HasBest: true, Found: 2, Wanted: 3},
		{ID: "snake", Title: "Snake"},
	}, core.Ananya)

	out := buf.String()
	for _, want := range []string{"Games for Ananya", "runner", "420", "2/3", "Run 'arcade play <id>'"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	for _, l := range lines {
		if strings.Contains(l, "snake") && !strings.HasSuffix(strings.TrimSpace(l), "-") {
			t.Errorf("snake without scores or sprites should show dashes: %q", l)
		}
	}

	buf.Reset()
	writeGameList(&buf, nil, core.Armando)
	if !strings.Contains(buf.String(), "No games available.") {
		t.Errorf("empty list output = %q", buf.String())
	}
}
