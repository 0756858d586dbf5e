package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game in the arcade with its best score and how many of
its sprites were found for the selected character. Games with missing
sprites still play; the missing pieces are drawn as plain shapes.

Examples:
  arcade list
  arcade list --character ananya --assets ./graphics`,
	Run: runList,
}

// gameRow is one line of the game list.
type gameRow struct {
	ID, Title     string
	Best          int
	HasBest       bool
	Found, Wanted int
}

func runList(_ *cobra.Command, _ []string) {
	character, err := core.ParseCharacter(flagCharacter)
	if err != nil {
		fail("%v", err)
	}

	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	rows := gameRows(registry.List(), character, assetsDir(), store)
	writeGameList(os.Stdout, rows, character)
}

// gameRows collects the best score and sprite coverage of each game. A nil
// store leaves every best score unset.
func gameRows(games []registry.GameInfo, character core.Character, dir string, store *storage.Store) []gameRow {
	rows := make([]gameRow, 0, len(games))
	for _, info := range games {
		row := gameRow{ID: info.ID, Title: info.Title}
		g, err := registry.Create(info.ID)
		if err != nil {
			rows = append(rows, row)
			continue
		}

		if au, ok := g.(registry.AssetUser); ok {
			names := au.Assets(character)
			row.Wanted = len(names)
			for _, name := range names {
				if _, err := os.Stat(filepath.Join(dir, name+".png")); err == nil {
					row.Found++
				}
			}
		}

		if store != nil {
			if bs, ok := g.(registry.BestScorer); ok {
				row.Best, err = store.BestScore(context.Background(), bs.BestScoreKey())
			} else {
				row.Best, err = store.HighScore(info.ID)
			}
			row.HasBest = err == nil && row.Best > 0
		}
		rows = append(rows, row)
	}
	return rows
}

func writeGameList(w io.Writer, rows []gameRow, character core.Character) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, r := range rows {
		idW = max(idW, len(r.ID))
		titleW = max(titleW, len(r.Title))
	}

	fmt.Fprintf(w, "Games for %s:\n\n", character)
	fmt.Fprintf(w, "  %-*s  %-*s  %6s  %s\n", idW, "ID", titleW, "Title", "Best", "Sprites")
	fmt.Fprintf(w, "  %-*s  %-*s  %6s  %s\n", idW, "--", titleW, "-----", "----", "-------")
	for _, r := range rows {
		best := "-"
		if r.HasBest {
			best = fmt.Sprint(r.Best)
		}
		sprites := "-"
		if r.Wanted > 0 {
			sprites = fmt.Sprintf("%d/%d", r.Found, r.Wanted)
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %6s  %s\n", idW, r.ID, titleW, r.Title, best, sprites)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
