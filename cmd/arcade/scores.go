package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Print the best finished sessions of a game, highest first.
For the runner the persisted best score is shown as well.

Examples:
  arcade scores runner
  arcade scores pinball --player ananya
  arcade scores snake --limit 25`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show sessions played as this character")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	g, err := newGame(gameID)
	if err != nil {
		fail("%v", err)
	}

	var player core.Character
	if flagScoresPlayer != "" {
		if player, err = core.ParseCharacter(flagScoresPlayer); err != nil {
			fail("%v", err)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	board, err := loadBoard(store, g, player, flagScoresLimit)
	if err != nil {
		fail("%v", err)
	}
	board.write(os.Stdout)
}

// scoreBoard is what `arcade scores` prints for one game.
type scoreBoard struct {
	GameID, Title string
	Player        core.Character
	Entries       []storage.ScoreEntry
	Stats         *storage.GameStats
	Best          int // persisted best, for games that keep one
	HasBest       bool
}

// loadBoard reads up to limit sessions of g, keeping only player's when set.
func loadBoard(store *storage.Store, g registry.Game, player core.Character, limit int) (scoreBoard, error) {
	b := scoreBoard{GameID: g.ID(), Title: g.Title(), Player: player}

	fetch := limit
	if player != "" {
		// the filter runs after the query
		fetch = limit * 10
	}
	entries, err := store.TopScores(g.ID(), fetch)
	if err != nil {
		return b, err
	}
	for _, e := range entries {
		if player != "" && e.Character != player.String() {
			continue
		}
		if len(b.Entries) == limit {
			break
		}
		b.Entries = append(b.Entries, e)
	}

	if stats, err := store.GameStats(g.ID()); err == nil && stats.GamesCount > 0 {
		b.Stats = stats
	}
	if bs, ok := g.(registry.BestScorer); ok {
		if best, err := store.BestScore(context.Background(), bs.BestScoreKey()); err == nil {
			b.Best, b.HasBest = best, true
		}
	}
	return b, nil
}

func (b scoreBoard) write(w io.Writer) {
	heading := "High Scores - " + b.Title
	if b.Player != "" {
		heading += " (" + b.Player.String() + ")"
	}
	fmt.Fprintf(w, "%s\n\n", heading)

	if b.HasBest {
		fmt.Fprintf(w, "Best ever: %d\n\n", b.Best)
	}

	if len(b.Entries) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "\nPlay 'arcade play %s' to set the first high score!\n", b.GameID)
		return
	}

	fmt.Fprintf(w, "  %4s  %7s  %-8s  %s\n", "#", "Score", "Player", "Played")
	for i, e := range b.Entries {
		fmt.Fprintf(w, "  %4d  %7d  %-8s  %s\n", i+1, e.Score, e.Character, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if b.Stats != nil {
		fmt.Fprintf(w, "\n%d games, average %.1f, last played %s\n",
			b.Stats.GamesCount, b.Stats.AvgScore, b.Stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
