package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bdaygames/internal/assets"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/feed"
	"github.com/vovakirdan/bdaygames/internal/session"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

var (
	flagSimMaxTicks int
	flagSimRealtime bool
	flagSimSave     bool
	flagSimScreen   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with a random player",
	Long: `Run one session without a terminal UI. A seeded random player
supplies the input, so the same --seed replays the same session.

By default ticks run back to back; --realtime runs them at --fps.
The final state is printed when the session ends or hits --max-ticks.

Examples:
  arcade sim snake --seed 42
  arcade sim pinball --seed 7 --screen
  arcade sim runner --difficulty hard --max-ticks 6000 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	addTuningFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 36000, "Stop after this many ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the score to the scores database")
	simCmd.Flags().BoolVar(&flagSimScreen, "screen", false, "Print the final frame")
}

func runSim(_ *cobra.Command, args []string) {
	cfg, err := runtimeConfig()
	if err != nil {
		fail("%v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger, _, err := newLogger("arcade-sim", false)
	if err != nil {
		fail("%v", err)
	}

	g, err := newGame(args[0])
	if err != nil {
		fail("%v", err)
	}

	var store *storage.Store
	if flagSimSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bus := feed.NewLocalBus()
	defer bus.Close()
	events, _ := bus.Subscribe(4)

	ctrl := newController(ctx, g, cfg, store, bus, logger)
	opts := []session.LoopOpt{
		session.WithInput(session.RandomPlayer(cfg.Seed)),
		session.WithAssets(assets.Load(ctx, assetsDir(), ctrl.Assets(), logger)),
		session.WithMaxTicks(flagSimMaxTicks),
	}
	if !flagSimRealtime {
		opts = append(opts, session.WithFastForward())
	}

	res := session.NewLoop(ctrl, opts...).Run(ctx)

	fmt.Printf("Session  %s\n", res.SessionID)
	fmt.Printf("Game     %s\n", res.GameID)
	fmt.Printf("Seed     %d\n", cfg.Seed)
	fmt.Printf("Outcome  %s (%s)\n", res.Phase, res.Reason)
	fmt.Printf("Score    %d\n", res.State.Score)
	if res.State.Best > 0 {
		fmt.Printf("Best     %d\n", res.State.Best)
	}
	fmt.Printf("Ticks    %d (%.1fs simulated)\n", res.Ticks, float64(res.Ticks)/float64(cfg.TickRate))

drain:
	for {
		select {
		case evt := <-events.Events():
			fmt.Printf("Event    %s\n", evt.Summary())
		default:
			break drain
		}
	}

	if flagSimScreen {
		scr := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		ctrl.Render(scr)
		fmt.Println()
		fmt.Println(scr.String())
	}
}
