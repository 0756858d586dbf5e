package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Pick a game with the arrow keys or j/k and Enter. When a round ends,
press B to come back here for the next one.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  C            - Switch character
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addTuningFlags(menuCmd)
}

// menuSteps are the screens the menu loop moves between.
type menuSteps struct {
	pick  func(core.RuntimeConfig) (tui.MenuResult, error)
	board func(core.RuntimeConfig) (goBack bool, err error)
	play  func(gameID string, cfg core.RuntimeConfig) error
}

// menuLoop shows the picker until the player quits. Errors from the
// scoreboard or a game are reported on errOut and the loop carries on; a
// failing picker ends it. It returns how many games were started.
func menuLoop(cfg core.RuntimeConfig, steps menuSteps, errOut io.Writer) int {
	played := 0
	for {
		res, err := steps.pick(cfg)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return played
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return played
		case res.WantsScoreboard:
			goBack, err := steps.board(cfg)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
			}
			if !goBack {
				return played
			}
		case res.GameID != "":
			played++
			if err := steps.play(res.GameID, cfg); err != nil {
				fmt.Fprintf(errOut, "Error running game: %v\n", err)
			}
		default:
			return played
		}
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := runtimeConfig()
	if err != nil {
		fail("%v", err)
	}
	cfg.ScreenW, cfg.ScreenH = terminalSize()

	ui, err := loadUI()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("arcade", true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	menuLoop(cfg, menuSteps{
		pick: func(c core.RuntimeConfig) (tui.MenuResult, error) { return tui.RunMenu(store, c) },
		board: func(c core.RuntimeConfig) (bool, error) {
			return tui.RunScoreboard(store, c.ScreenW, c.ScreenH)
		},
		play: func(id string, c core.RuntimeConfig) error { return playOnce(id, c, store, ui, logger) },
	}, os.Stderr)
}
