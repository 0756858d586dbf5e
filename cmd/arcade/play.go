package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bdaygames/internal/assets"
	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/feed"
	"github.com/vovakirdan/bdaygames/internal/platform/tui"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/session"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, steer, aim
  Space/Click  - Jump, launch, fire, flippers
  P            - Pause
  R            - Restart (after game over or while paused)
  B/Esc        - Back (after game over or while paused)
  Ctrl+S       - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options (runner only; other games validate and ignore it):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play runner --difficulty hard
  arcade play pinball --character ananya
  arcade play pacman --config ./my-pacman.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addTuningFlags(playCmd)
}

// addTuningFlags registers --config and --difficulty on cmd.
func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newGame creates and tunes a registered game.
func newGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	g, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if err := registry.Configure(g, flagConfig, flagDifficulty); err != nil {
		return nil, err
	}
	return g, nil
}

// newController wraps g in a session. A nil store disables persistence.
func newController(ctx context.Context, g registry.Game, cfg core.RuntimeConfig, store *storage.Store, pub feed.Publisher, logger *log.Logger) *session.Controller {
	opts := session.Options{
		Runtime: cfg,
		Feed:    pub,
		Logger:  logger,
		Context: ctx,
	}
	if store != nil {
		opts.Store = store
	}
	return session.New(g, opts)
}

// playOnce runs one interactive session in the local terminal.
func playOnce(gameID string, cfg core.RuntimeConfig, store *storage.Store, ui config.UIConfig, logger *log.Logger) error {
	g, err := newGame(gameID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := newController(ctx, g, cfg, store, nil, logger)
	batch := assets.Load(ctx, assetsDir(), ctrl.Assets(), logger)

	overlays, err := tui.NewOverlays(ui.Overlays)
	if err != nil {
		return err
	}

	return tui.Run(ctrl, cfg, tui.GameOptions{
		Batch:         batch,
		Input:         ui.Input,
		Overlays:      overlays,
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	})
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

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

	runErr := playOnce(gameID, cfg, store, ui, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
