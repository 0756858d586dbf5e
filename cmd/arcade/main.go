// arcade is a terminal arcade with six small games: asteroids, brick
// breaker, pac-man, pinball, runner and snake.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Run a game headless with a random player
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--character <name>    - Armando or Ananya (default: Armando)
//	--assets <dir>        - Sprite directory (default: ~/.arcade/graphics)
//	--ui-config <path>    - Custom ui.yaml (hold windows, overlays)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/bdaygames/internal/games/asteroids"
	_ "github.com/vovakirdan/bdaygames/internal/games/brickbreaker"
	_ "github.com/vovakirdan/bdaygames/internal/games/pacman"
	_ "github.com/vovakirdan/bdaygames/internal/games/pinball"
	_ "github.com/vovakirdan/bdaygames/internal/games/runner"
	_ "github.com/vovakirdan/bdaygames/internal/games/snake"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagCharacter string
	flagAssets    string
	flagUIConfig  string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Birthday arcade - six small games in your terminal",
	Long: `A terminal arcade with six games, starring Armando and Ananya.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a game headless with a random player

Examples:
  arcade list
  arcade play runner --character ananya
  arcade menu
  arcade serve --ssh :2222 --feed
  arcade sim pinball --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagCharacter, "character", core.DefaultCharacter.String(), "Player character: Armando or Ananya")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "~/.arcade/graphics", "Directory of sprite PNGs")
	rootCmd.PersistentFlags().StringVar(&flagUIConfig, "ui-config", "", "Path to custom ui.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	character, err := core.ParseCharacter(flagCharacter)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Character = character
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// newLogger logs to stderr, or to ~/.arcade/arcade.log for commands that
// own the terminal.
func newLogger(prefix string, toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	out := os.Stderr
	closer := func() {}
	if toFile {
		path := config.ExpandHome(filepath.Join("~", ".arcade", "arcade.log"))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the scores database. Failure is logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// loadUI reads front-end settings from --ui-config or the embedded defaults.
func loadUI() (config.UIConfig, error) {
	ui, err := config.LoadUI(flagUIConfig)
	if err != nil {
		return config.UIConfig{}, fmt.Errorf("ui config: %w", err)
	}
	return ui, nil
}

func assetsDir() string {
	return config.ExpandHome(flagAssets)
}

// fail prints err and exits, the way every command reports fatal errors.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
