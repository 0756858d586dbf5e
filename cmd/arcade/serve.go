package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bdaygames/internal/feed"
	"github.com/vovakirdan/bdaygames/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagFeed        bool
	flagFeedHost    string
	flagFeedPort    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).
Every visitor's menu shows the latest finished game.

With --feed, session events are also published as JSON on an embedded
NATS server (subjects arcade.sessions.<game>), so other tools can follow
along, e.g.: nats sub 'arcade.sessions.>' -s nats://127.0.0.1:4222

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --feed --feed-port 4222   # Also expose the live feed over NATS
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagFeed, "feed", false, "Publish session events on an embedded NATS server")
	serveCmd.Flags().StringVar(&flagFeedHost, "feed-host", "127.0.0.1", "NATS feed listen host")
	serveCmd.Flags().IntVar(&flagFeedPort, "feed-port", 4222, "NATS feed listen port (-1 picks a free port)")
}

func runServe(_ *cobra.Command, _ []string) {
	base, err := runtimeConfig()
	if err != nil {
		fail("%v", err)
	}
	ui, err := loadUI()
	if err != nil {
		fail("%v", err)
	}

	logger, _, err := newLogger("arcade-ssh", false)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var bus feed.Bus = feed.NewLocalBus()
	if flagFeed {
		nb, err := feed.NewNatsBus(
			feed.WithHost(flagFeedHost),
			feed.WithPort(flagFeedPort),
			feed.WithLogger(logger.WithPrefix("feed")),
		)
		if err != nil {
			fail("%v", err)
		}
		bus = nb
	}
	defer bus.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		AssetsDir:   assetsDir(),
		TickRate:    base.TickRate,
		Character:   base.Character,
		UI:          ui,
	}

	server, err := tui.NewSSHServer(cfg, store, bus, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting arcade SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "err", err)
	}
}
