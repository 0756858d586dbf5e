package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/bdaygames/internal/assets"
	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/feed"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/session"
	"github.com/vovakirdan/bdaygames/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// AssetsDir holds the sprite PNGs.
	AssetsDir string

	// TickRate and Character seed each visitor's runtime config.
	TickRate  int
	Character core.Character

	UI config.UIConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
		Character:   core.DefaultCharacter,
		UI:          config.DefaultUIConfig(),
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	bus      feed.Bus
	overlays *Overlays
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server. store and bus may be nil; without a
// bus, sessions are not announced and the menu shows no feed.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, bus feed.Bus, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	overlays, err := NewOverlays(cfg.UI.Overlays)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		bus:      bus,
		overlays: overlays,
		logger:   logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			logging.StructuredMiddlewareWithLogger(logger, log.DebugLevel),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height,
		TickRate:  s.config.TickRate,
		Character: s.config.Character,
	}

	var sub *feed.Subscription
	if s.bus != nil {
		var err error
		sub, err = s.bus.Subscribe(8)
		if err != nil {
			s.logger.Warn("cannot subscribe to feed", "err", err)
		} else {
			go func() {
				<-sshSession.Context().Done()
				sub.Close()
			}()
		}
	}

	model := NewSessionModel(SessionDeps{
		Context:   sshSession.Context(),
		Store:     s.store,
		Feed:      s.bus,
		Sub:       sub,
		Overlays:  s.overlays,
		Input:     s.config.UI.Input,
		AssetsDir: s.config.AssetsDir,
		Logger:    s.logger.With("user", sshSession.User()),
	}, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("visitor connected",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("visitor left",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. The store and bus belong to the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionDeps are the shared services a SessionModel builds games from.
type SessionDeps struct {
	Context   context.Context
	Store     *storage.Store
	Feed      feed.Publisher
	Sub       *feed.Subscription
	Overlays  *Overlays
	Input     config.InputConfig
	AssetsDir string
	Logger    *log.Logger
}

// feedMsg carries one event from the live feed into the Bubble Tea loop.
type feedMsg feed.Event

// waitFeed reads the next event from sub.
func waitFeed(sub *feed.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case evt := <-sub.Events():
			return feedMsg(evt)
		case <-sub.Done():
			return nil
		}
	}
}

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	deps      SessionDeps
	config    core.RuntimeConfig
	menu      MenuModel
	scores    *ScoreboardModel
	gameModel *Model
	feedLine  string
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig) SessionModel {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(deps.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), waitFeed(m.deps.Sub))
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	case feedMsg:
		m.feedLine = feed.Event(msg).Summary()
		m.menu = m.menu.WithFeedLine(m.feedLine)
		return m, waitFeed(m.deps.Sub)
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scores != nil:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode. The menu quits its own
// program on select, so those commands are dropped here.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		gm, err := m.startGame(selected.GameID)
		if err != nil {
			m.deps.Logger.Error("cannot start game", "game", selected.GameID, "err", err)
			m.menu = NewMenuModel(m.deps.Store, m.config).WithFeedLine(m.feedLine)
			return m, nil
		}
		m.gameModel = &gm
		return m, gm.Init()
	}

	return m, cmd
}

// startGame builds a controller for gameID and kicks off its sprite batch.
func (m SessionModel) startGame(gameID string) (Model, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return Model{}, err
	}

	var store session.Store
	if m.deps.Store != nil {
		store = m.deps.Store
	}
	ctrl := session.New(g, session.Options{
		Runtime: m.config,
		Store:   store,
		Feed:    m.deps.Feed,
		Logger:  m.deps.Logger,
		Context: m.deps.Context,
	})
	batch := assets.Load(m.deps.Context, m.deps.AssetsDir, ctrl.Assets(), m.deps.Logger)

	return NewModel(ctrl, m.config, GameOptions{
		Batch:    batch,
		Input:    m.deps.Input,
		Overlays: m.deps.Overlays,
		Logger:   m.deps.Logger,
	})
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.deps.Store, m.config).WithFeedLine(m.feedLine)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		m.menu = NewMenuModel(m.deps.Store, m.config).WithFeedLine(m.feedLine)
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scores != nil:
		return m.scores.View()
	}
	return m.menu.View()
}
