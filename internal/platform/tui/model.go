package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bdaygames/internal/assets"
	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
	"github.com/vovakirdan/bdaygames/internal/session"
)

const hint = "R: restart  B: menu  Q: quit"

// GameOptions configures a game Model.
type GameOptions struct {
	Batch    *assets.Batch // Sprite batch to wait for; nil starts immediately
	Input    config.InputConfig
	Overlays *Overlays
	Logger   *log.Logger

	// ScreenshotDir enables ctrl+s screenshots when set.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl      *session.Controller
	opts      GameOptions
	screen    *core.Screen
	input     *InputState
	keyMapper *KeyMapper
	tickRate  int

	gen        int
	ticking    bool
	quitting   bool
	backToMenu bool
	quitOnBack bool
}

// NewModel creates a model that drives ctrl. The controller must still be loading.
func NewModel(ctrl *session.Controller, cfg core.RuntimeConfig, opts GameOptions) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Input.HoldInitialMs <= 0 || opts.Input.HoldRepeatMs <= 0 {
		opts.Input = config.DefaultUIConfig().Input
	}
	if opts.Overlays == nil {
		ov, err := NewOverlays(config.DefaultUIConfig().Overlays)
		if err != nil {
			return Model{}, err
		}
		opts.Overlays = ov
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	return Model{
		ctrl:      ctrl,
		opts:      opts,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		input:     NewInputState(opts.Input),
		keyMapper: NewKeyMapper(),
		tickRate:  tickRate,
		gen:       nextGen(),
		ticking:   true,
	}, nil
}

// Init starts asset loading and the tick chain.
func (m Model) Init() tea.Cmd {
	load := func() tea.Msg { return assetsLoadedMsg{} }
	if m.opts.Batch != nil {
		load = waitAssets(m.opts.Batch)
	}
	return tea.Batch(load, tickCmd(m.tickRate, m.gen))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case assetsLoadedMsg:
		if msg.batch != m.opts.Batch {
			return m, nil
		}
		var sprites core.SpriteSet
		if msg.batch != nil {
			sprites = msg.batch.Sprites()
			if failed := msg.batch.Failed(); len(failed) > 0 {
				m.opts.Logger.Debug("drawing primitives for missing sprites", "sprites", failed)
			}
		}
		m.ctrl.Begin(sprites)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	ended := m.ctrl.Phase().Terminal()
	switch action {
	case core.ActionPause:
		m.ctrl.TogglePause()
		m.input.Reset()
	case core.ActionRestart:
		if ended || m.ctrl.Paused() {
			return m.restart()
		}
	case core.ActionBack:
		if ended || m.ctrl.Paused() {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
	default:
		m.input.Press(action, time.Now())
	}
	return m, nil
}

// handleMouse maps the left button to Jump.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.input.MouseDown()
	case msg.Action == tea.MouseActionRelease:
		m.input.MouseUp()
	}
	return m, nil
}

// handleTick steps the session. Reaching a terminal phase ends the tick chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	m.ctrl.Tick(m.input.Frame(msg.At))
	if m.ctrl.Phase().Terminal() {
		m.ticking = false
		m.input.Reset()
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.tickRate, m.gen)
}

// restart rebuilds the game and replaces the tick chain.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.ctrl.Restart()
	m.input.Reset()
	m.gen = nextGen()
	m.ticking = true
	return m, tickCmd(m.tickRate, m.gen)
}

func (m Model) overlayData() OverlayData {
	st := m.ctrl.State()
	g := m.ctrl.Game()
	_, hasBest := g.(registry.BestScorer)
	data := OverlayData{
		Title:   g.Title(),
		Score:   st.Score,
		Best:    st.Best,
		HasBest: hasBest,
		Hint:    hint,
		Summary: fmt.Sprintf("%s cleared with %d points", g.Title(), st.Score),
	}
	if m.opts.Batch != nil {
		data.Pending = m.opts.Batch.Pending()
	}
	return data
}

// draw renders the game and its overlay into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.ctrl.Render(m.screen)
	box, err := m.opts.Overlays.Render(m.ctrl.Phase(), m.ctrl.Paused(), m.overlayData())
	if err != nil {
		m.opts.Logger.Debug("overlay", "err", err)
		return
	}
	stamp(m.screen, box)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.draw()

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.ctrl.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Controller returns the session the model drives.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Ticking reports whether a tick chain is live.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run plays one session in the local terminal until the player quits or goes back.
func Run(ctrl *session.Controller, cfg core.RuntimeConfig, opts GameOptions) error {
	model, err := NewModel(ctrl, cfg, opts)
	if err != nil {
		return err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

// DefaultScreenshotDir is ~/.arcade/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "screenshots")
}
