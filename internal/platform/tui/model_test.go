package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/session"
)

// scriptGame scores a point per tick and ends at endAt.
type scriptGame struct {
	endAt int
	steps int
	last  core.InputFrame
	state core.GameState
}

func (g *scriptGame) ID() string               { return "script" }
func (g *scriptGame) Title() string            { return "Script" }
func (g *scriptGame) Reset(core.RuntimeConfig) { g.steps = 0; g.state = core.GameState{} }
func (g *scriptGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "script") }
func (g *scriptGame) State() core.GameState    { return g.state }
func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	g.state.Score++
	if g.state.Score >= g.endAt {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *scriptGame) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	quiet := log.New(io.Discard)
	ctrl := session.New(g, session.Options{Runtime: cfg, Logger: quiet})
	m, err := NewModel(ctrl, cfg, GameOptions{Logger: quiet})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelWaitsForAssets(t *testing.T) {
	g := &scriptGame{endAt: 10}
	m := newTestModel(t, g)

	m, _ = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if g.steps != 0 {
		t.Fatal("ticks while loading must not step the game")
	}

	m, _ = update(t, m, assetsLoadedMsg{})
	if m.Controller().Phase() != core.PhaseRunning {
		t.Fatalf("phase = %v, expected running", m.Controller().Phase())
	}
}

func TestModelTickChain(t *testing.T) {
	g := &scriptGame{endAt: 2}
	m := newTestModel(t, g)
	m, _ = update(t, m, assetsLoadedMsg{})

	m, cmd := update(t, m, TickMsg{Gen: m.gen + 1000, At: time.Now()})
	if cmd != nil || g.steps != 0 {
		t.Fatal("stale tick should be ignored")
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if cmd == nil || g.steps != 1 {
		t.Fatalf("live tick should step and reschedule (steps %d)", g.steps)
	}

	m, cmd = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if cmd != nil {
		t.Error("reaching game over should end the tick chain")
	}
	if m.Ticking() {
		t.Error("Ticking should be false after game over")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over overlay should be drawn")
	}

	old := m.gen
	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil || m.gen == old {
		t.Fatal("restart should start a new tick chain")
	}
	if m.Controller().Phase() != core.PhaseRunning || g.steps != 0 {
		t.Errorf("restart should rebuild the game: phase %v steps %d", m.Controller().Phase(), g.steps)
	}

	m, _ = update(t, m, TickMsg{Gen: old, At: time.Now()})
	if g.steps != 0 {
		t.Error("tick from the cancelled chain should be ignored")
	}
	update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if g.steps != 1 {
		t.Error("tick from the new chain should step")
	}
}

func TestModelKeysReachGame(t *testing.T) {
	g := &scriptGame{endAt: 100}
	m := newTestModel(t, g)
	m, _ = update(t, m, assetsLoadedMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if !g.last.Has(core.ActionRight) || !g.last.IsHeld(core.ActionRight) {
		t.Errorf("right should be pressed and held, got %+v", g.last)
	}

	update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if g.last.Has(core.ActionRight) {
		t.Error("a press should reach exactly one tick")
	}
}

func TestModelPauseAndRestartRules(t *testing.T) {
	g := &scriptGame{endAt: 100}
	m := newTestModel(t, g)
	m, _ = update(t, m, assetsLoadedMsg{})
	m, _ = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})

	gen := m.gen
	m, _ = update(t, m, runeKey('r'))
	if m.gen != gen || g.steps != 1 {
		t.Fatal("restart must be ignored while running")
	}

	m, _ = update(t, m, runeKey('p'))
	if !m.Controller().Paused() {
		t.Fatal("p should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused overlay should be drawn")
	}
	m, _ = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	if g.steps != 1 {
		t.Error("paused session must not step")
	}

	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b while paused should leave for the menu")
	}

	_, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
}
