// Package pinball is a two-flipper pinball table with bumpers and a timed
// star pickup. Any flipper key raises both flippers.
package pinball

import (
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
)

// Ball is the pinball.
type Ball struct {
	Pos core.Vec
	Vel core.Vec
}

// Star is the bonus pickup.
type Star struct {
	Pos    core.Vec
	Radius float64
}

// Game implements pinball.
type Game struct {
	cfg        config.PinballConfig
	configured bool

	rng       *rand.Rand
	tickMs    float64
	character core.Character
	sprites   core.SpriteSet

	table Table
	left  Flipper
	right Flipper

	tick      uint64
	ball      Ball
	score     int
	gameOver  bool
	star      *Star
	starTimer float64 // ms the star has been up, or ms since it went away
	firstStar bool
}

// New creates a pinball table. Configuration is loaded on the first Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pinball", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pinball" }

// Title returns the display name.
func (g *Game) Title() string { return "Pinball" }

// Configure loads settings from path. A valid preset is accepted and ignored.
func (g *Game) Configure(path, preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	cfg, err := config.LoadPinball(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Assets names the ball, bumper and star sprites.
func (g *Game) Assets(player core.Character) []string {
	return []string{player.HeadSprite(), player.Opponent().HeadSprite(), "star"}
}

// Reset drops a new ball at the top of the table.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		c, err := config.LoadPinball("")
		if err != nil {
			c = config.DefaultPinballConfig()
		}
		g.cfg = c
		g.configured = true
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickMs = cfg.TickMillis()
	g.character = cfg.Character
	if !g.character.Valid() {
		g.character = core.DefaultCharacter
	}
	g.sprites = cfg.Sprites

	g.table = newTable(g.cfg)
	g.left, g.right = newFlippers(g.cfg)

	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.star = nil
	g.starTimer = 0
	g.firstStar = true
	g.ball = Ball{
		Pos: core.V(g.cfg.Ball.StartX, g.cfg.Ball.StartY),
		Vel: core.V((g.rng.Float64()-0.5)*2, 0),
	}
}

// Step advances the table by one tick. The ball moves against the
// flipper positions of the previous tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.updateBall()
	active := input.IsHeld(core.ActionJump) || input.IsHeld(core.ActionLeft) || input.IsHeld(core.ActionRight)
	g.updateFlippers(active)
	g.updateStar()
	g.updateGlows()

	return core.StepResult{State: g.State()}
}

func (g *Game) updateFlippers(active bool) {
	fc := g.cfg.Flipper
	g.left.update(active, fc.Speed, fc.ReturnSpeed)
	g.right.update(active, fc.Speed, fc.ReturnSpeed)
}

// updateStar spawns the star after its delay and retires it after its
// lifetime. The first star and later ones use separate delays.
func (g *Game) updateStar() {
	sc := g.cfg.Star
	g.starTimer += g.tickMs
	if g.star != nil {
		if g.starTimer >= sc.LifetimeMs {
			g.clearStar()
		}
		return
	}
	delay := sc.RespawnMs
	if g.firstStar {
		delay = sc.FirstMs
	}
	if g.starTimer >= delay {
		g.star = &Star{Pos: core.V(sc.X, sc.Y), Radius: sc.Radius}
		g.starTimer = 0
		g.firstStar = false
	}
}

func (g *Game) clearStar() {
	g.star = nil
	g.starTimer = 0
	g.firstStar = false
}

func (g *Game) updateGlows() {
	for i := range g.table.Bumpers {
		b := &g.table.Bumpers[i]
		if b.GlowMs > 0 {
			b.GlowMs = max(0, b.GlowMs-g.tickMs)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
