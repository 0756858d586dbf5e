// Package runner is a side-scrolling runner. The player's character runs
// in place and jumps or ducks under columns of opponent blocks. The run
// waits in a ready state until the first jump, and the best score is
// persisted between sessions.
package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
)

// BestScoreKey is the storage key of the persisted best score.
const BestScoreKey = "runnerBestScore"

const (
	hitInset   = 5  // hitbox shrink from the drawn figure
	duckHeight = 20 // body height while ducking
)

// Player is the runner. Y is the feet position.
type Player struct {
	X, Y     float64
	VY       float64
	OnGround bool
	Ducking  bool
	LegFrame float64
}

// Game implements the runner.
type Game struct {
	cfg        config.RunnerConfig
	configured bool
	preset     config.DifficultyPreset

	difficulty *config.DifficultyManager
	obstacles  *ObstacleManager
	rng        *rand.Rand
	tickMs     float64
	character  core.Character
	sprites    core.SpriteSet

	tick         uint64
	player       Player
	ready        bool
	elapsedMs    float64
	speed        float64
	groundOffset float64
	score        int
	best         int
	gameOver     bool
}

// New creates a runner. Configuration is loaded on the first Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "runner" }

// Title returns the display name.
func (g *Game) Title() string { return "Runner" }

// Configure loads settings from path and applies a difficulty preset.
func (g *Game) Configure(path, preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.preset = p
	g.configured = true
	return nil
}

// Assets names the player head and the block sprite.
func (g *Game) Assets(player core.Character) []string {
	return []string{player.HeadSprite(), player.Opponent().HeadSprite()}
}

// BestScoreKey implements registry.BestScorer.
func (g *Game) BestScoreKey() string { return BestScoreKey }

// SetBestScore implements registry.BestScorer.
func (g *Game) SetBestScore(best int) { g.best = best }

// Reset returns to the ready state with an empty field.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		c, err := config.LoadRunner("")
		if err != nil {
			c = config.DefaultRunnerConfig()
		}
		g.cfg = c
		g.configured = true
	}
	diff := g.cfg.Difficulty
	diff.Apply(g.preset)
	g.difficulty = config.NewDifficultyManager(diff)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickMs = cfg.TickMillis()
	g.character = cfg.Character
	if !g.character.Valid() {
		g.character = core.DefaultCharacter
	}
	g.sprites = cfg.Sprites

	g.obstacles = NewObstacleManager(g.rng, &g.cfg, g.difficulty)
	g.player = Player{X: g.cfg.Player.X, Y: g.cfg.Player.GroundY, OnGround: true}
	g.tick = 0
	g.ready = true
	g.elapsedMs = 0
	g.speed = g.difficulty.Speed(0, 0)
	g.groundOffset = 0
	g.score = 0
	g.gameOver = false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	jump := input.Has(core.ActionJump) || input.Has(core.ActionUp)
	if g.ready {
		if jump {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	g.elapsedMs += g.tickMs
	g.speed = g.difficulty.Speed(0, g.elapsedMs)

	g.processInput(input, jump)
	g.updatePlayer()
	g.obstacles.Update(g.speed, g.elapsedMs)
	g.groundOffset += g.speed
	g.score = int(math.Floor(g.elapsedMs / g.cfg.ScoreMs))

	if g.obstacles.CheckCollision(g.Hitbox()) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	g.ready = false
	g.elapsedMs = 0
	g.obstacles.Reset()
}

// processInput applies duck and jump. Ducking needs the ground and blocks
// jumping.
func (g *Game) processInput(input core.InputFrame, jump bool) {
	p := &g.player
	p.Ducking = p.OnGround && input.IsHeld(core.ActionDown)
	if jump && p.OnGround && !p.Ducking {
		p.VY = g.cfg.Player.JumpSpeed
		p.OnGround = false
	}
}

func (g *Game) updatePlayer() {
	p := &g.player
	p.VY += g.cfg.Player.Gravity
	p.Y += p.VY
	if p.Y >= g.cfg.Player.GroundY {
		p.Y = g.cfg.Player.GroundY
		p.VY = 0
		p.OnGround = true
	}
	if !p.Ducking {
		p.LegFrame = math.Mod(p.LegFrame+0.2, 2*math.Pi)
	}
}

// Hitbox is the player's collision box. Ducking on the ground lowers its top.
func (g *Game) Hitbox() core.RectF {
	p := g.player
	pc := g.cfg.Player
	half := pc.HeadSize / 2

	top := p.Y - pc.BodyHeight - half + hitInset
	if p.Ducking && p.OnGround {
		top = p.Y - half - duckHeight + hitInset
	}
	bottom := p.Y - hitInset
	return core.RectF{
		X: p.X - pc.HalfWidth,
		Y: top,
		W: 2 * pc.HalfWidth,
		H: bottom - top,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Ready:    g.ready,
		Best:     g.best,
	}
}
