// Package brickbreaker is a one-screen brick breaker. The bricks carry the
// opponent's face, the ball rides the paddle until launched, and clearing
// the wall wins.
package brickbreaker

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
)

// Ball is the ball, centered on X, Y.
type Ball struct {
	X, Y     float64
	VX, VY   float64
	Launched bool
}

// Paddle is the player's paddle. X, Y is the top-left corner.
type Paddle struct {
	X, Y float64
}

// Brick is one brick of the wall.
type Brick struct {
	Rect      core.RectF
	Row       int
	Destroyed bool
}

// Game implements the brick breaker.
type Game struct {
	cfg        config.BrickBreakerConfig
	configured bool

	rng       *rand.Rand
	character core.Character
	sprites   core.SpriteSet

	tick     uint64
	ball     Ball
	paddle   Paddle
	bricks   []Brick
	gameOver bool
	won      bool
}

// New creates a brick breaker. Configuration is loaded on the first Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("brickbreaker", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "brickbreaker" }

// Title returns the display name.
func (g *Game) Title() string { return "Brick Breaker" }

// Configure loads settings from path. A valid preset is accepted and ignored.
func (g *Game) Configure(path, preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	cfg, err := config.LoadBrickBreaker(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Assets names the brick sprite.
func (g *Game) Assets(player core.Character) []string {
	return []string{player.Opponent().HeadSprite()}
}

// Reset rebuilds the wall and parks the ball on the paddle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		c, err := config.LoadBrickBreaker("")
		if err != nil {
			c = config.DefaultBrickBreakerConfig()
		}
		g.cfg = c
		g.configured = true
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.character = cfg.Character
	if !g.character.Valid() {
		g.character = core.DefaultCharacter
	}
	g.sprites = cfg.Sprites

	pc := g.cfg.Paddle
	g.tick = 0
	g.gameOver = false
	g.won = false
	g.paddle = Paddle{X: g.cfg.Width/2 - pc.Width/2, Y: pc.Y}
	g.ball = Ball{X: g.cfg.Width / 2, Y: pc.Y - g.cfg.Ball.Radius - 5}
	g.buildBricks()
}

func (g *Game) buildBricks() {
	bc := g.cfg.Bricks
	g.bricks = make([]Brick, 0, bc.Rows*bc.Cols)
	for row := range bc.Rows {
		for col := range bc.Cols {
			g.bricks = append(g.bricks, Brick{
				Rect: core.RectF{
					X: bc.OffsetX + float64(col)*(bc.Width+bc.Padding),
					Y: bc.OffsetY + float64(row)*(bc.Height+bc.Padding),
					W: bc.Width,
					H: bc.Height,
				},
				Row: row,
			})
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if input.Has(core.ActionJump) {
		g.launch()
	}
	g.updatePaddle(input)
	fell := g.updateBall()
	g.checkPaddle()
	g.checkBricks()

	// clearing the wall wins even if the ball fell on the same tick
	switch {
	case g.BricksLeft() == 0:
		g.won = true
	case fell:
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// launch sends a parked ball up and to the right at 45° ± 15°.
func (g *Game) launch() {
	if g.ball.Launched {
		return
	}
	angle := math.Pi/4 + (g.rng.Float64()-0.5)*math.Pi/6
	speed := g.cfg.Ball.Speed
	g.ball.VX = math.Cos(angle) * speed
	g.ball.VY = -math.Sin(angle) * speed
	g.ball.Launched = true
}

func (g *Game) updatePaddle(input core.InputFrame) {
	pc := g.cfg.Paddle
	g.paddle.X = core.ClampF(g.paddle.X+float64(input.Horizontal())*pc.Speed, 0, g.cfg.Width-pc.Width)
	if !g.ball.Launched {
		g.ball.X = g.paddle.X + pc.Width/2
	}
}

// BricksLeft counts bricks still standing.
func (g *Game) BricksLeft() int {
	n := 0
	for _, b := range g.bricks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}

// State returns the current game state. The score is the number of
// bricks destroyed.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    len(g.bricks) - g.BricksLeft(),
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
