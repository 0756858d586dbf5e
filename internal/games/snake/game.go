// Package snake is the classic grid snake on a wrapping board. The head is
// the player's character and the food is the opponent.
package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
)

// Point is a grid cell, or a unit direction.
type Point struct {
	X, Y int
}

// Directions.
var (
	DirUp    = Point{0, -1}
	DirDown  = Point{0, 1}
	DirLeft  = Point{-1, 0}
	DirRight = Point{1, 0}
)

// Game implements the Snake game.
type Game struct {
	cfg        config.SnakeConfig
	configured bool

	rng     *rand.Rand
	tickMs  float64
	player  core.Character
	sprites core.SpriteSet

	tick    uint64
	snake   []Point // head at index 0
	dir     Point
	nextDir Point
	food    Point
	score   int
	moveAcc float64 // simulated ms since the last move

	gameOver bool
	won      bool
}

// New creates a Snake game. Configuration is loaded on the first Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Configure loads the grid settings from path. Snake has no difficulty
// ramp, so a valid preset is accepted and ignored.
func (g *Game) Configure(path, preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Assets names the head and food sprites.
func (g *Game) Assets(player core.Character) []string {
	return []string{player.HeadSprite(), player.Opponent().HeadSprite()}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		c, err := config.LoadSnake("")
		if err != nil {
			c = config.DefaultSnakeConfig()
		}
		g.cfg = c
		g.configured = true
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickMs = cfg.TickMillis()
	g.player = cfg.Character
	if !g.player.Valid() {
		g.player = core.DefaultCharacter
	}
	g.sprites = cfg.Sprites

	g.tick = 0
	g.score = 0
	g.moveAcc = 0
	g.gameOver = false
	g.won = false
	g.snake = []Point{{X: g.cfg.StartX, Y: g.cfg.StartY}}
	g.dir = DirRight
	g.nextDir = DirRight
	g.spawnFood()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.processInput(input)

	g.moveAcc += g.tickMs
	if g.moveAcc >= g.cfg.MoveIntervalMs {
		g.moveAcc -= g.cfg.MoveIntervalMs
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a direction press. Horizontal presses win.
func (g *Game) processInput(input core.InputFrame) {
	var want Point
	switch {
	case input.Has(core.ActionLeft):
		want = DirLeft
	case input.Has(core.ActionRight):
		want = DirRight
	case input.Has(core.ActionUp):
		want = DirUp
	case input.Has(core.ActionDown):
		want = DirDown
	default:
		return
	}

	if want.X == -g.dir.X && want.Y == -g.dir.Y {
		return
	}
	g.nextDir = want
}

// moveSnake moves the snake one cell, wrapping at the edges.
func (g *Game) moveSnake() {
	// a buffered turn only applies across the current axis
	if (g.nextDir.X != 0 && g.dir.X == 0) || (g.nextDir.Y != 0 && g.dir.Y == 0) {
		g.dir = g.nextDir
	}

	head := g.snake[0]
	next := Point{
		X: core.WrapInt(head.X+g.dir.X, g.cfg.Grid),
		Y: core.WrapInt(head.Y+g.dir.Y, g.cfg.Grid),
	}

	if slices.Contains(g.snake[1:], next) {
		g.gameOver = true
		return
	}

	g.snake = slices.Insert(g.snake, 0, next)
	if next == g.food {
		g.score++
		g.spawnFood()
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

// spawnFood places food on a random cell the snake does not cover. A full
// board is a win.
func (g *Game) spawnFood() {
	free := make([]Point, 0, g.cfg.Grid*g.cfg.Grid)
	for y := range g.cfg.Grid {
		for x := range g.cfg.Grid {
			p := Point{X: x, Y: y}
			if !slices.Contains(g.snake, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		g.won = true
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
