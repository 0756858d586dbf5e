// Package asteroids is a vertical shooter. The player's character slides
// along the bottom row with an automatic laser while large asteroids drift
// down. Some asteroids carry the opponent's face and take twice the hits.
package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
)

// Ship is the player. X is the center.
type Ship struct {
	X, Y float64
	Dir  int // -1 left, 0 still, 1 right
}

// Laser is a projectile. X is the left edge and Y the top.
type Laser struct {
	X, Y float64
}

// Asteroid is a falling rock centered on X, Y.
type Asteroid struct {
	X, Y     float64
	HP       int
	MaxHP    int
	Opponent bool
}

// Game implements the shooter.
type Game struct {
	cfg        config.AsteroidsConfig
	configured bool

	rng       *rand.Rand
	tickMs    float64
	character core.Character
	sprites   core.SpriteSet

	tick      uint64
	elapsedMs float64
	ship      Ship
	lasers    []Laser
	asteroids []Asteroid
	score     int
	gameOver  bool

	lastLaserMs     float64
	lastSpawnMs     float64
	nextSpawnIsPair bool
}

// New creates a shooter. Configuration is loaded on the first Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "asteroids" }

// Title returns the display name.
func (g *Game) Title() string { return "Asteroids" }

// Configure loads settings from path. The shooter has a fixed cadence, so
// a valid preset is accepted and ignored.
func (g *Game) Configure(path, preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	cfg, err := config.LoadAsteroids(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Assets names the ship, regular asteroid and opponent asteroid sprites.
func (g *Game) Assets(player core.Character) []string {
	return []string{player.HeadSprite(), "asteroid", player.Opponent().HeadSprite()}
}

// Reset starts a fresh wave with two asteroids already on the field.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		c, err := config.LoadAsteroids("")
		if err != nil {
			c = config.DefaultAsteroidsConfig()
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

	g.tick = 0
	g.elapsedMs = 0
	g.ship = Ship{X: g.cfg.Width / 2, Y: g.cfg.Player.Y}
	g.lasers = g.lasers[:0]
	g.asteroids = g.asteroids[:0]
	g.score = 0
	g.gameOver = false
	g.lastLaserMs = math.Inf(-1)
	g.lastSpawnMs = 0
	g.nextSpawnIsPair = false

	g.spawnAsteroid(50)
	g.spawnAsteroid(150)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.elapsedMs += g.tickMs

	g.updateShip(input)
	g.updateLasers()
	g.updateAsteroids()
	g.updateSpawning()
	g.checkCollisions()

	return core.StepResult{State: g.State()}
}

func (g *Game) updateShip(input core.InputFrame) {
	half := g.cfg.Player.Size / 2
	g.ship.Dir = input.Horizontal()
	g.ship.X = core.ClampF(g.ship.X+float64(g.ship.Dir)*g.cfg.Player.Speed, half, g.cfg.Width-half)
}

// updateLasers fires when the cooldown allows, then moves every laser up
// and drops those fully above the field.
func (g *Game) updateLasers() {
	lc := g.cfg.Laser
	if g.elapsedMs-g.lastLaserMs >= lc.CooldownMs {
		g.lasers = append(g.lasers, Laser{X: g.ship.X, Y: lc.SpawnY})
		g.lastLaserMs = g.elapsedMs
	}

	kept := g.lasers[:0]
	for _, l := range g.lasers {
		l.Y -= lc.Speed
		if l.Y+lc.Height > 0 {
			kept = append(kept, l)
		}
	}
	g.lasers = kept
}

func (g *Game) updateAsteroids() {
	ac := g.cfg.Asteroid
	kept := g.asteroids[:0]
	for _, a := range g.asteroids {
		a.Y += ac.Speed
		if a.Y < g.cfg.Height+ac.Size {
			kept = append(kept, a)
		}
	}
	g.asteroids = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
