// Package pacman is a wall-less chase on a wrapping grid. The player eats
// pellets while the opponent's heads wander at random; eating thins the
// board and brings in more chasers.
package pacman

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
	"github.com/vovakirdan/bdaygames/internal/registry"
)

// Pellet is a food cell. It is eaten from the cell center.
type Pellet struct {
	X, Y int
}

// Center is the pellet position in grid units.
func (p Pellet) Center() core.Vec {
	return core.V(float64(p.X)+0.5, float64(p.Y)+0.5)
}

// Game implements the chase.
type Game struct {
	cfg        config.PacmanConfig
	configured bool

	rng       *rand.Rand
	tickMs    float64
	character core.Character
	sprites   core.SpriteSet

	tick      uint64
	player    core.Vec
	ghosts    []Ghost
	food      []Pellet
	totalFood int
	eaten     int

	item      *Item
	itemTimer float64
	boostMs   float64
	freezeMs  float64
	lastPower ItemKind

	gameOver bool
	won      bool
}

// New creates a chase game. Configuration is loaded on the first Reset.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pacman" }

// Title returns the display name.
func (g *Game) Title() string { return "Pac-Man" }

// Configure loads settings from path. A valid preset is accepted and ignored.
func (g *Game) Configure(path, preset string) error {
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	cfg, err := config.LoadPacman(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Assets names the player, ghost and item sprites.
func (g *Game) Assets(player core.Character) []string {
	return []string{player.HeadSprite(), player.Opponent().HeadSprite(), "cherry", "snowflake"}
}

// Reset centers the player, places the first ghost and fills the board.
// The ghost is placed before the food so it can land anywhere but on the
// player.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		c, err := config.LoadPacman("")
		if err != nil {
			c = config.DefaultPacmanConfig()
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

	mid := float64(g.cfg.Grid) / 2
	g.tick = 0
	g.player = core.V(mid, mid)
	g.gameOver = false
	g.won = false

	g.ghosts = nil
	g.food = nil
	g.spawnGhost()
	g.fillFood()

	g.item = nil
	g.itemTimer = 0
	g.boostMs = 0
	g.freezeMs = 0
	g.lastPower = ItemNone
}

// fillFood puts a pellet on every cell outside the clear zone.
func (g *Game) fillFood() {
	lo, hi := g.cfg.ClearZoneMin, g.cfg.ClearZoneMax
	g.food = g.food[:0]
	for x := range g.cfg.Grid {
		for y := range g.cfg.Grid {
			if x >= lo && x <= hi && y >= lo && y <= hi {
				continue
			}
			g.food = append(g.food, Pellet{X: x, Y: y})
		}
	}
	g.totalFood = len(g.food)
	g.eaten = 0
}

// Step advances the chase by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.movePlayer(input)
	g.moveGhosts()
	g.updatePowerUps()
	g.updateItemSpawn()
	g.checkCollisions()

	return core.StepResult{State: g.State()}
}

// heading picks one axis from the held keys, preferring horizontal.
func heading(input core.InputFrame) core.Vec {
	if h := input.Horizontal(); h != 0 {
		return core.V(float64(h), 0)
	}
	switch {
	case input.IsHeld(core.ActionUp):
		return core.V(0, -1)
	case input.IsHeld(core.ActionDown):
		return core.V(0, 1)
	}
	return core.Vec{}
}

// movePlayer moves only while a direction is held.
func (g *Game) movePlayer(input core.InputFrame) {
	dir := heading(input)
	if dir == (core.Vec{}) {
		return
	}
	speed := g.cfg.PlayerSpeed
	if g.Boosted() {
		speed *= g.cfg.BoostFactor
	}
	g.player = g.wrap(g.player.Add(dir.Scale(speed)))
}

func (g *Game) wrap(p core.Vec) core.Vec {
	n := float64(g.cfg.Grid)
	return core.V(core.Wrap(p.X, n), core.Wrap(p.Y, n))
}

func (g *Game) touching(a, b core.Vec) bool {
	return a.Dist(b) < g.cfg.ContactRadius
}

// checkCollisions resolves ghosts first, then food, then the item. Ghost
// contact ends the game before anything is eaten.
func (g *Game) checkCollisions() {
	for _, gh := range g.ghosts {
		if g.touching(g.player, gh.Pos) {
			g.gameOver = true
			return
		}
	}

	kept := make([]Pellet, 0, len(g.food))
	for _, p := range g.food {
		if !g.touching(g.player, p.Center()) {
			kept = append(kept, p)
			continue
		}
		g.eaten++
		g.maybeSpawnGhost()
	}
	g.food = kept
	if g.eaten >= g.totalFood {
		g.won = true
		return
	}

	if g.item != nil && g.touching(g.player, g.item.Pos) {
		g.apply(g.item.Kind)
		g.item = nil
	}
}

// maybeSpawnGhost adds the second and third ghost as eating passes
// each threshold. At most one ghost is added per pellet.
func (g *Game) maybeSpawnGhost() {
	frac := g.EatenFraction()
	switch {
	case len(g.ghosts) == 1 && frac >= g.cfg.Ghosts.SecondAt:
		g.spawnGhost()
	case len(g.ghosts) == 2 && frac >= g.cfg.Ghosts.ThirdAt:
		g.spawnGhost()
	}
}

// EatenFraction is the share of pellets eaten, in [0, 1].
func (g *Game) EatenFraction() float64 {
	if g.totalFood == 0 {
		return 0
	}
	return float64(g.eaten) / float64(g.totalFood)
}

// EatenPercent is EatenFraction rounded to a whole percentage.
func (g *Game) EatenPercent() int {
	return int(math.Round(g.EatenFraction() * 100))
}

// State returns the current game state. The score is pellets eaten.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eaten,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
