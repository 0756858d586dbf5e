package runner

import (
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

// Obstacle is a column of opponent blocks scrolling left. Blocks holds the
// top edge of each block, lowest first.
type Obstacle struct {
	X        float64
	Blocks   []float64
	Floating bool
}

// Rects returns the collision box of every block.
func (o Obstacle) Rects(size float64) []core.RectF {
	rects := make([]core.RectF, len(o.Blocks))
	for i, top := range o.Blocks {
		rects[i] = core.RectF{X: o.X, Y: top, W: size, H: size}
	}
	return rects
}

// ObstacleManager spawns, scrolls and removes obstacles. Spawning runs on
// simulated milliseconds and the gap shrinks as the difficulty level rises.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager

	lastSpawnMs float64
}

// NewObstacleManager creates a manager whose draws come from rng.
func NewObstacleManager(rng *rand.Rand, cfg *config.RunnerConfig, diff *config.DifficultyManager) *ObstacleManager {
	om := &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
	om.Reset()
	return om
}

// Reset clears all obstacles and schedules the first spawn.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
	om.lastSpawnMs = 0
}

// Update scrolls obstacles by speed, drops the ones that left the field
// and spawns a new one once the gap since the last spawn reaches this
// tick's interval. The interval is drawn fresh every tick, so long gaps
// are rare.
func (om *ObstacleManager) Update(speed, elapsedMs float64) {
	size := om.cfg.Obstacles.BlockSize
	for i := range om.obstacles {
		om.obstacles[i].X -= speed
	}

	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.X+size > 0 {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept

	if elapsedMs-om.lastSpawnMs >= om.interval(elapsedMs) {
		om.spawn()
		om.lastSpawnMs = elapsedMs
	}
}

// interval is the ramped base interval scaled by a random factor.
func (om *ObstacleManager) interval(elapsedMs float64) float64 {
	o := om.cfg.Obstacles
	base := om.difficulty.IntervalMs(0, elapsedMs)
	return base * (o.JitterMin + om.rng.Float64()*o.JitterSpan)
}

// spawn adds one of five shapes at the right edge: one, two or three
// blocks stacked on the ground, or one or two blocks floating.
func (om *ObstacleManager) spawn() {
	o := om.cfg.Obstacles
	ground := om.cfg.Player.GroundY
	stack := func(base float64, n int) []float64 {
		tops := make([]float64, n)
		for i := range n {
			tops[i] = base - o.BlockSize*float64(i+1) - o.Spacing*float64(i)
		}
		return tops
	}

	ob := Obstacle{X: om.cfg.Width}
	switch r := om.rng.Float64(); {
	case r < 0.2:
		ob.Blocks = stack(ground, 1)
	case r < 0.4:
		ob.Blocks = stack(ground, 2)
	case r < 0.6:
		ob.Blocks = stack(ground, 3)
	case r < 0.8:
		ob.Blocks = stack(om.floatBase(), 1)
		ob.Floating = true
	default:
		ob.Blocks = stack(om.floatBase(), 2)
		ob.Floating = true
	}
	om.obstacles = append(om.obstacles, ob)
}

func (om *ObstacleManager) floatBase() float64 {
	o := om.cfg.Obstacles
	return om.cfg.Player.GroundY - o.FloatLift - om.rng.Float64()*o.FloatJitter
}

// Obstacles returns the live obstacles, oldest first.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// CheckCollision reports whether the player box touches any block. Touching
// edges count as a hit.
func (om *ObstacleManager) CheckCollision(player core.RectF) bool {
	for _, o := range om.obstacles {
		for _, b := range o.Rects(om.cfg.Obstacles.BlockSize) {
			if !(player.Right() < b.X || player.X > b.Right() || player.Bottom() < b.Y || player.Y > b.Bottom()) {
				return true
			}
		}
	}
	return false
}
