package pacman

import "github.com/vovakirdan/bdaygames/internal/core"

var directions = []core.Vec{core.V(1, 0), core.V(-1, 0), core.V(0, 1), core.V(0, -1)}

// Ghost wanders the grid, sometimes turning when its retarget timer fires.
type Ghost struct {
	Pos        core.Vec
	Dir        core.Vec
	TimerMs    float64
	IntervalMs float64
}

func (g *Game) retargetInterval() float64 {
	gc := g.cfg.Ghosts
	return gc.RetargetMs + g.rng.Float64()*gc.RetargetJitMs
}

func (g *Game) spawnGhost() {
	x, y := g.randomCell()
	g.ghosts = append(g.ghosts, Ghost{
		Pos:        core.V(float64(x)+0.5, float64(y)+0.5),
		Dir:        directions[g.rng.Intn(len(directions))],
		IntervalMs: g.retargetInterval(),
	})
}

// randomCell draws cells until one is free of the player and of food,
// giving up after the configured number of attempts and keeping the last
// draw.
func (g *Game) randomCell() (int, int) {
	px, py := int(g.player.X), int(g.player.Y)
	var x, y int
	for range g.cfg.Ghosts.SpawnAttempts {
		x, y = g.rng.Intn(g.cfg.Grid), g.rng.Intn(g.cfg.Grid)
		if (x != px || y != py) && !g.hasFood(x, y) {
			break
		}
	}
	return x, y
}

func (g *Game) hasFood(x, y int) bool {
	for _, p := range g.food {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// moveGhosts advances every ghost unless the snowflake has frozen them.
// A frozen ghost's retarget timer also stops.
func (g *Game) moveGhosts() {
	if g.Frozen() {
		return
	}
	speed := g.cfg.Ghosts.Speed
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gh.TimerMs += g.tickMs
		if gh.TimerMs >= gh.IntervalMs {
			if g.rng.Float64() < g.cfg.Ghosts.TurnChance {
				gh.Dir = directions[g.rng.Intn(len(directions))]
			}
			gh.TimerMs = 0
			gh.IntervalMs = g.retargetInterval()
		}
		gh.Pos = g.wrap(gh.Pos.Add(gh.Dir.Scale(speed)))
	}
}
