package asteroids

import "github.com/vovakirdan/bdaygames/internal/core"

// checkCollisions resolves laser hits, then checks whether any asteroid
// reached the ship's row or touched the ship.
func (g *Game) checkCollisions() {
	keptLasers := g.lasers[:0]
	for _, l := range g.lasers {
		if !g.hitFirst(l) {
			keptLasers = append(keptLasers, l)
		}
	}
	g.lasers = keptLasers

	half := g.cfg.Asteroid.Size / 2
	reach := g.cfg.Player.Size/2 + half
	ship := core.V(g.ship.X, g.ship.Y)
	for _, a := range g.asteroids {
		if a.Y+half >= g.ship.Y || ship.Dist(core.V(a.X, a.Y)) < reach {
			g.gameOver = true
			return
		}
	}
}

// hitFirst damages the first asteroid in stored order that l overlaps and
// reports whether the laser was used up.
func (g *Game) hitFirst(l Laser) bool {
	lr := g.laserRect(l)
	for i := range g.asteroids {
		a := &g.asteroids[i]
		if !lr.Intersects(g.asteroidRect(*a)) {
			continue
		}
		a.HP--
		if a.HP <= 0 {
			g.score += g.cfg.Asteroid.Points
			g.asteroids = append(g.asteroids[:i], g.asteroids[i+1:]...)
		}
		return true
	}
	return false
}

func (g *Game) laserRect(l Laser) core.RectF {
	return core.RectF{X: l.X, Y: l.Y, W: g.cfg.Laser.Width, H: g.cfg.Laser.Height}
}

func (g *Game) asteroidRect(a Asteroid) core.RectF {
	s := g.cfg.Asteroid.Size
	return core.RectF{X: a.X - s/2, Y: a.Y - s/2, W: s, H: s}
}
