package pinball

import "github.com/vovakirdan/bdaygames/internal/core"

// updateBall integrates the ball and resolves every collider once, in
// order: walls, obstacles, bumpers, flippers, star. A ball past the
// drain line ends the game.
func (g *Game) updateBall() {
	pc := g.cfg.Physics
	b := &g.ball

	b.Vel.Y += pc.Gravity
	b.Vel = b.Vel.Scale(pc.Friction)
	if speed := b.Vel.Len(); speed > pc.MaxSpeed {
		b.Vel = b.Vel.Scale(pc.MaxSpeed / speed)
	}
	b.Pos = b.Pos.Add(b.Vel)

	for _, s := range g.table.Walls {
		g.bounceLine(s)
	}
	for _, s := range g.table.Obstacles {
		g.bounceLine(s)
	}
	for i := range g.table.Bumpers {
		g.hitBumper(&g.table.Bumpers[i])
	}
	g.hitFlipper(g.left)
	g.hitFlipper(g.right)
	g.collectStar()

	if b.Pos.Y > g.cfg.DrainY {
		g.gameOver = true
	}
}

// bounceLine reflects the ball off s, keeping restitution of the normal
// component, and pushes it clear of the segment. Distance and push-out are
// measured from the closest point on s, so a ball at a segment end moves
// radially away from that end.
func (g *Game) bounceLine(s core.Segment) bool {
	b := &g.ball
	r := g.cfg.Ball.Radius
	closest, _ := s.Closest(b.Pos)
	dist := b.Pos.Dist(closest)
	if dist >= r {
		return false
	}

	d := s.B.Sub(s.A).Norm()
	n := core.V(-d.Y, d.X)
	dot := b.Vel.Dot(n)
	b.Vel = b.Vel.Sub(n.Scale(2 * dot * g.cfg.Physics.Restitution))

	out := n
	if dist > 0 {
		out = b.Pos.Sub(closest).Scale(1 / dist)
	}
	b.Pos = b.Pos.Add(out.Scale(r - dist))
	return true
}

// hitBumper kicks the ball away from bm, scores and lights the bumper.
func (g *Game) hitBumper(bm *Bumper) bool {
	b := &g.ball
	dist := b.Pos.Dist(bm.Pos)
	overlap := g.cfg.Ball.Radius + bm.Radius - dist
	if overlap <= 0 {
		return false
	}

	n := core.V(0, -1)
	if dist > 0 {
		n = b.Pos.Sub(bm.Pos).Scale(1 / dist)
	}
	b.Pos = b.Pos.Add(n.Scale(overlap))
	impulse := b.Vel.Dot(n) * (1 + g.cfg.Physics.Restitution)
	b.Vel = b.Vel.Sub(n.Scale(impulse)).Add(n.Scale(2))

	bm.GlowMs = g.cfg.Bumper.GlowMs
	g.score += g.cfg.Bumper.Points
	return true
}

// hitFlipper treats the flipper as a capsule whose width tapers from base
// to tip. On contact the ball is pushed out and bounced, and a swinging
// settled flipper adds a kick along its length.
func (g *Game) hitFlipper(f Flipper) bool {
	fc := g.cfg.Flipper
	b := &g.ball

	closest, t := f.Segment(fc.Length).Closest(b.Pos)
	width := core.Lerp(fc.BaseWidth, fc.TipWidth, t)
	dist := b.Pos.Dist(closest)
	minDist := g.cfg.Ball.Radius + width/2
	if dist >= minDist {
		return false
	}

	dir := f.Dir()
	n := core.V(-dir.Y, dir.X)
	if dist > 0 {
		n = b.Pos.Sub(closest).Scale(1 / dist)
	}
	b.Pos = b.Pos.Add(n.Scale(minDist - dist))

	rel := b.Vel.Dot(n)
	b.Vel = b.Vel.Sub(n.Scale(2 * rel * fc.Bounce))
	if f.Settled() {
		b.Vel = b.Vel.Add(dir.Scale(fc.Boost))
	}
	return true
}

func (g *Game) collectStar() {
	if g.star == nil {
		return
	}
	if g.ball.Pos.Dist(g.star.Pos) < g.cfg.Ball.Radius+g.star.Radius {
		g.score += g.cfg.Star.Points
		g.clearStar()
	}
}
