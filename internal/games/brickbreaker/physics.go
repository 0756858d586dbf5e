package brickbreaker

import (
	"math"

	"github.com/vovakirdan/bdaygames/internal/core"
)

// updateBall moves a launched ball, keeps its speed within limits and
// bounces it off the side and top walls. It reports whether the ball
// reached the bottom.
func (g *Game) updateBall() bool {
	b := &g.ball
	if !b.Launched {
		return false
	}
	bc := g.cfg.Ball

	b.X += b.VX
	b.Y += b.VY

	speed := math.Hypot(b.VX, b.VY)
	switch {
	case speed < bc.MinSpeed:
		b.VX, b.VY = b.VX/speed*bc.MinSpeed, b.VY/speed*bc.MinSpeed
	case speed > bc.MaxSpeed:
		b.VX, b.VY = b.VX/speed*bc.MaxSpeed, b.VY/speed*bc.MaxSpeed
	}

	if b.X-bc.Radius <= 0 || b.X+bc.Radius >= g.cfg.Width {
		b.VX = -b.VX
		b.X = core.ClampF(b.X, bc.Radius, g.cfg.Width-bc.Radius)
	}
	if b.Y-bc.Radius <= 0 {
		b.VY = -b.VY
		b.Y = bc.Radius
	}
	return b.Y+bc.Radius >= g.cfg.Height
}

func (g *Game) ballHits(r core.RectF) bool {
	return core.CircleHitsRect(core.V(g.ball.X, g.ball.Y), g.cfg.Ball.Radius, r)
}

// checkPaddle sends the ball upward at 60° ± 30° depending on where it
// struck the paddle, keeping its speed.
func (g *Game) checkPaddle() {
	pc := g.cfg.Paddle
	r := core.RectF{X: g.paddle.X, Y: g.paddle.Y, W: pc.Width, H: pc.Height}
	if !g.ballHits(r) {
		return
	}
	b := &g.ball
	hitPos := (b.X - g.paddle.X) / pc.Width
	angle := math.Pi/3 + (hitPos-0.5)*math.Pi/3
	speed := math.Hypot(b.VX, b.VY)
	b.VX = math.Cos(angle) * speed
	b.VY = -math.Abs(math.Sin(angle) * speed)
	b.Y = g.paddle.Y - g.cfg.Ball.Radius
}

// checkBricks destroys every standing brick the ball touches, reflecting
// off each in order.
func (g *Game) checkBricks() {
	for i := range g.bricks {
		br := &g.bricks[i]
		if br.Destroyed || !g.ballHits(br.Rect) {
			continue
		}
		g.reflectOff(br.Rect)
		br.Destroyed = true
	}
}

// reflectOff flips the ball along the axis of smaller overlap and pushes
// it out along that axis.
func (g *Game) reflectOff(r core.RectF) {
	b := &g.ball
	radius := g.cfg.Ball.Radius
	c := r.Center()
	dx, dy := b.X-c.X, b.Y-c.Y
	overlapX := radius - math.Abs(dx) + r.W/2
	overlapY := radius - math.Abs(dy) + r.H/2

	if overlapX < overlapY {
		b.VX = -b.VX
		b.X += math.Copysign(overlapX, dx)
		if dx == 0 {
			b.X -= 2 * overlapX
		}
		return
	}
	b.VY = -b.VY
	b.Y += math.Copysign(overlapY, dy)
	if dy == 0 {
		b.Y -= 2 * overlapY
	}
}
