package pinball

import (
	"math"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

// Bumper is a round kicker that scores on contact.
type Bumper struct {
	Pos    core.Vec
	Radius float64
	GlowMs float64
}

// Table is the static geometry of the board. The drain closes the bottom
// of the board but does not bounce the ball.
type Table struct {
	Walls     []core.Segment
	Drain     core.Segment
	Obstacles []core.Segment
	Bumpers   []Bumper
}

// newTable lays out the board for the configured size. The obstacle
// pairs mirror each other across the vertical center line.
func newTable(cfg config.PinballConfig) Table {
	w, h, drain := cfg.Width, cfg.Height, cfg.DrainY

	t := Table{
		Walls: []core.Segment{
			core.Seg(0, 0, w, 0),
			core.Seg(0, 0, 0, drain),
			core.Seg(w, 0, w, drain),
		},
		Drain: core.Seg(0, drain, w, drain),
	}

	left := []core.Segment{
		core.Seg(40, 120, 100, 180),
		core.Seg(30, 250, 80, 280),
		core.Seg(30, 280, 80, 250),
		core.Seg(60, 320, 60, 380),
		core.Seg(50, 400, 90, 420),
	}
	for _, s := range left {
		t.Obstacles = append(t.Obstacles, s, core.Seg(w-s.A.X, s.A.Y, w-s.B.X, s.B.Y))
	}

	top := h / 3
	for _, p := range []core.Vec{
		core.V(w*0.25, top*0.5),
		core.V(w*0.75, top*0.5),
		core.V(w*0.5, top*0.8),
	} {
		t.Bumpers = append(t.Bumpers, Bumper{Pos: p, Radius: cfg.Bumper.Radius})
	}
	return t
}

// Flipper rotates about a pivot on the side wall.
type Flipper struct {
	Pivot  core.Vec
	Angle  float64
	Target float64

	rest, active float64
	// clockwise flippers swing up by increasing their angle
	clockwise bool
}

func newFlippers(cfg config.PinballConfig) (Flipper, Flipper) {
	restL, activeL := math.Pi/4, -math.Pi/6
	left := Flipper{
		Pivot:  core.V(0, cfg.Flipper.PivotY),
		Angle:  restL,
		Target: restL,
		rest:   restL,
		active: activeL,
	}
	right := Flipper{
		Pivot:     core.V(cfg.Width, cfg.Flipper.PivotY),
		Angle:     math.Pi - restL,
		Target:    math.Pi - restL,
		rest:      math.Pi - restL,
		active:    math.Pi - activeL,
		clockwise: true,
	}
	return left, right
}

// Dir is the unit vector from pivot to tip.
func (f Flipper) Dir() core.Vec {
	return core.V(math.Cos(f.Angle), math.Sin(f.Angle))
}

// Segment is the flipper's center line.
func (f Flipper) Segment(length float64) core.Segment {
	return core.Segment{A: f.Pivot, B: f.Pivot.Add(f.Dir().Scale(length))}
}

// Settled reports whether the flipper is at or near its target angle.
// Only a settled flipper kicks the ball.
func (f Flipper) Settled() bool {
	return math.Abs(f.Angle-f.Target) < 0.15
}

// update moves the flipper toward its active or rest angle. The upswing
// is faster than the return.
func (f *Flipper) update(active bool, up, down float64) {
	f.Target = f.rest
	if active {
		f.Target = f.active
	}
	toward := f.Angle > f.Target
	if f.clockwise {
		toward = f.Angle < f.Target
	}
	switch {
	case toward && f.clockwise:
		f.Angle = math.Min(f.Target, f.Angle+up)
	case toward:
		f.Angle = math.Max(f.Target, f.Angle-up)
	case f.clockwise:
		f.Angle = math.Max(f.Target, f.Angle-down)
	default:
		f.Angle = math.Min(f.Target, f.Angle+down)
	}
}
