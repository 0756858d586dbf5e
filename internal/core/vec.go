package core

import "math"

// Vec is a point or direction in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Norm returns the unit vector in v's direction, or the zero vector.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Segment is a line segment from A to B.
type Segment struct {
	A, B Vec
}

// Seg is shorthand for a segment between two coordinate pairs.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: V(x1, y1), B: V(x2, y2)}
}

// Closest projects p onto the segment with t clamped to [0,1] and returns
// the closest point and its parameter.
func (s Segment) Closest(p Vec) (Vec, float64) {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 == 0 {
		return s.A, 0
	}
	t := ClampF(p.Sub(s.A).Dot(d)/l2, 0, 1)
	return s.A.Add(d.Scale(t)), t
}

// Mid is the segment midpoint.
func (s Segment) Mid() Vec {
	return s.A.Lerp(s.B, 0.5)
}

// Len is the segment length.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// RectF is an axis-aligned box in world units.
type RectF struct {
	X, Y, W, H float64
}

func (r RectF) Right() float64 { return r.X + r.W }
func (r RectF) Bottom() float64 { return r.Y + r.H }
func (r RectF) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// Intersects reports strict overlap; touching edges do not count.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ClosestPoint returns the point of r nearest to p.
func (r RectF) ClosestPoint(p Vec) Vec {
	return Vec{ClampF(p.X, r.X, r.Right()), ClampF(p.Y, r.Y, r.Bottom())}
}

// CircleHitsRect reports whether a circle overlaps r, using the closest point.
func CircleHitsRect(c Vec, radius float64, r RectF) bool {
	return c.Dist(r.ClosestPoint(c)) < radius
}

// Wrap maps v into [0, n) for toroidal boards.
func Wrap(v, n float64) float64 {
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	return v
}

// WrapInt maps v into [0, n).
func WrapInt(v, n int) int {
	return ((v % n) + n) % n
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
