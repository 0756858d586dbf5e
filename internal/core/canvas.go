package core

import "math"

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// Viewport maps a world of W x H units onto a rectangle of screen cells,
// keeping proportions and centering the result.
type Viewport struct {
	WorldW, WorldH float64
	OffX, OffY     int     // top-left cell of the projected world
	Scale          float64 // cells per world unit, horizontally
	Cols, Rows     int     // projected size in cells
}

// Fit builds a viewport that places the world inside area.
func Fit(worldW, worldH float64, area Rect) Viewport {
	vp := Viewport{WorldW: worldW, WorldH: worldH}
	if worldW <= 0 || worldH <= 0 || area.Empty() {
		return vp
	}
	vp.Scale = math.Min(float64(area.W)/worldW, float64(area.H)*CellAspect/worldH)
	vp.Cols = Max(1, int(worldW*vp.Scale+1e-9))
	vp.Rows = Max(1, int(worldH*vp.Scale/CellAspect+1e-9))
	vp.OffX = area.X + (area.W-vp.Cols)/2
	vp.OffY = area.Y + (area.H-vp.Rows)/2
	return vp
}

// Project returns the cell containing world point p.
func (vp Viewport) Project(p Vec) (int, int) {
	return vp.OffX + int(math.Floor(p.X*vp.Scale)),
		vp.OffY + int(math.Floor(p.Y*vp.Scale/CellAspect))
}

// Unproject returns the world point at the center of cell (cx, cy).
func (vp Viewport) Unproject(cx, cy int) Vec {
	if vp.Scale == 0 {
		return Vec{}
	}
	return Vec{
		X: (float64(cx-vp.OffX) + 0.5) / vp.Scale,
		Y: (float64(cy-vp.OffY) + 0.5) * CellAspect / vp.Scale,
	}
}

// Bounds is the cell rectangle covered by the world.
func (vp Viewport) Bounds() Rect {
	return NewRect(vp.OffX, vp.OffY, vp.Cols, vp.Rows)
}

// Canvas draws world-space shapes onto a Screen through a Viewport.
// Shapes are clipped to the viewport so nothing spills into the HUD.
type Canvas struct {
	scr *Screen
	vp  Viewport
}

// NewCanvas fits a world onto scr below the first hudRows rows, leaving a
// one-cell margin for Frame.
func NewCanvas(scr *Screen, worldW, worldH float64, hudRows int) *Canvas {
	area := NewRect(0, hudRows, scr.Width(), scr.Height()-hudRows).Inset(1)
	return &Canvas{scr: scr, vp: Fit(worldW, worldH, area)}
}

// Viewport returns the projection in use.
func (c *Canvas) Viewport() Viewport {
	return c.vp
}

// Screen returns the underlying screen.
func (c *Canvas) Screen() *Screen {
	return c.scr
}

func (c *Canvas) put(x, y int, cell Cell) {
	if !c.vp.Bounds().Contains(x, y) {
		return
	}
	c.scr.SetColor(x, y, cell.Rune, cell.Color)
}

// Point draws a single cell at a world position.
func (c *Canvas) Point(p Vec, cell Cell) {
	x, y := c.vp.Project(p)
	c.put(x, y, cell)
}

// FillRect fills a world rectangle. Every non-empty rectangle covers at least one cell.
func (c *Canvas) FillRect(r RectF, cell Cell) {
	x0, y0 := c.vp.Project(Vec{r.X, r.Y})
	x1, y1 := c.vp.Project(Vec{r.Right(), r.Bottom()})
	x1, y1 = Max(x1, x0+1), Max(y1, y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.put(x, y, cell)
		}
	}
}

// FillCircle fills every cell whose center lies inside the circle, plus the
// cell holding the center so small circles never vanish.
func (c *Canvas) FillCircle(center Vec, radius float64, cell Cell) {
	x0, y0 := c.vp.Project(Vec{center.X - radius, center.Y - radius})
	x1, y1 := c.vp.Project(Vec{center.X + radius, center.Y + radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.vp.Unproject(x, y).Dist(center) <= radius {
				c.put(x, y, cell)
			}
		}
	}
	c.Point(center, cell)
}

// FillTriangle fills the triangle a, b, c by testing cell centers.
func (c *Canvas) FillTriangle(a, b, d Vec, cell Cell) {
	minX, minY := c.vp.Project(Vec{math.Min(a.X, math.Min(b.X, d.X)), math.Min(a.Y, math.Min(b.Y, d.Y))})
	maxX, maxY := c.vp.Project(Vec{math.Max(a.X, math.Max(b.X, d.X)), math.Max(a.Y, math.Max(b.Y, d.Y))})
	edge := func(p, q, r Vec) float64 {
		return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := c.vp.Unproject(x, y)
			e1, e2, e3 := edge(a, b, p), edge(b, d, p), edge(d, a, p)
			if (e1 >= 0 && e2 >= 0 && e3 >= 0) || (e1 <= 0 && e2 <= 0 && e3 <= 0) {
				c.put(x, y, cell)
			}
		}
	}
	c.Point(a.Add(b).Add(d).Scale(1.0/3), cell)
}

// Line draws a segment by stepping through cell space.
func (c *Canvas) Line(s Segment, cell Cell) {
	x0, y0 := c.vp.Project(s.A)
	x1, y1 := c.vp.Project(s.B)
	steps := Max(Abs(x1-x0), Abs(y1-y0))
	if steps == 0 {
		c.put(x0, y0, cell)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(Lerp(float64(x0), float64(x1), t)))
		y := int(math.Round(Lerp(float64(y0), float64(y1), t)))
		c.put(x, y, cell)
	}
}

// ThickLine draws a segment whose width tapers from w0 at A to w1 at B.
func (c *Canvas) ThickLine(s Segment, w0, w1 float64, cell Cell) {
	n := int(math.Max(2, s.Len()*c.vp.Scale))
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.FillCircle(s.A.Lerp(s.B, t), Lerp(w0, w1, t)/2, cell)
	}
}

// Text writes a string starting at a world position.
func (c *Canvas) Text(p Vec, text string, col Color) {
	x, y := c.vp.Project(p)
	for i, r := range []rune(text) {
		c.put(x+i, y, Cell{Rune: r, Color: col})
	}
}

// Frame draws a box just outside the projected world.
func (c *Canvas) Frame(col Color) {
	r := c.vp.Bounds().Inset(-1)
	for x := r.X; x < r.Right(); x++ {
		c.scr.SetColor(x, r.Y, '─', col)
		c.scr.SetColor(x, r.Bottom()-1, '─', col)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		c.scr.SetColor(r.X, y, '│', col)
		c.scr.SetColor(r.Right()-1, y, '│', col)
	}
	c.scr.SetColor(r.X, r.Y, '┌', col)
	c.scr.SetColor(r.Right()-1, r.Y, '┐', col)
	c.scr.SetColor(r.X, r.Bottom()-1, '└', col)
	c.scr.SetColor(r.Right()-1, r.Bottom()-1, '┘', col)
}
