package asteroids

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var (
	starCell         = core.Cell{Rune: '·', Color: core.ColorGray}
	laserCell        = core.Cell{Rune: '│', Color: core.ColorCyan}
	shipFallback     = core.Cell{Rune: '▲', Color: core.ColorBrightYellow}
	rockFallback     = core.Cell{Rune: '▓', Color: core.ColorPurple}
	opponentFallback = core.Cell{Rune: '●', Color: core.ColorPink}
	barEmpty         = core.Cell{Rune: '░', Color: core.ColorRed}
	barFull          = core.Cell{Rune: '█', Color: core.ColorGreen}
)

// Render draws the star field, asteroids with health bars, lasers and the
// ship, with the HUD on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cv := core.NewCanvas(dst, g.cfg.Width, g.cfg.Height, 1)
	cv.Frame(core.ColorBlue)

	w, h := int(g.cfg.Width), int(g.cfg.Height)
	for i := range 50 {
		cv.Point(core.V(float64(i*37%w), float64(i*73%h)), starCell)
	}

	for _, a := range g.asteroids {
		g.renderAsteroid(cv, a)
	}
	for _, l := range g.lasers {
		cv.FillRect(g.laserRect(l), laserCell)
	}
	g.renderShip(cv)
	g.renderHUD(dst)
}

func (g *Game) renderAsteroid(cv *core.Canvas, a Asteroid) {
	name, fallback := "asteroid", rockFallback
	if a.Opponent {
		name, fallback = g.character.Opponent().HeadSprite(), opponentFallback
	}
	r := g.asteroidRect(a)
	if sp, ok := g.sprites.Lookup(name); ok {
		cv.FillRect(r, core.Cell{Rune: sp.Glyph, Color: sp.Color})
	} else {
		cv.FillCircle(core.V(a.X, a.Y), r.W/2, fallback)
	}

	bar := core.RectF{X: r.X, Y: r.Y - 10, W: r.W, H: 6}
	cv.FillRect(bar, barEmpty)
	if a.MaxHP > 0 && a.HP > 0 {
		full := bar
		full.W = bar.W * float64(a.HP) / float64(a.MaxHP)
		cv.FillRect(full, barFull)
	}
	hp := strconv.Itoa(a.HP)
	cv.Text(core.V(a.X, bar.Y), hp, core.ColorBrightWhite)
}

func (g *Game) renderShip(cv *core.Canvas) {
	half := g.cfg.Player.Size / 2
	s := g.ship
	if sp, ok := g.sprites.Lookup(g.character.HeadSprite()); ok {
		cv.FillRect(core.RectF{X: s.X - half, Y: s.Y - half, W: 2 * half, H: 2 * half}, core.Cell{Rune: sp.Glyph, Color: sp.Color})
		return
	}
	cv.FillTriangle(core.V(s.X, s.Y-half), core.V(s.X-half, s.Y+half), core.V(s.X+half, s.Y+half), shipFallback)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, "ASTEROIDS", core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score)
}
