package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var (
	groundCell    = core.Cell{Rune: '═', Color: core.ColorCyan}
	textureCell   = core.Cell{Rune: '·', Color: core.ColorGray}
	bodyCell      = core.Cell{Rune: '│', Color: core.ColorBrightYellow}
	leftLimbCell  = core.Cell{Rune: '╱', Color: core.ColorBrightYellow}
	rightLimbCell = core.Cell{Rune: '╲', Color: core.ColorBrightYellow}
	headFallback  = core.Cell{Rune: '●', Color: core.ColorBrightYellow}
	blockFallback = core.Cell{Rune: '●', Color: core.ColorPink}
)

// Render draws ground, obstacles and the player, with the HUD on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cv := core.NewCanvas(dst, g.cfg.Width, g.cfg.Height, 1)
	cv.Frame(core.ColorCyan)

	g.renderGround(cv)
	g.renderObstacles(cv)
	g.renderPlayer(cv)
	g.renderHUD(dst)
}

func (g *Game) renderGround(cv *core.Canvas) {
	ground := g.cfg.Player.GroundY
	cv.Line(core.Seg(0, ground, g.cfg.Width, ground), groundCell)
	for x := -math.Mod(g.groundOffset, 20); x < g.cfg.Width; x += 20 {
		if x >= 0 {
			cv.Point(core.V(x, ground+(g.cfg.Height-ground)/2), textureCell)
		}
	}
}

func (g *Game) renderObstacles(cv *core.Canvas) {
	size := g.cfg.Obstacles.BlockSize
	sprite, ok := g.sprites.Lookup(g.character.Opponent().HeadSprite())
	for _, o := range g.obstacles.Obstacles() {
		for _, r := range o.Rects(size) {
			if ok {
				cv.FillRect(r, core.Cell{Rune: sprite.Glyph, Color: sprite.Color})
				continue
			}
			cv.FillCircle(r.Center(), size/2, blockFallback)
		}
	}
}

// renderPlayer draws a stick figure topped by the character's head.
func (g *Game) renderPlayer(cv *core.Canvas) {
	p := g.player
	pc := g.cfg.Player
	half := pc.HeadSize / 2
	crouched := p.Ducking && p.OnGround

	headY := p.Y - pc.BodyHeight - half
	bodyBottom := p.Y - 10
	if crouched {
		headY = p.Y - duckHeight - half
		bodyBottom = p.Y - hitInset
	}

	cv.Line(core.Seg(p.X, headY+half, p.X, bodyBottom), bodyCell)
	if !crouched {
		swing := math.Sin(p.LegFrame) * 3
		cv.Line(core.Seg(p.X, headY+10, p.X-15-swing, headY+25), leftLimbCell)
		cv.Line(core.Seg(p.X, headY+10, p.X+15+swing, headY+25), rightLimbCell)
	}
	if p.OnGround {
		stride := 8.0
		if !crouched {
			stride = 10 + math.Sin(p.LegFrame)*8
		}
		cv.Line(core.Seg(p.X, bodyBottom, p.X-stride, p.Y), leftLimbCell)
		cv.Line(core.Seg(p.X, bodyBottom, p.X+stride, p.Y), rightLimbCell)
	}

	cv.FillCircle(core.V(p.X, headY), half, g.sprites.Fill(g.character.HeadSprite(), headFallback))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, "RUNNER", core.ColorBrightCyan)
	hud := fmt.Sprintf("Score: %d  Best: %d", g.score, g.best)
	dst.DrawText(dst.Width()-len(hud)-1, 0, hud)
}
