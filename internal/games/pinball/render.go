package pinball

import (
	"fmt"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var (
	wallCell     = core.Cell{Rune: '█', Color: core.ColorBlue}
	drainCell    = core.Cell{Rune: '┄', Color: core.ColorRed}
	obstacleCell = core.Cell{Rune: '▒', Color: core.ColorPurple}
	flipperCell  = core.Cell{Rune: '▓', Color: core.ColorBrightYellow}
	bumperCell   = core.Cell{Rune: '◉', Color: core.ColorPink}
	glowCell     = core.Cell{Rune: '◉', Color: core.ColorBrightWhite}
	starCell     = core.Cell{Rune: '★', Color: core.ColorBrightYellow}
	ballCell     = core.Cell{Rune: '●', Color: core.ColorCyan}
)

// Render draws the table back to front: walls, obstacles, bumpers, star,
// flippers and the ball last.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cv := core.NewCanvas(dst, g.cfg.Width, g.cfg.Height, 1)
	cv.Frame(core.ColorGray)

	for _, s := range g.table.Walls {
		cv.Line(s, wallCell)
	}
	cv.Line(g.table.Drain, drainCell)
	for _, s := range g.table.Obstacles {
		cv.Line(s, obstacleCell)
	}

	bumper := g.character.Opponent().HeadSprite()
	for _, b := range g.table.Bumpers {
		cell := g.sprites.Fill(bumper, bumperCell)
		if b.GlowMs > 0 {
			cell.Color = glowCell.Color
		}
		cv.FillCircle(b.Pos, b.Radius, cell)
	}

	if g.star != nil {
		cv.FillCircle(g.star.Pos, g.star.Radius, g.sprites.Fill("star", starCell))
	}

	fc := g.cfg.Flipper
	for _, f := range []Flipper{g.left, g.right} {
		cv.ThickLine(f.Segment(fc.Length), fc.BaseWidth, fc.TipWidth, flipperCell)
	}

	cv.FillCircle(g.ball.Pos, g.cfg.Ball.Radius, g.sprites.Fill(g.character.HeadSprite(), ballCell))

	dst.DrawTextColor(1, 0, "PINBALL", core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score)
}
