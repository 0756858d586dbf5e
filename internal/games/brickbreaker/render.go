package brickbreaker

import (
	"fmt"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var (
	rowColors  = []core.Color{core.ColorPink, core.ColorBrightYellow, core.ColorCyan, core.ColorPurple}
	ballCell   = core.Cell{Rune: '●', Color: core.ColorCyan}
	paddleCell = core.Cell{Rune: '▀', Color: core.ColorBrightYellow}
)

// Render draws the wall, paddle and ball with the HUD on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cv := core.NewCanvas(dst, g.cfg.Width, g.cfg.Height, 1)
	cv.Frame(core.ColorBlue)

	brick := g.character.Opponent().HeadSprite()
	for _, b := range g.bricks {
		if b.Destroyed {
			continue
		}
		fallback := core.Cell{Rune: '▓', Color: rowColors[b.Row%len(rowColors)]}
		cv.FillRect(b.Rect, g.sprites.Fill(brick, fallback))
	}

	pc := g.cfg.Paddle
	cv.FillRect(core.RectF{X: g.paddle.X, Y: g.paddle.Y, W: pc.Width, H: pc.Height}, paddleCell)
	cv.FillCircle(core.V(g.ball.X, g.ball.Y), g.cfg.Ball.Radius, ballCell)

	if !g.ball.Launched && !g.gameOver {
		cv.Text(core.V(g.cfg.Width*0.3, g.cfg.Height*0.7), "SPACE to launch", core.ColorGray)
	}

	dst.DrawTextColor(1, 0, "BRICK BREAKER", core.ColorBrightCyan)
	left := fmt.Sprintf("Bricks: %d", g.BricksLeft())
	dst.DrawText(dst.Width()-len(left)-1, 0, left)
}
