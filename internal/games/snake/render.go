package snake

import (
	"fmt"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var (
	bodyCell     = core.Cell{Rune: '█', Color: core.ColorCyan}
	headFallback = core.Cell{Rune: '█', Color: core.ColorBrightYellow}
	foodFallback = core.Cell{Rune: '●', Color: core.ColorPink}
	gridCell     = core.Cell{Rune: '·', Color: core.ColorGray}
)

// Render draws the board, food and snake with the HUD on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	n := float64(g.cfg.Grid)
	cv := core.NewCanvas(dst, n, n, 1)
	cv.Frame(core.ColorCyan)

	for y := range g.cfg.Grid {
		for x := range g.cfg.Grid {
			cv.Point(cellCenter(Point{x, y}), gridCell)
		}
	}

	if g.food.X >= 0 {
		cv.FillCircle(cellCenter(g.food), 0.4, g.sprites.Fill(g.player.Opponent().HeadSprite(), foodFallback))
	}

	for _, seg := range g.snake[1:] {
		cv.FillRect(cellRect(seg), bodyCell)
	}
	if len(g.snake) > 0 {
		cv.FillRect(cellRect(g.snake[0]), g.sprites.Fill(g.player.HeadSprite(), headFallback))
	}

	g.renderHUD(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, "SNAKE", core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(score)-1, 0, score)
}

func cellCenter(p Point) core.Vec {
	return core.V(float64(p.X)+0.5, float64(p.Y)+0.5)
}

func cellRect(p Point) core.RectF {
	return core.RectF{X: float64(p.X) + 0.1, Y: float64(p.Y) + 0.1, W: 0.8, H: 0.8}
}
