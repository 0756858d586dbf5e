package pacman

import (
	"fmt"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var (
	pelletCell    = core.Cell{Rune: '·', Color: core.ColorBrightYellow}
	playerCell    = core.Cell{Rune: '●', Color: core.ColorBrightYellow}
	ghostCell     = core.Cell{Rune: '◆', Color: core.ColorPink}
	cherryCell    = core.Cell{Rune: '♥', Color: core.ColorRed}
	snowflakeCell = core.Cell{Rune: '*', Color: core.ColorBrightCyan}
)

// Render draws pellets, the item, ghosts and the player, with food
// progress and the active power-up on the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	n := float64(g.cfg.Grid)
	cv := core.NewCanvas(dst, n, n, 1)
	cv.Frame(core.ColorBlue)

	for _, p := range g.food {
		cv.Point(p.Center(), pelletCell)
	}

	if g.item != nil {
		name, fallback := "cherry", cherryCell
		if g.item.Kind == ItemSnowflake {
			name, fallback = "snowflake", snowflakeCell
		}
		cv.FillCircle(g.item.Pos, 0.3, g.sprites.Fill(name, fallback))
	}

	ghost := g.character.Opponent().HeadSprite()
	for _, gh := range g.ghosts {
		cell := g.sprites.Fill(ghost, ghostCell)
		if g.Frozen() {
			cell.Color = core.ColorCyan
		}
		cv.FillCircle(gh.Pos, 0.4, cell)
	}

	cv.FillCircle(g.player, 0.4, g.sprites.Fill(g.character.HeadSprite(), playerCell))

	dst.DrawTextColor(1, 0, "PAC-MAN", core.ColorBrightCyan)
	hud := fmt.Sprintf("Food: %d%%", g.EatenPercent())
	if p := g.PowerUp(); p != "" {
		hud = p + "  " + hud
	}
	dst.DrawText(dst.Width()-len([]rune(hud))-1, 0, hud)
}
