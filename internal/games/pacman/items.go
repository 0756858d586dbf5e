package pacman

import "github.com/vovakirdan/bdaygames/internal/core"

// ItemKind is a power-up type.
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemCherry
	ItemSnowflake
)

func (k ItemKind) String() string {
	switch k {
	case ItemCherry:
		return "cherry"
	case ItemSnowflake:
		return "snowflake"
	}
	return "none"
}

// Item is a power-up waiting on the board.
type Item struct {
	Pos  core.Vec
	Kind ItemKind
}

// updateItemSpawn places an item every interval while none is on the board.
func (g *Game) updateItemSpawn() {
	if g.item != nil {
		return
	}
	g.itemTimer += g.tickMs
	if g.itemTimer < g.cfg.Items.IntervalMs {
		return
	}
	x, y := g.randomCell()
	kind := ItemCherry
	if g.rng.Intn(2) == 1 {
		kind = ItemSnowflake
	}
	g.item = &Item{Pos: core.V(float64(x)+0.5, float64(y)+0.5), Kind: kind}
	g.itemTimer = 0
}

func (g *Game) apply(kind ItemKind) {
	switch kind {
	case ItemCherry:
		g.boostMs = g.cfg.Items.EffectMs
	case ItemSnowflake:
		g.freezeMs = g.cfg.Items.EffectMs
	}
	g.lastPower = kind
}

func (g *Game) updatePowerUps() {
	if g.boostMs > 0 {
		g.boostMs -= g.tickMs
	}
	if g.freezeMs > 0 {
		g.freezeMs -= g.tickMs
	}
}

// Boosted reports whether the cherry speed boost is active.
func (g *Game) Boosted() bool { return g.boostMs > 0 }

// Frozen reports whether the snowflake has stopped the ghosts.
func (g *Game) Frozen() bool { return g.freezeMs > 0 }

// PowerUp describes the active effect, preferring the one picked up last.
func (g *Game) PowerUp() string {
	boost, freeze := g.Boosted(), g.Frozen()
	switch {
	case freeze && (!boost || g.lastPower == ItemSnowflake):
		return "Ghosts Frozen!"
	case boost:
		return "Speed Boost Active!"
	}
	return ""
}
