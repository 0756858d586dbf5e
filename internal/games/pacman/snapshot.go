package pacman

import "github.com/vovakirdan/bdaygames/internal/core"

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Player    core.Vec
	Ghosts    []Ghost
	Food      []Pellet
	Eaten     int
	Item      *Item
	ItemTimer float64
	BoostMs   float64
	FreezeMs  float64
	GameOver  bool
	Won       bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Player:    g.player,
		Ghosts:    append([]Ghost{}, g.ghosts...),
		Food:      append([]Pellet{}, g.food...),
		Eaten:     g.eaten,
		ItemTimer: g.itemTimer,
		BoostMs:   g.boostMs,
		FreezeMs:  g.freezeMs,
		GameOver:  g.gameOver,
		Won:       g.won,
	}
	if g.item != nil {
		it := *g.item
		s.Item = &it
	}
	return s
}
