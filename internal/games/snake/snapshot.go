package snake

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Score    int
	Body     []Point
	Dir      Point
	NextDir  Point
	Food     Point
	GameOver bool
	Won      bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Body:     append([]Point(nil), g.snake...),
		Dir:      g.dir,
		NextDir:  g.nextDir,
		Food:     g.food,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
