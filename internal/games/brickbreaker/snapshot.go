package brickbreaker

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Ball     Ball
	Paddle   Paddle
	Bricks   []Brick
	GameOver bool
	Won      bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Ball:     g.ball,
		Paddle:   g.paddle,
		Bricks:   append([]Brick{}, g.bricks...),
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
