package pinball

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Ball      Ball
	Left      Flipper
	Right     Flipper
	Bumpers   []Bumper
	Star      *Star
	StarTimer float64
	Score     int
	GameOver  bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Ball:      g.ball,
		Left:      g.left,
		Right:     g.right,
		Bumpers:   append([]Bumper{}, g.table.Bumpers...),
		StarTimer: g.starTimer,
		Score:     g.score,
		GameOver:  g.gameOver,
	}
	if g.star != nil {
		star := *g.star
		s.Star = &star
	}
	return s
}
