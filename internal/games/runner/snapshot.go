package runner

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Ready     bool
	GameOver  bool
	ElapsedMs float64
	Speed     float64
	Score     int
	Best      int
	Player    Player
	Obstacles []Obstacle
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obs := make([]Obstacle, 0, len(g.obstacles.Obstacles()))
	for _, o := range g.obstacles.Obstacles() {
		o.Blocks = append([]float64(nil), o.Blocks...)
		obs = append(obs, o)
	}
	return Snapshot{
		Tick:      g.tick,
		Ready:     g.ready,
		GameOver:  g.gameOver,
		ElapsedMs: g.elapsedMs,
		Speed:     g.speed,
		Score:     g.score,
		Best:      g.best,
		Player:    g.player,
		Obstacles: obs,
	}
}
