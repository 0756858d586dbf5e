package asteroids

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick            uint64
	ElapsedMs       float64
	Score           int
	GameOver        bool
	Ship            Ship
	Lasers          []Laser
	Asteroids       []Asteroid
	NextSpawnIsPair bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		ElapsedMs:       g.elapsedMs,
		Score:           g.score,
		GameOver:        g.gameOver,
		Ship:            g.ship,
		Lasers:          append([]Laser{}, g.lasers...),
		Asteroids:       append([]Asteroid{}, g.asteroids...),
		NextSpawnIsPair: g.nextSpawnIsPair,
	}
}
