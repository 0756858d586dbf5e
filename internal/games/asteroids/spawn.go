package asteroids

// updateSpawning alternates single and paired waves on a fixed interval.
// A pair enters with the second rock 100 units below the first.
func (g *Game) updateSpawning() {
	ac := g.cfg.Asteroid
	if g.elapsedMs-g.lastSpawnMs < ac.SpawnIntervalMs {
		return
	}
	if g.nextSpawnIsPair {
		g.spawnAsteroid(-ac.Size)
		g.spawnAsteroid(-ac.Size + 100)
	} else {
		g.spawnAsteroid(-ac.Size)
	}
	g.nextSpawnIsPair = !g.nextSpawnIsPair
	g.lastSpawnMs = g.elapsedMs
}

// spawnAsteroid adds an asteroid at y with a random column that keeps it
// fully inside the field.
func (g *Game) spawnAsteroid(y float64) {
	ac := g.cfg.Asteroid
	x := g.rng.Float64()*(g.cfg.Width-ac.Size) + ac.Size/2
	opponent := g.rng.Float64() > 1-ac.OpponentChance

	hp := ac.HP
	if opponent {
		hp = ac.OpponentHP
	}
	g.asteroids = append(g.asteroids, Asteroid{X: x, Y: y, HP: hp, MaxHP: hp, Opponent: opponent})
}
