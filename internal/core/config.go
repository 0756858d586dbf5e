package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW   int       // Screen width in cells
	ScreenH   int       // Screen height in cells
	TickRate  int       // Simulation ticks per second
	Seed      int64     // RNG seed; 0 lets the platform pick one
	Character Character // Player's character; the other one is the opponent
	Sprites   SpriteSet // Loaded sprites; missing entries render as primitives
}

// DefaultConfig returns a RuntimeConfig with the platform defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Character: DefaultCharacter,
	}
}

// TickMillis is the simulated time covered by one Step, in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Session lost
	Won      bool // Session won; exclusive with GameOver
	Ready    bool // Waiting for the first input before simulation starts
	Paused   bool // Set by the session controller, never by games
	Best     int  // Persisted best score, for games that keep one
}

// Terminal reports whether the session has ended.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
