package core

// Phase is the lifecycle stage of a game session.
type Phase int

const (
	PhaseLoading Phase = iota // waiting on the asset batch
	PhaseReady                // reset, waiting for a start input (runner)
	PhaseRunning
	PhaseGameOver
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	case PhaseWin:
		return "win"
	}
	return "unknown"
}

// Terminal reports whether no further simulation happens in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWin
}

// PhaseOf derives the phase a game is in from its state.
func PhaseOf(s GameState) Phase {
	switch {
	case s.Won:
		return PhaseWin
	case s.GameOver:
		return PhaseGameOver
	case s.Ready:
		return PhaseReady
	}
	return PhaseRunning
}
