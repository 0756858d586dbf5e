package session

import (
	"math/rand"

	"github.com/vovakirdan/bdaygames/internal/core"
)

var botMoves = []core.Action{
	core.ActionNone,
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

// RandomPlayer returns an InputFunc that plays like a key-masher: it holds
// a random direction for a few dozen ticks at a time and taps Jump now and
// then. A game waiting in Ready is always started. The same seed replays
// the same inputs.
func RandomPlayer(seed int64) InputFunc {
	rng := rand.New(rand.NewSource(seed))
	var move core.Action
	var left int

	return func(_ int, st core.GameState) core.InputFrame {
		in := core.NewInputFrame()
		if left <= 0 {
			move = botMoves[rng.Intn(len(botMoves))]
			left = 5 + rng.Intn(30)
			if move != core.ActionNone {
				in.Set(move)
			}
		}
		left--
		if move != core.ActionNone {
			in.SetHeld(move)
		}

		if st.Ready || rng.Float64() < 0.08 {
			in.Set(core.ActionJump)
			in.SetHeld(core.ActionJump)
		}
		return in
	}
}
