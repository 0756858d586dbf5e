package session

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/bdaygames/internal/core"
)

func TestRandomPlayerIsDeterministic(t *testing.T) {
	a, b := RandomPlayer(7), RandomPlayer(7)
	for tick := 0; tick < 500; tick++ {
		fa, fb := a(tick, core.GameState{}), b(tick, core.GameState{})
		if !reflect.DeepEqual(fa, fb) {
			t.Fatalf("tick %d: %+v != %+v", tick, fa, fb)
		}
	}
}

func TestRandomPlayerStartsReadyGames(t *testing.T) {
	bot := RandomPlayer(1)
	for tick := 0; tick < 50; tick++ {
		if !bot(tick, core.GameState{Ready: true}).Has(core.ActionJump) {
			t.Fatalf("tick %d: a ready game should always get jump", tick)
		}
	}
}

func TestRandomPlayerHoldsDirections(t *testing.T) {
	bot := RandomPlayer(3)
	held := 0
	for tick := 0; tick < 1000; tick++ {
		in := bot(tick, core.GameState{})
		if in.Horizontal() != 0 || in.IsHeld(core.ActionUp) || in.IsHeld(core.ActionDown) {
			held++
		}
	}
	if held < 300 {
		t.Errorf("expected directions held most of the time, got %d/1000 ticks", held)
	}
}
