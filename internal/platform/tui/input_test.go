package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

func testInput() *InputState {
	return NewInputState(config.InputConfig{HoldInitialMs: 500, HoldRepeatMs: 100})
}

func TestPressIsEdgeTriggered(t *testing.T) {
	s := testInput()
	t0 := time.Unix(100, 0)

	s.Press(core.ActionJump, t0)
	first := s.Frame(t0.Add(10 * time.Millisecond))
	if !first.Has(core.ActionJump) || !first.IsHeld(core.ActionJump) {
		t.Fatalf("first frame should press and hold jump: %+v", first)
	}

	second := s.Frame(t0.Add(20 * time.Millisecond))
	if second.Has(core.ActionJump) {
		t.Error("press should not repeat in the next frame")
	}
	if !second.IsHeld(core.ActionJump) {
		t.Error("jump should still be held inside the initial window")
	}
}

func TestHoldWindows(t *testing.T) {
	t0 := time.Unix(100, 0)
	tests := []struct {
		name    string
		presses []time.Duration
		at      time.Duration
		held    bool
	}{
		{"inside initial window", []time.Duration{0}, 499 * time.Millisecond, true},
		{"initial window expired", []time.Duration{0}, 500 * time.Millisecond, false},
		{"repeat extends by repeat window", []time.Duration{0, 450 * time.Millisecond}, 540 * time.Millisecond, true},
		{"repeat window expired", []time.Duration{0, 450 * time.Millisecond}, 550 * time.Millisecond, false},
		{"press after expiry restarts initial window", []time.Duration{0, 600 * time.Millisecond}, 1000 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testInput()
			for _, p := range tt.presses {
				s.Press(core.ActionLeft, t0.Add(p))
				// The tick right after the press carries it as an edge.
				s.Frame(t0.Add(p))
			}
			in := s.Frame(t0.Add(tt.at))
			if in.Has(core.ActionLeft) {
				t.Fatal("press should have been consumed by an earlier frame")
			}
			if in.IsHeld(core.ActionLeft) != tt.held {
				t.Errorf("held = %v, expected %v", in.IsHeld(core.ActionLeft), tt.held)
			}
		})
	}
}

func TestNonMovementKeysAreNotHeld(t *testing.T) {
	s := testInput()
	now := time.Unix(100, 0)
	s.Press(core.ActionConfirm, now)
	in := s.Frame(now)
	if !in.Has(core.ActionConfirm) {
		t.Error("confirm should be pressed")
	}
	if in.Held[core.ActionConfirm] {
		t.Error("confirm should never be held")
	}
	if s.Frame(now.Add(time.Millisecond)).IsHeld(core.ActionConfirm) {
		t.Error("confirm should be gone after its press frame")
	}
}

func TestMouseHoldsJumpUntilRelease(t *testing.T) {
	s := testInput()
	now := time.Unix(100, 0)

	s.MouseDown()
	in := s.Frame(now)
	if !in.Has(core.ActionJump) || !in.IsHeld(core.ActionJump) {
		t.Fatal("mouse down should press and hold jump")
	}

	in = s.Frame(now.Add(time.Hour))
	if in.Has(core.ActionJump) || !in.IsHeld(core.ActionJump) {
		t.Error("mouse hold should last until release without re-pressing")
	}

	s.MouseUp()
	if s.Frame(now.Add(time.Hour)).IsHeld(core.ActionJump) {
		t.Error("release should end the hold")
	}
}

func TestReleaseAndReset(t *testing.T) {
	s := testInput()
	now := time.Unix(100, 0)

	s.Press(core.ActionRight, now)
	s.Release(core.ActionRight)
	in := s.Frame(now)
	if !in.Has(core.ActionRight) {
		t.Error("a released key still delivers its press")
	}
	if in.Held[core.ActionRight] {
		t.Error("released key should not be held")
	}
	if s.Frame(now.Add(time.Millisecond)).IsHeld(core.ActionRight) {
		t.Error("released key should not be held on the next frame")
	}

	s.Press(core.ActionUp, now)
	s.MouseDown()
	s.Reset()
	in = s.Frame(now)
	if len(in.Actions) != 0 || len(in.Held) != 0 {
		t.Errorf("reset should drop everything, got %+v", in)
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.key)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.key.String(), action, quit, tt.action, tt.quit)
		}
	}

	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, expected scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}); got != MenuActionCharacter {
		t.Errorf("c = %v, expected character toggle", got)
	}
}
