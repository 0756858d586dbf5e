package tui

import (
	"time"

	"github.com/vovakirdan/bdaygames/internal/config"
	"github.com/vovakirdan/bdaygames/internal/core"
)

// holdable lists the actions games read as continuously held.
var holdable = map[core.Action]bool{
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionJump:  true,
}

// InputState collects key and mouse events between ticks and turns them
// into one InputFrame per tick.
//
// Terminals never report key releases. A press marks the key held for
// the initial window, long enough to reach the terminal's first
// auto-repeat; each repeat extends the hold by the shorter repeat window.
// When the repeats stop the hold expires. The left mouse button does
// report release, so it holds Jump exactly while it is down.
type InputState struct {
	initial time.Duration
	repeat  time.Duration

	pressed   map[core.Action]bool
	until     map[core.Action]time.Time
	mouseDown bool
}

// NewInputState creates an input collector with the given hold windows.
func NewInputState(cfg config.InputConfig) *InputState {
	return &InputState{
		initial: time.Duration(cfg.HoldInitialMs) * time.Millisecond,
		repeat:  time.Duration(cfg.HoldRepeatMs) * time.Millisecond,
		pressed: make(map[core.Action]bool),
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a key press at now.
func (s *InputState) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	s.pressed[a] = true
	if !holdable[a] {
		return
	}
	if deadline, ok := s.until[a]; ok && now.Before(deadline) {
		s.until[a] = now.Add(s.repeat)
		return
	}
	s.until[a] = now.Add(s.initial)
}

// Release ends a hold early.
func (s *InputState) Release(a core.Action) {
	delete(s.until, a)
}

// MouseDown presses and holds Jump.
func (s *InputState) MouseDown() {
	s.pressed[core.ActionJump] = true
	s.mouseDown = true
}

// MouseUp releases the mouse hold.
func (s *InputState) MouseUp() {
	s.mouseDown = false
}

// Frame returns the input for the tick at now and starts collecting the next one.
func (s *InputState) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a := range s.pressed {
		in.Set(a)
	}
	for a, deadline := range s.until {
		if now.Before(deadline) {
			in.SetHeld(a)
		} else {
			delete(s.until, a)
		}
	}
	if s.mouseDown {
		in.SetHeld(core.ActionJump)
	}
	clear(s.pressed)
	return in
}

// Reset drops all pending presses and holds.
func (s *InputState) Reset() {
	clear(s.pressed)
	clear(s.until)
	s.mouseDown = false
}
