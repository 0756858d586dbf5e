package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	if !f.Has(ActionJump) || !f.IsHeld(ActionJump) {
		t.Error("a press should count as pressed and held")
	}

	f.Clear()
	f.SetHeld(ActionDown)
	if f.Has(ActionDown) {
		t.Error("held is not a fresh press")
	}
	if !f.IsHeld(ActionDown) {
		t.Error("SetHeld should be visible through IsHeld")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || f.IsHeld(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionUp)
	f.SetHeld(ActionLeft)
	if !f.Has(ActionUp) || !f.IsHeld(ActionLeft) {
		t.Error("zero frame should lazily allocate")
	}
}

func TestInputFrameCloneIsDeep(t *testing.T) {
	f := NewInputFrame()
	f.SetHeld(ActionLeft)
	c := f.Clone()
	f.Clear()
	if !c.IsHeld(ActionLeft) {
		t.Error("clone should not share maps with the original")
	}
}

func TestHorizontalPrecedence(t *testing.T) {
	tests := []struct {
		name string
		held []Action
		want int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both prefers left", []Action{ActionRight, ActionLeft}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.held {
				f.SetHeld(a)
			}
			if got := f.Horizontal(); got != tt.want {
				t.Errorf("Horizontal() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
