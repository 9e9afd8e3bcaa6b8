package core

import "testing"

func TestInputFrameIsSingleSlot(t *testing.T) {
	f := NewInputFrame()
	if f.Action() != ActionNone {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionRight)
	if f.Has(ActionLeft) {
		t.Error("latest action should replace the pending one")
	}
	if !f.Has(ActionRight) {
		t.Error("Has(ActionRight) = false, expected true")
	}

	if got := f.Take(); got != ActionRight {
		t.Errorf("Take() = %v, expected Right", got)
	}
	if f.Action() != ActionNone {
		t.Error("frame should be empty after Take")
	}
	if f.Has(ActionNone) {
		t.Error("Has(ActionNone) should always be false")
	}
}

func TestActionString(t *testing.T) {
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q, expected Quit", ActionQuit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
