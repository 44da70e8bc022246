package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set(ActionLeft) not recorded")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated presses should collapse, got %d actions", len(f.Actions))
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should drop actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLeft:   "Left",
		ActionRight:  "Right",
		ActionBack:   "Back",
		Action(1000): "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
