package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft)

	if !f.Has(ActionLeft) {
		t.Error("Has(Left) = false, want true")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) = true, want false")
	}

	clone := f.Clone()
	f.Set(ActionDrop)
	if clone.Has(ActionDrop) {
		t.Error("Clone shares state with original")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionDrop) {
		t.Error("Clear left actions set")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame Has(Pause) = true")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame did not register")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionRotateCW, "RotateCW"},
		{ActionDrop, "Drop"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
