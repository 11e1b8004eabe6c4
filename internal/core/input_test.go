package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionSwim)
	f.Set(ActionSpawn)
	if !f.Has(ActionSwim) || !f.Has(ActionSpawn) {
		t.Error("frame should report set actions")
	}
	if f.Has(ActionQuit) {
		t.Error("frame should not report unset actions")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionSwim) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSwim) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSwim.String() != "Swim" {
		t.Errorf("ActionSwim.String() = %q", ActionSwim.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
