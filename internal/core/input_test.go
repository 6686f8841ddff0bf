package core

import (
	"strings"
	"testing"
)

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	if f.Direction() != ActionNone {
		t.Fatal("empty frame should have no direction")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)
	if f.Direction() != ActionLeft {
		t.Errorf("Direction() = %v, expected the latest direction Left", f.Direction())
	}
	if !f.Has(ActionPause) {
		t.Error("control action should be kept alongside directions")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) || f.Direction() != ActionNone {
		t.Error("Clear() should reset all actions")
	}
	if clone.Direction() != ActionLeft {
		t.Error("Clone() should be independent of the original")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionStart, ActionContinue, ActionRestart, ActionPause} {
		parsed, ok := ParseAction(strings.ToLower(a.String()))
		if !ok || parsed != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), parsed, ok)
		}
	}
	if _, ok := ParseAction("jump"); ok {
		t.Error("unknown action should not parse")
	}
}
