package window

import (
	"testing"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

func TestKeyStateFrame(t *testing.T) {
	in := KeyState{Up: true, Pause: true, CursorX: 40, CursorY: 12}.Frame()

	if !in.Has(core.ActionUp) || !in.Has(core.ActionPause) {
		t.Errorf("actions = %v", in.Actions)
	}
	if in.Has(core.ActionDown) || in.Has(core.ActionClick) || in.Has(core.ActionRestart) {
		t.Errorf("unexpected actions = %v", in.Actions)
	}
	if in.Pointer.X() != 40 || in.Pointer.Y() != 12 {
		t.Errorf("pointer = %v", in.Pointer)
	}
}

func TestKeyStateClick(t *testing.T) {
	in := KeyState{Click: true, Restart: true, CursorX: 625, CursorY: 403}.Frame()

	if !in.Has(core.ActionClick) || !in.Has(core.ActionRestart) {
		t.Fatalf("actions = %v", in.Actions)
	}
	if in.Pointer.X() != 625 || in.Pointer.Y() != 403 {
		t.Errorf("pointer = %v", in.Pointer)
	}
}
