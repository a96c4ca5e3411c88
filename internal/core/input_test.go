package core

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Click(12, 34)
	if !f.Has(ActionUp) || !f.Has(ActionClick) {
		t.Error("Set/Click should mark actions")
	}
	if f.Pointer != (mgl64.Vec2{12, 34}) {
		t.Errorf("Pointer = %v, expected (12, 34)", f.Pointer)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should drop actions")
	}
	if f.Pointer != (mgl64.Vec2{12, 34}) {
		t.Error("Clear should keep the pointer position")
	}
	if !clone.Has(ActionUp) || clone.Pointer != (mgl64.Vec2{12, 34}) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Maroon ")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != ColorMaroon {
		t.Errorf("ParseColor = %v, expected maroon", c)
	}

	_, err = ParseColor("chartreuse")
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}

	var round Color
	text, _ := ColorGold.MarshalText()
	if err := round.UnmarshalText(text); err != nil || round != ColorGold {
		t.Errorf("text round trip = %v, %v", round, err)
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(60)
	start := time.Unix(100, 0)

	if dt := c.Tick(start); math.Abs(dt-1.0/60) > 1e-12 {
		t.Errorf("first tick = %v, expected nominal 1/60", dt)
	}
	if dt := c.Tick(start.Add(20 * time.Millisecond)); math.Abs(dt-0.02) > 1e-9 {
		t.Errorf("second tick = %v, expected 0.02", dt)
	}
	if dt := c.Tick(start.Add(5 * time.Second)); dt != MaxFrameDT {
		t.Errorf("stalled tick = %v, expected clamp to %v", dt, MaxFrameDT)
	}
	if dt := c.Tick(start); dt != 0 {
		t.Errorf("backwards tick = %v, expected 0", dt)
	}

	c.Reset()
	if dt := c.Tick(start); math.Abs(dt-1.0/60) > 1e-12 {
		t.Errorf("tick after Reset = %v, expected nominal", dt)
	}
}

func TestEventKindString(t *testing.T) {
	if EventGoal.String() != "goal" || EventGameOver.String() != "game_over" {
		t.Error("unexpected event names")
	}
}
