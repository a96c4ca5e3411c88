package tui

import (
	"time"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

// DefaultHoldWindow is how long a key press keeps its action held.
// Terminals only report presses and auto-repeats, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys emulates held directional keys from a stream of presses.
// An action stays held until its window elapses without another press.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates an empty tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{window: window, last: make(map[core.Action]time.Time)}
}

// Press records a press at now. Pressing one direction releases the opposite.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		delete(h.last, core.ActionDown)
	case core.ActionDown:
		delete(h.last, core.ActionUp)
	}
	h.last[a] = now
}

// Held reports whether a is still inside its hold window at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Apply sets every action still held at now on the frame.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.last)
}
