package core

import "github.com/go-gl/mathgl/mgl64"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport is the size of the drawing surface in pixels.
// Simulation state is normalized to [0,1]; the viewport converts it for
// collision checks and rendering.
type Viewport struct {
	W, H float64
}

// ToPixels converts a normalized point to pixel space.
func (v Viewport) ToPixels(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{p.X() * v.W, p.Y() * v.H}
}

// ToNormalized converts a pixel-space point back to normalized space.
func (v Viewport) ToNormalized(p mgl64.Vec2) mgl64.Vec2 {
	if v.Empty() {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{p.X() / v.W, p.Y() / v.H}
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.W <= 0 || v.H <= 0
}

// Frame carries the per-frame inputs every simulation step needs from the host:
// the elapsed time and the current viewport.
type Frame struct {
	DT       float64  // Seconds since previous frame
	Viewport Viewport // Current surface size
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (may be negative)
	Goals    int  // Goals conceded into the net
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
