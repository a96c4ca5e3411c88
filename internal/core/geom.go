// Package core provides fundamental types and utilities for the goalkeeper arcade.
// It contains no platform dependencies (no Bubble Tea, no Ebitengine) to keep game
// logic pure and testable headlessly.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect represents an axis-aligned cell rectangle on a terminal screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned rectangle in continuous (pixel or normalized) space.
type Box struct {
	Min mgl64.Vec2 // Top-left corner
	Max mgl64.Vec2 // Bottom-right corner
}

// BoxFromCenter builds a box of the given size centered on c.
func BoxFromCenter(c mgl64.Vec2, w, h float64) Box {
	half := mgl64.Vec2{w / 2, h / 2}
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// BoxFromCorner builds a box from its top-left corner and size.
func BoxFromCorner(x, y, w, h float64) Box {
	return Box{Min: mgl64.Vec2{x, y}, Max: mgl64.Vec2{x + w, y + h}}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Max.X() - b.Min.X()
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Max.Y() - b.Min.Y()
}

// Center returns the center point of the box.
func (b Box) Center() mgl64.Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b Box) Contains(p mgl64.Vec2) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

// Scale maps a normalized box into a viewport's pixel space.
func (b Box) Scale(vp Viewport) Box {
	return Box{Min: vp.ToPixels(b.Min), Max: vp.ToPixels(b.Max)}
}

// CircleIntersectsBox reports whether a circle overlaps a box.
// Touching counts as overlap.
func CircleIntersectsBox(center mgl64.Vec2, radius float64, b Box) bool {
	closest := mgl64.Vec2{
		ClampF(center.X(), b.Min.X(), b.Max.X()),
		ClampF(center.Y(), b.Min.Y(), b.Max.Y()),
	}
	d := center.Sub(closest)
	return d.Dot(d) <= radius*radius
}

// Normalize returns v scaled to unit length.
// A zero vector is returned unchanged.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// WrapDegrees folds an angle into [0, 360).
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
