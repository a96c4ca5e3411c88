package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCircleIntersectsBox(t *testing.T) {
	box := BoxFromCorner(10, 10, 20, 10)

	tests := []struct {
		name     string
		center   mgl64.Vec2
		radius   float64
		expected bool
	}{
		{"center inside", mgl64.Vec2{15, 15}, 1, true},
		{"overlapping left edge", mgl64.Vec2{8, 15}, 3, true},
		{"touching left edge", mgl64.Vec2{7, 15}, 3, true},
		{"clear of left edge", mgl64.Vec2{6.9, 15}, 3, false},
		{"clear above", mgl64.Vec2{15, 5}, 4, false},
		{"near corner inside radius", mgl64.Vec2{8, 8}, 3, true},
		{"near corner outside radius", mgl64.Vec2{7, 7}, 4, false},
		{"far away", mgl64.Vec2{100, 100}, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleIntersectsBox(tc.center, tc.radius, box)
			if result != tc.expected {
				t.Errorf("CircleIntersectsBox(%v, %v) = %v, expected %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestBoxFromCenter(t *testing.T) {
	b := BoxFromCenter(mgl64.Vec2{10, 20}, 4, 6)

	if b.Min != (mgl64.Vec2{8, 17}) {
		t.Errorf("Min = %v, expected (8, 17)", b.Min)
	}
	if b.Max != (mgl64.Vec2{12, 23}) {
		t.Errorf("Max = %v, expected (12, 23)", b.Max)
	}
	if b.Width() != 4 || b.Height() != 6 {
		t.Errorf("size = %vx%v, expected 4x6", b.Width(), b.Height())
	}
	if b.Center() != (mgl64.Vec2{10, 20}) {
		t.Errorf("Center() = %v, expected (10, 20)", b.Center())
	}
}

func TestBoxContainsAndScale(t *testing.T) {
	b := BoxFromCorner(0.25, 0.5, 0.5, 0.25)
	scaled := b.Scale(Viewport{W: 200, H: 100})

	if scaled.Min != (mgl64.Vec2{50, 50}) || scaled.Max != (mgl64.Vec2{150, 75}) {
		t.Errorf("Scale() = %v..%v, expected (50,50)..(150,75)", scaled.Min, scaled.Max)
	}
	if !scaled.Contains(mgl64.Vec2{50, 75}) {
		t.Error("Contains should include edges")
	}
	if scaled.Contains(mgl64.Vec2{49, 60}) {
		t.Error("Contains should exclude points left of the box")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(mgl64.Vec2{1, -1})
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, expected 1", v.Len())
	}
	if zero := Normalize(mgl64.Vec2{}); zero != (mgl64.Vec2{}) {
		t.Errorf("Normalize(0) = %v, expected zero vector", zero)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{370, 10},
		{-10, 350},
	}

	for _, tc := range tests {
		if got := WrapDegrees(tc.in); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestViewportConversions(t *testing.T) {
	vp := Viewport{W: 1250, H: 650}
	p := vp.ToPixels(mgl64.Vec2{0.5, 0.5})
	if p != (mgl64.Vec2{625, 325}) {
		t.Errorf("ToPixels = %v, expected (625, 325)", p)
	}
	back := vp.ToNormalized(p)
	if back != (mgl64.Vec2{0.5, 0.5}) {
		t.Errorf("ToNormalized = %v, expected (0.5, 0.5)", back)
	}
	if (Viewport{}).ToNormalized(p) != (mgl64.Vec2{}) {
		t.Error("empty viewport should normalize to zero")
	}
	if !(Viewport{W: 0, H: 10}).Empty() {
		t.Error("zero width viewport should be empty")
	}
}
