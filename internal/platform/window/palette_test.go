package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   core.Color
		want color.RGBA
	}{
		{core.ColorPitch, color.RGBA{R: 0, G: 100, B: 0, A: 255}},
		{core.ColorDarkBlue, color.RGBA{R: 0, G: 82, B: 172, A: 255}},
		{core.ColorMaroon, color.RGBA{R: 190, G: 33, B: 55, A: 255}},
		{core.ColorDefault, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{core.Color(200), color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tc := range tests {
		if got := RGBA(tc.in); got != tc.want {
			t.Errorf("RGBA(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	white := RGBA(core.ColorWhite)

	if got := withAlpha(white, 1); got != white {
		t.Errorf("alpha 1 = %v", got)
	}
	if got := withAlpha(white, 0); got != (color.RGBA{}) {
		t.Errorf("alpha 0 = %v", got)
	}
	if got := withAlpha(white, 2); got != white {
		t.Errorf("alpha above 1 should clamp, got %v", got)
	}
	if got := withAlpha(white, 0.5); got.A != 127 || got.R != 127 {
		t.Errorf("alpha 0.5 = %v", got)
	}
}
