package window

import (
	"image/color"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorWhite:    {R: 255, G: 255, B: 255, A: 255},
	core.ColorBlack:    {R: 0, G: 0, B: 0, A: 255},
	core.ColorGray:     {R: 130, G: 130, B: 130, A: 255},
	core.ColorPitch:    {R: 0, G: 100, B: 0, A: 255},
	core.ColorDarkBlue: {R: 0, G: 82, B: 172, A: 255},
	core.ColorMaroon:   {R: 190, G: 33, B: 55, A: 255},
	core.ColorGold:     {R: 255, G: 203, B: 0, A: 255},
	core.ColorOrange:   {R: 255, G: 161, B: 0, A: 255},
	core.ColorRed:      {R: 230, G: 41, B: 55, A: 255},
	core.ColorYellow:   {R: 253, G: 249, B: 0, A: 255},
}

// RGBA maps a palette color to its window color. Unknown colors draw white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorWhite]
}

// withAlpha returns c premultiplied by alpha in [0,1].
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
