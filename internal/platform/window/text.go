package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in pixels.
const (
	hudSize    = 20
	bannerSize = 30
	titleSize  = 48
	buttonSize = 24
)

type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: failed to load bold font: %w", err)
	}
	return &fonts{regular: regular, bold: bold}, nil
}

func (f *fonts) face(size float64, bold bool) *text.GoTextFace {
	src := f.regular
	if bold {
		src = f.bold
	}
	return &text.GoTextFace{Source: src, Size: size, Direction: text.DirectionLeftToRight}
}

// drawText draws s with its top edge at y. With centered set, x is the
// horizontal center of the text, otherwise its left edge.
func (f *fonts) drawText(dst *ebiten.Image, s string, size float64, bold bool, x, y float64, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, f.face(size, bold), op)
}
