package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/goalkeeper/internal/core"
	"github.com/vovakirdan/goalkeeper/internal/games/goalkeeper"
)

const (
	netLines       = 7
	pentagonPoints = 5
	particleSpin   = 90.0 // Degrees per second
	lineWidth      = 1
)

var (
	white   = RGBA(core.ColorWhite)
	black   = RGBA(core.ColorBlack)
	shade   = color.RGBA{A: 140}
	hovered = color.RGBA{R: 255, G: 225, B: 90, A: 255}
)

// painter draws one snapshot onto a screen image.
type painter struct {
	dst    *ebiten.Image
	snap   *goalkeeper.Snapshot
	fonts  *fonts
	pixel  *ebiten.Image
	cursor mgl64.Vec2
	vp     core.Viewport
	w, h   float64
}

func (p *painter) draw() {
	if p.w <= 0 || p.h <= 0 {
		return
	}
	p.field()
	p.goal()
	p.keeper()
	p.ball()
	p.particles()
	p.hud()
	p.overlays()
}

func (p *painter) field() {
	w, h := p.w, p.h
	p.dst.Fill(RGBA(core.ColorPitch))

	// Halfway line and center circle
	vector.DrawFilledRect(p.dst, float32(w/2-2), 10, 1, float32(h-22), white, false)
	vector.StrokeCircle(p.dst, float32(w/2), float32(h/2), float32(w*0.072), lineWidth, white, true)

	// Penalty area in front of the goal
	mouth := p.snap.GoalMouth
	areaW := w * 0.144
	areaH := mouth.Height()*h + h*0.185
	vector.StrokeRect(p.dst,
		float32(w-areaW-mouth.Width()*w+w*0.016), float32(h/2-areaH/2),
		float32(areaW), float32(areaH), lineWidth, white, false)

	// Touchlines
	vector.StrokeRect(p.dst, float32(w*0.008), float32(h*0.015),
		float32(w-w*0.016), float32(h-h*0.031), lineWidth, white, false)
}

func (p *painter) goal() {
	mouth := p.scale(p.snap.GoalMouth)
	x, y := float32(mouth.Min.X()), float32(mouth.Min.Y())
	gw, gh := float32(mouth.Width()), float32(mouth.Height())
	vector.DrawFilledRect(p.dst, x, y, gw, gh, RGBA(core.ColorGray), false)

	dx, dy := gw/netLines, gh/netLines
	for i := 1; i < netLines; i++ {
		fi := float32(i)
		vector.StrokeLine(p.dst, x+fi*dx, y, x+fi*dx, y+gh, lineWidth, white, false)
		vector.StrokeLine(p.dst, x, y+fi*dy, x+gw, y+fi*dy, lineWidth, white, false)
	}
}

func (p *painter) keeper() {
	box := p.scale(p.snap.Keeper)
	vector.DrawFilledRect(p.dst, float32(box.Min.X()), float32(box.Min.Y()),
		float32(box.Width()), float32(box.Height()), RGBA(core.ColorDarkBlue), false)
}

// ball draws the ball with five patches rotated by the current spin.
func (p *painter) ball() {
	pos := p.point(p.snap.BallPos)
	r := p.snap.BallRadius * p.w

	body := white
	if p.snap.BallState == goalkeeper.StateSparking {
		body = RGBA(core.ColorGold)
	}
	vector.DrawFilledCircle(p.dst, float32(pos.X()), float32(pos.Y()), float32(r), body, true)

	for i := range pentagonPoints {
		angle := mgl64.DegToRad(float64(i)*360/pentagonPoints + p.snap.Spin)
		cx := pos.X() + math.Cos(angle)*r*0.5
		cy := pos.Y() + math.Sin(angle)*r*0.5
		vector.DrawFilledCircle(p.dst, float32(cx), float32(cy), float32(r*0.3), black, true)
	}
}

// particles draws each particle as a square spinning with elapsed time.
func (p *painter) particles() {
	angle := mgl64.DegToRad(p.snap.Elapsed * particleSpin)
	for _, pt := range p.snap.Particles {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(pt.Size, pt.Size)
		op.GeoM.Rotate(angle)
		op.GeoM.Translate(pt.Pos.X(), pt.Pos.Y())
		op.ColorScale.ScaleWithColor(RGBA(pt.Color))
		op.ColorScale.ScaleAlpha(float32(pt.Alpha))
		p.dst.DrawImage(p.pixel, op)
	}
}

func (p *painter) hud() {
	p.fonts.drawText(p.dst, fmt.Sprintf("Score: %d", p.snap.Score), hudSize, false, p.w*0.008+8, p.h*0.015+4, white, false)
	p.fonts.drawText(p.dst, fmt.Sprintf("Goals: %d", p.snap.Goals), hudSize, false, p.w*0.008+8, p.h*0.062+4, white, false)
	if p.snap.Classic {
		p.fonts.drawText(p.dst, "Classic", hudSize, false, p.w-p.w*0.008-90, p.h*0.015+4, white, false)
	}
}

func (p *painter) overlays() {
	snap := p.snap
	if snap.BallState == goalkeeper.StateRolling {
		p.fonts.drawText(p.dst, "Goal", bannerSize, true, p.w/2+250, p.h/2, black, false)
	}
	if snap.ShowPenalty {
		p.fonts.drawText(p.dst, fmt.Sprintf("-%d", snap.MissPenalty), bannerSize, true,
			p.w/2, p.h*0.15, RGBA(core.ColorRed), true)
	}

	switch {
	case snap.GameOver:
		p.gameOver()
	case snap.Paused:
		p.fonts.drawText(p.dst, "Game paused", 25, false, p.w/2, p.h/2, black, true)
	}
}

func (p *painter) gameOver() {
	vector.DrawFilledRect(p.dst, 0, 0, float32(p.w), float32(p.h), shade, false)
	p.fonts.drawText(p.dst, "Game Over", titleSize, true, p.w/2, p.h*0.35, RGBA(core.ColorRed), true)
	p.fonts.drawText(p.dst, fmt.Sprintf("Score: %d   Goals: %d", p.snap.Score, p.snap.Goals),
		hudSize, false, p.w/2, p.h*0.35+titleSize+8, white, true)

	btn := p.scale(p.snap.RestartButton)
	fill := RGBA(core.ColorGold)
	if btn.Contains(p.cursor) {
		fill = hovered
	}
	vector.DrawFilledRect(p.dst, float32(btn.Min.X()), float32(btn.Min.Y()),
		float32(btn.Width()), float32(btn.Height()), fill, false)
	vector.StrokeRect(p.dst, float32(btn.Min.X()), float32(btn.Min.Y()),
		float32(btn.Width()), float32(btn.Height()), 2, white, false)

	c := btn.Center()
	p.fonts.drawText(p.dst, "Restart", buttonSize, true, c.X(), c.Y()-buttonSize*0.65, black, true)
}

func (p *painter) point(v mgl64.Vec2) mgl64.Vec2 {
	return p.vp.ToPixels(v)
}

func (p *painter) scale(b core.Box) core.Box {
	return b.Scale(p.vp)
}
