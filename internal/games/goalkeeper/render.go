package goalkeeper

import (
	"fmt"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	SparkBall    = '✦'
	KeeperChar   = '█'
	NetChar      = '┼'
	PostChar     = '║'
	HalfwayChar  = '┊'
	ButtonFill   = ' '
	ParticleHigh = '*'
	ParticleMid  = '+'
	ParticleLow  = '·'
)

// spinGlyphs animate the ball while it rolls along the goal line, one per quarter turn.
var spinGlyphs = []rune{'◐', '◓', '◑', '◒'}

// cellMapper converts normalized coordinates to terminal cells.
type cellMapper struct {
	w, h int
}

func (m cellMapper) col(x float64) int {
	return core.Clamp(int(x*float64(m.w)), 0, m.w-1)
}

func (m cellMapper) row(y float64) int {
	return core.Clamp(int(y*float64(m.h)), 0, m.h-1)
}

// rect maps a normalized box to cells, never smaller than one cell.
func (m cellMapper) rect(b core.Box) core.Rect {
	x0, y0 := m.col(b.Min.X()), m.row(b.Min.Y())
	x1, y1 := m.col(b.Max.X()), m.row(b.Max.Y())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state into the terminal screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < 4 {
		return
	}

	snap := g.Snapshot()
	m := cellMapper{w: dst.Width(), h: dst.Height()}

	g.renderField(dst, m)
	g.renderGoal(dst, m, &snap)
	dst.DrawRect(m.rect(snap.Keeper), KeeperChar, core.ColorDarkBlue)
	g.renderParticles(dst, m, &snap)
	g.renderBall(dst, m, &snap)
	g.renderHUD(dst, &snap)
	g.renderOverlay(dst, m, &snap)
}

// renderField draws the pitch border and halfway line.
func (g *Game) renderField(dst *core.Screen, m cellMapper) {
	dst.DrawBox(core.NewRect(0, 0, m.w, m.h), core.ColorPitch)
	dst.DrawVLine(m.w/2, 1, m.h-2, HalfwayChar, core.ColorPitch)
}

// renderGoal draws the net grid with a post on the open side.
func (g *Game) renderGoal(dst *core.Screen, m cellMapper, snap *Snapshot) {
	net := m.rect(snap.GoalMouth)
	dst.DrawRect(net, NetChar, core.ColorGray)
	dst.DrawVLine(net.X, net.Y, net.H, PostChar, core.ColorWhite)
}

func (g *Game) renderBall(dst *core.Screen, m cellMapper, snap *Snapshot) {
	x, y := m.col(snap.BallPos.X()), m.row(snap.BallPos.Y())

	switch snap.BallState {
	case StateRolling:
		glyph := spinGlyphs[int(snap.Spin/90)%len(spinGlyphs)]
		dst.SetColored(x, y, glyph, core.ColorWhite)
	case StateSparking:
		dst.SetColored(x, y, SparkBall, core.ColorGold)
	default:
		dst.SetColored(x, y, BallChar, core.ColorWhite)
	}
}

// renderParticles maps pixel-space particles back through the simulation viewport.
func (g *Game) renderParticles(dst *core.Screen, m cellMapper, snap *Snapshot) {
	if snap.Viewport.Empty() {
		return
	}
	for _, p := range snap.Particles {
		n := snap.Viewport.ToNormalized(p.Pos)
		if n.X() < 0 || n.X() > 1 || n.Y() < 0 || n.Y() > 1 {
			continue
		}

		glyph := ParticleLow
		switch {
		case p.Alpha > 0.66:
			glyph = ParticleHigh
		case p.Alpha > 0.33:
			glyph = ParticleMid
		}
		dst.SetColored(m.col(n.X()), m.row(n.Y()), glyph, p.Color)
	}
}

// renderHUD draws score and goal count on the top border.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)

	goals := fmt.Sprintf(" Goals: %d ", snap.Goals)
	dst.DrawTextColored(dst.Width()-len(goals)-2, 0, goals, core.ColorWhite)
}

// renderOverlay draws transient banners and the game over panel.
func (g *Game) renderOverlay(dst *core.Screen, m cellMapper, snap *Snapshot) {
	midY := dst.Height() / 2

	if snap.BallState == StateRolling {
		dst.DrawTextCentered(dst.Height()/4, "GOAL!", core.ColorMaroon)
	}
	if snap.ShowPenalty {
		dst.DrawTextCentered(dst.Height()/4+1, fmt.Sprintf("-%d", snap.MissPenalty), core.ColorRed)
	}

	if snap.GameOver {
		dst.DrawTextCentered(midY-2, "GAME OVER", core.ColorRed)
		dst.DrawTextCentered(midY-1, fmt.Sprintf("Final score: %d  Goals: %d", snap.Score, snap.Goals), core.ColorWhite)

		button := m.rect(snap.RestartButton)
		button.H = max(button.H, 3)
		dst.DrawRect(button, ButtonFill, core.ColorDefault)
		dst.DrawBox(button, core.ColorGold)
		label := "RESTART"
		dst.DrawTextColored(button.X+(button.W-len(label))/2, button.Y+button.H/2, label, core.ColorGold)
		dst.DrawTextCentered(button.Bottom(), "click or press R", core.ColorGray)
		return
	}

	if snap.Paused {
		dst.DrawTextCentered(midY, "PAUSED", core.ColorYellow)
		dst.DrawTextCentered(midY+1, "Press SPACE to resume", core.ColorGray)
	}
}
