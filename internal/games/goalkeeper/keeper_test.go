package goalkeeper

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

func testKeeper() Keeper {
	return Keeper{Pos: mgl64.Vec2{0.96, 0.5}, Width: 0.016, Height: 0.056, Speed: 0.485}
}

func TestKeeperMovesBySpeedTimesDT(t *testing.T) {
	k := testKeeper()
	k.Move(true, false, testDT, testViewport)
	if !approx(k.Pos.Y(), 0.5-0.485*testDT) {
		t.Errorf("up: y = %v", k.Pos.Y())
	}

	k = testKeeper()
	k.Move(false, true, testDT, testViewport)
	if !approx(k.Pos.Y(), 0.5+0.485*testDT) {
		t.Errorf("down: y = %v", k.Pos.Y())
	}

	k = testKeeper()
	k.Move(true, true, testDT, testViewport)
	if !approx(k.Pos.Y(), 0.5) {
		t.Errorf("both: y = %v, expected no net movement", k.Pos.Y())
	}

	if k.Pos.X() != 0.96 {
		t.Errorf("x moved to %v", k.Pos.X())
	}
}

func TestKeeperRefusesMovesPastEdges(t *testing.T) {
	k := testKeeper()
	nearTop := k.Height/2 + 0.001
	k.Pos[1] = nearTop
	k.Move(true, false, testDT, testViewport)
	if k.Pos.Y() != nearTop {
		t.Errorf("move past top applied: y = %v", k.Pos.Y())
	}

	nearBottom := 1 - k.Height/2 - 0.001
	k.Pos[1] = nearBottom
	k.Move(false, true, testDT, testViewport)
	if k.Pos.Y() != nearBottom {
		t.Errorf("move past bottom applied: y = %v", k.Pos.Y())
	}

	// Holding up for a long time never leaves the field
	k = testKeeper()
	for range 600 {
		k.Move(true, false, testDT, testViewport)
	}
	if top := k.Box().Min.Y(); top < 0 {
		t.Errorf("keeper top %v left the field", top)
	}
	if k.Pos.Y() < k.Height/2 {
		t.Errorf("keeper center %v above height/2", k.Pos.Y())
	}
}

func TestKeeperIgnoresEmptyViewport(t *testing.T) {
	k := testKeeper()
	k.Move(true, false, testDT, core.Viewport{})
	if k.Pos.Y() != 0.5 {
		t.Errorf("moved without a viewport: y = %v", k.Pos.Y())
	}
}

func TestGoalGeometry(t *testing.T) {
	g := Goal{Pos: mgl64.Vec2{0.992, 0.5}, Width: 0.024, Height: 0.308}
	m := g.Mouth()
	if !approx(m.Min.X(), 0.968) || !approx(m.Max.X(), 0.992) {
		t.Errorf("mouth x = [%v, %v]", m.Min.X(), m.Max.X())
	}
	if !approx(m.Min.Y(), 0.346) || !approx(m.Max.Y(), 0.654) {
		t.Errorf("mouth y = [%v, %v]", m.Min.Y(), m.Max.Y())
	}

	top, bottom := g.RollBounds(0.008)
	if !approx(top, 0.354) || !approx(bottom, 0.646) {
		t.Errorf("roll bounds = [%v, %v]", top, bottom)
	}
}

func TestScoreboardBanner(t *testing.T) {
	s := Scoreboard{missPenalty: 50, bannerTime: 1}
	s.Miss()
	if !s.ShowPenalty() {
		t.Fatal("banner should show after a miss")
	}
	s.Tick(0.6)
	if !s.ShowPenalty() {
		t.Error("banner hidden too early")
	}
	s.Tick(0.6)
	if s.ShowPenalty() || s.BannerTimer() != 0 {
		t.Errorf("banner should expire, timer %v", s.BannerTimer())
	}
	if !s.ApplyPending() || s.Score != -50 {
		t.Errorf("pending miss not applied: %d", s.Score)
	}
	if s.ApplyPending() {
		t.Error("pending miss applied twice")
	}
	if !s.CheckGameOver() || s.CheckGameOver() {
		t.Error("CheckGameOver should fire exactly once")
	}
}
