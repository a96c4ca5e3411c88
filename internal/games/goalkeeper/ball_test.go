package goalkeeper

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
)

var testViewport = core.Viewport{W: 1250, H: 650}

const (
	testDT  = 1.0 / 60
	epsilon = 1e-9
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultGoalkeeperConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 1250, ScreenH: 650, TickRate: 60, Seed: 42})
	return g
}

func step(g *Game, in core.InputFrame) core.StepResult {
	return g.Step(in, core.Frame{DT: testDT, Viewport: testViewport})
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNormalMotion(t *testing.T) {
	g := newTestGame(t)
	b := &g.World().Ball

	// Twenty frames from center stay well clear of every wall and the keeper
	for i := range 20 {
		before := b.Pos
		dir := b.Dir
		step(g, idle())

		expected := before.Add(dir.Mul(b.Speed() * testDT))
		if !approx(b.Pos.X(), expected.X()) || !approx(b.Pos.Y(), expected.Y()) {
			t.Fatalf("frame %d: pos = %v, expected %v", i, b.Pos, expected)
		}
		if !approx(b.Dir.Len(), 1) {
			t.Fatalf("frame %d: |dir| = %v, expected 1", i, b.Dir.Len())
		}
	}
}

func TestRollingPinnedToGoalLine(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	b := &w.Ball

	b.Dir = mgl64.Vec2{1, 0.2}.Normalize()
	b.StartRolling(w.Goal)
	top, bottom := w.Goal.RollBounds(b.Radius())
	pinnedX := w.Goal.Pos.X() - b.Radius()

	prevDir := b.RollDir()
	if prevDir != 1 {
		t.Fatalf("ball moving down should roll down, got dir %v", prevDir)
	}
	flips := 0

	for i := range 200 {
		step(g, idle())
		if b.State() != StateRolling {
			t.Fatalf("frame %d: left rolling early (timer %v)", i, b.RollTimer())
		}
		if b.Pos.X() != pinnedX {
			t.Errorf("frame %d: x = %v, expected pinned at %v", i, b.Pos.X(), pinnedX)
		}
		if b.Pos.Y() < top || b.Pos.Y() > bottom {
			t.Errorf("frame %d: y = %v outside [%v, %v]", i, b.Pos.Y(), top, bottom)
		}
		if dir := b.RollDir(); dir != prevDir {
			flips++
			if b.Pos.Y() != top && b.Pos.Y() != bottom {
				t.Errorf("frame %d: direction flipped away from a bound at y=%v", i, b.Pos.Y())
			}
			prevDir = dir
		}
		if s := b.Spin(); s < 0 || s >= 360 {
			t.Errorf("frame %d: spin %v outside [0, 360)", i, s)
		}
	}

	if flips == 0 {
		t.Error("expected at least one bounce along the goal line")
	}
}

func TestRollingEndsInSpark(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.Ball.StartRolling(w.Goal)

	var sawSpark bool
	for range 300 {
		res := step(g, idle())
		if hasEvent(res.Events, core.EventSpark) {
			sawSpark = true
			break
		}
	}

	if !sawSpark {
		t.Fatal("rolling never ended")
	}
	if w.Ball.State() != StateSparking {
		t.Errorf("state = %v, expected sparking", w.Ball.State())
	}
	if w.Ball.Pos != w.center() {
		t.Errorf("sparking ball at %v, expected center", w.Ball.Pos)
	}
	if w.Particles.Len() != w.cfg.Effects.Spark.Count {
		t.Errorf("spark burst = %d particles, expected %d", w.Particles.Len(), w.cfg.Effects.Spark.Count)
	}
}

func TestSparkingServesLeftward(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.Ball.StartSparking(w.center())

	var served bool
	for range 120 {
		before := w.Ball.Pos
		res := step(g, idle())
		if hasEvent(res.Events, core.EventServe) {
			served = true
			break
		}
		if w.Ball.Pos != before {
			t.Fatal("sparking ball moved")
		}
	}

	if !served {
		t.Fatal("sparking never served")
	}
	if w.Ball.State() != StateNormal {
		t.Errorf("state = %v, expected normal", w.Ball.State())
	}
	if w.Ball.Dir.X() >= 0 {
		t.Errorf("serve direction %v should point left", w.Ball.Dir)
	}
	if !approx(w.Ball.Dir.Len(), 1) {
		t.Errorf("|dir| = %v, expected 1", w.Ball.Dir.Len())
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name  string
		pos   mgl64.Vec2
		dir   mgl64.Vec2
		check func(b *Ball, r float64) bool
	}{
		{
			name:  "top",
			pos:   mgl64.Vec2{0.3, 0.012},
			dir:   mgl64.Vec2{0, -1},
			check: func(b *Ball, r float64) bool { return b.Dir.Y() > 0 && approx(b.Pos.Y(), (r+contactGap)/testViewport.H) },
		},
		{
			name:  "bottom",
			pos:   mgl64.Vec2{0.3, 0.988},
			dir:   mgl64.Vec2{0, 1},
			check: func(b *Ball, r float64) bool { return b.Dir.Y() < 0 && approx(b.Pos.Y(), (testViewport.H-r-contactGap)/testViewport.H) },
		},
		{
			name:  "left",
			pos:   mgl64.Vec2{0.01, 0.3},
			dir:   mgl64.Vec2{-1, 0},
			check: func(b *Ball, r float64) bool { return b.Dir.X() > 0 && approx(b.Pos.X(), (r+contactGap)/testViewport.W) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			b := &g.World().Ball
			b.Pos = tc.pos
			b.Dir = tc.dir

			res := step(g, idle())

			r := b.Radius() * testViewport.W
			if !tc.check(b, r) {
				t.Errorf("after bounce pos=%v dir=%v", b.Pos, b.Dir)
			}
			if len(res.Events) != 0 {
				t.Errorf("wall bounce should not emit events, got %v", res.Events)
			}
		})
	}
}

func TestBallStateString(t *testing.T) {
	if StateRolling.String() != "rolling" || BallState(9).String() != "unknown" {
		t.Error("unexpected BallState names")
	}
}
