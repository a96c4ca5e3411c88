package goalkeeper

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

func newTestPool() *ParticlePool {
	return NewParticlePool(DefaultPoolCapacity, 120, rand.New(rand.NewSource(1)))
}

var longLived = Emitter{
	Velocity: Range{Min: -1, Max: 1},
	Size:     Range{Min: 4, Max: 4},
	Life:     Range{Min: 10, Max: 10},
	Fade:     1,
	Color:    core.ColorGold,
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	p := newTestPool()

	if n := p.Emit(mgl64.Vec2{}, 60, longLived); n != 60 {
		t.Errorf("first emit added %d, expected 60", n)
	}
	if n := p.Emit(mgl64.Vec2{}, 60, longLived); n != 40 {
		t.Errorf("second emit added %d, expected 40", n)
	}
	if p.Len() != 100 {
		t.Errorf("Len = %d, expected 100", p.Len())
	}
	if n := p.Emit(mgl64.Vec2{}, 10, longLived); n != 0 || p.Len() != 100 {
		t.Errorf("full pool accepted %d particles, len %d", n, p.Len())
	}
	if p.Cap() != 100 {
		t.Errorf("Cap = %d, expected 100", p.Cap())
	}
}

func TestPoolEmitUpdateRemoveRoundTrip(t *testing.T) {
	p := newTestPool()
	p.Emit(mgl64.Vec2{}, 10, longLived)
	before := p.Len()

	shortLived := longLived
	shortLived.Life = Range{Min: 0.1, Max: 0.2}
	p.Emit(mgl64.Vec2{50, 50}, 25, shortLived)
	if p.Len() != before+25 {
		t.Fatalf("Len = %d after emit, expected %d", p.Len(), before+25)
	}

	removed := p.Update(0.25)
	if removed != 25 {
		t.Errorf("removed %d, expected 25", removed)
	}
	if p.Len() != before {
		t.Errorf("Len = %d after expiry, expected %d", p.Len(), before)
	}
	for i, pt := range p.Particles() {
		if pt.Life <= 0 {
			t.Errorf("particle %d survived with life %v", i, pt.Life)
		}
	}
}

func TestPoolSwapRemoveKeepsSurvivors(t *testing.T) {
	p := newTestPool()
	shortLived := longLived
	shortLived.Life = Range{Min: 0.05, Max: 0.05}

	// Interleave short and long lived particles
	for range 5 {
		p.Emit(mgl64.Vec2{}, 1, shortLived)
		p.Emit(mgl64.Vec2{}, 1, longLived)
	}

	p.Update(0.1)

	if p.Len() != 5 {
		t.Fatalf("Len = %d, expected 5", p.Len())
	}
	for _, pt := range p.Particles() {
		if !approx(pt.Life, 9.9) {
			t.Errorf("unexpected survivor with life %v", pt.Life)
		}
	}
}

func TestParticleIntegration(t *testing.T) {
	p := newTestPool()
	fixed := Emitter{
		Velocity: Range{Min: 1, Max: 1},
		Size:     Range{Min: 5, Max: 5},
		Life:     Range{Min: 1.5, Max: 1.5},
		Fade:     1.5,
		Color:    core.ColorMaroon,
	}
	p.Emit(mgl64.Vec2{10, 20}, 1, fixed)

	p.Update(0.01)

	pt := p.Particles()[0]
	if !approx(pt.Pos.X(), 11.2) || !approx(pt.Pos.Y(), 21.2) {
		t.Errorf("pos = %v, expected (11.2, 21.2)", pt.Pos)
	}
	if !approx(pt.Life, 1.49) {
		t.Errorf("life = %v, expected 1.49", pt.Life)
	}
	if !approx(pt.Alpha, 1.49/1.5) {
		t.Errorf("alpha = %v, expected life/fade", pt.Alpha)
	}
	if pt.Color != core.ColorMaroon || pt.Size != 5 {
		t.Errorf("color/size not carried: %+v", pt)
	}
}

func TestEmitSamplesWithinRanges(t *testing.T) {
	p := newTestPool()
	e := Emitter{
		Velocity: Range{Min: -2, Max: 2},
		Size:     Range{Min: 5, Max: 20},
		Life:     Range{Min: 0.5, Max: 2},
		Fade:     1.5,
	}
	p.Emit(mgl64.Vec2{}, 50, e)

	for _, pt := range p.Particles() {
		if pt.Vel.X() < -2 || pt.Vel.X() > 2 || pt.Vel.Y() < -2 || pt.Vel.Y() > 2 {
			t.Errorf("velocity %v out of range", pt.Vel)
		}
		if pt.Size < 5 || pt.Size > 20 {
			t.Errorf("size %v out of range", pt.Size)
		}
		if pt.Life < 0.5 || pt.Life > 2 {
			t.Errorf("life %v out of range", pt.Life)
		}
	}
}

func TestPoolClear(t *testing.T) {
	p := newTestPool()
	p.Emit(mgl64.Vec2{}, 30, longLived)
	p.Clear()
	if p.Len() != 0 || p.Free() != 100 {
		t.Errorf("after Clear len=%d free=%d", p.Len(), p.Free())
	}
}
