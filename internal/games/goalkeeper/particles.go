package goalkeeper

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
)

// DefaultPoolCapacity is the particle pool size used when none is configured.
const DefaultPoolCapacity = 100

// Particle is a transient visual effect in pixel space.
type Particle struct {
	Pos   mgl64.Vec2
	Vel   mgl64.Vec2
	Color core.Color
	Alpha float64
	Size  float64
	Life  float64
	Fade  float64 // Alpha = Life / Fade
}

// Range is an inclusive interval sampled uniformly.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Emitter describes how each particle in a burst is drawn.
type Emitter struct {
	Velocity Range // Per axis
	Size     Range
	Life     Range
	Fade     float64
	Color    core.Color
}

func emitterFromConfig(c config.EmitterConfig) Emitter {
	return Emitter{
		Velocity: Range{Min: c.Velocity.Min, Max: c.Velocity.Max},
		Size:     Range{Min: c.Size.Min, Max: c.Size.Max},
		Life:     Range{Min: c.Life.Min, Max: c.Life.Max},
		Fade:     c.Fade,
		Color:    c.Color,
	}
}

// ParticlePool is a fixed-capacity, unordered particle store.
// Removal swaps the last live particle into the freed slot.
type ParticlePool struct {
	items      []Particle
	frameScale float64
	rng        *rand.Rand
}

// NewParticlePool creates an empty pool. frameScale multiplies velocities so they
// can be tuned as "pixels per frame at 120 Hz".
func NewParticlePool(capacity int, frameScale float64, rng *rand.Rand) *ParticlePool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &ParticlePool{
		items:      make([]Particle, 0, capacity),
		frameScale: frameScale,
		rng:        rng,
	}
}

// Len returns the number of live particles.
func (p *ParticlePool) Len() int { return len(p.items) }

// Cap returns the fixed capacity.
func (p *ParticlePool) Cap() int { return cap(p.items) }

// Free returns the number of slots still available.
func (p *ParticlePool) Free() int { return cap(p.items) - len(p.items) }

// Emit adds up to count particles at pos, capped by the free capacity.
// Requests beyond capacity are dropped. Returns how many were added.
func (p *ParticlePool) Emit(pos mgl64.Vec2, count int, e Emitter) int {
	n := min(count, p.Free())
	for range n {
		life := e.Life.sample(p.rng)
		p.items = append(p.items, Particle{
			Pos:   pos,
			Vel:   mgl64.Vec2{e.Velocity.sample(p.rng), e.Velocity.sample(p.rng)},
			Color: e.Color,
			Alpha: 1,
			Size:  e.Size.sample(p.rng),
			Life:  life,
			Fade:  e.Fade,
		})
	}
	return max(n, 0)
}

// Update integrates and ages every particle, removing the expired ones.
// Returns the number removed.
func (p *ParticlePool) Update(dt float64) int {
	removed := 0
	for i := len(p.items) - 1; i >= 0; i-- {
		pt := &p.items[i]
		pt.Pos = pt.Pos.Add(pt.Vel.Mul(dt * p.frameScale))
		pt.Life -= dt
		pt.Alpha = pt.Life / pt.Fade

		if pt.Life <= 0 {
			p.removeAt(i)
			removed++
		}
	}
	return removed
}

// removeAt swaps the last particle into slot i and shrinks the pool.
func (p *ParticlePool) removeAt(i int) {
	last := len(p.items) - 1
	p.items[i] = p.items[last]
	p.items = p.items[:last]
}

// Clear removes every particle.
func (p *ParticlePool) Clear() {
	p.items = p.items[:0]
}

// Particles returns a copy of the live particles.
func (p *ParticlePool) Particles() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}
