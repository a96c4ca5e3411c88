package goalkeeper

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
)

// BallState names the active phase of the ball.
type BallState int

const (
	StateNormal   BallState = iota // Free flight
	StateRolling                   // Sliding along the goal line after a goal
	StateSparking                  // Parked at center before the next serve
)

// String returns a human-readable name for the state.
func (s BallState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateRolling:
		return "rolling"
	case StateSparking:
		return "sparking"
	default:
		return "unknown"
	}
}

// Phase is the ball's state together with the data that only exists in that state.
// The concrete types are *Normal, *Rolling and *Sparking.
type Phase interface {
	State() BallState
}

// Normal is free flight. It carries no payload.
type Normal struct{}

// Rolling is the post-goal slide along the goal line.
type Rolling struct {
	Timer float64 // Seconds left before sparking
	Dir   float64 // +1 moving down, -1 moving up
	Spin  float64 // Cosmetic rotation in degrees, [0, 360)
}

// Sparking is the stationary pause at center before a serve.
type Sparking struct {
	Timer float64 // Seconds left before the serve
}

// State implements Phase.
func (*Normal) State() BallState { return StateNormal }

// State implements Phase.
func (*Rolling) State() BallState { return StateRolling }

// State implements Phase.
func (*Sparking) State() BallState { return StateSparking }

// Transition reports a phase change that needs world-level side effects.
type Transition int

const (
	TransitionNone       Transition = iota
	TransitionRollEnded             // Rolling timer expired
	TransitionSparkEnded            // Sparking timer expired
)

// ballSpec holds the ball's immutable properties.
type ballSpec struct {
	radius     float64
	speed      float64
	spinSpeed  float64
	rollFactor float64
	rollTime   float64
	sparkTime  float64
}

// Ball is the single ball in play. Position is normalized; direction is unit length.
type Ball struct {
	Pos   mgl64.Vec2
	Dir   mgl64.Vec2
	Phase Phase

	spec ballSpec
}

// newBall creates a ball at its serve position in free flight.
func newBall(cfg config.GoalkeeperConfig) Ball {
	return Ball{
		Pos:   mgl64.Vec2{cfg.Ball.Start.X, cfg.Ball.Start.Y},
		Dir:   core.Normalize(mgl64.Vec2{cfg.Ball.Direction.X, cfg.Ball.Direction.Y}),
		Phase: &Normal{},
		spec: ballSpec{
			radius:     cfg.Ball.Radius,
			speed:      cfg.Ball.Speed,
			spinSpeed:  cfg.Ball.SpinSpeed,
			rollFactor: cfg.Ball.RollSpeedFactor,
			rollTime:   cfg.Timers.Roll,
			sparkTime:  cfg.Timers.Spark,
		},
	}
}

// Radius returns the normalized ball radius.
func (b *Ball) Radius() float64 { return b.spec.radius }

// Speed returns the ball speed in normalized units per second.
func (b *Ball) Speed() float64 { return b.spec.speed }

// State returns the current phase name.
func (b *Ball) State() BallState { return b.Phase.State() }

// Spin returns the cosmetic rotation, zero outside Rolling.
func (b *Ball) Spin() float64 {
	if r, ok := b.Phase.(*Rolling); ok {
		return r.Spin
	}
	return 0
}

// RollTimer returns the remaining roll time, zero outside Rolling.
func (b *Ball) RollTimer() float64 {
	if r, ok := b.Phase.(*Rolling); ok {
		return r.Timer
	}
	return 0
}

// RollDir returns the roll direction, zero outside Rolling.
func (b *Ball) RollDir() float64 {
	if r, ok := b.Phase.(*Rolling); ok {
		return r.Dir
	}
	return 0
}

// SparkTimer returns the remaining spark time, zero outside Sparking.
func (b *Ball) SparkTimer() float64 {
	if s, ok := b.Phase.(*Sparking); ok {
		return s.Timer
	}
	return 0
}

// Advance moves the ball one frame according to its phase.
func (b *Ball) Advance(dt float64, goal Goal) Transition {
	switch p := b.Phase.(type) {
	case *Normal:
		b.Pos = b.Pos.Add(b.Dir.Mul(b.spec.speed * dt))

	case *Rolling:
		p.Timer -= dt

		newY := b.Pos.Y() + p.Dir*b.spec.speed*b.spec.rollFactor*dt
		top, bottom := goal.RollBounds(b.spec.radius)
		if newY < top {
			newY = top
			p.Dir = 1
		} else if newY > bottom {
			newY = bottom
			p.Dir = -1
		}
		b.Pos = mgl64.Vec2{goal.Pos.X() - b.spec.radius, newY}
		p.Spin = core.WrapDegrees(p.Spin + b.spec.spinSpeed*dt)

		if p.Timer <= 0 {
			return TransitionRollEnded
		}

	case *Sparking:
		p.Timer -= dt
		if p.Timer <= 0 {
			return TransitionSparkEnded
		}
	}
	return TransitionNone
}

// StartRolling snaps the ball to the goal mouth and begins the goal-line slide.
func (b *Ball) StartRolling(goal Goal) {
	dir := 1.0
	if b.Dir.Y() < 0 {
		dir = -1
	}
	b.Pos = mgl64.Vec2{goal.Pos.X() - b.spec.radius, goal.Pos.Y()}
	b.Phase = &Rolling{Timer: b.spec.rollTime, Dir: dir}
}

// StartSparking parks the ball at pos for the spark duration.
func (b *Ball) StartSparking(pos mgl64.Vec2) {
	b.Pos = pos
	b.Phase = &Sparking{Timer: b.spec.sparkTime}
}

// Serve puts the ball into free flight from pos along dir.
func (b *Ball) Serve(pos, dir mgl64.Vec2) {
	b.Pos = pos
	b.Dir = core.Normalize(dir)
	b.Phase = &Normal{}
}

// serveDirection picks a leftward direction with a uniform vertical component.
func serveDirection(rng *rand.Rand) mgl64.Vec2 {
	return core.Normalize(mgl64.Vec2{-1, rng.Float64()*2 - 1})
}
