package goalkeeper

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
)

// World aggregates every simulation entity. It is owned by a single Game and
// mutated only from Step.
type World struct {
	Ball      Ball
	Keeper    Keeper
	Goal      Goal
	Particles *ParticlePool
	Score     Scoreboard

	cfg     config.GoalkeeperConfig
	rng     *rand.Rand
	goalFX  Emitter
	sparkFX Emitter
}

// NewWorld builds a world in its initial state.
func NewWorld(cfg config.GoalkeeperConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:     cfg,
		rng:     rng,
		goalFX:  emitterFromConfig(cfg.Effects.Goal),
		sparkFX: emitterFromConfig(cfg.Effects.Spark),
	}
	w.Particles = NewParticlePool(cfg.Particles.Capacity, cfg.Particles.FrameScale, rng)
	w.Reset()
	return w
}

// Reset returns every entity to its initial value and empties the particle pool.
func (w *World) Reset() {
	w.Ball = newBall(w.cfg)
	w.Keeper = newKeeper(w.cfg.Keeper)
	w.Goal = newGoal(w.cfg.Goal)
	w.Score = newScoreboard(w.cfg.Scoring, w.cfg.Timers)
	w.Particles.Clear()
}

// Classic reports whether the earlier rule set is active.
func (w *World) Classic() bool {
	return w.cfg.Scoring.Classic
}

// center is the field point the ball returns to between rallies.
func (w *World) center() mgl64.Vec2 {
	return vec(w.cfg.Ball.Start)
}

func vec(v config.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func (w *World) event(kind core.EventKind) core.Event {
	return core.Event{Kind: kind, Score: w.Score.Score}
}

// Update runs the per-frame simulation: pending penalty, banner, keeper and ball.
func (w *World) Update(in core.InputFrame, dt float64, vp core.Viewport) []core.Event {
	var events []core.Event

	if w.Score.ApplyPending() {
		events = append(events, w.event(core.EventPenalty))
	}
	w.Score.Tick(dt)

	w.Keeper.Move(in.Has(core.ActionUp), in.Has(core.ActionDown), dt, vp)

	switch w.Ball.Advance(dt, w.Goal) {
	case TransitionRollEnded:
		if w.Classic() {
			w.serve()
			events = append(events, w.event(core.EventServe))
		} else {
			w.spark(vp)
			events = append(events, w.event(core.EventSpark))
		}
	case TransitionSparkEnded:
		w.serve()
		events = append(events, w.event(core.EventServe))
	}

	return events
}

// spark parks the ball at center and emits the spark burst there.
func (w *World) spark(vp core.Viewport) {
	w.Ball.StartSparking(w.center())
	w.Particles.Emit(vp.ToPixels(w.center()), w.cfg.Effects.Spark.Count, w.sparkFX)
}

// serve relaunches the ball from center toward the left.
func (w *World) serve() {
	w.Ball.Serve(w.center(), serveDirection(w.rng))
}
