package goalkeeper

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Positions are normalized except particles, which live in pixel space of Viewport.
type Snapshot struct {
	Tick     uint64
	Elapsed  float64 // Simulated seconds since the round started
	Viewport core.Viewport
	Classic  bool

	// Ball
	BallPos    mgl64.Vec2
	BallDir    mgl64.Vec2
	BallRadius float64
	BallState  BallState
	RollTimer  float64
	RollDir    float64
	Spin       float64
	SparkTimer float64

	// Field
	Keeper    core.Box
	GoalPos   mgl64.Vec2
	GoalMouth core.Box

	Particles []Particle // Alpha clamped to [0,1]

	// Score
	Score          int
	Goals          int
	Paused         bool
	GameOver       bool
	ShowPenalty    bool
	BannerTimer    float64
	MissPenalty    int
	PenaltyPending bool
	RestartButton  core.Box
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	b := &w.Ball

	particles := w.Particles.Particles()
	for i := range particles {
		particles[i].Alpha = core.ClampF(particles[i].Alpha, 0, 1)
	}

	return Snapshot{
		Tick:     g.tick,
		Elapsed:  g.elapsed,
		Viewport: g.viewport,
		Classic:  w.Classic(),

		BallPos:    b.Pos,
		BallDir:    b.Dir,
		BallRadius: b.Radius(),
		BallState:  b.State(),
		RollTimer:  b.RollTimer(),
		RollDir:    b.RollDir(),
		Spin:       b.Spin(),
		SparkTimer: b.SparkTimer(),

		Keeper:    w.Keeper.Box(),
		GoalPos:   w.Goal.Pos,
		GoalMouth: w.Goal.Mouth(),

		Particles: particles,

		Score:          w.Score.Score,
		Goals:          w.Score.Goals,
		Paused:         w.Score.Paused,
		GameOver:       w.Score.GameOver,
		ShowPenalty:    w.Score.ShowPenalty(),
		BannerTimer:    w.Score.BannerTimer(),
		MissPenalty:    w.Score.MissPenalty(),
		PenaltyPending: w.Score.PenaltyPending(),
		RestartButton:  g.RestartButton(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	mixInt := func(i int) {
		h = h*31 + uint64(i) //#nosec G115 -- hash computation
	}

	mix(snap.BallPos.X())
	mix(snap.BallPos.Y())
	mix(snap.BallDir.X())
	mix(snap.BallDir.Y())
	mixInt(int(snap.BallState))
	mix(snap.RollTimer)
	mix(snap.Spin)
	mix(snap.SparkTimer)
	mix(snap.Keeper.Min.Y())
	mixInt(snap.Score)
	mixInt(snap.Goals)
	mixInt(len(snap.Particles))
	for _, p := range snap.Particles {
		mix(p.Pos.X())
		mix(p.Pos.Y())
		mix(p.Life)
	}
	if snap.GameOver {
		mixInt(1)
	}
	return h
}
