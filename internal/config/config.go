// Package config provides YAML-based game configuration loading and
// difficulty presets for the goalkeeper arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GoalkeeperConfig contains all tuning for the goalkeeper game.
// Positions and sizes are normalized to the viewport; times are in seconds.
type GoalkeeperConfig struct {
	Ball          BallConfig    `yaml:"ball"`
	Keeper        KeeperConfig  `yaml:"keeper"`
	Goal          GoalConfig    `yaml:"goal"`
	Timers        TimerConfig   `yaml:"timers"`
	Scoring       ScoringConfig `yaml:"scoring"`
	Particles     PoolConfig    `yaml:"particles"`
	Effects       EffectsConfig `yaml:"effects"`
	RestartButton RectConfig    `yaml:"restart_button"`
}

// Vec2 is a YAML-friendly 2D point.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Range is an inclusive [min, max] interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BallConfig defines the ball's fixed properties and serve state.
type BallConfig struct {
	Start           Vec2    `yaml:"start"`
	Direction       Vec2    `yaml:"direction"` // Normalized at load time by the game
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`
	SpinSpeed       float64 `yaml:"spin_speed"`        // Degrees per second while rolling
	RollSpeedFactor float64 `yaml:"roll_speed_factor"` // Fraction of speed used along the goal line
}

// KeeperConfig defines the goalkeeper paddle.
type KeeperConfig struct {
	Position Vec2    `yaml:"position"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
}

// GoalConfig defines the goal mouth. Position is the right-center of the mouth.
type GoalConfig struct {
	Position Vec2    `yaml:"position"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// TimerConfig defines state machine durations.
type TimerConfig struct {
	Roll          float64 `yaml:"roll"`
	Spark         float64 `yaml:"spark"`
	PenaltyBanner float64 `yaml:"penalty_banner"`
}

// ScoringConfig defines points awarded and deducted.
type ScoringConfig struct {
	Save        int  `yaml:"save"`
	MissPenalty int  `yaml:"miss_penalty"`
	Classic     bool `yaml:"classic"` // Earlier rule set: misses reset the ball without a penalty
}

// PoolConfig sizes the particle pool.
type PoolConfig struct {
	Capacity   int     `yaml:"capacity"`
	FrameScale float64 `yaml:"frame_scale"` // Velocity multiplier normalizing per-frame speeds
}

// EffectsConfig holds the two burst emitters.
type EffectsConfig struct {
	Goal  EmitterConfig `yaml:"goal"`
	Spark EmitterConfig `yaml:"spark"`
}

// EmitterConfig describes a particle burst.
type EmitterConfig struct {
	Count    int        `yaml:"count"`
	Velocity Range      `yaml:"velocity"` // Per-axis, pixels per normalized frame
	Size     Range      `yaml:"size"`     // Pixels
	Life     Range      `yaml:"life"`     // Seconds
	Fade     float64    `yaml:"fade"`     // Alpha = life / fade
	Color    core.Color `yaml:"color"`
}

// RectConfig is a normalized rectangle given by its center and size.
type RectConfig struct {
	Center Vec2    `yaml:"center"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c GoalkeeperConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball.speed must be positive, got %v", c.Ball.Speed)
	check(c.Ball.Direction.X != 0 || c.Ball.Direction.Y != 0, "ball.direction must be non-zero")
	check(inUnit(c.Ball.Start.X) && inUnit(c.Ball.Start.Y), "ball.start must lie in [0,1], got (%v,%v)", c.Ball.Start.X, c.Ball.Start.Y)
	check(c.Ball.RollSpeedFactor >= 0, "ball.roll_speed_factor must not be negative")
	check(c.Keeper.Height > 0 && c.Keeper.Height < 1, "keeper.height must be in (0,1), got %v", c.Keeper.Height)
	check(c.Keeper.Position.Y >= c.Keeper.Height/2 && c.Keeper.Position.Y <= 1-c.Keeper.Height/2,
		"keeper.position.y must be in [%v,%v], got %v", c.Keeper.Height/2, 1-c.Keeper.Height/2, c.Keeper.Position.Y)
	check(c.Keeper.Width > 0, "keeper.width must be positive, got %v", c.Keeper.Width)
	check(c.Keeper.Speed > 0, "keeper.speed must be positive, got %v", c.Keeper.Speed)
	check(c.Goal.Width > 0, "goal.width must be positive, got %v", c.Goal.Width)
	check(c.Goal.Height > 2*c.Ball.Radius, "goal.height must exceed the ball diameter, got %v", c.Goal.Height)
	check(c.Timers.Roll > 0 && c.Timers.Spark > 0, "timers.roll and timers.spark must be positive")
	check(c.Particles.Capacity > 0, "particles.capacity must be positive, got %d", c.Particles.Capacity)
	check(c.Effects.Goal.Fade > 0 && c.Effects.Spark.Fade > 0, "effects fade constants must be positive")
	check(c.RestartButton.Width > 0 && c.RestartButton.Height > 0, "restart_button must have a size")

	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
