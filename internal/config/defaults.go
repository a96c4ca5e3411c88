package config

import (
	_ "embed"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

//go:embed defaults/goalkeeper.yaml
var defaultGoalkeeperYAML []byte

// DefaultGoalkeeperConfig returns the default goalkeeper configuration.
// It mirrors defaults/goalkeeper.yaml and is used when the embedded file fails to parse.
func DefaultGoalkeeperConfig() GoalkeeperConfig {
	return GoalkeeperConfig{
		Ball: BallConfig{
			Start:           Vec2{X: 0.5, Y: 0.5},
			Direction:       Vec2{X: 1.0, Y: -1.0},
			Radius:          0.008,
			Speed:           0.42,
			SpinSpeed:       360,
			RollSpeedFactor: 0.2,
		},
		Keeper: KeeperConfig{
			Position: Vec2{X: 0.96, Y: 0.5},
			Width:    0.016,
			Height:   0.056,
			Speed:    0.485,
		},
		Goal: GoalConfig{
			Position: Vec2{X: 0.992, Y: 0.5},
			Width:    0.024,
			Height:   0.308,
		},
		Timers: TimerConfig{
			Roll:          4.0,
			Spark:         1.0,
			PenaltyBanner: 1.0,
		},
		Scoring: ScoringConfig{
			Save:        100,
			MissPenalty: 50,
		},
		Particles: PoolConfig{
			Capacity:   100,
			FrameScale: 120,
		},
		Effects: EffectsConfig{
			Goal: EmitterConfig{
				Count:    32, // 8 blocks of 4
				Velocity: Range{Min: -2, Max: 2},
				Size:     Range{Min: 5, Max: 20},
				Life:     Range{Min: 0.5, Max: 2.0},
				Fade:     1.5,
				Color:    core.ColorMaroon,
			},
			Spark: EmitterConfig{
				Count:    24,
				Velocity: Range{Min: -3, Max: 3},
				Size:     Range{Min: 3, Max: 8},
				Life:     Range{Min: 0.2, Max: 0.5},
				Fade:     0.5,
				Color:    core.ColorGold,
			},
		},
		RestartButton: RectConfig{
			Center: Vec2{X: 0.5, Y: 0.62},
			Width:  0.16,
			Height: 0.08,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGoalkeeperYAML
}
