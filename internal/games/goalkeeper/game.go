// Package goalkeeper implements the football arcade: a ball bounces around the
// pitch and the player moves a goalkeeper to keep it out of the net.
//
// The simulation runs in normalized [0,1] coordinates. The host supplies the
// viewport size and elapsed time every frame through core.Frame; collision
// checks convert to pixel space with that viewport only.
package goalkeeper

import (
	"math/rand"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

// GameMode selects the rule set.
type GameMode int

const (
	ModeStandard GameMode = iota // Misses cost points, goals spark before the serve
	ModeClassic                  // Misses and goals go straight back to a serve
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements the goalkeeper game logic.
type Game struct {
	mode     GameMode
	override *config.GoalkeeperConfig

	cfg      config.GoalkeeperConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	world    *World
	viewport core.Viewport // Last non-empty viewport seen by Step

	tick    uint64
	elapsed float64
}

// New creates a game with the standard rules.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates a game with the classic rules.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// NewWithConfig creates a game that ignores the config search path and uses cfg.
// The mode follows cfg.Scoring.Classic.
func NewWithConfig(cfg config.GoalkeeperConfig) *Game {
	mode := ModeStandard
	if cfg.Scoring.Classic {
		mode = ModeClassic
	}
	return &Game{mode: mode, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "goalkeeper_classic"
	}
	return "goalkeeper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Football Arkanoid (Classic)"
	}
	return "Football Arkanoid"
}

// Config returns the configuration the current round runs with.
func (g *Game) Config() config.GoalkeeperConfig {
	return g.cfg
}

// Reset loads configuration and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, seeded for replays
	g.world = NewWorld(g.cfg, g.rng)
	g.tick = 0
	g.elapsed = 0
}

// loadConfig falls back to the defaults, with the preset still applied, when
// the file or its combination with the preset does not validate.
func (g *Game) loadConfig() config.GoalkeeperConfig {
	var cfg config.GoalkeeperConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		resolved, err := config.Resolve(configPath, difficultyPreset)
		if err != nil {
			resolved = config.DefaultGoalkeeperConfig()
			config.ApplyPreset(&resolved, difficultyPreset)
		}
		cfg = resolved
	}
	cfg.Scoring.Classic = g.mode == ModeClassic
	return cfg
}

// World exposes the live simulation state.
func (g *Game) World() *World {
	return g.world
}

// Viewport returns the last viewport the simulation ran against.
func (g *Game) Viewport() core.Viewport {
	return g.viewport
}

// Step advances the game by one frame.
// Order: pause toggle, game-over check, simulation update, collisions,
// particles, restart check.
func (g *Game) Step(in core.InputFrame, f core.Frame) core.StepResult {
	if !f.Viewport.Empty() {
		g.viewport = f.Viewport
	}
	dt := max(f.DT, 0)
	score := &g.world.Score
	var events []core.Event

	// Handle pause toggle
	if in.Has(core.ActionPause) && !score.GameOver {
		score.Paused = !score.Paused
		if score.Paused {
			events = append(events, g.world.event(core.EventPause))
		} else {
			events = append(events, g.world.event(core.EventResume))
		}
	}

	if score.CheckGameOver() {
		events = append(events, g.world.event(core.EventGameOver))
	}

	// Don't update if paused, game over or the surface is gone
	if !score.Paused && !score.GameOver && !f.Viewport.Empty() {
		g.tick++
		g.elapsed += dt

		events = append(events, g.world.Update(in, dt, f.Viewport)...)
		events = append(events, g.world.ResolveCollisions(f.Viewport)...)
		g.world.Particles.Update(dt)
	}

	if score.GameOver && g.restartRequested(in) {
		g.restart()
		events = append(events, g.world.event(core.EventRestart))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// RestartButton returns the normalized restart button rectangle.
func (g *Game) RestartButton() core.Box {
	b := g.cfg.RestartButton
	return core.BoxFromCenter(vec(b.Center), b.Width, b.Height)
}

// restartRequested reports a click on the restart button or the restart key.
func (g *Game) restartRequested(in core.InputFrame) bool {
	if in.Has(core.ActionRestart) {
		return true
	}
	if !in.Has(core.ActionClick) || g.viewport.Empty() {
		return false
	}
	return g.RestartButton().Contains(g.viewport.ToNormalized(in.Pointer))
}

// restart reinitializes the round. The RNG keeps its sequence.
func (g *Game) restart() {
	g.world.Reset()
	g.tick = 0
	g.elapsed = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Score
	return core.GameState{
		Score:    s.Score,
		Goals:    s.Goals,
		GameOver: s.GameOver,
		Paused:   s.Paused,
	}
}

// Register games
func init() {
	registry.Register("goalkeeper", func() registry.Game {
		return New()
	})
	registry.Register("goalkeeper_classic", func() registry.Game {
		return NewClassic()
	})
}
