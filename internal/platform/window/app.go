// Package window runs a game in a desktop window using Ebitengine.
// The window's layout size is the game's viewport, so resizing the window
// rescales the field without resetting the round.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/goalkeeper/internal/core"
	"github.com/vovakirdan/goalkeeper/internal/games/goalkeeper"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

// Game is a registry game that can describe itself as a pixel snapshot.
type Game interface {
	registry.Game
	Snapshot() goalkeeper.Snapshot
}

// Options configures the window and the simulation it drives.
type Options struct {
	Width    int    // Initial window width in pixels
	Height   int    // Initial window height in pixels
	Title    string // Window title
	TickRate int    // Updates per second
	Seed     int64  // RNG seed; 0 uses the current time
	Logger   *log.Logger
}

// DefaultOptions returns the classic 1250x650 window at 60 updates per second.
func DefaultOptions() Options {
	return Options{
		Width:    1250,
		Height:   650,
		Title:    "Classic Game: Football Arkanoid",
		TickRate: 60,
	}
}

// App implements ebiten.Game around a single game instance.
type App struct {
	game     Game
	opts     Options
	clock    *core.FrameClock
	logger   *log.Logger
	fonts    *fonts
	pixel    *ebiten.Image
	viewport core.Viewport
	cursor   mgl64.Vec2
	state    core.GameState
}

// NewApp prepares an app for game. The game is reset by Run.
func NewApp(game Game, opts Options) (*App, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	return &App{
		game:   game,
		opts:   opts,
		clock:  core.NewFrameClock(opts.TickRate),
		logger: logger.With("game", game.ID()),
		fonts:  f,
	}, nil
}

// Update samples input and advances the game by one frame.
func (a *App) Update() error {
	keys := pollKeys()
	if keys.Quit {
		a.logger.Info("game ended", "score", a.state.Score, "goals", a.state.Goals)
		return ebiten.Termination
	}
	a.cursor = mgl64.Vec2{float64(keys.CursorX), float64(keys.CursorY)}

	result := a.game.Step(keys.Frame(), core.Frame{
		DT:       a.clock.Tick(time.Now()),
		Viewport: a.viewport,
	})
	a.state = result.State
	a.logEvents(result.Events)
	return nil
}

func (a *App) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventGameOver, core.EventRestart:
			a.logger.Info(e.Kind.String(), "score", e.Score, "goals", a.state.Goals)
		default:
			a.logger.Debug(e.Kind.String(), "score", e.Score)
		}
	}
}

// Draw renders the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	if a.pixel == nil {
		a.pixel = ebiten.NewImage(1, 1)
		a.pixel.Fill(color.White)
	}

	snap := a.game.Snapshot()
	b := screen.Bounds()
	vp := core.Viewport{W: float64(b.Dx()), H: float64(b.Dy())}
	p := painter{
		dst:    screen,
		snap:   &snap,
		fonts:  a.fonts,
		pixel:  a.pixel,
		cursor: a.cursor,
		vp:     vp,
		w:      vp.W,
		h:      vp.H,
	}
	p.draw()
}

// Layout uses the window size as the game viewport.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewport = core.Viewport{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// State returns the game state from the last update.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens the window and plays game until the window closes or q is pressed.
func Run(game Game, opts Options) error {
	app, err := NewApp(game, opts)
	if err != nil {
		return err
	}
	opts = app.opts

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	app.logger.Info("game started", "seed", opts.Seed, "tick_rate", opts.TickRate)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
