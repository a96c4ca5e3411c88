package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goalkeeper/internal/core"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

// Each terminal cell stands for a block of virtual pixels so that pixel-space
// rules (ball radius, particle speeds) keep their proportions.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Options tunes a terminal game session.
type Options struct {
	Logger     *log.Logger   // Event log; nil discards
	HoldWindow time.Duration // Key hold emulation window; zero uses DefaultHoldWindow
	AllowBack  bool          // Esc returns to a menu while paused or after game over
	Generation int           // Tag for this model's ticks; ticks with another tag are dropped
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	clock      *core.FrameClock
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	width      int
	height     int
	allowBack  bool
	gen        int
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		clock:      core.NewFrameClock(cfg.TickRate),
		held:       NewHeldKeys(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     logger.With("game", game.ID()),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		allowBack:  opts.AllowBack,
		gen:        opts.Generation,
	}
	m.screen = core.NewScreen(m.fieldSize())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		// A tick from an earlier model must not start a second loop
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.fieldSize())
		return m, nil
	case m.allowBack && key.Matches(msg, keys.Back) && (m.gameState.Paused || m.gameState.GameOver):
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game ended", "score", m.gameState.Score, "goals", m.gameState.Goals)
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown:
		m.held.Press(action, time.Now())
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse turns a left click into a pointer press at the cell's center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.inputFrame.Click((float64(msg.X)+0.5)*CellWidth, (float64(msg.Y)+0.5)*CellHeight)
	return m, nil
}

// handleResize processes window resize events.
// The simulation is resolution independent, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.fieldSize())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.inputFrame.Clone()
	m.held.Apply(&in, now)

	result := m.game.Step(in, core.Frame{
		DT:       m.clock.Tick(now),
		Viewport: m.viewport(),
	})
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()
	if m.gameState.Paused || m.gameState.GameOver {
		m.held.Release()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventGameOver, core.EventRestart:
			m.logger.Info(e.Kind.String(), "score", e.Score, "goals", m.gameState.Goals)
		default:
			m.logger.Debug(e.Kind.String(), "score", e.Score)
		}
	}
}

// fieldSize is the screen area left for the game after the help footer.
func (m Model) fieldSize() (int, int) {
	footer := 1
	if m.help.ShowAll {
		for _, column := range m.keyMapper.Keys().FullHelp() {
			footer = max(footer, len(column))
		}
	}
	return max(m.width, 0), max(m.height-footer, 0)
}

// viewport is the virtual pixel surface the game field covers.
func (m Model) viewport() core.Viewport {
	return core.Viewport{
		W: float64(m.screen.Width() * CellWidth),
		H: float64(m.screen.Height() * CellHeight),
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))
	return b.String()
}

// State returns the game state from the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks hit the restart button
	)

	_, err := p.Run()
	return err
}
