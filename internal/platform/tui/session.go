package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goalkeeper/internal/core"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

// SessionStats summarizes the rounds played in one session. Nothing outlives the session.
type SessionStats struct {
	Rounds    int
	BestScore int
	BestGoals int
}

// record folds a finished round into the stats.
func (s *SessionStats) record(state core.GameState) {
	if s.Rounds == 0 || state.Score > s.BestScore {
		s.BestScore = state.Score
		s.BestGoals = state.Goals
	}
	s.Rounds++
}

// SessionModel runs the menu -> game -> menu loop for one player,
// either over SSH or from the local menu command.
type SessionModel struct {
	config    core.RuntimeConfig
	logger    *log.Logger
	menu      MenuModel
	gameModel *Model
	games     int // Game models started; each one tags its ticks with this count
	stats     SessionStats
	quitting  bool
}

// NewSessionModel creates a session that starts at the mode picker.
func NewSessionModel(cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the running game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks from a game that was just left are dropped
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "id", selected.GameID, "error", err)
		m.menu = NewMenuModel(m.config).WithStats(m.stats)
		return m, nil
	}

	m.config = m.menu.Config()
	if m.stats.Rounds > 0 {
		// Replays get a fresh seed; the first round keeps the configured one
		m.config.Seed = time.Now().UnixNano()
	}

	m.games++
	gameModel := NewModel(game, m.config, Options{Logger: m.logger, AllowBack: true, Generation: m.games})
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.stats.record(m.gameModel.State())
		m.gameModel = nil
		m.menu = NewMenuModel(m.config).WithStats(m.stats)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.stats.record(m.gameModel.State())
		return m.quit()
	}

	return m, cmd
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.stats.Rounds > 0 {
		m.logger.Info("session summary", "rounds", m.stats.Rounds,
			"best_score", m.stats.BestScore, "best_goals", m.stats.BestGoals)
	}
	return m, tea.Quit
}

// Stats returns the rounds finished so far.
func (m SessionModel) Stats() SessionStats {
	return m.stats
}

// View renders the menu or the running game.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}
