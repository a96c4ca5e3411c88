package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

// recordingGame is a registry.Game that remembers what the platform sent it.
type recordingGame struct {
	resets int
	inputs []core.InputFrame
	frames []core.Frame
	state  core.GameState
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Title() string            { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState    { return g.state }
func (g *recordingGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "field") }

func (g *recordingGame) Step(in core.InputFrame, f core.Frame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.frames = append(g.frames, f)
	return core.StepResult{State: g.state}
}

func newTestModel(g *recordingGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelViewportInVirtualPixels(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m = update(m, TickMsg{Time: time.Now()})

	f := g.frames[0]
	// One row is reserved for the help footer
	if f.Viewport.W != 80*CellWidth || f.Viewport.H != 24*CellHeight {
		t.Errorf("viewport = %+v", f.Viewport)
	}
	if f.DT <= 0 || f.DT > core.MaxFrameDT {
		t.Errorf("dt = %v", f.DT)
	}

	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 41})
	update(m, TickMsg{Time: time.Now()})
	if vp := g.frames[1].Viewport; vp.W != 100*CellWidth || vp.H != 40*CellHeight {
		t.Errorf("viewport after resize = %+v", vp)
	}
	if g.resets != 0 {
		t.Error("resize should not reset the game")
	}
}

func TestModelHoldsDirectionalKeys(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(m, keyMsg("up"))
	m = update(m, TickMsg{Time: time.Now()})
	update(m, TickMsg{Time: time.Now()})

	for i, in := range g.inputs {
		if !in.Has(core.ActionUp) {
			t.Errorf("tick %d: up not held", i)
		}
	}
}

func TestModelEdgeActionsLastOneTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(m, keyMsg(" "))
	m = update(m, TickMsg{Time: time.Now()})
	update(m, TickMsg{Time: time.Now()})

	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("pause missing on the first tick")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause should not repeat on the next tick")
	}
}

func TestModelMouseClickBecomesPointer(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(m, TickMsg{Time: time.Now()})

	in := g.inputs[0]
	if !in.Has(core.ActionClick) {
		t.Fatal("click not forwarded")
	}
	if in.Pointer.X() != 10.5*CellWidth || in.Pointer.Y() != 5.5*CellHeight {
		t.Errorf("pointer = %v", in.Pointer)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m = update(m, keyMsg("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}

	g = &recordingGame{state: core.GameState{GameOver: true}}
	m = NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, Options{AllowBack: true})
	m = update(m, TickMsg{Time: time.Now()})
	m = update(m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := newTestModel(&recordingGame{})
	view := m.View()
	if !strings.Contains(view, "field") || !strings.Contains(view, "quit") {
		t.Errorf("view missing field or help:\n%s", view)
	}
}
