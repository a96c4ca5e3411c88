package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/goalkeeper/internal/core"
)

// KeyState is the keyboard and mouse state sampled for one frame.
type KeyState struct {
	Up, Down bool // Held
	Pause    bool // Pressed this frame
	Restart  bool // Pressed this frame
	Click    bool // Left button pressed this frame
	Quit     bool
	CursorX  int
	CursorY  int
}

// Frame converts sampled keys into the game's input frame.
// The pointer is always reported so hover state survives frames without clicks.
func (s KeyState) Frame() core.InputFrame {
	in := core.NewInputFrame()
	if s.Up {
		in.Set(core.ActionUp)
	}
	if s.Down {
		in.Set(core.ActionDown)
	}
	if s.Pause {
		in.Set(core.ActionPause)
	}
	if s.Restart {
		in.Set(core.ActionRestart)
	}
	if s.Click {
		in.Click(float64(s.CursorX), float64(s.CursorY))
	} else {
		in.Pointer[0], in.Pointer[1] = float64(s.CursorX), float64(s.CursorY)
	}
	return in
}

// pollKeys samples Ebitengine's input state.
func pollKeys() KeyState {
	x, y := ebiten.CursorPosition()
	return KeyState{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
		CursorX: x,
		CursorY: y,
	}
}
