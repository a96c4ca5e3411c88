package goalkeeper

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
)

// Keeper is the player-controlled goalkeeper. X is fixed; Y moves with input.
type Keeper struct {
	Pos    mgl64.Vec2
	Width  float64
	Height float64
	Speed  float64
}

func newKeeper(cfg config.KeeperConfig) Keeper {
	return Keeper{
		Pos:    mgl64.Vec2{cfg.Position.X, cfg.Position.Y},
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
	}
}

// Move applies up/down input for one frame. A move whose resulting box would
// leave the field's vertical extent is refused rather than clamped.
func (k *Keeper) Move(up, down bool, dt float64, vp core.Viewport) {
	if vp.Empty() {
		return
	}
	step := k.Speed * dt
	if up {
		newY := k.Pos.Y() - step
		if (newY-k.Height/2)*vp.H >= 0 {
			k.Pos[1] = newY
		}
	}
	if down {
		newY := k.Pos.Y() + step
		if (newY+k.Height/2)*vp.H <= vp.H {
			k.Pos[1] = newY
		}
	}
}

// Box returns the keeper's normalized bounding box.
func (k Keeper) Box() core.Box {
	return core.BoxFromCenter(k.Pos, k.Width, k.Height)
}

// Goal is the static scoring target on the right edge.
// Pos is the right-center point of the mouth.
type Goal struct {
	Pos    mgl64.Vec2
	Width  float64
	Height float64
}

func newGoal(cfg config.GoalConfig) Goal {
	return Goal{
		Pos:    mgl64.Vec2{cfg.Position.X, cfg.Position.Y},
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Mouth returns the normalized scoring rectangle.
func (g Goal) Mouth() core.Box {
	return core.BoxFromCorner(g.Pos.X()-g.Width, g.Pos.Y()-g.Height/2, g.Width, g.Height)
}

// RollBounds returns the vertical range a rolling ball of the given radius may use.
func (g Goal) RollBounds(radius float64) (top, bottom float64) {
	return g.Pos.Y() - g.Height/2 + radius, g.Pos.Y() + g.Height/2 - radius
}
