package goalkeeper

import (
	"github.com/vovakirdan/goalkeeper/internal/core"
)

// contactGap is how far, in pixels, a bounced ball is left from the surface
// it hit. Touching counts as a hit, so a frame that does not move the ball
// must not find it in contact again.
const contactGap = 1e-3

// ResolveCollisions runs the collision checks in their fixed order: walls,
// keeper, goal. Each check sees the positions left by the previous one.
func (w *World) ResolveCollisions(vp core.Viewport) []core.Event {
	if vp.Empty() {
		return nil
	}

	var events []core.Event
	events = append(events, w.collideWalls(vp)...)
	events = append(events, w.collideKeeper(vp)...)
	events = append(events, w.collideGoal(vp)...)
	return events
}

// collideWalls bounces the ball off the top, bottom and left edges.
// Crossing the right edge in free flight is a miss.
func (w *World) collideWalls(vp core.Viewport) []core.Event {
	b := &w.Ball
	pos := vp.ToPixels(b.Pos)
	r := b.Radius() * vp.W

	switch {
	case pos.Y()+r >= vp.H:
		b.Dir[1] = -b.Dir[1]
		b.Pos[1] = (vp.H - r - contactGap) / vp.H
	case pos.Y()-r <= 0:
		b.Dir[1] = -b.Dir[1]
		b.Pos[1] = (r + contactGap) / vp.H
	}

	if pos.X()-r <= 0 {
		b.Dir[0] = -b.Dir[0]
		b.Pos[0] = (r + contactGap) / vp.W
	}

	if pos.X()+r >= vp.W && b.State() == StateNormal {
		return w.miss(vp)
	}
	return nil
}

// miss handles the ball escaping past the keeper on the right.
func (w *World) miss(vp core.Viewport) []core.Event {
	if w.Classic() {
		w.serve()
		return []core.Event{w.event(core.EventMiss), w.event(core.EventServe)}
	}

	w.Score.Miss()
	w.spark(vp)
	return []core.Event{w.event(core.EventMiss), w.event(core.EventSpark)}
}

// collideKeeper deflects the ball off the keeper and credits a save.
// It applies in every ball state; only free flight can reach the keeper
// with the default layout.
func (w *World) collideKeeper(vp core.Viewport) []core.Event {
	b := &w.Ball
	pos := vp.ToPixels(b.Pos)
	r := b.Radius() * vp.W
	box := w.Keeper.Box().Scale(vp)
	if !core.CircleIntersectsBox(pos, r, box) {
		return nil
	}

	b.Dir[0] = -b.Dir[0]
	b.Pos[0] = (box.Min.X() - r - contactGap) / vp.W
	w.Score.Save()
	return []core.Event{w.event(core.EventSave)}
}

// collideGoal starts the goal-line roll when the ball enters the mouth.
func (w *World) collideGoal(vp core.Viewport) []core.Event {
	b := &w.Ball
	if b.State() != StateNormal {
		return nil
	}

	pos := vp.ToPixels(b.Pos)
	r := b.Radius() * vp.W
	if !core.CircleIntersectsBox(pos, r, w.Goal.Mouth().Scale(vp)) {
		return nil
	}

	w.Score.Goal()
	w.Particles.Emit(vp.ToPixels(w.Goal.Pos), w.cfg.Effects.Goal.Count, w.goalFX)
	b.StartRolling(w.Goal)
	return []core.Event{w.event(core.EventGoal)}
}
