package walk

import (
	"github.com/charmbracelet/log"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
	"github.com/splitpine/walkabout/obj"
)

// Walk is the running world: the character, two wrapping background
// panels, the live obstacles, and the generation cursor. The timeline
// marks how far ahead of the left screen edge content already exists.
type Walk struct {
	boy         *obj.Player
	backgrounds [2]*engine.Image
	obstacles   []obj.Obstacle
	generator   *obj.Generator
	timeline    int
	cfg         *config.Config
	log         *log.Logger
}

// velocity is the world scroll per tick, the negation of the character's
// walking speed.
func (w *Walk) velocity() int {
	return -w.boy.WalkingSpeed()
}

func (w *Walk) update(keys *engine.KeyState) {
	if keys.IsPressed(w.cfg.Keys.Slide) {
		w.boy.Slide()
	}
	if keys.IsPressed(w.cfg.Keys.Run) {
		w.boy.RunRight()
	}
	if keys.IsPressed(w.cfg.Keys.Jump) {
		w.boy.Jump()
	}

	w.boy.Update()

	velocity := w.velocity()

	first, second := w.backgrounds[0], w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	// Drop obstacles that scrolled off the left edge, then move and
	// collide the survivors.
	live := w.obstacles[:0]
	for _, obstacle := range w.obstacles {
		if obstacle.Right() > 0 {
			live = append(live, obstacle)
		}
	}
	w.obstacles = live

	for _, obstacle := range w.obstacles {
		obstacle.MoveHorizontally(velocity)
		obstacle.CheckIntersection(w.boy)
	}

	if w.timeline < w.cfg.Segments.TimelineMinimum {
		w.generateNextSegment()
	} else {
		w.timeline += velocity
	}
}

func (w *Walk) generateNextSegment() {
	next := w.generator.Next(w.timeline + w.cfg.Segments.ObstacleBuffer)
	w.timeline = obj.Rightmost(next)
	w.obstacles = append(w.obstacles, next...)
	w.log.Debug("generated segment",
		"obstacles", len(next),
		"timeline", w.timeline)
}

func (w *Walk) draw(r engine.Renderer) error {
	r.Clear(geom.Rect{
		X:      0,
		Y:      0,
		Width:  w.cfg.Window.Width,
		Height: w.cfg.Window.Height,
	})

	for _, background := range w.backgrounds {
		background.Draw(r)
	}
	if err := w.boy.Draw(r); err != nil {
		return err
	}
	for _, obstacle := range w.obstacles {
		obstacle.Draw(r)
	}
	return nil
}
