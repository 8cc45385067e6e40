package obj

import (
	"github.com/charmbracelet/log"

	"github.com/splitpine/walkabout/config"
	"github.com/splitpine/walkabout/engine"
	"github.com/splitpine/walkabout/geom"
)

// Event drives the character state machine.
type Event interface {
	isEvent()
}

// Run starts the character running to the right.
type Run struct{}

// Slide ducks the character under obstacles.
type Slide struct{}

// Jump launches the character upward.
type Jump struct{}

// KnockOut throws the character into its dying fall.
type KnockOut struct{}

// Update advances the character by one fixed step.
type Update struct{}

// Land plants the character's feet on ground at Height.
type Land struct {
	Height int
}

func (Run) isEvent()      {}
func (Slide) isEvent()    {}
func (Jump) isEvent()     {}
func (KnockOut) isEvent() {}
func (Update) isEvent()   {}
func (Land) isEvent()     {}

// Animation prefixes of the atlas frame names. Falling and KnockedOut
// share the death animation.
const (
	idleAnimation  = "Idle"
	runAnimation   = "Run"
	slideAnimation = "Slide"
	jumpAnimation  = "Jump"
	deadAnimation  = "Dead"
)

// Context is the data every character state shares: the animation frame
// counter, position, and velocity, plus the tuning and the one-shot jump
// sound. States copy it by value, so transitions stay pure.
type Context struct {
	Frame    int
	Position geom.Point
	Velocity geom.Point

	cfg  *config.Config
	jump engine.SoundPlayer
	log  *log.Logger
}

// update runs one physics tick: gravity up to terminal velocity, the
// frame counter through [0, frameCount] with wraparound, and vertical
// movement clamped at the floor.
func (c Context) update(frameCount int) Context {
	c.Velocity.Y += c.cfg.Physics.Gravity
	if c.Velocity.Y >= c.cfg.Physics.TerminalVelocity {
		c.Velocity.Y = c.cfg.Physics.TerminalVelocity
	}

	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}

	c.Position.Y += c.Velocity.Y
	if c.Position.Y > c.cfg.Physics.FloorY {
		c.Position.Y = c.cfg.Physics.FloorY
	}
	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) fixFrame(frame int) Context {
	c.Frame = frame
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X += c.cfg.Physics.RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	return c
}

// setOn puts the character's feet on ground whose top edge is at height.
func (c Context) setOn(height int) Context {
	c.Position.Y = height - c.cfg.PlayerHeight()
	c.Velocity.Y = 0
	return c
}

func (c Context) playJumpSound() Context {
	if err := c.jump.Play(); err != nil {
		c.log.Warn("play jump sound", "err", err)
	}
	return c
}

// State is one vertex of the character state machine. Transition consumes
// the receiver and returns the successor; a pair with no rule returns the
// receiver unchanged.
type State interface {
	Transition(ev Event) State
	AnimationName() string
	Context() Context
}

// Idle is the character standing at the start line.
type Idle struct {
	ctx Context
}

// NewIdle returns the spawn state: standing at the configured starting
// position with no velocity.
func NewIdle(cfg *config.Config, jump engine.SoundPlayer, logger *log.Logger) Idle {
	return Idle{ctx: Context{
		Position: geom.Point{X: cfg.Physics.StartingX, Y: cfg.Physics.FloorY},
		cfg:      cfg,
		jump:     jump,
		log:      logger,
	}}
}

func (s Idle) AnimationName() string { return idleAnimation }
func (s Idle) Context() Context      { return s.ctx }

func (s Idle) Transition(ev Event) State {
	switch ev.(type) {
	case Run:
		return Running{ctx: s.ctx.resetFrame().runRight()}
	case Update:
		s.ctx = s.ctx.update(s.ctx.cfg.Animation.IdleFrames)
		return s
	}
	return s
}

// Running is the character's travelling state.
type Running struct {
	ctx Context
}

func (s Running) AnimationName() string { return runAnimation }
func (s Running) Context() Context      { return s.ctx }

func (s Running) Transition(ev Event) State {
	switch ev := ev.(type) {
	case Slide:
		return Sliding{ctx: s.ctx.resetFrame()}
	case Jump:
		return Jumping{ctx: s.ctx.
			setVerticalVelocity(s.ctx.cfg.Physics.JumpSpeed).
			resetFrame().
			playJumpSound()}
	case KnockOut:
		return Falling{ctx: s.ctx.resetFrame().stop()}
	case Land:
		s.ctx = s.ctx.setOn(ev.Height)
		return s
	case Update:
		s.ctx = s.ctx.update(s.ctx.cfg.Animation.RunningFrames)
		return s
	}
	return s
}

// Sliding ducks the character until its animation has played through.
type Sliding struct {
	ctx Context
}

func (s Sliding) AnimationName() string { return slideAnimation }
func (s Sliding) Context() Context      { return s.ctx }

func (s Sliding) Transition(ev Event) State {
	switch ev := ev.(type) {
	case KnockOut:
		return Falling{ctx: s.ctx.resetFrame().stop()}
	case Land:
		s.ctx = s.ctx.setOn(ev.Height)
		return s
	case Update:
		s.ctx = s.ctx.update(s.ctx.cfg.Animation.SlidingFrames)
		if s.ctx.Frame >= s.ctx.cfg.Animation.SlidingFrames {
			return Running{ctx: s.ctx.resetFrame()}
		}
		return s
	}
	return s
}

// Jumping is the character in the air. It ends by landing: on a platform
// through a Land event, or on the floor once gravity brings it back down.
type Jumping struct {
	ctx Context
}

func (s Jumping) AnimationName() string { return jumpAnimation }
func (s Jumping) Context() Context      { return s.ctx }

func (s Jumping) Transition(ev Event) State {
	switch ev := ev.(type) {
	case KnockOut:
		return Falling{ctx: s.ctx.resetFrame().stop()}
	case Land:
		return Running{ctx: s.ctx.resetFrame().setOn(ev.Height)}
	case Update:
		s.ctx = s.ctx.update(s.ctx.cfg.Animation.JumpingFrames)
		if s.ctx.Position.Y >= s.ctx.cfg.Physics.FloorY {
			return Running{ctx: s.ctx.resetFrame().setOn(s.ctx.cfg.Window.Height)}
		}
		return s
	}
	return s
}

// Falling plays the death animation once, then settles into KnockedOut.
type Falling struct {
	ctx Context
}

func (s Falling) AnimationName() string { return deadAnimation }
func (s Falling) Context() Context      { return s.ctx }

func (s Falling) Transition(ev Event) State {
	switch ev.(type) {
	case Update:
		s.ctx = s.ctx.update(s.ctx.cfg.Animation.FallingFrames)
		if s.ctx.Frame >= s.ctx.cfg.Animation.FallingFrames {
			return KnockedOut{ctx: s.ctx}
		}
		return s
	}
	return s
}

// KnockedOut is the terminal state. The body still settles under gravity
// but the animation stays pinned on its last frame.
type KnockedOut struct {
	ctx Context
}

func (s KnockedOut) AnimationName() string { return deadAnimation }
func (s KnockedOut) Context() Context      { return s.ctx }

func (s KnockedOut) Transition(ev Event) State {
	switch ev := ev.(type) {
	case Update:
		s.ctx = s.ctx.
			update(s.ctx.cfg.Animation.FallingFrames).
			fixFrame(s.ctx.cfg.Animation.FallingFrames - 1)
		return s
	case Land:
		s.ctx = s.ctx.setOn(ev.Height)
		return s
	}
	return s
}
